package systems

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"go.uber.org/zap"
)

const sampleRate = 44100

// AudioSystem plays looping background music
type AudioSystem struct {
	audioContext *audio.Context
	fsys         fs.FS
	bgmPlayer    *audio.Player
	volume       float64
	log          *zap.Logger
}

// NewAudioSystem creates a new audio system reading tracks from fsys
func NewAudioSystem(fsys fs.FS, volume float64, log *zap.Logger) *AudioSystem {
	return &AudioSystem{
		audioContext: audio.NewContext(sampleRate),
		fsys:         fsys,
		volume:       volume,
		log:          log,
	}
}

// PlayBGM starts looping the named mp3 or ogg track, replacing any current one
func (s *AudioSystem) PlayBGM(name string) error {
	s.StopBGM()

	raw, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return fmt.Errorf("open audio file: %w", err)
	}

	var stream io.ReadSeeker
	var length int64
	switch path.Ext(name) {
	case ".mp3":
		decoded, err := mp3.DecodeWithSampleRate(sampleRate, bytes.NewReader(raw))
		if err != nil {
			return fmt.Errorf("decode %s: %w", name, err)
		}
		stream, length = decoded, decoded.Length()
	case ".ogg":
		decoded, err := vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(raw))
		if err != nil {
			return fmt.Errorf("decode %s: %w", name, err)
		}
		stream, length = decoded, decoded.Length()
	default:
		return fmt.Errorf("unsupported audio format: %s", name)
	}

	player, err := s.audioContext.NewPlayer(audio.NewInfiniteLoop(stream, length))
	if err != nil {
		return fmt.Errorf("create audio player: %w", err)
	}

	s.bgmPlayer = player
	s.bgmPlayer.SetVolume(s.volume)
	s.bgmPlayer.Play()
	s.log.Info("playing background music", zap.String("track", name), zap.Float64("volume", s.volume))
	return nil
}

// StopBGM stops the background music
func (s *AudioSystem) StopBGM() {
	if s.bgmPlayer != nil {
		s.bgmPlayer.Close()
		s.bgmPlayer = nil
	}
}

// PauseBGM pauses the background music without releasing it
func (s *AudioSystem) PauseBGM() {
	if s.bgmPlayer != nil {
		s.bgmPlayer.Pause()
	}
}

// ResumeBGM resumes the background music
func (s *AudioSystem) ResumeBGM() {
	if s.bgmPlayer != nil {
		s.bgmPlayer.Play()
	}
}

// IsBGMPlaying returns whether background music is currently playing
func (s *AudioSystem) IsBGMPlaying() bool {
	return s.bgmPlayer != nil && s.bgmPlayer.IsPlaying()
}

// SetVolume sets the volume for background music (0.0 to 1.0)
func (s *AudioSystem) SetVolume(volume float64) {
	s.volume = volume
	if s.bgmPlayer != nil {
		s.bgmPlayer.SetVolume(volume)
	}
}

func (s *AudioSystem) GetVolume() float64 {
	return s.volume
}

func (s *AudioSystem) Close() {
	s.StopBGM()
}
