package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ModalScreen represents a popup window that appears on top of other screens
type ModalScreen struct {
	BaseScreen
	title      string
	lines      []string
	width      int
	height     int
	background color.Color
	modal      *ebiten.Image
}

// NewModalScreen creates a new modal screen
func NewModalScreen(title string, lines []string, width, height int) *ModalScreen {
	return &ModalScreen{
		title:      title,
		lines:      lines,
		width:      width,
		height:     height,
		background: color.RGBA{0, 0, 0, 200}, // Semi-transparent black
	}
}

// Draw implements the Screen interface
func (s *ModalScreen) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	x := (bounds.Dx() - s.width) / 2
	y := (bounds.Dy() - s.height) / 2

	if s.modal == nil {
		s.modal = ebiten.NewImage(s.width, s.height)
	}
	s.modal.Fill(s.background)
	drawFrame(s.modal, s.width, s.height, color.White)

	titleX := (s.width - len(s.title)*glyphWidth) / 2
	ebitenutil.DebugPrintAt(s.modal, s.title, titleX, 10)
	for i, line := range s.lines {
		ebitenutil.DebugPrintAt(s.modal, line, 10, 34+i*16)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(s.modal, op)
}

// PauseScreen freezes the game until P or Escape is pressed
type PauseScreen struct {
	*ModalScreen
	onResume func()
}

// NewPauseScreen creates a pause modal. onResume may be nil.
func NewPauseScreen(onResume func()) *PauseScreen {
	return &PauseScreen{
		ModalScreen: NewModalScreen("PAUSED", []string{"P / Esc: resume"}, 240, 70),
		onResume:    onResume,
	}
}

func (s *PauseScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if s.onResume != nil {
			s.onResume()
		}
		return ErrCloseScreen
	}
	return nil
}
