package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// StartScreen handles the game's title screen
type StartScreen struct {
	BaseScreen
	title      string
	background color.Color
}

// NewStartScreen creates a new start screen
func NewStartScreen(title string) *StartScreen {
	return &StartScreen{
		title:      title,
		background: color.RGBA{16, 16, 24, 255},
	}
}

// Update handles input for the start screen
func (s *StartScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return ErrNewGame
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrQuit
	}
	return nil
}

// Draw renders the start screen
func (s *StartScreen) Draw(screen *ebiten.Image) {
	screen.Fill(s.background)
	centerY := screen.Bounds().Dy() / 2
	drawCentered(screen, []string{
		s.title,
		"",
		"Enter: start   Esc: quit",
		"",
		"W / S: thrust   A / D: turn   P: pause   F1: stats",
	}, centerY-40)
}
