package screens

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameOverScreen displays the game over message over the frozen play field
type GameOverScreen struct {
	*ModalScreen
}

// NewGameOverScreen creates a new game over screen
func NewGameOverScreen(asteroidsLeft int) *GameOverScreen {
	return &GameOverScreen{
		ModalScreen: NewModalScreen("GAME OVER", []string{
			fmt.Sprintf("Asteroids left: %d", asteroidsLeft),
			"",
			"Enter: play again   Esc: quit",
		}, 300, 100),
	}
}

// Update handles input for the game over screen
func (s *GameOverScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return ErrNewGame
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrQuit
	}
	return nil
}
