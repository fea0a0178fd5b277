package screens

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"ebiten-asteroids/ecs"
	"ebiten-asteroids/systems"
)

// DebugScreen overlays world statistics in the top-right corner
type DebugScreen struct {
	world      *ecs.World
	render     *systems.RenderSystem
	width      int
	height     int
	background color.Color
	panel      *ebiten.Image
}

// NewDebugScreen creates a new debug overlay for world
func NewDebugScreen(world *ecs.World, render *systems.RenderSystem) *DebugScreen {
	return &DebugScreen{
		world:      world,
		render:     render,
		width:      200,
		height:     120,
		background: color.RGBA{0, 0, 0, 160},
	}
}

func (s *DebugScreen) Update() error {
	return nil
}

// Lines returns the statistics shown by the overlay
func (s *DebugScreen) Lines() []string {
	return []string{
		"STATS",
		fmt.Sprintf("actors:     %d", len(s.world.Actors())),
		fmt.Sprintf("pending:    %d", len(s.world.PendingActors())),
		fmt.Sprintf("drawables:  %d", len(s.world.Drawables())),
		fmt.Sprintf("colliders:  %d", len(s.world.Colliders())),
		fmt.Sprintf("skipped:    %d", s.render.Skipped()),
		fmt.Sprintf("TPS %.0f  FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()),
	}
}

// Draw renders the overlay panel
func (s *DebugScreen) Draw(screen *ebiten.Image) {
	if s.panel == nil {
		s.panel = ebiten.NewImage(s.width, s.height)
	}
	s.panel.Fill(s.background)
	drawFrame(s.panel, s.width, s.height, color.White)
	for i, line := range s.Lines() {
		ebitenutil.DebugPrintAt(s.panel, line, 8, 6+i*16)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx()-s.width-8), 8)
	screen.DrawImage(s.panel, op)
}
