package screens

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-asteroids/ecs"
	"ebiten-asteroids/systems"
)

// PlayOptions wires a PlayScreen to a prepared world
type PlayOptions struct {
	World  *ecs.World
	Render *systems.RenderSystem
	Hits   *systems.HitSystem
	Audio  *systems.AudioSystem // optional
	// FrameDelta is the simulated time of one tick in seconds
	FrameDelta float32
	ShowFPS    bool
}

// PlayScreen runs the simulation: input snapshot, world update, render
type PlayScreen struct {
	opts      PlayOptions
	overlay   *ScreenStack
	debug     *DebugScreen
	showDebug bool
}

// NewPlayScreen creates a new play screen and listens for game over
func NewPlayScreen(opts PlayOptions) *PlayScreen {
	s := &PlayScreen{
		opts:    opts,
		overlay: NewScreenStack(),
		debug:   NewDebugScreen(opts.World, opts.Render),
	}
	opts.World.GetEventManager().Subscribe(systems.EventGameOver, func(ecs.Event) {
		left := len(opts.World.ActorsWithTag(systems.TagAsteroid))
		s.overlay.Push(NewGameOverScreen(left))
	})
	return s
}

// Update handles one tick
func (s *PlayScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		s.showDebug = !s.showDebug
	}

	// Modal overlays freeze the world
	if s.overlay.Len() > 0 {
		return s.overlay.Update()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.pause()
		return nil
	}

	s.opts.World.ProcessInput(systems.KeyboardSnapshot())
	s.opts.World.Update(s.opts.FrameDelta)
	systems.GetMessageLog().Prune()
	return nil
}

func (s *PlayScreen) pause() {
	if s.opts.Audio != nil {
		s.opts.Audio.PauseBGM()
	}
	s.overlay.Push(NewPauseScreen(func() {
		if s.opts.Audio != nil {
			s.opts.Audio.ResumeBGM()
		}
	}))
}

// Draw draws the world, the HUD and any overlay
func (s *PlayScreen) Draw(screen *ebiten.Image) {
	s.opts.Render.Draw(s.opts.World, screen)

	y := 0
	if s.opts.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()))
		y += 16
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Lives: %d", s.opts.Hits.Lives()), 0, y)
	y += 16
	for _, msg := range systems.GetMessageLog().RecentMessages(5) {
		ebitenutil.DebugPrintAt(screen, msg, 0, y)
		y += 16
	}

	if s.showDebug {
		s.debug.Draw(screen)
	}
	s.overlay.Draw(screen)
}
