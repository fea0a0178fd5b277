package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"ebiten-asteroids/config"
	"ebiten-asteroids/data"
	"ebiten-asteroids/ecs"
	"ebiten-asteroids/screens"
	"ebiten-asteroids/scripting"
	"ebiten-asteroids/spawners"
	"ebiten-asteroids/systems"
)

// Game implements ebiten.Game interface.
type Game struct {
	cfg       *config.Config
	log       *zap.Logger
	templates *data.TemplateTable
	scripts   *scripting.Engine
	audio     *systems.AudioSystem
	rng       *rand.Rand
	screens   *screens.ScreenStack
}

// NewGame loads templates and scripts and opens on the start screen
func NewGame(cfg *config.Config, log *zap.Logger) (*Game, error) {
	templates, err := data.LoadTemplates(cfg.Assets.Templates)
	if err != nil {
		return nil, err
	}
	log.Info("loaded actor templates", zap.Int("count", templates.Count()))

	scripts, err := scripting.NewEngine(cfg.Assets.Scripts, systems.ResolveKey, log.Named("lua"))
	if err != nil {
		return nil, err
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		cfg:       cfg,
		log:       log,
		templates: templates,
		scripts:   scripts,
		rng:       rand.New(rand.NewSource(seed)),
		screens:   screens.NewScreenStack(),
	}
	if cfg.Audio.BGM != "" {
		g.audio = systems.NewAudioSystem(os.DirFS(cfg.Assets.Root), cfg.Audio.Volume, log.Named("audio"))
	}
	g.screens.Push(screens.NewStartScreen(cfg.Window.Title))
	return g, nil
}

// newPlayScreen builds a fresh world and spawns every template into it
func (g *Game) newPlayScreen() *screens.PlayScreen {
	world := ecs.NewWorld(g.log.Named("world"))
	world.SetResourceLoader(systems.NewTextureLoader(os.DirFS(g.cfg.Assets.Root)))

	hits := systems.NewHitSystem(g.cfg.Game.Lives, g.log)
	hits.Initialize(world)
	world.AddSystem(systems.NewCollisionSystem(g.log))
	world.AddSystem(hits)

	spawner := spawners.NewSpawner(world, g.cfg.PlayField, g.rng, g.log.Named("spawner"))
	spawner.SetKeyResolver(systems.ResolveKey)
	spawner.SetBehaviors(g.scripts)
	spawner.SpawnAll(g.templates)

	systems.GetMessageLog().Clear()
	if g.audio != nil {
		if err := g.audio.PlayBGM(g.cfg.Audio.BGM); err != nil {
			g.log.Warn("background music unavailable", zap.Error(err))
		}
	}

	return screens.NewPlayScreen(screens.PlayOptions{
		World:      world,
		Render:     systems.NewRenderSystem(config.ScreenWidth, config.ScreenHeight),
		Hits:       hits,
		Audio:      g.audio,
		FrameDelta: config.FrameDelta() * g.cfg.Game.TimeScale,
		ShowFPS:    g.cfg.Game.ShowFPS,
	})
}

// Update updates the game state.
func (g *Game) Update() error {
	err := g.screens.Update()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, screens.ErrNewGame):
		g.log.Info("new game")
		g.screens.Replace(g.newPlayScreen())
		return nil
	case errors.Is(err, screens.ErrQuit):
		return ebiten.Termination
	}
	return fmt.Errorf("screen update: %w", err)
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screens.Draw(screen)
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}

// Close releases the script VM and the audio player
func (g *Game) Close() {
	if g.audio != nil {
		g.audio.Close()
	}
	g.scripts.Close()
}
