package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Window    WindowConfig  `toml:"window"`
	PlayField PlayField     `toml:"play_field"`
	Game      GameConfig    `toml:"game"`
	Assets    AssetsConfig  `toml:"assets"`
	Audio     AudioConfig   `toml:"audio"`
	Logging   LoggingConfig `toml:"logging"`
}

type WindowConfig struct {
	Title      string `toml:"title"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Fullscreen bool   `toml:"fullscreen"`
}

// PlayField bounds the world space actors wrap around in. Coordinates past
// a bound are reset to WrapOffset inside the opposite bound.
type PlayField struct {
	MinX       float32 `toml:"min_x"`
	MaxX       float32 `toml:"max_x"`
	MinY       float32 `toml:"min_y"`
	MaxY       float32 `toml:"max_y"`
	WrapOffset float32 `toml:"wrap_offset"`
}

type GameConfig struct {
	Seed      int64   `toml:"seed"` // 0 = seed from clock
	Lives     int     `toml:"lives"`
	TimeScale float32 `toml:"time_scale"`
	ShowFPS   bool    `toml:"show_fps"`
}

type AssetsConfig struct {
	Root      string `toml:"root"`      // directory textures are resolved against
	Templates string `toml:"templates"` // YAML actor templates
	Scripts   string `toml:"scripts"`   // directory of .lua behaviour scripts
}

type AudioConfig struct {
	BGM    string  `toml:"bgm"` // empty = no music
	Volume float64 `toml:"volume"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads the TOML file at path over the defaults. A missing file is not
// an error: the defaults are returned as-is.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the runtime cannot work with.
func (c *Config) Validate() error {
	pf := c.PlayField
	if pf.MinX >= pf.MaxX || pf.MinY >= pf.MaxY {
		return fmt.Errorf("play_field: empty bounds [%g,%g]x[%g,%g]", pf.MinX, pf.MaxX, pf.MinY, pf.MaxY)
	}
	if pf.WrapOffset < 0 || pf.WrapOffset*2 > pf.MaxX-pf.MinX || pf.WrapOffset*2 > pf.MaxY-pf.MinY {
		return fmt.Errorf("play_field: wrap_offset %g out of range", pf.WrapOffset)
	}
	if c.Game.Lives <= 0 {
		return fmt.Errorf("game: lives must be positive, got %d", c.Game.Lives)
	}
	if c.Game.TimeScale <= 0 {
		return fmt.Errorf("game: time_scale must be positive, got %g", c.Game.TimeScale)
	}
	return nil
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Asteroids",
			Width:  ScreenWidth,
			Height: ScreenHeight,
		},
		PlayField: DefaultPlayField(),
		Game: GameConfig{
			Lives:     3,
			TimeScale: 1.0,
			ShowFPS:   true,
		},
		Assets: AssetsConfig{
			Root:      "Assets",
			Templates: "data/actors.yaml",
			Scripts:   "scripts",
		},
		Audio: AudioConfig{
			Volume: 0.5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// DefaultPlayField is the 1024x768 field centred on the origin.
func DefaultPlayField() PlayField {
	return PlayField{
		MinX:       -ScreenWidth / 2,
		MaxX:       ScreenWidth / 2,
		MinY:       -ScreenHeight / 2,
		MaxY:       ScreenHeight / 2,
		WrapOffset: 2,
	}
}

// Contains reports whether (x, y) lies inside the field, bounds included.
func (p PlayField) Contains(x, y float32) bool {
	return x >= p.MinX && x <= p.MaxX && y >= p.MinY && y <= p.MaxY
}

// Wrap maps a coordinate past a bound to just inside the opposite bound.
func (p PlayField) Wrap(x, y float32) (float32, float32) {
	if x < p.MinX {
		x = p.MaxX - p.WrapOffset
	} else if x > p.MaxX {
		x = p.MinX + p.WrapOffset
	}
	if y < p.MinY {
		y = p.MaxY - p.WrapOffset
	} else if y > p.MaxY {
		y = p.MinY + p.WrapOffset
	}
	return x, y
}
