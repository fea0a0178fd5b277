package data

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Actor kinds a template can describe
const (
	KindAsteroid = "asteroid"
	KindShip     = "ship"
)

const (
	defaultDrawOrder = 100
	defaultScale     = 1
)

// KeyBindings names the ship's four movement keys
type KeyBindings struct {
	Forward          string `yaml:"forward"`
	Back             string `yaml:"back"`
	Clockwise        string `yaml:"clockwise"`
	CounterClockwise string `yaml:"counter_clockwise"`
}

// ActorTemplate describes how to assemble one kind of actor
type ActorTemplate struct {
	ID      string `yaml:"id"`
	Kind    string `yaml:"kind"`
	Texture string `yaml:"texture"`

	DrawOrder int      `yaml:"draw_order"`
	Radius    float32  `yaml:"radius"`
	Scale     float32  `yaml:"scale"`
	Count     int      `yaml:"count"` // spawned at startup
	Tags      []string `yaml:"tags"`
	Script    string   `yaml:"script"` // Lua table name providing the behaviour

	// Asteroid motion
	ForwardSpeed float32 `yaml:"forward_speed"`
	AngularSpeed float32 `yaml:"angular_speed"`

	// Ship controls
	MaxForwardSpeed float32     `yaml:"max_forward_speed"`
	MaxAngularSpeed float32     `yaml:"max_angular_speed"`
	Keys            KeyBindings `yaml:"keys"`
}

func (t *ActorTemplate) applyDefaults() {
	if t.DrawOrder == 0 {
		t.DrawOrder = defaultDrawOrder
	}
	if t.Scale == 0 {
		t.Scale = defaultScale
	}
}

func (t *ActorTemplate) validate() error {
	if t.ID == "" {
		return errors.New("missing id")
	}
	switch t.Kind {
	case KindAsteroid, KindShip:
	default:
		return fmt.Errorf("%s: unknown kind %q", t.ID, t.Kind)
	}
	if t.Radius < 0 {
		return fmt.Errorf("%s: negative radius", t.ID)
	}
	if t.Scale < 0 {
		return fmt.Errorf("%s: negative scale", t.ID)
	}
	if t.Count < 0 {
		return fmt.Errorf("%s: negative count", t.ID)
	}
	return nil
}

// TemplateTable holds actor templates by ID, remembering file order
type TemplateTable struct {
	templates map[string]*ActorTemplate
	order     []string
}

// LoadTemplates loads an actor template YAML file
func LoadTemplates(path string) (*TemplateTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read actor templates: %w", err)
	}
	return ParseTemplates(raw)
}

// ParseTemplates parses a YAML list of actor templates
func ParseTemplates(raw []byte) (*TemplateTable, error) {
	var entries []ActorTemplate
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse actor templates: %w", err)
	}

	t := &TemplateTable{
		templates: make(map[string]*ActorTemplate, len(entries)),
		order:     make([]string, 0, len(entries)),
	}
	for i := range entries {
		e := &entries[i]
		e.applyDefaults()
		if err := e.validate(); err != nil {
			return nil, fmt.Errorf("actor template %d: %w", i, err)
		}
		if _, dup := t.templates[e.ID]; dup {
			return nil, fmt.Errorf("actor template %d: duplicate id %q", i, e.ID)
		}
		t.templates[e.ID] = e
		t.order = append(t.order, e.ID)
	}
	return t, nil
}

// Get returns the template with the given ID, or nil if none.
func (t *TemplateTable) Get(id string) *ActorTemplate {
	return t.templates[id]
}

// All returns the templates in file order
func (t *TemplateTable) All() []*ActorTemplate {
	out := make([]*ActorTemplate, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.templates[id])
	}
	return out
}

// OfKind returns the templates of one kind in file order
func (t *TemplateTable) OfKind(kind string) []*ActorTemplate {
	var out []*ActorTemplate
	for _, id := range t.order {
		if tmpl := t.templates[id]; tmpl.Kind == kind {
			out = append(out, tmpl)
		}
	}
	return out
}

// Count returns the total number of templates loaded.
func (t *TemplateTable) Count() int {
	return len(t.templates)
}
