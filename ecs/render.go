package ecs

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrResourceNotFound is wrapped by every failed resource load
var ErrResourceNotFound = errors.New("resource not found")

// Texture is a loaded image handle with its pixel dimensions. Width and
// Height must report 0 on a nil receiver rather than panic.
type Texture interface {
	Width() int
	Height() int
}

// ResourceLoader loads a texture by name (usually a file path)
type ResourceLoader interface {
	Load(name string) (Texture, error)
}

// ResourceLoaderFunc adapts a function to ResourceLoader
type ResourceLoaderFunc func(name string) (Texture, error)

func (f ResourceLoaderFunc) Load(name string) (Texture, error) { return f(name) }

// DrawCommand is one entry handed to the renderer
type DrawCommand struct {
	Transform mgl32.Mat4 // owner world transform
	Texture   Texture
	Width     int
	Height    int
}

// Drawable is anything kept in the world's draw list
type Drawable interface {
	DrawOrder() int
	// DrawCommand returns false when there is nothing to draw this frame
	DrawCommand() (DrawCommand, bool)
}

// Renderer receives the frame's draw commands sorted by draw order
type Renderer interface {
	Submit(cmds []DrawCommand)
}

// Collider is a circle in world space registered for collision tests
type Collider interface {
	Center() mgl32.Vec2
	Radius() float32
	Owner() *Actor
}
