package systems

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-asteroids/ecs"
)

// ClearColor is the light grey the play field is cleared to each frame
var ClearColor = color.RGBA{220, 220, 220, 255}

// RenderSystem draws the world's draw list onto an ebiten image. World space
// is y-up with the origin at the centre of the screen.
type RenderSystem struct {
	screenWidth  int
	screenHeight int
	target       *ebiten.Image
	skipped      int
}

// NewRenderSystem creates a renderer for a screen of the given size
func NewRenderSystem(screenWidth, screenHeight int) *RenderSystem {
	return &RenderSystem{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
	}
}

// Draw clears screen and renders every drawable in draw order
func (s *RenderSystem) Draw(world *ecs.World, screen *ebiten.Image) {
	screen.Fill(ClearColor)

	s.target = screen
	world.Render(s)
	s.target = nil
}

// Submit implements ecs.Renderer
func (s *RenderSystem) Submit(cmds []ecs.DrawCommand) {
	if s.target == nil {
		return
	}
	for _, cmd := range cmds {
		tex, ok := cmd.Texture.(*Texture)
		if !ok || tex.Image == nil {
			s.skipped++
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM = WorldToScreen(cmd.Transform, cmd.Width, cmd.Height, s.screenWidth, s.screenHeight)
		op.Filter = ebiten.FilterLinear
		s.target.DrawImage(tex.Image, op)
	}
}

// Skipped returns how many commands carried a texture this renderer cannot draw
func (s *RenderSystem) Skipped() int {
	return s.skipped
}

// WorldToScreen builds the image transform for a texture of size w x h drawn
// at world: centred on the actor origin, kept upright in the y-up world, then
// flipped into screen space around the screen centre.
func WorldToScreen(world mgl32.Mat4, w, h, screenWidth, screenHeight int) ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-float64(w)/2, -float64(h)/2)
	g.Scale(1, -1)
	g.Concat(affine(world))
	g.Scale(1, -1)
	g.Translate(float64(screenWidth)/2, float64(screenHeight)/2)
	return g
}

// affine keeps the x/y rows of a 2D transform stored in a 4x4 matrix
func affine(m mgl32.Mat4) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, float64(m.At(0, 0)))
	g.SetElement(0, 1, float64(m.At(0, 1)))
	g.SetElement(0, 2, float64(m.At(0, 3)))
	g.SetElement(1, 0, float64(m.At(1, 0)))
	g.SetElement(1, 1, float64(m.At(1, 1)))
	g.SetElement(1, 2, float64(m.At(1, 3)))
	return g
}
