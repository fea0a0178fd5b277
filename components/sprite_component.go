package components

import (
	"ebiten-asteroids/ecs"
)

// SpriteComponent draws a texture at its owner's world transform. It sits
// in the world's draw list from creation until it is detached.
type SpriteComponent struct {
	ecs.BaseComponent
	drawOrder int
	texture   ecs.Texture
	texWidth  int
	texHeight int
	world     *ecs.World
}

// NewSpriteComponent attaches a sprite to owner and adds it to the draw list
func NewSpriteComponent(owner *ecs.Actor, drawOrder int) *SpriteComponent {
	s := &SpriteComponent{
		BaseComponent: ecs.NewBaseComponent(owner, DefaultUpdateOrder, ecs.KindSprite),
		drawOrder:     drawOrder,
	}
	if owner.AddComponent(s) && owner.World() != nil {
		s.world = owner.World()
		s.world.AddDrawable(s)
	}
	return s
}

// SetTexture sets the texture and caches its dimensions
func (s *SpriteComponent) SetTexture(texture ecs.Texture) {
	s.texture = texture
	if texture == nil {
		s.texWidth, s.texHeight = 0, 0
		return
	}
	s.texWidth = texture.Width()
	s.texHeight = texture.Height()
}

func (s *SpriteComponent) Texture() ecs.Texture { return s.texture }
func (s *SpriteComponent) DrawOrder() int       { return s.drawOrder }
func (s *SpriteComponent) TexWidth() int        { return s.texWidth }
func (s *SpriteComponent) TexHeight() int       { return s.texHeight }

// DrawCommand implements ecs.Drawable. The owner's transform is resolved
// first: actors spawned mid-frame or moved by a system are still dirty here.
func (s *SpriteComponent) DrawCommand() (ecs.DrawCommand, bool) {
	if s.texture == nil {
		return ecs.DrawCommand{}, false
	}
	s.Owner().ComputeWorldTransform()
	return ecs.DrawCommand{
		Transform: s.Owner().WorldTransform(),
		Texture:   s.texture,
		Width:     s.texWidth,
		Height:    s.texHeight,
	}, true
}

func (s *SpriteComponent) OnDetach() {
	if s.world != nil {
		s.world.RemoveDrawable(s)
		s.world = nil
	}
}
