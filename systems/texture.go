package systems

import (
	"fmt"
	"image"
	_ "image/png"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-asteroids/ecs"
)

// Texture is an ebiten image usable as an ecs.Texture
type Texture struct {
	Image *ebiten.Image
}

func (t *Texture) Width() int {
	if t == nil || t.Image == nil {
		return 0
	}
	return t.Image.Bounds().Dx()
}

func (t *Texture) Height() int {
	if t == nil || t.Image == nil {
		return 0
	}
	return t.Image.Bounds().Dy()
}

// TextureLoader loads PNG textures from a file system. It implements
// ecs.ResourceLoader; the world caches what it returns.
type TextureLoader struct {
	fsys fs.FS
}

// NewTextureLoader creates a loader reading from fsys
func NewTextureLoader(fsys fs.FS) *TextureLoader {
	return &TextureLoader{fsys: fsys}
}

// Load decodes name and uploads it to the GPU
func (l *TextureLoader) Load(name string) (ecs.Texture, error) {
	img, err := DecodeImage(l.fsys, name)
	if err != nil {
		return nil, err
	}
	return &Texture{Image: ebiten.NewImageFromImage(img)}, nil
}

// DecodeImage opens and decodes an image file from fsys
func DecodeImage(fsys fs.FS, name string) (image.Image, error) {
	file, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}
