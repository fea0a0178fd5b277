package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// glyphWidth is the advance of ebitenutil's debug font
const glyphWidth = 6

// BaseScreen provides no-op screen behaviour for overlays to embed
type BaseScreen struct{}

// Update implements the Screen interface
func (s *BaseScreen) Update() error {
	return nil
}

// Draw implements the Screen interface
func (s *BaseScreen) Draw(screen *ebiten.Image) {}

// drawCentered prints each line centred horizontally starting at y
func drawCentered(screen *ebiten.Image, lines []string, y int) {
	width := screen.Bounds().Dx()
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, (width-len(line)*glyphWidth)/2, y+i*16)
	}
}

// drawFrame outlines a w x h box at the image origin
func drawFrame(img *ebiten.Image, w, h int, clr color.Color) {
	frameWidth := 2.0
	ebitenutil.DrawRect(img, 0, 0, frameWidth, float64(h), clr)
	ebitenutil.DrawRect(img, float64(w)-frameWidth, 0, frameWidth, float64(h), clr)
	ebitenutil.DrawRect(img, 0, 0, float64(w), frameWidth, clr)
	ebitenutil.DrawRect(img, 0, float64(h)-frameWidth, float64(w), frameWidth, clr)
}
