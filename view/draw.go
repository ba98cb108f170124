package view

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/dnd"
)

const outlineWidth = 2.0

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.White)
	}
	return whitePixelImage
}

// Draw renders drop views, then drag views in insertion order. The dragged
// view is drawn last so it stays on top while moving.
func (b *Board) Draw(screen *ebiten.Image) {
	for _, v := range b.drops {
		c := v.Color
		if v.Hovered() {
			c = v.HoverColor
		}
		fillRect(screen, v.rect, c)
	}
	var top *DragView
	for _, v := range b.drags {
		if v.Dragging() {
			top = v
			continue
		}
		fillRect(screen, v.Rect(), v.Color)
	}
	if top != nil {
		fillRect(screen, top.Rect(), top.Color)
		strokeRect(screen, top.Rect(), color.White)
	}
}

func fillRect(dst *ebiten.Image, r dnd.Rect, c color.Color) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(ensureWhitePixel(), &op)
}

func strokeRect(dst *ebiten.Image, r dnd.Rect, c color.Color) {
	w := outlineWidth
	fillRect(dst, dnd.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: w}, c)
	fillRect(dst, dnd.Rect{X: r.X, Y: r.Y + r.Height - w, Width: r.Width, Height: w}, c)
	fillRect(dst, dnd.Rect{X: r.X, Y: r.Y, Width: w, Height: r.Height}, c)
	fillRect(dst, dnd.Rect{X: r.X + r.Width - w, Y: r.Y, Width: w, Height: r.Height}, c)
}
