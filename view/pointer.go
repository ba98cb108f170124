package view

import "github.com/hajimehoshi/ebiten/v2"

// PointerSource reports the primary pointer once per frame.
type PointerSource interface {
	Pointer() (x, y float64, pressed bool)
}

// EbitenPointer reads the first active touch, falling back to the mouse
// cursor and left button.
type EbitenPointer struct {
	touchIDs []ebiten.TouchID
}

// Pointer returns the current pointer position and pressed state.
func (p *EbitenPointer) Pointer() (x, y float64, pressed bool) {
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	if len(p.touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(p.touchIDs[0])
		return float64(tx), float64(ty), true
	}
	mx, my := ebiten.CursorPosition()
	return float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}
