package view

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const defaultBounceDuration = 0.3 // seconds

// bounce springs a DragView's pan back to zero. It stops immediately if the
// view is removed or grabbed again.
type bounce struct {
	view *DragView
	x, y *gween.Tween
	done bool
}

func newBounce(v *DragView, duration float32, fn ease.TweenFunc) *bounce {
	return &bounce{
		view: v,
		x:    gween.New(float32(v.PanX), 0, duration, fn),
		y:    gween.New(float32(v.PanY), 0, duration, fn),
	}
}

// update advances the tween by dt seconds and writes the pan. When the tween
// finishes the pan is snapped to zero and the view re-measured.
func (b *bounce) update(dt float32) {
	if b.done {
		return
	}
	if b.view.removed {
		b.done = true
		return
	}
	x, fx := b.x.Update(dt)
	y, fy := b.y.Update(dt)
	b.view.PanX, b.view.PanY = float64(x), float64(y)
	if fx && fy {
		b.done = true
		b.view.PanX, b.view.PanY = 0, 0
		b.view.Measure()
	}
}

// stop ends the bounce where it is.
func (b *bounce) stop() {
	b.done = true
}
