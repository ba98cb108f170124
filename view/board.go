package view

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/dnd"
)

const defaultDragDeadZone = 4.0 // pixels

// pointerState tracks the primary pointer between frames.
type pointerState struct {
	down         bool
	startX       float64
	startY       float64
	lastX        float64
	lastY        float64
	hit          *DragView // view under the pointer at press time
	dragging     bool
	panX0, panY0 float64 // hit's pan at press time
}

// Board drives a dnd.Surface from pointer input and draws its views.
// A Board is single-threaded, like the surface it owns.
type Board struct {
	surface *dnd.Surface
	source  PointerSource

	drags []*DragView
	drops []*DropView

	pointer      pointerState
	dragDeadZone float64
	injectQueue  []syntheticPointerEvent

	bounces        []*bounce
	bounceDuration float32
	bounceEase     ease.TweenFunc
}

// NewBoard creates a board for surface. source may be nil, in which case
// only injected input is processed.
func NewBoard(surface *dnd.Surface, source PointerSource) *Board {
	return &Board{
		surface:        surface,
		source:         source,
		dragDeadZone:   defaultDragDeadZone,
		bounceDuration: defaultBounceDuration,
		bounceEase:     ease.OutBack,
	}
}

// Surface returns the surface the board drives.
func (b *Board) Surface() *dnd.Surface {
	return b.surface
}

// SetDragDeadZone sets the minimum movement in pixels before a press becomes
// a drag.
func (b *Board) SetDragDeadZone(pixels float64) {
	b.dragDeadZone = pixels
}

// SetBounce sets the duration in seconds and easing of the bounce-back
// animation.
func (b *Board) SetBounce(duration float32, fn ease.TweenFunc) {
	b.bounceDuration = duration
	b.bounceEase = fn
}

// DragViews returns the board's drag views in draw order. The returned slice
// must not be mutated.
func (b *Board) DragViews() []*DragView {
	return b.drags
}

// DropViews returns the board's drop views. The returned slice must not be
// mutated.
func (b *Board) DropViews() []*DropView {
	return b.drops
}

// Update processes one frame of input and advances bounce animations.
func (b *Board) Update() {
	b.step(float32(1.0 / float64(ebiten.TPS())))
}

// step is Update with an explicit frame duration.
func (b *Board) step(dt float32) {
	if !b.processInjectedInput() && b.source != nil {
		x, y, pressed := b.source.Pointer()
		b.processPointer(x, y, pressed)
	}
	b.updateBounces(dt)
}

// hitTest returns the topmost drag view containing (x, y), or nil.
func (b *Board) hitTest(x, y float64) *DragView {
	for i := len(b.drags) - 1; i >= 0; i-- {
		if b.drags[i].Rect().Contains(x, y) {
			return b.drags[i]
		}
	}
	return nil
}

// processPointer runs the press/drag/release state machine for the pointer.
func (b *Board) processPointer(x, y float64, pressed bool) {
	ps := &b.pointer

	switch {
	case pressed && !ps.down:
		*ps = pointerState{down: true, startX: x, startY: y, lastX: x, lastY: y}
		if v := b.hitTest(x, y); v != nil {
			b.stopBounce(v)
			ps.hit = v
			ps.panX0, ps.panY0 = v.PanX, v.PanY
		}

	case !pressed && ps.down:
		v, dragging := ps.hit, ps.dragging
		*ps = pointerState{lastX: x, lastY: y}
		if dragging && v != nil {
			b.surface.DragEnd(v.id, dnd.Vec2{X: x, Y: y})
			// OnDragEnd may have removed the view.
			if !v.removed {
				b.release(v)
			}
		}

	case pressed && ps.down:
		if x == ps.lastX && y == ps.lastY {
			return
		}
		v := ps.hit
		if v != nil && !ps.dragging {
			dx := x - ps.startX
			dy := y - ps.startY
			if math.Sqrt(dx*dx+dy*dy) > b.dragDeadZone {
				ps.dragging = true
				v.Measure()
				b.surface.DragStart(v.id, dnd.Vec2{X: ps.startX, Y: ps.startY})
			}
		}
		ps.lastX, ps.lastY = x, y
		// DragStart callbacks may have removed the view.
		if ps.dragging && ps.hit != nil {
			v.PanX = ps.panX0 + x - ps.startX
			v.PanY = ps.panY0 + y - ps.startY
			b.surface.DragMove(v.id, dnd.Vec2{X: x, Y: y})
		}

	default:
		ps.lastX, ps.lastY = x, y
	}
}

// release settles a view after its drag ended: spring back, or adopt the pan
// as the new home.
func (b *Board) release(v *DragView) {
	if v.BounceBack {
		b.bounces = append(b.bounces, newBounce(v, b.bounceDuration, b.bounceEase))
		return
	}
	v.Home = v.Rect()
	v.PanX, v.PanY = 0, 0
	v.Measure()
}

func (b *Board) updateBounces(dt float32) {
	n := 0
	for _, bo := range b.bounces {
		bo.update(dt)
		if !bo.done {
			b.bounces[n] = bo
			n++
		}
	}
	for i := n; i < len(b.bounces); i++ {
		b.bounces[i] = nil
	}
	b.bounces = b.bounces[:n]
}

func (b *Board) stopBounce(v *DragView) {
	for _, bo := range b.bounces {
		if bo.view == v {
			bo.stop()
		}
	}
}

// Bouncing reports whether v is springing back.
func (b *Board) Bouncing(v *DragView) bool {
	for _, bo := range b.bounces {
		if bo.view == v && !bo.done {
			return true
		}
	}
	return false
}
