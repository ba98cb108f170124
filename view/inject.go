package view

// syntheticPointerEvent is one scripted pointer sample.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

func (b *Board) enqueue(x, y float64, pressed bool) {
	b.injectQueue = append(b.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: pressed})
}

// InjectPress schedules the pointer going down at (x, y).
func (b *Board) InjectPress(x, y float64) { b.enqueue(x, y, true) }

// InjectMove schedules a held pointer at (x, y). A press followed by moves
// past the dead zone over a DragView starts a drag.
func (b *Board) InjectMove(x, y float64) { b.enqueue(x, y, true) }

// InjectRelease schedules the pointer going up at (x, y).
func (b *Board) InjectRelease(x, y float64) { b.enqueue(x, y, false) }

// InjectClick schedules a press and a release at one point, two frames.
func (b *Board) InjectClick(x, y float64) {
	b.enqueue(x, y, true)
	b.enqueue(x, y, false)
}

// InjectDrag schedules a whole gesture of frames samples: a press at the
// start point, evenly spaced held samples, and a release at the end point.
// frames below 2 is treated as 2.
func (b *Board) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	frames = max(frames, 2)
	last := float64(frames - 1)
	b.enqueue(fromX, fromY, true)
	for i := 1; i < frames-1; i++ {
		t := float64(i) / last
		b.enqueue(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t, true)
	}
	b.enqueue(toX, toY, false)
}

// Pending returns the number of scheduled samples not yet consumed.
func (b *Board) Pending() int {
	return len(b.injectQueue)
}

// processInjectedInput feeds the oldest scheduled sample to processPointer
// and reports whether there was one. The real pointer is not read on frames
// that consume a sample.
func (b *Board) processInjectedInput() bool {
	if len(b.injectQueue) == 0 {
		return false
	}
	evt := b.injectQueue[0]
	b.injectQueue = append(b.injectQueue[:0], b.injectQueue[1:]...)
	b.processPointer(evt.x, evt.y, evt.pressed)
	return true
}
