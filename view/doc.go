// Package view is an [Ebitengine] adapter for dnd.
//
// A [Board] turns mouse and touch input into DragStart/DragMove/DragEnd calls
// on a dnd.Surface and draws its views. [DragView] registers a draggable whose
// on-screen translation follows the pointer and optionally springs back when
// released (tweened with [gween]). [DropView] registers a droppable whose rect
// is pushed to the surface whenever it changes.
//
// Call [Board.Update] from ebiten.Game.Update and [Board.Draw] from
// ebiten.Game.Draw:
//
//	surface := dnd.NewSurface(dnd.Config{})
//	board := view.NewBoard(surface, &view.EbitenPointer{})
//
//	board.AddDropView(view.DropViewConfig{
//		Rect:   dnd.Rect{X: 400, Y: 100, Width: 160, Height: 160},
//		OnDrop: func(d dnd.Draggable, pos dnd.Vec2) { /* ... */ },
//	})
//	board.AddDragView(view.DragViewConfig{
//		Rect:       dnd.Rect{X: 40, Y: 40, Width: 60, Height: 60},
//		BounceBack: true,
//	})
//
// Synthetic input ([Board.InjectDrag] and friends) is consumed ahead of the
// real pointer, one event per Update, which makes scripted demos and tests
// possible without a window.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package view
