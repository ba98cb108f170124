// Package dnd coordinates drag-and-drop between draggable and droppable
// regions on a 2-D surface.
//
// A [Surface] keeps a registry of draggables and droppables and a single drag
// session. Adapters (see package view for an [Ebitengine] one) measure regions
// and report them with UpdateDraggable/UpdateDroppable, and translate pointer
// gestures into [Surface.DragStart], [Surface.DragMove] and
// [Surface.DragEnd]. The surface hit-tests, tracks the hover target and
// invokes the entities' callbacks exactly once per transition.
//
// # Quick start
//
//	s := dnd.NewSurface(dnd.Config{})
//
//	card, _ := s.RegisterDraggable("card",
//		dnd.DragRect(dnd.Rect{X: 0, Y: 0, Width: 10, Height: 10}),
//		dnd.OnDragEnd(func(target *dnd.Droppable) {
//			if target == nil {
//				// dropped on nothing
//			}
//		}),
//	)
//	s.RegisterDroppable("bin",
//		dnd.DropRect(dnd.Rect{X: 0, Y: 0, Width: 20, Height: 20}),
//		dnd.OnDrop(func(d dnd.Draggable, pos dnd.Vec2) { /* ... */ }),
//	)
//
//	s.DragStart(card, dnd.Vec2{X: 5, Y: 5})
//	s.DragMove(card, dnd.Vec2{X: 8, Y: 8}) // bin.OnEnter
//	s.DragEnd(card, dnd.Vec2{X: 8, Y: 8})  // bin.OnDrop, card.OnDragEnd(bin)
//
// # Hit testing
//
// The point tested is the pointer position minus the drag offset captured at
// DragStart, so a draggable grabbed near a corner is tested at its anchor
// (its center by default, see [AnchorMode]). Rect edges are inclusive. When
// droppables overlap, the one registered first wins.
//
// # Hover
//
// OnEnter fires when the drag moves over a new droppable and OnLeave when it
// leaves. With [HoverSymmetric] (the default) a move straight from A to B
// fires A.OnLeave then B.OnEnter. [HoverLegacy] fires only B.OnEnter in that
// case. DragEnd clears the hover target without firing OnLeave.
//
// # Threading
//
// A Surface is single-threaded: callbacks run synchronously inside the call
// that triggered them. Unknown ids are ignored everywhere except registration,
// which fails with a [*DuplicateIDError] for an id already in use.
//
// [Ebitengine]: https://ebitengine.org
package dnd
