package view

import (
	"image/color"

	"github.com/phanxgames/dnd"
)

// Default view colors.
var (
	DefaultDragColor  = color.RGBA{R: 0x4d, G: 0xb3, B: 0xe6, A: 0xff}
	DefaultDropColor  = color.RGBA{R: 0x3a, G: 0x34, B: 0x4d, A: 0xff}
	DefaultHoverColor = color.RGBA{R: 0xf2, G: 0xc1, B: 0x4e, A: 0xff}
)

// DragViewConfig describes a DragView.
type DragViewConfig struct {
	// ID is the draggable id. Empty generates one.
	ID   dnd.ID
	Rect dnd.Rect
	// BounceBack springs the view back to Rect when released instead of
	// leaving it where it was dropped.
	BounceBack bool
	Color      color.Color
	Payload    any

	OnDragStart func()
	OnDragEnd   func(target *dnd.Droppable)
}

// DragView is a draggable rectangle on a Board.
type DragView struct {
	board *Board
	id    dnd.ID

	// Home is the resting rect. PanX/PanY is the translation applied while
	// dragging or bouncing back.
	Home       dnd.Rect
	PanX, PanY float64
	BounceBack bool
	Color      color.Color

	removed bool
}

// AddDragView registers a draggable and adds its view to the board. Views
// added later are drawn and hit-tested on top.
func (b *Board) AddDragView(cfg DragViewConfig) (*DragView, error) {
	id, err := b.surface.RegisterDraggable(cfg.ID,
		dnd.DragRect(cfg.Rect),
		dnd.DragPayload(cfg.Payload),
		dnd.OnDragStart(cfg.OnDragStart),
		dnd.OnDragEnd(cfg.OnDragEnd),
	)
	if err != nil {
		return nil, err
	}
	v := &DragView{
		board:      b,
		id:         id,
		Home:       cfg.Rect,
		BounceBack: cfg.BounceBack,
		Color:      cfg.Color,
	}
	if v.Color == nil {
		v.Color = DefaultDragColor
	}
	b.drags = append(b.drags, v)
	return v, nil
}

// ID returns the draggable id.
func (v *DragView) ID() dnd.ID {
	return v.id
}

// Rect returns the on-screen rect: Home translated by the pan.
func (v *DragView) Rect() dnd.Rect {
	return v.Home.Translate(dnd.Vec2{X: v.PanX, Y: v.PanY})
}

// Dragging reports whether this view is the surface's drag subject.
func (v *DragView) Dragging() bool {
	return !v.removed && v.board.surface.Session().DraggingID == v.id
}

// Measure pushes the current on-screen rect to the surface.
func (v *DragView) Measure() {
	if v.removed {
		return
	}
	v.board.surface.UpdateDraggable(v.id, dnd.DragRect(v.Rect()))
}

// Set updates the draggable's callbacks or payload.
func (v *DragView) Set(opts ...dnd.DraggableOption) {
	if v.removed {
		return
	}
	v.board.surface.UpdateDraggable(v.id, opts...)
}

// Remove unregisters the draggable and removes the view. If the view is
// being dragged, the drag is ended at the last pointer position first.
func (v *DragView) Remove() {
	if v.removed {
		return
	}
	b := v.board
	v.removed = true
	if b.pointer.hit == v {
		dragging := b.pointer.dragging
		b.pointer.hit = nil
		b.pointer.dragging = false
		if dragging {
			b.surface.DragEnd(v.id, dnd.Vec2{X: b.pointer.lastX, Y: b.pointer.lastY})
		}
	}
	b.surface.UnregisterDraggable(v.id)
	for i, d := range b.drags {
		if d == v {
			copy(b.drags[i:], b.drags[i+1:])
			b.drags[len(b.drags)-1] = nil
			b.drags = b.drags[:len(b.drags)-1]
			break
		}
	}
}

// DropViewConfig describes a DropView.
type DropViewConfig struct {
	// ID is the droppable id. Empty generates one.
	ID         dnd.ID
	Rect       dnd.Rect
	Color      color.Color
	HoverColor color.Color
	Payload    any

	OnDrop  func(d dnd.Draggable, pos dnd.Vec2)
	OnEnter func(d dnd.Draggable, pos dnd.Vec2)
	OnLeave func(d dnd.Draggable, pos dnd.Vec2)
}

// DropView is a droppable rectangle on a Board.
type DropView struct {
	board      *Board
	id         dnd.ID
	rect       dnd.Rect
	Color      color.Color
	HoverColor color.Color
	removed    bool
}

// AddDropView registers a droppable and adds its view to the board.
func (b *Board) AddDropView(cfg DropViewConfig) (*DropView, error) {
	id, err := b.surface.RegisterDroppable(cfg.ID,
		dnd.DropRect(cfg.Rect),
		dnd.DropPayload(cfg.Payload),
		dnd.OnDrop(cfg.OnDrop),
		dnd.OnEnter(cfg.OnEnter),
		dnd.OnLeave(cfg.OnLeave),
	)
	if err != nil {
		return nil, err
	}
	v := &DropView{
		board:      b,
		id:         id,
		rect:       cfg.Rect,
		Color:      cfg.Color,
		HoverColor: cfg.HoverColor,
	}
	if v.Color == nil {
		v.Color = DefaultDropColor
	}
	if v.HoverColor == nil {
		v.HoverColor = DefaultHoverColor
	}
	b.drops = append(b.drops, v)
	return v, nil
}

// ID returns the droppable id.
func (v *DropView) ID() dnd.ID {
	return v.id
}

// Rect returns the view's rect.
func (v *DropView) Rect() dnd.Rect {
	return v.rect
}

// SetRect moves or resizes the view and pushes the new rect to the surface.
func (v *DropView) SetRect(r dnd.Rect) {
	if v.removed {
		return
	}
	v.rect = r
	v.board.surface.UpdateDroppable(v.id, dnd.DropRect(r))
}

// Set updates the droppable's callbacks or payload.
func (v *DropView) Set(opts ...dnd.DroppableOption) {
	if v.removed {
		return
	}
	v.board.surface.UpdateDroppable(v.id, opts...)
}

// Hovered reports whether the current drag is over this view.
func (v *DropView) Hovered() bool {
	return !v.removed && v.board.surface.Session().HoveredID == v.id
}

// Remove unregisters the droppable and removes the view.
func (v *DropView) Remove() {
	if v.removed {
		return
	}
	v.removed = true
	b := v.board
	b.surface.UnregisterDroppable(v.id)
	for i, d := range b.drops {
		if d == v {
			copy(b.drops[i:], b.drops[i+1:])
			b.drops[len(b.drops)-1] = nil
			b.drops = b.drops[:len(b.drops)-1]
			break
		}
	}
}
