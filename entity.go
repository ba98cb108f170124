package dnd

// Draggable is a region that can be the subject of a drag session.
//
// Records handed to callbacks and returned from lookups are copies; change a
// registered draggable only through Surface.UpdateDraggable.
type Draggable struct {
	ID   ID
	Rect Rect

	// Dragging is true while this draggable is the surface's drag subject.
	// It is owned by the surface and cannot be set through options.
	Dragging bool

	Payload any

	// Callbacks (nil by default).
	OnDragStart func()
	// OnDragEnd receives the droppable the drag ended over, or nil.
	OnDragEnd func(target *Droppable)
}

// Droppable is a region that can receive a dropped draggable.
type Droppable struct {
	ID      ID
	Rect    Rect
	Payload any

	OnDrop  func(d Draggable, pos Vec2)
	OnEnter func(d Draggable, pos Vec2)
	OnLeave func(d Draggable, pos Vec2)
}

// DraggableOption sets one field of a Draggable. Options given at update time
// overwrite only the fields they name.
type DraggableOption func(*Draggable)

// DroppableOption sets one field of a Droppable.
type DroppableOption func(*Droppable)

// DragRect sets the draggable's measured rectangle.
func DragRect(r Rect) DraggableOption {
	return func(d *Draggable) { d.Rect = r }
}

// DragPayload attaches arbitrary data to the draggable.
func DragPayload(p any) DraggableOption {
	return func(d *Draggable) { d.Payload = p }
}

// OnDragStart sets the drag-start callback. A nil fn clears it.
func OnDragStart(fn func()) DraggableOption {
	return func(d *Draggable) { d.OnDragStart = fn }
}

// OnDragEnd sets the drag-end callback. A nil fn clears it.
func OnDragEnd(fn func(target *Droppable)) DraggableOption {
	return func(d *Draggable) { d.OnDragEnd = fn }
}

// DropRect sets the droppable's measured rectangle.
func DropRect(r Rect) DroppableOption {
	return func(d *Droppable) { d.Rect = r }
}

// DropPayload attaches arbitrary data to the droppable.
func DropPayload(p any) DroppableOption {
	return func(d *Droppable) { d.Payload = p }
}

// OnDrop sets the drop callback. A nil fn clears it.
func OnDrop(fn func(d Draggable, pos Vec2)) DroppableOption {
	return func(d *Droppable) { d.OnDrop = fn }
}

// OnEnter sets the enter callback. A nil fn clears it.
func OnEnter(fn func(d Draggable, pos Vec2)) DroppableOption {
	return func(d *Droppable) { d.OnEnter = fn }
}

// OnLeave sets the leave callback. A nil fn clears it.
func OnLeave(fn func(d Draggable, pos Vec2)) DroppableOption {
	return func(d *Droppable) { d.OnLeave = fn }
}

func newDraggable(id ID, opts []DraggableOption) *Draggable {
	d := &Draggable{ID: id}
	applyDraggable(d, opts)
	return d
}

func newDroppable(id ID, opts []DroppableOption) *Droppable {
	d := &Droppable{ID: id}
	applyDroppable(d, opts)
	return d
}

// applyDraggable runs opts against d. The id and dragging flag are restored
// afterwards so an option can never move an entity to another id or fake a
// session.
func applyDraggable(d *Draggable, opts []DraggableOption) {
	id, dragging := d.ID, d.Dragging
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	d.ID, d.Dragging = id, dragging
}

func applyDroppable(d *Droppable, opts []DroppableOption) {
	id := d.ID
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	d.ID = id
}
