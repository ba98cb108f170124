package dnd

// Registry holds the draggables and droppables of one surface in registration
// order. Registration order is the hit-test priority: the earliest registered
// droppable wins when several contain a point.
//
// The zero value is an empty registry ready to use. A Registry is not safe for
// concurrent use.
type Registry struct {
	draggables []*Draggable
	droppables []*Droppable
}

// RegisterDraggable adds a draggable with a zero rect, Dragging=false and the
// given options applied. It returns a *DuplicateIDError if id is already a
// registered draggable, and ErrNoID for the empty id.
func (r *Registry) RegisterDraggable(id ID, opts ...DraggableOption) error {
	if id == None {
		return ErrNoID
	}
	if r.draggable(id) != nil {
		return &DuplicateIDError{Kind: KindDraggable, ID: id}
	}
	r.draggables = append(r.draggables, newDraggable(id, opts))
	return nil
}

// RegisterDroppable adds a droppable with a zero rect and the given options
// applied. It returns a *DuplicateIDError if id is already a registered
// droppable.
func (r *Registry) RegisterDroppable(id ID, opts ...DroppableOption) error {
	if id == None {
		return ErrNoID
	}
	if r.droppable(id) != nil {
		return &DuplicateIDError{Kind: KindDroppable, ID: id}
	}
	r.droppables = append(r.droppables, newDroppable(id, opts))
	return nil
}

// UpdateDraggable applies opts to a registered draggable and reports whether
// it was found. Unknown ids are ignored.
func (r *Registry) UpdateDraggable(id ID, opts ...DraggableOption) bool {
	d := r.draggable(id)
	if d == nil {
		return false
	}
	applyDraggable(d, opts)
	return true
}

// UpdateDroppable applies opts to a registered droppable and reports whether
// it was found. Unknown ids are ignored.
func (r *Registry) UpdateDroppable(id ID, opts ...DroppableOption) bool {
	d := r.droppable(id)
	if d == nil {
		return false
	}
	applyDroppable(d, opts)
	return true
}

// UnregisterDraggable removes a draggable and reports whether it was present.
func (r *Registry) UnregisterDraggable(id ID) bool {
	for i, d := range r.draggables {
		if d.ID == id {
			copy(r.draggables[i:], r.draggables[i+1:])
			r.draggables[len(r.draggables)-1] = nil
			r.draggables = r.draggables[:len(r.draggables)-1]
			return true
		}
	}
	return false
}

// UnregisterDroppable removes a droppable and reports whether it was present.
func (r *Registry) UnregisterDroppable(id ID) bool {
	for i, d := range r.droppables {
		if d.ID == id {
			copy(r.droppables[i:], r.droppables[i+1:])
			r.droppables[len(r.droppables)-1] = nil
			r.droppables = r.droppables[:len(r.droppables)-1]
			return true
		}
	}
	return false
}

// Draggable returns a copy of the draggable registered under id.
func (r *Registry) Draggable(id ID) (Draggable, bool) {
	if d := r.draggable(id); d != nil {
		return *d, true
	}
	return Draggable{}, false
}

// Droppable returns a copy of the droppable registered under id.
func (r *Registry) Droppable(id ID) (Droppable, bool) {
	if d := r.droppable(id); d != nil {
		return *d, true
	}
	return Droppable{}, false
}

// FindDroppableContaining returns the first droppable, in registration order,
// whose rect contains p (edges inclusive).
func (r *Registry) FindDroppableContaining(p Vec2) (Droppable, bool) {
	if d := r.droppableAt(p); d != nil {
		return *d, true
	}
	return Droppable{}, false
}

// Draggables returns copies of all draggables in registration order.
func (r *Registry) Draggables() []Draggable {
	out := make([]Draggable, len(r.draggables))
	for i, d := range r.draggables {
		out[i] = *d
	}
	return out
}

// Droppables returns copies of all droppables in registration order.
func (r *Registry) Droppables() []Droppable {
	out := make([]Droppable, len(r.droppables))
	for i, d := range r.droppables {
		out[i] = *d
	}
	return out
}

// draggable returns the live record for id, or nil. The empty id never
// matches.
func (r *Registry) draggable(id ID) *Draggable {
	if id == None {
		return nil
	}
	for _, d := range r.draggables {
		if d.ID == id {
			return d
		}
	}
	return nil
}

func (r *Registry) droppable(id ID) *Droppable {
	if id == None {
		return nil
	}
	for _, d := range r.droppables {
		if d.ID == id {
			return d
		}
	}
	return nil
}

func (r *Registry) droppableAt(p Vec2) *Droppable {
	for _, d := range r.droppables {
		if d.Rect.ContainsPoint(p) {
			return d
		}
	}
	return nil
}
