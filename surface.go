package dnd

import (
	"github.com/go-logr/logr"
)

// Config configures a Surface. The zero value is valid.
type Config struct {
	// Hover selects how moving straight from one droppable to another is
	// reported. Defaults to HoverSymmetric.
	Hover HoverPolicy
	// Anchor selects the drag offset reference point. Defaults to
	// AnchorCenter.
	Anchor AnchorMode
	// IDs generates ids for entities registered with the empty ID.
	// Defaults to a fresh *SequenceIDs.
	IDs IDGenerator
	// Sink receives every fired transition. Optional.
	Sink EventSink
	// Logger receives diagnostics. Defaults to logr.Discard(), or to a
	// stderr logger when Debug is set.
	Logger logr.Logger
	// Debug enables stderr diagnostics and session consistency checks.
	Debug bool
}

// Session is a snapshot of a surface's drag state.
type Session struct {
	// DraggingID is the drag subject, or None while idle.
	DraggingID ID
	// HoveredID is the droppable the drag is currently over, or None.
	HoveredID ID
	// Offset is the vector from the subject's anchor to the pointer at drag
	// start. Pointer positions minus Offset are what gets hit-tested.
	Offset Vec2
}

// Active reports whether a drag is in progress.
func (s Session) Active() bool {
	return s.DraggingID != None
}

// Surface is one drag-and-drop coordination context: a registry of
// draggables and droppables plus a single drag session. Independent surfaces
// can coexist.
//
// A Surface is single-threaded. All calls, and all callbacks it invokes, run
// synchronously on the caller's goroutine; hosts with several goroutines must
// funnel calls through one owner. Callbacks may call back into the surface.
type Surface struct {
	reg     Registry
	session Session
	hover   HoverPolicy
	anchor  AnchorMode
	ids     IDGenerator
	sink    EventSink
	base    logr.Logger // configured logger; zero when none was given
	log     logr.Logger
	debug   bool
}

// NewSurface creates an empty surface.
func NewSurface(cfg Config) *Surface {
	s := &Surface{
		hover:  cfg.Hover,
		anchor: cfg.Anchor,
		ids:    cfg.IDs,
		sink:   cfg.Sink,
		base:   cfg.Logger,
	}
	if s.ids == nil {
		s.ids = &SequenceIDs{}
	}
	s.SetDebugMode(cfg.Debug)
	return s
}

// SetEventSink sets the optional event sink. Pass nil to remove it.
func (s *Surface) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetDebugMode enables or disables debug mode. When enabled and no logger
// was configured, diagnostics go to stderr.
func (s *Surface) SetDebugMode(enabled bool) {
	s.debug = enabled
	switch {
	case s.base.GetSink() != nil:
		s.log = s.base
	case enabled:
		s.log = newDebugLogger()
	default:
		s.log = logr.Discard()
	}
}

// SetHoverPolicy changes the hover policy. It takes effect on the next move.
func (s *Surface) SetHoverPolicy(p HoverPolicy) {
	s.hover = p
}

// HoverPolicy returns the current hover policy.
func (s *Surface) HoverPolicy() HoverPolicy {
	return s.hover
}

// AnchorMode returns the anchor mode used for drag offsets.
func (s *Surface) AnchorMode() AnchorMode {
	return s.anchor
}

// --- Registration ---

// RegisterDraggable registers a draggable and returns its id. When id is
// None a fresh id is generated. Registering an existing id returns a
// *DuplicateIDError.
func (s *Surface) RegisterDraggable(id ID, opts ...DraggableOption) (ID, error) {
	if id == None {
		id = s.ids.NewID(KindDraggable)
	}
	if err := s.reg.RegisterDraggable(id, opts...); err != nil {
		return id, err
	}
	s.log.V(logTransitions).Info("registered", "kind", KindDraggable, "id", id)
	return id, nil
}

// RegisterDroppable registers a droppable and returns its id. When id is
// None a fresh id is generated.
func (s *Surface) RegisterDroppable(id ID, opts ...DroppableOption) (ID, error) {
	if id == None {
		id = s.ids.NewID(KindDroppable)
	}
	if err := s.reg.RegisterDroppable(id, opts...); err != nil {
		return id, err
	}
	s.log.V(logTransitions).Info("registered", "kind", KindDroppable, "id", id)
	return id, nil
}

// UpdateDraggable merges opts into a registered draggable. Unknown ids are
// ignored.
func (s *Surface) UpdateDraggable(id ID, opts ...DraggableOption) {
	if !s.reg.UpdateDraggable(id, opts...) {
		s.log.V(logIgnored).Info("update of unknown id ignored", "kind", KindDraggable, "id", id)
	}
}

// UpdateDroppable merges opts into a registered droppable. Unknown ids are
// ignored.
func (s *Surface) UpdateDroppable(id ID, opts ...DroppableOption) {
	if !s.reg.UpdateDroppable(id, opts...) {
		s.log.V(logIgnored).Info("update of unknown id ignored", "kind", KindDroppable, "id", id)
	}
}

// UnregisterDraggable removes a draggable. Removing the drag subject does not
// end the session; the adapter still has to call DragEnd.
func (s *Surface) UnregisterDraggable(id ID) {
	if s.reg.UnregisterDraggable(id) && s.debug && id == s.session.DraggingID {
		s.log.Info("warning: drag subject unregistered mid-drag", "draggable", id)
	}
}

// UnregisterDroppable removes a droppable. If the drag is hovering over it,
// the hover target is cleared without firing OnLeave.
func (s *Surface) UnregisterDroppable(id ID) {
	if s.reg.UnregisterDroppable(id) && id == s.session.HoveredID {
		s.session.HoveredID = None
	}
}

// --- Lookup ---

// Draggable returns a copy of the draggable registered under id.
func (s *Surface) Draggable(id ID) (Draggable, bool) {
	return s.reg.Draggable(id)
}

// Droppable returns a copy of the droppable registered under id.
func (s *Surface) Droppable(id ID) (Droppable, bool) {
	return s.reg.Droppable(id)
}

// FindDroppableContaining returns the first registered droppable whose rect
// contains p. No drag offset is applied.
func (s *Surface) FindDroppableContaining(p Vec2) (Droppable, bool) {
	return s.reg.FindDroppableContaining(p)
}

// Draggables returns copies of all draggables in registration order.
func (s *Surface) Draggables() []Draggable {
	return s.reg.Draggables()
}

// Droppables returns copies of all droppables in registration order.
func (s *Surface) Droppables() []Droppable {
	return s.reg.Droppables()
}

// Session returns a snapshot of the drag session.
func (s *Surface) Session() Session {
	return s.session
}

// IsDragging reports whether a drag is in progress.
func (s *Surface) IsDragging() bool {
	return s.session.Active()
}

// Hovered returns the droppable the drag is currently over.
func (s *Surface) Hovered() (Droppable, bool) {
	return s.reg.Droppable(s.session.HoveredID)
}

// --- Drag session ---

// DragStart makes id the drag subject. pos is the pointer position at the
// start of the gesture. Unknown ids are ignored. A drag already in progress
// is abandoned: its hover target receives OnLeave, before the new subject's
// OnDragStart, and no OnDragEnd fires for the old subject.
func (s *Surface) DragStart(id ID, pos Vec2) {
	d := s.reg.draggable(id)
	if d == nil {
		s.log.V(logIgnored).Info("drag start for unknown draggable ignored", "draggable", id)
		return
	}
	if s.session.Active() {
		s.abandon(pos)
		// OnLeave of the abandoned drag may have unregistered id.
		if d = s.reg.draggable(id); d == nil {
			return
		}
	}

	s.session = Session{
		DraggingID: id,
		Offset:     pos.Sub(s.anchor.anchor(d.Rect)),
	}
	d.Dragging = true
	s.log.V(logTransitions).Info("drag start", "draggable", id, "pos", pos, "offset", s.session.Offset)

	snap := *d
	if snap.OnDragStart != nil {
		snap.OnDragStart()
	}
	s.emit(Event{Type: EventDragStart, Draggable: id, Position: pos, Payload: snap.Payload})
}

// abandon drops the current session in favor of a new one.
func (s *Surface) abandon(pos Vec2) {
	prev := s.session
	s.session = Session{}
	d := s.reg.draggable(prev.DraggingID)
	if d == nil {
		return
	}
	d.Dragging = false
	s.log.V(logTransitions).Info("drag abandoned", "draggable", prev.DraggingID)
	if prev.HoveredID != None {
		s.fireLeave(prev.HoveredID, *d, pos)
	}
}

// DragMove updates the hover target for the drag subject at pointer position
// pos and fires OnEnter/OnLeave on transitions. Calls while idle or for a
// draggable other than the subject are ignored.
func (s *Surface) DragMove(id ID, pos Vec2) {
	if !s.session.Active() || id != s.session.DraggingID {
		s.log.V(logIgnored).Info("drag move ignored", "draggable", id, "subject", s.session.DraggingID)
		return
	}
	d := s.reg.draggable(id)
	if d == nil {
		// Subject was unmounted mid-gesture; wait for DragEnd.
		return
	}
	if s.debug {
		defer s.debugCheckSession("move")
	}

	subject := *d
	target := s.reg.droppableAt(pos.Sub(s.session.Offset))
	prev := s.session.HoveredID

	switch {
	case target == nil:
		if prev != None {
			s.session.HoveredID = None
			s.fireLeave(prev, subject, pos)
		}
	case target.ID == prev:
		// Steady hover.
	case prev == None:
		s.session.HoveredID = target.ID
		s.fireEnter(target.ID, subject, pos)
	default:
		next := target.ID
		if s.hover == HoverSymmetric {
			s.session.HoveredID = None
			s.fireLeave(prev, subject, pos)
			// OnLeave may have ended or restarted the drag, or removed next.
			if s.session.DraggingID != id || s.session.HoveredID != None {
				return
			}
			if s.reg.droppable(next) == nil {
				return
			}
		}
		s.session.HoveredID = next
		s.fireEnter(next, subject, pos)
	}
}

// DragEnd finishes the drag of id at pointer position pos. If pos (adjusted by
// the drag offset) is over a droppable that has OnDrop, OnDrop fires; then the
// draggable's OnDragEnd fires with that droppable or nil. The session is reset
// before any callback runs.
func (s *Surface) DragEnd(id ID, pos Vec2) {
	if !s.session.Active() || id != s.session.DraggingID {
		s.log.V(logIgnored).Info("drag end ignored", "draggable", id, "subject", s.session.DraggingID)
		return
	}
	offset := s.session.Offset
	s.session = Session{}

	d := s.reg.draggable(id)
	if d == nil {
		s.log.V(logTransitions).Info("drag end for unregistered subject", "draggable", id)
		return
	}
	d.Dragging = false
	subject := *d

	var target *Droppable
	if t := s.reg.droppableAt(pos.Sub(offset)); t != nil {
		c := *t
		target = &c
	}
	s.log.V(logTransitions).Info("drag end", "draggable", id, "pos", pos, "target", targetID(target))

	if target != nil && target.OnDrop != nil {
		target.OnDrop(subject, pos)
		s.emit(Event{Type: EventDrop, Draggable: id, Droppable: target.ID, Position: pos, Payload: subject.Payload})
	}
	if subject.OnDragEnd != nil {
		var arg *Droppable
		if target != nil {
			c := *target
			arg = &c
		}
		subject.OnDragEnd(arg)
	}
	s.emit(Event{Type: EventDragEnd, Draggable: id, Droppable: targetID(target), Position: pos, Payload: subject.Payload})
}

func (s *Surface) fireEnter(dropID ID, d Draggable, pos Vec2) {
	drop := s.reg.droppable(dropID)
	if drop == nil {
		return
	}
	fn := drop.OnEnter
	s.log.V(logTransitions).Info("enter", "draggable", d.ID, "droppable", dropID, "pos", pos)
	if fn != nil {
		fn(d, pos)
	}
	s.emit(Event{Type: EventEnter, Draggable: d.ID, Droppable: dropID, Position: pos, Payload: d.Payload})
}

func (s *Surface) fireLeave(dropID ID, d Draggable, pos Vec2) {
	drop := s.reg.droppable(dropID)
	if drop == nil {
		return
	}
	fn := drop.OnLeave
	s.log.V(logTransitions).Info("leave", "draggable", d.ID, "droppable", dropID, "pos", pos)
	if fn != nil {
		fn(d, pos)
	}
	s.emit(Event{Type: EventLeave, Draggable: d.ID, Droppable: dropID, Position: pos, Payload: d.Payload})
}

func (s *Surface) emit(e Event) {
	if s.sink != nil {
		s.sink.EmitEvent(e)
	}
}

func targetID(d *Droppable) ID {
	if d == nil {
		return None
	}
	return d.ID
}
