package dnd

import "fmt"

// EventSink is the interface for optional event forwarding (ECS bridges,
// trace recorders). When set on a Surface, every fired transition is emitted
// after its callback has run.
type EventSink interface {
	EmitEvent(event Event)
}

// Event describes one drag lifecycle transition.
type Event struct {
	Type      EventType
	Draggable ID
	// Droppable is the target of enter, leave and drop events, and of
	// dragend when the drag ended over a droppable. None otherwise.
	Droppable ID
	// Position is the raw pointer position passed to the surface.
	Position Vec2
	// Payload is the draggable's payload at the time of the event.
	Payload any
}

// String returns a compact form such as "enter d1 drop1", with "-" for an
// absent id. Positions and payloads are left out so traces compare by
// transition only.
func (e Event) String() string {
	return fmt.Sprintf("%s %s %s", e.Type, orDash(e.Draggable), orDash(e.Droppable))
}

func orDash(id ID) string {
	if id == None {
		return "-"
	}
	return string(id)
}

// EventRecorder is an EventSink that keeps every event in order.
type EventRecorder struct {
	Events []Event
}

// EmitEvent appends event.
func (r *EventRecorder) EmitEvent(event Event) {
	r.Events = append(r.Events, event)
}

// Strings returns the String form of each recorded event.
func (r *EventRecorder) Strings() []string {
	out := make([]string, len(r.Events))
	for i, e := range r.Events {
		out[i] = e.String()
	}
	return out
}

// Reset drops all recorded events.
func (r *EventRecorder) Reset() {
	r.Events = r.Events[:0]
}
