package ecs

import (
	"github.com/phanxgames/dnd"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EventType is the Donburi event type for dnd surface events.
var EventType = events.NewEventType[dnd.Event]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventSink backed by a Donburi world. Events are
// queued on EventType and delivered by events.ProcessAllEvents or
// EventType.ProcessEvents.
func NewDonburiStore(world donburi.World) dnd.EventSink {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event dnd.Event) {
	EventType.Publish(s.world, event)
}

// SubscribeTypes subscribes fn to the given event types only. With no types,
// fn receives every event.
func SubscribeTypes(world donburi.World, fn func(donburi.World, dnd.Event), types ...dnd.EventType) {
	if len(types) == 0 {
		EventType.Subscribe(world, fn)
		return
	}
	EventType.Subscribe(world, func(w donburi.World, e dnd.Event) {
		for _, t := range types {
			if e.Type == t {
				fn(w, e)
				return
			}
		}
	})
}
