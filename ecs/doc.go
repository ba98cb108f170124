// Package ecs bridges dnd surface events into a [Donburi] world.
//
// [NewDonburiStore] returns a dnd.EventSink that publishes every drag
// transition (dragstart, enter, leave, drop, dragend) to [EventType] as a
// typed donburi event. Subscribe to it in your ECS systems and drain it with
// events.ProcessAllEvents once per tick.
//
// Usage:
//
//	surface.SetEventSink(ecs.NewDonburiStore(world))
//	ecs.SubscribeTypes(world, func(w donburi.World, e dnd.Event) {
//		// ...
//	}, dnd.EventDrop)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
