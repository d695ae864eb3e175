package ecs

import (
	"github.com/phanxgames/gesture"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEvent is one published snapshot, tagged with the entity the sink
// was created for (donburi.Null when none).
type GestureEvent struct {
	Entity   donburi.Entity
	Snapshot gesture.Snapshot
}

// GestureEventType is the Donburi event type for gesture snapshots.
var GestureEventType = events.NewEventType[GestureEvent]()

// Gesture is a component holding the latest snapshot for an entity.
var Gesture = donburi.NewComponentType[gesture.Snapshot]()

type donburiSink struct {
	world  donburi.World
	entity donburi.Entity
}

// NewDonburiSink creates a gesture.Sink backed by a Donburi world. Snapshots
// are published to GestureEventType and consumed with ProcessEvents. Pass
// donburi.Null as entity to publish events only.
func NewDonburiSink(world donburi.World, entity donburi.Entity) gesture.Sink {
	return &donburiSink{world: world, entity: entity}
}

func (s *donburiSink) Emit(snap gesture.Snapshot) {
	if s.entity != donburi.Null && s.world.Valid(s.entity) {
		entry := s.world.Entry(s.entity)
		if entry.HasComponent(Gesture) {
			Gesture.SetValue(entry, snap)
		}
	}
	GestureEventType.Publish(s.world, GestureEvent{Entity: s.entity, Snapshot: snap})
}
