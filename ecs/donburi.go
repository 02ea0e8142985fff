package ecs

import (
	"github.com/phanxgames/loupe"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType is the Donburi event type for loupe gesture events.
// Subscribe to this in your ECS systems to receive zoom, pan and reset
// events.
var GestureEventType = events.NewEventType[loupe.GestureEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Gesture events are published to GestureEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) loupe.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event loupe.GestureEvent) {
	GestureEventType.Publish(s.world, event)
}
