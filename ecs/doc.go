// Package ecs provides ECS adapters for loupe's gesture events.
//
// The primary adapter is [NewDonburiStore], which bridges committed
// viewport changes (wheel zoom, pinch zoom, pan, reset) into a [Donburi]
// world as typed events. Subscribe to [GestureEventType] in your ECS
// systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	viewport.Controller().SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
