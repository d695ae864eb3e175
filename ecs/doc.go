// Package ecs provides ECS adapters for gesture bindings.
//
// The primary adapter is [NewDonburiSink], which forwards every snapshot a
// binding publishes into a [Donburi] world as a typed [GestureEvent].
// Subscribe to [GestureEventType] in your ECS systems to receive them. When
// the sink is created for an entity that carries the [Gesture] component,
// the component is kept in sync with the latest snapshot so systems can also
// query gesture state directly.
//
// Usage:
//
//	card := world.Create(ecs.Gesture)
//	binding, err := gesture.Bind(surface, gesture.DefaultConfig(),
//		gesture.WithSink(ecs.NewDonburiSink(world, card)))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
