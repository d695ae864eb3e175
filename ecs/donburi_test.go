package ecs

import (
	"testing"
	"time"

	"github.com/phanxgames/gesture"

	"github.com/yohamta/donburi"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world, donburi.Null)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_Emit(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world, donburi.Null)

	var received []GestureEvent
	GestureEventType.Subscribe(world, func(w donburi.World, e GestureEvent) {
		received = append(received, e)
	})

	sink.Emit(gesture.Snapshot{Gestures: gesture.Gestures{SwipeLeft: true}})
	sink.Emit(gesture.Snapshot{Gestures: gesture.Gestures{Pinching: true, PinchScale: 2}})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("expected 0 events before processing, got %d", len(received))
	}
	GestureEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if !received[0].Snapshot.Gestures.SwipeLeft || received[0].Entity != donburi.Null {
		t.Errorf("event 0: %+v", received[0])
	}
	if g := received[1].Snapshot.Gestures; !g.Pinching || g.PinchScale != 2 {
		t.Errorf("event 1: %+v", g)
	}
}

func TestDonburiSink_UpdatesComponent(t *testing.T) {
	world := donburi.NewWorld()
	card := world.Create(Gesture)
	sink := NewDonburiSink(world, card)

	sink.Emit(gesture.Snapshot{Gestures: gesture.Gestures{SwipeUp: true}})

	got := Gesture.Get(world.Entry(card))
	if !got.Gestures.SwipeUp {
		t.Errorf("component = %+v, want swipe up", got.Gestures)
	}
}

func TestDonburiSink_RemovedEntity(t *testing.T) {
	world := donburi.NewWorld()
	card := world.Create(Gesture)
	sink := NewDonburiSink(world, card)
	world.Remove(card)

	var n int
	GestureEventType.Subscribe(world, func(w donburi.World, e GestureEvent) { n++ })
	sink.Emit(gesture.Snapshot{})
	GestureEventType.ProcessEvents(world)
	if n != 1 {
		t.Errorf("events = %d, want 1", n)
	}
}

func TestDonburiSink_WithBinding(t *testing.T) {
	world := donburi.NewWorld()
	card := world.Create(Gesture)

	surface := gesture.NewInjectSurface(time.Unix(0, 0))
	b, err := gesture.Bind(surface, gesture.DefaultConfig(),
		gesture.WithSink(NewDonburiSink(world, card)))
	if err != nil {
		t.Fatal(err)
	}
	defer b.Unbind()

	var last GestureEvent
	GestureEventType.Subscribe(world, func(w donburi.World, e GestureEvent) { last = e })

	surface.InjectSwipe(1, 0, 0, 0, -120, 3, 30*time.Millisecond)
	GestureEventType.ProcessEvents(world)

	if last.Entity != card || !last.Snapshot.Gestures.SwipeUp || !last.Snapshot.Gestures.FastSwipe {
		t.Errorf("last event = %+v, want fast swipe up on card", last)
	}
	if got := Gesture.Get(world.Entry(card)); !got.Gestures.SwipeUp {
		t.Errorf("component gestures = %+v", got.Gestures)
	}
}
