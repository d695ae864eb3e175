// Package gesture recognizes multi-touch gestures from raw contact streams.
//
// It turns touch lifecycle notifications (began, moved, ended, cancelled)
// into gesture primitives: directional swipe, fast swipe, long-press,
// pinch-scale and two-finger rotation. It does not interpret intent; callers
// decide what a swipe or a pinch means.
//
// # Quick start
//
// Bind a [Surface] with a [Config] and read [Gestures] from the binding:
//
//	surface := ebitensurface.New(image.Rect(0, 0, 640, 480))
//	b, err := gesture.Bind(surface, gesture.DefaultConfig())
//	if errors.Is(err, gesture.ErrCapabilityUnavailable) {
//		// fall back to mouse input
//	}
//	b.OnChange(func(s gesture.Snapshot) {
//		if s.Gestures.SwipeLeft && s.Gestures.FastSwipe {
//			// ...
//		}
//	})
//
// From the game's Update, poll the surface and let the binding re-check the
// long-press dwell:
//
//	surface.Update()
//	b.Tick(time.Now())
//
// Call [Binding.Unbind] when the element goes away. Unbind is idempotent.
//
// # Engine
//
// The trackers are plain values with pure transitions. [Step] applies one
// [Event] to a [State] and [Classify] derives the flags, so the engine can be
// driven and tested without any platform:
//
//	st = gesture.Step(st, ev, cfg)
//	g := gesture.Classify(st, cfg)
//
// The swipe tracker follows the first contact of a gesture. Its velocity is
// measured between the last two samples, in pixels per millisecond. The pinch
// and rotation trackers are active only while exactly two contacts touch; a
// third contact switches both off.
//
// # Surfaces
//
// [InjectSurface] is driven by synthetic contacts and backs [Script] replays.
// The ebitensurface package polls [Ebitengine] touches once per frame. Any
// other platform can implement [Surface] directly; this package imports
// nothing outside the standard library.
//
// The ecs sub-module forwards snapshots into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package gesture
