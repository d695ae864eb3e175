package gesture

import "fmt"

// debugf writes one trace line when the binding was created WithDebug.
func (b *Binding) debugf(format string, args ...any) {
	if b.debugOut == nil {
		return
	}
	_, _ = fmt.Fprintf(b.debugOut, "[gesture] "+format+"\n", args...)
}

// debugEvent traces an applied event and the resulting classification.
func (b *Binding) debugEvent(ev Event, snap Snapshot) {
	if b.debugOut == nil {
		return
	}
	sw := snap.Swipe
	b.debugf("%s contacts=%d | swipe active=%v d=(%.1f,%.1f) dist=%.1f dir=%s v=%.3fpx/ms t=%v",
		ev.Phase, len(ev.Contacts),
		sw.Active, sw.DeltaX, sw.DeltaY, sw.Distance, sw.Direction, sw.Velocity, sw.Duration)
	if snap.Pinch.Active || snap.Rotation.Active {
		b.debugf("%s pinch scale=%.3f | rotation delta=%.2fdeg",
			ev.Phase, snap.Pinch.Scale, snap.Rotation.AngleDelta)
	}
	g := snap.Gestures
	b.debugf("%s gestures dir=%s fast=%v longPress=%v pinching=%v rotating=%v",
		ev.Phase, g.Direction(), g.FastSwipe, g.LongPress, g.Pinching, g.Rotating)
}
