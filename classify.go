package gesture

// Gestures is the flag bag derived from tracker state. It is recomputed from
// scratch on every change and carries no history.
type Gestures struct {
	SwipeLeft  bool
	SwipeRight bool
	SwipeUp    bool
	SwipeDown  bool
	FastSwipe  bool

	// LongPress is level-triggered: it stays true for as long as the contact
	// is held, roughly stationary, past the dwell time.
	LongPress bool

	Pinching   bool
	PinchScale float64

	Rotating      bool
	RotationAngle float64 // degrees
}

// Swiping reports whether any directional flag is set.
func (g Gestures) Swiping() bool {
	return g.SwipeLeft || g.SwipeRight || g.SwipeUp || g.SwipeDown
}

// Direction returns the asserted swipe direction, or DirectionNone.
func (g Gestures) Direction() Direction {
	switch {
	case g.SwipeLeft:
		return DirectionLeft
	case g.SwipeRight:
		return DirectionRight
	case g.SwipeUp:
		return DirectionUp
	case g.SwipeDown:
		return DirectionDown
	default:
		return DirectionNone
	}
}

// Classify derives the gesture flags from the trackers in s.
func Classify(s State, cfg Config) Gestures {
	sw := s.Swipe
	past := sw.Distance > cfg.DistanceThreshold

	g := Gestures{
		SwipeLeft:  past && sw.Direction == DirectionLeft,
		SwipeRight: past && sw.Direction == DirectionRight,
		SwipeUp:    past && sw.Direction == DirectionUp,
		SwipeDown:  past && sw.Direction == DirectionDown,
		FastSwipe:  sw.Velocity > cfg.VelocityThreshold,
		LongPress: sw.Active &&
			sw.Duration > cfg.longPressDuration() &&
			sw.Distance < cfg.DistanceThreshold,
	}

	if s.Pinch.Active {
		g.Pinching = true
		g.PinchScale = s.Pinch.Scale
	}
	if s.Rotation.Active {
		g.Rotating = true
		g.RotationAngle = s.Rotation.AngleDelta
	}
	return g
}
