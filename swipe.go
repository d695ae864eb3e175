package gesture

import (
	"math"
	"time"
)

// SwipeState tracks the primary contact of a gesture. It is a value type;
// transitions return a new state.
//
// After the contact lifts, Active is false but Direction, Distance and
// Velocity keep their last values so a release can still be classified.
// The next Begin resets every field.
type SwipeState struct {
	Active             bool
	StartX, StartY     float64
	CurrentX, CurrentY float64
	DeltaX, DeltaY     float64
	Distance           float64
	Direction          Direction
	Velocity           float64 // pixels per millisecond, over the most recent move
	Duration           time.Duration

	primary   int
	startTime time.Time
	lastX     float64
	lastY     float64
	lastT     time.Time
}

// Begin starts tracking c as the primary contact.
func (s SwipeState) Begin(c Contact) SwipeState {
	return SwipeState{
		Active:    true,
		StartX:    c.X,
		StartY:    c.Y,
		CurrentX:  c.X,
		CurrentY:  c.Y,
		primary:   c.ID,
		startTime: c.T,
		lastX:     c.X,
		lastY:     c.Y,
		lastT:     c.T,
	}
}

// Move updates the tracker with a new sample of the primary contact.
// Velocity is measured against the previous sample, not the origin, so a
// fast flick at the end of a long slow drag still registers as fast.
func (s SwipeState) Move(c Contact, distanceThreshold float64) SwipeState {
	if !s.Active {
		return s
	}

	s.CurrentX = c.X
	s.CurrentY = c.Y
	s.DeltaX = c.X - s.StartX
	s.DeltaY = c.Y - s.StartY
	s.Distance = math.Hypot(s.DeltaX, s.DeltaY)
	s.Direction = classifyDirection(s.DeltaX, s.DeltaY, s.Distance, distanceThreshold)

	// A non-positive interval (duplicate or out-of-order timestamp) keeps the
	// previous velocity rather than producing Inf.
	if ms := float64(c.T.Sub(s.lastT)) / float64(time.Millisecond); ms > 0 {
		s.Velocity = math.Hypot(c.X-s.lastX, c.Y-s.lastY) / ms
	}

	if d := c.T.Sub(s.startTime); d > s.Duration {
		s.Duration = d
	}

	s.lastX = c.X
	s.lastY = c.Y
	s.lastT = c.T
	return s
}

// End stops tracking. The last kinematics stay readable.
func (s SwipeState) End() SwipeState {
	s.Active = false
	return s
}

// tick advances Duration for a contact that has not moved.
func (s SwipeState) tick(now time.Time) SwipeState {
	if !s.Active {
		return s
	}
	if d := now.Sub(s.startTime); d > s.Duration {
		s.Duration = d
	}
	return s
}

// classifyDirection returns the dominant signed axis once distance exceeds
// the threshold. Equal components resolve to the horizontal axis.
func classifyDirection(dx, dy, distance, threshold float64) Direction {
	if distance <= threshold {
		return DirectionNone
	}
	if math.Abs(dx) >= math.Abs(dy) {
		if dx > 0 {
			return DirectionRight
		}
		return DirectionLeft
	}
	if dy > 0 {
		return DirectionDown
	}
	return DirectionUp
}
