package gesture

import (
	"fmt"
	"math"
	"time"
)

// --- Constants ---

const (
	DefaultDistanceThreshold = 10.0 // pixels
	DefaultVelocityThreshold = 0.3  // pixels per millisecond
	DefaultLongPressDuration = 500 * time.Millisecond

	// MinContactSeparation is the smallest inter-contact distance (pixels)
	// at which the pinch and rotation trackers will activate.
	MinContactSeparation = 1e-3
)

// Contact is one touch point at one instant. ID is stable for the lifetime
// of the physical contact.
type Contact struct {
	ID   int
	X, Y float64
	T    time.Time
}

// Direction is the classified axis and sign of a swipe.
type Direction uint8

const (
	DirectionNone  Direction = iota // below the distance threshold
	DirectionLeft                   // dominant axis horizontal, moving toward -X
	DirectionRight                  // dominant axis horizontal, moving toward +X
	DirectionUp                     // dominant axis vertical, moving toward -Y
	DirectionDown                   // dominant axis vertical, moving toward +Y
)

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return "none"
	}
}

// Config tunes recognition for one binding. It is read once at Bind time;
// changing thresholds requires a new binding.
type Config struct {
	// DistanceThreshold is the drag distance in pixels that must be exceeded
	// before a direction is asserted.
	DistanceThreshold float64
	// VelocityThreshold is the speed in pixels per millisecond that must be
	// exceeded for FastSwipe.
	VelocityThreshold float64
	// PreventScroll suppresses the platform's default scroll/zoom handling
	// for every event forwarded by the binding.
	PreventScroll bool
	// EnablePinch and EnableRotation gate the two-contact trackers.
	EnablePinch    bool
	EnableRotation bool
	// LongPressDuration is the dwell time after which a stationary contact
	// reports LongPress. Zero selects DefaultLongPressDuration.
	LongPressDuration time.Duration
}

// DefaultConfig returns the default thresholds with both two-contact
// trackers enabled.
func DefaultConfig() Config {
	return Config{
		DistanceThreshold: DefaultDistanceThreshold,
		VelocityThreshold: DefaultVelocityThreshold,
		EnablePinch:       true,
		EnableRotation:    true,
		LongPressDuration: DefaultLongPressDuration,
	}
}

// Validate reports whether the thresholds are usable.
func (c Config) Validate() error {
	if c.DistanceThreshold < 0 || math.IsNaN(c.DistanceThreshold) || math.IsInf(c.DistanceThreshold, 0) {
		return fmt.Errorf("gesture: invalid distance threshold %v", c.DistanceThreshold)
	}
	if c.VelocityThreshold < 0 || math.IsNaN(c.VelocityThreshold) || math.IsInf(c.VelocityThreshold, 0) {
		return fmt.Errorf("gesture: invalid velocity threshold %v", c.VelocityThreshold)
	}
	if c.LongPressDuration < 0 {
		return fmt.Errorf("gesture: invalid long-press duration %v", c.LongPressDuration)
	}
	return nil
}

// longPressDuration returns the effective dwell time.
func (c Config) longPressDuration() time.Duration {
	if c.LongPressDuration <= 0 {
		return DefaultLongPressDuration
	}
	return c.LongPressDuration
}

// finite reports whether v is neither NaN nor ±Inf.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
