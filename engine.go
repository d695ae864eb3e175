package gesture

import "time"

// State is the complete tracker state of one binding.
type State struct {
	Swipe    SwipeState
	Pinch    PinchState
	Rotation RotationState

	// Contacts is the number of contacts touching after the last event.
	Contacts int
}

// Step applies one normalized event to s and returns the new state. It has
// no side effects.
func Step(s State, ev Event, cfg Config) State {
	prev := s.Contacts

	switch ev.Phase {
	case PhaseBegan:
		// Only the first contact of a gesture becomes primary; later
		// contacts joining leave the swipe tracker alone.
		if !s.Swipe.Active && len(ev.Contacts) > 0 {
			s.Swipe = s.Swipe.Begin(ev.Contacts[0])
		}
	case PhaseMoved:
		if c, ok := contactByID(ev.Contacts, s.Swipe.primary); ok {
			s.Swipe = s.Swipe.Move(c, cfg.DistanceThreshold)
		}
	case PhaseEnded, PhaseCancelled:
		s.Swipe = s.Swipe.End()
	}

	s.Pinch = s.Pinch.Step(ev, cfg.EnablePinch, prev)
	s.Rotation = s.Rotation.Step(ev, cfg.EnableRotation, prev)
	s.Contacts = len(ev.Contacts)
	if ev.Phase == PhaseCancelled {
		s.Contacts = 0
	}
	return s
}

// Tick re-evaluates time-dependent state at now. Hosts without a steady
// stream of move events call it to let a stationary contact reach the
// long-press dwell time.
func Tick(s State, now time.Time) State {
	s.Swipe = s.Swipe.tick(now)
	return s
}
