package gesture

import "math"

// PinchState tracks the distance between exactly two contacts.
// Scale is CurrentDistance / InitialDistance and is 1 on activation.
type PinchState struct {
	Active          bool
	InitialDistance float64
	CurrentDistance float64
	Scale           float64

	pair contactPair
}

// RotationState tracks the angle, in degrees, of the line between exactly
// two contacts. AngleDelta is CurrentAngle - InitialAngle.
type RotationState struct {
	Active       bool
	InitialAngle float64
	CurrentAngle float64
	AngleDelta   float64

	pair contactPair
}

// contactPair remembers which two contacts a tracker follows. armed is set
// when the contact count rises to two and cleared when it leaves two; an
// armed tracker activates on the first sample whose contacts are separated.
type contactPair struct {
	armed bool
	a, b  int
}

type pairAction uint8

const (
	pairIdle pairAction = iota
	pairActivate
	pairUpdate
	pairDeactivate
)

// stepPair decides what a two-contact tracker does with ev. prevCount is the
// number of contacts before ev. For pairActivate and pairUpdate it returns
// the two contacts in the tracker's captured order.
func stepPair(pair contactPair, active, enabled bool, ev Event, prevCount int) (contactPair, pairAction, Contact, Contact) {
	n := len(ev.Contacts)
	if !enabled || n != 2 || ev.Phase == PhaseCancelled || ev.Phase == PhaseEnded {
		if active {
			return contactPair{}, pairDeactivate, Contact{}, Contact{}
		}
		return contactPair{}, pairIdle, Contact{}, Contact{}
	}

	if active {
		a, okA := contactByID(ev.Contacts, pair.a)
		b, okB := contactByID(ev.Contacts, pair.b)
		if !okA || !okB {
			return contactPair{}, pairDeactivate, Contact{}, Contact{}
		}
		return pair, pairUpdate, a, b
	}

	if prevCount < 2 {
		pair.armed = true
	}
	if !pair.armed {
		return pair, pairIdle, Contact{}, Contact{}
	}

	a, b := ev.Contacts[0], ev.Contacts[1]
	if contactDistance(a, b) <= MinContactSeparation {
		return pair, pairIdle, Contact{}, Contact{}
	}
	return contactPair{armed: true, a: a.ID, b: b.ID}, pairActivate, a, b
}

// contactDistance returns the distance between a and b.
func contactDistance(a, b Contact) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// contactAngle returns the angle of the vector b→a in degrees.
func contactAngle(a, b Contact) float64 {
	return math.Atan2(a.Y-b.Y, a.X-b.X) * 180 / math.Pi
}

// Step applies ev to the pinch tracker.
func (p PinchState) Step(ev Event, enabled bool, prevCount int) PinchState {
	pair, action, a, b := stepPair(p.pair, p.Active, enabled, ev, prevCount)
	switch action {
	case pairActivate:
		d := contactDistance(a, b)
		return PinchState{
			Active:          true,
			InitialDistance: d,
			CurrentDistance: d,
			Scale:           1,
			pair:            pair,
		}
	case pairUpdate:
		p.CurrentDistance = contactDistance(a, b)
		p.Scale = p.CurrentDistance / p.InitialDistance
		return p
	case pairDeactivate:
		return PinchState{}
	default:
		p.pair = pair
		return p
	}
}

// Step applies ev to the rotation tracker.
func (r RotationState) Step(ev Event, enabled bool, prevCount int) RotationState {
	pair, action, a, b := stepPair(r.pair, r.Active, enabled, ev, prevCount)
	switch action {
	case pairActivate:
		angle := contactAngle(a, b)
		return RotationState{
			Active:       true,
			InitialAngle: angle,
			CurrentAngle: angle,
			pair:         pair,
		}
	case pairUpdate:
		r.CurrentAngle = contactAngle(a, b)
		r.AngleDelta = r.CurrentAngle - r.InitialAngle
		return r
	case pairDeactivate:
		return RotationState{}
	default:
		r.pair = pair
		return r
	}
}
