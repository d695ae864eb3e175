package gesture

// Phase identifies one of the four logical contact lifecycle notifications.
type Phase uint8

const (
	PhaseBegan     Phase = iota + 1 // one or more contacts touched down
	PhaseMoved                      // one or more contacts moved
	PhaseEnded                      // one or more contacts lifted
	PhaseCancelled                  // the platform aborted the touch sequence
)

func (p Phase) String() string {
	switch p {
	case PhaseBegan:
		return "began"
	case PhaseMoved:
		return "moved"
	case PhaseEnded:
		return "ended"
	case PhaseCancelled:
		return "cancelled"
	default:
		return "invalid"
	}
}

// RawEvent is a touch lifecycle notification as delivered by a Surface.
// Contacts lists every contact still touching the surface after the
// notification, not only the ones that changed.
type RawEvent struct {
	Phase    Phase
	Contacts []Contact
	// PreventDefault, when non-nil, suppresses the platform's default
	// scroll/zoom handling for this notification.
	PreventDefault func()
}

// Event is a normalized notification. Its Contacts slice is owned by the
// event and is never mutated after Normalize returns.
type Event struct {
	Phase    Phase
	Contacts []Contact
}

// Normalize converts a raw notification into an Event. Contacts with
// non-finite coordinates are dropped. It reports false for unknown phases,
// which are not forwarded. When cfg.PreventScroll is set the raw event's
// PreventDefault hook runs for every forwarded event.
func Normalize(raw RawEvent, cfg Config) (Event, bool) {
	switch raw.Phase {
	case PhaseBegan, PhaseMoved, PhaseEnded, PhaseCancelled:
	default:
		return Event{}, false
	}

	contacts := make([]Contact, 0, len(raw.Contacts))
	for _, c := range raw.Contacts {
		if !finite(c.X) || !finite(c.Y) {
			continue
		}
		contacts = append(contacts, c)
	}

	if cfg.PreventScroll && raw.PreventDefault != nil {
		raw.PreventDefault()
	}
	return Event{Phase: raw.Phase, Contacts: contacts}, true
}

// contactByID returns the contact with the given ID.
func contactByID(contacts []Contact, id int) (Contact, bool) {
	for _, c := range contacts {
		if c.ID == id {
			return c, true
		}
	}
	return Contact{}, false
}
