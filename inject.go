package gesture

import (
	"math"
	"time"
)

// InjectSurface is a Surface driven by synthetic contacts on a manual clock.
// It backs scripted replays and stands in for a real element in tests and
// pointer-fallback hosts.
type InjectSurface struct {
	// Unmounted makes Mounted report false.
	Unmounted bool
	// NoTouch makes TouchSupported report false.
	NoTouch bool

	now       time.Time
	contacts  []Contact
	listeners []injectListener
	nextID    uint32
	prevented int
}

type injectListener struct {
	id uint32
	fn func(RawEvent)
}

// NewInjectSurface returns a mounted, touch-capable surface whose clock
// starts at start.
func NewInjectSurface(start time.Time) *InjectSurface {
	return &InjectSurface{now: start}
}

// Mounted implements Surface.
func (s *InjectSurface) Mounted() bool { return !s.Unmounted }

// TouchSupported implements Surface.
func (s *InjectSurface) TouchSupported() bool { return !s.NoTouch }

// Listen implements Surface.
func (s *InjectSurface) Listen(fn func(RawEvent)) func() {
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, injectListener{id: id, fn: fn})
	return func() {
		for i := range s.listeners {
			if s.listeners[i].id == id {
				copy(s.listeners[i:], s.listeners[i+1:])
				s.listeners[len(s.listeners)-1] = injectListener{}
				s.listeners = s.listeners[:len(s.listeners)-1]
				return
			}
		}
	}
}

// Listeners returns the number of registered listeners.
func (s *InjectSurface) Listeners() int { return len(s.listeners) }

// Prevented returns how many dispatched events had their default action
// suppressed.
func (s *InjectSurface) Prevented() int { return s.prevented }

// Now returns the surface clock.
func (s *InjectSurface) Now() time.Time { return s.now }

// Advance moves the surface clock forward by d.
func (s *InjectSurface) Advance(d time.Duration) {
	s.now = s.now.Add(d)
}

// Contacts returns a copy of the contacts currently touching.
func (s *InjectSurface) Contacts() []Contact {
	return append([]Contact(nil), s.contacts...)
}

// Press touches down contact id at (x, y).
func (s *InjectSurface) Press(id int, x, y float64) {
	if i := s.index(id); i >= 0 {
		s.contacts[i] = Contact{ID: id, X: x, Y: y, T: s.now}
	} else {
		s.contacts = append(s.contacts, Contact{ID: id, X: x, Y: y, T: s.now})
	}
	s.dispatch(PhaseBegan)
}

// Move moves contact id to (x, y). Unknown ids are ignored.
func (s *InjectSurface) Move(id int, x, y float64) {
	s.MoveAll(Contact{ID: id, X: x, Y: y})
}

// MoveAll moves several contacts in one notification. Only ID, X and Y of
// each move are used.
func (s *InjectSurface) MoveAll(moves ...Contact) {
	moved := false
	for _, m := range moves {
		if i := s.index(m.ID); i >= 0 {
			s.contacts[i] = Contact{ID: m.ID, X: m.X, Y: m.Y, T: s.now}
			moved = true
		}
	}
	for i := range s.contacts {
		s.contacts[i].T = s.now
	}
	if moved {
		s.dispatch(PhaseMoved)
	}
}

// Release lifts contact id.
func (s *InjectSurface) Release(id int) {
	i := s.index(id)
	if i < 0 {
		return
	}
	s.contacts = append(s.contacts[:i], s.contacts[i+1:]...)
	s.dispatch(PhaseEnded)
}

// Cancel aborts every contact, as a system interruption would.
func (s *InjectSurface) Cancel() {
	s.contacts = s.contacts[:0]
	s.dispatch(PhaseCancelled)
}

// InjectSwipe performs a full single-contact swipe: press at (fromX, fromY),
// steps evenly spaced moves reaching (toX, toY) after d, then release.
func (s *InjectSurface) InjectSwipe(id int, fromX, fromY, toX, toY float64, steps int, d time.Duration) {
	if steps < 1 {
		steps = 1
	}
	s.Press(id, fromX, fromY)
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		s.Advance(d / time.Duration(steps))
		s.Move(id, fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.Release(id)
}

// InjectPinch places contacts 1 and 2 symmetrically about (cx, cy), then
// interpolates their separation from fromDist to toDist and their angle from
// fromDeg to toDeg over steps moves spanning d. Both contacts stay down.
func (s *InjectSurface) InjectPinch(cx, cy, fromDist, toDist, fromDeg, toDeg float64, steps int, d time.Duration) {
	if steps < 1 {
		steps = 1
	}
	a, b := pairAbout(cx, cy, fromDist, fromDeg)
	s.Press(1, a.X, a.Y)
	s.Press(2, b.X, b.Y)
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		s.Advance(d / time.Duration(steps))
		a, b = pairAbout(cx, cy, fromDist+(toDist-fromDist)*t, fromDeg+(toDeg-fromDeg)*t)
		s.MoveAll(Contact{ID: 1, X: a.X, Y: a.Y}, Contact{ID: 2, X: b.X, Y: b.Y})
	}
}

// pairAbout returns two contacts dist apart about (cx, cy) such that the
// angle of the line from the second to the first is deg degrees.
func pairAbout(cx, cy, dist, deg float64) (Contact, Contact) {
	rad := deg * math.Pi / 180
	hx := math.Cos(rad) * dist / 2
	hy := math.Sin(rad) * dist / 2
	return Contact{ID: 1, X: cx + hx, Y: cy + hy}, Contact{ID: 2, X: cx - hx, Y: cy - hy}
}

func (s *InjectSurface) index(id int) int {
	for i := range s.contacts {
		if s.contacts[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *InjectSurface) dispatch(phase Phase) {
	ev := RawEvent{
		Phase:          phase,
		Contacts:       s.Contacts(),
		PreventDefault: func() { s.prevented++ },
	}
	// Listeners may remove themselves while handling the event.
	listeners := append([]injectListener(nil), s.listeners...)
	for _, l := range listeners {
		l.fn(ev)
	}
}
