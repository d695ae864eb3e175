// Package ebitensurface adapts Ebitengine's polled touch API to a
// gesture.Surface. It lives apart from the gesture package so the engine
// builds without Ebitengine's platform stack.
package ebitensurface

import (
	"image"
	"runtime"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/gesture"
)

const maxTouches = 10

// touchSample is one polled touch position.
type touchSample struct {
	id   ebiten.TouchID
	x, y float64
}

type touchSlot struct {
	used bool
	id   ebiten.TouchID
	x, y float64
}

type listener struct {
	id uint32
	fn func(gesture.RawEvent)
}

// Surface is a gesture.Surface fed by Ebitengine touches. Call Update once
// per frame from the game's Update; it diffs the active touches against the
// previous frame and dispatches Ended, Began and Moved notifications in that
// order.
type Surface struct {
	// Bounds restricts the surface to touches that begin inside it, in
	// screen pixels. The zero rectangle accepts touches anywhere. A touch
	// that begins outside is ignored until it lifts, even if it is dragged
	// inside.
	Bounds image.Rectangle
	// ForceTouch makes TouchSupported report true on desktop platforms
	// with touchscreens.
	ForceTouch bool

	now       func() time.Time
	closed    bool
	slots     [maxTouches]touchSlot
	ignored   []ebiten.TouchID
	touchIDs  []ebiten.TouchID
	frame     []touchSample
	listeners []listener
	nextID    uint32
}

// New returns a surface covering bounds.
func New(bounds image.Rectangle) *Surface {
	return &Surface{Bounds: bounds, now: time.Now}
}

// Mounted implements gesture.Surface. It reports false after Close.
func (s *Surface) Mounted() bool { return !s.closed }

// TouchSupported implements gesture.Surface. Ebitengine delivers touches on
// mobile and browser targets.
func (s *Surface) TouchSupported() bool {
	if s.ForceTouch {
		return true
	}
	switch runtime.GOOS {
	case "android", "ios", "js":
		return true
	}
	return false
}

// Listen implements gesture.Surface.
func (s *Surface) Listen(fn func(gesture.RawEvent)) func() {
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listener{id: id, fn: fn})
	return func() {
		for i := range s.listeners {
			if s.listeners[i].id == id {
				copy(s.listeners[i:], s.listeners[i+1:])
				s.listeners[len(s.listeners)-1] = listener{}
				s.listeners = s.listeners[:len(s.listeners)-1]
				return
			}
		}
	}
}

// Close detaches the surface. Active contacts are cancelled.
func (s *Surface) Close() {
	if s.closed {
		return
	}
	if s.active() > 0 {
		s.slots = [maxTouches]touchSlot{}
		s.dispatch(gesture.PhaseCancelled)
	}
	s.ignored = s.ignored[:0]
	s.closed = true
}

// Update polls Ebitengine for the current touches.
func (s *Surface) Update() {
	if s.closed {
		return
	}
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	s.frame = s.frame[:0]
	for _, tid := range s.touchIDs {
		x, y := ebiten.TouchPosition(tid)
		s.frame = append(s.frame, touchSample{id: tid, x: float64(x), y: float64(y)})
	}
	s.apply(s.frame)
}

// apply diffs one frame of touches against the slot table.
func (s *Surface) apply(frame []touchSample) {
	var seen, fresh [maxTouches]bool
	type pending struct {
		slot int
		x, y float64
	}
	var updates []pending
	prevIgnored := s.ignored
	var ignored []ebiten.TouchID

	for _, t := range frame {
		slot := s.slotOf(t.id)
		if slot < 0 {
			// Touches rejected on an earlier frame stay rejected while held.
			if containsID(prevIgnored, t.id) || !s.inBounds(t.x, t.y) {
				ignored = append(ignored, t.id)
				continue
			}
			slot = s.allocSlot(t.id)
			if slot < 0 {
				ignored = append(ignored, t.id)
				continue
			}
			s.slots[slot].x, s.slots[slot].y = t.x, t.y
			seen[slot] = true
			fresh[slot] = true
			continue
		}
		seen[slot] = true
		if t.x != s.slots[slot].x || t.y != s.slots[slot].y {
			updates = append(updates, pending{slot: slot, x: t.x, y: t.y})
		}
	}
	s.ignored = ignored

	// Lifted touches end first, reported against the contacts held since
	// the previous frame; fresh touches are announced by the Began after.
	var ended, began bool
	for i := range s.slots {
		if s.slots[i].used && !seen[i] {
			s.slots[i] = touchSlot{}
			ended = true
		}
		if fresh[i] {
			began = true
		}
	}
	if ended {
		s.dispatchContacts(gesture.PhaseEnded, s.contacts(&fresh))
	}
	if began {
		s.dispatch(gesture.PhaseBegan)
	}
	for _, u := range updates {
		s.slots[u.slot].x, s.slots[u.slot].y = u.x, u.y
	}
	if len(updates) > 0 {
		s.dispatch(gesture.PhaseMoved)
	}
}

func containsID(ids []ebiten.TouchID, id ebiten.TouchID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func (s *Surface) inBounds(x, y float64) bool {
	if s.Bounds.Empty() {
		return true
	}
	return image.Pt(int(x), int(y)).In(s.Bounds)
}

func (s *Surface) slotOf(tid ebiten.TouchID) int {
	for i := range s.slots {
		if s.slots[i].used && s.slots[i].id == tid {
			return i
		}
	}
	return -1
}

// allocSlot maps tid to a free slot, or returns -1 when all are in use.
func (s *Surface) allocSlot(tid ebiten.TouchID) int {
	for i := range s.slots {
		if !s.slots[i].used {
			s.slots[i] = touchSlot{used: true, id: tid}
			return i
		}
	}
	return -1
}

func (s *Surface) active() int {
	n := 0
	for i := range s.slots {
		if s.slots[i].used {
			n++
		}
	}
	return n
}

func (s *Surface) dispatch(phase gesture.Phase) {
	s.dispatchContacts(phase, s.contacts(nil))
}

func (s *Surface) contacts(skip *[maxTouches]bool) []gesture.Contact {
	now := time.Now()
	if s.now != nil {
		now = s.now()
	}
	var out []gesture.Contact
	for i := range s.slots {
		if !s.slots[i].used || (skip != nil && skip[i]) {
			continue
		}
		out = append(out, gesture.Contact{ID: int(s.slots[i].id), X: s.slots[i].x, Y: s.slots[i].y, T: now})
	}
	return out
}

func (s *Surface) dispatchContacts(phase gesture.Phase, contacts []gesture.Contact) {
	ev := gesture.RawEvent{Phase: phase, Contacts: contacts}
	listeners := append([]listener(nil), s.listeners...)
	for _, l := range listeners {
		l.fn(ev)
	}
}
