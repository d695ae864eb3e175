package gesture

import (
	"math"
	"testing"
)

func TestNormalizeDropsNonFiniteContacts(t *testing.T) {
	raw := RawEvent{Phase: PhaseMoved, Contacts: []Contact{
		{ID: 1, X: 1, Y: 2},
		{ID: 2, X: math.NaN(), Y: 2},
		{ID: 3, X: 1, Y: math.Inf(1)},
		{ID: 4, X: 5, Y: 6},
	}}
	ev, ok := Normalize(raw, DefaultConfig())
	if !ok {
		t.Fatal("expected event to be forwarded")
	}
	if len(ev.Contacts) != 2 || ev.Contacts[0].ID != 1 || ev.Contacts[1].ID != 4 {
		t.Errorf("Contacts = %+v, want ids [1 4]", ev.Contacts)
	}
}

func TestNormalizeCopiesContacts(t *testing.T) {
	contacts := []Contact{{ID: 1, X: 1, Y: 1}}
	ev, _ := Normalize(RawEvent{Phase: PhaseBegan, Contacts: contacts}, DefaultConfig())
	contacts[0].X = 99
	if ev.Contacts[0].X != 1 {
		t.Error("event shares the raw contact slice")
	}
}

func TestNormalizeRejectsUnknownPhase(t *testing.T) {
	if _, ok := Normalize(RawEvent{Phase: 0}, DefaultConfig()); ok {
		t.Error("phase 0 should not be forwarded")
	}
	if _, ok := Normalize(RawEvent{Phase: PhaseCancelled + 1}, DefaultConfig()); ok {
		t.Error("out-of-range phase should not be forwarded")
	}
}

func TestNormalizePreventScroll(t *testing.T) {
	tests := []struct {
		name    string
		prevent bool
		want    int
	}{
		{"enabled", true, 1},
		{"disabled", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.PreventScroll = tt.prevent
			calls := 0
			raw := RawEvent{Phase: PhaseBegan, PreventDefault: func() { calls++ }}
			Normalize(raw, cfg)
			if calls != tt.want {
				t.Errorf("PreventDefault calls = %d, want %d", calls, tt.want)
			}
		})
	}

	// A nil hook is tolerated.
	cfg := DefaultConfig()
	cfg.PreventScroll = true
	if _, ok := Normalize(RawEvent{Phase: PhaseEnded}, cfg); !ok {
		t.Error("expected event without hook to be forwarded")
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		p    Phase
		want string
	}{
		{PhaseBegan, "began"},
		{PhaseMoved, "moved"},
		{PhaseEnded, "ended"},
		{PhaseCancelled, "cancelled"},
		{0, "invalid"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.p, got, tt.want)
		}
	}
}
