package gesture

// Haptics is a fire-and-forget feedback capability. Implementations must not
// block; the binding ignores whether feedback was delivered.
type Haptics interface {
	Light()
	Medium()
	Strong()
	Success()
	Error()
}

// NopHaptics discards all feedback.
type NopHaptics struct{}

func (NopHaptics) Light()   {}
func (NopHaptics) Medium()  {}
func (NopHaptics) Strong()  {}
func (NopHaptics) Success() {}
func (NopHaptics) Error()   {}

// feedback fires haptics for classification transitions between prev and
// cur caused by ev.
func feedback(h Haptics, prev, cur Gestures, ev Event) {
	switch {
	case ev.Phase == PhaseCancelled:
		if prev.Swiping() || prev.LongPress || prev.Pinching || prev.Rotating {
			h.Error()
		}
		return
	case ev.Phase == PhaseEnded:
		if cur.FastSwipe && cur.Swiping() {
			h.Success()
		}
		return
	}
	if cur.Swiping() && !prev.Swiping() {
		h.Light()
	}
	if cur.LongPress && !prev.LongPress {
		h.Medium()
	}
	if (cur.Pinching && !prev.Pinching) || (cur.Rotating && !prev.Rotating) {
		h.Strong()
	}
}
