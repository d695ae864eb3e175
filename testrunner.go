package gesture

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// ScriptStep is a single action in a replay script.
type ScriptStep struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`

	// down, move, up
	ID int     `json:"id,omitempty"`
	X  float64 `json:"x,omitempty"`
	Y  float64 `json:"y,omitempty"`

	// swipe
	FromX float64 `json:"fromX,omitempty"`
	FromY float64 `json:"fromY,omitempty"`
	ToX   float64 `json:"toX,omitempty"`
	ToY   float64 `json:"toY,omitempty"`

	// pinch (centered on X, Y)
	FromDist  float64 `json:"fromDist,omitempty"`
	ToDist    float64 `json:"toDist,omitempty"`
	FromAngle float64 `json:"fromAngle,omitempty"`
	ToAngle   float64 `json:"toAngle,omitempty"`

	// swipe, pinch
	Steps int `json:"steps,omitempty"`
	// wait, swipe, pinch; also the pause before down, move and up.
	Millis float64 `json:"ms,omitempty"`

	// expect
	Gesture   string   `json:"gesture,omitempty"`
	Want      *bool    `json:"want,omitempty"`
	Value     *float64 `json:"value,omitempty"`
	Tolerance float64  `json:"tolerance,omitempty"`
}

// Script is a parsed replay script.
type Script struct {
	Name  string       `json:"name,omitempty"`
	Steps []ScriptStep `json:"steps"`
}

// StepResult records the binding snapshot after one script step.
type StepResult struct {
	Index    int
	Step     ScriptStep
	Snapshot Snapshot
}

// LoadScript parses a JSON replay script.
func LoadScript(jsonData []byte) (*Script, error) {
	var script Script
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("gesture: parse script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("gesture: parse script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "down", "move", "up", "cancel", "wait", "swipe", "pinch":
		case "expect":
			if st.Gesture == "" || (st.Want == nil && st.Value == nil) {
				return nil, fmt.Errorf("gesture: parse script: step %d: expect needs gesture and want or value", i)
			}
		default:
			return nil, fmt.Errorf("gesture: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &script, nil
}

// Replay binds a fresh InjectSurface with cfg, runs every step against it
// and returns one result per step. It stops at the first failed expect.
func (sc *Script) Replay(cfg Config, opts ...Option) ([]StepResult, error) {
	surface := NewInjectSurface(time.Unix(0, 0))
	b, err := Bind(surface, cfg, opts...)
	if err != nil {
		return nil, err
	}
	defer b.Unbind()

	results := make([]StepResult, 0, len(sc.Steps))
	for i, st := range sc.Steps {
		if err := runStep(surface, b, st); err != nil {
			return results, fmt.Errorf("gesture: replay %s: step %d (%s): %w", sc.name(), i, st.Action, err)
		}
		results = append(results, StepResult{Index: i, Step: st, Snapshot: b.Snapshot()})
	}
	return results, nil
}

func (sc *Script) name() string {
	if sc.Name == "" {
		return "script"
	}
	return sc.Name
}

func stepDuration(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}

func runStep(s *InjectSurface, b *Binding, st ScriptStep) error {
	d := stepDuration(st.Millis)
	switch st.Action {
	case "down":
		s.Advance(d)
		s.Press(st.ID, st.X, st.Y)
	case "move":
		s.Advance(d)
		s.Move(st.ID, st.X, st.Y)
	case "up":
		s.Advance(d)
		s.Release(st.ID)
	case "cancel":
		s.Cancel()
	case "wait":
		s.Advance(d)
		b.Tick(s.Now())
	case "swipe":
		s.InjectSwipe(st.ID, st.FromX, st.FromY, st.ToX, st.ToY, st.Steps, d)
	case "pinch":
		s.InjectPinch(st.X, st.Y, st.FromDist, st.ToDist, st.FromAngle, st.ToAngle, st.Steps, d)
	case "expect":
		return expect(b.Gestures(), st)
	}
	return nil
}

// expect checks one named flag or value of g.
func expect(g Gestures, st ScriptStep) error {
	if st.Value != nil {
		var got float64
		switch st.Gesture {
		case "pinchScale":
			got = g.PinchScale
		case "rotationAngle":
			got = g.RotationAngle
		default:
			return fmt.Errorf("no numeric gesture %q", st.Gesture)
		}
		tol := st.Tolerance
		if tol == 0 {
			tol = 1e-6
		}
		if math.Abs(got-*st.Value) > tol {
			return fmt.Errorf("%s = %v, want %v (±%v)", st.Gesture, got, *st.Value, tol)
		}
		return nil
	}

	got, ok := flag(g, st.Gesture)
	if !ok {
		return fmt.Errorf("no gesture flag %q", st.Gesture)
	}
	if got != *st.Want {
		return fmt.Errorf("%s = %v, want %v", st.Gesture, got, *st.Want)
	}
	return nil
}

// flag looks up a boolean gesture by its script name.
func flag(g Gestures, name string) (bool, bool) {
	switch name {
	case "swipeLeft":
		return g.SwipeLeft, true
	case "swipeRight":
		return g.SwipeRight, true
	case "swipeUp":
		return g.SwipeUp, true
	case "swipeDown":
		return g.SwipeDown, true
	case "fastSwipe":
		return g.FastSwipe, true
	case "longPress":
		return g.LongPress, true
	case "pinching":
		return g.Pinching, true
	case "rotating":
		return g.Rotating, true
	}
	return false, false
}
