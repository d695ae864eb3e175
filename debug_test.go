package gesture

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestDebugOutput(t *testing.T) {
	var buf bytes.Buffer
	s := NewInjectSurface(t0)
	b, err := Bind(s, DefaultConfig(), WithDebug(&buf))
	if err != nil {
		t.Fatal(err)
	}
	s.InjectSwipe(1, 0, 0, 120, 0, 2, 40*time.Millisecond)
	s.Press(1, 0, 0)
	s.Press(2, 100, 0)
	b.Unbind()

	out := buf.String()
	for _, want := range []string{
		"[gesture] bound (pinch=true rotation=true preventScroll=false)",
		"[gesture] began contacts=1",
		"gestures dir=right fast=true",
		"began pinch scale=1.000",
		"[gesture] unbound",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("debug output missing %q:\n%s", want, out)
		}
	}
}

func TestDebugDisabled(t *testing.T) {
	s := NewInjectSurface(t0)
	b := mustBind(t, s, DefaultConfig())
	if b.debugOut != nil {
		t.Fatal("debug output enabled without WithDebug")
	}
	// Must not panic without a writer.
	s.InjectSwipe(1, 0, 0, 50, 0, 1, 10*time.Millisecond)
}
