package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const flingScript = `{
	"name": "fling",
	"steps": [
		{"action": "swipe", "id": 1, "fromX": 0, "fromY": 0, "toX": 200, "toY": 0, "steps": 4, "ms": 80},
		{"action": "expect", "label": "right", "gesture": "swipeRight", "want": true}
	]
}`

const slowScript = `{
	"steps": [
		{"action": "swipe", "id": 1, "fromX": 0, "fromY": 0, "toX": 40, "toY": 0, "steps": 4, "ms": 800},
		{"action": "expect", "gesture": "fastSwipe", "want": true}
	]
}`

func writeScript(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestReplayCommand(t *testing.T) {
	path := writeScript(t, "fling.json", flingScript)
	out, err := runRoot(t, "replay", path)
	require.NoError(t, err, out)

	assert.Contains(t, out, "== fling")
	assert.Contains(t, out, "expect right")
	assert.Contains(t, out, "dir=right")
	assert.Contains(t, out, "velocity: samples=4")
	assert.Contains(t, out, "ok   fling")
}

func TestReplayCommandFailure(t *testing.T) {
	good := writeScript(t, "fling.json", flingScript)
	bad := writeScript(t, "slow.json", slowScript)

	out, err := runRoot(t, "replay", good, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 scripts failed")
	assert.Contains(t, out, "ok   fling")
	assert.Contains(t, out, "FAIL slow.json")
}

func TestReplayCommandVelocityOverride(t *testing.T) {
	bad := writeScript(t, "slow.json", slowScript)
	out, err := runRoot(t, "replay", "--velocity", "0.01", bad)
	assert.NoError(t, err, out)
}

func TestReplayCommandMissingFile(t *testing.T) {
	_, err := runRoot(t, "replay", filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestReplayCommandNoArgs(t *testing.T) {
	_, err := runRoot(t, "replay")
	assert.Error(t, err)
}

func TestReplayCommandVerbose(t *testing.T) {
	path := writeScript(t, "fling.json", flingScript)
	out, err := runRoot(t, "replay", "-v", path)
	require.NoError(t, err)
	assert.Contains(t, out, "[gesture] bound")
	assert.Contains(t, out, "[gesture] unbound")
}
