package commands

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/phanxgames/gesture"
)

// summary describes the swipe velocities observed over one replay.
type summary struct {
	Samples int
	Mean    float64
	StdDev  float64
	Max     float64
	Fast    int
}

// recorder is a gesture.Sink that keeps every published snapshot.
type recorder struct {
	snaps []gesture.Snapshot
}

func (r *recorder) Emit(s gesture.Snapshot) { r.snaps = append(r.snaps, s) }

// summarize collects the swipe velocity of every snapshot taken while the
// tracker was active and moving.
func summarize(snaps []gesture.Snapshot) summary {
	var v []float64
	fast := 0
	for _, s := range snaps {
		if !s.Swipe.Active || s.Swipe.Velocity == 0 {
			continue
		}
		v = append(v, s.Swipe.Velocity)
		if s.Gestures.FastSwipe {
			fast++
		}
	}
	out := summary{Samples: len(v), Fast: fast}
	if len(v) == 0 {
		return out
	}
	out.Mean, out.StdDev = stat.MeanStdDev(v, nil)
	if len(v) == 1 {
		out.StdDev = 0
	}
	out.Max = floats.Max(v)
	return out
}
