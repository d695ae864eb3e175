package commands

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/phanxgames/gesture"
)

func snap(active bool, v float64, fast bool) gesture.Snapshot {
	return gesture.Snapshot{
		Swipe:    gesture.SwipeState{Active: active, Velocity: v},
		Gestures: gesture.Gestures{FastSwipe: fast},
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name  string
		snaps []gesture.Snapshot
		want  summary
	}{
		{"empty", nil, summary{}},
		{
			"single sample",
			[]gesture.Snapshot{snap(true, 2, true)},
			summary{Samples: 1, Mean: 2, Max: 2, Fast: 1},
		},
		{
			"skips idle and released snapshots",
			[]gesture.Snapshot{
				snap(true, 0, false),
				snap(true, 1, true),
				snap(true, 3, true),
				snap(false, 3, true),
			},
			summary{Samples: 2, Mean: 2, StdDev: math.Sqrt2, Max: 3, Fast: 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := summarize(tt.snaps)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Errorf("summary mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
