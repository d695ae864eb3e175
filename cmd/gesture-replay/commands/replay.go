package commands

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/phanxgames/gesture"
)

func replayCmd(st *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "replay <script.json>...",
		Short: "Replay scripts and report classification after each step",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []gesture.Option
			if st.verbose {
				opts = append(opts, gesture.WithDebug(cmd.ErrOrStderr()))
			}
			failed := 0
			for _, path := range args {
				if err := replayFile(cmd.OutOrStdout(), path, st.cfg, opts...); err != nil {
					log.Printf("%s: %v", path, err)
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d scripts failed", failed, len(args))
			}
			return nil
		},
	}
}

func replayFile(w io.Writer, path string, cfg gesture.Config, opts ...gesture.Option) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	script, err := gesture.LoadScript(data)
	if err != nil {
		return err
	}
	if script.Name == "" {
		script.Name = filepath.Base(path)
	}

	rec := &recorder{}
	results, err := script.Replay(cfg, append(opts, gesture.WithSink(rec))...)
	fmt.Fprintf(w, "== %s\n", script.Name)
	for _, r := range results {
		printStep(w, r)
	}
	if err != nil {
		fmt.Fprintf(w, "FAIL %s\n", script.Name)
		return err
	}

	s := summarize(rec.snaps)
	fmt.Fprintf(w, "velocity: samples=%d mean=%.3f stddev=%.3f max=%.3f fast=%d\n",
		s.Samples, s.Mean, s.StdDev, s.Max, s.Fast)
	fmt.Fprintf(w, "ok   %s\n", script.Name)
	return nil
}

func printStep(w io.Writer, r gesture.StepResult) {
	label := r.Step.Action
	if r.Step.Label != "" {
		label += " " + r.Step.Label
	}
	sw := r.Snapshot.Swipe
	g := r.Snapshot.Gestures
	fmt.Fprintf(w, "%3d %-16s dir=%-5s dist=%7.1f v=%6.3f fast=%-5v long=%-5v",
		r.Index, label, g.Direction(), sw.Distance, sw.Velocity, g.FastSwipe, g.LongPress)
	if g.Pinching {
		fmt.Fprintf(w, " scale=%.3f", g.PinchScale)
	}
	if g.Rotating {
		fmt.Fprintf(w, " angle=%.1f", g.RotationAngle)
	}
	fmt.Fprintln(w)
}
