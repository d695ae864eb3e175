package commands

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/phanxgames/gesture"
)

// envConfig mirrors gesture.Config with environment bindings.
type envConfig struct {
	DistanceThreshold float64       `env:"GESTURE_DISTANCE_THRESHOLD" envDefault:"10"`
	VelocityThreshold float64       `env:"GESTURE_VELOCITY_THRESHOLD" envDefault:"0.3"`
	LongPress         time.Duration `env:"GESTURE_LONG_PRESS" envDefault:"500ms"`
	EnablePinch       bool          `env:"GESTURE_ENABLE_PINCH" envDefault:"true"`
	EnableRotation    bool          `env:"GESTURE_ENABLE_ROTATION" envDefault:"true"`
	PreventScroll     bool          `env:"GESTURE_PREVENT_SCROLL" envDefault:"false"`
}

// loadConfig reads the engine configuration from the environment.
func loadConfig() (gesture.Config, error) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return gesture.Config{}, fmt.Errorf("parse env: %w", err)
	}
	return gesture.Config{
		DistanceThreshold: ec.DistanceThreshold,
		VelocityThreshold: ec.VelocityThreshold,
		LongPressDuration: ec.LongPress,
		EnablePinch:       ec.EnablePinch,
		EnableRotation:    ec.EnableRotation,
		PreventScroll:     ec.PreventScroll,
	}, nil
}

// configFlags holds flag values; only flags set on the command line override
// the environment.
type configFlags struct {
	distance      float64
	velocity      float64
	longPress     time.Duration
	pinch         bool
	rotation      bool
	preventScroll bool
}

func (f *configFlags) register(cmd *cobra.Command) {
	def := gesture.DefaultConfig()
	pf := cmd.PersistentFlags()
	pf.Float64Var(&f.distance, "distance", def.DistanceThreshold, "swipe distance threshold in px")
	pf.Float64Var(&f.velocity, "velocity", def.VelocityThreshold, "fast swipe velocity threshold in px/ms")
	pf.DurationVar(&f.longPress, "long-press", def.LongPressDuration, "long-press dwell time")
	pf.BoolVar(&f.pinch, "pinch", def.EnablePinch, "enable the pinch tracker")
	pf.BoolVar(&f.rotation, "rotation", def.EnableRotation, "enable the rotation tracker")
	pf.BoolVar(&f.preventScroll, "prevent-scroll", def.PreventScroll, "suppress default scrolling")
}

func (f *configFlags) apply(cmd *cobra.Command, cfg *gesture.Config) {
	flags := cmd.Flags()
	if flags.Changed("distance") {
		cfg.DistanceThreshold = f.distance
	}
	if flags.Changed("velocity") {
		cfg.VelocityThreshold = f.velocity
	}
	if flags.Changed("long-press") {
		cfg.LongPressDuration = f.longPress
	}
	if flags.Changed("pinch") {
		cfg.EnablePinch = f.pinch
	}
	if flags.Changed("rotation") {
		cfg.EnableRotation = f.rotation
	}
	if flags.Changed("prevent-scroll") {
		cfg.PreventScroll = f.preventScroll
	}
}
