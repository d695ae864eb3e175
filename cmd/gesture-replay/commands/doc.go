// Package commands implements the gesture-replay command tree.
//
// Engine thresholds come from GESTURE_* environment variables and may be
// overridden per invocation with flags:
//
//	GESTURE_DISTANCE_THRESHOLD  --distance
//	GESTURE_VELOCITY_THRESHOLD  --velocity
//	GESTURE_LONG_PRESS          --long-press
//	GESTURE_ENABLE_PINCH        --pinch
//	GESTURE_ENABLE_ROTATION     --rotation
//	GESTURE_PREVENT_SCROLL      --prevent-scroll
package commands
