// Package page deforms a single book page: the joint chain laid across the
// page width, the skin bindings of its mesh, and the per-frame curvature
// solver that bends the chain while the page turns.
package page

import (
	"errors"
	"fmt"
	"time"
)

// DampingMode selects how joint rotations approach their targets.
type DampingMode string

const (
	// DampExponential eases with current += delta * (1 - exp(-2*dt/smooth)).
	DampExponential DampingMode = "exponential"
	// DampSpring eases with a critically damped spring.
	DampSpring DampingMode = "spring"
)

// Tuning holds the curvature and easing constants of the page-turn solver.
type Tuning struct {
	InsideCurveStrength  float32
	OutsideCurveStrength float32
	TurningCurveStrength float32

	// EasingFactor is the smooth time in seconds of the page group swing.
	EasingFactor float32
	// EasingFactorFold is the smooth time in seconds of the per-joint curve
	// and fold of the skeleton bones.
	EasingFactorFold float32

	SegmentCount int
	TurnDuration time.Duration

	// CurveSplit is the first joint that follows the outside curve; joints
	// below it follow the inside curve.
	CurveSplit int
	// FoldStart is the last joint without fold; joints above it crease.
	FoldStart int

	StackOffsetDeg float32
	FoldAngleDeg   float32

	Damping DampingMode
}

// DefaultTuning returns the constants the page turn was tuned with.
func DefaultTuning() Tuning {
	return Tuning{
		InsideCurveStrength:  0.18,
		OutsideCurveStrength: 0.05,
		TurningCurveStrength: 0.09,
		EasingFactor:         0.5,
		EasingFactorFold:     0.3,
		SegmentCount:         30,
		TurnDuration:         400 * time.Millisecond,
		CurveSplit:           8,
		FoldStart:            8,
		StackOffsetDeg:       0.8,
		FoldAngleDeg:         2,
		Damping:              DampExponential,
	}
}

// Validate reports the first setting the solver cannot run with.
func (t Tuning) Validate() error {
	switch {
	case t.SegmentCount < 1:
		return fmt.Errorf("segment count must be positive, got %d", t.SegmentCount)
	case t.TurnDuration <= 0:
		return fmt.Errorf("turn duration must be positive, got %v", t.TurnDuration)
	case t.EasingFactor < 0 || t.EasingFactorFold < 0:
		return errors.New("easing factors must not be negative")
	case t.CurveSplit < 0:
		return fmt.Errorf("curve split must not be negative, got %d", t.CurveSplit)
	}
	switch t.Damping {
	case DampExponential, DampSpring, "":
	default:
		return fmt.Errorf("unknown damping mode %q", t.Damping)
	}
	return nil
}

// Geometry describes the page box in scene units.
type Geometry struct {
	Width          float32
	Height         float32
	Depth          float32
	HeightSegments int
}

// DefaultGeometry returns the page size used by the book model.
func DefaultGeometry() Geometry {
	return Geometry{
		Width:          1.28,
		Height:         1.71,
		Depth:          0.003,
		HeightSegments: 2,
	}
}
