package page

import (
	"fmt"

	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/Faultbox/flipbook/internal/logger"
	"github.com/Faultbox/flipbook/pkg/math"
)

// State is what the navigation controller decides about one page this frame.
type State struct {
	Opened     bool
	BookClosed bool
	// Depth is the page group's offset along Z within the stack.
	Depth float32
}

// Solver bends page skeletons toward their open or closed pose every frame.
type Solver struct {
	tuning Tuning
}

// NewSolver returns a solver for the given tuning.
func NewSolver(t Tuning) (*Solver, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning: %w", err)
	}
	return &Solver{tuning: t}, nil
}

// Tuning returns the active tuning.
func (s *Solver) Tuning() Tuning { return s.tuning }

// SetTuning replaces the tuning. Poses continue from where they are.
func (s *Solver) SetTuning(t Tuning) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("invalid tuning: %w", err)
	}
	s.tuning = t
	return nil
}

// Update advances one page by dt seconds. It returns false without touching
// the page when its skeleton is not attached yet.
func (s *Solver) Update(p *Page, st State, dt float32) bool {
	if p == nil || p.skeleton == nil {
		return false
	}
	t := &s.tuning

	p.clock.Advance(dt, t.TurnDuration)
	if p.clock.Observe(st.Opened) {
		logger.Debug("page turn started",
			zap.Int("page", p.Index),
			zap.Bool("opened", st.Opened),
		)
	}
	turningTime := p.clock.TurningTime(t.TurnDuration)
	p.depth = st.Depth
	p.appearance.Update(dt)

	target := s.BaseRotation(p.Index, st.Opened, st.BookClosed)
	joints := p.skeleton.Joints
	for i := range joints {
		bend, fold := s.JointTarget(i, len(joints), target, turningTime, st.BookClosed)

		// The root joint swings the whole page group; its skeleton bone stays at rest.
		bendAxis, foldAxis := &joints[i].bend, &joints[i].fold
		smooth := t.EasingFactorFold
		if i == 0 {
			bendAxis, foldAxis = &p.groupBend, &p.groupFold
			smooth = t.EasingFactor
		}
		t.Damping.dampAngle(bendAxis, bend, smooth, dt)
		t.Damping.dampAngle(foldAxis, fold, smooth, dt)
	}
	return true
}

// BaseRotation is the whole-page angle: -Pi/2 opened, +Pi/2 closed, spread by
// the page's stack position while the book is open.
func (s *Solver) BaseRotation(index int, opened, bookClosed bool) float32 {
	target := float32(math32.Pi / 2)
	if opened {
		target = -target
	}
	if !bookClosed {
		target += math.DegToRad(float32(index) * s.tuning.StackOffsetDeg)
	}
	return target
}

// JointTarget returns the bend and fold target of joint i out of n.
func (s *Solver) JointTarget(i, n int, target, turningTime float32, bookClosed bool) (bend, fold float32) {
	if bookClosed {
		if i == 0 {
			return target, 0
		}
		return 0, 0
	}

	t := &s.tuning
	bend = t.InsideCurveStrength*insideCurve(i, t.CurveSplit)*target -
		t.OutsideCurveStrength*outsideCurve(i, t.CurveSplit)*target +
		t.TurningCurveStrength*turningCurve(i, n, turningTime)*target

	foldAngle := math.DegToRad(math.Sign(target) * t.FoldAngleDeg)
	fold = foldAngle * foldIntensity(i, n, t.FoldStart, turningTime)
	return bend, fold
}

// insideCurve bows the joints near the spine.
func insideCurve(i, split int) float32 {
	if i >= split {
		return 0
	}
	return math32.Sin(float32(i)*0.2 + 0.25)
}

// outsideCurve bows the joints toward the free edge.
func outsideCurve(i, split int) float32 {
	if i < split {
		return 0
	}
	return math32.Cos(float32(i)*0.3 + 0.09)
}

// turningCurve is the extra curl present only while the page is moving.
func turningCurve(i, n int, turningTime float32) float32 {
	return math32.Sin(float32(i)*math32.Pi/float32(n)) * turningTime
}

func foldIntensity(i, n, start int, turningTime float32) float32 {
	if i <= start {
		return 0
	}
	return math32.Sin(float32(i)*math32.Pi/float32(n)-0.5) * turningTime
}
