package page

import (
	"github.com/charmbracelet/harmonica"
	"github.com/chewxy/math32"

	"github.com/Faultbox/flipbook/pkg/math"
)

// snapEpsilon is the distance below which a settled axis jumps to its target.
const snapEpsilon = 1e-4

// axis is one damped scalar. velocity is only used by spring damping.
type axis struct {
	value    float32
	velocity float32
}

// dampAngle moves a toward target along the shortest arc.
func (m DampingMode) dampAngle(a *axis, target, smoothTime, dt float32) {
	m.damp(a, a.value+math.DeltaAngle(a.value, target), smoothTime, dt)
}

// damp moves a toward target. Frame-rate independence comes from scaling
// every step by dt; a non-positive smooth time snaps immediately.
func (m DampingMode) damp(a *axis, target, smoothTime, dt float32) {
	if dt <= 0 {
		return
	}
	if smoothTime <= 0 {
		a.value, a.velocity = target, 0
		return
	}

	omega := 2 / smoothTime
	switch m {
	case DampSpring:
		spring := harmonica.NewSpring(float64(dt), float64(omega), 1)
		pos, vel := spring.Update(float64(a.value), float64(a.velocity), float64(target))
		a.value, a.velocity = float32(pos), float32(vel)
	default:
		a.value += (target - a.value) * (1 - math32.Exp(-omega*dt))
	}

	if math32.Abs(target-a.value) < snapEpsilon && math32.Abs(a.velocity) < snapEpsilon {
		a.value, a.velocity = target, 0
	}
}
