package page

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/flipbook/pkg/math"
)

// Rotation is a joint's local rotation in radians. Bend turns about Y (the
// spine axis) and Fold about X.
type Rotation struct {
	Bend float32 `yaml:"bend"`
	Fold float32 `yaml:"fold"`
}

// Joint is one link of the page chain.
type Joint struct {
	// Parent is the previous joint, or -1 for the root which hangs off the
	// page group.
	Parent int
	// Offset is the distance along the page width from the parent joint.
	Offset float32

	bend axis
	fold axis
}

// Rotation returns the joint's current local rotation.
func (j *Joint) Rotation() Rotation {
	return Rotation{Bend: j.bend.value, Fold: j.fold.value}
}

// Local returns the joint transform relative to its parent.
func (j *Joint) Local() math.Mat4 {
	return math.Translate(j.Offset, 0, 0).Mul(math.QuatFromEulerXY(j.fold.value, j.bend.value).ToMat4())
}

// Skeleton is a fixed chain of SegmentCount+1 joints across the page width.
type Skeleton struct {
	Joints       []Joint
	segmentCount int
	segmentWidth float32
}

// NewSkeleton builds the joint chain for a page of the given width.
func NewSkeleton(segmentCount int, width float32) (*Skeleton, error) {
	if segmentCount < 1 {
		return nil, fmt.Errorf("segment count must be positive, got %d", segmentCount)
	}
	if !(width > 0) {
		return nil, fmt.Errorf("page width must be positive, got %v", width)
	}

	s := &Skeleton{
		Joints:       make([]Joint, segmentCount+1),
		segmentCount: segmentCount,
		segmentWidth: width / float32(segmentCount),
	}
	for i := range s.Joints {
		s.Joints[i].Parent = i - 1
		if i > 0 {
			s.Joints[i].Offset = s.segmentWidth
		}
	}
	return s, nil
}

// SegmentCount returns the number of segments between joints.
func (s *Skeleton) SegmentCount() int { return s.segmentCount }

// SegmentWidth returns the distance between neighbouring joints.
func (s *Skeleton) SegmentWidth() float32 { return s.segmentWidth }

// Rotations returns the local rotation of every joint.
func (s *Skeleton) Rotations() []Rotation {
	out := make([]Rotation, len(s.Joints))
	for i := range s.Joints {
		out[i] = s.Joints[i].Rotation()
	}
	return out
}

// bindEpsilon is how close, in segments, a vertex must be to a joint to bind
// fully to it.
const bindEpsilon = 1e-5

// Binding ties a vertex to the two joints around it.
type Binding struct {
	Joints  [2]int
	Weights [2]float32
}

// Bind returns the skin binding of a vertex at local x along the page width.
// A vertex exactly on a joint is bound fully to that joint. Positions outside
// the page clamp to the first or last joint.
func (s *Skeleton) Bind(x float32) Binding {
	u := x / s.segmentWidth
	if !(u > 0) {
		return Binding{Joints: [2]int{0, 1}, Weights: [2]float32{1, 0}}
	}

	seg := int(math32.Floor(u))
	w := u - float32(seg)
	// Float error can leave a vertex on a joint a hair short of it.
	if w > 1-bindEpsilon {
		seg++
		w = 0
	} else if w < bindEpsilon {
		w = 0
	}
	if seg >= s.segmentCount {
		return Binding{Joints: [2]int{s.segmentCount, s.segmentCount}, Weights: [2]float32{1, 0}}
	}
	return Binding{Joints: [2]int{seg, seg + 1}, Weights: [2]float32{1 - w, w}}
}

// JointMatrices returns the world transform of every joint under root.
func (s *Skeleton) JointMatrices(root math.Mat4) []math.Mat4 {
	out := make([]math.Mat4, len(s.Joints))
	parent := root
	for i := range s.Joints {
		out[i] = parent.Mul(s.Joints[i].Local())
		parent = out[i]
	}
	return out
}

// BindMatrices returns the inverse rest transforms of the joints.
func (s *Skeleton) BindMatrices() []math.Mat4 {
	out := make([]math.Mat4, len(s.Joints))
	for i := range out {
		out[i] = math.Translate(-float32(i)*s.segmentWidth, 0, 0)
	}
	return out
}

// Reset returns every joint to the rest pose.
func (s *Skeleton) Reset() {
	for i := range s.Joints {
		s.Joints[i].bend = axis{}
		s.Joints[i].fold = axis{}
	}
}
