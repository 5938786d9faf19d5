package page

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/flipbook/pkg/math"
)

func TestNewSkeletonChain(t *testing.T) {
	s, err := NewSkeleton(30, 1.28)
	require.NoError(t, err)

	require.Len(t, s.Joints, 31)
	assert.InDelta(t, 1.28/30, s.SegmentWidth(), 1e-6)
	for i, j := range s.Joints {
		assert.Equal(t, i-1, j.Parent, "joint %d parent", i)
		if i == 0 {
			assert.Zero(t, j.Offset)
		} else {
			assert.InDelta(t, s.SegmentWidth(), j.Offset, 1e-6, "joint %d offset", i)
		}
	}
}

func TestNewSkeletonRejectsBadInput(t *testing.T) {
	_, err := NewSkeleton(0, 1)
	assert.Error(t, err)
	_, err = NewSkeleton(30, 0)
	assert.Error(t, err)
	_, err = NewSkeleton(30, -1)
	assert.Error(t, err)
}

func TestBind(t *testing.T) {
	// Width 3 over 3 segments gives unit segments, so boundaries are exact.
	s, err := NewSkeleton(3, 3)
	require.NoError(t, err)

	tests := []struct {
		name string
		x    float32
		want Binding
	}{
		{"spine", 0, Binding{Joints: [2]int{0, 1}, Weights: [2]float32{1, 0}}},
		{"left of spine", -0.5, Binding{Joints: [2]int{0, 1}, Weights: [2]float32{1, 0}}},
		{"quarter", 0.25, Binding{Joints: [2]int{0, 1}, Weights: [2]float32{0.75, 0.25}}},
		{"on boundary", 1, Binding{Joints: [2]int{1, 2}, Weights: [2]float32{1, 0}}},
		{"just short of boundary", 1 - 1e-6, Binding{Joints: [2]int{1, 2}, Weights: [2]float32{1, 0}}},
		{"middle of last", 2.5, Binding{Joints: [2]int{2, 3}, Weights: [2]float32{0.5, 0.5}}},
		{"free edge", 3, Binding{Joints: [2]int{3, 3}, Weights: [2]float32{1, 0}}},
		{"past edge", 7, Binding{Joints: [2]int{3, 3}, Weights: [2]float32{1, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, s.Bind(tt.x)); diff != "" {
				t.Errorf("Bind(%v) mismatch (-want +got):\n%s", tt.x, diff)
			}
		})
	}
}

func TestBindStaysInRange(t *testing.T) {
	s, err := NewSkeleton(30, 1.28)
	require.NoError(t, err)

	for k := 0; k <= 3000; k++ {
		x := float32(k) * 1.28 / 3000
		b := s.Bind(x)
		for _, j := range b.Joints {
			require.GreaterOrEqual(t, j, 0)
			require.LessOrEqual(t, j, 30)
		}
		assert.InDelta(t, 1, b.Weights[0]+b.Weights[1], 1e-5)
		assert.GreaterOrEqual(t, b.Weights[1], float32(0))
	}
}

func TestJointMatricesAtRest(t *testing.T) {
	s, err := NewSkeleton(4, 2)
	require.NoError(t, err)

	world := s.JointMatrices(math.Identity())
	for i, m := range world {
		assert.InDelta(t, float32(i)*0.5, m.Translation().X, 1e-6, "joint %d", i)
		assert.Zero(t, m.Translation().Z)
	}
}

func TestJointMatricesAccumulateBend(t *testing.T) {
	s, err := NewSkeleton(2, 2)
	require.NoError(t, err)

	// Bend joint 1 by 90 degrees: joint 2 ends up one unit along -Z from joint 1.
	s.Joints[1].bend.value = math.DegToRad(90)
	world := s.JointMatrices(math.Identity())

	p := world[2].Translation()
	assert.InDelta(t, 1, p.X, 1e-5)
	assert.InDelta(t, -1, p.Z, 1e-5)

	s.Reset()
	assert.Equal(t, Rotation{}, s.Joints[1].Rotation())
}
