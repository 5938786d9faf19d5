package page

import (
	"fmt"
	"time"

	"github.com/Faultbox/flipbook/pkg/math"
)

// Phase is where a page is in its turn cycle.
type Phase int

const (
	PhaseClosed Phase = iota
	PhaseOpening
	PhaseOpen
	PhaseClosing
)

func (p Phase) String() string {
	switch p {
	case PhaseClosed:
		return "closed"
	case PhaseOpening:
		return "opening"
	case PhaseOpen:
		return "open"
	case PhaseClosing:
		return "closing"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Pose is what a renderer needs to draw one page for the current frame.
type Pose struct {
	Index    int        `yaml:"index"`
	Phase    string     `yaml:"phase"`
	Group    Rotation   `yaml:"group"`
	Depth    float32    `yaml:"depth"`
	Emissive float32    `yaml:"emissive"`
	Joints   []Rotation `yaml:"joints,omitempty"`
}

// Page is one leaf of the book. Its structure never changes after creation;
// only the pose does.
type Page struct {
	Index int
	Front string
	Back  string

	skeleton *Skeleton
	mesh     *Mesh

	clock      TurnClock
	groupBend  axis
	groupFold  axis
	depth      float32
	appearance Appearance
}

// New creates a page that starts at rest in the given state. It has no
// skeleton until Attach is called.
func New(index int, front, back string, opened bool) *Page {
	return &Page{
		Index: index,
		Front: front,
		Back:  back,
		clock: NewTurnClock(opened),
	}
}

// Attach builds the page's skeleton and mesh. Calling it again rebuilds both,
// which is how a change of segment count is applied.
func (p *Page) Attach(geo Geometry, segmentCount int) error {
	s, err := NewSkeleton(segmentCount, geo.Width)
	if err != nil {
		return fmt.Errorf("page %d skeleton: %w", p.Index, err)
	}
	m, err := BuildMesh(geo, s)
	if err != nil {
		return fmt.Errorf("page %d mesh: %w", p.Index, err)
	}
	p.skeleton = s
	p.mesh = m
	return nil
}

// Detach drops the skeleton and mesh. The solver skips the page until it is
// attached again.
func (p *Page) Detach() {
	p.skeleton = nil
	p.mesh = nil
}

// Ready reports whether the page has a skeleton to pose.
func (p *Page) Ready() bool { return p.skeleton != nil }

// Skeleton returns the page skeleton, or nil before Attach.
func (p *Page) Skeleton() *Skeleton { return p.skeleton }

// Mesh returns the page mesh, or nil before Attach.
func (p *Page) Mesh() *Mesh { return p.mesh }

// Appearance returns the page's material state.
func (p *Page) Appearance() *Appearance { return &p.appearance }

// GroupRotation returns the rotation of the whole page about the spine.
func (p *Page) GroupRotation() Rotation {
	return Rotation{Bend: p.groupBend.value, Fold: p.groupFold.value}
}

// GroupMatrix returns the page group transform.
func (p *Page) GroupMatrix() math.Mat4 {
	return math.Translate(0, 0, p.depth).Mul(math.QuatFromEulerXY(p.groupFold.value, p.groupBend.value).ToMat4())
}

// Phase reports the turn phase for the given turn duration.
func (p *Page) Phase(turn time.Duration) Phase {
	turning := p.clock.Progress(turn) < 1
	switch {
	case p.clock.Opened() && turning:
		return PhaseOpening
	case p.clock.Opened():
		return PhaseOpen
	case turning:
		return PhaseClosing
	default:
		return PhaseClosed
	}
}

// Pose snapshots the page for rendering.
func (p *Page) Pose(turn time.Duration) Pose {
	pose := Pose{
		Index:    p.Index,
		Phase:    p.Phase(turn).String(),
		Group:    p.GroupRotation(),
		Depth:    p.depth,
		Emissive: p.appearance.Emissive(),
	}
	if p.skeleton != nil {
		pose.Joints = p.skeleton.Rotations()
	}
	return pose
}

// SkinnedVertices returns the mesh positions in book space, or nil before
// Attach.
func (p *Page) SkinnedVertices() []math.Vec3 {
	if p.skeleton == nil || p.mesh == nil {
		return nil
	}
	return Skin(p.mesh, p.skeleton, p.GroupMatrix())
}
