package page

import (
	"errors"

	"github.com/Faultbox/flipbook/pkg/math"
)

// Vertex is a page mesh vertex with its skin binding.
type Vertex struct {
	Position math.Vec3
	TexCoord [2]float32
	Binding  Binding
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Mesh is the subdivided page box at rest, ready for skinning.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// BuildMesh subdivides the front and back faces of a page into one column per
// skeleton segment. The mesh starts at the spine (x = 0) and extends to
// x = geo.Width.
func BuildMesh(geo Geometry, s *Skeleton) (*Mesh, error) {
	if s == nil {
		return nil, errors.New("nil skeleton")
	}
	if geo.HeightSegments < 1 {
		return nil, errors.New("height segments must be positive")
	}

	cols := s.SegmentCount()
	rows := geo.HeightSegments
	m := &Mesh{
		Bounds: Bounds{
			Min: math.Vec3{X: 1e10, Y: 1e10, Z: 1e10},
			Max: math.Vec3{X: -1e10, Y: -1e10, Z: -1e10},
		},
	}

	// Front face looks toward +Z, back face toward -Z with reversed winding.
	for _, side := range []float32{1, -1} {
		base := uint32(len(m.Vertices))
		z := side * geo.Depth / 2
		for r := 0; r <= rows; r++ {
			v := float32(r) / float32(rows)
			y := -geo.Height/2 + v*geo.Height
			for c := 0; c <= cols; c++ {
				u := float32(c) / float32(cols)
				x := float32(c) * s.SegmentWidth()
				if side < 0 {
					u = 1 - u
				}
				pos := math.Vec3{X: x, Y: y, Z: z}
				m.Vertices = append(m.Vertices, Vertex{
					Position: pos,
					TexCoord: [2]float32{u, 1 - v},
					Binding:  s.Bind(x),
				})
				m.Bounds.extend(pos)
			}
		}

		stride := uint32(cols + 1)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				a := base + uint32(r)*stride + uint32(c)
				b := a + 1
				d := a + stride
				e := d + 1
				if side > 0 {
					m.Indices = append(m.Indices, a, b, e, a, e, d)
				} else {
					m.Indices = append(m.Indices, a, e, b, a, d, e)
				}
			}
		}
	}

	return m, nil
}

func (b *Bounds) extend(p math.Vec3) {
	b.Min = math.Vec3{X: min(b.Min.X, p.X), Y: min(b.Min.Y, p.Y), Z: min(b.Min.Z, p.Z)}
	b.Max = math.Vec3{X: max(b.Max.X, p.X), Y: max(b.Max.Y, p.Y), Z: max(b.Max.Z, p.Z)}
}

// Skin returns the mesh positions deformed by the skeleton's current pose
// under root, using two-joint linear blend skinning.
func Skin(m *Mesh, s *Skeleton, root math.Mat4) []math.Vec3 {
	world := s.JointMatrices(root)
	inv := s.BindMatrices()
	skin := make([]math.Mat4, len(world))
	for i := range world {
		skin[i] = world[i].Mul(inv[i])
	}

	out := make([]math.Vec3, len(m.Vertices))
	for i, v := range m.Vertices {
		b := v.Binding
		blend := skin[b.Joints[0]].MulScalar(b.Weights[0]).Add(skin[b.Joints[1]].MulScalar(b.Weights[1]))
		out[i] = blend.TransformVec3(v.Position)
	}
	return out
}
