package component

import (
	"fmt"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"
)

// QuadTriangles is the fixed winding shared by every billboard quad.
var QuadTriangles = [6]uint16{0, 1, 2, 2, 1, 3}

// Corner order of quad vertices and UVs.
const (
	CornerBottomLeft = iota
	CornerTopLeft
	CornerBottomRight
	CornerTopRight
)

type Bounds struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

func (b Bounds) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

func (b Bounds) Size() mgl64.Vec3 {
	return b.Max.Sub(b.Min)
}

// QuadMesh is a four-vertex billboard mesh.
type QuadMesh struct {
	Name     string
	Vertices [4]mgl64.Vec3
	UVs      [4]mgl64.Vec2
	Bounds   Bounds
}

var quadMeshCount atomic.Uint64

// NewQuadMesh returns an empty mesh with a process-unique debug name.
func NewQuadMesh() *QuadMesh {
	return &QuadMesh{Name: fmt.Sprintf("BillboardQuad_%d", quadMeshCount.Add(1))}
}

func (m *QuadMesh) Triangles() [6]uint16 {
	return QuadTriangles
}

func (m *QuadMesh) RecalculateBounds() {
	lo, hi := m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		for i := 0; i < 3; i++ {
			if v[i] < lo[i] {
				lo[i] = v[i]
			}
			if v[i] > hi[i] {
				hi[i] = v[i]
			}
		}
	}
	m.Bounds = Bounds{Min: lo, Max: hi}
}

// MeshFilter is the geometry container of a billboard.
type MeshFilter struct {
	Mesh *QuadMesh
}

var MeshFilterComponent = NewComponent[MeshFilter]()
