package mesh

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/gldemos/pkg/math"
)

func normalAt(normals []float32, i int) math.Vec3 {
	return math.Vec3{X: normals[i*3], Y: normals[i*3+1], Z: normals[i*3+2]}
}

func TestSingleTriangleNormal(t *testing.T) {
	vertices := []float32{
		0, 0, 0,
		4, 1, 0,
		1, 3, 2,
	}
	indices := []uint16{0, 1, 2}

	p0 := math.Vec3{X: 0, Y: 0, Z: 0}
	p1 := math.Vec3{X: 4, Y: 1, Z: 0}
	p2 := math.Vec3{X: 1, Y: 3, Z: 2}
	want := p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()

	normals := CalculateNormals(vertices, indices)
	require.Len(t, normals, 9)

	for i := 0; i < 3; i++ {
		got := normalAt(normals, i)
		assert.InDelta(t, want.X, got.X, 1e-6, "vertex %d", i)
		assert.InDelta(t, want.Y, got.Y, 1e-6, "vertex %d", i)
		assert.InDelta(t, want.Z, got.Z, 1e-6, "vertex %d", i)
	}
}

func TestCounterClockwiseFacesViewer(t *testing.T) {
	// Counter-clockwise seen from +Z.
	vertices := []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}
	normals := CalculateNormals(vertices, []uint16{0, 1, 2})

	assert.Equal(t, math.Vec3{X: 0, Y: 0, Z: 1}, normalAt(normals, 0))
}

func TestSharedVertexAccumulates(t *testing.T) {
	// Two triangles folded along the X axis share vertices 0 and 1.
	vertices := []float32{
		0, 0, 0,
		1, 0, 0,
		0, 1, 0,
		0, 0, -1,
	}
	indices := []uint16{
		0, 1, 2, // normal +Z
		0, 1, 3, // normal +Y
	}

	normals := CalculateNormals(vertices, indices)

	shared := normalAt(normals, 0)
	assert.InDelta(t, 0, shared.X, 1e-6)
	assert.InDelta(t, math32.Sqrt(0.5), shared.Y, 1e-6)
	assert.InDelta(t, math32.Sqrt(0.5), shared.Z, 1e-6)
	assert.Equal(t, math.Vec3{Z: 1}, normalAt(normals, 2))
	assert.Equal(t, math.Vec3{Y: 1}, normalAt(normals, 3))
}

func TestUnreferencedVertexHasUnitNormal(t *testing.T) {
	vertices := []float32{
		0, 0, 0,
		1, 0, 0,
		0, 1, 0,
		5, 5, 5, // never referenced
	}

	normals := CalculateNormals(vertices, []uint16{0, 1, 2})

	n := normalAt(normals, 3)
	assert.False(t, math32.IsNaN(n.X) || math32.IsNaN(n.Y) || math32.IsNaN(n.Z))
	assert.Equal(t, float32(1), n.Length())
}

func TestDegenerateTriangleHasUnitNormal(t *testing.T) {
	// All three vertices collinear: zero face normal.
	vertices := []float32{0, 0, 0, 1, 1, 1, 2, 2, 2}

	normals := CalculateNormals(vertices, []uint16{0, 1, 2})

	for i := 0; i < 3; i++ {
		assert.Equal(t, float32(1), normalAt(normals, i).Length(), "vertex %d", i)
	}
}

func TestLineListNormalsAreFinite(t *testing.T) {
	// Line-list objects (floor, axis) still go through the triangle walk.
	axis := Axis(10)
	normals := CalculateNormals(axis.Vertices, axis.Indices)

	require.Len(t, normals, 18)
	for i := 0; i < 6; i++ {
		l := normalAt(normals, i).Length()
		assert.InDelta(t, 1, l, 1e-6, "vertex %d", i)
	}
}
