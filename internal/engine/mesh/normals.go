package mesh

import "github.com/Faultbox/gldemos/pkg/math"

// fallbackNormal is used for vertices that no triangle contributes to.
var fallbackNormal = math.Vec3{X: 0, Y: 1, Z: 0}

// CalculateNormals returns one unit normal per vertex (flat x,y,z list).
//
// Every triangle (i0, i1, i2) adds its un-normalized face normal
// (p2-p1) x (p0-p1) to each of its three vertices; the sums are normalized
// at the end. A vertex with a zero-length sum gets fallbackNormal. Trailing
// indices that do not form a whole triangle are ignored.
func CalculateNormals(vertices []float32, indices []uint16) []float32 {
	count := len(vertices) / 3
	acc := make([]math.Vec3, count)

	at := func(i uint16) math.Vec3 {
		j := int(i) * 3
		return math.Vec3{X: vertices[j], Y: vertices[j+1], Z: vertices[j+2]}
	}

	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
		if int(i0) >= count || int(i1) >= count || int(i2) >= count {
			continue
		}
		p0, p1, p2 := at(i0), at(i1), at(i2)

		v1 := p2.Sub(p1)
		v2 := p0.Sub(p1)
		face := v1.Cross(v2)

		acc[i0] = acc[i0].Add(face)
		acc[i1] = acc[i1].Add(face)
		acc[i2] = acc[i2].Add(face)
	}

	normals := make([]float32, count*3)
	for i, n := range acc {
		l := n.Length()
		if l == 0 {
			n, l = fallbackNormal, 1
		}
		normals[i*3] = n.X / l
		normals[i*3+1] = n.Y / l
		normals[i*3+2] = n.Z / l
	}
	return normals
}
