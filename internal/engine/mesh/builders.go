package mesh

import (
	"github.com/chewxy/math32"
)

// Floor builds a wireframe grid on the XZ plane spanning [-dimension, dimension].
// spacing controls density: the grid has 2*dimension/spacing cells per side,
// i.e. that many plus one lines parallel to each axis.
func Floor(dimension, spacing float32) *Object {
	lines := 1
	if spacing > 0 {
		if n := int(2 * dimension / spacing); n > 1 {
			lines = n
		}
	}
	inc := 2 * dimension / float32(lines)

	n := lines + 1
	vertices := make([]float32, 12*n)
	indices := make([]uint16, 4*n)

	// First half: lines parallel to X; second half: lines parallel to Z.
	zHalf := 6 * n
	for l := 0; l < n; l++ {
		offset := -dimension + float32(l)*inc

		copy(vertices[6*l:], []float32{
			-dimension, 0, offset,
			dimension, 0, offset,
		})
		copy(vertices[zHalf+6*l:], []float32{
			offset, 0, -dimension,
			offset, 0, dimension,
		})

		indices[2*l] = uint16(2 * l)
		indices[2*l+1] = uint16(2*l + 1)
		indices[2*n+2*l] = uint16(2*n + 2*l)
		indices[2*n+2*l+1] = uint16(2*n + 2*l + 1)
	}

	mat := DefaultMaterial()
	return &Object{
		Name:      "floor",
		Vertices:  vertices,
		Indices:   indices,
		Material:  &mat,
		Wireframe: true,
	}
}

// Axis builds three wireframe axis lines through the origin. The Y axis is
// half as long as X and Z.
func Axis(dimension float32) *Object {
	mat := DefaultMaterial()
	return &Object{
		Name: "axis",
		Vertices: []float32{
			-dimension, 0, 0,
			dimension, 0, 0,
			0, -dimension / 2, 0,
			0, dimension / 2, 0,
			0, 0, -dimension,
			0, 0, dimension,
		},
		Indices:   []uint16{0, 1, 2, 3, 4, 5},
		Material:  &mat,
		Wireframe: true,
	}
}

// Data is an externally loaded mesh payload.
type Data struct {
	Vertices []float32 `json:"vertices" yaml:"vertices"`
	Indices  []uint16  `json:"indices" yaml:"indices"`
	Diffuse  []float32 `json:"diffuse,omitempty" yaml:"diffuse,omitempty"`
	Colors   []float32 `json:"scalars,omitempty" yaml:"scalars,omitempty"`
}

// FromData builds a solid object from a loaded payload. A 4-component
// Diffuse overrides the default material colour.
func FromData(name string, d Data) (*Object, error) {
	mat := DefaultMaterial()
	if len(d.Diffuse) == 4 {
		copy(mat.Diffuse[:], d.Diffuse)
	}
	o := &Object{
		Name:     name,
		Vertices: d.Vertices,
		Indices:  d.Indices,
		Colors:   d.Colors,
		Material: &mat,
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// Sphere builds a UV sphere centred on the origin. Pole rows emit only the
// non-degenerate triangle of each quad.
func Sphere(radius float32, rings, segments int) *Object {
	if rings < 2 {
		rings = 2
	}
	if segments < 3 {
		segments = 3
	}

	stride := segments + 1
	vertices := make([]float32, 0, (rings+1)*stride*3)
	for r := 0; r <= rings; r++ {
		theta := float32(r) * math32.Pi / float32(rings)
		sinT, cosT := math32.Sincos(theta)
		for s := 0; s <= segments; s++ {
			phi := float32(s) * 2 * math32.Pi / float32(segments)
			sinP, cosP := math32.Sincos(phi)
			vertices = append(vertices,
				radius*sinT*cosP,
				radius*cosT,
				radius*sinT*sinP,
			)
		}
	}

	indices := make([]uint16, 0, rings*segments*6)
	for r := 0; r < rings; r++ {
		for s := 0; s < segments; s++ {
			a := uint16(r*stride + s)
			b := a + uint16(stride)
			if r != 0 {
				indices = append(indices, a, a+1, b)
			}
			if r != rings-1 {
				indices = append(indices, a+1, b+1, b)
			}
		}
	}

	mat := DefaultMaterial()
	return &Object{
		Name:     "sphere",
		Vertices: vertices,
		Indices:  indices,
		Material: &mat,
	}
}

// Cone builds a closed cone with its base on y=0 and apex at y=height.
func Cone(radius, height float32, segments int) *Object {
	if segments < 3 {
		segments = 3
	}

	const apex, center = 0, 1
	vertices := []float32{
		0, height, 0,
		0, 0, 0,
	}
	for s := 0; s < segments; s++ {
		phi := float32(s) * 2 * math32.Pi / float32(segments)
		sinP, cosP := math32.Sincos(phi)
		vertices = append(vertices, radius*sinP, 0, radius*cosP)
	}

	indices := make([]uint16, 0, segments*6)
	for s := 0; s < segments; s++ {
		cur := uint16(2 + s)
		next := uint16(2 + (s+1)%segments)
		indices = append(indices,
			cur, next, apex,
			center, next, cur,
		)
	}

	mat := DefaultMaterial()
	return &Object{
		Name:     "cone",
		Vertices: vertices,
		Indices:  indices,
		Material: &mat,
	}
}

// Square builds an untextured square of half-size half on the z=0 plane,
// facing +Z. It has no material.
func Square(half float32) *Object {
	return &Object{
		Name: "square",
		Vertices: []float32{
			-half, half, 0,
			-half, -half, 0,
			half, -half, 0,
			half, half, 0,
		},
		Indices: []uint16{0, 1, 2, 0, 2, 3},
	}
}
