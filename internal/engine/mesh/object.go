// Package mesh provides the drawable scene objects (floor, axis, loaded
// meshes, procedural primitives) and per-vertex normal calculation.
package mesh

import (
	"errors"
	"fmt"
)

// ErrIndexRange is returned by Validate when an index points past the vertex data.
var ErrIndexRange = errors.New("index out of range")

// Material holds the lighting colours of an object.
type Material struct {
	Diffuse  RGBA
	Ambient  RGBA
	Specular RGBA
}

// DefaultMaterial returns white diffuse/specular with a dim ambient term.
func DefaultMaterial() Material {
	return Material{
		Diffuse:  RGBA{1, 1, 1, 1},
		Ambient:  RGBA{0.2, 0.2, 0.2, 1},
		Specular: RGBA{1, 1, 1, 1},
	}
}

// Handles are the GPU object names owned by one Object.
// Zero values mean "not uploaded".
type Handles struct {
	VAO      uint32
	Position uint32
	Normal   uint32
	Color    uint32
	Index    uint32
}

// Valid reports whether the object has been uploaded.
func (h Handles) Valid() bool {
	return h.VAO != 0 && h.Index != 0
}

// Object is a drawable mesh. Vertices and Indices are required; Colors and
// Material are optional capabilities checked at upload/draw time.
type Object struct {
	Name string

	// Vertices is a flat x,y,z list.
	Vertices []float32
	// Indices are triangles, or line pairs when Wireframe is set.
	Indices []uint16

	// Colors is an optional per-vertex r,g,b,a list.
	Colors []float32
	// Material is optional; objects without one keep the shader defaults.
	Material *Material

	Wireframe bool

	Handles Handles
}

// VertexCount returns the number of vertices.
func (o *Object) VertexCount() int {
	return len(o.Vertices) / 3
}

// HasColors reports whether the object carries per-vertex colours.
func (o *Object) HasColors() bool {
	return len(o.Colors) > 0
}

// Built reports whether geometry has been populated.
func (o *Object) Built() bool {
	return len(o.Vertices) > 0 && len(o.Indices) > 0
}

// Validate checks the vertex/index/colour layout.
func (o *Object) Validate() error {
	if len(o.Vertices)%3 != 0 {
		return fmt.Errorf("%s: vertex data length %d is not a multiple of 3", o.Name, len(o.Vertices))
	}
	count := o.VertexCount()
	for i, idx := range o.Indices {
		if int(idx) >= count {
			return fmt.Errorf("%s: index %d (#%d) >= vertex count %d: %w", o.Name, idx, i, count, ErrIndexRange)
		}
	}
	if o.HasColors() && len(o.Colors) != count*4 {
		return fmt.Errorf("%s: color data length %d, want %d", o.Name, len(o.Colors), count*4)
	}
	return nil
}
