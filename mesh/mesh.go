// Package mesh holds the static triangle lists drawn by the demos.
package mesh

import (
	"encoding/binary"
	"errors"
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/mobile/exp/f32"
)

var (
	ErrMismatch           = errors.New("vertex and color counts differ")
	ErrIncompleteTriangle = errors.New("vertex count is not a multiple of three")
)

// Palette used by the meshes.
var (
	Orange = colorful.Color{R: 0.9, G: 0.29, B: 0.15}
	Navy   = colorful.Color{R: 0.07, G: 0.16, B: 0.29}
	Lime   = colorful.Color{R: 0.69, G: 0.98, B: 0.01}
)

const (
	// CoordsPerVertex is the attribute size of a vertex position.
	CoordsPerVertex = 3
	// CoordsPerColor is the attribute size of a vertex color.
	CoordsPerColor = 4
)

// Mesh is a triangle list where every three consecutive vertices form one
// triangle.  Colors is parallel to Vertices.
type Mesh struct {
	Name     string
	Vertices []f32.Vec3
	Colors   []f32.Vec4
}

// Len returns the number of vertices in m.
func (m *Mesh) Len() int {
	return len(m.Vertices)
}

// Validate checks that m can be drawn as a triangle list.
func (m *Mesh) Validate() error {
	if len(m.Vertices) != len(m.Colors) {
		return fmt.Errorf("mesh %q: %w (%d vertices, %d colors)", m.Name, ErrMismatch, len(m.Vertices), len(m.Colors))
	}
	if len(m.Vertices)%3 != 0 {
		return fmt.Errorf("mesh %q: %w (%d vertices)", m.Name, ErrIncompleteTriangle, len(m.Vertices))
	}
	return nil
}

// BlockI returns a fresh copy of the 114 vertex "I" logo.  The block is
// orange and the outline navy.
func BlockI() *Mesh {
	colors := make([]f32.Vec4, 0, blockIVertexCount)
	colors = appendFill(colors, RGBA(Orange, 1), blockIFillCount)
	colors = appendFill(colors, RGBA(Navy, 1), blockIVertexCount-blockIFillCount)
	return &Mesh{
		Name:     "blockI",
		Vertices: vec3s(blockIVertexData),
		Colors:   colors,
	}
}

// Custom returns a fresh copy of the 9 vertex three-spike shape.  Each
// triangle shades from navy at the origin through orange to lime.
func Custom() *Mesh {
	colors := make([]f32.Vec4, 0, customVertexCount)
	for i := 0; i < customVertexCount/3; i++ {
		colors = append(colors, RGBA(Navy, 1), RGBA(Orange, 1), RGBA(Lime, 1))
	}
	return &Mesh{
		Name:     "custom",
		Vertices: vec3s(customVertexData),
		Colors:   colors,
	}
}

// RGBA converts c to the float vector layout of the color attribute.
func RGBA(c colorful.Color, alpha float32) f32.Vec4 {
	return f32.Vec4{float32(c.R), float32(c.G), float32(c.B), alpha}
}

// VertexBytes serializes vs for upload into an array buffer.
func VertexBytes(vs []f32.Vec3) []byte {
	p := make([]float32, 0, CoordsPerVertex*len(vs))
	for i := range vs {
		p = append(p, vs[i][:]...)
	}
	return f32.Bytes(binary.LittleEndian, p...)
}

// ColorBytes serializes cs for upload into an array buffer.
func ColorBytes(cs []f32.Vec4) []byte {
	p := make([]float32, 0, CoordsPerColor*len(cs))
	for i := range cs {
		p = append(p, cs[i][:]...)
	}
	return f32.Bytes(binary.LittleEndian, p...)
}

func appendFill(dst []f32.Vec4, c f32.Vec4, n int) []f32.Vec4 {
	for i := 0; i < n; i++ {
		dst = append(dst, c)
	}
	return dst
}

func vec3s(p []float32) []f32.Vec3 {
	vs := make([]f32.Vec3, len(p)/CoordsPerVertex)
	for i := range vs {
		copy(vs[i][:], p[CoordsPerVertex*i:])
	}
	return vs
}
