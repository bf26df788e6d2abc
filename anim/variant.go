package anim

import (
	"fmt"
	"math"

	"github.com/robhato/CS418-MP1/f32hack"
	"github.com/robhato/CS418-MP1/mesh"
	"golang.org/x/mobile/exp/f32"
)

// Variant selects which shape a frame draws.
type Variant int

const (
	BlockI Variant = iota
	Custom
)

func (v Variant) String() string {
	switch v {
	case BlockI:
		return "blockI"
	case Custom:
		return "custom"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Distortion parametrizes the per-vertex warping applied before upload.
type Distortion struct {
	Time    float64 // seconds since the host started
	Degrees float32
}

// Command is everything the renderer needs to draw one frame.  Rotation and
// scaling live in Transform; Vertices only carry the distortion.
type Command struct {
	Variant  Variant
	Vertices []f32.Vec3
	Colors   []f32.Vec4
	Transform
}

// VertexCount returns the number of vertices to draw.
func (c *Command) VertexCount() int {
	return len(c.Vertices)
}

// distortionPeriod is the length in seconds of the BlockI stretch cycle.
// For the first blockIPhase seconds of each period the shape is stretched
// vertically, afterwards horizontally.
const (
	distortionPeriod = 60
	blockIPhase      = 20
)

// RenderBlockI builds the BlockI command.  Vertices of m are copied, then
// one axis is doubled and the other multiplied by cos(Degrees), depending on
// where d.Time falls in the period.  At exactly blockIPhase nothing changes.
func RenderBlockI(m *mesh.Mesh, t *Transform, d Distortion) Command {
	vs := make([]f32.Vec3, len(m.Vertices))
	copy(vs, m.Vertices)

	phase := math.Mod(d.Time, distortionPeriod)
	cos := f32hack.Cos(f32hack.DegToRad(d.Degrees))
	for i := range vs {
		// BUG: the phase == blockIPhase branch scales X by one and leaves Y
		// alone instead of blending the other two.
		if phase < blockIPhase {
			vs[i][0] *= cos
			vs[i][1] *= 2
		} else if phase > blockIPhase {
			vs[i][0] *= 2
			vs[i][1] *= cos
		} else {
			vs[i][0] *= 1
		}
	}
	return Command{
		Variant:   BlockI,
		Vertices:  vs,
		Colors:    m.Colors,
		Transform: *t,
	}
}

// RenderCustom builds the Custom command.  Every coordinate of every vertex
// of m is multiplied by sin(Degrees), so 0 degrees collapses the shape to the
// origin and negative sines mirror it.
func RenderCustom(m *mesh.Mesh, t *Transform, d Distortion) Command {
	sin := f32hack.Sin(f32hack.DegToRad(d.Degrees))
	vs := make([]f32.Vec3, len(m.Vertices))
	for i, v := range m.Vertices {
		vs[i] = f32.Vec3{v[0] * sin, v[1] * sin, v[2] * sin}
	}
	return Command{
		Variant:   Custom,
		Vertices:  vs,
		Colors:    m.Colors,
		Transform: *t,
	}
}
