// Package render draws a colored triangle list with the rotation and scale
// matrices of an anim.Transform.
package render

import (
	"github.com/robhato/CS418-MP1/anim"
	"github.com/robhato/CS418-MP1/f32hack"
	"github.com/robhato/CS418-MP1/mesh"

	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/exp/f32"
	"golang.org/x/mobile/gl"
)

// Renderer owns the program inputs and the two array buffers of one shape.
// All methods must be called on the goroutine owning the GL context.
type Renderer struct {
	glctx   gl.Context
	program gl.Program

	position gl.Attrib
	color    gl.Attrib
	rotation gl.Uniform
	scale    gl.Uniform

	bufVertex gl.Buffer
	bufColor  gl.Buffer
	count     int

	mvRotation [16]float32
	mvScale    [16]float32

	// ClearColor is painted behind the shape every frame.
	ClearColor f32.Vec4
}

// New looks up the shader inputs of program and creates the vertex and color
// buffers.  The Renderer takes ownership of program.
func New(glctx gl.Context, program gl.Program) *Renderer {
	r := &Renderer{
		glctx:      glctx,
		program:    program,
		ClearColor: f32.Vec4{0, 0, 0, 1},
	}
	r.position = glctx.GetAttribLocation(program, attribPosition)
	r.color = glctx.GetAttribLocation(program, attribColor)
	r.rotation = glctx.GetUniformLocation(program, uniformRotation)
	r.scale = glctx.GetUniformLocation(program, uniformScale)

	r.bufVertex = glctx.CreateBuffer()
	r.bufColor = glctx.CreateBuffer()
	return r
}

// Upload writes vertices and colors into the device buffers.  Usage is a
// hint such as gl.STATIC_DRAW or gl.DYNAMIC_DRAW.
func (r *Renderer) Upload(vertices []f32.Vec3, colors []f32.Vec4, usage gl.Enum) {
	r.glctx.BindBuffer(gl.ARRAY_BUFFER, r.bufVertex)
	r.glctx.BufferData(gl.ARRAY_BUFFER, mesh.VertexBytes(vertices), usage)

	r.glctx.BindBuffer(gl.ARRAY_BUFFER, r.bufColor)
	r.glctx.BufferData(gl.ARRAY_BUFFER, mesh.ColorBytes(colors), usage)

	r.count = len(vertices)
}

// Count returns the number of vertices drawn by Draw.
func (r *Renderer) Count() int {
	return r.count
}

// Draw clears the surface and draws the uploaded triangles with t.
func (r *Renderer) Draw(sz size.Event, t *anim.Transform) {
	glctx := r.glctx
	glctx.Viewport(0, 0, sz.WidthPx, sz.HeightPx)
	glctx.ClearColor(r.ClearColor[0], r.ClearColor[1], r.ClearColor[2], r.ClearColor[3])
	glctx.Clear(gl.COLOR_BUFFER_BIT)

	glctx.UseProgram(r.program)

	glctx.BindBuffer(gl.ARRAY_BUFFER, r.bufVertex)
	glctx.EnableVertexAttribArray(r.position)
	glctx.VertexAttribPointer(r.position, mesh.CoordsPerVertex, gl.FLOAT, false, 0, 0)

	glctx.BindBuffer(gl.ARRAY_BUFFER, r.bufColor)
	glctx.EnableVertexAttribArray(r.color)
	glctx.VertexAttribPointer(r.color, mesh.CoordsPerColor, gl.FLOAT, false, 0, 0)

	f32hack.Serialize4(r.mvRotation[:], &t.Rotation)
	f32hack.Serialize4(r.mvScale[:], &t.Scale)
	glctx.UniformMatrix4fv(r.rotation, r.mvRotation[:])
	glctx.UniformMatrix4fv(r.scale, r.mvScale[:])

	glctx.DrawArrays(gl.TRIANGLES, 0, r.count)

	glctx.DisableVertexAttribArray(r.position)
	glctx.DisableVertexAttribArray(r.color)
}

// Render uploads the geometry of cmd and draws it.  The geometry changes
// with the distortion so it is sent again every frame.
func (r *Renderer) Render(sz size.Event, cmd *anim.Command) {
	r.Upload(cmd.Vertices, cmd.Colors, gl.DYNAMIC_DRAW)
	r.Draw(sz, &cmd.Transform)
}

// Release deletes the buffers and the program.
func (r *Renderer) Release() {
	r.glctx.DeleteBuffer(r.bufVertex)
	r.glctx.DeleteBuffer(r.bufColor)
	r.glctx.DeleteProgram(r.program)
}
