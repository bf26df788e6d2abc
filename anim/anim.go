// Package anim advances the rotation timeline of the demos and turns the
// current controls into a render command for one frame.
package anim

import (
	"time"

	"github.com/robhato/CS418-MP1/f32hack"
	"golang.org/x/mobile/exp/f32"
)

// FullTurn is the angle, in degrees, past which the rotation starts over.
const FullTurn = 360

// Controls are the user adjustable inputs sampled once per frame.  Values
// are used as given.  NaN or infinite values end up in the matrices.
type Controls struct {
	Speed      float32 `toml:"speed" yaml:"speed"`           // degrees per second
	Scale      float32 `toml:"scale" yaml:"scale"`           // uniform XY scale
	Degrees    float32 `toml:"degrees" yaml:"degrees"`       // distortion angle
	AnimationA bool    `toml:"animationA" yaml:"animationA"` // BlockI when set
}

// Variant returns the shape selected by c.
func (c Controls) Variant() Variant {
	if c.AnimationA {
		return BlockI
	}
	return Custom
}

// Transform holds the two model matrices pushed to the vertex shader.
type Transform struct {
	Rotation f32.Mat4
	Scale    f32.Mat4
}

// Step returns angle advanced by speed*dt.  When the result passes a full
// turn it starts over at zero instead of wrapping, so 350+40 gives 0 and not
// 30.  Exactly 360 is kept.
func Step(angle, speed, dt float32) float32 {
	angle += speed * dt
	if angle > FullTurn {
		angle = 0
	}
	return angle
}

// State is the rotation timeline shared by every variant.
type State struct {
	Angle    float32 // degrees
	Previous float64 // seconds, host time of the last frame
	Transform
}

// NewState returns a State at angle zero with identity matrices.
func NewState() *State {
	s := new(State)
	s.Rotation.Identity()
	s.Scale.Identity()
	return s
}

// Advance moves the timeline to now, the time elapsed since the host
// started, and returns the frame delta in seconds.
func (s *State) Advance(now time.Duration, speed float32) float32 {
	t := now.Seconds()
	dt := float32(t - s.Previous)
	s.Previous = t
	s.Angle = Step(s.Angle, speed, dt)
	return dt
}

// Update recomputes both matrices from the current angle and scale.  The
// scale is applied to X and Y only, Z is flattened to zero.
func (s *State) Update(scale float32) {
	f32hack.FromZRotation(&s.Rotation, f32hack.DegToRad(s.Angle))
	f32hack.FromScaling(&s.Scale, &f32.Vec3{scale, scale, 0})
}
