package anim

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/robhato/CS418-MP1/mesh"
)

// Animator owns the timeline and the two meshes and produces one Command per
// frame.  It is not safe for concurrent use; the host calls Frame from its
// paint loop.
type Animator struct {
	log    *log.Logger
	state  *State
	blockI *mesh.Mesh
	custom *mesh.Mesh

	last    Variant
	started bool
}

// New returns an Animator at angle zero.  A nil logger uses log.Default.
func New(logger *log.Logger) *Animator {
	if logger == nil {
		logger = log.Default()
	}
	return &Animator{
		log:    logger,
		state:  NewState(),
		blockI: mesh.BlockI(),
		custom: mesh.Custom(),
	}
}

// Frame advances the timeline to now using c and returns the command for the
// selected variant.  The matrices are recomputed before the command is built
// so the returned Transform always matches the new angle.
func (a *Animator) Frame(now time.Duration, c Controls) Command {
	a.state.Advance(now, c.Speed)
	a.state.Update(c.Scale)

	d := Distortion{Time: a.state.Previous, Degrees: c.Degrees}
	v := c.Variant()
	if !a.started || v != a.last {
		a.log.Debug("variant", "variant", v, "angle", a.state.Angle)
		a.last = v
		a.started = true
	}
	switch v {
	case Custom:
		return RenderCustom(a.custom, &a.state.Transform, d)
	default:
		return RenderBlockI(a.blockI, &a.state.Transform, d)
	}
}

// State returns a copy of the current timeline.
func (a *Animator) State() State {
	return *a.state
}

// Reset puts the timeline back at angle zero, time zero.
func (a *Animator) Reset() {
	a.state = NewState()
	a.started = false
}
