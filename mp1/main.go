//go:build darwin || linux || windows
// +build darwin linux windows

// Command mp1 draws either the "I" logo, stretched along one axis in a
// 60 second cycle, or a three spike shape that grows and mirrors with the
// sine of the degrees control.  Both rotate at the speed control's rate.
//
// Controls are read from the file named by $MP1_CONTROLS, reloaded whenever
// it changes, or from a bundled controls.toml asset.  Tapping the screen
// switches between the two shapes.
//
//   $ MP1_CONTROLS=controls.toml go run ./mp1
//
// Build an APK with gomobile:
//
//   $ gomobile build github.com/robhato/CS418-MP1/mp1
package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/robhato/CS418-MP1/anim"
	"github.com/robhato/CS418-MP1/controls"
	"github.com/robhato/CS418-MP1/logging"
	"github.com/robhato/CS418-MP1/render"

	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
	"golang.org/x/mobile/exp/app/debug"
	"golang.org/x/mobile/exp/gl/glutil"
	"golang.org/x/mobile/gl"
)

// ControlsEnv names the environment variable with the path of a controls
// file to watch.
const ControlsEnv = "MP1_CONTROLS"

type demo struct {
	log      *log.Logger
	start    time.Time
	controls *controls.Store
	animator *anim.Animator
	watcher  *controls.Watcher

	renderer *render.Renderer
	images   *glutil.Images
	fps      *debug.FPS
}

func main() {
	logger := logging.Logger()
	d := &demo{
		log:      logger,
		start:    time.Now(),
		controls: controls.NewStore(controls.Defaults),
		animator: anim.New(logger),
	}

	if path := os.Getenv(ControlsEnv); path != "" {
		w, err := controls.Watch(path, d.controls, logger)
		if err != nil {
			logger.Error("watching controls", "path", path, "err", err)
		}
		d.watcher = w
	} else if c, err := controls.LoadAsset("controls.toml"); err == nil {
		d.controls.Set(c)
	} else {
		logger.Debug("using default controls", "err", err)
	}

	app.Main(func(a app.App) {
		var glctx gl.Context
		var sz size.Event
		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				// app.Main may exit the process without returning, so
				// nothing deferred in main would run.
				if e.Crosses(lifecycle.StageAlive) == lifecycle.CrossOff {
					d.onDead()
				}
				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					glctx, _ = e.DrawContext.(gl.Context)
					if glctx == nil {
						logger.Error("no GL context, nothing will be drawn")
						continue
					}
					d.onStart(glctx)
					a.Send(paint.Event{})
				case lifecycle.CrossOff:
					d.onStop()
					glctx = nil
				}
			case size.Event:
				sz = e
			case paint.Event:
				if glctx == nil || e.External {
					// As we are actively painting as fast as
					// we can (usually 60 FPS), skip any paint
					// events sent by the system.
					continue
				}

				d.onPaint(sz)
				a.Publish()
				// Drive the animation by preparing to paint the next frame
				// after this one is shown.
				a.Send(paint.Event{})
			case touch.Event:
				if e.Type == touch.TypeEnd {
					on := d.controls.ToggleAnimation()
					logger.Info("animation toggled", "animationA", on)
				}
			}
		}
	})
}

func (d *demo) onStart(glctx gl.Context) {
	src, err := render.LoadSources("shader.vert", "shader.frag")
	if err != nil {
		d.log.Debug("using built-in shaders", "err", err)
		src = render.DefaultSources
	}
	program, err := render.CreateProgram(glctx, src)
	if err != nil {
		d.log.Error("error creating GL program", "err", err)
		return
	}
	d.renderer = render.New(glctx, program)

	d.images = glutil.NewImages(glctx)
	d.fps = debug.NewFPS(d.images)
}

func (d *demo) onStop() {
	if d.renderer != nil {
		d.renderer.Release()
		d.renderer = nil
	}
	if d.fps != nil {
		d.fps.Release()
		d.images.Release()
		d.fps, d.images = nil, nil
	}
}

func (d *demo) onDead() {
	if d.watcher == nil {
		return
	}
	if err := d.watcher.Close(); err != nil {
		d.log.Warn("closing controls watcher", "err", err)
	}
	d.watcher = nil
}

func (d *demo) onPaint(sz size.Event) {
	if d.renderer == nil {
		// the program failed to build; drawing with it would be undefined
		return
	}
	cmd := d.animator.Frame(time.Since(d.start), d.controls.Controls())
	d.renderer.Render(sz, &cmd)
	d.fps.Draw(sz)
}
