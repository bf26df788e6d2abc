//go:build darwin || linux || windows
// +build darwin linux windows

// Command dancingi draws the "I" logo spinning about the screen center.  The
// speed and scale controls come from the file named by $DANCINGI_CONTROLS,
// reloaded whenever it changes, or from a bundled controls.toml asset.
//
//   $ DANCINGI_CONTROLS=controls.toml go run ./dancingi
package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/robhato/CS418-MP1/anim"
	"github.com/robhato/CS418-MP1/controls"
	"github.com/robhato/CS418-MP1/logging"
	"github.com/robhato/CS418-MP1/mesh"
	"github.com/robhato/CS418-MP1/render"

	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/exp/app/debug"
	"golang.org/x/mobile/exp/gl/glutil"
	"golang.org/x/mobile/gl"
)

// ControlsEnv names the environment variable with the path of a controls
// file to watch.
const ControlsEnv = "DANCINGI_CONTROLS"

var (
	logger   *log.Logger
	start    time.Time
	settings *controls.Store
	state    *anim.State
	watcher  *controls.Watcher

	renderer *render.Renderer
	images   *glutil.Images
	fps      *debug.FPS
)

func main() {
	logger = logging.Logger()
	start = time.Now()
	settings = controls.NewStore(controls.Defaults)
	state = anim.NewState()

	if path := os.Getenv(ControlsEnv); path != "" {
		w, err := controls.Watch(path, settings, logger)
		if err != nil {
			logger.Error("watching controls", "path", path, "err", err)
		}
		watcher = w
	} else if c, err := controls.LoadAsset("controls.toml"); err == nil {
		settings.Set(c)
	}

	app.Main(func(a app.App) {
		var glctx gl.Context
		var sz size.Event
		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				if e.Crosses(lifecycle.StageAlive) == lifecycle.CrossOff {
					onDead()
				}
				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					glctx, _ = e.DrawContext.(gl.Context)
					if glctx == nil {
						logger.Error("no GL context, nothing will be drawn")
						continue
					}
					onStart(glctx)
					a.Send(paint.Event{})
				case lifecycle.CrossOff:
					onStop()
					glctx = nil
				}
			case size.Event:
				sz = e
			case paint.Event:
				if glctx == nil || e.External {
					continue
				}

				onPaint(sz)
				a.Publish()
				a.Send(paint.Event{})
			}
		}
	})
}

func onStart(glctx gl.Context) {
	program, err := render.CreateProgram(glctx, render.DefaultSources)
	if err != nil {
		logger.Error("error creating GL program", "err", err)
		return
	}
	renderer = render.New(glctx, program)

	// The logo never changes shape so it is uploaded once.
	m := mesh.BlockI()
	renderer.Upload(m.Vertices, m.Colors, gl.STATIC_DRAW)

	images = glutil.NewImages(glctx)
	fps = debug.NewFPS(images)
}

func onStop() {
	if renderer == nil {
		return
	}
	renderer.Release()
	fps.Release()
	images.Release()
	renderer, fps, images = nil, nil, nil
}

func onDead() {
	if watcher == nil {
		return
	}
	if err := watcher.Close(); err != nil {
		logger.Warn("closing controls watcher", "err", err)
	}
	watcher = nil
}

func onPaint(sz size.Event) {
	if renderer == nil {
		return
	}
	c := settings.Controls()
	state.Advance(time.Since(start), c.Speed)
	state.Update(c.Scale)
	renderer.Draw(sz, &state.Transform)
	fps.Draw(sz)
}
