package main

import (
	"sync"

	"github.com/gogpu/mandelview"
	"github.com/gogpu/mandelview/camera"
	"github.com/gogpu/mandelview/render"
	"github.com/gogpu/mandelview/surface"
)

// viewer connects the camera to the renderer. It implements
// window.Controller.
type viewer struct {
	r *render.Renderer

	mu  sync.Mutex
	cam *camera.Camera
	gen uint64
}

func newViewer(r *render.Renderer, cam *camera.Camera) *viewer {
	return &viewer{r: r, cam: cam}
}

// refresh enqueues the current camera view.
func (v *viewer) refresh() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.refreshLocked()
}

func (v *viewer) refreshLocked() error {
	gen, err := v.r.SetViewport(v.cam.Snapshot())
	if err != nil {
		return err
	}
	v.gen = gen
	return nil
}

// Command applies cmd and re-renders if the view moved.
func (v *viewer) Command(cmd camera.Command) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.cam.Apply(cmd) {
		return
	}
	if err := v.refreshLocked(); err != nil {
		mandelview.Logger().Warn("viewer: viewport not applied", "command", cmd, "err", err)
		return
	}
	mandelview.Logger().Debug("viewer: moved", "command", cmd, "viewport", v.cam.Snapshot(), "generation", v.gen)
}

// Status returns HUD lines for the current view.
func (v *viewer) Status() []string {
	v.mu.Lock()
	vp := v.cam.Snapshot()
	v.mu.Unlock()

	st := v.r.Stats()
	return surface.FormatStatus(vp, st.Generation, st.Completed)
}

// generation returns the generation of the last applied view.
func (v *viewer) generation() uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.gen
}
