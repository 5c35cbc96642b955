package viewer

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/objviewer/internal/engine/input"
	"github.com/Faultbox/objviewer/internal/engine/renderer"
	"github.com/Faultbox/objviewer/internal/engine/window"
)

// RunPlain shows the model in a bare SDL window without the overlay.
// ESC or closing the window quits; F fits the camera to the model.
func (v *Viewer) RunPlain() error {
	win, err := window.New(window.Config{
		Title:      v.Title(),
		Width:      v.cfg.Window.Width,
		Height:     v.cfg.Window.Height,
		Fullscreen: v.cfg.Window.Fullscreen,
		VSync:      v.cfg.Window.VSync,
	})
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer win.Close()

	// Renderer after window, the GL context must exist
	width, height := win.Size()
	r, err := renderer.New(width, height)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	defer r.Close()

	if err := v.upload(r); err != nil {
		return err
	}
	v.camera = v.camera.WithViewport(width, height)

	in := input.New()
	v.log.Info("starting render loop")

	for {
		if in.Update() {
			break
		}
		if w, h, ok := in.Resized(); ok {
			r.Resize(w, h)
			v.camera = v.camera.WithViewport(w, h)
		}
		if in.IsKeyPressed(sdl.SCANCODE_F) {
			v.fitCamera()
		}

		r.Draw(v.camera, v.display)
		win.SwapBuffers()

		if v.tickFPS(time.Now()) {
			win.SetTitle(fmt.Sprintf("%s (%.0f FPS)", v.Title(), v.fps.FPS()))
		}
	}

	v.log.Info("render loop finished")
	return nil
}
