package viewer

import (
	"errors"
	"fmt"
	"time"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/objviewer/internal/engine/framebuffer"
	"github.com/Faultbox/objviewer/internal/engine/renderer"
	"github.com/Faultbox/objviewer/internal/engine/ui"
	"github.com/Faultbox/objviewer/pkg/math"
)

// RunGUI shows the model behind the ImGui overlay. The scene is rendered
// into an offscreen framebuffer and drawn as the background image.
func (v *Viewer) RunGUI() error {
	b, err := ui.NewBackend(v.Title(), v.cfg.Window.Width, v.cfg.Window.Height, v.display.ClearColor)
	if err != nil {
		return fmt.Errorf("failed to create ui backend: %w", err)
	}

	r, err := renderer.New(v.cfg.Window.Width, v.cfg.Window.Height)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	if err := v.upload(r); err != nil {
		r.Close()
		return err
	}

	fb, err := framebuffer.New(int32(v.cfg.Window.Width), int32(v.cfg.Window.Height))
	if err != nil {
		r.Close()
		return err
	}

	// GL resources go before the backend destroys the context
	b.OnClose(func() {
		fb.Destroy()
		r.Close()
	})

	overlay := ui.NewOverlay(v.display, v.camera.Position.Array())

	// File dialog results, consumed on the render thread
	opened := make(chan string, 1)
	status := ""

	v.log.Info("starting render loop")
	b.Run(func() {
		select {
		case path := <-opened:
			status = v.open(path, r)
			overlay.Camera = v.camera.Position.Array()
			b.SetWindowTitle(v.Title())
		default:
		}

		width, height := fb.Size()
		restore := fb.BindWithViewport()
		r.Draw(v.camera.WithViewport(int(width), int(height)), v.display)
		restore()

		// Applied next frame so the texture is never resized mid-draw
		fb.Resize(ui.SceneBackground(fb.ColorTexture()))

		actions := overlay.Draw(v.info(status))
		v.display = overlay.Display

		if actions.CameraMoved {
			p := overlay.Camera
			v.camera = v.camera.WithPosition(math.Vec3{X: p[0], Y: p[1], Z: p[2]})
		}
		if actions.Fit {
			v.fitCamera()
			overlay.Camera = v.camera.Position.Array()
		}
		if actions.Screenshot {
			status = v.capture(fb.ReadPixels(), int(width), int(height))
		}
		if actions.Open {
			go chooseFile(opened, v.log)
		}
		if actions.SaveSettings {
			status = v.saveSettings()
		}
		if actions.Quit {
			b.Close()
		}

		v.tickFPS(time.Now())
	})

	v.log.Info("render loop finished")
	return nil
}

// open loads path as the current model. On failure the previous model stays.
func (v *Viewer) open(path string, r *renderer.Renderer) string {
	m, err := LoadModel(path, v.log)
	if err != nil {
		v.log.Error("failed to open model", zap.Error(err))
		return err.Error()
	}

	prev := v.model
	v.model = m
	if err := v.upload(r); err != nil {
		v.model = prev
		v.log.Error("failed to upload model", zap.Error(err))
		return err.Error()
	}
	v.fitCamera()
	return "Opened " + m.Name()
}

// info collects the Information window contents.
func (v *Viewer) info(status string) ui.Info {
	info := ui.Info{
		Version: "OBJ Viewer v" + Version,
		Status:  status,
	}
	if v.model != nil {
		stats := v.model.OBJ.Stats()
		info.Model = v.model.Name()
		info.Triangles = stats.Triangles
		info.Skipped = stats.SkippedFaces
	}
	return info
}

// chooseFile runs the native file dialog off the render thread.
func chooseFile(opened chan<- string, log *zap.Logger) {
	path, err := dialog.File().
		Filter("Wavefront OBJ", "obj").
		Filter("All Files", "*").
		Title("Open OBJ").
		Load()
	if err != nil {
		if !errors.Is(err, dialog.ErrCancelled) {
			log.Warn("file dialog failed", zap.Error(err))
		}
		return
	}

	select {
	case opened <- path:
	default:
		log.Debug("file dialog result dropped, another is pending", zap.String("path", path))
	}
}
