// Package viewer wires the OBJ loader to the window, renderer and overlay.
package viewer

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/objviewer/internal/config"
	"github.com/Faultbox/objviewer/internal/engine/camera"
	"github.com/Faultbox/objviewer/internal/engine/debug"
	"github.com/Faultbox/objviewer/internal/engine/renderer"
	"github.com/Faultbox/objviewer/internal/logger"
)

// Version is shown in the window title and the Information window.
const Version = "0.1.0"

// Viewer holds the state shared by both front ends.
type Viewer struct {
	cfg         *config.Config
	log         *zap.Logger
	model       *Model
	camera      camera.Camera
	display     renderer.Display
	screenshots *debug.ScreenshotCapture
	fps         FPSCounter
}

// New creates a viewer and loads the configured model, if any.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		cfg:         cfg,
		log:         logger.Named("viewer"),
		camera:      CameraFromConfig(cfg.Camera),
		display:     DisplayFromConfig(cfg.Display),
		screenshots: debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "objviewer"),
	}

	if cfg.Model.Path != "" {
		m, err := LoadModel(cfg.Model.Path, v.log)
		if err != nil {
			return nil, err
		}
		v.model = m
	}
	return v, nil
}

// Run starts the front end selected by the configuration.
func (v *Viewer) Run() error {
	if v.cfg.Window.GUI {
		return v.RunGUI()
	}
	if v.model == nil {
		return fmt.Errorf("no model given; pass a file or use the GUI front end")
	}
	return v.RunPlain()
}

// Title returns the window title for the current model.
func (v *Viewer) Title() string {
	if v.model == nil {
		return v.cfg.Window.Title
	}
	return fmt.Sprintf("%s - %s", v.cfg.Window.Title, v.model.Name())
}

// CameraFromConfig builds the initial camera.
func CameraFromConfig(c config.CameraConfig) camera.Camera {
	return camera.New(c.Position, c.Target, c.Up, c.FOV, c.Near, c.Far)
}

// DisplayFromConfig builds the initial render toggles.
func DisplayFromConfig(d config.DisplayConfig) renderer.Display {
	return renderer.Display{
		DepthTest:  d.DepthTest,
		Blend:      d.Blend,
		Wireframe:  d.Wireframe,
		Culling:    d.Culling,
		Bounds:     d.Bounds,
		ClearColor: d.ClearColor,
	}
}

// upload sends the current model to r.
func (v *Viewer) upload(r *renderer.Renderer) error {
	if v.model == nil {
		return nil
	}
	if err := r.Upload(v.model.Mesh); err != nil {
		return fmt.Errorf("uploading %s: %w", v.model.Path, err)
	}
	r.SetBounds(v.model.Min, v.model.Max)
	return nil
}

// fitCamera points the camera at the model.
func (v *Viewer) fitCamera() {
	if v.model != nil {
		v.camera = v.camera.Fit(v.model.Min, v.model.Max)
	}
}

// tickFPS advances the counter and logs each new average.
func (v *Viewer) tickFPS(now time.Time) bool {
	if !v.fps.Tick(now) {
		return false
	}
	v.log.Debug("fps", zap.Float64("fps", v.fps.FPS()))
	return true
}

// saveSettings stores the current toggles and camera in the config file
// the viewer was started with, or the user config directory.
func (v *Viewer) saveSettings() string {
	v.cfg.Display.DepthTest = v.display.DepthTest
	v.cfg.Display.Blend = v.display.Blend
	v.cfg.Display.Wireframe = v.display.Wireframe
	v.cfg.Display.Culling = v.display.Culling
	v.cfg.Display.Bounds = v.display.Bounds
	v.cfg.Camera.Position = v.camera.Position.Array()
	v.cfg.Camera.Target = v.camera.Target.Array()
	v.cfg.Camera.Far = v.camera.Far

	var err error
	if path := config.ConfigPath(); path != "" {
		err = v.cfg.SaveTo(path)
	} else {
		err = v.cfg.Save()
	}
	if err != nil {
		v.log.Error("failed to save settings", zap.Error(err))
		return "Save failed: " + err.Error()
	}
	v.log.Info("settings saved")
	return "Settings saved"
}

// capture writes a screenshot and returns a status line for the overlay.
func (v *Viewer) capture(pixels []byte, width, height int) string {
	path, err := v.screenshots.CaptureFromPixels(pixels, width, height)
	if err != nil {
		v.log.Error("screenshot failed", zap.Error(err))
		return "Screenshot failed: " + err.Error()
	}
	v.log.Info("screenshot saved", zap.String("path", path))
	return "Saved " + path
}
