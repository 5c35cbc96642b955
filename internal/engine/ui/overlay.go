package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/objviewer/internal/engine/renderer"
)

// CameraRange bounds the camera position sliders on every axis.
const CameraRange = 5.0

// Info is the read-only data shown in the Information window.
type Info struct {
	Version   string
	Model     string // Base name of the loaded file, empty if none
	Triangles int
	Skipped   int
	Status    string // Last screenshot path or error
}

// Actions reports what the user asked for this frame.
type Actions struct {
	Open         bool
	SaveSettings bool
	Quit         bool
	Screenshot   bool
	Fit          bool
	CameraMoved  bool
	DisplayDirty bool
}

// Overlay draws the main menu and the Information window.
type Overlay struct {
	Display renderer.Display
	Camera  [3]float32
}

// NewOverlay creates an overlay with the given initial state.
func NewOverlay(d renderer.Display, camera [3]float32) *Overlay {
	return &Overlay{Display: d, Camera: clampCamera(camera)}
}

// Draw renders the overlay and returns the requested actions.
func (o *Overlay) Draw(info Info) Actions {
	var a Actions

	if imgui.BeginMainMenuBar() {
		if imgui.BeginMenu("File") {
			if imgui.MenuItemBool("Open OBJ...") {
				a.Open = true
			}
			if imgui.MenuItemBool("Save Settings") {
				a.SaveSettings = true
			}
			imgui.Separator()
			if imgui.MenuItemBool("Quit") {
				a.Quit = true
			}
			imgui.EndMenu()
		}
		imgui.EndMainMenuBar()
	}

	x, y, _, _ := Viewport()
	imgui.SetNextWindowPosV(imgui.NewVec2(x+10, y+10), imgui.CondFirstUseEver, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 0), imgui.CondFirstUseEver)

	if imgui.BeginV("Information", nil, imgui.WindowFlagsAlwaysAutoResize) {
		io := imgui.CurrentIO()
		size := io.DisplaySize()
		mouse := imgui.MousePos()

		imgui.Text(info.Version)
		imgui.Text(fmt.Sprintf("FPS: %.1f", io.Framerate()))
		imgui.Text(fmt.Sprintf("Display: %.0f x %.0f", size.X, size.Y))
		imgui.Text(fmt.Sprintf("Mouse: %.0f, %.0f", mouse.X, mouse.Y))
		imgui.Text(modelLine(info))

		imgui.Separator()
		a.DisplayDirty = o.drawToggles()

		imgui.Separator()
		imgui.Text("Camera")
		for i, label := range []string{"X", "Y", "Z"} {
			if imgui.SliderFloatV(label, &o.Camera[i], -CameraRange, CameraRange, "%.2f", imgui.SliderFlagsNone) {
				a.CameraMoved = true
			}
		}
		o.Camera = clampCamera(o.Camera)

		imgui.Separator()
		if imgui.Button("Screenshot") {
			a.Screenshot = true
		}
		imgui.SameLine()
		if imgui.Button("Fit to Model") {
			a.Fit = true
		}
		if info.Status != "" {
			imgui.TextWrapped(info.Status)
		}
	}
	imgui.End()

	return a
}

func (o *Overlay) drawToggles() bool {
	changed := false
	for _, t := range []struct {
		label string
		value *bool
	}{
		{"Depth test", &o.Display.DepthTest},
		{"Blend", &o.Display.Blend},
		{"Wireframe", &o.Display.Wireframe},
		{"Culling", &o.Display.Culling},
		{"Bounds", &o.Display.Bounds},
	} {
		if imgui.Checkbox(t.label, t.value) {
			changed = true
		}
	}
	return changed
}

// modelLine summarizes the loaded model for the Information window.
func modelLine(info Info) string {
	if info.Model == "" {
		return "No model loaded"
	}
	if info.Skipped > 0 {
		return fmt.Sprintf("%s: %d triangles (%d faces skipped)", info.Model, info.Triangles, info.Skipped)
	}
	return fmt.Sprintf("%s: %d triangles", info.Model, info.Triangles)
}

// clampCamera keeps every component inside the slider range.
func clampCamera(p [3]float32) [3]float32 {
	for i := range p {
		p[i] = min(max(p[i], -CameraRange), CameraRange)
	}
	return p
}
