package viewer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/objviewer/internal/config"
	"github.com/Faultbox/objviewer/pkg/formats"
	"github.com/Faultbox/objviewer/pkg/math"
)

const cubeOBJ = `# unit cube, shared vertices
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
v 0 0 1
v 1 0 1
v 1 1 1
v 0 1 1
f 1 2 3 4
f 5 6 7 8
f 1 2 6 5
f 2 3 7 6
f 3 4 8 7
f 4 1 5 8
`

func writeOBJ(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadModel(t *testing.T) {
	path := writeOBJ(t, "cube.obj", cubeOBJ)

	m, err := LoadModel(path, zap.NewNop())
	if err != nil {
		t.Fatalf("LoadModel failed: %v", err)
	}
	if m.Name() != "cube.obj" {
		t.Errorf("Name() = %q, want cube.obj", m.Name())
	}
	if got := m.OBJ.Stats().Triangles; got != 12 {
		t.Errorf("triangles = %d, want 12", got)
	}
	// Shared vertices force the expanded layout
	if !m.Mesh.Expanded {
		t.Error("expected expanded mesh")
	}
	if m.Mesh.VertexCount() != 36 {
		t.Errorf("VertexCount() = %d, want 36", m.Mesh.VertexCount())
	}
	if m.Min.X != 0 || m.Max.Y != 1 || m.Max.Z != 1 {
		t.Errorf("bounds = %v..%v", m.Min, m.Max)
	}
}

func TestLoadModelLogsSkippedFaces(t *testing.T) {
	path := writeOBJ(t, "ngon.obj", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\nf 1 2 3 1 2 3 1\n")

	core, logs := observer.New(zapcore.DebugLevel)
	m, err := LoadModel(path, zap.New(core))
	if err != nil {
		t.Fatalf("LoadModel failed: %v", err)
	}
	if m.OBJ.SkippedFaces != 1 {
		t.Errorf("SkippedFaces = %d, want 1", m.OBJ.SkippedFaces)
	}

	warned := logs.FilterMessage("faces skipped").All()
	if len(warned) != 1 {
		t.Fatalf("expected one skipped-faces warning, got %d", len(warned))
	}
	if got := warned[0].ContextMap()["count"]; got != int64(1) {
		t.Errorf("count field = %v, want 1", got)
	}
	if logs.FilterMessage("model loaded").Len() != 1 {
		t.Error("expected a model loaded entry")
	}
}

func TestLoadModelErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadModel(filepath.Join(t.TempDir(), "nope.obj"), zap.NewNop())
		if !errors.Is(err, formats.ErrOBJFileOpen) {
			t.Errorf("expected ErrOBJFileOpen, got %v", err)
		}
	})

	t.Run("parse error", func(t *testing.T) {
		path := writeOBJ(t, "bad.obj", "v 0 0 0\nv 1 x 0\n")
		_, err := LoadModel(path, zap.NewNop())
		var pe *formats.OBJParseError
		if !errors.As(err, &pe) || pe.Line != 2 {
			t.Errorf("expected parse error on line 2, got %v", err)
		}
	})

	t.Run("out of range index", func(t *testing.T) {
		path := writeOBJ(t, "range.obj", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 9\n")
		_, err := LoadModel(path, zap.NewNop())
		if !errors.Is(err, formats.ErrOBJIndexAlignment) {
			t.Errorf("expected ErrOBJIndexAlignment, got %v", err)
		}
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeOBJ(t, "empty.obj", "# nothing\n")
		if _, err := LoadModel(path, zap.NewNop()); err == nil {
			t.Error("expected error for file without vertices")
		}
	})
}

func TestNew(t *testing.T) {
	cfg := config.Default()
	cfg.Model.Path = writeOBJ(t, "cube.obj", cubeOBJ)

	v, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if v.model == nil {
		t.Fatal("model not loaded")
	}
	if !strings.HasSuffix(v.Title(), " - cube.obj") {
		t.Errorf("Title() = %q", v.Title())
	}

	info := v.info("ready")
	if info.Model != "cube.obj" || info.Triangles != 12 || info.Status != "ready" {
		t.Errorf("info() = %+v", info)
	}
	if !strings.Contains(info.Version, Version) {
		t.Errorf("info().Version = %q", info.Version)
	}
}

func TestNewWithoutModel(t *testing.T) {
	cfg := config.Default()

	v, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if v.Title() != cfg.Window.Title {
		t.Errorf("Title() = %q, want %q", v.Title(), cfg.Window.Title)
	}
	if info := v.info(""); info.Model != "" {
		t.Errorf("info().Model = %q, want empty", info.Model)
	}

	// The plain front end has nothing to show
	cfg.Window.GUI = false
	if err := v.Run(); err == nil {
		t.Error("expected error running plain front end without a model")
	}
}

func TestNewBadModel(t *testing.T) {
	cfg := config.Default()
	cfg.Model.Path = filepath.Join(t.TempDir(), "missing.obj")
	if _, err := New(cfg); err == nil {
		t.Error("expected error for missing model")
	}
}

func TestFitCamera(t *testing.T) {
	cfg := config.Default()
	cfg.Model.Path = writeOBJ(t, "cube.obj", cubeOBJ)
	v, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	before := v.camera
	v.fitCamera()
	if v.camera.Target.X != 0.5 || v.camera.Target.Y != 0.5 || v.camera.Target.Z != 0.5 {
		t.Errorf("fitted target = %v, want cube center", v.camera.Target)
	}
	if before.Target == v.camera.Target {
		t.Error("fitCamera did not change the camera")
	}
}

func TestCapture(t *testing.T) {
	cfg := config.Default()
	cfg.Debug.ScreenshotDir = t.TempDir()
	v, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	status := v.capture(make([]byte, 2*2*4), 2, 2)
	if !strings.HasPrefix(status, "Saved ") {
		t.Errorf("capture() = %q", status)
	}
	if _, err := os.Stat(strings.TrimPrefix(status, "Saved ")); err != nil {
		t.Errorf("screenshot not written: %v", err)
	}

	if status := v.capture(make([]byte, 3), 2, 2); !strings.HasPrefix(status, "Screenshot failed") {
		t.Errorf("capture() with bad data = %q", status)
	}
}

func TestSaveSettings(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("HOME", home)
	t.Setenv("APPDATA", home)

	cfg := config.Default()
	v, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	v.display.Wireframe = true
	v.camera = v.camera.WithPosition(math.Vec3{X: 1, Y: 2, Z: 3})

	if status := v.saveSettings(); status != "Settings saved" {
		t.Fatalf("saveSettings() = %q", status)
	}

	data, err := os.ReadFile(filepath.Join(config.ConfigDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("config not written: %v", err)
	}
	saved := config.Default()
	if err := yaml.Unmarshal(data, saved); err != nil {
		t.Fatalf("unmarshal saved config: %v", err)
	}
	if !saved.Display.Wireframe {
		t.Error("wireframe toggle not saved")
	}
	if saved.Camera.Position != [3]float32{1, 2, 3} {
		t.Errorf("camera position = %v, want [1 2 3]", saved.Camera.Position)
	}
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Display.Wireframe = true
	cfg.Display.Bounds = true

	d := DisplayFromConfig(cfg.Display)
	if !d.Wireframe || !d.Bounds || d.DepthTest {
		t.Errorf("DisplayFromConfig() = %+v", d)
	}
	if d.ClearColor != cfg.Display.ClearColor {
		t.Errorf("ClearColor = %v, want %v", d.ClearColor, cfg.Display.ClearColor)
	}

	c := CameraFromConfig(cfg.Camera)
	if c.Position.Array() != cfg.Camera.Position || c.FOV != cfg.Camera.FOV {
		t.Errorf("CameraFromConfig() = %+v", c)
	}
}

func TestFPSCounter(t *testing.T) {
	var c FPSCounter
	start := time.Unix(100, 0)

	for i := 0; i < 60; i++ {
		if c.Tick(start.Add(time.Duration(i) * time.Second / 60)) {
			t.Fatalf("average reported early at frame %d", i)
		}
	}
	if !c.Tick(start.Add(time.Second)) {
		t.Fatal("expected an average after one second")
	}
	if got := c.FPS(); got != 61 {
		t.Errorf("FPS() = %v, want 61", got)
	}

	// Counter restarts for the next window
	if c.Tick(start.Add(time.Second + time.Millisecond)) {
		t.Error("new window reported immediately")
	}
}
