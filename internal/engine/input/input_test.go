package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func keyDown(code sdl.Scancode) *sdl.KeyboardEvent {
	return &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: code}}
}

func TestPushQuit(t *testing.T) {
	in := New()
	if !in.push(&sdl.QuitEvent{Type: sdl.QUIT}) {
		t.Error("quit event should request quit")
	}
}

func TestPushEscape(t *testing.T) {
	in := New()
	if in.push(keyDown(sdl.SCANCODE_W)) {
		t.Error("W should not request quit")
	}
	if !in.push(keyDown(sdl.SCANCODE_ESCAPE)) {
		t.Error("ESC should request quit")
	}
	if !in.IsKeyPressed(sdl.SCANCODE_W) {
		t.Error("W should be reported as pressed")
	}
}

func TestKeyRepeatIgnored(t *testing.T) {
	in := New()
	ev := keyDown(sdl.SCANCODE_ESCAPE)
	ev.Repeat = 1
	if in.push(ev) {
		t.Error("repeated key should be ignored")
	}
	if len(in.Events()) != 0 {
		t.Errorf("events = %d, want 0", len(in.Events()))
	}
}

func TestResized(t *testing.T) {
	in := New()
	if _, _, ok := in.Resized(); ok {
		t.Error("no resize expected yet")
	}

	in.push(&sdl.WindowEvent{Event: sdl.WINDOWEVENT_RESIZED, Data1: 640, Data2: 480})
	in.push(&sdl.WindowEvent{Event: sdl.WINDOWEVENT_RESIZED, Data1: 800, Data2: 600})
	in.push(&sdl.WindowEvent{Event: sdl.WINDOWEVENT_MOVED, Data1: 10, Data2: 10})

	w, h, ok := in.Resized()
	if !ok || w != 800 || h != 600 {
		t.Errorf("Resized() = (%d, %d, %v), want (800, 600, true)", w, h, ok)
	}
}

func TestMousePosition(t *testing.T) {
	in := New()
	in.push(&sdl.MouseMotionEvent{X: 12, Y: 34})
	x, y := in.MousePosition()
	if x != 12 || y != 34 {
		t.Errorf("MousePosition() = (%d, %d), want (12, 34)", x, y)
	}
}
