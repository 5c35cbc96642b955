package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/objviewer/pkg/formats"
)

func TestDescribeTriangle(t *testing.T) {
	var buf bytes.Buffer
	if err := describe(&buf, filepath.Join("..", "..", "pkg", "formats", "testdata", "triangle.obj")); err != nil {
		t.Fatalf("describe failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Faces:     1 (1 triangles)",
		"Layout:    interleaved, 3 vertices x 6 floats, 3 indices",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Skipped") {
		t.Errorf("unexpected skipped line:\n%s", out)
	}
}

func TestDescribeCube(t *testing.T) {
	var buf bytes.Buffer
	if err := describe(&buf, filepath.Join("..", "..", "pkg", "formats", "testdata", "cube.obj")); err != nil {
		t.Fatalf("describe failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Layout:    expanded, 36 vertices") {
		t.Errorf("expected expanded layout:\n%s", out)
	}
	if !strings.Contains(out, "Bounds:    (-0.5, -0.5, -0.5) - (0.5, 0.5, 0.5)") {
		t.Errorf("unexpected bounds:\n%s", out)
	}
}

func TestDescribeMissing(t *testing.T) {
	var buf bytes.Buffer
	err := describe(&buf, filepath.Join(t.TempDir(), "missing.obj"))
	if !errors.Is(err, formats.ErrOBJFileOpen) {
		t.Errorf("expected ErrOBJFileOpen, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("nothing should be printed on error, got %q", buf.String())
	}
}
