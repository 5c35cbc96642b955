package shader

import (
	"strings"
	"testing"
)

// The GL calls need a live context; these tests cover the embedded sources.

func TestSourcesEmbedded(t *testing.T) {
	for name, src := range map[string]string{
		"vertex":        MonoVertexSource,
		"fragment":      MonoFragmentSource,
		"line vertex":   LineVertexSource,
		"line fragment": LineFragmentSource,
	} {
		if !strings.HasPrefix(src, "#version 410 core") {
			t.Errorf("%s shader should start with #version 410 core", name)
		}
	}
}

func TestMonoSourcesDeclareUniforms(t *testing.T) {
	for _, u := range []string{"uModel", "uView", "uProjection"} {
		if !strings.Contains(MonoVertexSource, "uniform mat4 "+u) {
			t.Errorf("vertex shader missing %s", u)
		}
	}
	for _, u := range []string{"uViewPosition", "uAlpha"} {
		if !strings.Contains(MonoFragmentSource, u) {
			t.Errorf("fragment shader missing %s", u)
		}
	}
	// Attribute layout must match the stride-6 vertex buffer
	if !strings.Contains(MonoVertexSource, "layout (location = 0) in vec3 aPosition") ||
		!strings.Contains(MonoVertexSource, "layout (location = 1) in vec3 aNormal") {
		t.Error("vertex shader attribute layout does not match position+normal buffer")
	}
}
