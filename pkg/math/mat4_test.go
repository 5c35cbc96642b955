package math

import (
	"testing"

	"github.com/chewxy/math32"
)

func approx(a, b float32) bool {
	return math32.Abs(a-b) < 1e-5
}

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := LookAt(Vec3{5, -5, 5}, Vec3{0, 1, 0}, Vec3{0, 1, 0})
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	eye := Vec3{5, -5, 5}
	view := LookAt(eye, Vec3{0, 1, 0}, Vec3{0, 1, 0})

	got := view.TransformVec3(eye)
	if !approx(got.X, 0) || !approx(got.Y, 0) || !approx(got.Z, 0) {
		t.Errorf("eye in view space = %v, want origin", got)
	}
}

func TestLookAtTargetOnNegativeZ(t *testing.T) {
	view := LookAt(Vec3{0, 0, 10}, Vec3{0, 0, 0}, Vec3{0, 1, 0})

	got := view.TransformVec3(Vec3{})
	if !approx(got.X, 0) || !approx(got.Y, 0) || !approx(got.Z, -10) {
		t.Errorf("target in view space = %v, want (0, 0, -10)", got)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(Radians(90), 2, 0.1, 100)

	// tan(45deg) = 1, so f = 1
	if !approx(m[0], 0.5) {
		t.Errorf("m[0] = %f, want 0.5", m[0])
	}
	if !approx(m[5], 1) {
		t.Errorf("m[5] = %f, want 1", m[5])
	}
	if m[11] != -1 {
		t.Errorf("m[11] = %f, want -1", m[11])
	}

	// A point on the near plane maps to NDC z = -1
	p := m.TransformVec3(Vec3{0, 0, -0.1})
	if !approx(p.Z, -1) {
		t.Errorf("near plane z = %f, want -1", p.Z)
	}
}

func TestRadians(t *testing.T) {
	if !approx(Radians(180), math32.Pi) {
		t.Errorf("Radians(180) = %f, want pi", Radians(180))
	}
}
