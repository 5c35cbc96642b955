// Package camera provides the look-at camera used to view a mesh.
package camera

import (
	"github.com/Faultbox/objviewer/pkg/math"
)

// Camera is a look-at camera with a perspective projection.
// It is a plain value: the methods that change it return a modified copy,
// and the renderer receives a snapshot every frame.
type Camera struct {
	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3

	FOV    float32 // Vertical field of view in degrees
	Near   float32
	Far    float32
	Aspect float32 // Width / height
}

// New creates a camera from raw components.
func New(position, target, up [3]float32, fov, near, far float32) Camera {
	return Camera{
		Position: vec3(position),
		Target:   vec3(target),
		Up:       vec3(up),
		FOV:      fov,
		Near:     near,
		Far:      far,
		Aspect:   1,
	}
}

func vec3(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}

// WithPosition returns a copy of the camera moved to p.
func (c Camera) WithPosition(p math.Vec3) Camera {
	c.Position = p
	return c
}

// WithViewport returns a copy of the camera with the aspect ratio of a
// width x height viewport. Degenerate sizes leave the aspect unchanged.
func (c Camera) WithViewport(width, height int) Camera {
	if width > 0 && height > 0 {
		c.Aspect = float32(width) / float32(height)
	}
	return c
}

// Fit returns a copy of the camera aimed at the center of the given bounds,
// keeping its viewing direction and backing off far enough to see them.
func (c Camera) Fit(min, max math.Vec3) Camera {
	center := min.Add(max).Scale(0.5)
	radius := max.Sub(min).Length() / 2
	if radius == 0 {
		radius = 1
	}

	dir := c.Position.Sub(c.Target).Normalize()
	if dir == (math.Vec3{}) {
		dir = math.Vec3{X: 0, Y: 0, Z: 1}
	}

	c.Target = center
	c.Position = center.Add(dir.Scale(radius * 2.5))
	if c.Far < radius*5 {
		c.Far = radius * 5
	}
	return c
}

// View returns the view matrix.
func (c Camera) View() math.Mat4 {
	return math.LookAt(c.Position, c.Target, c.Up)
}

// Projection returns the perspective projection matrix.
func (c Camera) Projection() math.Mat4 {
	return math.Perspective(math.Radians(c.FOV), c.Aspect, c.Near, c.Far)
}
