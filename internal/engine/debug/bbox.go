// Package debug provides debug visualization and capture utilities.
package debug

import "github.com/Faultbox/objviewer/pkg/math"

// BoundsVertexCount is the number of vertices in a bounds wireframe (12 edges × 2).
const BoundsVertexCount = 24

// BoundsWireframe returns line-list vertices ([x, y, z] each) for the box
// spanned by min and max, grown by padding on every side.
func BoundsWireframe(min, max math.Vec3, padding float32) []float32 {
	pad := math.Vec3{X: padding, Y: padding, Z: padding}
	lo := min.Min(max).Sub(pad)
	hi := max.Max(min).Add(pad)

	corner := func(x, y, z bool) [3]float32 {
		c := [3]float32{lo.X, lo.Y, lo.Z}
		if x {
			c[0] = hi.X
		}
		if y {
			c[1] = hi.Y
		}
		if z {
			c[2] = hi.Z
		}
		return c
	}

	edges := [12][2][3]float32{
		// Bottom
		{corner(false, false, false), corner(true, false, false)},
		{corner(true, false, false), corner(true, false, true)},
		{corner(true, false, true), corner(false, false, true)},
		{corner(false, false, true), corner(false, false, false)},
		// Top
		{corner(false, true, false), corner(true, true, false)},
		{corner(true, true, false), corner(true, true, true)},
		{corner(true, true, true), corner(false, true, true)},
		{corner(false, true, true), corner(false, true, false)},
		// Vertical
		{corner(false, false, false), corner(false, true, false)},
		{corner(true, false, false), corner(true, true, false)},
		{corner(true, false, true), corner(true, true, true)},
		{corner(false, false, true), corner(false, true, true)},
	}

	out := make([]float32, 0, BoundsVertexCount*3)
	for _, e := range edges {
		out = append(out, e[0][:]...)
		out = append(out, e[1][:]...)
	}
	return out
}
