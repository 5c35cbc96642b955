package formats

import (
	"fmt"

	"github.com/Faultbox/objviewer/pkg/math"
)

// OBJVertexStride is the number of floats per interleaved vertex (position.xyz, normal.xyz).
const OBJVertexStride = 6

// AlignNormals rebuilds AlignedNormals so that entry i is the raw normal named
// by the i-th entry of the normal index stream, for every corner of the vertex
// index stream. Call it after parsing has finished.
func (o *OBJ) AlignNormals() error {
	corners := len(o.Indices.Vertex)
	if len(o.Indices.Normal) < corners {
		return fmt.Errorf("%w: %d corners but only %d normal indices",
			ErrOBJIndexAlignment, corners, len(o.Indices.Normal))
	}

	aligned := make([]math.Vec3, corners)
	for i := range aligned {
		ni := o.Indices.Normal[i]
		if int(ni) >= len(o.RawNormals) {
			return fmt.Errorf("%w: corner %d names normal %d, pool has %d",
				ErrOBJIndexAlignment, i, ni+1, len(o.RawNormals))
		}
		aligned[i] = o.RawNormals[ni]
	}

	o.AlignedNormals = aligned
	return nil
}

// Interleave builds a stride-6 buffer pairing the i-th pool vertex with the
// i-th aligned normal. It requires one aligned normal per pool vertex, which
// only describes the mesh correctly when the vertex index stream is 0, 1, 2...
// Use Expand for meshes that share vertices between faces.
func (o *OBJ) Interleave() ([]float32, error) {
	if len(o.Vertices) != len(o.AlignedNormals) {
		return nil, fmt.Errorf("%w: %d vertices but %d aligned normals",
			ErrOBJIndexAlignment, len(o.Vertices), len(o.AlignedNormals))
	}

	buf := make([]float32, 0, len(o.Vertices)*OBJVertexStride)
	for i, p := range o.Vertices {
		n := o.AlignedNormals[i]
		buf = append(buf, p.X, p.Y, p.Z, n.X, n.Y, n.Z)
	}
	return buf, nil
}

// Expand builds a stride-6 buffer with one vertex per index-stream corner,
// duplicating shared positions, and the matching sequential index stream.
// AlignNormals must have been called first.
func (o *OBJ) Expand() ([]float32, []uint32, error) {
	corners := len(o.Indices.Vertex)
	if len(o.AlignedNormals) != corners {
		return nil, nil, fmt.Errorf("%w: %d corners but %d aligned normals",
			ErrOBJIndexAlignment, corners, len(o.AlignedNormals))
	}

	buf := make([]float32, 0, corners*OBJVertexStride)
	indices := make([]uint32, corners)
	for i, vi := range o.Indices.Vertex {
		if int(vi) >= len(o.Vertices) {
			return nil, nil, fmt.Errorf("%w: corner %d names vertex %d, pool has %d",
				ErrOBJIndexAlignment, i, vi+1, len(o.Vertices))
		}
		p := o.Vertices[vi]
		n := o.AlignedNormals[i]
		buf = append(buf, p.X, p.Y, p.Z, n.X, n.Y, n.Z)
		indices[i] = uint32(i)
	}
	return buf, indices, nil
}

// ValidateIndices checks the vertex and texture-coordinate streams against
// their pools. Normal indices are checked by AlignNormals.
func (o *OBJ) ValidateIndices() error {
	for i, vi := range o.Indices.Vertex {
		if int(vi) >= len(o.Vertices) {
			return fmt.Errorf("%w: corner %d names vertex %d, pool has %d",
				ErrOBJIndexAlignment, i, vi+1, len(o.Vertices))
		}
	}
	for i, ti := range o.Indices.TexCoord {
		if int(ti) >= len(o.TexCoords) {
			return fmt.Errorf("%w: corner %d names texture coordinate %d, pool has %d",
				ErrOBJIndexAlignment, i, ti+1, len(o.TexCoords))
		}
	}
	return nil
}

// GenerateFlatNormals gives every triangle its own face normal when the file
// did not reference any normals. The generated normals are appended to
// RawNormals and the normal stream is filled to match the vertex stream.
func (o *OBJ) GenerateFlatNormals() error {
	if len(o.Indices.Normal) != 0 {
		return nil
	}

	for t := 0; t+2 < len(o.Indices.Vertex); t += 3 {
		var corners [3]math.Vec3
		for k := 0; k < 3; k++ {
			vi := o.Indices.Vertex[t+k]
			if int(vi) >= len(o.Vertices) {
				return fmt.Errorf("%w: corner %d names vertex %d, pool has %d",
					ErrOBJIndexAlignment, t+k, vi+1, len(o.Vertices))
			}
			corners[k] = o.Vertices[vi]
		}

		n := corners[1].Sub(corners[0]).Cross(corners[2].Sub(corners[0])).Normalize()
		ni := uint32(len(o.RawNormals))
		o.RawNormals = append(o.RawNormals, n)
		o.Indices.Normal = append(o.Indices.Normal, ni, ni, ni)
	}
	return nil
}

// Bounds returns the axis-aligned bounds of the vertex pool.
// ok is false when the pool is empty.
func (o *OBJ) Bounds() (min, max math.Vec3, ok bool) {
	if len(o.Vertices) == 0 {
		return math.Vec3{}, math.Vec3{}, false
	}

	min, max = o.Vertices[0], o.Vertices[0]
	for _, v := range o.Vertices[1:] {
		min = min.Min(v)
		max = max.Max(v)
	}
	return min, max, true
}

// identityOrder reports whether the vertex stream is exactly 0, 1, 2, ...
// over the whole vertex pool.
func (o *OBJ) identityOrder() bool {
	if len(o.Indices.Vertex) != len(o.Vertices) {
		return false
	}
	for i, vi := range o.Indices.Vertex {
		if int(vi) != i {
			return false
		}
	}
	return true
}

// OBJStats summarizes pool and stream sizes.
type OBJStats struct {
	Lines           int
	Vertices        int
	TexCoords       int
	Normals         int
	VertexIndices   int
	TexCoordIndices int
	NormalIndices   int
	Triangles       int
	Faces           int
	SkippedFaces    int
}

// Stats returns the current pool and stream sizes.
func (o *OBJ) Stats() OBJStats {
	return OBJStats{
		Lines:           o.Lines,
		Vertices:        len(o.Vertices),
		TexCoords:       len(o.TexCoords),
		Normals:         len(o.RawNormals),
		VertexIndices:   len(o.Indices.Vertex),
		TexCoordIndices: len(o.Indices.TexCoord),
		NormalIndices:   len(o.Indices.Normal),
		Triangles:       len(o.Indices.Vertex) / 3,
		Faces:           o.Faces,
		SkippedFaces:    o.SkippedFaces,
	}
}

// OBJMesh is GPU-ready geometry: a stride-6 vertex buffer and a triangle index list.
type OBJMesh struct {
	Vertices []float32
	Indices  []uint32
	Expanded bool // Built by Expand rather than Interleave
}

// VertexCount returns the number of vertices in the buffer.
func (m *OBJMesh) VertexCount() int {
	return len(m.Vertices) / OBJVertexStride
}

// BuildOBJMesh runs the post-parse steps and produces renderable geometry.
// Meshes without normals get flat face normals. The pool is uploaded as-is
// when the vertex stream is 0, 1, 2...; otherwise corners are expanded.
func BuildOBJMesh(o *OBJ) (*OBJMesh, error) {
	if len(o.Indices.Normal) == 0 {
		if err := o.GenerateFlatNormals(); err != nil {
			return nil, fmt.Errorf("generating normals: %w", err)
		}
	}
	if err := o.ValidateIndices(); err != nil {
		return nil, err
	}
	if err := o.AlignNormals(); err != nil {
		return nil, fmt.Errorf("aligning normals: %w", err)
	}

	if o.identityOrder() {
		buf, err := o.Interleave()
		if err != nil {
			return nil, fmt.Errorf("interleaving: %w", err)
		}
		return &OBJMesh{Vertices: buf, Indices: o.Indices.Vertex}, nil
	}

	buf, indices, err := o.Expand()
	if err != nil {
		return nil, fmt.Errorf("expanding: %w", err)
	}
	return &OBJMesh{Vertices: buf, Indices: indices, Expanded: true}, nil
}
