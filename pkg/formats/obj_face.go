package formats

import (
	"fmt"
	"strconv"
	"strings"
)

// objFans maps a face's corner count to its fan triangulation.
// Faces are assumed convex and planar.
var objFans = map[int][][3]int{
	3: {{0, 1, 2}},
	4: {{0, 1, 2}, {2, 3, 0}},
	5: {{0, 1, 2}, {2, 3, 4}, {4, 0, 1}},
	6: {{0, 1, 2}, {2, 3, 4}, {4, 5, 0}, {0, 2, 4}},
}

// OBJMaxFaceCorners is the largest polygon the loader triangulates.
// Larger faces are counted in OBJ.SkippedFaces and otherwise ignored.
const OBJMaxFaceCorners = 6

// indexFace triangulates one face record into the index streams and returns
// the number of triangles emitted. corners is the declared corner count
// (token count minus the tag). Unsupported corner counts emit nothing.
func (o *OBJ) indexFace(operands []string, corners, line int) (int, error) {
	fan, ok := objFans[corners]
	if !ok {
		o.SkippedFaces++
		return 0, nil
	}

	if len(operands) < corners {
		return 0, &OBJParseError{
			Line:    line,
			Context: OBJPolygonContext,
			Kind:    ErrOBJFaceRecord,
			Err:     fmt.Errorf("face declares %d corners but has %d", corners, len(operands)),
		}
	}

	for _, tri := range fan {
		for _, c := range tri {
			if err := o.Indices.appendCorner(operands[c], line); err != nil {
				return 0, err
			}
		}
	}

	o.Faces++
	return len(fan), nil
}

// appendCorner splits a "v", "v/t", "v/t/n" or "v//n" corner and appends each
// present component to its stream as a 0-based index.
func (ix *OBJIndices) appendCorner(corner string, line int) error {
	parts := strings.Split(corner, "/")
	if len(parts) > 3 {
		return &OBJParseError{
			Line:    line,
			Context: OBJPolygonContext,
			Kind:    ErrOBJFaceRecord,
			Err:     fmt.Errorf("corner %q has more than three components", corner),
		}
	}

	for i, part := range parts {
		if part == "" {
			continue
		}

		n, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return &OBJParseError{Line: line, Context: OBJPolygonContext, Kind: ErrOBJFaceRecord, Err: err}
		}
		if n == 0 {
			return &OBJParseError{
				Line:    line,
				Context: OBJPolygonContext,
				Kind:    ErrOBJFaceRecord,
				Err:     fmt.Errorf("corner %q: indices start at 1", corner),
			}
		}

		idx := uint32(n - 1)
		switch i {
		case 0:
			ix.Vertex = append(ix.Vertex, idx)
		case 1:
			ix.TexCoord = append(ix.TexCoord, idx)
		case 2:
			ix.Normal = append(ix.Normal, idx)
		}
	}
	return nil
}
