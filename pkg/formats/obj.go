package formats

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Faultbox/objviewer/pkg/math"
)

// OBJ format errors.
var (
	ErrOBJFileOpen       = errors.New("cannot open OBJ file")
	ErrOBJRead           = errors.New("reading OBJ data")
	ErrOBJNumeric        = errors.New("invalid numeric value")
	ErrOBJFaceRecord     = errors.New("invalid face record")
	ErrOBJIndexAlignment = errors.New("OBJ index out of range")
)

// Labels carried by OBJParseError.
const (
	OBJVertexContext   = "Vertex position is invalid"
	OBJTexCoordContext = "Vertex texture position is invalid"
	OBJNormalContext   = "Vertex normal is invalid"
	OBJPolygonContext  = "Polygon index is invalid"
)

// objMaxLineSize bounds a single physical line.
const objMaxLineSize = 1 << 20

// OBJParseError reports a malformed record and the line it was found on.
type OBJParseError struct {
	Line    int    // 1-based source line
	Context string // Record label, e.g. "Vertex position is invalid"
	Kind    error  // ErrOBJNumeric or ErrOBJFaceRecord
	Err     error  // Underlying cause (may be nil)
}

func (e *OBJParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s. line %d: %v", e.Context, e.Line, e.Err)
	}
	return fmt.Sprintf("%s. line %d", e.Context, e.Line)
}

// Unwrap exposes both the error kind and the cause to errors.Is and errors.As.
func (e *OBJParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// OBJRecordKind identifies an OBJ line by its leading token.
type OBJRecordKind int

// Record kinds.
const (
	OBJUnknown           OBJRecordKind = iota // Anything else (ignored)
	OBJVertexPosition                         // v
	OBJTextureCoordinate                      // vt
	OBJVertexNormal                           // vn
	OBJFaceIndex                              // f
	OBJMaterialLibrary                        // mtllib (ignored)
	OBJObjectName                             // o (ignored)
	OBJComment                                // # (ignored)
)

// String returns a human-readable record kind name.
func (k OBJRecordKind) String() string {
	switch k {
	case OBJVertexPosition:
		return "VertexPosition"
	case OBJTextureCoordinate:
		return "TextureCoordinate"
	case OBJVertexNormal:
		return "VertexNormal"
	case OBJFaceIndex:
		return "FaceIndex"
	case OBJMaterialLibrary:
		return "MaterialLibrary"
	case OBJObjectName:
		return "ObjectName"
	case OBJComment:
		return "Comment"
	default:
		return "Unknown"
	}
}

// ClassifyOBJRecord maps the first token of a line to its record kind.
func ClassifyOBJRecord(tag string) OBJRecordKind {
	switch tag {
	case "v":
		return OBJVertexPosition
	case "vt":
		return OBJTextureCoordinate
	case "vn":
		return OBJVertexNormal
	case "f":
		return OBJFaceIndex
	case "mtllib":
		return OBJMaterialLibrary
	case "o":
		return OBJObjectName
	case "#":
		return OBJComment
	default:
		return OBJUnknown
	}
}

// OBJIndices holds the per-corner index streams (0-based).
// The streams only share a length when every corner names all three components.
type OBJIndices struct {
	Vertex   []uint32
	TexCoord []uint32
	Normal   []uint32
}

// OBJ represents a parsed Wavefront OBJ file.
//
// Pools and index streams are filled while parsing. AlignedNormals stays
// empty until AlignNormals is called.
type OBJ struct {
	Vertices       []math.Vec3 // Vertex pool, file order
	TexCoords      [][]float32 // Texture-coordinate pool, arity as written
	RawNormals     []math.Vec3 // Normal pool, file order
	Indices        OBJIndices
	AlignedNormals []math.Vec3 // RawNormals reordered to follow Indices.Vertex

	Lines        int // Physical lines read
	Faces        int // Faces triangulated
	SkippedFaces int // Faces with an unsupported corner count
}

// ParseOBJ parses OBJ text from r. On failure no partial result is returned.
func ParseOBJ(r io.Reader) (*OBJ, error) {
	obj := &OBJ{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), objMaxLineSize)

	var scratch []float32
	line := 0
	for scanner.Scan() {
		line++
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}
		if err := obj.parseRecord(tokens, line, &scratch); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: after line %d: %w", ErrOBJRead, line, err)
	}

	obj.Lines = line
	return obj, nil
}

// ParseOBJFile parses an OBJ file from disk.
func ParseOBJFile(path string) (*OBJ, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOBJFileOpen, err)
	}
	defer f.Close()
	return ParseOBJ(f)
}

// parseRecord dispatches one tokenized line.
func (o *OBJ) parseRecord(tokens []string, line int, scratch *[]float32) error {
	switch ClassifyOBJRecord(tokens[0]) {
	case OBJVertexPosition:
		v, err := readOBJVec3(tokens, OBJVertexContext, line, scratch)
		if err != nil {
			return err
		}
		o.Vertices = append(o.Vertices, v)

	case OBJTextureCoordinate:
		values, err := ReadOBJValues(tokens, nil, OBJTexCoordContext, line)
		if err != nil {
			return err
		}
		o.TexCoords = append(o.TexCoords, values)

	case OBJVertexNormal:
		n, err := readOBJVec3(tokens, OBJNormalContext, line, scratch)
		if err != nil {
			return err
		}
		o.RawNormals = append(o.RawNormals, n)

	case OBJFaceIndex:
		if _, err := o.indexFace(tokens[1:], len(tokens)-1, line); err != nil {
			return err
		}

	case OBJMaterialLibrary, OBJObjectName, OBJComment, OBJUnknown:
		// Consumed without effect
	}
	return nil
}

// ReadOBJValues appends every operand after the tag (tokens[0]) to dst as a float.
// It stops at the first bad token; dst keeps the values parsed before it.
func ReadOBJValues(tokens []string, dst []float32, context string, line int) ([]float32, error) {
	if len(tokens) == 0 {
		return dst, nil
	}
	for _, tok := range tokens[1:] {
		v, err := strconv.ParseFloat(tok, 32)
		if err != nil {
			return dst, &OBJParseError{Line: line, Context: context, Kind: ErrOBJNumeric, Err: err}
		}
		dst = append(dst, float32(v))
	}
	return dst, nil
}

// readOBJVec3 reads a three-component record. Missing components are zero and
// extra components (such as a homogeneous w) are dropped.
func readOBJVec3(tokens []string, context string, line int, scratch *[]float32) (math.Vec3, error) {
	values, err := ReadOBJValues(tokens, (*scratch)[:0], context, line)
	*scratch = values
	if err != nil {
		return math.Vec3{}, err
	}

	var c [3]float32
	copy(c[:], values)
	return math.Vec3{X: c[0], Y: c[1], Z: c[2]}, nil
}
