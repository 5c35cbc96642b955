package viewer

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/objviewer/pkg/formats"
	"github.com/Faultbox/objviewer/pkg/math"
)

// Model is a loaded OBJ file and its GPU-ready mesh.
type Model struct {
	Path string
	OBJ  *formats.OBJ
	Mesh *formats.OBJMesh
	Min  math.Vec3
	Max  math.Vec3
}

// Name returns the base name of the source file.
func (m *Model) Name() string {
	return filepath.Base(m.Path)
}

// LoadModel parses path and builds its mesh.
func LoadModel(path string, log *zap.Logger) (*Model, error) {
	obj, err := formats.ParseOBJFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	mesh, err := formats.BuildOBJMesh(obj)
	if err != nil {
		return nil, fmt.Errorf("building mesh for %s: %w", path, err)
	}

	min, max, ok := obj.Bounds()
	if !ok {
		return nil, fmt.Errorf("%s has no vertices", path)
	}

	stats := obj.Stats()
	log.Info("model loaded",
		zap.String("path", path),
		zap.Int("lines", stats.Lines),
		zap.Int("vertices", stats.Vertices),
		zap.Int("normals", stats.Normals),
		zap.Int("triangles", stats.Triangles),
		zap.Bool("expanded", mesh.Expanded),
	)
	if stats.SkippedFaces > 0 {
		log.Warn("faces skipped",
			zap.Int("count", stats.SkippedFaces),
			zap.Int("max_corners", formats.OBJMaxFaceCorners),
		)
	}

	return &Model{Path: path, OBJ: obj, Mesh: mesh, Min: min, Max: max}, nil
}
