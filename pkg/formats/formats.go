// Package formats provides parsers for 3D model file formats.
package formats

// Note: Wavefront OBJ (positions, texture coordinates, normals, faces) is implemented in obj.go
