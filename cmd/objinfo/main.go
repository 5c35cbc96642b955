// objinfo prints what the loader makes of a Wavefront OBJ file.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Faultbox/objviewer/pkg/formats"
)

func main() {
	if len(os.Args) != 2 {
		printUsage()
		os.Exit(1)
	}
	switch os.Args[1] {
	case "help", "-h", "--help":
		printUsage()
		return
	}

	if err := describe(os.Stdout, os.Args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`objinfo - Wavefront OBJ inspector

Usage:
  objinfo <file.obj>

Prints pool sizes, index stream lengths, triangle and skipped face counts,
bounds, and the vertex layout the viewer would upload.

Examples:
  objinfo cube.obj`)
}

// describe parses path and writes a report to w.
func describe(w io.Writer, path string) error {
	obj, err := formats.ParseOBJFile(path)
	if err != nil {
		return err
	}

	stats := obj.Stats()
	fmt.Fprintf(w, "File:      %s\n", path)
	fmt.Fprintf(w, "Lines:     %d\n", stats.Lines)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Pools:")
	fmt.Fprintf(w, "  %-20s %8d\n", "positions", stats.Vertices)
	fmt.Fprintf(w, "  %-20s %8d\n", "texture coordinates", stats.TexCoords)
	fmt.Fprintf(w, "  %-20s %8d\n", "normals", stats.Normals)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Index streams:")
	fmt.Fprintf(w, "  %-20s %8d\n", "vertex", stats.VertexIndices)
	fmt.Fprintf(w, "  %-20s %8d\n", "texture coordinate", stats.TexCoordIndices)
	fmt.Fprintf(w, "  %-20s %8d\n", "normal", stats.NormalIndices)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Faces:     %d (%d triangles)\n", stats.Faces, stats.Triangles)
	if stats.SkippedFaces > 0 {
		fmt.Fprintf(w, "Skipped:   %d (more than %d or fewer than 3 corners)\n",
			stats.SkippedFaces, formats.OBJMaxFaceCorners)
	}

	if min, max, ok := obj.Bounds(); ok {
		fmt.Fprintf(w, "Bounds:    (%g, %g, %g) - (%g, %g, %g)\n", min.X, min.Y, min.Z, max.X, max.Y, max.Z)
	}

	mesh, err := formats.BuildOBJMesh(obj)
	if err != nil {
		return fmt.Errorf("building mesh: %w", err)
	}

	layout := "interleaved"
	if mesh.Expanded {
		layout = "expanded"
	}
	fmt.Fprintf(w, "Layout:    %s, %d vertices x %d floats, %d indices\n",
		layout, mesh.VertexCount(), formats.OBJVertexStride, len(mesh.Indices))
	if stats.NormalIndices == 0 {
		fmt.Fprintln(w, "Normals:   generated (flat)")
	}
	return nil
}
