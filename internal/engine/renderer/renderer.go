// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/objviewer/internal/engine/camera"
	"github.com/Faultbox/objviewer/internal/engine/debug"
	"github.com/Faultbox/objviewer/internal/engine/shader"
	"github.com/Faultbox/objviewer/internal/logger"
	"github.com/Faultbox/objviewer/pkg/formats"
	"github.com/Faultbox/objviewer/pkg/math"
)

// Display holds the per-frame render toggles.
// It is a plain value; callers pass a copy to every Draw.
type Display struct {
	DepthTest  bool
	Blend      bool
	Wireframe  bool
	Culling    bool
	Bounds     bool // Draw the bounding box set by SetBounds
	ClearColor [4]float32
}

// polygonMode returns the GL polygon rasterization mode for the display state.
func (d Display) polygonMode() uint32 {
	if d.Wireframe {
		return gl.LINE
	}
	return gl.FILL
}

// alpha returns the mesh opacity. Blending only has a visible effect below 1.
func (d Display) alpha() float32 {
	if d.Blend {
		return 0.6
	}
	return 1.0
}

// Renderer draws a single uploaded mesh.
type Renderer struct {
	width  int
	height int

	program uint32
	locModel,
	locView,
	locProjection,
	locViewPosition,
	locAlpha int32

	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32

	lineProgram uint32
	lineModel,
	lineView,
	lineProjection,
	lineColor int32
	boundsVAO uint32
	boundsVBO uint32
	hasBounds bool
}

// boundsColor is the RGBA color of the bounds wireframe.
var boundsColor = [4]float32{0.9, 0.35, 0.1, 1.0}

// New creates a new renderer.
// Must be called after the OpenGL context is current.
func New(width, height int) (*Renderer, error) {
	r := &Renderer{width: width, height: height}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	program, err := shader.CompileProgram(shader.MonoVertexSource, shader.MonoFragmentSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.program = program
	r.locModel = shader.GetUniform(program, "uModel")
	r.locView = shader.GetUniform(program, "uView")
	r.locProjection = shader.GetUniform(program, "uProjection")
	r.locViewPosition = shader.GetUniform(program, "uViewPosition")
	r.locAlpha = shader.GetUniform(program, "uAlpha")

	lineProgram, err := shader.CompileProgram(shader.LineVertexSource, shader.LineFragmentSource)
	if err != nil {
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("failed to create line shader program: %w", err)
	}
	r.lineProgram = lineProgram
	r.lineModel = shader.GetUniform(lineProgram, "uModel")
	r.lineView = shader.GetUniform(lineProgram, "uView")
	r.lineProjection = shader.GetUniform(lineProgram, "uProjection")
	r.lineColor = shader.GetUniform(lineProgram, "uColor")

	gl.DepthFunc(gl.LESS)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.CullFace(gl.BACK)
	gl.Viewport(0, 0, int32(width), int32(height))

	logger.Debug("shader program created", zap.Uint32("program", program))
	return r, nil
}

// Upload replaces the current mesh with m.
func (r *Renderer) Upload(m *formats.OBJMesh) error {
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return fmt.Errorf("mesh has no geometry")
	}
	if len(m.Vertices)%formats.OBJVertexStride != 0 {
		return fmt.Errorf("vertex buffer length %d is not a multiple of %d",
			len(m.Vertices), formats.OBJVertexStride)
	}

	r.releaseMesh()

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*4, unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	stride := int32(formats.OBJVertexStride * 4)

	// Position (location = 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	// Normal (location = 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	r.indexCount = int32(len(m.Indices))
	logger.Debug("mesh uploaded",
		zap.Uint32("vao", r.vao),
		zap.Int("vertices", m.VertexCount()),
		zap.Int32("indices", r.indexCount),
		zap.Bool("expanded", m.Expanded),
	)
	return nil
}

// SetBounds uploads the wireframe box drawn when Display.Bounds is set.
func (r *Renderer) SetBounds(min, max math.Vec3) {
	verts := debug.BoundsWireframe(min, max, 0)

	if r.boundsVAO == 0 {
		gl.GenVertexArrays(1, &r.boundsVAO)
		gl.GenBuffers(1, &r.boundsVBO)
	}
	gl.BindVertexArray(r.boundsVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.boundsVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, unsafe.Pointer(&verts[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)

	r.hasBounds = true
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// Size returns the current viewport size.
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// Draw clears the bound framebuffer and draws the mesh.
func (r *Renderer) Draw(cam camera.Camera, d Display) {
	applyCapability(gl.DEPTH_TEST, d.DepthTest)
	applyCapability(gl.BLEND, d.Blend)
	applyCapability(gl.CULL_FACE, d.Culling)

	c := d.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if r.indexCount == 0 {
		return
	}

	model := math.Identity()
	view := cam.View()
	projection := cam.Projection()

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locModel, 1, false, model.Ptr())
	gl.UniformMatrix4fv(r.locView, 1, false, view.Ptr())
	gl.UniformMatrix4fv(r.locProjection, 1, false, projection.Ptr())
	gl.Uniform3f(r.locViewPosition, cam.Position.X, cam.Position.Y, cam.Position.Z)
	gl.Uniform1f(r.locAlpha, d.alpha())

	gl.PolygonMode(gl.FRONT_AND_BACK, d.polygonMode())
	gl.BindVertexArray(r.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)

	// Overlays drawn after the mesh expect filled polygons
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)

	if d.Bounds && r.hasBounds {
		gl.UseProgram(r.lineProgram)
		gl.UniformMatrix4fv(r.lineModel, 1, false, model.Ptr())
		gl.UniformMatrix4fv(r.lineView, 1, false, view.Ptr())
		gl.UniformMatrix4fv(r.lineProjection, 1, false, projection.Ptr())
		gl.Uniform4f(r.lineColor, boundsColor[0], boundsColor[1], boundsColor[2], boundsColor[3])

		gl.BindVertexArray(r.boundsVAO)
		gl.DrawArrays(gl.LINES, 0, debug.BoundsVertexCount)
		gl.BindVertexArray(0)
	}
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	r.releaseMesh()
	if r.boundsVAO != 0 {
		gl.DeleteVertexArrays(1, &r.boundsVAO)
		gl.DeleteBuffers(1, &r.boundsVBO)
		r.boundsVAO, r.boundsVBO = 0, 0
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
	if r.lineProgram != 0 {
		gl.DeleteProgram(r.lineProgram)
		r.lineProgram = 0
	}
}

func (r *Renderer) releaseMesh() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
		r.ebo = 0
	}
	r.indexCount = 0
}

func applyCapability(capability uint32, enabled bool) {
	if enabled {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}
