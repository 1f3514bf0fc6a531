package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/spacescene/internal/engine/geometry"
)

// vertexStride is the byte size of geometry.Vertex.
const vertexStride = int32(unsafe.Sizeof(geometry.Vertex{}))

// vertexAttrib describes one interleaved attribute; location matches the shaders.
type vertexAttrib struct {
	location uint32
	size     int32
	offset   uintptr
}

var vertexLayout = []vertexAttrib{
	{0, 3, unsafe.Offsetof(geometry.Vertex{}.Position)},
	{1, 3, unsafe.Offsetof(geometry.Vertex{}.Normal)},
	{2, 2, unsafe.Offsetof(geometry.Vertex{}.TexCoord)},
	{3, 4, unsafe.Offsetof(geometry.Vertex{}.Tangent)},
	{4, 3, unsafe.Offsetof(geometry.Vertex{}.Color)},
}

type gpuMesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
	mode          uint32
}

func glMode(mode geometry.Mode) uint32 {
	if mode == geometry.Lines {
		return gl.LINES
	}
	return gl.TRIANGLES
}

// mesh returns the GPU buffers for g, uploading them on first use.
// Geometry is treated as immutable once drawn.
func (r *Renderer) mesh(g *geometry.Geometry) *gpuMesh {
	if gm, ok := r.meshes[g]; ok {
		return gm
	}
	gm := &gpuMesh{mode: glMode(g.Mode), indexCount: int32(len(g.Indices))}
	r.meshes[g] = gm
	if len(g.Vertices) == 0 || len(g.Indices) == 0 {
		return gm
	}

	gl.GenVertexArrays(1, &gm.vao)
	gl.BindVertexArray(gm.vao)

	gl.GenBuffers(1, &gm.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, gm.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(g.Vertices)*int(vertexStride), unsafe.Pointer(&g.Vertices[0]), gl.STATIC_DRAW)

	for _, a := range vertexLayout {
		gl.VertexAttribPointerWithOffset(a.location, a.size, gl.FLOAT, false, vertexStride, a.offset)
		gl.EnableVertexAttribArray(a.location)
	}

	gl.GenBuffers(1, &gm.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gm.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.Indices)*4, unsafe.Pointer(&g.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	r.log.Debug("geometry uploaded",
		zap.String("name", g.Name),
		zap.Int("vertices", len(g.Vertices)),
		zap.Int("indices", len(g.Indices)),
	)
	return gm
}

func (gm *gpuMesh) delete() {
	if gm.vao != 0 {
		gl.DeleteVertexArrays(1, &gm.vao)
	}
	if gm.vbo != 0 {
		gl.DeleteBuffers(1, &gm.vbo)
	}
	if gm.ebo != 0 {
		gl.DeleteBuffers(1, &gm.ebo)
	}
}
