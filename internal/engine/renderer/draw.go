package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/spacescene/internal/engine/geometry"
	"github.com/Faultbox/spacescene/internal/engine/material"
	"github.com/Faultbox/spacescene/internal/engine/scene"
	"github.com/Faultbox/spacescene/internal/engine/shader"
	"github.com/Faultbox/spacescene/internal/engine/texture"
	m "github.com/Faultbox/spacescene/pkg/math"
)

// Texture units.
const (
	unitMap       = 0
	unitNormalMap = 1
)

func (r *Renderer) color(c m.Color) [3]float32 {
	if r.config.GammaInput && r.config.Gamma > 0 {
		c = c.Linear(r.config.Gamma)
	}
	return c.Array()
}

func (r *Renderer) drawMesh(f *frameState, item scene.DrawItem) {
	mesh := item.Mesh
	p, ok := r.programs[mesh.Material.Kind()]
	if !ok {
		return
	}
	gm := r.mesh(mesh.Geometry)
	if gm.vao == 0 {
		return
	}

	p.Use()
	p.SetMat4("uModel", item.World)
	p.SetMat4("uView", f.view)
	p.SetMat4("uProjection", f.proj)
	p.SetMat3("uNormalMatrix", item.World.NormalMatrix())
	p.SetFloat("uGamma", r.config.Gamma)

	switch mat := mesh.Material.(type) {
	case *material.Basic:
		p.SetVec3("uColor", r.color(mat.Color))
		r.setMap(p, "uMap", "uHasMap", unitMap, mat.Map)
	case *material.Phong:
		r.setLit(p, f)
		p.SetVec3("uColor", r.color(mat.Color))
		p.SetVec3("uSpecular", r.color(mat.Specular))
		p.SetFloat("uShininess", max(mat.Shininess, 1e-4))
		r.setMap(p, "uMap", "uHasMap", unitMap, mat.Map)
	case *material.Standard:
		r.setLit(p, f)
		p.SetVec3("uColor", r.color(mat.Color))
		p.SetFloat("uRoughness", mat.Roughness)
		p.SetFloat("uMetalness", mat.Metalness)
		r.setMap(p, "uMap", "uHasMap", unitMap, mat.Map)
		r.setMap(p, "uNormalMap", "uHasNormalMap", unitNormalMap, mat.NormalMap)
		p.SetVec2Array("uNormalScale", []float32{mat.NormalScale, mat.NormalScale})
	case *material.Line:
		p.SetVec3("uColor", r.color(mat.Color))
		p.SetBool("uVertexColors", mat.VertexColors)
	}

	gl.BindVertexArray(gm.vao)
	gl.DrawElementsWithOffset(gm.mode, gm.indexCount, gl.UNSIGNED_INT, 0)

	r.stats.DrawCalls++
	switch mesh.Geometry.Mode {
	case geometry.Lines:
		r.stats.Lines += mesh.Geometry.PrimitiveCount()
	default:
		r.stats.Triangles += mesh.Geometry.PrimitiveCount()
	}
}

func (r *Renderer) setLit(p *shader.Program, f *frameState) {
	p.SetVec3("uCameraPos", f.cameraPos.Array())
	p.SetVec3("uAmbient", r.lights.Ambient())
	p.SetInt("uPointLightCount", int32(r.lights.Count()))
	p.SetVec3Array("uPointLightPositions", r.lights.Positions())
	p.SetVec3Array("uPointLightColors", r.lights.Colors())
	p.SetVec2Array("uPointLightAttenuation", r.lights.Attenuation())
}

func (r *Renderer) setMap(p *shader.Program, sampler, flag string, unit uint32, t *texture.Texture) {
	ok := r.bindMap(unit, t)
	p.SetInt(sampler, int32(unit))
	p.SetBool(flag, ok)
}

func (r *Renderer) drawBackground(t *texture.Texture) {
	id, ok := r.texture(t)
	if !ok {
		return
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.DepthMask(false)

	r.background.Use()
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, id)
	r.background.SetInt("uMap", 0)
	r.background.SetFloat("uGamma", r.config.Gamma)
	gl.BindVertexArray(r.emptyVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)

	gl.DepthMask(true)
	gl.Enable(gl.DEPTH_TEST)
	r.stats.DrawCalls++
}
