package renderer

import (
	"fmt"

	"github.com/Faultbox/spacescene/internal/engine/lighting"
	"github.com/Faultbox/spacescene/internal/engine/material"
	"github.com/Faultbox/spacescene/internal/engine/shader"
	"github.com/Faultbox/spacescene/internal/engine/shader/shaders"
)

type programSource struct {
	kind     material.Kind
	vertex   string
	fragment string
}

func programSources() []programSource {
	return []programSource{
		{material.KindBasic, shaders.MeshVertexShader, shaders.BasicFragmentShader},
		{material.KindPhong, shaders.MeshVertexShader, shaders.PhongFragmentShader},
		{material.KindStandard, shaders.MeshVertexShader, shaders.StandardFragmentShader},
		{material.KindLine, shaders.LineVertexShader, shaders.LineFragmentShader},
	}
}

// lightDefines sizes the shader light arrays to match the light buffer.
func lightDefines() []string {
	return []string{fmt.Sprintf("MAX_POINT_LIGHTS %d", lighting.MaxPointLights)}
}

func (r *Renderer) createPrograms() error {
	for _, src := range programSources() {
		p, err := shader.NewProgram(src.kind.String(), src.vertex, shader.WithDefines(src.fragment, lightDefines()...))
		if err != nil {
			return fmt.Errorf("%s program: %w", src.kind, err)
		}
		r.programs[src.kind] = p
	}

	bg, err := shader.NewProgram("background", shaders.BackgroundVertexShader, shaders.BackgroundFragmentShader)
	if err != nil {
		return fmt.Errorf("background program: %w", err)
	}
	r.background = bg
	return nil
}
