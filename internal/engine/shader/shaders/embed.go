// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// MeshVertexShader transforms lit and unlit meshes.
//
//go:embed mesh.vert
var MeshVertexShader string

// BasicFragmentShader draws unlit colour or texture.
//
//go:embed basic.frag
var BasicFragmentShader string

// PhongFragmentShader is Blinn-Phong shading with point and ambient lights.
//
//go:embed phong.frag
var PhongFragmentShader string

// StandardFragmentShader is metallic-roughness shading with optional normal mapping.
//
//go:embed standard.frag
var StandardFragmentShader string

//go:embed line.vert
var LineVertexShader string

//go:embed line.frag
var LineFragmentShader string

// BackgroundVertexShader emits a full-screen triangle.
//
//go:embed background.vert
var BackgroundVertexShader string

//go:embed background.frag
var BackgroundFragmentShader string
