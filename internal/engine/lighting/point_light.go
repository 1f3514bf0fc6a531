// Package lighting describes the light sources of a scene and packs them into
// the flat arrays the shaders consume.
package lighting

import (
	m "github.com/Faultbox/spacescene/pkg/math"
)

// MaxPointLights is the size of the point light arrays in the lit shaders.
const MaxPointLights = 8

// PointLight emits in all directions from its node position.
// A Distance of zero means no cutoff.
type PointLight struct {
	Color     m.Color
	Intensity float32
	Distance  float32
	Decay     float32
}

// NewPointLight returns a light with unit intensity, no cutoff and physical decay.
func NewPointLight(color m.Color) PointLight {
	return PointLight{Color: color, Intensity: 1, Decay: 2}
}

// AmbientLight lights every surface equally.
type AmbientLight struct {
	Color     m.Color
	Intensity float32
}

// NewAmbientLight returns an ambient light with unit intensity.
func NewAmbientLight(color m.Color) AmbientLight {
	return AmbientLight{Color: color, Intensity: 1}
}

// Radiance returns color times intensity, linearised when gamma > 0.
func (l PointLight) Radiance(gamma float32) m.Color {
	return radiance(l.Color, l.Intensity, gamma)
}

// Radiance returns color times intensity, linearised when gamma > 0.
func (l AmbientLight) Radiance(gamma float32) m.Color {
	return radiance(l.Color, l.Intensity, gamma)
}

func radiance(c m.Color, intensity, gamma float32) m.Color {
	if gamma > 0 {
		c = c.Linear(gamma)
	}
	return c.Scale(intensity)
}

type packedLight struct {
	position m.Vec3
	light    PointLight
}

// Buffer collects the lights of one frame for upload.
type Buffer struct {
	Gamma   float32
	ambient m.Color
	points  []packedLight
	dropped int
}

// NewBuffer creates an empty buffer. Colours are linearised with gamma when it is positive.
func NewBuffer(gamma float32) *Buffer {
	return &Buffer{
		Gamma:  gamma,
		points: make([]packedLight, 0, MaxPointLights),
	}
}

// Clear removes all lights.
func (b *Buffer) Clear() {
	b.ambient = m.Color{}
	b.points = b.points[:0]
	b.dropped = 0
}

// AddAmbient accumulates an ambient light. Several ambient lights add up.
func (b *Buffer) AddAmbient(l AmbientLight) {
	b.ambient = b.ambient.Add(l.Radiance(b.Gamma))
}

// AddPoint adds a point light at a world position.
// Returns false if the buffer is full.
func (b *Buffer) AddPoint(position m.Vec3, l PointLight) bool {
	if len(b.points) >= MaxPointLights {
		b.dropped++
		return false
	}
	b.points = append(b.points, packedLight{position: position, light: l})
	return true
}

// Count returns the number of point lights.
func (b *Buffer) Count() int { return len(b.points) }

// Dropped returns how many point lights did not fit this frame.
func (b *Buffer) Dropped() int { return b.dropped }

// Ambient returns the summed ambient radiance.
func (b *Buffer) Ambient() [3]float32 { return b.ambient.Array() }

// Positions returns positions as a flat float32 slice for GPU upload.
// Format: [x0, y0, z0, x1, y1, z1, ...]
func (b *Buffer) Positions() []float32 {
	result := make([]float32, MaxPointLights*3)
	for i, p := range b.points {
		result[i*3+0] = p.position.X
		result[i*3+1] = p.position.Y
		result[i*3+2] = p.position.Z
	}
	return result
}

// Colors returns radiance as a flat float32 slice.
func (b *Buffer) Colors() []float32 {
	result := make([]float32, MaxPointLights*3)
	for i, p := range b.points {
		c := p.light.Radiance(b.Gamma)
		result[i*3+0] = c.R
		result[i*3+1] = c.G
		result[i*3+2] = c.B
	}
	return result
}

// Attenuation returns (distance, decay) pairs.
func (b *Buffer) Attenuation() []float32 {
	result := make([]float32, MaxPointLights*2)
	for i, p := range b.points {
		result[i*2+0] = p.light.Distance
		result[i*2+1] = p.light.Decay
	}
	return result
}
