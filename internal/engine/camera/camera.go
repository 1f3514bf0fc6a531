// Package camera provides the perspective camera and the orbit controller that
// drives it from mouse and keyboard input.
package camera

import (
	m "github.com/Faultbox/spacescene/pkg/math"
)

// PerspectiveCamera is a pinhole camera with a vertical field of view in degrees.
type PerspectiveCamera struct {
	FOV    float32
	Aspect float32
	Near   float32
	Far    float32

	Position m.Vec3
	Up       m.Vec3

	target m.Vec3
}

// NewPerspective creates a camera at the origin looking down -Z.
func NewPerspective(fov, aspect, near, far float32) *PerspectiveCamera {
	if aspect <= 0 {
		aspect = 1
	}
	return &PerspectiveCamera{
		FOV:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
		Up:     m.V3(0, 1, 0),
		target: m.V3(0, 0, -1),
	}
}

// SetPosition moves the camera while keeping it pointed in the same direction.
func (c *PerspectiveCamera) SetPosition(p m.Vec3) {
	dir := c.target.Sub(c.Position)
	c.Position = p
	c.target = p.Add(dir)
}

// LookAt points the camera at target.
func (c *PerspectiveCamera) LookAt(target m.Vec3) {
	c.target = target
}

// Target returns the point the camera looks at.
func (c *PerspectiveCamera) Target() m.Vec3 { return c.target }

// Direction returns the unit view direction.
func (c *PerspectiveCamera) Direction() m.Vec3 {
	return c.target.Sub(c.Position).Normalize()
}

// SetAspect updates the aspect ratio. Non-positive values are ignored so a
// minimised window does not produce a degenerate projection.
func (c *PerspectiveCamera) SetAspect(aspect float32) {
	if aspect > 0 {
		c.Aspect = aspect
	}
}

// ProjectionMatrix returns the perspective projection.
func (c *PerspectiveCamera) ProjectionMatrix() m.Mat4 {
	return m.Perspective(m.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// ViewMatrix returns the world-to-camera transform.
func (c *PerspectiveCamera) ViewMatrix() m.Mat4 {
	return m.LookAt(c.Position, c.target, c.Up)
}

// Basis returns the camera's right and up vectors in world space.
func (c *PerspectiveCamera) Basis() (right, up m.Vec3) {
	f := c.Direction()
	right = f.Cross(c.Up).Normalize()
	up = right.Cross(f)
	return right, up
}
