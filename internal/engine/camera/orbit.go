package camera

import (
	gomath "math"

	m "github.com/Faultbox/spacescene/pkg/math"
)

// PanKey is a keyboard pan direction.
type PanKey int

const (
	PanUp PanKey = iota
	PanDown
	PanLeft
	PanRight
)

// OrbitControls orbits a camera around a target point. Input handlers only
// accumulate deltas; Update applies them and must be called once per frame.
type OrbitControls struct {
	Camera *PerspectiveCamera
	Target m.Vec3

	Enabled       bool
	EnableDamping bool
	DampingFactor float32

	RotateSpeed float32
	ZoomSpeed   float32
	PanSpeed    float32
	KeyPanSpeed float32 // pixels per key press

	MinDistance   float32
	MaxDistance   float32 // 0 means unbounded
	MinPolarAngle float32
	MaxPolarAngle float32

	viewportHeight float32

	sphericalDelta m.Spherical
	scale          float32
	panOffset      m.Vec3

	saved struct {
		target, position m.Vec3
	}
}

// NewOrbitControls attaches controls to cam, orbiting the origin.
func NewOrbitControls(cam *PerspectiveCamera) *OrbitControls {
	c := &OrbitControls{
		Camera:         cam,
		Enabled:        true,
		DampingFactor:  0.05,
		RotateSpeed:    1,
		ZoomSpeed:      1,
		PanSpeed:       1,
		KeyPanSpeed:    7,
		MaxPolarAngle:  gomath.Pi,
		viewportHeight: 1,
		scale:          1,
	}
	c.SaveState()
	cam.LookAt(c.Target)
	return c
}

// SetViewportHeight sets the pixel height used to scale drag distances.
func (c *OrbitControls) SetViewportHeight(h int) {
	if h > 0 {
		c.viewportHeight = float32(h)
	}
}

// HandleDrag orbits by a mouse drag in pixels. A full viewport height drag
// turns the camera by one revolution.
func (c *OrbitControls) HandleDrag(dx, dy float32) {
	if !c.Enabled {
		return
	}
	c.sphericalDelta.Theta -= 2 * gomath.Pi * dx / c.viewportHeight * c.RotateSpeed
	c.sphericalDelta.Phi -= 2 * gomath.Pi * dy / c.viewportHeight * c.RotateSpeed
}

// HandleZoom dollies by wheel notches. Positive values move closer.
func (c *OrbitControls) HandleZoom(notches float32) {
	if !c.Enabled || notches == 0 {
		return
	}
	step := float32(gomath.Pow(0.95, float64(c.ZoomSpeed*abs(notches))))
	if notches > 0 {
		c.scale *= step
	} else {
		c.scale /= step
	}
}

// HandlePan moves the target by a drag in pixels, in screen space.
func (c *OrbitControls) HandlePan(dx, dy float32) {
	if !c.Enabled {
		return
	}
	offset := c.Camera.Position.Sub(c.Target)
	// Half the visible height at the target's depth.
	targetDistance := offset.Length() * float32(gomath.Tan(float64(m.DegToRad(c.Camera.FOV)/2)))
	right, up := c.Camera.Basis()

	left := 2 * dx * targetDistance / c.viewportHeight * c.PanSpeed
	upward := 2 * dy * targetDistance / c.viewportHeight * c.PanSpeed
	c.panOffset = c.panOffset.Add(right.Scale(-left)).Add(up.Scale(upward))
}

// HandleKey pans with the arrow keys.
func (c *OrbitControls) HandleKey(k PanKey) {
	switch k {
	case PanUp:
		c.HandlePan(0, c.KeyPanSpeed)
	case PanDown:
		c.HandlePan(0, -c.KeyPanSpeed)
	case PanLeft:
		c.HandlePan(c.KeyPanSpeed, 0)
	case PanRight:
		c.HandlePan(-c.KeyPanSpeed, 0)
	}
}

func (c *OrbitControls) idle() bool {
	return c.sphericalDelta == (m.Spherical{}) && c.scale == 1 && c.panOffset == (m.Vec3{})
}

// Update applies pending input to the camera. It reports whether the camera
// moved. With no pending input the camera position is left untouched.
func (c *OrbitControls) Update() bool {
	if c.idle() {
		c.Camera.LookAt(c.Target)
		return false
	}
	before := c.Camera.Position

	// Work in a frame where the camera's up is +Y.
	toYUp := m.QuatFromUnitVectors(c.Camera.Up.Normalize(), m.V3(0, 1, 0))
	offset := toYUp.Rotate(c.Camera.Position.Sub(c.Target))
	s := m.SphericalFromVec3(offset)

	// A zero factor would freeze the camera with input still pending.
	damped := c.EnableDamping && c.DampingFactor > 0
	factor := float32(1)
	if damped {
		factor = c.DampingFactor
	}
	s.Theta += c.sphericalDelta.Theta * factor
	s.Phi += c.sphericalDelta.Phi * factor
	s.Phi = m.Clamp(s.Phi, c.MinPolarAngle, c.MaxPolarAngle)
	s = s.MakeSafe()

	s.Radius *= c.scale
	maxDist := c.MaxDistance
	if maxDist <= 0 {
		maxDist = float32(gomath.Inf(1))
	}
	s.Radius = m.Clamp(s.Radius, c.MinDistance, maxDist)

	c.Target = c.Target.Add(c.panOffset.Scale(factor))

	offset = toYUp.Conjugate().Rotate(s.Vec3())
	c.Camera.Position = c.Target.Add(offset)
	c.Camera.LookAt(c.Target)

	if damped {
		keep := 1 - c.DampingFactor
		c.sphericalDelta.Theta *= keep
		c.sphericalDelta.Phi *= keep
		c.panOffset = c.panOffset.Scale(keep)
		if abs(c.sphericalDelta.Theta) < m.Epsilon && abs(c.sphericalDelta.Phi) < m.Epsilon &&
			c.panOffset.Length() < m.Epsilon {
			c.sphericalDelta = m.Spherical{}
			c.panOffset = m.Vec3{}
		}
	} else {
		c.sphericalDelta = m.Spherical{}
		c.panOffset = m.Vec3{}
	}
	c.scale = 1

	return before.Distance(c.Camera.Position) > m.Epsilon
}

// Distance returns the current camera-to-target distance.
func (c *OrbitControls) Distance() float32 {
	return c.Camera.Position.Distance(c.Target)
}

// SaveState records the current target and camera position for Reset.
func (c *OrbitControls) SaveState() {
	c.saved.target = c.Target
	c.saved.position = c.Camera.Position
}

// Reset restores the last saved state and drops pending input.
func (c *OrbitControls) Reset() {
	c.Target = c.saved.target
	c.Camera.Position = c.saved.position
	c.Camera.LookAt(c.Target)
	c.sphericalDelta = m.Spherical{}
	c.panOffset = m.Vec3{}
	c.scale = 1
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
