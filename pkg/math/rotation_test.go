package math

import (
	"math"
	"testing"
)

func TestEulerOrderXYZ(t *testing.T) {
	e := Euler{X: 0.4, Y: -1.1, Z: 2.3}
	want := RotateX(e.X).Mul(RotateY(e.Y)).Mul(RotateZ(e.Z))
	if got := e.Matrix(); !got.ApproxEqual(want) {
		t.Errorf("Euler.Matrix() = %v, want %v", got, want)
	}
}

func TestEulerZeroIsIdentity(t *testing.T) {
	if got := (Euler{}).Matrix(); !got.ApproxEqual(Identity()) {
		t.Errorf("zero Euler = %v, want identity", got)
	}
}

func TestComposeAppliesScaleThenRotationThenTranslation(t *testing.T) {
	m := Compose(V3(0, 20, 0), Euler{Y: float32(math.Pi / 2)}, V3(2, 2, 2))
	got := m.MulPoint(V3(1, 0, 0))
	if want := V3(0, 20, -2); !got.ApproxEqual(want) {
		t.Errorf("Compose point = %v, want %v", got, want)
	}
}

func TestSphericalRoundTrip(t *testing.T) {
	tests := []Vec3{
		V3(-10, 0, 30),
		V3(0, 5, 0.001),
		V3(3, -4, -12),
	}
	for _, v := range tests {
		got := SphericalFromVec3(v).Vec3()
		if got.Distance(v) > 1e-3 {
			t.Errorf("round trip of %v = %v", v, got)
		}
	}
}

func TestSphericalMakeSafe(t *testing.T) {
	s := Spherical{Radius: 1, Phi: 0}.MakeSafe()
	if s.Phi <= 0 {
		t.Errorf("MakeSafe left phi at pole: %f", s.Phi)
	}
	s = Spherical{Radius: 1, Phi: math.Pi}.MakeSafe()
	if s.Phi >= math.Pi {
		t.Errorf("MakeSafe left phi at pole: %f", s.Phi)
	}
}

func TestQuatFromUnitVectors(t *testing.T) {
	tests := []struct {
		name     string
		from, to Vec3
	}{
		{"same", V3(0, 1, 0), V3(0, 1, 0)},
		{"perpendicular", V3(1, 0, 0), V3(0, 1, 0)},
		{"opposite", V3(0, 0, 1), V3(0, 0, -1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := QuatFromUnitVectors(tt.from, tt.to)
			if got := q.Rotate(tt.from); !got.ApproxEqual(tt.to) {
				t.Errorf("rotated %v = %v, want %v", tt.from, got, tt.to)
			}
			if back := q.Conjugate().Rotate(tt.to); !back.ApproxEqual(tt.from) {
				t.Errorf("inverse rotation = %v, want %v", back, tt.from)
			}
		})
	}
}

func TestColorHex(t *testing.T) {
	c := Hex(0x1E90FF)
	if !ApproxEqual(c.R, 30.0/255) || !ApproxEqual(c.G, 144.0/255) || c.B != 1 {
		t.Errorf("Hex(0x1E90FF) = %+v", c)
	}
	if got := c.Hex(); got != 0x1E90FF {
		t.Errorf("Hex round trip = %#06x", got)
	}
	if got := Hex(0x404040).Linear(1); got != Hex(0x404040) {
		t.Errorf("Linear(1) should be a no-op, got %+v", got)
	}
}

func TestVec3Basics(t *testing.T) {
	if got := V3(1, 0, 0).Cross(V3(0, 1, 0)); got != V3(0, 0, 1) {
		t.Errorf("Cross = %v", got)
	}
	if got := V3(3, 4, 0).Length(); got != 5 {
		t.Errorf("Length = %v", got)
	}
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("Normalize(zero) = %v", got)
	}
	if got := V3(0, 0, 0).Lerp(V3(10, 0, 0), 0.25); got != V3(2.5, 0, 0) {
		t.Errorf("Lerp = %v", got)
	}
}
