package math

// Euler is a rotation expressed as three angles in radians, applied in X, Y, Z
// order (the matrix is Rx * Ry * Rz).
type Euler struct {
	X, Y, Z float32
}

// Matrix returns the rotation matrix for e.
func (e Euler) Matrix() Mat4 {
	return RotateX(e.X).Mul(RotateY(e.Y)).Mul(RotateZ(e.Z))
}

// Add returns the component-wise sum of two rotations.
func (e Euler) Add(o Euler) Euler {
	return Euler{e.X + o.X, e.Y + o.Y, e.Z + o.Z}
}

// Compose builds a T * R * S local transform.
func Compose(position Vec3, rotation Euler, scale Vec3) Mat4 {
	return Translate(position.X, position.Y, position.Z).
		Mul(rotation.Matrix()).
		Mul(Scale(scale.X, scale.Y, scale.Z))
}
