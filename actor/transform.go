package actor

import "github.com/go-gl/mathgl/mgl64"

// Transform represents a position and an orientation in 4D space
type Transform struct {
	Position    mgl64.Vec4
	Orientation mgl64.Mat4
}

// NewTransform creates an identity transform at the given position
func NewTransform(position mgl64.Vec4) Transform {
	return Transform{
		Position:    position,
		Orientation: mgl64.Ident4(),
	}
}

// Rotate composes a rotation delta on top of the current orientation
func (t *Transform) Rotate(delta Rotation) {
	if delta.IsZero() {
		return
	}
	t.Orientation = RotationMatrix(delta).Mul4(t.Orientation)
}

// Apply maps a local-space point to world space
func (t Transform) Apply(local mgl64.Vec4) mgl64.Vec4 {
	return t.Orientation.Mul4x1(local).Add(t.Position)
}
