package actor

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Shape is the rigid-shape capability a body needs from the geometry layer.
// The engine never reads topology, only position, rotation and world-space vertices.
type Shape interface {
	Position() mgl64.Vec4
	SetPosition(position mgl64.Vec4)
	// Rotate applies a rotation increment, one angle per plane
	Rotate(delta Rotation)
	// Vertices returns the current world-space vertices
	Vertices() []mgl64.Vec4
}

// Hyperbox is an oriented 4D box (a tesseract when all half-extents match)
type Hyperbox struct {
	HalfExtents mgl64.Vec4
	Transform   Transform
}

// NewHyperbox creates a box centered at position
func NewHyperbox(position mgl64.Vec4, halfExtents mgl64.Vec4) *Hyperbox {
	return &Hyperbox{
		HalfExtents: halfExtents,
		Transform:   NewTransform(position),
	}
}

// NewHyperboxFromCorners creates an axis-aligned box spanning min to max
func NewHyperboxFromCorners(min, max mgl64.Vec4) *Hyperbox {
	return NewHyperbox(min.Add(max).Mul(0.5), max.Sub(min).Mul(0.5))
}

func (b *Hyperbox) Position() mgl64.Vec4 {
	return b.Transform.Position
}

func (b *Hyperbox) SetPosition(position mgl64.Vec4) {
	b.Transform.Position = position
}

func (b *Hyperbox) Rotate(delta Rotation) {
	b.Transform.Rotate(delta)
}

// Vertices returns the 16 corners of the box in world space
func (b *Hyperbox) Vertices() []mgl64.Vec4 {
	vertices := make([]mgl64.Vec4, 0, 16)
	for i := 0; i < 16; i++ {
		var corner mgl64.Vec4
		for axis := 0; axis < 4; axis++ {
			if i&(1<<axis) != 0 {
				corner[axis] = b.HalfExtents[axis]
			} else {
				corner[axis] = -b.HalfExtents[axis]
			}
		}
		vertices = append(vertices, b.Transform.Apply(corner))
	}

	return vertices
}

// Hypersphere is a 4D ball sampled by its 8 axis-extreme points,
// so the derived bounding hypersphere matches the ball exactly
type Hypersphere struct {
	Radius    float64
	Transform Transform
}

func NewHypersphere(position mgl64.Vec4, radius float64) *Hypersphere {
	return &Hypersphere{
		Radius:    radius,
		Transform: NewTransform(position),
	}
}

func (s *Hypersphere) Position() mgl64.Vec4 {
	return s.Transform.Position
}

func (s *Hypersphere) SetPosition(position mgl64.Vec4) {
	s.Transform.Position = position
}

func (s *Hypersphere) Rotate(delta Rotation) {
	s.Transform.Rotate(delta)
}

func (s *Hypersphere) Vertices() []mgl64.Vec4 {
	vertices := make([]mgl64.Vec4, 0, 8)
	for axis := 0; axis < 4; axis++ {
		var point mgl64.Vec4
		point[axis] = s.Radius
		vertices = append(vertices, s.Transform.Apply(point), s.Transform.Apply(point.Mul(-1)))
	}

	return vertices
}
