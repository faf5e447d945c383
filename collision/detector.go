package collision

import (
	"math"

	"github.com/akmonengine/feather4d/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// Kind selects the narrow-phase volume used for a tracked object
type Kind int

const (
	KindSphere Kind = iota
	KindBox
)

func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindBox:
		return "box"
	default:
		return "unknown"
	}
}

type entry struct {
	shape  actor.Shape
	kind   Kind
	sphere actor.BoundingHypersphere
	box    actor.BoundingHyperbox
}

func (e *entry) refresh() {
	vertices := e.shape.Vertices()
	e.sphere = actor.NewBoundingHypersphere(vertices)
	if e.kind == KindBox {
		e.box = actor.NewBoundingHyperbox(vertices)
	}
}

// Detector tracks shapes with their bounding volumes.
// Indices are positions in registration order; removing an object shifts later indices down,
// which keeps them in step with a parallel body list.
type Detector struct {
	entries []entry
}

func NewDetector() *Detector {
	return &Detector{}
}

// AddObject tracks shape with a hypersphere collider and returns its index
func (d *Detector) AddObject(shape actor.Shape) int {
	return d.AddObjectWithKind(shape, KindSphere)
}

// AddObjectWithKind tracks shape with the given collider kind and returns its index
func (d *Detector) AddObjectWithKind(shape actor.Shape, kind Kind) int {
	e := entry{shape: shape, kind: kind}
	e.refresh()
	d.entries = append(d.entries, e)

	return len(d.entries) - 1
}

// RemoveObject stops tracking the object at index; invalid indices are ignored
func (d *Detector) RemoveObject(index int) {
	if index < 0 || index >= len(d.entries) {
		return
	}
	d.entries = append(d.entries[:index], d.entries[index+1:]...)
}

func (d *Detector) Len() int {
	return len(d.entries)
}

// Shape returns the tracked shape at index
func (d *Detector) Shape(index int) actor.Shape {
	return d.entries[index].shape
}

// Kind returns the collider kind at index
func (d *Detector) Kind(index int) Kind {
	return d.entries[index].kind
}

// Sphere returns the last computed bounding hypersphere at index
func (d *Detector) Sphere(index int) actor.BoundingHypersphere {
	return d.entries[index].sphere
}

// Box returns the last computed bounding hyperbox at index, zero for sphere colliders
func (d *Detector) Box(index int) actor.BoundingHyperbox {
	return d.entries[index].box
}

// UpdateBounds recomputes every bounding volume from the current vertices.
// Shapes move between steps, so this must run before DetectCollisions.
func (d *Detector) UpdateBounds() {
	for i := range d.entries {
		d.entries[i].refresh()
	}
}

// DetectCollisions scans every pair (i < j).
// Bounding hyperspheres cull the pairs, then box colliders refine the contact.
// This is O(n²), meant for tens of bodies.
func (d *Detector) DetectCollisions() []Info {
	var collisions []Info

	for i := 0; i < len(d.entries); i++ {
		for j := i + 1; j < len(d.entries); j++ {
			a, b := &d.entries[i], &d.entries[j]

			info := CheckSphereSphere(a.sphere, b.sphere)
			if !info.Colliding {
				continue
			}

			switch {
			case a.kind == KindBox && b.kind == KindBox:
				info = CheckBoxBox(a.box, b.box)
			case a.kind == KindSphere && b.kind == KindBox:
				// normal comes out box -> sphere, that is B -> A
				info = CheckSphereBox(a.sphere, b.box)
				info.Normal = info.Normal.Mul(-1)
			case a.kind == KindBox && b.kind == KindSphere:
				info = CheckSphereBox(b.sphere, a.box)
			}
			if !info.Colliding {
				continue
			}

			info.ShapeA, info.ShapeB = a.shape, b.shape
			info.A, info.B = i, j
			collisions = append(collisions, info)
		}
	}

	return collisions
}

// Hit is the nearest intersection found by Raycast
type Hit struct {
	Shape    actor.Shape
	Index    int
	Distance float64
	Point    mgl64.Vec4
}

// Raycast returns the nearest bounding hypersphere hit along the ray, within maxDistance.
// A zero direction is replaced by +X.
func (d *Detector) Raycast(origin, direction mgl64.Vec4, maxDistance float64) (Hit, bool) {
	direction, _ = actor.NormalizeOr(direction, actor.AxisX)

	var hit Hit
	found := false
	closest := maxDistance

	for i, e := range d.entries {
		// |o + t·d - c|² = r², with |d| = 1
		oc := origin.Sub(e.sphere.Center)
		b := 2 * oc.Dot(direction)
		c := oc.Dot(oc) - e.sphere.Radius*e.sphere.Radius

		discriminant := b*b - 4*c
		if discriminant < 0 {
			continue
		}

		sqrtD := math.Sqrt(discriminant)
		t := (-b - sqrtD) / 2
		if t <= 0 {
			// origin inside the sphere, take the exit point
			t = (-b + sqrtD) / 2
		}
		if t <= 0 || t >= closest {
			continue
		}

		closest = t
		found = true
		hit = Hit{
			Shape:    e.shape,
			Index:    i,
			Distance: t,
			Point:    origin.Add(direction.Mul(t)),
		}
	}

	return hit, found
}

// PointQuery returns every shape whose bounding hypersphere contains point
func (d *Detector) PointQuery(point mgl64.Vec4) []actor.Shape {
	var shapes []actor.Shape
	for _, i := range d.PointQueryIndices(point) {
		shapes = append(shapes, d.entries[i].shape)
	}
	return shapes
}

// PointQueryIndices is PointQuery returning indices
func (d *Detector) PointQueryIndices(point mgl64.Vec4) []int {
	var indices []int
	for i, e := range d.entries {
		if e.sphere.ContainsPoint(point) {
			indices = append(indices, i)
		}
	}
	return indices
}
