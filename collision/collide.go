// Package collision implements bounding-volume collision tests and the
// broad-phase detector used by the world.
package collision

import (
	"math"

	"github.com/akmonengine/feather4d/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// insideThreshold is the distance under which a sphere center counts as inside a box
const insideThreshold = 1e-4

// Info describes one contact between two tracked objects.
// Normal is unit length and points from A to B.
type Info struct {
	Colliding bool
	Point     mgl64.Vec4
	Normal    mgl64.Vec4
	Depth     float64

	ShapeA actor.Shape
	ShapeB actor.Shape
	// Indices of the participants in the detector, and in the owning world
	A, B int
}

// CheckSphereSphere tests two hyperspheres.
// Coincident centers fall back to the +X normal.
func CheckSphereSphere(a, b actor.BoundingHypersphere) Info {
	normal, distance := actor.NormalizeOr(b.Center.Sub(a.Center), actor.AxisX)
	sumRadii := a.Radius + b.Radius

	if distance > sumRadii {
		return Info{}
	}

	depth := sumRadii - distance
	return Info{
		Colliding: true,
		Point:     a.Center.Add(normal.Mul(a.Radius - depth/2)),
		Normal:    normal,
		Depth:     depth,
	}
}

// CheckBoxBox tests two axis-aligned hyperboxes.
// The normal follows the axis of least overlap, signed toward b.
func CheckBoxBox(a, b actor.BoundingHyperbox) Info {
	if !a.Intersects(b) {
		return Info{}
	}

	overlapMin := actor.MaxVec4(a.Min, b.Min)
	overlapMax := actor.MinVec4(a.Max, b.Max)

	axis := 0
	depth := math.Inf(1)
	for i := 0; i < 4; i++ {
		if overlap := overlapMax[i] - overlapMin[i]; overlap < depth {
			depth = overlap
			axis = i
		}
	}

	var normal mgl64.Vec4
	if a.Center()[axis] <= b.Center()[axis] {
		normal[axis] = 1
	} else {
		normal[axis] = -1
	}

	return Info{
		Colliding: true,
		Point:     overlapMin.Add(overlapMax).Mul(0.5),
		Normal:    normal,
		Depth:     depth,
	}
}

// CheckSphereBox tests a hypersphere against an axis-aligned hyperbox.
// The normal points from the box toward the sphere.
func CheckSphereBox(sphere actor.BoundingHypersphere, box actor.BoundingHyperbox) Info {
	closest := actor.ClampVec4(sphere.Center, box.Min, box.Max)
	diff := sphere.Center.Sub(closest)
	distance := diff.Len()

	if distance > sphere.Radius {
		return Info{}
	}

	if distance > insideThreshold {
		return Info{
			Colliding: true,
			Point:     closest,
			Normal:    diff.Mul(1.0 / distance),
			Depth:     sphere.Radius - distance,
		}
	}

	// Center inside the box: leave through the nearest of the 8 faces
	var normal mgl64.Vec4
	faceDistance := math.Inf(1)
	for i := 0; i < 4; i++ {
		if d := sphere.Center[i] - box.Min[i]; d < faceDistance {
			faceDistance = d
			normal = mgl64.Vec4{}
			normal[i] = -1
		}
		if d := box.Max[i] - sphere.Center[i]; d < faceDistance {
			faceDistance = d
			normal = mgl64.Vec4{}
			normal[i] = 1
		}
	}

	return Info{
		Colliding: true,
		Point:     closest,
		Normal:    normal,
		Depth:     sphere.Radius + faceDistance,
	}
}
