package actor

import "github.com/go-gl/mathgl/mgl64"

// BoundingHypersphere is an enclosing hypersphere derived from a vertex set
type BoundingHypersphere struct {
	Center mgl64.Vec4
	Radius float64
}

// NewBoundingHypersphere centers the sphere on the vertex centroid and uses the
// farthest vertex as radius. It always contains every vertex but is not minimal.
// An empty vertex set yields a zero sphere at the origin.
func NewBoundingHypersphere(vertices []mgl64.Vec4) BoundingHypersphere {
	if len(vertices) == 0 {
		return BoundingHypersphere{}
	}

	var center mgl64.Vec4
	for _, v := range vertices {
		center = center.Add(v)
	}
	center = center.Mul(1.0 / float64(len(vertices)))

	radius := 0.0
	for _, v := range vertices {
		if d := v.Sub(center).Len(); d > radius {
			radius = d
		}
	}

	return BoundingHypersphere{Center: center, Radius: radius}
}

// ContainsPoint checks if a point lies inside or on the sphere
func (s BoundingHypersphere) ContainsPoint(point mgl64.Vec4) bool {
	return point.Sub(s.Center).Len() <= s.Radius
}

// Intersects checks if two spheres overlap or touch
func (s BoundingHypersphere) Intersects(other BoundingHypersphere) bool {
	return other.Center.Sub(s.Center).Len() <= s.Radius+other.Radius
}

// BoundingHyperbox represents an axis-aligned bounding hyperbox
type BoundingHyperbox struct {
	Min mgl64.Vec4
	Max mgl64.Vec4
}

// NewBoundingHyperbox computes the componentwise min/max of the vertices.
// An empty vertex set yields a zero box at the origin.
func NewBoundingHyperbox(vertices []mgl64.Vec4) BoundingHyperbox {
	if len(vertices) == 0 {
		return BoundingHyperbox{}
	}

	box := BoundingHyperbox{Min: vertices[0], Max: vertices[0]}
	for _, v := range vertices[1:] {
		box.Min = MinVec4(box.Min, v)
		box.Max = MaxVec4(box.Max, v)
	}

	return box
}

func (b BoundingHyperbox) Center() mgl64.Vec4 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Extents returns the half-size of the box on every axis
func (b BoundingHyperbox) Extents() mgl64.Vec4 {
	return b.Max.Sub(b.Min).Mul(0.5)
}

// ContainsPoint checks if a point is inside the box, boundary included
func (b BoundingHyperbox) ContainsPoint(point mgl64.Vec4) bool {
	for i := 0; i < 4; i++ {
		if point[i] < b.Min[i] || point[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// Intersects checks if two boxes overlap on all four axes
func (b BoundingHyperbox) Intersects(other BoundingHyperbox) bool {
	for i := 0; i < 4; i++ {
		if b.Max[i] < other.Min[i] || b.Min[i] > other.Max[i] {
			return false
		}
	}
	return true
}
