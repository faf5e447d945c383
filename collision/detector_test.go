package collision

import (
	"math"
	"testing"

	"github.com/akmonengine/feather4d/actor"
	"github.com/go-gl/mathgl/mgl64"
)

func sphereAt(position mgl64.Vec4, radius float64) *actor.Hypersphere {
	return actor.NewHypersphere(position, radius)
}

// =============================================================================
// Registration Tests
// =============================================================================

func TestDetector_AddRemoveObject(t *testing.T) {
	d := NewDetector()
	a := sphereAt(mgl64.Vec4{0, 0, 0, 0}, 1)
	b := sphereAt(mgl64.Vec4{5, 0, 0, 0}, 1)
	c := sphereAt(mgl64.Vec4{10, 0, 0, 0}, 1)

	if i := d.AddObject(a); i != 0 {
		t.Errorf("first index = %d, want 0", i)
	}
	d.AddObject(b)
	if i := d.AddObjectWithKind(c, KindBox); i != 2 {
		t.Errorf("third index = %d, want 2", i)
	}

	d.RemoveObject(1)
	d.RemoveObject(-1)
	d.RemoveObject(7)

	if d.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", d.Len())
	}
	if d.Shape(1) != c || d.Kind(1) != KindBox {
		t.Error("later entries should shift down after removal")
	}
}

func TestDetector_AddObjectComputesBounds(t *testing.T) {
	d := NewDetector()
	i := d.AddObjectWithKind(actor.NewHyperbox(mgl64.Vec4{1, 0, 0, 0}, mgl64.Vec4{1, 1, 1, 1}), KindBox)

	if !almostEqual(d.Sphere(i).Radius, 2, 1e-12) {
		t.Errorf("Sphere radius = %v, want 2", d.Sphere(i).Radius)
	}
	if !vec4AlmostEqual(d.Box(i).Min, mgl64.Vec4{0, -1, -1, -1}, 1e-12) {
		t.Errorf("Box min = %v", d.Box(i).Min)
	}
}

func TestDetector_UpdateBounds(t *testing.T) {
	d := NewDetector()
	s := sphereAt(mgl64.Vec4{0, 0, 0, 0}, 1)
	i := d.AddObject(s)

	s.SetPosition(mgl64.Vec4{0, 0, 3, 0})
	if !vec4AlmostEqual(d.Sphere(i).Center, mgl64.Vec4{}, 1e-12) {
		t.Error("bounds should not move before UpdateBounds")
	}

	d.UpdateBounds()
	if !vec4AlmostEqual(d.Sphere(i).Center, mgl64.Vec4{0, 0, 3, 0}, 1e-12) {
		t.Errorf("Center = %v after UpdateBounds", d.Sphere(i).Center)
	}
}

// =============================================================================
// DetectCollisions Tests
// =============================================================================

func TestDetector_DetectCollisions_Pairs(t *testing.T) {
	d := NewDetector()
	a := sphereAt(mgl64.Vec4{0, 0, 0, 0}, 1)
	b := sphereAt(mgl64.Vec4{1.5, 0, 0, 0}, 1)
	c := sphereAt(mgl64.Vec4{10, 0, 0, 0}, 1)
	d.AddObject(a)
	d.AddObject(b)
	d.AddObject(c)

	collisions := d.DetectCollisions()

	if len(collisions) != 1 {
		t.Fatalf("got %d collisions, want 1", len(collisions))
	}
	info := collisions[0]
	if info.A != 0 || info.B != 1 || info.ShapeA != a || info.ShapeB != b {
		t.Errorf("participants = (%d, %d)", info.A, info.B)
	}
	if !vec4AlmostEqual(info.Normal, mgl64.Vec4{1, 0, 0, 0}, 1e-12) {
		t.Errorf("Normal = %v", info.Normal)
	}
}

func TestDetector_DetectCollisions_SphereBoxNormalPointsAToB(t *testing.T) {
	floor := actor.NewHyperboxFromCorners(mgl64.Vec4{-5, -3, -5, -5}, mgl64.Vec4{5, -2, 5, 5})
	ball := sphereAt(mgl64.Vec4{0, -1.6, 0, 0}, 0.5)

	tests := []struct {
		name       string
		register   func(d *Detector)
		wantNormal mgl64.Vec4
	}{
		{
			name: "box first",
			register: func(d *Detector) {
				d.AddObjectWithKind(floor, KindBox)
				d.AddObject(ball)
			},
			wantNormal: mgl64.Vec4{0, 1, 0, 0},
		},
		{
			name: "sphere first",
			register: func(d *Detector) {
				d.AddObject(ball)
				d.AddObjectWithKind(floor, KindBox)
			},
			wantNormal: mgl64.Vec4{0, -1, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDetector()
			tt.register(d)

			collisions := d.DetectCollisions()
			if len(collisions) != 1 {
				t.Fatalf("got %d collisions, want 1", len(collisions))
			}
			if !vec4AlmostEqual(collisions[0].Normal, tt.wantNormal, 1e-12) {
				t.Errorf("Normal = %v, want %v", collisions[0].Normal, tt.wantNormal)
			}
			if !almostEqual(collisions[0].Depth, 0.1, 1e-9) {
				t.Errorf("Depth = %v, want 0.1", collisions[0].Depth)
			}
		})
	}
}

func TestDetector_DetectCollisions_BoxNarrowPhaseRejects(t *testing.T) {
	// Bounding spheres of the boxes overlap but the boxes are apart on w
	d := NewDetector()
	d.AddObjectWithKind(actor.NewHyperbox(mgl64.Vec4{0, 0, 0, 0}, mgl64.Vec4{1, 1, 1, 1}), KindBox)
	d.AddObjectWithKind(actor.NewHyperbox(mgl64.Vec4{0, 0, 0, 2.5}, mgl64.Vec4{1, 1, 1, 1}), KindBox)

	if len(d.DetectCollisions()) != 0 {
		t.Error("separated boxes should not be reported")
	}
}

// =============================================================================
// Raycast Tests
// =============================================================================

func TestDetector_Raycast_Hit(t *testing.T) {
	tests := []struct {
		name      string
		direction mgl64.Vec4
		distance  float64
		radius    float64
	}{
		{"along x", mgl64.Vec4{1, 0, 0, 0}, 10, 1},
		{"along w", mgl64.Vec4{0, 0, 0, 1}, 4, 0.5},
		{"diagonal unnormalized", mgl64.Vec4{2, 2, 2, 2}, 6, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origin := mgl64.Vec4{1, -2, 3, 0}
			dir := tt.direction.Normalize()
			shape := sphereAt(origin.Add(dir.Mul(tt.distance)), tt.radius)

			d := NewDetector()
			d.AddObject(shape)

			hit, ok := d.Raycast(origin, tt.direction, math.Inf(1))
			if !ok {
				t.Fatal("expected a hit")
			}
			if hit.Shape != shape || hit.Index != 0 {
				t.Error("wrong shape hit")
			}
			if !almostEqual(hit.Distance, tt.distance-tt.radius, 1e-9) {
				t.Errorf("Distance = %v, want %v", hit.Distance, tt.distance-tt.radius)
			}
			if !vec4AlmostEqual(hit.Point, origin.Add(dir.Mul(tt.distance-tt.radius)), 1e-9) {
				t.Errorf("Point = %v", hit.Point)
			}
		})
	}
}

func TestDetector_Raycast_PointingAway(t *testing.T) {
	d := NewDetector()
	d.AddObject(sphereAt(mgl64.Vec4{5, 0, 0, 0}, 1))

	if _, ok := d.Raycast(mgl64.Vec4{}, mgl64.Vec4{-1, 0, 0, 0}, math.Inf(1)); ok {
		t.Error("ray pointing away should not hit")
	}
	if _, ok := d.Raycast(mgl64.Vec4{}, mgl64.Vec4{0, 1, 0, 0}, math.Inf(1)); ok {
		t.Error("ray passing beside the sphere should not hit")
	}
}

func TestDetector_Raycast_Nearest(t *testing.T) {
	d := NewDetector()
	far := sphereAt(mgl64.Vec4{10, 0, 0, 0}, 1)
	near := sphereAt(mgl64.Vec4{4, 0, 0, 0}, 1)
	d.AddObject(far)
	d.AddObject(near)

	hit, ok := d.Raycast(mgl64.Vec4{}, mgl64.Vec4{1, 0, 0, 0}, math.Inf(1))
	if !ok || hit.Shape != near || hit.Index != 1 {
		t.Fatalf("expected the near sphere, got %+v", hit)
	}
	if !almostEqual(hit.Distance, 3, 1e-9) {
		t.Errorf("Distance = %v, want 3", hit.Distance)
	}
}

func TestDetector_Raycast_MaxDistance(t *testing.T) {
	d := NewDetector()
	d.AddObject(sphereAt(mgl64.Vec4{10, 0, 0, 0}, 1))

	if _, ok := d.Raycast(mgl64.Vec4{}, mgl64.Vec4{1, 0, 0, 0}, 5); ok {
		t.Error("hit beyond max distance should be ignored")
	}
}

func TestDetector_Raycast_OriginInside(t *testing.T) {
	d := NewDetector()
	d.AddObject(sphereAt(mgl64.Vec4{0, 0, 0, 0}, 2))

	hit, ok := d.Raycast(mgl64.Vec4{}, mgl64.Vec4{0, 0, 1, 0}, math.Inf(1))
	if !ok {
		t.Fatal("expected the exit point")
	}
	if !almostEqual(hit.Distance, 2, 1e-9) {
		t.Errorf("Distance = %v, want 2", hit.Distance)
	}
}

func TestDetector_Raycast_ZeroDirection(t *testing.T) {
	d := NewDetector()
	d.AddObject(sphereAt(mgl64.Vec4{3, 0, 0, 0}, 1))

	hit, ok := d.Raycast(mgl64.Vec4{}, mgl64.Vec4{}, math.Inf(1))
	if !ok || !almostEqual(hit.Distance, 2, 1e-9) {
		t.Errorf("zero direction should cast along +X, got %+v, %v", hit, ok)
	}
}

// =============================================================================
// PointQuery Tests
// =============================================================================

func TestDetector_PointQuery(t *testing.T) {
	d := NewDetector()
	a := sphereAt(mgl64.Vec4{0, 0, 0, 0}, 1)
	b := sphereAt(mgl64.Vec4{1, 0, 0, 0}, 1)
	c := sphereAt(mgl64.Vec4{0, 0, 0, 5}, 1)
	d.AddObject(a)
	d.AddObject(b)
	d.AddObject(c)

	shapes := d.PointQuery(mgl64.Vec4{0.5, 0, 0, 0})
	if len(shapes) != 2 || shapes[0] != a || shapes[1] != b {
		t.Errorf("PointQuery = %v", shapes)
	}

	indices := d.PointQueryIndices(mgl64.Vec4{0, 0, 0, 5.5})
	if len(indices) != 1 || indices[0] != 2 {
		t.Errorf("PointQueryIndices = %v", indices)
	}

	if len(d.PointQuery(mgl64.Vec4{20, 20, 20, 20})) != 0 {
		t.Error("empty space should match nothing")
	}
}
