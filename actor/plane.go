package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Plane identifies one of the six independent rotation planes of 4D space
type Plane int

const (
	PlaneXY Plane = iota
	PlaneXZ
	PlaneXW
	PlaneYZ
	PlaneYW
	PlaneZW

	PlaneCount = 6
)

var planeNames = [PlaneCount]string{"xy", "xz", "xw", "yz", "yw", "zw"}

// planeAxes holds the two coordinate indices spanned by each plane
var planeAxes = [PlaneCount][2]int{
	PlaneXY: {0, 1},
	PlaneXZ: {0, 2},
	PlaneXW: {0, 3},
	PlaneYZ: {1, 2},
	PlaneYW: {1, 3},
	PlaneZW: {2, 3},
}

func (p Plane) String() string {
	if p < 0 || p >= PlaneCount {
		return "unknown"
	}
	return planeNames[p]
}

// Axes returns the coordinate indices spanned by the plane
func (p Plane) Axes() (int, int) {
	return planeAxes[p][0], planeAxes[p][1]
}

// ParsePlane maps a plane name ("xy" ... "zw") to its Plane.
// The boolean is false for unknown names.
func ParsePlane(name string) (Plane, bool) {
	for i, n := range planeNames {
		if n == name {
			return Plane(i), true
		}
	}
	return 0, false
}

// Rotation stores one scalar per rotation plane, indexed by Plane.
// It is used for angular velocities, torques and rotation deltas.
type Rotation [PlaneCount]float64

func (r Rotation) Add(other Rotation) Rotation {
	for i := range r {
		r[i] += other[i]
	}
	return r
}

func (r Rotation) Mul(s float64) Rotation {
	for i := range r {
		r[i] *= s
	}
	return r
}

// LenSqr is the sum of the squared plane values
func (r Rotation) LenSqr() float64 {
	sum := 0.0
	for _, v := range r {
		sum += v * v
	}
	return sum
}

func (r Rotation) IsZero() bool {
	return r == Rotation{}
}

// PlaneRotation returns the matrix rotating by angle in a single plane
func PlaneRotation(plane Plane, angle float64) mgl64.Mat4 {
	m := mgl64.Ident4()
	if angle == 0 {
		return m
	}

	i, j := plane.Axes()
	c, s := math.Cos(angle), math.Sin(angle)
	m.Set(i, i, c)
	m.Set(i, j, -s)
	m.Set(j, i, s)
	m.Set(j, j, c)

	return m
}

// RotationMatrix composes the six plane rotations of r, applied in plane order (xy first)
func RotationMatrix(r Rotation) mgl64.Mat4 {
	m := mgl64.Ident4()
	for p := PlaneXY; p < PlaneCount; p++ {
		if r[p] == 0 {
			continue
		}
		m = PlaneRotation(p, r[p]).Mul4(m)
	}
	return m
}
