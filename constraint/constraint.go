// Package constraint resolves contacts between rigid bodies.
package constraint

import (
	"math"

	"github.com/akmonengine/feather4d/actor"
)

type Constraint interface {
	// Solve applies the constraint and reports whether anything was changed
	Solve() bool
}

// ComputeRestitution picks the least bouncy of both materials
func ComputeRestitution(matA, matB actor.Material) float64 {
	return math.Min(matA.Restitution, matB.Restitution)
}
