// Package force provides the forces a world applies to its bodies every sub-step.
package force

import (
	"github.com/akmonengine/feather4d/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// Force adds force to a body during a sub-step.
// Implementations must only call body.ApplyForce: torques and impulses belong
// to the integrator and the collision resolver.
type Force interface {
	Apply(body *actor.RigidBody, dt float64)
}

// Gravity pulls every non-static body that uses gravity, proportionally to its mass
type Gravity struct {
	Direction mgl64.Vec4
	Strength  float64
}

// NewGravity returns the default gravity: 9.81 along -Y
func NewGravity() *Gravity {
	return &Gravity{
		Direction: mgl64.Vec4{0, -1, 0, 0},
		Strength:  9.81,
	}
}

func (g *Gravity) Apply(body *actor.RigidBody, dt float64) {
	if !body.UseGravity || body.IsStatic() {
		return
	}
	body.ApplyForce(g.Direction.Mul(g.Strength * body.Mass))
}
