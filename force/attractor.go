package force

import (
	"math"

	"github.com/akmonengine/feather4d/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// minAttractorDistance avoids the singularity at the attractor itself
const minAttractorDistance = 0.01

// Attractor pulls bodies toward a fixed point, or pushes them away with a negative strength.
// The magnitude is Strength / distance^Falloff, scaled by the body mass.
type Attractor struct {
	Position mgl64.Vec4
	Strength float64
	Falloff  float64
}

func NewAttractor(position mgl64.Vec4) *Attractor {
	return &Attractor{
		Position: position,
		Strength: 1.0,
		Falloff:  2.0,
	}
}

func (a *Attractor) Apply(body *actor.RigidBody, dt float64) {
	if body.IsStatic() {
		return
	}

	diff := a.Position.Sub(body.Position())
	distance := diff.Len()
	if distance < minAttractorDistance {
		return
	}

	direction := diff.Mul(1.0 / distance)
	magnitude := a.Strength / math.Pow(distance, a.Falloff)

	body.ApplyForce(direction.Mul(magnitude * body.Mass))
}
