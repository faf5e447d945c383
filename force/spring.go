package force

import (
	"github.com/akmonengine/feather4d/actor"
)

// minSpringLength is the distance under which the spring direction is undefined
const minSpringLength = 1e-4

// Spring is a damped spring between two bodies
type Spring struct {
	BodyA, BodyB *actor.RigidBody
	RestLength   float64
	Stiffness    float64
	Damping      float64
}

func NewSpring(a, b *actor.RigidBody) *Spring {
	return &Spring{
		BodyA:      a,
		BodyB:      b,
		RestLength: 1.0,
		Stiffness:  10.0,
		Damping:    0.5,
	}
}

// Apply pushes the given body's end of the spring.
// A world calls every force for every body, so each end receives its share once per sub-step.
func (s *Spring) Apply(body *actor.RigidBody, dt float64) {
	if body != s.BodyA && body != s.BodyB {
		return
	}

	diff := s.BodyB.Position().Sub(s.BodyA.Position())
	distance := diff.Len()
	if distance < minSpringLength {
		return
	}
	direction := diff.Mul(1.0 / distance)

	// Hooke's law, positive when stretched
	springForce := direction.Mul((distance - s.RestLength) * s.Stiffness)

	relativeVelocity := s.BodyB.Velocity.Sub(s.BodyA.Velocity)
	dampingForce := direction.Mul(relativeVelocity.Dot(direction) * s.Damping)

	total := springForce.Add(dampingForce)
	if body == s.BodyA {
		body.ApplyForce(total)
	} else {
		body.ApplyForce(total.Mul(-1))
	}
}

// Length returns the current distance between both ends
func (s *Spring) Length() float64 {
	return s.BodyB.Position().Sub(s.BodyA.Position()).Len()
}
