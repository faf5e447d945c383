package constraint

import (
	"math"

	"github.com/akmonengine/feather4d/actor"
	"github.com/akmonengine/feather4d/collision"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// PenetrationSlop is the penetration left uncorrected, to avoid jitter on resting contacts
	PenetrationSlop = 0.01
	// CorrectionPercent is the share of the remaining penetration removed per resolution
	CorrectionPercent = 0.2
)

var _ Constraint = (*ContactConstraint)(nil)

// ContactConstraint is a single contact between two bodies.
// Normal points from BodyA to BodyB.
type ContactConstraint struct {
	BodyA  *actor.RigidBody
	BodyB  *actor.RigidBody
	Normal mgl64.Vec4
	Depth  float64
}

func NewContactConstraint(bodyA, bodyB *actor.RigidBody, info collision.Info) *ContactConstraint {
	return &ContactConstraint{
		BodyA:  bodyA,
		BodyB:  bodyB,
		Normal: info.Normal,
		Depth:  info.Depth,
	}
}

// Solve applies an impulse along the normal, then pushes the bodies apart.
// Contacts that are already separating are left alone, so a contact reported
// in several sub-steps is not resolved twice.
func (c *ContactConstraint) Solve() bool {
	bodyA := c.BodyA
	bodyB := c.BodyB

	if bodyA.IsStatic() && bodyB.IsStatic() {
		return false
	}

	relativeVelocity := bodyB.Velocity.Sub(bodyA.Velocity)
	velocityAlongNormal := relativeVelocity.Dot(c.Normal)
	if velocityAlongNormal > 0 {
		return false
	}

	invMassSum := bodyA.InverseMass() + bodyB.InverseMass()
	if invMassSum == 0 {
		return false
	}

	restitution := ComputeRestitution(bodyA.Material, bodyB.Material)
	j := -(1 + restitution) * velocityAlongNormal / invMassSum

	impulse := c.Normal.Mul(j)
	bodyA.ApplyImpulse(impulse.Mul(-1))
	bodyB.ApplyImpulse(impulse)

	c.solvePosition(invMassSum)

	return true
}

// solvePosition removes part of the penetration (Baumgarte-style), weighted by inverse mass
func (c *ContactConstraint) solvePosition(invMassSum float64) {
	correction := c.Normal.Mul(math.Max(c.Depth-PenetrationSlop, 0) * CorrectionPercent / invMassSum)

	if !c.BodyA.IsStatic() {
		c.BodyA.SetPosition(c.BodyA.Position().Sub(correction.Mul(c.BodyA.InverseMass())))
	}
	if !c.BodyB.IsStatic() {
		c.BodyB.SetPosition(c.BodyB.Position().Add(correction.Mul(c.BodyB.InverseMass())))
	}
}
