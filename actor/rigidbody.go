package actor

import (
	"github.com/go-gl/mathgl/mgl64"
)

// BodyType represents the type of rigid body
type BodyType int

const (
	// BodyTypeDynamic bodies are affected by forces, gravity, and collisions
	// They have finite mass and can move freely
	BodyTypeDynamic BodyType = iota

	// BodyTypeStatic bodies are immovable and have infinite mass
	// They are not affected by forces or gravity (e.g., ground, walls)
	BodyTypeStatic

	// BodyTypeKinematic bodies move with their own velocity
	// but ignore forces, torques and impulses
	BodyTypeKinematic
)

func (t BodyType) String() string {
	switch t {
	case BodyTypeDynamic:
		return "dynamic"
	case BodyTypeStatic:
		return "static"
	case BodyTypeKinematic:
		return "kinematic"
	default:
		return "unknown"
	}
}

type Material struct {
	Restitution float64 // 0= no rebound, 1= perfect restitution
	Friction    float64
	Drag        float64 // fraction of linear velocity removed per integration, 0.0 - 1.0
	AngularDrag float64 // same, per rotation plane
}

// DefaultMaterial returns a moderately bouncy material with light drag
func DefaultMaterial() Material {
	return Material{
		Restitution: 0.5,
		Friction:    0.3,
		Drag:        0.01,
		AngularDrag: 0.02,
	}
}

// RigidBody represents a rigid body in the 4D physics simulation
type RigidBody struct {
	Mass float64

	// Linear motion
	Velocity     mgl64.Vec4
	Acceleration mgl64.Vec4 // Derived during Integrate

	// Angular motion, one value per rotation plane
	AngularVelocity     Rotation
	AngularAcceleration Rotation

	accumulatedForce  mgl64.Vec4
	accumulatedTorque Rotation

	// Physical properties
	Material   Material
	BodyType   BodyType
	UseGravity bool

	// The shape moved by this body
	Shape Shape
}

// NewRigidBody creates a body with the default material, gravity enabled
func NewRigidBody(shape Shape, bodyType BodyType, mass float64) *RigidBody {
	return &RigidBody{
		Mass:       mass,
		Material:   DefaultMaterial(),
		BodyType:   bodyType,
		UseGravity: true,
		Shape:      shape,
	}
}

func (rb *RigidBody) IsStatic() bool {
	return rb.BodyType == BodyTypeStatic
}

func (rb *RigidBody) IsKinematic() bool {
	return rb.BodyType == BodyTypeKinematic
}

func (rb *RigidBody) IsDynamic() bool {
	return rb.BodyType == BodyTypeDynamic
}

// InverseMass is 0 for static bodies and non-positive masses
func (rb *RigidBody) InverseMass() float64 {
	if rb.IsStatic() || rb.Mass <= 0 {
		return 0
	}
	return 1.0 / rb.Mass
}

func (rb *RigidBody) Position() mgl64.Vec4 {
	return rb.Shape.Position()
}

func (rb *RigidBody) SetPosition(position mgl64.Vec4) {
	rb.Shape.SetPosition(position)
}

// AccumulatedForce returns the force gathered since the last Integrate
func (rb *RigidBody) AccumulatedForce() mgl64.Vec4 {
	return rb.accumulatedForce
}

// AccumulatedTorque returns the per-plane torque gathered since the last Integrate
func (rb *RigidBody) AccumulatedTorque() Rotation {
	return rb.accumulatedTorque
}

// ApplyForce accumulates a force on the center of mass, for dynamic bodies only
func (rb *RigidBody) ApplyForce(force mgl64.Vec4) {
	if rb.IsDynamic() {
		rb.accumulatedForce = rb.accumulatedForce.Add(force)
	}
}

// ApplyImpulse changes the velocity immediately, for dynamic bodies only
func (rb *RigidBody) ApplyImpulse(impulse mgl64.Vec4) {
	if rb.IsDynamic() {
		rb.Velocity = rb.Velocity.Add(impulse.Mul(rb.InverseMass()))
	}
}

// ApplyTorque accumulates a torque in one rotation plane
func (rb *RigidBody) ApplyTorque(plane Plane, torque float64) {
	if plane < 0 || plane >= PlaneCount {
		return
	}
	rb.accumulatedTorque[plane] += torque
}

// ApplyTorqueByName is ApplyTorque addressed by plane name; unknown names are ignored
func (rb *RigidBody) ApplyTorqueByName(name string, torque float64) {
	if plane, ok := ParsePlane(name); ok {
		rb.ApplyTorque(plane, torque)
	}
}

func (rb *RigidBody) ClearForces() {
	rb.accumulatedForce = mgl64.Vec4{}
	rb.accumulatedTorque = Rotation{}
}

// Integrate advances the body by dt.
// Static bodies never move, kinematic bodies move with their velocity,
// dynamic bodies first turn accumulated forces and torques into velocity.
// The accumulators are cleared for every kind of body.
func (rb *RigidBody) Integrate(dt float64) {
	defer rb.ClearForces()

	if rb.IsStatic() {
		return
	}

	if rb.IsDynamic() {
		rb.Acceleration = rb.accumulatedForce.Mul(rb.InverseMass())
		rb.Velocity = rb.Velocity.Add(rb.Acceleration.Mul(dt))
		rb.Velocity = rb.Velocity.Mul(1 - rb.Material.Drag)
	}

	rb.SetPosition(rb.Position().Add(rb.Velocity.Mul(dt)))

	if rb.IsDynamic() {
		rb.AngularAcceleration = rb.accumulatedTorque.Mul(rb.InverseMass())
		rb.AngularVelocity = rb.AngularVelocity.Add(rb.AngularAcceleration.Mul(dt))
		rb.AngularVelocity = rb.AngularVelocity.Mul(1 - rb.Material.AngularDrag)
	}

	if delta := rb.AngularVelocity.Mul(dt); !delta.IsZero() {
		rb.Shape.Rotate(delta)
	}
}

// KineticEnergy sums linear and angular energy.
// Mass stands in for the moment of inertia on every plane.
func (rb *RigidBody) KineticEnergy() float64 {
	if rb.IsStatic() {
		return 0
	}
	linear := 0.5 * rb.Mass * rb.Velocity.Dot(rb.Velocity)
	angular := 0.5 * rb.Mass * rb.AngularVelocity.LenSqr()
	return linear + angular
}

// Momentum is mass times velocity, zero for static bodies
func (rb *RigidBody) Momentum() mgl64.Vec4 {
	if rb.IsStatic() {
		return mgl64.Vec4{}
	}
	return rb.Velocity.Mul(rb.Mass)
}
