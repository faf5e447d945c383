package feather4d

import (
	"log/slog"

	"github.com/akmonengine/feather4d/actor"
	"github.com/akmonengine/feather4d/collision"
	"github.com/akmonengine/feather4d/config"
	"github.com/akmonengine/feather4d/constraint"
	"github.com/akmonengine/feather4d/force"
	"github.com/go-gl/mathgl/mgl64"
)

// World owns the bodies and steps the simulation.
// It is not safe for concurrent use: a single caller drives Step.
type World struct {
	// List of all rigid bodies in the world, Detector entries are parallel to it
	Bodies []*actor.RigidBody
	// Forces shared by every body, applied after Gravity
	Forces   []force.Force
	Detector *collision.Detector
	// Default gravity, nil disables it
	Gravity   *force.Gravity
	TimeScale float64
	Substeps  int
	// Material given to bodies created by NewBody
	Material actor.Material

	Events Events
	Logger *slog.Logger
}

// NewWorld creates an empty world from a configuration
func NewWorld(cfg config.Config) *World {
	return &World{
		Detector: collision.NewDetector(),
		Gravity: &force.Gravity{
			Direction: cfg.Gravity.Vec4(),
			Strength:  cfg.Gravity.Strength,
		},
		TimeScale: cfg.TimeScale,
		Substeps:  cfg.Substeps,
		Material:  cfg.Material.ActorMaterial(),
		Events:    NewEvents(),
		Logger:    slog.New(slog.DiscardHandler),
	}
}

// NewDefaultWorld creates an empty world with config.Default()
func NewDefaultWorld() *World {
	return NewWorld(config.Default())
}

// NewBody creates a body using the world material; it still has to be added
func (w *World) NewBody(shape actor.Shape, bodyType actor.BodyType, mass float64) *actor.RigidBody {
	body := actor.NewRigidBody(shape, bodyType, mass)
	body.Material = w.Material
	return body
}

// AddBody adds a rigid body with a hypersphere collider and returns its index
func (w *World) AddBody(body *actor.RigidBody) int {
	return w.AddBodyWithCollider(body, collision.KindSphere)
}

// AddBodyWithCollider adds a rigid body with the given collider kind and returns its index
func (w *World) AddBodyWithCollider(body *actor.RigidBody, kind collision.Kind) int {
	if w.Detector == nil {
		w.Detector = collision.NewDetector()
	}

	w.Bodies = append(w.Bodies, body)
	index := w.Detector.AddObjectWithKind(body.Shape, kind)

	w.logger().Debug("body added", "index", index, "type", body.BodyType, "collider", kind)
	return index
}

// RemoveBody removes a rigid body from the world
func (w *World) RemoveBody(body *actor.RigidBody) {
	k := -1
	for i, b := range w.Bodies {
		if b == body {
			k = i
			break
		}
	}
	if k == -1 {
		return
	}

	w.Bodies = append(w.Bodies[:k], w.Bodies[k+1:]...)
	w.Detector.RemoveObject(k)
	w.Events.forget(body)

	w.logger().Debug("body removed", "index", k)
}

// AddForce adds a force applied to every body
func (w *World) AddForce(f force.Force) {
	w.Forces = append(w.Forces, f)
}

// RemoveForce removes a force previously added
func (w *World) RemoveForce(f force.Force) {
	for i, existing := range w.Forces {
		if existing == f {
			w.Forces = append(w.Forces[:i], w.Forces[i+1:]...)
			return
		}
	}
}

// Step advances the simulation by dt (scaled by TimeScale), split in Substeps.
// It returns every collision found, in detection order, across all sub-steps.
func (w *World) Step(dt float64) []collision.Info {
	if w.Detector == nil {
		w.Detector = collision.NewDetector()
	}

	substeps := max(1, w.Substeps)
	h := dt * w.TimeScale / float64(substeps)

	var collisions []collision.Info
	for range substeps {
		w.applyForces(h)
		w.integrate(h)

		w.Detector.UpdateBounds()
		found := w.Detector.DetectCollisions()
		w.resolve(found)

		w.Events.recordCollisions(w.Bodies, found)
		collisions = append(collisions, found...)
	}

	w.Events.flush()

	return collisions
}

func (w *World) applyForces(h float64) {
	for _, body := range w.Bodies {
		if w.Gravity != nil {
			w.Gravity.Apply(body, h)
		}
		for _, f := range w.Forces {
			f.Apply(body, h)
		}
	}
}

func (w *World) integrate(h float64) {
	for _, body := range w.Bodies {
		body.Integrate(h)
	}
}

func (w *World) resolve(collisions []collision.Info) {
	for _, info := range collisions {
		contact := constraint.NewContactConstraint(w.Bodies[info.A], w.Bodies[info.B], info)
		contact.Solve()
	}
}

// TotalEnergy sums the kinetic energy of every body
func (w *World) TotalEnergy() float64 {
	total := 0.0
	for _, body := range w.Bodies {
		total += body.KineticEnergy()
	}
	return total
}

// TotalMomentum sums the linear momentum of every body
func (w *World) TotalMomentum() mgl64.Vec4 {
	var total mgl64.Vec4
	for _, body := range w.Bodies {
		total = total.Add(body.Momentum())
	}
	return total
}

// Clear removes every body and force
func (w *World) Clear() {
	w.Bodies = nil
	w.Forces = nil
	w.Detector = collision.NewDetector()
	w.Events.reset()

	w.logger().Debug("world cleared")
}

func (w *World) logger() *slog.Logger {
	if w.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return w.Logger
}
