package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/akmonengine/feather4d"
	"github.com/akmonengine/feather4d/actor"
	"github.com/akmonengine/feather4d/collision"
	"github.com/akmonengine/feather4d/config"
	"github.com/go-gl/mathgl/mgl64"
)

// SetupScene creates a static floor whose top face is at y=-2, and a ball above it
func SetupScene(cfg config.Config, logger *slog.Logger) (*feather4d.World, *actor.RigidBody, *actor.RigidBody) {
	world := feather4d.NewWorld(cfg)
	world.Logger = logger

	floorShape := actor.NewHyperboxFromCorners(mgl64.Vec4{-5, -3, -5, -5}, mgl64.Vec4{5, -2, 5, 5})
	floorBody := world.NewBody(floorShape, actor.BodyTypeStatic, 0)
	world.AddBodyWithCollider(floorBody, collision.KindBox)

	ballBody := world.NewBody(actor.NewHypersphere(mgl64.Vec4{0, 2, 0, 0}, 0.5), actor.BodyTypeDynamic, 1)
	// Spin in a plane involving W, invisible from any 3D slice along it
	ballBody.AngularVelocity[actor.PlaneXW] = 1
	world.AddBody(ballBody)

	return world, floorBody, ballBody
}

func run(cfg config.Config, steps int, logger *slog.Logger) {
	world, floorBody, ballBody := SetupScene(cfg, logger)

	world.Events.Subscribe(feather4d.COLLISION_ENTER, func(event feather4d.Event) {
		e := event.(feather4d.CollisionEnterEvent)
		logger.Info("collision enter", "depth", e.Info.Depth, "normal", e.Info.Normal)
	})
	world.Events.Subscribe(feather4d.COLLISION_EXIT, func(event feather4d.Event) {
		logger.Info("collision exit")
	})

	fmt.Printf("Floor: position %v\n", floorBody.Position())
	fmt.Printf("Ball: position %v\n", ballBody.Position())
	fmt.Printf("Gravity: %v x %.2f\n", world.Gravity.Direction, world.Gravity.Strength)
	fmt.Println()

	const dt float64 = 1.0 / 60.0
	for step := 0; step < steps; step++ {
		collisions := world.Step(dt)

		if step%30 == 0 || step == steps-1 {
			fmt.Printf("step %4d  y=%+.4f  vy=%+.4f  contacts=%d  energy=%.4f\n",
				step+1,
				ballBody.Position().Y(),
				ballBody.Velocity.Y(),
				len(collisions),
				world.TotalEnergy())
		}
	}
}

func main() {
	configPath := flag.String("config", "", "YAML physics config, defaults are used when empty")
	steps := flag.Int("steps", 300, "number of 1/60s steps to simulate")
	verbose := flag.Bool("v", false, "log world lifecycle at debug level")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := config.Default()
	cfg.Gravity.Strength = 5
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Error("load config", "err", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	run(cfg, *steps, logger)
}
