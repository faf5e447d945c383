// Package config holds the tunable settings of a physics world.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/akmonengine/feather4d/actor"
	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid physics config")

// Gravity is the default gravity force of the world
type Gravity struct {
	Direction [4]float64 `yaml:"direction"`
	Strength  float64    `yaml:"strength"`
}

// Material is the default material given to new bodies
type Material struct {
	Restitution float64 `yaml:"restitution"`
	Friction    float64 `yaml:"friction"`
	Drag        float64 `yaml:"drag"`
	AngularDrag float64 `yaml:"angular_drag"`
}

type Config struct {
	Gravity   Gravity  `yaml:"gravity"`
	TimeScale float64  `yaml:"time_scale"`
	Substeps  int      `yaml:"substeps"`
	Material  Material `yaml:"material"`
}

// Default returns 9.81 gravity along -Y, real time, 4 substeps and the default material
func Default() Config {
	m := actor.DefaultMaterial()
	return Config{
		Gravity: Gravity{
			Direction: [4]float64{0, -1, 0, 0},
			Strength:  9.81,
		},
		TimeScale: 1.0,
		Substeps:  4,
		Material: Material{
			Restitution: m.Restitution,
			Friction:    m.Friction,
			Drag:        m.Drag,
			AngularDrag: m.AngularDrag,
		},
	}
}

// Parse decodes YAML on top of the defaults, so omitted keys keep their default value
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse physics config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses a YAML file
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read physics config %q: %w", path, err)
	}
	return Parse(data)
}

func (c Config) Validate() error {
	if c.Substeps < 1 {
		return fmt.Errorf("%w: substeps must be at least 1, got %d", ErrInvalid, c.Substeps)
	}
	if c.TimeScale < 0 {
		return fmt.Errorf("%w: time_scale must not be negative, got %v", ErrInvalid, c.TimeScale)
	}
	if err := checkUnit("restitution", c.Material.Restitution); err != nil {
		return err
	}
	if err := checkUnit("drag", c.Material.Drag); err != nil {
		return err
	}
	if err := checkUnit("angular_drag", c.Material.AngularDrag); err != nil {
		return err
	}
	if c.Material.Friction < 0 {
		return fmt.Errorf("%w: friction must not be negative, got %v", ErrInvalid, c.Material.Friction)
	}
	return nil
}

func checkUnit(name string, v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("%w: %s must be within [0, 1], got %v", ErrInvalid, name, v)
	}
	return nil
}

func (g Gravity) Vec4() mgl64.Vec4 {
	return mgl64.Vec4(g.Direction)
}

// ActorMaterial converts to the material used by rigid bodies
func (m Material) ActorMaterial() actor.Material {
	return actor.Material{
		Restitution: m.Restitution,
		Friction:    m.Friction,
		Drag:        m.Drag,
		AngularDrag: m.AngularDrag,
	}
}
