// Package config loads the testbed configuration from YAML over documented defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/geomlab/input"
	"github.com/lixenwraith/geomlab/logging"
	"github.com/lixenwraith/geomlab/parameter"
	"github.com/lixenwraith/geomlab/spline"
)

// ErrInvalid marks a configuration value outside its accepted range
var ErrInvalid = errors.New("invalid config")

// Config is the root document. Unset fields keep their Default values
type Config struct {
	Log logging.Options `yaml:"log"`

	// Seed drives every scene RNG; 0 seeds from the clock
	Seed uint64 `yaml:"seed"`

	// Scene names the scene shown first; empty starts at the first registered scene
	Scene string `yaml:"scene"`

	// Keys overrides bindings: key name to control name, "none" unbinds
	Keys map[string]string `yaml:"keys"`

	Raycast   RaycastConfig   `yaml:"raycast"`
	Curves    CurvesConfig    `yaml:"curves"`
	FlowField FlowFieldConfig `yaml:"flowfield"`
	Exposure  ExposureConfig  `yaml:"exposure"`
	Voxel     GridConfig      `yaml:"voxel"`
	Pachinko  PachinkoConfig  `yaml:"pachinko"`
}

// GridConfig places a tile grid in the 2D world
type GridConfig struct {
	Width            int     `yaml:"width"`
	Height           int     `yaml:"height"`
	CellSize         float64 `yaml:"cell_size"`
	OriginX          float64 `yaml:"origin_x"`
	OriginY          float64 `yaml:"origin_y"`
	SolidProbability float64 `yaml:"solid_probability"`
}

type RaycastConfig struct {
	Discs    int `yaml:"discs"`
	Segments int `yaml:"segments"`
	Boxes    int `yaml:"boxes"`
}

type CurvesConfig struct {
	Subdivisions int `yaml:"subdivisions"`
}

type FlowFieldConfig struct {
	GridConfig `yaml:",inline"`

	ActorSpeedMin float64 `yaml:"actor_speed_min"`
	ActorSpeedMax float64 `yaml:"actor_speed_max"`

	// RecomputeTicks throttles dirty-marked rebuilds
	RecomputeTicks int `yaml:"recompute_ticks"`
}

type ExposureConfig struct {
	GridConfig `yaml:",inline"`

	SightRange float64 `yaml:"sight_range"`

	// Workers bounds the raycast fan-out, 0 uses GOMAXPROCS
	Workers int `yaml:"workers"`
}

type PachinkoConfig struct {
	FixedTimestep  bool    `yaml:"fixed_timestep"`
	TimeStep       float64 `yaml:"time_step"`
	BallElasticity float64 `yaml:"ball_elasticity"`
	WallElasticity float64 `yaml:"wall_elasticity"`
	Gravity        float64 `yaml:"gravity"`
	BallRadiusMin  float64 `yaml:"ball_radius_min"`
	BallRadiusMax  float64 `yaml:"ball_radius_max"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Log: logging.DefaultOptions(),
		Raycast: RaycastConfig{
			Discs:    parameter.RaycastDiscCount,
			Segments: parameter.RaycastSegmentCount,
			Boxes:    parameter.RaycastAABBCount,
		},
		Curves: CurvesConfig{
			Subdivisions: spline.DefaultSubdivisions,
		},
		FlowField: FlowFieldConfig{
			GridConfig: GridConfig{
				Width:            parameter.NavFlowGridWidth,
				Height:           parameter.NavFlowGridHeight,
				CellSize:         parameter.NavFlowCellSize,
				OriginX:          parameter.NavFlowOriginX,
				OriginY:          parameter.NavFlowOriginY,
				SolidProbability: parameter.NavFlowSolidProbability,
			},
			ActorSpeedMin:  parameter.NavFlowActorSpeedMin,
			ActorSpeedMax:  parameter.NavFlowActorSpeedMax,
			RecomputeTicks: parameter.NavFlowMinTicksBetweenCompute,
		},
		Exposure: ExposureConfig{
			GridConfig: GridConfig{
				Width:            parameter.NavExposureGridWidth,
				Height:           parameter.NavExposureGridHeight,
				CellSize:         parameter.NavExposureCellSize,
				OriginX:          parameter.NavExposureOriginX,
				OriginY:          parameter.NavExposureOriginY,
				SolidProbability: parameter.NavExposureSolidProbability,
			},
			SightRange: parameter.NavExposureSightRange,
		},
		Voxel: GridConfig{
			Width:            parameter.NavVoxelGridWidth,
			Height:           parameter.NavVoxelGridHeight,
			CellSize:         parameter.NavVoxelCellSize,
			OriginX:          parameter.NavVoxelOriginX,
			OriginY:          parameter.NavVoxelOriginY,
			SolidProbability: parameter.NavVoxelSolidProbability,
		},
		Pachinko: PachinkoConfig{
			FixedTimestep:  true,
			TimeStep:       parameter.PachinkoFixedTimeStep,
			BallElasticity: parameter.PachinkoBallElasticity,
			WallElasticity: parameter.PachinkoWallElasticity,
			Gravity:        parameter.PachinkoGravityAccel,
			BallRadiusMin:  parameter.PachinkoBallRadiusMin,
			BallRadiusMax:  parameter.PachinkoBallRadiusMax,
		},
	}
}

// Parse decodes YAML over the defaults and validates the result
// Unknown fields are rejected so typos do not silently fall back to defaults
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses the file at path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config read: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// KeyTable merges the key overrides onto the default bindings
func (c *Config) KeyTable() (*input.KeyTable, error) {
	base := input.DefaultKeyTable()
	if len(c.Keys) == 0 {
		return base, nil
	}
	override, err := input.LoadKeyConfig(c.Keys)
	if err != nil {
		return nil, fmt.Errorf("%w: keys: %w", ErrInvalid, err)
	}
	return input.MergeKeyTable(base, override), nil
}
