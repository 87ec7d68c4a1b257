package config

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/geomlab/logging"
)

// Validate reports every out-of-range value, joined
func (c *Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		fail("log.level: %v", err)
	}
	if _, err := c.KeyTable(); err != nil {
		errs = append(errs, err)
	}

	if c.Raycast.Discs < 0 || c.Raycast.Segments < 0 || c.Raycast.Boxes < 0 {
		fail("raycast: shape counts must not be negative")
	}
	if c.Curves.Subdivisions < 1 {
		fail("curves.subdivisions must be at least 1, got %d", c.Curves.Subdivisions)
	}

	c.FlowField.GridConfig.validate("flowfield", fail)
	if c.FlowField.ActorSpeedMin < 0 || c.FlowField.ActorSpeedMax < c.FlowField.ActorSpeedMin {
		fail("flowfield: actor speed range [%g, %g] is invalid", c.FlowField.ActorSpeedMin, c.FlowField.ActorSpeedMax)
	}
	if c.FlowField.RecomputeTicks < 0 {
		fail("flowfield.recompute_ticks must not be negative, got %d", c.FlowField.RecomputeTicks)
	}

	c.Exposure.GridConfig.validate("exposure", fail)
	if !(c.Exposure.SightRange > 0) {
		fail("exposure.sight_range must be positive, got %g", c.Exposure.SightRange)
	}
	if c.Exposure.Workers < 0 {
		fail("exposure.workers must not be negative, got %d", c.Exposure.Workers)
	}

	c.Voxel.validate("voxel", fail)

	p := c.Pachinko
	if !(p.TimeStep > 0) {
		fail("pachinko.time_step must be positive, got %g", p.TimeStep)
	}
	if p.BallElasticity < 0 || p.BallElasticity > 1 {
		fail("pachinko.ball_elasticity must be in [0,1], got %g", p.BallElasticity)
	}
	if p.WallElasticity < 0 || p.WallElasticity > 1 {
		fail("pachinko.wall_elasticity must be in [0,1], got %g", p.WallElasticity)
	}
	if p.BallRadiusMin <= 0 || p.BallRadiusMax < p.BallRadiusMin {
		fail("pachinko: ball radius range [%g, %g] is invalid", p.BallRadiusMin, p.BallRadiusMax)
	}

	return errors.Join(errs...)
}

func (g GridConfig) validate(section string, fail func(string, ...any)) {
	if g.Width <= 0 || g.Height <= 0 {
		fail("%s: grid dimensions must be positive, got %dx%d", section, g.Width, g.Height)
	}
	if !(g.CellSize > 0) {
		fail("%s.cell_size must be positive, got %g", section, g.CellSize)
	}
	if g.SolidProbability < 0 || g.SolidProbability > 1 {
		fail("%s.solid_probability must be in [0,1], got %g", section, g.SolidProbability)
	}
}
