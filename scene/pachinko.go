package scene

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/geomlab/config"
	"github.com/lixenwraith/geomlab/geometry"
	"github.com/lixenwraith/geomlab/input"
	"github.com/lixenwraith/geomlab/parameter"
	"github.com/lixenwraith/geomlab/physics"
	"github.com/lixenwraith/geomlab/render"
	"github.com/lixenwraith/geomlab/vmath"
)

// Pachinko2D drops launched balls through a field of bumpers
type Pachinko2D struct {
	log *zap.Logger
	rng *vmath.Rand
	cfg config.PachinkoConfig

	world    *physics.World
	stepper  *physics.Stepper
	launcher physics.Launcher
	zoom     float64
}

func NewPachinko2D(log *zap.Logger, rng *vmath.Rand, cfg config.PachinkoConfig) *Pachinko2D {
	world := physics.NewWorld(physics.Walls{
		Left:      0,
		Right:     parameter.ScreenWidth,
		Bottom:    0,
		TopPortal: parameter.ScreenHeight + parameter.PachinkoExtraWrapHeight,
	})
	world.BallElasticity = cfg.BallElasticity
	world.WallElasticity = cfg.WallElasticity

	s := &Pachinko2D{
		log:     log,
		rng:     rng,
		cfg:     cfg,
		world:   world,
		stepper: physics.NewStepper(cfg.FixedTimestep, cfg.TimeStep),
		launcher: physics.Launcher{
			Start: vmath.Vec2{parameter.PachinkoLaunchStartX, parameter.PachinkoLaunchStartY},
			End:   vmath.Vec2{parameter.PachinkoLaunchEndX, parameter.PachinkoLaunchEndY},
		},
		zoom: 1,
	}
	s.Randomize()
	return s
}

func (s *Pachinko2D) Name() string { return "Pachinko2D" }

// Randomize clears every ball and scatters new bumpers inside the padded screen
func (s *Pachinko2D) Randomize() {
	s.world.Reset()
	s.world.GravityAccel = s.cfg.Gravity

	pad := screenSize.Mul(parameter.PachinkoScenePadding)
	box := geometry.AABB2{Mins: pad, Maxs: screenSize.Sub(pad)}
	s.world.Bumpers = append(s.world.Bumpers, physics.RandomBumpers(s.rng, box)...)
	s.log.Debug("pachinko randomized", zap.Int("bumpers", len(s.world.Bumpers)))
}

// Camera zooms about the screen center
func (s *Pachinko2D) Camera() render.Camera {
	center := screenSize.Mul(0.5)
	half := center.Mul(1 / s.zoom)
	return render.OrthoCamera(center.Sub(half), center.Add(half))
}

func (s *Pachinko2D) Update(dt float64, in input.Frame) {
	if in.IsHeld(input.Slow) {
		dt *= parameter.PachinkoSlowFactor
	}

	if in.JustPressed(input.Toggle) {
		s.world.BottomWall = !s.world.BottomWall
		s.log.Debug("bottom wall toggled", zap.Bool("solid", s.world.BottomWall))
	}
	if in.JustPressed(input.Decrease) {
		s.world.AdjustBallElasticity(-parameter.PachinkoElasticityStep)
	}
	if in.JustPressed(input.Increase) {
		s.world.AdjustBallElasticity(parameter.PachinkoElasticityStep)
	}
	if in.JustPressed(input.Finer) {
		s.stepper.ScaleStep(1 / parameter.PachinkoTimeStepScale)
	}
	if in.JustPressed(input.Coarser) {
		s.stepper.ScaleStep(parameter.PachinkoTimeStepScale)
	}
	if in.JustPressed(input.Mode) {
		s.stepper.Toggle()
		s.log.Debug("timestep mode toggled", zap.Bool("fixed", s.stepper.Fixed), zap.Float64("step", s.stepper.Step))
	}

	s.world.RollGravity(in.Axis(input.RollNegative, input.RollPositive) * parameter.PachinkoRollTurnRate * dt)

	zoom := in.Axis(input.ZoomOut, input.ZoomIn) * parameter.PachinkoZoomSpeed * dt
	s.zoom = vmath.Clamp(s.zoom*(1+zoom), parameter.PachinkoZoomMin, parameter.PachinkoZoomMax)

	pan := in.Pan()
	s.launcher.Move(in.Move().Add(pan), in.Aim().Add(pan), dt)
	if p, ok := pointerWorld(s.Camera(), in); ok {
		if in.IsHeld(input.Primary) {
			s.launcher.Start = p
		}
		if in.IsHeld(input.Secondary) {
			s.launcher.End = p
		}
	}

	if in.JustPressed(input.Spawn) || in.IsHeld(input.Burst) {
		s.world.AddBall(s.launcher.Spawn(s.rng, s.cfg.BallRadiusMin, s.cfg.BallRadiusMax))
	}

	s.stepper.Advance(dt, s.world.Step)
}

func (s *Pachinko2D) Render(buf *render.VertexBuffer) {
	buf.Camera = s.Camera()
	w := s.world.Walls

	buf.AddAABB2D(geometry.AABB2{Mins: vmath.Vec2{w.Left - 200, w.Bottom}, Maxs: vmath.Vec2{w.Left, w.TopPortal}}, render.WallBlue)
	buf.AddAABB2D(geometry.AABB2{Mins: vmath.Vec2{w.Right, w.Bottom}, Maxs: vmath.Vec2{w.Right + 200, w.TopPortal}}, render.WallBlue)
	if s.world.BottomWall {
		buf.AddAABB2D(geometry.AABB2{Mins: vmath.Vec2{w.Left, w.Bottom - 200}, Maxs: vmath.Vec2{w.Right, w.Bottom}}, render.White)
	}

	for _, b := range s.world.Bumpers {
		color := render.FromZeroToOne(b.Elasticity()).WithAlpha(parameter.PachinkoBumperAlpha)
		switch b := b.(type) {
		case physics.DiscBumper:
			buf.AddDisc2D(b.Shape.Center, b.Shape.Radius, color)
		case physics.CapsuleBumper:
			buf.AddCapsule2D(b.Shape, color)
		case physics.OBBBumper:
			buf.AddOBB2D(b.Shape, color)
		}
	}

	for _, ball := range s.world.Balls {
		buf.AddGradientDisc2D(ball.Center, ball.Radius, render.White, render.FromColorful(ball.Color, 255))
	}

	l := s.launcher
	buf.AddRing2D(l.Start, s.cfg.BallRadiusMin, 1, render.DarkBlue)
	buf.AddRing2D(l.Start, s.cfg.BallRadiusMax, 1, render.DarkBlue)
	buf.AddArrow2D(l.Start, l.End, parameter.ArrowSize, parameter.LineThickness, render.White)
}
