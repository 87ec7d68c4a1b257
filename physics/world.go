package physics

import (
	"github.com/lixenwraith/geomlab/parameter"
	"github.com/lixenwraith/geomlab/vmath"
)

// Walls bounds the world. Left and Right are always solid; Bottom is a floor or a drop-through
// edge that wraps balls to TopPortal
type Walls struct {
	Left      float64
	Right     float64
	Bottom    float64
	TopPortal float64
}

// World holds the disc simulation state. The ball list is never pruned
type World struct {
	Balls   []Ball
	Bumpers []Bumper
	Walls   Walls

	BottomWall     bool
	BallElasticity float64
	WallElasticity float64

	GravityAccel   float64
	GravityDegrees float64
}

// NewWorld creates an empty world with default gravity and elasticities
func NewWorld(walls Walls) *World {
	return &World{
		Balls:          make([]Ball, 0, 1500),
		Walls:          walls,
		BottomWall:     true,
		BallElasticity: parameter.PachinkoBallElasticity,
		WallElasticity: parameter.PachinkoWallElasticity,
		GravityAccel:   parameter.PachinkoGravityAccel,
		GravityDegrees: parameter.PachinkoGravityDegrees,
	}
}

// Gravity returns the acceleration vector
func (w *World) Gravity() vmath.Vec2 {
	return vmath.FromPolarDegrees(w.GravityDegrees, w.GravityAccel)
}

// RollGravity rotates the gravity direction
func (w *World) RollGravity(deltaDegrees float64) {
	w.GravityDegrees += deltaDegrees
}

// AdjustBallElasticity shifts ball elasticity, clamped to [0,1]
func (w *World) AdjustBallElasticity(delta float64) {
	w.BallElasticity = vmath.ClampZeroToOne(w.BallElasticity + delta)
}

// Reset drops every ball and bumper and restores default gravity
func (w *World) Reset() {
	w.Balls = w.Balls[:0]
	w.Bumpers = w.Bumpers[:0]
	w.GravityAccel = parameter.PachinkoGravityAccel
	w.GravityDegrees = parameter.PachinkoGravityDegrees
}

func (w *World) AddBall(b Ball) {
	w.Balls = append(w.Balls, b)
}

// Step advances the simulation by dt
// Order: integrate, ball pairs, ball-bumper pairs, walls
func (w *World) Step(dt float64) {
	w.integrate(dt)
	w.bounceBalls()
	w.bounceBumpers()
	w.bounceWalls()
}

func (w *World) integrate(dt float64) {
	accel := w.Gravity().Mul(dt)
	for i := range w.Balls {
		b := &w.Balls[i]
		b.Velocity = b.Velocity.Add(accel)
		b.Center = b.Center.Add(b.Velocity.Mul(dt))
	}
}

func (w *World) bounceBalls() {
	e := w.BallElasticity * w.BallElasticity
	for i := range w.Balls {
		a := &w.Balls[i]
		for j := i + 1; j < len(w.Balls); j++ {
			b := &w.Balls[j]
			BounceDiscOffEachOther(&a.Center, &b.Center, a.Radius, b.Radius, &a.Velocity, &b.Velocity, e)
		}
	}
}

func (w *World) bounceBumpers() {
	for _, bumper := range w.Bumpers {
		for i := range w.Balls {
			BounceBallOffBumper(bumper, &w.Balls[i], w.BallElasticity)
		}
	}
}

func (w *World) bounceWalls() {
	e := w.BallElasticity * w.WallElasticity
	for i := range w.Balls {
		BounceBallOffWalls(&w.Balls[i], w.Walls, w.BottomWall, e)
	}
}

// BounceBallOffWalls clamps the ball inside the side walls and the floor, reflecting the velocity
// component only when it points into the wall. Without a floor a ball fully below Bottom is moved
// to TopPortal+radius with its velocity untouched
func BounceBallOffWalls(b *Ball, walls Walls, bottomWall bool, elasticity float64) {
	if b.Center[0]-b.Radius < walls.Left {
		b.Center[0] = walls.Left + b.Radius
		if b.Velocity[0] < 0 {
			b.Velocity[0] *= -elasticity
		}
	}
	if b.Center[0]+b.Radius > walls.Right {
		b.Center[0] = walls.Right - b.Radius
		if b.Velocity[0] > 0 {
			b.Velocity[0] *= -elasticity
		}
	}

	if bottomWall {
		if b.Center[1]-b.Radius < walls.Bottom {
			b.Center[1] = walls.Bottom + b.Radius
			if b.Velocity[1] < 0 {
				b.Velocity[1] *= -elasticity
			}
		}
		return
	}
	if b.Center[1]+b.Radius < walls.Bottom {
		b.Center[1] = walls.TopPortal + b.Radius
	}
}
