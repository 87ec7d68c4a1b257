package physics

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/geomlab/geometry"
	"github.com/lixenwraith/geomlab/parameter"
	"github.com/lixenwraith/geomlab/vmath"
)

var (
	BallColorLight = colorful.Color{R: 0.55, G: 0.75, B: 1}
	BallColorDark  = colorful.Color{R: 0.05, G: 0.1, B: 0.55}
)

// Launcher spawns balls at Start aimed toward End
type Launcher struct {
	Start vmath.Vec2
	End   vmath.Vec2
}

// Move shifts both ends by their intents, each clamped to unit length, at PachinkoLauncherSpeed
func (l *Launcher) Move(startIntent, endIntent vmath.Vec2, dt float64) {
	speed := parameter.PachinkoLauncherSpeed * dt
	l.Start = l.Start.Add(vmath.ClampLength2(startIntent, 1).Mul(speed))
	l.End = l.End.Add(vmath.ClampLength2(endIntent, 1).Mul(speed))
}

// Velocity is the launch velocity, proportional to the launcher length
func (l *Launcher) Velocity() vmath.Vec2 {
	return l.End.Sub(l.Start).Mul(parameter.PachinkoLaunchSpeedScale)
}

// Spawn creates a ball with a random radius in [minRadius, maxRadius] and a random blue shade
func (l *Launcher) Spawn(rng *vmath.Rand, minRadius, maxRadius float64) Ball {
	return Ball{
		Center:   l.Start,
		Velocity: l.Velocity(),
		Radius:   rng.FloatInRange(minRadius, maxRadius),
		Color:    BallColorLight.BlendLab(BallColorDark, rng.Float01()).Clamped(),
	}
}

// RandomBumpers scatters the default count of each bumper kind inside box
func RandomBumpers(rng *vmath.Rand, box geometry.AABB2) []Bumper {
	total := parameter.PachinkoDiscBumperCount + parameter.PachinkoCapsuleBumperCount + parameter.PachinkoOBBBumperCount
	out := make([]Bumper, 0, total)
	at := func() vmath.Vec2 {
		uv := rng.UV()
		return vmath.Vec2{
			vmath.Lerp(box.Mins[0], box.Maxs[0], uv[0]),
			vmath.Lerp(box.Mins[1], box.Maxs[1], uv[1]),
		}
	}
	elasticity := func() float64 {
		return rng.FloatInRange(parameter.PachinkoBumperElasticityMin, parameter.PachinkoBumperElasticityMax)
	}

	for i := 0; i < parameter.PachinkoDiscBumperCount; i++ {
		r := rng.FloatInRange(parameter.PachinkoDiscBumperRadiusMin, parameter.PachinkoDiscBumperRadiusMax)
		out = append(out, NewDiscBumper(at(), r, elasticity()))
	}
	for i := 0; i < parameter.PachinkoCapsuleBumperCount; i++ {
		r := rng.FloatInRange(parameter.PachinkoCapsuleBumperRadiusMin, parameter.PachinkoCapsuleBumperRadiusMax)
		center := at()
		half := rng.FloatInRange(parameter.PachinkoCapsuleBumperHalfHeightMin, parameter.PachinkoCapsuleBumperHalfHeightMax)
		offset := vmath.FromPolarDegrees(rng.FloatInRange(0, 360), half)
		out = append(out, NewCapsuleBumper(center, offset, r, elasticity()))
	}
	for i := 0; i < parameter.PachinkoOBBBumperCount; i++ {
		center := at()
		halfDims := vmath.Vec2{
			rng.FloatInRange(parameter.PachinkoOBBBumperHalfWidthMin, parameter.PachinkoOBBBumperHalfWidthMax),
			rng.FloatInRange(parameter.PachinkoOBBBumperHalfWidthMin, parameter.PachinkoOBBBumperHalfWidthMax),
		}
		iBasis := vmath.FromPolarDegrees(rng.FloatInRange(0, 360), 1)
		out = append(out, NewOBBBumper(center, iBasis, halfDims, elasticity()))
	}
	return out
}
