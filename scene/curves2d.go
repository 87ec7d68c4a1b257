package scene

import (
	"cmp"
	"math"
	"slices"

	"go.uber.org/zap"

	"github.com/lixenwraith/geomlab/config"
	"github.com/lixenwraith/geomlab/geometry"
	"github.com/lixenwraith/geomlab/input"
	"github.com/lixenwraith/geomlab/parameter"
	"github.com/lixenwraith/geomlab/render"
	"github.com/lixenwraith/geomlab/spline"
	"github.com/lixenwraith/geomlab/vmath"
)

const curvesReferenceSubdivisions = 64

var (
	curvesPaneColor      = render.RGBA8{R: 40, G: 42, B: 58, A: 255}
	curvesHighlightColor = render.RGBA8{R: 128, G: 0, B: 0, A: 255}
	curvesPlotColor      = render.RGBA8{R: 20, G: 20, B: 28, A: 255}
)

// Curves2D shows the easing table, a cubic Bezier and a Catmull-Rom spline, each compared
// against its arc-length and piecewise-linear resampling
type Curves2D struct {
	log *zap.Logger
	rng *vmath.Rand
	cam render.Camera

	topLeft, topRight, bottom geometry.AABB2

	easing       int
	subdivisions int
	highlight    bool
	time         float64

	cubic        *spline.Spline2D
	cubicLinear  *spline.Spline2D
	spline       *spline.Spline2D
	splineLinear *spline.Spline2D
}

func NewCurves2D(log *zap.Logger, rng *vmath.Rand, cfg config.CurvesConfig) *Curves2D {
	w := parameter.ScreenWidth
	panelH := parameter.ScreenHeight * (1 - parameter.CurvesTitleFraction)
	pad := parameter.CurvesPadding

	s := &Curves2D{
		log:          log,
		rng:          rng,
		cam:          screenCamera(),
		topLeft:      geometry.AABB2{Mins: vmath.Vec2{pad, panelH/2 + pad}, Maxs: vmath.Vec2{w/2 - pad, panelH - pad}},
		topRight:     geometry.AABB2{Mins: vmath.Vec2{w/2 + pad, panelH/2 + pad}, Maxs: vmath.Vec2{w - pad, panelH - pad}},
		bottom:       geometry.AABB2{Mins: vmath.Vec2{pad, pad}, Maxs: vmath.Vec2{w - pad, panelH/2 - pad}},
		subdivisions: cfg.Subdivisions,
		cubic:        spline.New[vmath.Vec2](),
		cubicLinear:  spline.New[vmath.Vec2](),
		spline:       spline.New[vmath.Vec2](),
		splineLinear: spline.New[vmath.Vec2](),
	}
	s.Randomize()
	return s
}

func (s *Curves2D) Name() string { return "Curves2D" }

// Randomize places a new cubic in the top right pane and a new spline in the bottom pane
func (s *Curves2D) Randomize() {
	var p [4]vmath.Vec2
	for i := range p {
		p[i] = randomInBox(s.rng, s.topRight)
	}
	s.cubic.Clear()
	_ = s.cubic.AddPoint(spline.PointFromNextGuide(0, p[0], p[1]))
	_ = s.cubic.AddPoint(spline.PointFromPrevGuide(1, p[3], p[2]))

	n := s.rng.IntInRange(parameter.CurvesSplinePointsMin, parameter.CurvesSplinePointsMax)
	positions := make([]vmath.Vec2, n)
	for i := range positions {
		positions[i] = randomInBox(s.rng, s.bottom)
	}
	slices.SortFunc(positions, func(a, b vmath.Vec2) int { return cmp.Compare(a[0], b[0]) })
	if err := s.spline.SetFromCatmullRom(positions, false); err != nil {
		s.log.Error("spline fit failed", zap.Error(err))
	}

	s.rebuildLinear()
	s.log.Debug("curves randomized", zap.Int("spline_points", n))
}

// rebuildLinear resamples both curves into straight-segment splines at the current subdivision count
func (s *Curves2D) rebuildLinear() {
	resample := func(dst, src *spline.Spline2D) {
		dst.Clear()
		for i, pos := range src.PositionsWithSubdivisions(nil, s.subdivisions) {
			_ = dst.AddPoint(spline.NewPoint(float64(i), pos))
		}
		dst.SetSubdivisionsPerSegment(1)
	}
	resample(s.cubicLinear, s.cubic)
	resample(s.splineLinear, s.spline)
}

func (s *Curves2D) Update(dt float64, in input.Frame) {
	s.time += dt

	n := len(vmath.Easings)
	if in.JustPressed(input.Prev) {
		s.easing = (s.easing - 1 + n) % n
	}
	if in.JustPressed(input.Next) {
		s.easing = (s.easing + 1) % n
	}

	subdivisions := s.subdivisions
	if in.JustPressed(input.Finer) {
		subdivisions = max(subdivisions/2, 1)
	}
	if in.JustPressed(input.Coarser) {
		subdivisions = min(subdivisions*2, spline.DefaultSubdivisions*16)
	}
	if subdivisions != s.subdivisions {
		s.subdivisions = subdivisions
		s.rebuildLinear()
		s.log.Debug("curve subdivisions changed", zap.Int("subdivisions", subdivisions))
	}

	if in.JustPressed(input.Layout) {
		s.highlight = !s.highlight
	}

	if in.IsHeld(input.Secondary) {
		if p, ok := pointerWorld(s.cam, in); ok {
			s.dragGuide(p)
		}
	}
}

// dragGuide moves the cubic guide nearest p onto it, leaving the endpoints in place
func (s *Curves2D) dragGuide(p vmath.Vec2) {
	pts := s.cubic.Points()
	i := 0
	if vmath.DistSq2(pts[1].PrevGuide, p) < vmath.DistSq2(pts[0].NextGuide, p) {
		i = 1
	}
	prev, next := pts[i].PrevGuide, pts[i].NextGuide
	if i == 0 {
		next = p
	} else {
		prev = p
	}
	if err := s.cubic.SetGuides(i, prev, next); err != nil {
		s.log.Error("guide drag failed", zap.Error(err))
		return
	}
	s.rebuildLinear()
}

// Easing returns the active easing entry
func (s *Curves2D) Easing() vmath.NamedEasing {
	return vmath.Easings[s.easing]
}

func (s *Curves2D) Render(buf *render.VertexBuffer) {
	buf.Camera = s.cam

	pane := curvesPaneColor
	if s.highlight {
		pane = curvesHighlightColor
	}
	for _, b := range []geometry.AABB2{s.topLeft, s.topRight, s.bottom} {
		buf.AddAABB2D(b, pane)
	}

	s.renderEasing(buf)

	t := math.Mod(s.time*parameter.CurvesTimeScale, 1)
	buf.AddLineStrip2D([]vmath.Vec2{
		s.cubic.Points()[0].Position, s.cubic.Points()[0].NextGuide,
		s.cubic.Points()[1].PrevGuide, s.cubic.Points()[1].Position,
	}, 1, render.DarkBlue)
	s.renderCurve(buf, s.cubic, s.cubicLinear, t)

	segments := float64(s.spline.NumSegments())
	key := math.Mod(s.time*parameter.CurvesTimeScale, segments)
	pts := s.spline.Points()
	for i := 1; i < len(pts)-1; i++ {
		tangent := s.spline.TangentAtInputKey(pts[i].InputKey).Mul(parameter.CurvesTangentLength)
		buf.AddArrow2D(pts[i].Position, pts[i].Position.Add(tangent), parameter.CurvesTangentSize, parameter.CurvesTangentWidth, render.Red)
	}
	s.renderCurve(buf, s.spline, s.splineLinear, key/segments)
}

// renderEasing plots the active easing function in a square inside the top left pane
func (s *Curves2D) renderEasing(buf *render.VertexBuffer) {
	box := s.topLeft
	box.Mins[1] += 0.11 * (box.Maxs[1] - box.Mins[1])
	size := box.Maxs.Sub(box.Mins)
	side := min(size[0], size[1])
	center := box.Center()
	plot := geometry.NewAABB2FromCenter(center, vmath.Vec2{side / 2, side / 2})
	buf.AddAABB2D(plot, curvesPlotColor)

	f := s.Easing().Func
	toPlot := func(x, y float64) vmath.Vec2 {
		return plot.Mins.Add(vmath.Vec2{x, y}.Mul(side))
	}
	curve := func(n int) []vmath.Vec2 {
		pts := make([]vmath.Vec2, 0, n+1)
		for i := 0; i <= n; i++ {
			x := float64(i) / float64(n)
			pts = append(pts, toPlot(x, f(x)))
		}
		return pts
	}
	buf.AddLineStrip2D(curve(curvesReferenceSubdivisions), parameter.CurvesLineWidth, render.Grey)
	buf.AddLineStrip2D(curve(s.subdivisions), parameter.CurvesLineWidth, render.Green)

	t := math.Mod(s.time*parameter.CurvesTimeScale, 1)
	dot := toPlot(t, f(t))
	guide := render.White.WithAlpha(64)
	buf.AddLineSegment2D(toPlot(0, f(t)), dot, 1, guide)
	buf.AddLineSegment2D(toPlot(t, 0), dot, 1, guide)
	buf.AddDisc2D(dot, parameter.CurvesPointRadius, render.White)
}

// renderCurve draws a curve at reference and current density with three travelling dots at fraction
// t: white by input key, red by arc length, green by arc length along the linear resampling
func (s *Curves2D) renderCurve(buf *render.VertexBuffer, curve, linear *spline.Spline2D, t float64) {
	buf.AddLineStrip2D(curve.PositionsWithSubdivisions(nil, curvesReferenceSubdivisions), parameter.CurvesLineWidth, render.Grey)
	buf.AddLineStrip2D(linear.PositionsWithSubdivisions(nil, 1), parameter.CurvesLineWidth, render.Green)
	for _, p := range curve.Points() {
		buf.AddDisc2D(p.Position, parameter.CurvesPointRadius, render.LightBlue)
	}

	key := vmath.Lerp(curve.FirstKey(), curve.LastKey(), t)
	buf.AddDisc2D(curve.PositionAtInputKey(key), parameter.CurvesPointRadius, render.White)
	buf.AddDisc2D(curve.PositionAtInputKey(curve.InputKeyAtDistance(t*curve.Length())), parameter.CurvesPointRadius, render.Red)
	buf.AddDisc2D(linear.PositionAtInputKey(linear.InputKeyAtDistance(t*linear.Length())), parameter.CurvesPointRadius, render.Green)
}
