package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/geomlab/geometry"
	"github.com/lixenwraith/geomlab/navigation"
	"github.com/lixenwraith/geomlab/vmath"
)

// HeatGradient colors heat values between the field's own min and max, skipping Special
type HeatGradient struct {
	Low          colorful.Color
	High         colorful.Color
	Special      float64
	SpecialColor RGBA8
	Alpha        uint8
}

// DefaultHeatGradient runs black to white with solids in dark blue
var DefaultHeatGradient = HeatGradient{
	Low:          colorful.Color{},
	High:         colorful.Color{R: 1, G: 1, B: 1},
	Special:      navigation.HeatSpecial,
	SpecialColor: WallBlue,
	Alpha:        255,
}

// Color maps v into the gradient range [lo, hi]
func (g HeatGradient) Color(v, lo, hi float64) RGBA8 {
	if v == g.Special {
		return g.SpecialColor
	}
	t := vmath.ClampZeroToOne(vmath.InverseLerp(lo, hi, v))
	return FromColorful(g.Low.BlendLab(g.High, t), g.Alpha)
}

// AddHeatMap draws one quad per tile
func (b *VertexBuffer) AddHeatMap(grid *navigation.TileGrid, heat *navigation.TileHeatMap, g HeatGradient) {
	lo, hi := heat.RangeExcluding(g.Special)
	for y := 0; y < heat.Dims.Y; y++ {
		for x := 0; x < heat.Dims.X; x++ {
			mins, maxs := grid.TileBounds(x, y)
			b.AddAABB2D(geometry.AABB2{Mins: mins, Maxs: maxs}, g.Color(heat.At(x, y), lo, hi))
		}
	}
}

// AddSolidTiles draws every solid tile
func (b *VertexBuffer) AddSolidTiles(grid *navigation.TileGrid, color RGBA8) {
	for y := 0; y < grid.Dims.Y; y++ {
		for x := 0; x < grid.Dims.X; x++ {
			if grid.IsSolid(x, y) {
				mins, maxs := grid.TileBounds(x, y)
				b.AddAABB2D(geometry.AABB2{Mins: mins, Maxs: maxs}, color)
			}
		}
	}
}

// AddVectorField draws an arrow from each tile center, zero vectors are skipped
func (b *VertexBuffer) AddVectorField(grid *navigation.TileGrid, field *navigation.TileVectorField, color RGBA8) {
	length := grid.CellSize * 0.4
	for y := 0; y < field.Dims.Y; y++ {
		for x := 0; x < field.Dims.X; x++ {
			dir := field.At(x, y)
			if dir == vmath.Zero2 {
				continue
			}
			c := grid.TileCenter(x, y)
			b.AddArrow2D(c.Sub(dir.Mul(length)), c.Add(dir.Mul(length)), length*0.5, grid.CellSize*0.06, color)
		}
	}
}

// DivergingGradient splits the range at Pivot: values below fade from NegNear at the pivot
// to NegFar at the field minimum, values above from PosNear to PosFar at the maximum
type DivergingGradient struct {
	Pivot   float64
	NegNear colorful.Color
	NegFar  colorful.Color
	PosNear colorful.Color
	PosFar  colorful.Color

	Special      float64
	SpecialColor RGBA8
	Alpha        uint8
}

// ExposureGradient shows hidden cells in cyan to blue and exposed cells in dark red to red
var ExposureGradient = DivergingGradient{
	Pivot:        navigation.HeatUnexposed,
	NegNear:      colorful.Color{R: 0, G: 233.0 / 255, B: 233.0 / 255},
	NegFar:       colorful.Color{R: 0, G: 0, B: 1},
	PosNear:      colorful.Color{R: 70.0 / 255, G: 0, B: 0},
	PosFar:       colorful.Color{R: 1, G: 0, B: 0},
	Special:      navigation.HeatSpecial,
	SpecialColor: Yellow,
	Alpha:        255,
}

// Color maps v against the field range [lo, hi]
func (g DivergingGradient) Color(v, lo, hi float64) RGBA8 {
	if v == g.Special {
		return g.SpecialColor
	}
	if v < g.Pivot {
		t := vmath.ClampZeroToOne(vmath.InverseLerp(g.Pivot, lo, v))
		return FromColorful(g.NegNear.BlendLab(g.NegFar, t), g.Alpha)
	}
	t := vmath.ClampZeroToOne(vmath.InverseLerp(g.Pivot, hi, v))
	return FromColorful(g.PosNear.BlendLab(g.PosFar, t), g.Alpha)
}

// AddDivergingHeatMap draws one quad per tile colored around the gradient pivot
func (b *VertexBuffer) AddDivergingHeatMap(grid *navigation.TileGrid, heat *navigation.TileHeatMap, g DivergingGradient) {
	lo, hi := heat.RangeExcluding(g.Special)
	for y := 0; y < heat.Dims.Y; y++ {
		for x := 0; x < heat.Dims.X; x++ {
			mins, maxs := grid.TileBounds(x, y)
			b.AddAABB2D(geometry.AABB2{Mins: mins, Maxs: maxs}, g.Color(heat.At(x, y), lo, hi))
		}
	}
}

// AddGridLines draws tile boundaries
func (b *VertexBuffer) AddGridLines(grid *navigation.TileGrid, thickness float64, color RGBA8) {
	size := grid.WorldSize()
	for x := 0; x <= grid.Dims.X; x++ {
		px := grid.Origin[0] + float64(x)*grid.CellSize
		b.AddLineSegment2D(vmath.Vec2{px, grid.Origin[1]}, vmath.Vec2{px, grid.Origin[1] + size[1]}, thickness, color)
	}
	for y := 0; y <= grid.Dims.Y; y++ {
		py := grid.Origin[1] + float64(y)*grid.CellSize
		b.AddLineSegment2D(vmath.Vec2{grid.Origin[0], py}, vmath.Vec2{grid.Origin[0] + size[0], py}, thickness, color)
	}
}
