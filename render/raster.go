package render

import (
	"math"

	"github.com/lixenwraith/geomlab/vmath"
)

// Raster is a depth-tested color grid that triangle lists are scan-converted into
// Row 0 is the top of the view
type Raster struct {
	cells   []RGBA8
	depth   []float64
	touched []bool
	width   int
	height  int
}

// NewRaster creates a raster with the specified dimensions
func NewRaster(width, height int) *Raster {
	r := &Raster{}
	r.Resize(width, height)
	return r
}

// Resize adjusts dimensions, reallocates only if capacity insufficient
func (r *Raster) Resize(width, height int) {
	size := max(width, 0) * max(height, 0)
	if cap(r.cells) < size {
		r.cells = make([]RGBA8, size)
		r.depth = make([]float64, size)
		r.touched = make([]bool, size)
	} else {
		r.cells = r.cells[:size]
		r.depth = r.depth[:size]
		r.touched = r.touched[:size]
	}
	r.width = width
	r.height = height
	r.Clear()
}

// Clear resets all cells to Background using exponential copy
func (r *Raster) Clear() {
	if len(r.cells) == 0 {
		return
	}
	r.cells[0] = Background
	r.depth[0] = math.Inf(1)
	r.touched[0] = false
	for filled := 1; filled < len(r.cells); filled *= 2 {
		copy(r.cells[filled:], r.cells[:filled])
		copy(r.depth[filled:], r.depth[:filled])
		copy(r.touched[filled:], r.touched[:filled])
	}
}

func (r *Raster) Width() int  { return r.width }
func (r *Raster) Height() int { return r.height }

func (r *Raster) inBounds(x, y int) bool {
	return x >= 0 && x < r.width && y >= 0 && y < r.height
}

// At returns the cell color and whether any triangle covered it
func (r *Raster) At(x, y int) (RGBA8, bool) {
	if !r.inBounds(x, y) {
		return Background, false
	}
	idx := y*r.width + x
	return r.cells[idx], r.touched[idx]
}

// Draw scan-converts every triangle of buf through its camera
// Depth test is less-or-equal so later triangles at equal depth win
func (r *Raster) Draw(buf *VertexBuffer) {
	for i := 0; i+2 < len(buf.Verts); i += 3 {
		r.drawTriangle(buf.Camera, buf.Verts[i], buf.Verts[i+1], buf.Verts[i+2])
	}
}

// toScreen maps NDC to continuous cell coordinates
func (r *Raster) toScreen(ndc vmath.Vec3) vmath.Vec3 {
	return vmath.Vec3{
		(ndc[0] + 1) * 0.5 * float64(r.width),
		(1 - ndc[1]) * 0.5 * float64(r.height),
		ndc[2],
	}
}

func edge(a, b vmath.Vec3, px, py float64) float64 {
	return (b[0]-a[0])*(py-a[1]) - (b[1]-a[1])*(px-a[0])
}

func (r *Raster) drawTriangle(cam Camera, v0, v1, v2 Vertex) {
	n0, ok0 := cam.Project(v0.Pos)
	n1, ok1 := cam.Project(v1.Pos)
	n2, ok2 := cam.Project(v2.Pos)
	if !ok0 || !ok1 || !ok2 {
		return
	}
	p0, p1, p2 := r.toScreen(n0), r.toScreen(n1), r.toScreen(n2)

	area := edge(p0, p1, p2[0], p2[1])
	if vmath.NearlyZero(area) {
		return
	}

	minX := max(vmath.FloorToInt(min(p0[0], p1[0], p2[0])), 0)
	maxX := min(vmath.FloorToInt(max(p0[0], p1[0], p2[0])), r.width-1)
	minY := max(vmath.FloorToInt(min(p0[1], p1[1], p2[1])), 0)
	maxY := min(vmath.FloorToInt(max(p0[1], p1[1], p2[1])), r.height-1)

	inv := 1 / area
	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5
			// Normalized by signed area so either winding yields non-negative weights inside
			w0 := edge(p1, p2, px, py) * inv
			w1 := edge(p2, p0, px, py) * inv
			w2 := edge(p0, p1, px, py) * inv
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			z := w0*p0[2] + w1*p1[2] + w2*p2[2]
			idx := y*r.width + x
			if z > r.depth[idx] {
				continue
			}
			r.depth[idx] = z
			r.cells[idx] = r.cells[idx].Over(shade(v0.Color, v1.Color, v2.Color, w0, w1, w2))
			r.touched[idx] = true
		}
	}
}

func shade(c0, c1, c2 RGBA8, w0, w1, w2 float64) RGBA8 {
	if c0 == c1 && c1 == c2 {
		return c0
	}
	ch := func(a, b, c uint8) uint8 {
		return clamp(float64(a)*w0 + float64(b)*w1 + float64(c)*w2)
	}
	return RGBA8{ch(c0.R, c1.R, c2.R), ch(c0.G, c1.G, c2.G), ch(c0.B, c1.B, c2.B), ch(c0.A, c1.A, c2.A)}
}
