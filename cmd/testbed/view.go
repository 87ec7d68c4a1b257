package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/geomlab/render"
	"github.com/lixenwraith/geomlab/scene"
	"github.com/lixenwraith/geomlab/status"
)

// upperHalf carries the top raster row in its foreground and the bottom row in its background
const upperHalf = '▀'

var statusStyle = tcell.StyleDefault.
	Foreground(tcell.NewRGBColor(192, 202, 245)).
	Background(tcell.NewRGBColor(36, 40, 59))

// view rasterizes the active scene into the terminal, two raster rows per cell row,
// reserving the last row for the status line
type view struct {
	screen tcell.Screen
	raster *render.Raster
	buf    *render.VertexBuffer
	stats  *status.Registry
	cols   int
	rows   int
}

func newView(screen tcell.Screen, stats *status.Registry) *view {
	v := &view{
		screen: screen,
		stats:  stats,
		raster: render.NewRaster(0, 0),
		buf:    render.NewVertexBuffer(1 << 14),
	}
	v.resize()
	return v
}

func (v *view) resize() {
	v.cols, v.rows = v.screen.Size()
	v.raster.Resize(v.cols, max(v.rows-1, 0)*2)
}

// viewSize is the cell area the raster covers
func (v *view) viewSize() (int, int) {
	return v.cols, max(v.rows-1, 1)
}

func rgb(c render.RGBA8) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (v *view) draw(registry *scene.Registry) {
	registry.Render(v.buf)
	v.raster.Clear()
	v.raster.Draw(v.buf)
	v.stats.Ints.Get("tris").Store(int64(v.buf.NumTriangles()))

	for y := 0; y < v.rows-1; y++ {
		for x := 0; x < v.cols; x++ {
			top, _ := v.raster.At(x, y*2)
			bottom, _ := v.raster.At(x, y*2+1)
			v.screen.SetContent(x, y, upperHalf, nil, tcell.StyleDefault.Foreground(rgb(top)).Background(rgb(bottom)))
		}
	}
	v.drawStatus(registry)
}

func (v *view) drawStatus(registry *scene.Registry) {
	if v.rows < 1 {
		return
	}
	y := v.rows - 1
	text := fmt.Sprintf(" %s  [%d/%d]  Tab/Shift+Tab scene  F8 randomize  Esc quit  %s",
		registry.Active().Name(), registry.Index()+1, registry.Len(), v.stats.Format())
	runes := []rune(text)
	for x := 0; x < v.cols; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		v.screen.SetContent(x, y, r, nil, statusStyle)
	}
}
