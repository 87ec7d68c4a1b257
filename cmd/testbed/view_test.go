package main

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lixenwraith/geomlab/config"
	"github.com/lixenwraith/geomlab/scene"
	"github.com/lixenwraith/geomlab/status"
)

func newTestView(t *testing.T, cols, rows int) *view {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)
	return newView(screen, status.NewRegistry())
}

func TestViewSize(t *testing.T) {
	v := newTestView(t, 40, 11)
	assert.Equal(t, 40, v.raster.Width())
	assert.Equal(t, 20, v.raster.Height())

	w, h := v.viewSize()
	assert.Equal(t, 40, w)
	assert.Equal(t, 10, h)
}

func TestViewDrawsStatusLine(t *testing.T) {
	v := newTestView(t, 120, 11)
	scenes, err := scene.Build(config.Default(), zap.NewNop(), 1)
	require.NoError(t, err)
	registry, err := scene.NewRegistry(zap.NewNop(), scenes...)
	require.NoError(t, err)

	v.draw(registry)

	var line strings.Builder
	for x := range 120 {
		r, _, _, _ := v.screen.GetContent(x, 10)
		line.WriteRune(r)
	}
	assert.Contains(t, line.String(), registry.Active().Name())
	assert.Contains(t, line.String(), "[1/10]")
	assert.Contains(t, line.String(), "tris:")

	r, _, style, _ := v.screen.GetContent(0, 0)
	assert.Equal(t, upperHalf, r)
	fg, bg, _ := style.Decompose()
	assert.True(t, fg.Valid())
	assert.True(t, bg.Valid())
	assert.Positive(t, v.buf.NumTriangles())
	assert.Equal(t, int64(v.buf.NumTriangles()), v.stats.Ints.Get("tris").Load())
}
