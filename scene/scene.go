// Package scene holds the interactive test scenes. Each scene owns its state, reads one input
// frame per update and appends its drawing to a vertex buffer
package scene

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/lixenwraith/geomlab/input"
	"github.com/lixenwraith/geomlab/render"
)

var ErrUnknownScene = errors.New("unknown scene")

// Scene is one visual test
type Scene interface {
	Name() string
	Update(dt float64, in input.Frame)
	// Render sets the buffer camera and appends triangles; the buffer is already reset
	Render(buf *render.VertexBuffer)
	Randomize()
}

// Registry cycles the active scene and routes the scene-level controls
type Registry struct {
	log    *zap.Logger
	scenes []Scene
	active int
}

func NewRegistry(log *zap.Logger, scenes ...Scene) (*Registry, error) {
	if len(scenes) == 0 {
		return nil, fmt.Errorf("%w: registry needs at least one scene", ErrUnknownScene)
	}
	return &Registry{log: log, scenes: scenes}, nil
}

func (r *Registry) Active() Scene { return r.scenes[r.active] }
func (r *Registry) Len() int      { return len(r.scenes) }
func (r *Registry) Index() int    { return r.active }

// Names lists the scenes in display order
func (r *Registry) Names() []string {
	names := make([]string, len(r.scenes))
	for i, s := range r.scenes {
		names[i] = s.Name()
	}
	return names
}

func (r *Registry) Next() {
	r.activate((r.active + 1) % len(r.scenes))
}

func (r *Registry) Prev() {
	r.activate((r.active - 1 + len(r.scenes)) % len(r.scenes))
}

// Select activates the scene with the given name
func (r *Registry) Select(name string) error {
	for i, s := range r.scenes {
		if s.Name() == name {
			r.activate(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownScene, name)
}

func (r *Registry) activate(i int) {
	r.active = i
	r.log.Info("scene activated", zap.String("scene", r.scenes[i].Name()), zap.Int("index", i))
}

// Update handles scene switching and randomization, then updates the active scene
func (r *Registry) Update(dt float64, in input.Frame) {
	switch {
	case in.JustPressed(input.NextScene):
		r.Next()
	case in.JustPressed(input.PrevScene):
		r.Prev()
	}
	if in.JustPressed(input.Randomize) {
		r.Active().Randomize()
	}
	r.Active().Update(dt, in)
}

// Render resets buf and draws the active scene into it
func (r *Registry) Render(buf *render.VertexBuffer) {
	buf.Reset()
	r.Active().Render(buf)
}
