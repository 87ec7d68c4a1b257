package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/geomlab/vmath"
)

// Frame is the input snapshot handed to a scene once per update
type Frame struct {
	Held    ControlSet
	Pressed ControlSet

	// Pointer is the last mouse position in normalized device coordinates, +Y up
	Pointer    vmath.Vec2
	HasPointer bool
}

func (f Frame) IsHeld(c Control) bool      { return f.Held.Has(c) }
func (f Frame) JustPressed(c Control) bool { return f.Pressed.Has(c) }

// Axis returns -1, 0 or 1 from a pair of opposing controls
func (f Frame) Axis(neg, pos Control) float64 {
	v := 0.0
	if f.Held.Has(neg) {
		v--
	}
	if f.Held.Has(pos) {
		v++
	}
	return v
}

// Move is the ESDF intent, +Y up
func (f Frame) Move() vmath.Vec2 {
	return vmath.Vec2{f.Axis(MoveLeft, MoveRight), f.Axis(MoveDown, MoveUp)}
}

// Aim is the IJKL intent, +Y up
func (f Frame) Aim() vmath.Vec2 {
	return vmath.Vec2{f.Axis(AimLeft, AimRight), f.Axis(AimDown, AimUp)}
}

// Pan is the arrow key intent, +Y up
func (f Frame) Pan() vmath.Vec2 {
	return vmath.Vec2{f.Axis(PanLeft, PanRight), f.Axis(PanDown, PanUp)}
}

// Tracker folds terminal events into frames
// Terminals report no key releases, so a key counts as held until its hold window
// lapses without another event. The first press gets a longer window to cover the
// autorepeat delay; repeats refresh with the shorter one.
type Tracker struct {
	table         *KeyTable
	initialWindow time.Duration
	repeatWindow  time.Duration

	heldUntil [controlCount]time.Time
	mouseHeld ControlSet
	pressed   ControlSet

	pointer    vmath.Vec2
	hasPointer bool

	width, height int
}

// NewTracker creates a tracker resolving keys through table
func NewTracker(table *KeyTable, initialWindow, repeatWindow time.Duration) *Tracker {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Tracker{
		table:         table,
		initialWindow: initialWindow,
		repeatWindow:  repeatWindow,
		width:         1,
		height:        1,
	}
}

// SetScreenSize sets the cell grid used to normalize mouse positions
func (t *Tracker) SetScreenSize(width, height int) {
	t.width = max(width, 1)
	t.height = max(height, 1)
}

func (t *Tracker) held(c Control, now time.Time) bool {
	return t.mouseHeld.Has(c) || now.Before(t.heldUntil[c])
}

// HandleKey records a key event and returns the control it maps to
func (t *Tracker) HandleKey(ev *tcell.EventKey, now time.Time) Control {
	c := t.table.Lookup(ev)
	if c == ControlNone {
		return c
	}
	if t.held(c, now) {
		t.heldUntil[c] = now.Add(t.repeatWindow)
		return c
	}
	t.pressed.Add(c)
	t.heldUntil[c] = now.Add(t.initialWindow)
	return c
}

// HandleMouse records button transitions and the pointer position
func (t *Tracker) HandleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	t.pointer = vmath.Vec2{
		(float64(x)+0.5)/float64(t.width)*2 - 1,
		1 - (float64(y)+0.5)/float64(t.height)*2,
	}
	t.hasPointer = true

	buttons := ev.Buttons()
	t.setButton(Primary, buttons&tcell.ButtonPrimary != 0)
	t.setButton(Secondary, buttons&tcell.ButtonSecondary != 0)
}

func (t *Tracker) setButton(c Control, down bool) {
	switch {
	case down && !t.mouseHeld.Has(c):
		t.mouseHeld.Add(c)
		t.pressed.Add(c)
	case !down:
		t.mouseHeld.Remove(c)
	}
}

// Frame snapshots held state at now and consumes pressed edges
func (t *Tracker) Frame(now time.Time) Frame {
	f := Frame{
		Held:       t.mouseHeld,
		Pressed:    t.pressed,
		Pointer:    t.pointer,
		HasPointer: t.hasPointer,
	}
	for c := ControlNone + 1; c < controlCount; c++ {
		if now.Before(t.heldUntil[c]) {
			f.Held.Add(c)
		}
	}
	// An edge always reads as held in its own frame
	f.Held |= t.pressed
	t.pressed = 0
	return f
}
