package input

// Control is one logical input a scene can query, independent of the physical key
type Control uint8

const (
	ControlNone Control = iota

	// Primary movement, ESDF
	MoveUp
	MoveDown
	MoveLeft
	MoveRight

	// Secondary movement, IJKL; yaw and pitch in 3D scenes
	AimUp
	AimDown
	AimLeft
	AimRight

	// Arrows move both handles at once
	PanUp
	PanDown
	PanLeft
	PanRight

	Rise         // w
	Sink         // q
	RollPositive // r
	RollNegative // u
	ZoomIn       // +
	ZoomOut      // -

	// Mouse
	Primary   // left button
	Secondary // right button

	Spawn     // space
	Burst     // n, continuous spawn while held
	Toggle    // b
	Mode      // p
	Layout    // x
	Decrease  // g
	Increase  // h
	Finer     // [
	Coarser   // ]
	Slow      // t
	Prev      // ,
	Next      // .
	Randomize // F8

	NextScene // Tab
	PrevScene // Shift+Tab
	Quit      // Esc, Ctrl+C

	controlCount
)

// ControlSet is a bitset over Control
type ControlSet uint64

func (s ControlSet) Has(c Control) bool {
	return c != ControlNone && s&(1<<c) != 0
}

func (s *ControlSet) Add(c Control) {
	if c != ControlNone {
		*s |= 1 << c
	}
}

func (s *ControlSet) Remove(c Control) {
	*s &^= 1 << c
}

// Controls lists set members in enum order
func (s ControlSet) Controls() []Control {
	var out []Control
	for c := ControlNone + 1; c < controlCount; c++ {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}
