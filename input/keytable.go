package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps physical keys to controls
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, function keys)
	SpecialKeys map[tcell.Key]Control

	// Printable rune bindings, matched case-insensitively for letters
	Runes map[rune]Control
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Control{
			tcell.KeyUp:      PanUp,
			tcell.KeyDown:    PanDown,
			tcell.KeyLeft:    PanLeft,
			tcell.KeyRight:   PanRight,
			tcell.KeyTab:     NextScene,
			tcell.KeyBacktab: PrevScene,
			tcell.KeyF8:      Randomize,
			tcell.KeyEscape:  Quit,
			tcell.KeyCtrlC:   Quit,
		},

		Runes: map[rune]Control{
			'e': MoveUp,
			'd': MoveDown,
			's': MoveLeft,
			'f': MoveRight,

			'i': AimUp,
			'k': AimDown,
			'j': AimLeft,
			'l': AimRight,

			'w': Rise,
			'q': Sink,
			'r': RollPositive,
			'u': RollNegative,
			'+': ZoomIn,
			'=': ZoomIn,
			'-': ZoomOut,

			' ': Spawn,
			'n': Burst,
			'b': Toggle,
			'p': Mode,
			'x': Layout,
			'g': Decrease,
			'h': Increase,
			'[': Finer,
			']': Coarser,
			't': Slow,
			',': Prev,
			'.': Next,
		},
	}
}

// Lookup resolves a key event to a control
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Control {
	if ev.Key() != tcell.KeyRune {
		return kt.SpecialKeys[ev.Key()]
	}
	r := ev.Rune()
	if c, ok := kt.Runes[r]; ok {
		return c
	}
	// Shifted letters fall back to their lowercase binding
	if r >= 'A' && r <= 'Z' {
		return kt.Runes[r+('a'-'A')]
	}
	return ControlNone
}

// Clone returns a deep copy of the KeyTable with independent maps
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: cloneMap(kt.SpecialKeys),
		Runes:       cloneMap(kt.Runes),
	}
}

func cloneMap[K comparable](m map[K]Control) map[K]Control {
	c := make(map[K]Control, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
