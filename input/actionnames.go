package input

import "sort"

// controlRegistry maps canonical control names to controls
// Used by the key config loader to resolve binding values
var controlRegistry map[string]Control

func init() {
	controlRegistry = buildControlRegistry()
}

func buildControlRegistry() map[string]Control {
	return map[string]Control{
		// Unbind sentinel
		"none": ControlNone,

		"move_up":    MoveUp,
		"move_down":  MoveDown,
		"move_left":  MoveLeft,
		"move_right": MoveRight,

		"aim_up":    AimUp,
		"aim_down":  AimDown,
		"aim_left":  AimLeft,
		"aim_right": AimRight,

		"pan_up":    PanUp,
		"pan_down":  PanDown,
		"pan_left":  PanLeft,
		"pan_right": PanRight,

		"rise":          Rise,
		"sink":          Sink,
		"roll_positive": RollPositive,
		"roll_negative": RollNegative,
		"zoom_in":       ZoomIn,
		"zoom_out":      ZoomOut,

		"primary":   Primary,
		"secondary": Secondary,

		"spawn":     Spawn,
		"burst":     Burst,
		"toggle":    Toggle,
		"mode":      Mode,
		"layout":    Layout,
		"decrease":  Decrease,
		"increase":  Increase,
		"finer":     Finer,
		"coarser":   Coarser,
		"slow":      Slow,
		"prev":      Prev,
		"next":      Next,
		"randomize": Randomize,

		"next_scene": NextScene,
		"prev_scene": PrevScene,
		"quit":       Quit,
	}
}

// ControlByName resolves a canonical control name
// Returns ControlNone and false if name is unknown
func ControlByName(name string) (Control, bool) {
	c, ok := controlRegistry[name]
	return c, ok
}

// String returns the canonical name, "none" for unknown values
func (c Control) String() string {
	for name, v := range controlRegistry {
		if v == c && name != "none" {
			return name
		}
	}
	return "none"
}

// ControlNames returns all registered names sorted, for documentation/validation
func ControlNames() []string {
	names := make([]string, 0, len(controlRegistry))
	for name := range controlRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
