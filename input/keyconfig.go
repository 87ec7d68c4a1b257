package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that are awkward as bare YAML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
	"plus":      '+',
	"minus":     '-',
	"comma":     ',',
	"period":    '.',
}

// keyNames is tcell.KeyNames reversed and lowercased
var keyNames = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames)+2)
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	m["escape"] = tcell.KeyEscape
	m["shift+tab"] = tcell.KeyBacktab
	return m
}()

// LoadKeyConfig turns a key name → control name map into a sparse override KeyTable
// Multi-character names resolve against tcell key names ("f8", "ctrl-q", "left")
// Returns error on unknown control names or invalid key names
func LoadKeyConfig(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]Control),
		Runes:       make(map[rune]Control),
	}

	for keyStr, controlName := range bindings {
		c, err := resolveControl(controlName)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", keyStr, err)
		}

		if k, ok := keyNames[strings.ToLower(keyStr)]; ok {
			kt.SpecialKeys[k] = c
			continue
		}

		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, err
		}
		kt.Runes[r] = c
	}

	return kt, nil
}

// resolveRune converts a key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid key: %q (expected single character, alias or key name)", s)
}

func resolveControl(name string) (Control, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	c, ok := ControlByName(name)
	if !ok {
		return ControlNone, fmt.Errorf("unknown control: %q", name)
	}
	return c, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by override
// Override entries bound to "none" delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}
	mergeMap(result.SpecialKeys, override.SpecialKeys)
	mergeMap(result.Runes, override.Runes)
	return result
}

func mergeMap[K comparable](base, override map[K]Control) {
	for k, v := range override {
		if v == ControlNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
