package app

import (
	"fmt"

	"hanpad/pkg/keymap"
)

// ResolveLayout loads the named layout and applies the [keymap] overrides
// from the config file.
func ResolveLayout(name string, overrides map[string]string) (keymap.Layout, error) {
	layout, err := keymap.ByName(name)
	if err != nil {
		return keymap.Layout{}, err
	}
	if len(overrides) == 0 {
		return layout, nil
	}
	parsed, err := keymap.ParseOverrides(overrides)
	if err != nil {
		return keymap.Layout{}, fmt.Errorf("keymap: %w", err)
	}
	return layout.WithOverrides(parsed), nil
}
