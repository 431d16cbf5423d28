package pad

import (
	"fmt"
	"strings"

	"github.com/eiannone/keyboard"
)

// reserved keys already have a pad binding and cannot toggle the mode.
var reserved = map[keyboard.Key]string{
	keyboard.KeyCtrlA:     "select all",
	keyboard.KeyCtrlC:     "cancel",
	keyboard.KeyCtrlL:     "clear",
	keyboard.KeyCtrlZ:     "undo",
	keyboard.KeyBackspace: "backspace",
	keyboard.KeyEnter:     "enter",
	keyboard.KeyEsc:       "escape",
}

// ParseToggleKey parses a toggle binding such as "ctrl+space", "ctrl+t" or
// "tab".
func ParseToggleKey(name string) (keyboard.Key, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, " ", "")
	normalized = strings.ReplaceAll(normalized, "-", "+")

	var key keyboard.Key
	switch {
	case normalized == "ctrl+space" || normalized == "ctrl+@":
		key = keyboard.KeyCtrlSpace
	case normalized == "tab":
		key = keyboard.KeyTab
	case strings.HasPrefix(normalized, "ctrl+") && len(normalized) == len("ctrl+")+1:
		letter := normalized[len(normalized)-1]
		if letter < 'a' || letter > 'z' {
			return 0, fmt.Errorf("unsupported toggle key %q", name)
		}
		key = keyboard.KeyCtrlA + keyboard.Key(letter-'a')
	default:
		return 0, fmt.Errorf("unsupported toggle key %q", name)
	}

	if action, ok := reserved[key]; ok {
		return 0, fmt.Errorf("toggle key %q is already bound to %s", name, action)
	}
	return key, nil
}
