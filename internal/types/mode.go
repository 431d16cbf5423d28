package types

type InputMode int

const (
	ModeHangul InputMode = iota
	ModeLatin
)

func (m InputMode) String() string {
	switch m {
	case ModeHangul:
		return "hangul"
	case ModeLatin:
		return "latin"
	default:
		return "unknown"
	}
}

// Label is the short indicator shown in front of the pad prompt.
func (m InputMode) Label() string {
	switch m {
	case ModeHangul:
		return "[한]"
	case ModeLatin:
		return "[EN]"
	default:
		return "[??]"
	}
}

// Toggle switches between Hangul and Latin input.
func (m InputMode) Toggle() InputMode {
	if m == ModeHangul {
		return ModeLatin
	}
	return ModeHangul
}
