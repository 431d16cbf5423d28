package edit

import "hanpad/pkg/hangul"

// Completed reports whether an edit finished a syllable: the rune left of
// cursor is a syllable block in after but was not one in before.
func Completed(before, after []rune, cursor int) bool {
	if cursor <= 0 || cursor > len(after) {
		return false
	}
	if !hangul.IsSyllable(after[cursor-1]) {
		return false
	}
	if cursor <= len(before) && hangul.IsSyllable(before[cursor-1]) {
		return false
	}
	return true
}

// PendingState describes the syllable being composed left of the cursor.
// It is a hint derived from the buffer and may be rebuilt at any time.
type PendingState struct {
	Leading  rune
	Vowel    rune
	Trailing rune
}

func (p PendingState) Empty() bool {
	return p == PendingState{}
}

// RestoreCompositionState derives the pending state from the rune before the
// cursor: a syllable yields its jamo, a bare consonant becomes the leading
// consonant, anything else (vowels included) yields the empty state.
func RestoreCompositionState(charBeforeCursor rune) PendingState {
	if l, v, t, ok := hangul.Split(charBeforeCursor); ok {
		return PendingState{Leading: l, Vowel: v, Trailing: t}
	}
	if hangul.IsConsonant(charBeforeCursor) {
		return PendingState{Leading: charBeforeCursor}
	}
	return PendingState{}
}

// StateAt is RestoreCompositionState for the rune left of cursor in buf.
func StateAt(buf []rune, cursor int) PendingState {
	if cursor <= 0 || cursor > len(buf) {
		return PendingState{}
	}
	return RestoreCompositionState(buf[cursor-1])
}
