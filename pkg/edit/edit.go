// Package edit implements cursor-aware editing of a Hangul text buffer.
//
// Every function takes the buffer as a rune slice plus cursor or selection
// offsets (in runes) and returns a fresh buffer; the input is never modified
// and no state survives between calls. Offsets outside the buffer are clamped.
package edit

import "hanpad/pkg/hangul"

// maxWindow is the widest run of runes left of the cursor that an insert
// recomposes.
const maxWindow = 4

// Result is the outcome of one edit.
type Result struct {
	Text      []rune
	Cursor    int
	Completed bool
}

func (r Result) String() string { return string(r.Text) }

// Mapper resolves a key to a jamo; keymap.Layout satisfies it.
type Mapper interface {
	Map(key rune, shift bool) (rune, bool)
}

// Insert replaces the selection [selStart, selEnd) with r and recomposes the
// few runes left of the new cursor. Windows of 4, 3 and 2 runes ending at the
// cursor are tried in that order; the first one whose composition differs
// from its current text is replaced. Runes outside that window are untouched.
func Insert(buf []rune, selStart, selEnd int, r rune) Result {
	start, end := clampSelection(len(buf), selStart, selEnd)
	tmp := splice(buf, start, end, []rune{r})
	pos := start + 1

	for n := min(maxWindow, pos); n >= 2; n-- {
		window := tmp[pos-n : pos]
		composed := hangul.Compose(window)
		if equalRunes(composed, window) {
			continue
		}
		out := splice(tmp, pos-n, pos, composed)
		cursor := pos - n + len(composed)
		return Result{Text: out, Cursor: cursor, Completed: Completed(buf, out, cursor)}
	}
	return Result{Text: tmp, Cursor: pos, Completed: Completed(buf, tmp, pos)}
}

// InsertLiteral replaces the selection with text without composing it. It is
// used for keys that end a syllable, such as space or newline.
func InsertLiteral(buf []rune, selStart, selEnd int, text []rune) Result {
	start, end := clampSelection(len(buf), selStart, selEnd)
	out := splice(buf, start, end, text)
	cursor := start + len(text)
	return Result{Text: out, Cursor: cursor, Completed: Completed(buf, out, cursor)}
}

// TypeKey maps key through m and inserts the jamo over the selection. ok is
// false when the key has no mapping; the caller then decides whether to
// insert it literally.
func TypeKey(m Mapper, buf []rune, selStart, selEnd int, key rune, shift bool) (Result, bool) {
	jamo, ok := m.Map(key, shift)
	if !ok {
		return Result{}, false
	}
	return Insert(buf, selStart, selEnd, jamo), true
}

// Delete removes the selection and leaves the cursor at its start.
func Delete(buf []rune, selStart, selEnd int) Result {
	start, end := clampSelection(len(buf), selStart, selEnd)
	return Result{Text: splice(buf, start, end, nil), Cursor: start}
}

// Backspace removes one unit from the end of buf. A syllable loses its last
// jamo (trailing consonant first, then the vowel); any other rune is dropped.
func Backspace(buf []rune) []rune {
	n := len(buf)
	if n == 0 {
		return []rune{}
	}
	last := buf[n-1]
	out := make([]rune, 0, n+1)
	out = append(out, buf[:n-1]...)
	if !hangul.IsSyllable(last) {
		return out
	}
	parts := hangul.Decompose([]rune{last})
	return append(out, hangul.Compose(parts[:len(parts)-1])...)
}

// BackspaceAt is the backspace key at a cursor or selection. A collapsed
// selection applies Backspace to the text before the cursor; otherwise the
// selection is deleted.
func BackspaceAt(buf []rune, selStart, selEnd int) Result {
	start, end := clampSelection(len(buf), selStart, selEnd)
	if start != end {
		return Delete(buf, start, end)
	}
	if start == 0 {
		return Result{Text: append([]rune{}, buf...), Cursor: 0}
	}
	before := Backspace(buf[:start])
	out := make([]rune, 0, len(buf))
	out = append(out, before...)
	out = append(out, buf[start:]...)
	return Result{Text: out, Cursor: len(before)}
}

func clampSelection(n, start, end int) (int, int) {
	start = clamp(start, 0, n)
	end = clamp(end, 0, n)
	if start > end {
		start, end = end, start
	}
	return start, end
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// splice returns a new slice holding buf[:start] + mid + buf[end:].
func splice(buf []rune, start, end int, mid []rune) []rune {
	out := make([]rune, 0, len(buf)-(end-start)+len(mid))
	out = append(out, buf[:start]...)
	out = append(out, mid...)
	return append(out, buf[end:]...)
}

func equalRunes(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
