package ime

import (
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"

	"hanpad/internal/types"
	"hanpad/pkg/edit"
	"hanpad/pkg/keymap"
)

// Composer is an editing session: the text, a cursor and a selection anchor.
// It keeps no composition state of its own; everything the edit engine needs
// is recovered from the text around the cursor.
type Composer struct {
	layout  keymap.Layout
	mode    types.InputMode
	text    []rune
	cursor  int
	anchor  int
	history history
}

func NewComposer(layout keymap.Layout) *Composer {
	c := &Composer{layout: layout, mode: types.ModeHangul, text: make([]rune, 0, 32)}
	c.history.reset(c.snapshot())
	return c
}

// TypeKey handles a key as a terminal reports it (upper case means shift).
// It returns false when the key is not a jamo in the current mode.
func (c *Composer) TypeKey(key rune) bool {
	return c.Press(unicode.ToLower(key), unicode.IsUpper(key))
}

// Press handles a key with an explicit shift state, as an on-screen keyboard
// reports it.
func (c *Composer) Press(key rune, shift bool) bool {
	if c.mode != types.ModeHangul {
		return false
	}
	start, end := c.Selection()
	res, ok := edit.TypeKey(c.layout, c.text, start, end, key, shift)
	if !ok {
		return false
	}
	c.apply(res, false)
	return true
}

// TypeRune types r as a jamo when possible and inserts it literally
// otherwise.
func (c *Composer) TypeRune(r rune) {
	if c.TypeKey(r) {
		return
	}
	if !unicode.IsControl(r) {
		c.AppendLiteral(r)
	}
}

// AppendLiteral inserts r at the cursor without composing it.
func (c *Composer) AppendLiteral(r rune) {
	start, end := c.Selection()
	c.apply(edit.InsertLiteral(c.text, start, end, []rune{r}), true)
}

func (c *Composer) Space() {
	c.AppendLiteral(' ')
}

// Backspace deletes the selection, or peels one jamo left of the cursor.
func (c *Composer) Backspace() {
	start, end := c.Selection()
	c.apply(edit.BackspaceAt(c.text, start, end), start != end)
}

// Enter returns the text and starts a fresh session.
func (c *Composer) Enter() string {
	line := c.Text()
	c.Reset()
	return line
}

func (c *Composer) FlushText() string {
	return c.Text()
}

// Reset empties the text and the undo history.
func (c *Composer) Reset() {
	c.text = c.text[:0]
	c.cursor, c.anchor = 0, 0
	c.history.reset(c.snapshot())
}

// Clear empties the text but keeps it undoable.
func (c *Composer) Clear() {
	if len(c.text) == 0 {
		return
	}
	c.apply(edit.Result{Text: []rune{}}, true)
}

// Load replaces the session text with s (NFC-normalised so decomposed input
// reaches the engine as syllable blocks) and puts the cursor at the end.
func (c *Composer) Load(s string) {
	c.text = []rune(norm.NFC.String(s))
	c.cursor = len(c.text)
	c.anchor = c.cursor
	c.history.reset(c.snapshot())
}

func (c *Composer) Undo() bool {
	s, ok := c.history.undo(c.snapshot())
	if !ok {
		return false
	}
	c.restore(s)
	return true
}

func (c *Composer) Mode() types.InputMode { return c.mode }

func (c *Composer) ToggleMode() types.InputMode {
	c.mode = c.mode.Toggle()
	return c.mode
}

func (c *Composer) SetMode(mode types.InputMode) { c.mode = mode }

func (c *Composer) MoveLeft() {
	start, end := c.Selection()
	if start != end {
		c.setCursor(start)
		return
	}
	c.setCursor(c.cursor - 1)
}

func (c *Composer) MoveRight() {
	start, end := c.Selection()
	if start != end {
		c.setCursor(end)
		return
	}
	c.setCursor(c.cursor + 1)
}

func (c *Composer) Home() { c.setCursor(0) }

func (c *Composer) End() { c.setCursor(len(c.text)) }

// MoveTo places the cursor at offset pos, clamped to the text.
func (c *Composer) MoveTo(pos int) { c.setCursor(pos) }

func (c *Composer) SelectAll() {
	c.anchor = 0
	c.cursor = len(c.text)
}

// Select sets the selection; the cursor ends up at end.
func (c *Composer) Select(start, end int) {
	c.anchor = clamp(start, len(c.text))
	c.cursor = clamp(end, len(c.text))
}

// Selection returns the ordered selection bounds; they are equal when
// nothing is selected.
func (c *Composer) Selection() (int, int) {
	if c.anchor <= c.cursor {
		return c.anchor, c.cursor
	}
	return c.cursor, c.anchor
}

func (c *Composer) Text() string { return string(c.text) }

func (c *Composer) Cursor() int { return c.cursor }

// CursorColumn is the display width of the text left of the cursor.
func (c *Composer) CursorColumn() int {
	return uniseg.StringWidth(string(c.text[:c.cursor]))
}

// Pending reports the syllable being composed left of the cursor.
func (c *Composer) Pending() edit.PendingState {
	return edit.StateAt(c.text, c.cursor)
}

func (c *Composer) apply(res edit.Result, checkpoint bool) {
	if checkpoint {
		c.history.push(c.snapshot())
	}
	c.text = res.Text
	c.cursor = res.Cursor
	c.anchor = res.Cursor
	if checkpoint || res.Completed {
		c.history.push(c.snapshot())
	}
}

func (c *Composer) setCursor(pos int) {
	c.cursor = clamp(pos, len(c.text))
	c.anchor = c.cursor
}

func (c *Composer) snapshot() snapshot {
	return snapshot{text: string(c.text), cursor: c.cursor}
}

func (c *Composer) restore(s snapshot) {
	c.text = []rune(s.text)
	c.setCursor(s.cursor)
}

func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v > n {
		return n
	}
	return v
}
