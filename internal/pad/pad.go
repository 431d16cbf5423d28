// Package pad runs the interactive composition pad on a terminal.
package pad

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/eiannone/keyboard"
	"github.com/rivo/uniseg"

	"hanpad/internal/types"
	"hanpad/pkg/ime"
	"hanpad/pkg/keymap"
)

// ErrCancelled is returned by Run when the user presses Ctrl+C.
var ErrCancelled = errors.New("cancelled")

// Action tells Run what to do after a key.
type Action int

const (
	ActionContinue Action = iota
	ActionSubmit
	ActionCancel
)

type Pad struct {
	composer *ime.Composer
	toggle   keyboard.Key
	out      io.Writer
	logger   *slog.Logger
}

// New creates a pad that draws on out. out should be the terminal (stderr
// in hanpad) so the submitted text can go to stdout.
func New(layout keymap.Layout, toggle keyboard.Key, out io.Writer, logger *slog.Logger) *Pad {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pad{composer: ime.NewComposer(layout), toggle: toggle, out: out, logger: logger}
}

func (p *Pad) Composer() *ime.Composer { return p.composer }

// Run reads keys until Enter or Esc and returns the text. The line is
// redrawn after every key.
func (p *Pad) Run(reader KeyReader) (string, error) {
	p.draw()
	for {
		r, key, err := reader.ReadKey()
		if err != nil {
			p.finish()
			return "", fmt.Errorf("read key: %w", err)
		}
		switch p.HandleKey(r, key) {
		case ActionSubmit:
			p.finish()
			return p.composer.Enter(), nil
		case ActionCancel:
			p.finish()
			return "", ErrCancelled
		}
		p.draw()
	}
}

// HandleKey applies one key press to the session.
func (p *Pad) HandleKey(r rune, key keyboard.Key) Action {
	c := p.composer
	if r == 0 && key == p.toggle {
		mode := c.ToggleMode()
		p.logger.Debug("input mode", "mode", mode.String())
		return ActionContinue
	}
	if r != 0 {
		c.TypeRune(r)
		return ActionContinue
	}

	switch key {
	case keyboard.KeyCtrlC:
		return ActionCancel
	case keyboard.KeyEnter, keyboard.KeyEsc:
		return ActionSubmit
	case keyboard.KeyCtrlZ:
		if !c.Undo() {
			p.logger.Debug("nothing to undo")
		}
	case keyboard.KeyCtrlA:
		c.SelectAll()
	case keyboard.KeyCtrlL:
		c.Clear()
	case keyboard.KeyBackspace, keyboard.KeyBackspace2:
		c.Backspace()
	case keyboard.KeySpace:
		c.Space()
	case keyboard.KeyArrowLeft:
		c.MoveLeft()
	case keyboard.KeyArrowRight:
		c.MoveRight()
	case keyboard.KeyHome:
		c.Home()
	case keyboard.KeyEnd:
		c.End()
	default:
		p.logger.Debug("key ignored", "key", int(key))
	}
	return ActionContinue
}

func (p *Pad) draw() {
	fmt.Fprint(p.out, Render(ViewOf(p.composer)))
}

func (p *Pad) finish() {
	fmt.Fprint(p.out, "\r\x1b[2K")
}

// View is what the pad line shows.
type View struct {
	Mode     types.InputMode
	Text     []rune
	Cursor   int
	SelStart int
	SelEnd   int
	// Column is the display width of the text before the cursor.
	Column int
}

func ViewOf(c *ime.Composer) View {
	start, end := c.Selection()
	return View{
		Mode:     c.Mode(),
		Text:     []rune(c.Text()),
		Cursor:   c.Cursor(),
		SelStart: start,
		SelEnd:   end,
		Column:   c.CursorColumn(),
	}
}

// Render draws v as one terminal line: the mode label, the text with the
// selection in reverse video, and the cursor placed by display width.
func Render(v View) string {
	var b strings.Builder
	prefix := v.Mode.Label() + " "
	b.WriteString("\r\x1b[2K")
	b.WriteString(prefix)
	if v.SelStart < v.SelEnd {
		b.WriteString(string(v.Text[:v.SelStart]))
		b.WriteString("\x1b[7m")
		b.WriteString(string(v.Text[v.SelStart:v.SelEnd]))
		b.WriteString("\x1b[0m")
		b.WriteString(string(v.Text[v.SelEnd:]))
	} else {
		b.WriteString(string(v.Text))
	}
	b.WriteString("\r")
	if col := uniseg.StringWidth(prefix) + v.Column; col > 0 {
		fmt.Fprintf(&b, "\x1b[%dC", col)
	}
	return b.String()
}
