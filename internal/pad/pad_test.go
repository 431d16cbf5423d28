package pad

import (
	"bytes"
	"io"
	"testing"

	"github.com/eiannone/keyboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hanpad/internal/logging"
	"hanpad/internal/types"
	"hanpad/pkg/keymap"
)

type keyPress struct {
	r   rune
	key keyboard.Key
}

type fakeReader struct {
	keys   []keyPress
	closed bool
}

func (f *fakeReader) ReadKey() (rune, keyboard.Key, error) {
	if len(f.keys) == 0 {
		return 0, 0, io.EOF
	}
	k := f.keys[0]
	f.keys = f.keys[1:]
	return k.r, k.key, nil
}

func (f *fakeReader) Close() error {
	f.closed = true
	return nil
}

func typed(s string) []keyPress {
	out := make([]keyPress, 0, len(s))
	for _, r := range s {
		out = append(out, keyPress{r: r})
	}
	return out
}

func special(keys ...keyboard.Key) []keyPress {
	out := make([]keyPress, 0, len(keys))
	for _, k := range keys {
		out = append(out, keyPress{key: k})
	}
	return out
}

func run(t *testing.T, presses ...[]keyPress) (string, string, error) {
	t.Helper()
	var screen bytes.Buffer
	p := New(keymap.Dubeolsik(), keyboard.KeyCtrlSpace, &screen, logging.Discard())
	reader := &fakeReader{}
	for _, seq := range presses {
		reader.keys = append(reader.keys, seq...)
	}
	text, err := p.Run(reader)
	return text, screen.String(), err
}

func TestRunSubmitsText(t *testing.T) {
	text, screen, err := run(t, typed("dkssudgktpdy"), special(keyboard.KeyEnter))
	require.NoError(t, err)
	assert.Equal(t, "안녕하세요", text)
	assert.Contains(t, screen, "[한] 안녕하세요")
	assert.True(t, bytes.HasSuffix([]byte(screen), []byte("\r\x1b[2K")), "line is cleared on exit")
}

func TestRunEscSubmits(t *testing.T) {
	text, _, err := run(t, typed("gksrmf"), special(keyboard.KeyEsc))
	require.NoError(t, err)
	assert.Equal(t, "한글", text)
}

func TestRunCancel(t *testing.T) {
	_, _, err := run(t, typed("rk"), special(keyboard.KeyCtrlC))
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestRunReadError(t *testing.T) {
	_, _, err := run(t, typed("rk"))
	assert.ErrorIs(t, err, io.EOF)
}

func TestToggleMode(t *testing.T) {
	text, screen, err := run(t,
		typed("gks"),
		special(keyboard.KeyCtrlSpace),
		typed("rm"),
		special(keyboard.KeyCtrlSpace),
		typed("f"),
		special(keyboard.KeyEnter),
	)
	require.NoError(t, err)
	assert.Equal(t, "한rmㄹ", text)
	assert.Contains(t, screen, "[EN] 한")
}

func TestEditingKeys(t *testing.T) {
	text, _, err := run(t,
		typed("rksek"), // 간다
		special(keyboard.KeyArrowLeft),
		typed("l"), // 가니다
		special(keyboard.KeyHome),
		special(keyboard.KeySpace),
		special(keyboard.KeyEnd),
		special(keyboard.KeyBackspace2),
		special(keyboard.KeyEnter),
	)
	require.NoError(t, err)
	assert.Equal(t, " 가니ㄷ", text)
}

func TestSelectAllClearUndo(t *testing.T) {
	text, _, err := run(t,
		typed("gksrmf"),
		special(keyboard.KeyCtrlA, keyboard.KeyBackspace),
		typed("rk"),
		special(keyboard.KeyCtrlL, keyboard.KeyCtrlZ),
		special(keyboard.KeyEnter),
	)
	require.NoError(t, err)
	assert.Equal(t, "가", text)
}

func TestIgnoredKeys(t *testing.T) {
	text, _, err := run(t, typed("rk"), special(keyboard.KeyF1, keyboard.KeyTab), typed("\x01"), special(keyboard.KeyEnter))
	require.NoError(t, err)
	assert.Equal(t, "가", text)
}

func TestRender(t *testing.T) {
	line := Render(View{Mode: types.ModeHangul, Text: []rune("한글"), Cursor: 2, Column: 4})
	assert.Equal(t, "\r\x1b[2K[한] 한글\r\x1b[9C", line)

	line = Render(View{Mode: types.ModeLatin, Text: []rune("abc"), Cursor: 3, SelStart: 1, SelEnd: 3, Column: 3})
	assert.Equal(t, "\r\x1b[2K[EN] a\x1b[7mbc\x1b[0m\r\x1b[8C", line)
}

func TestViewOf(t *testing.T) {
	p := New(keymap.Dubeolsik(), keyboard.KeyCtrlSpace, io.Discard, nil)
	for _, r := range "gksrmf" {
		p.HandleKey(r, 0)
	}
	p.HandleKey(0, keyboard.KeyArrowLeft)
	v := ViewOf(p.Composer())
	assert.Equal(t, types.ModeHangul, v.Mode)
	assert.Equal(t, 1, v.Cursor)
	assert.Equal(t, 2, v.Column)
	assert.Equal(t, v.SelStart, v.SelEnd)
}

func TestHandleKeyActions(t *testing.T) {
	p := New(keymap.Dubeolsik(), keyboard.KeyCtrlT, io.Discard, nil)
	assert.Equal(t, ActionContinue, p.HandleKey(0, keyboard.KeyCtrlT))
	assert.Equal(t, types.ModeLatin, p.Composer().Mode())
	assert.Equal(t, ActionSubmit, p.HandleKey(0, keyboard.KeyEnter))
	assert.Equal(t, ActionCancel, p.HandleKey(0, keyboard.KeyCtrlC))
}

func TestParseToggleKey(t *testing.T) {
	cases := map[string]keyboard.Key{
		"ctrl+space": keyboard.KeyCtrlSpace,
		"Ctrl-Space": keyboard.KeyCtrlSpace,
		"ctrl+t":     keyboard.KeyCtrlT,
		"ctrl+k":     keyboard.KeyCtrlK,
		"tab":        keyboard.KeyTab,
	}
	for in, want := range cases {
		got, err := ParseToggleKey(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "alt+space", "ctrl+1", "ctrl+z", "ctrl+c", "ctrl+h", "f1"} {
		_, err := ParseToggleKey(bad)
		assert.Error(t, err, bad)
	}
}
