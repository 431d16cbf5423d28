package pad

import "github.com/eiannone/keyboard"

// KeyReader delivers key presses. A printable key arrives as a rune with a
// zero Key; special keys arrive with a zero rune.
type KeyReader interface {
	ReadKey() (rune, keyboard.Key, error)
	Close() error
}

type terminalReader struct{}

// OpenTerminal puts the controlling terminal in raw mode and reads keys
// from it.
func OpenTerminal() (KeyReader, error) {
	if err := keyboard.Open(); err != nil {
		return nil, err
	}
	return terminalReader{}, nil
}

func (terminalReader) ReadKey() (rune, keyboard.Key, error) {
	return keyboard.GetKey()
}

func (terminalReader) Close() error {
	keyboard.Close()
	return nil
}
var _ KeyReader = terminalReader{}
