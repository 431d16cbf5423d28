package keymap

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"hanpad/pkg/hangul"
)

const shiftPrefix = "shift."

// Override rebinds one key, either its plain or its shifted jamo.
type Override struct {
	Key   rune
	Shift bool
	Jamo  rune
}

// OverrideError reports a binding that cannot be applied.
type OverrideError struct {
	Name  string
	Value string
	msg   string
}

func (e OverrideError) Error() string {
	return fmt.Sprintf("keymap %s = %q: %s", e.Name, e.Value, e.msg)
}

// ParseOverride reads a binding written as `q = ㅂ` or `shift.q = ㅃ`.
func ParseOverride(name, value string) (Override, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	shift := false
	if strings.HasPrefix(key, shiftPrefix) {
		shift = true
		key = strings.TrimPrefix(key, shiftPrefix)
	}
	if utf8.RuneCountInString(key) != 1 {
		return Override{}, OverrideError{Name: name, Value: value, msg: "key must be a single character"}
	}
	k, _ := utf8.DecodeRuneInString(key)
	if !unicode.IsPrint(k) || unicode.IsSpace(k) {
		return Override{}, OverrideError{Name: name, Value: value, msg: "key must be printable"}
	}

	jamo := strings.TrimSpace(value)
	if utf8.RuneCountInString(jamo) != 1 {
		return Override{}, OverrideError{Name: name, Value: value, msg: "value must be a single jamo"}
	}
	j, _ := utf8.DecodeRuneInString(jamo)
	if !hangul.IsJamo(j) {
		return Override{}, OverrideError{Name: name, Value: value, msg: "value is not a hangul jamo"}
	}
	return Override{Key: k, Shift: shift, Jamo: j}, nil
}

// ParseOverrides parses a name → value table in name order so errors are
// reported deterministically.
func ParseOverrides(table map[string]string) ([]Override, error) {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Override, 0, len(names))
	for _, name := range names {
		o, err := ParseOverride(name, table[name])
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

// WithOverrides returns a copy of l with the overrides applied; l itself is
// left untouched.
func (l Layout) WithOverrides(overrides []Override) Layout {
	normal := make(map[rune]rune, len(l.normal)+len(overrides))
	for k, v := range l.normal {
		normal[k] = v
	}
	shifted := make(map[rune]rune, len(l.shifted)+len(overrides))
	for k, v := range l.shifted {
		shifted[k] = v
	}
	for _, o := range overrides {
		k := unicode.ToLower(o.Key)
		if o.Shift {
			shifted[k] = o.Jamo
		} else {
			normal[k] = o.Jamo
		}
	}
	return Layout{name: l.name, normal: normal, shifted: shifted}
}
