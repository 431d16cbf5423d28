package keymap

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

const DefaultLayoutName = "dubeolsik"

// Layout maps Latin key symbols to compatibility jamo.
type Layout struct {
	name    string
	normal  map[rune]rune
	shifted map[rune]rune
}

// Dubeolsik returns the standard two-set layout.
func Dubeolsik() Layout {
	normal := map[rune]rune{
		'q': 'ㅂ',
		'w': 'ㅈ',
		'e': 'ㄷ',
		'r': 'ㄱ',
		't': 'ㅅ',
		'a': 'ㅁ',
		's': 'ㄴ',
		'd': 'ㅇ',
		'f': 'ㄹ',
		'g': 'ㅎ',
		'z': 'ㅋ',
		'x': 'ㅌ',
		'c': 'ㅊ',
		'v': 'ㅍ',

		'y': 'ㅛ',
		'u': 'ㅕ',
		'i': 'ㅑ',
		'o': 'ㅐ',
		'p': 'ㅔ',
		'h': 'ㅗ',
		'j': 'ㅓ',
		'k': 'ㅏ',
		'l': 'ㅣ',
		'b': 'ㅠ',
		'n': 'ㅜ',
		'm': 'ㅡ',
	}

	shifted := map[rune]rune{
		'q': 'ㅃ',
		'w': 'ㅉ',
		'e': 'ㄸ',
		'r': 'ㄲ',
		't': 'ㅆ',
		'o': 'ㅒ',
		'p': 'ㅖ',
	}

	return Layout{name: DefaultLayoutName, normal: normal, shifted: shifted}
}

func (l Layout) Name() string { return l.name }

// Map returns the jamo for key. Keys are case-folded; with shift held the
// shifted table is consulted first and unlisted keys fall back to their
// unshifted jamo.
func (l Layout) Map(key rune, shift bool) (rune, bool) {
	k := unicode.ToLower(key)
	if shift {
		if j, ok := l.shifted[k]; ok {
			return j, true
		}
	}
	j, ok := l.normal[k]
	return j, ok
}

// MapTyped maps a rune as a terminal delivers it: an upper-case letter means
// the lower-case key was pressed with shift.
func (l Layout) MapTyped(r rune) (rune, bool) {
	return l.Map(r, unicode.IsUpper(r))
}

// Binding is one key of a layout, used for listings.
type Binding struct {
	Key     rune
	Normal  rune
	Shifted rune
}

// Bindings lists every mapped key in key order. Shifted is 0 when shift
// does not change the jamo.
func (l Layout) Bindings() []Binding {
	keys := make([]rune, 0, len(l.normal)+len(l.shifted))
	seen := make(map[rune]struct{}, len(l.normal))
	for k := range l.normal {
		keys = append(keys, k)
		seen[k] = struct{}{}
	}
	for k := range l.shifted {
		if _, ok := seen[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	out := make([]Binding, 0, len(keys))
	for _, k := range keys {
		out = append(out, Binding{Key: k, Normal: l.normal[k], Shifted: l.shifted[k]})
	}
	return out
}

var layoutAliases = map[string]string{
	"":          DefaultLayoutName,
	"default":   DefaultLayoutName,
	"dubeolsik": DefaultLayoutName,
	"2beolsik":  DefaultLayoutName,
	"두벌식":       DefaultLayoutName,
	"hangul":    DefaultLayoutName,
	"korean":    DefaultLayoutName,
}

// Available returns the canonical names understood by ByName.
func Available() []string {
	return []string{DefaultLayoutName}
}

// ByName resolves a user supplied layout name.
func ByName(name string) (Layout, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if _, ok := layoutAliases[normalized]; !ok {
		return Layout{}, fmt.Errorf("unknown layout %q (available: %s)", name, strings.Join(Available(), ", "))
	}
	return Dubeolsik(), nil
}
