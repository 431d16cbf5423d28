package hangul

import (
	"math/rand"
	"testing"
)

func TestComposeRules(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"leading vowel", "ㄱㅏ", "가"},
		{"leading vowel trailing", "ㄱㅏㄴ", "간"},
		{"compound vowel bare", "ㅗㅏ", "ㅘ"},
		{"compound vowel in syllable", "고ㅏ", "과"},
		{"no compound for same vowel", "가ㅏ", "가ㅏ"},
		{"no compound wa plus i", "과ㅣ", "과ㅣ"},
		{"trailing moves to new syllable", "간ㅣ", "가니"},
		{"double consonant trailing moves whole", "갔ㅏ", "가싸"},
		{"compound trailing splits", "값ㅏ", "갑사"},
		{"compound trailing splits rieul", "닭ㅗ", "달고"},
		{"compound trailing forms", "각ㅅ", "갃"},
		{"compound trailing rieul mieum", "갈ㅁ", "갊"},
		{"siot siot forms ssangsiot", "갓ㅅ", "갔"},
		{"tense consonant is not trailing", "가ㄸ", "가ㄸ"},
		{"leading plus consonant", "ㄱㄴ", "ㄱㄴ"},
		{"compound final is not leading", "ㄳㅏ", "ㄳㅏ"},
		{"full word", "ㅎㅏㄴㄱㅡㄹ", "한글"},
		{"greeting", "ㅇㅏㄴㄴㅕㅇㅎㅏㅅㅔㅇㅛ", "안녕하세요"},
		{"latin passes through", "abc", "abc"},
		{"mixed", "ㄱㅏ ㄴㅏ", "가 나"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ComposeString(tc.in); got != tc.want {
				t.Fatalf("ComposeString(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestComposeDoesNotModifyInput(t *testing.T) {
	in := []rune("간ㅣ")
	_ = Compose(in)
	if string(in) != "간ㅣ" {
		t.Fatalf("input modified: %q", string(in))
	}
}

func TestComposeNulIsNotTrailing(t *testing.T) {
	in := []rune{'가', 0}
	got := Compose(in)
	if len(got) != 2 || got[0] != '가' || got[1] != 0 {
		t.Fatalf("expected NUL to pass through, got %q", string(got))
	}
}

func TestComposeInvalidRunesPassThrough(t *testing.T) {
	in := []rune{'ㄱ', 0xD800, 'ㅏ', 0xFFFD}
	got := Compose(in)
	if string(got) != string(in) {
		t.Fatalf("expected invalid runes to pass through, got %U", got)
	}
}

func TestRoundTripAllLeadingVowel(t *testing.T) {
	for _, l := range LeadingJamo() {
		for _, v := range VowelJamo() {
			composed := Compose([]rune{l, v})
			if len(composed) != 1 || !IsSyllable(composed[0]) {
				t.Fatalf("compose(%c%c) = %q, want one syllable", l, v, string(composed))
			}
			back := Decompose(composed)
			if string(back) != string([]rune{l, v}) {
				t.Fatalf("decompose(compose(%c%c)) = %q", l, v, string(back))
			}
		}
	}
}

func TestRoundTripWithTrailing(t *testing.T) {
	for _, l := range LeadingJamo() {
		for _, v := range VowelJamo() {
			for _, tr := range TrailingJamo()[1:] {
				in := []rune{l, v, tr}
				composed := Compose(in)
				if len(composed) != 1 {
					t.Fatalf("compose(%q) = %q, want one syllable", string(in), string(composed))
				}
				if back := Decompose(composed); string(back) != string(in) {
					t.Fatalf("decompose(compose(%q)) = %q", string(in), string(back))
				}
			}
		}
	}
}

func TestComposeNeverGrows(t *testing.T) {
	alphabet := append(append(LeadingJamo(), VowelJamo()...), TrailingJamo()[1:]...)
	alphabet = append(alphabet, '가', '간', '값', '과', ' ', 'a')
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		n := 1 + rng.Intn(8)
		in := make([]rune, n)
		for j := range in {
			in[j] = alphabet[rng.Intn(len(alphabet))]
		}
		if got := Compose(in); len(got) > len(in) {
			t.Fatalf("compose(%q) grew to %q", string(in), string(got))
		}
	}
}

func TestComposeIdempotent(t *testing.T) {
	alphabet := append(append(LeadingJamo(), VowelJamo()...), TrailingJamo()[1:]...)
	alphabet = append(alphabet, '가', '각', '값', '고', '닭', '.', 'x')
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 5000; i++ {
		n := rng.Intn(10)
		in := make([]rune, n)
		for j := range in {
			in[j] = alphabet[rng.Intn(len(alphabet))]
		}
		once := Compose(in)
		twice := Compose(once)
		if string(once) != string(twice) {
			t.Fatalf("compose not idempotent for %q: %q then %q", string(in), string(once), string(twice))
		}
	}
}

func TestJoin(t *testing.T) {
	if r, ok := Join('ㅎ', 'ㅏ', 'ㄴ'); !ok || r != '한' {
		t.Fatalf("Join(ㅎ,ㅏ,ㄴ) = %q, %v", r, ok)
	}
	if r, ok := Join('ㄱ', 'ㅏ', 0); !ok || r != '가' {
		t.Fatalf("Join(ㄱ,ㅏ) = %q, %v", r, ok)
	}
	if _, ok := Join('ㄳ', 'ㅏ', 0); ok {
		t.Fatalf("expected ㄳ to be rejected as leading")
	}
	if _, ok := Join('ㄱ', 'ㅏ', 'ㄸ'); ok {
		t.Fatalf("expected ㄸ to be rejected as trailing")
	}
}

func TestCombineHelpers(t *testing.T) {
	if r, ok := CombineVowels('ㅜ', 'ㅔ'); !ok || r != 'ㅞ' {
		t.Fatalf("CombineVowels(ㅜ,ㅔ) = %q, %v", r, ok)
	}
	if _, ok := CombineVowels('ㅏ', 'ㅏ'); ok {
		t.Fatalf("ㅏ+ㅏ must not combine")
	}
	if r, ok := CombineTrailing('ㅂ', 'ㅅ'); !ok || r != 'ㅄ' {
		t.Fatalf("CombineTrailing(ㅂ,ㅅ) = %q, %v", r, ok)
	}
	if _, ok := CombineTrailing('ㄱ', 'ㄱ'); ok {
		t.Fatalf("ㄱ+ㄱ is not a compound trailing")
	}
}
