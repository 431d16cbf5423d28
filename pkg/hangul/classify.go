package hangul

// Kind classifies a code point for composition purposes.
type Kind int

const (
	KindOther Kind = iota
	KindLeading
	KindVowel
	KindTrailing
	KindSyllable
)

func (k Kind) String() string {
	switch k {
	case KindLeading:
		return "leading"
	case KindVowel:
		return "vowel"
	case KindTrailing:
		return "trailing"
	case KindSyllable:
		return "syllable"
	default:
		return "other"
	}
}

// Classify reports how r takes part in composition. Consonants that can open
// a syllable are KindLeading even when they can also close one; KindTrailing
// is left for the compound finals such as ㄳ that only ever close a syllable.
// Anything outside the Hangul ranges, including invalid runes, is KindOther.
func Classify(r rune) Kind {
	switch {
	case IsSyllable(r):
		return KindSyllable
	case vowelIdx(r) >= 0:
		return KindVowel
	case leadIdx(r) >= 0:
		return KindLeading
	case tailIdx(r) > 0:
		return KindTrailing
	default:
		return KindOther
	}
}

// IsSyllable reports whether r is a precomposed Hangul syllable block.
func IsSyllable(r rune) bool {
	return r >= SBase && r < SBase+SCount
}

// IsJamo reports whether r is a compatibility jamo usable by the composer.
func IsJamo(r rune) bool {
	return vowelIdx(r) >= 0 || leadIdx(r) >= 0 || tailIdx(r) > 0
}

// IsConsonant reports whether r can fill either consonant slot.
func IsConsonant(r rune) bool {
	return leadIdx(r) >= 0 || tailIdx(r) > 0
}

// IsVowel reports whether r is a bare vowel jamo.
func IsVowel(r rune) bool {
	return vowelIdx(r) >= 0
}
