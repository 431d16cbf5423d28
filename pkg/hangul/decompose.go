package hangul

// Decompose expands every syllable block into its leading, vowel and (if
// present) trailing compatibility jamo. Other runes are copied unchanged.
func Decompose(seq []rune) []rune {
	out := make([]rune, 0, len(seq)*2)
	for _, r := range seq {
		if !IsSyllable(r) {
			out = append(out, r)
			continue
		}
		l, v, t := syllableIndices(r)
		out = append(out, leadingList[l], vowelList[v])
		if t != noTrailing {
			out = append(out, trailingList[t])
		}
	}
	return out
}

// DecomposeString is Decompose over the runes of s.
func DecomposeString(s string) string {
	return string(Decompose([]rune(s)))
}

// Split returns the jamo of a single syllable block. trailing is 0 for an
// open syllable; ok is false when r is not a syllable.
func Split(r rune) (leading, vowel, trailing rune, ok bool) {
	if !IsSyllable(r) {
		return 0, 0, 0, false
	}
	l, v, t := syllableIndices(r)
	return leadingList[l], vowelList[v], trailingList[t], true
}
