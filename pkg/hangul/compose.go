package hangul

// Compose folds a run of jamo and syllables into its shortest Hangul form.
//
// The fold is a single left-to-right pass: only the last rune already emitted
// and the next input rune are examined, and the first rule that applies wins.
//  1. leading + vowel forms an open syllable
//  2. vowel + vowel forms a compound vowel
//  3. open syllable + consonant fills the trailing slot
//  4. open syllable + vowel upgrades its vowel to a compound vowel
//  5. closed syllable + vowel moves the trailing consonant (or the second half
//     of a compound trailing) onto a new syllable
//  6. closed syllable + consonant forms a compound trailing
//
// When nothing applies the next rune is emitted unchanged. Emitted runes are
// never rescanned. The input slice is not modified.
func Compose(seq []rune) []rune {
	out := make([]rune, 0, len(seq))
	if len(seq) == 0 {
		return out
	}
	out = append(out, seq[0])
	for _, next := range seq[1:] {
		last := len(out) - 1
		merged, carry, ok := combine(out[last], next)
		if !ok {
			out = append(out, next)
			continue
		}
		out[last] = merged
		if carry != 0 {
			out = append(out, carry)
		}
	}
	return out
}

// ComposeString is Compose over the runes of s.
func ComposeString(s string) string {
	return string(Compose([]rune(s)))
}

// combine applies the first matching rule to (cur, next). It returns the
// replacement for cur and, for a split, the new syllable that follows it.
func combine(cur, next rune) (rune, rune, bool) {
	if l := leadIdx(cur); l >= 0 {
		if v := vowelIdx(next); v >= 0 {
			return syllable(l, v, noTrailing), 0, true
		}
	}

	if cv := vowelIdx(cur); cv >= 0 {
		if nv := vowelIdx(next); nv >= 0 {
			if v, ok := compoundVowel[Pair{cv, nv}]; ok {
				return vowelList[v], 0, true
			}
		}
	}

	if !IsSyllable(cur) {
		return 0, 0, false
	}
	l, v, t := syllableIndices(cur)

	if t == noTrailing {
		if nt := tailIdx(next); nt > 0 {
			return syllable(l, v, nt), 0, true
		}
		if nv := vowelIdx(next); nv >= 0 {
			if cv, ok := compoundVowel[Pair{v, nv}]; ok {
				return syllable(l, cv, noTrailing), 0, true
			}
		}
		return 0, 0, false
	}

	if nv := vowelIdx(next); nv >= 0 {
		if nl := leadIdx(trailingList[t]); nl >= 0 {
			return syllable(l, v, noTrailing), syllable(nl, nv, noTrailing), true
		}
		if split, ok := trailingSplit[t]; ok {
			nl := leadIdx(trailingList[split.B])
			return syllable(l, v, split.A), syllable(nl, nv, noTrailing), true
		}
	}

	if nt := tailIdx(next); nt > 0 {
		if ct, ok := compoundTrailing[Pair{t, nt}]; ok {
			return syllable(l, v, ct), 0, true
		}
	}
	return 0, 0, false
}

func syllable(l, v, t int) rune {
	return rune(SBase + (l*VCount+v)*TCount + t)
}

func syllableIndices(r rune) (l, v, t int) {
	off := int(r - SBase)
	return off / NCount, (off % NCount) / TCount, off % TCount
}

// Join builds the syllable for the given jamo. trailing may be 0 for an open
// syllable. It fails when any part cannot fill its slot.
func Join(leading, vowel, trailing rune) (rune, bool) {
	l, v := leadIdx(leading), vowelIdx(vowel)
	if l < 0 || v < 0 {
		return 0, false
	}
	t := noTrailing
	if trailing != 0 {
		if t = tailIdx(trailing); t <= 0 {
			return 0, false
		}
	}
	return syllable(l, v, t), true
}
