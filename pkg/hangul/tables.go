package hangul

// Syllable arithmetic constants for the precomposed block U+AC00..U+D7A3.
const (
	SBase  = 0xAC00
	LCount = 19
	VCount = 21
	TCount = 28
	NCount = VCount * TCount
	SCount = LCount * NCount
)

const (
	// compatibility jamo block, consonants first then vowels
	jamoFirst  = 0x3131
	jamoLast   = 0x3163
	vowelBase  = 0x314F
	jamoCount  = jamoLast - jamoFirst + 1
	noTrailing = 0
)

// Pair keys the sparse combination tables by the table indices of the two
// halves being combined.
type Pair struct {
	A int
	B int
}

var (
	leadingList  = [LCount]rune{'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
	vowelList    = [VCount]rune{'ㅏ', 'ㅐ', 'ㅑ', 'ㅒ', 'ㅓ', 'ㅔ', 'ㅕ', 'ㅖ', 'ㅗ', 'ㅘ', 'ㅙ', 'ㅚ', 'ㅛ', 'ㅜ', 'ㅝ', 'ㅞ', 'ㅟ', 'ㅠ', 'ㅡ', 'ㅢ', 'ㅣ'}
	trailingList = [TCount]rune{0, 'ㄱ', 'ㄲ', 'ㄳ', 'ㄴ', 'ㄵ', 'ㄶ', 'ㄷ', 'ㄹ', 'ㄺ', 'ㄻ', 'ㄼ', 'ㄽ', 'ㄾ', 'ㄿ', 'ㅀ', 'ㅁ', 'ㅂ', 'ㅄ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
)

// Compound vowels, keyed by vowel index: ㅗ+ㅏ → ㅘ and so on.
var compoundVowel = map[Pair]int{
	{8, 0}:   9,  // ㅗ ㅏ → ㅘ
	{8, 1}:   10, // ㅗ ㅐ → ㅙ
	{8, 20}:  11, // ㅗ ㅣ → ㅚ
	{13, 4}:  14, // ㅜ ㅓ → ㅝ
	{13, 5}:  15, // ㅜ ㅔ → ㅞ
	{13, 20}: 16, // ㅜ ㅣ → ㅟ
	{18, 20}: 19, // ㅡ ㅣ → ㅢ
}

// Compound trailing consonants, keyed by trailing index.
var compoundTrailing = map[Pair]int{
	{1, 19}:  3,  // ㄱ ㅅ → ㄳ
	{4, 22}:  5,  // ㄴ ㅈ → ㄵ
	{4, 27}:  6,  // ㄴ ㅎ → ㄶ
	{8, 1}:   9,  // ㄹ ㄱ → ㄺ
	{8, 16}:  10, // ㄹ ㅁ → ㄻ
	{8, 17}:  11, // ㄹ ㅂ → ㄼ
	{8, 19}:  12, // ㄹ ㅅ → ㄽ
	{8, 25}:  13, // ㄹ ㅌ → ㄾ
	{8, 26}:  14, // ㄹ ㅍ → ㄿ
	{8, 27}:  15, // ㄹ ㅎ → ㅀ
	{17, 19}: 18, // ㅂ ㅅ → ㅄ
	{19, 19}: 20, // ㅅ ㅅ → ㅆ
}

var (
	leadingIndex  = buildIndex(leadingList[:], false)
	trailingIndex = buildIndex(trailingList[:], true)
	trailingSplit = invertPairs(compoundTrailing)
)

// buildIndex maps every compatibility jamo to its position in list, or -1.
func buildIndex(list []rune, skipZero bool) [jamoCount]int8 {
	var idx [jamoCount]int8
	for i := range idx {
		idx[i] = -1
	}
	for i, ch := range list {
		if skipZero && ch == 0 {
			continue
		}
		idx[ch-jamoFirst] = int8(i)
	}
	return idx
}

func invertPairs(src map[Pair]int) map[int]Pair {
	dst := make(map[int]Pair, len(src))
	for pair, value := range src {
		dst[value] = pair
	}
	return dst
}

func inJamoBlock(r rune) bool {
	return r >= jamoFirst && r <= jamoLast
}

// leadIdx returns the leading-consonant index of r, or -1.
func leadIdx(r rune) int {
	if !inJamoBlock(r) {
		return -1
	}
	return int(leadingIndex[r-jamoFirst])
}

// tailIdx returns the trailing-consonant index of r (1..27), or -1.
func tailIdx(r rune) int {
	if !inJamoBlock(r) {
		return -1
	}
	return int(trailingIndex[r-jamoFirst])
}

// vowelIdx returns the vowel index of r, or -1.
func vowelIdx(r rune) int {
	off := int(r) - vowelBase
	if off < 0 || off >= VCount {
		return -1
	}
	return off
}

// LeadingJamo returns a copy of the 19 leading consonants in syllable order.
func LeadingJamo() []rune {
	return append([]rune(nil), leadingList[:]...)
}

// VowelJamo returns a copy of the 21 vowels in syllable order.
func VowelJamo() []rune {
	return append([]rune(nil), vowelList[:]...)
}

// TrailingJamo returns a copy of the 28 trailing slots; slot 0 is 0 (none).
func TrailingJamo() []rune {
	return append([]rune(nil), trailingList[:]...)
}

// CombineVowels looks up the compound vowel formed by a followed by b.
func CombineVowels(a, b rune) (rune, bool) {
	ai, bi := vowelIdx(a), vowelIdx(b)
	if ai < 0 || bi < 0 {
		return 0, false
	}
	v, ok := compoundVowel[Pair{ai, bi}]
	if !ok {
		return 0, false
	}
	return vowelList[v], true
}

// CombineTrailing looks up the compound trailing consonant formed by a
// followed by b.
func CombineTrailing(a, b rune) (rune, bool) {
	ai, bi := tailIdx(a), tailIdx(b)
	if ai <= 0 || bi <= 0 {
		return 0, false
	}
	t, ok := compoundTrailing[Pair{ai, bi}]
	if !ok {
		return 0, false
	}
	return trailingList[t], true
}
