// Package hangul implements the arithmetic primitives that the rest of the
// amendment engine builds on: whether a word ends in a syllable with a
// final consonant (받침), and whether that consonant is specifically ㄹ.
package hangul

// syllableBase is the Unicode code point of the first precomposed Hangul
// syllable, 가 (U+AC00). Every precomposed syllable in the range
// [syllableBase, syllableBase+11172) decomposes as
// ((lead*21)+vowel)*28+final, so code%28 recovers the final-consonant index.
const syllableBase = 0xAC00

// syllableCount is the number of precomposed Hangul syllables.
const syllableCount = 11172

// rieulFinalIndex is the final-consonant index (code % 28) that corresponds
// to ㄹ. Final-consonant index 0 means "no final consonant".
const rieulFinalIndex = 8

// lastSyllable returns the final rune of word and whether it falls inside
// the precomposed Hangul syllable block. An empty word, or a word whose
// last character is not a precomposed syllable (digits, Latin letters,
// punctuation, Hangul jamo), reports ok=false.
func lastSyllable(word string) (code int, ok bool) {
	if word == "" {
		return 0, false
	}
	runes := []rune(word)
	last := runes[len(runes)-1]
	offset := int(last) - syllableBase
	if offset < 0 || offset >= syllableCount {
		return 0, false
	}
	return offset, true
}

// HasFinal reports whether the last syllable of word carries a final
// consonant (받침). Non-Hangul tails and empty input report false.
func HasFinal(word string) bool {
	offset, ok := lastSyllable(word)
	if !ok {
		return false
	}
	return offset%28 != 0
}

// HasRieulFinal reports whether the last syllable of word's final consonant
// is specifically ㄹ. ㄹ 받침 is the one consonant whose following
// instrumental particle is 로 rather than 으로, regardless of the general
// 받침 rule.
func HasRieulFinal(word string) bool {
	offset, ok := lastSyllable(word)
	if !ok {
		return false
	}
	return offset%28 == rieulFinalIndex
}
