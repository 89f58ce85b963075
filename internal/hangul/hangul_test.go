package hangul

import "testing"

func TestHasFinal(t *testing.T) {
	tests := []struct {
		name string
		word string
		want bool
	}{
		{"batchim consonant ㅇ", "강", true},
		{"no batchim", "바", false},
		{"batchim ㄹ", "물", true},
		{"empty", "", false},
		{"latin letter", "A", false},
		{"digit tail", "1", false},
		{"multi-syllable word ending without batchim", "지방자치", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasFinal(tt.word); got != tt.want {
				t.Errorf("HasFinal(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestHasRieulFinal(t *testing.T) {
	tests := []struct {
		name string
		word string
		want bool
	}{
		{"rieul batchim", "물", true},
		{"non-rieul batchim", "강", false},
		{"no batchim", "바", false},
		{"empty", "", false},
		{"latin letter", "A", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasRieulFinal(tt.word); got != tt.want {
				t.Errorf("HasRieulFinal(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestLastSyllableOutsideSyllableBlock(t *testing.T) {
	// Hangul jamo (e.g. ㄱ alone, U+3131) is not a precomposed syllable.
	if HasFinal("ㄱ") {
		t.Errorf("HasFinal on a bare jamo should be false")
	}
}
