// Package classify implements the token classifier described in spec.md
// §4.2: given a whitespace/punctuation-free token and the search word it
// contains, it decides whether the token is the bare search word, the
// search word plus a recognized particle, the search word plus a
// recognized excluded suffix, or an unrelated compound.
package classify

import "sort"

// Kind identifies which branch of the classifier a token fell into.
type Kind int

const (
	// KindPlain means the token (or compound) carries no particle or
	// suffix; the whole Chunk is the rewrite unit.
	KindPlain Kind = iota
	// KindParticle means Tail is a recognized particle following the
	// search word exactly.
	KindParticle
	// KindSuffix means Tail is a recognized excluded suffix following the
	// search word exactly.
	KindSuffix
)

// Result is the outcome of classifying one token against a search word.
type Result struct {
	Kind  Kind
	Chunk string // the rewrite unit: the search word, or the whole token for compounds
	Tail  string // the matched particle or suffix surface form, empty for KindPlain
}

// Particles is the recognized particle set (조사) from spec.md §4.2,
// eojeol-final bound morphemes that the rule engine (package ruleengine)
// dispatches on by exact string.
var Particles = []string{
	"이란", "으로서", "으로써", "이나", "이라", "로서", "로써", "으로",
	"은", "는", "을", "를", "과", "와", "이", "가", "나", "로", "란", "라",
}

// ExcludedSuffixes is the recognized excluded-suffix set from spec.md
// §4.2: these are stripped from the rewrite unit but retained as context
// for the rule engine (ruleengine's rule0 or rule15/rule16 depending on
// which suffix matched).
var ExcludedSuffixes = []string{
	"의", "에", "에서", "에게", "으로서", "로서", "으로써", "로써",
	"등", "등의", "등인", "등만", "등에",
	"만", "만을", "만이", "만은", "만에", "만으로",
}

var particlesByLength = sortedByLengthDesc(Particles)
var suffixesByLength = sortedByLengthDesc(ExcludedSuffixes)

func sortedByLengthDesc(items []string) []string {
	out := make([]string, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return len([]rune(out[i])) > len([]rune(out[j]))
	})
	return out
}

// Classify implements the algorithm of spec.md §4.2. token is assumed to be
// a single whitespace/punctuation-free run (the caller tokenizes with the
// `[가-힣A-Za-z0-9]+` character class before calling Classify); searchWord
// is the term being searched for.
func Classify(token, searchWord string) Result {
	if token == searchWord {
		return Result{Kind: KindPlain, Chunk: token}
	}
	if !containsRune(token, searchWord) {
		return Result{Kind: KindPlain, Chunk: token}
	}
	if !hasPrefix(token, searchWord) {
		// The search term sits inside a larger word's interior; it is not
		// a rewrite site at all, but the contract still returns the token
		// as a no-op chunk so callers can skip it uniformly.
		return Result{Kind: KindPlain, Chunk: token}
	}

	tail := token[len(searchWord):]

	// Suffix match precedes particle match: "로서"/"로써"/"으로서"/"으로써"
	// belong to both sets, and the suffix branch must win so the rule
	// engine switches to the suffix-aware formula (ruleengine's rule15/rule16).
	for _, s := range suffixesByLength {
		if tail == s {
			return Result{Kind: KindSuffix, Chunk: searchWord, Tail: s}
		}
	}

	for _, p := range particlesByLength {
		if tail == p {
			return Result{Kind: KindParticle, Chunk: searchWord, Tail: p}
		}
	}

	// Compound: the entire token is the rewrite unit.
	return Result{Kind: KindPlain, Chunk: token}
}

func hasPrefix(token, prefix string) bool {
	if len(token) < len(prefix) {
		return false
	}
	return token[:len(prefix)] == prefix
}

func containsRune(token, substr string) bool {
	if substr == "" {
		return true
	}
	tr, sr := []rune(token), []rune(substr)
	if len(sr) > len(tr) {
		return false
	}
	for i := 0; i+len(sr) <= len(tr); i++ {
		match := true
		for j := range sr {
			if tr[i+j] != sr[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
