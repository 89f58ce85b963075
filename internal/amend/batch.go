package amend

import (
	"fmt"

	"github.com/pyhub-apps/gaejeong-cli/internal/lawdoc"
)

// noAmendmentTargets is returned when no law in the batch yielded a single
// rewrite site, matching the source system's fallback message.
const noAmendmentTargets = "⚠️ 개정 대상 조문이 없습니다."

// SkippedLaw records why a law in the batch contributed nothing, for the
// diagnostics side channel spec.md §4.6 calls for.
type SkippedLaw struct {
	Name   string
	Reason string
}

// RunBatch runs spec.md §4.6's batch driver across every law in laws,
// circled-digit- (or parenthesized-, past 20) numbering each one that
// produced an amendment block. It returns the numbered amendment texts and,
// separately, a diagnostic record of laws that contributed nothing.
func RunBatch(laws []NamedLaw, findWord, replaceWord string) (results []string, skipped []SkippedLaw) {
	produced := 0
	for _, l := range laws {
		if len(l.Law.Articles.ArticleUnits) == 0 {
			skipped = append(skipped, SkippedLaw{Name: l.Name, Reason: "조문단위 없음"})
			continue
		}

		block, ok, err := RunLaw(l.Name, l.Law, findWord, replaceWord)
		if err != nil {
			skipped = append(skipped, SkippedLaw{Name: l.Name, Reason: err.Error()})
			continue
		}
		if !ok {
			skipped = append(skipped, SkippedLaw{Name: l.Name, Reason: "결과줄이 생성되지 않음"})
			continue
		}

		produced++
		results = append(results, fmt.Sprintf("%s %s", numberPrefix(produced), block))
	}

	if len(results) == 0 {
		return []string{noAmendmentTargets}, skipped
	}
	return results, skipped
}

// numberPrefix renders a circled digit (①②③…⑳) for n in [1,20], falling
// back to "(n)" past that range — the same cutoff the source system uses
// since Unicode only assigns circled digits up to 20.
func numberPrefix(n int) string {
	if n >= 1 && n <= 20 {
		return string(rune(0x2460 + n - 1))
	}
	return fmt.Sprintf("(%d)", n)
}

// loadLaw is a small seam for internal/corpus: it turns a fetched document
// into the NamedLaw shape RunBatch expects.
func loadLaw(name string, doc lawdoc.Document) NamedLaw {
	return NamedLaw{Name: name, Law: doc.Law}
}
