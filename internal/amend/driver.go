package amend

import (
	"fmt"
	"sort"

	"github.com/samber/oops"

	"github.com/pyhub-apps/gaejeong-cli/internal/lawdoc"
)

// NamedLaw pairs a statute's display name with its parsed article tree, as
// handed off by internal/corpus after fetching a search hit's XML body.
type NamedLaw struct {
	Name string
	Law  lawdoc.Law
}

// RunLaw runs spec.md §4.5's per-law driver over a single statute: it
// extracts every rewrite site, folds them into rule sentences, consolidates
// duplicate locations, and joins the result into one "<br>"-joined amendment
// block. ok is false when the statute produced no rewrite sites at all.
func RunLaw(lawName string, law lawdoc.Law, findWord, replaceWord string) (result string, ok bool, err error) {
	chunks := ExtractChunks(law, findWord, replaceWord)
	if len(chunks) == 0 {
		return "", false, nil
	}

	ruleMap := BuildRuleMap(chunks)

	lines := make([]string, 0, len(ruleMap))
	for rule, locations := range ruleMap {
		line, err := RenderLocations(rule, locations)
		if err != nil {
			return "", false, oops.With("law", lawName).With("rule", rule).Wrapf(err, "rendering amendment locations")
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return "", false, nil
	}
	sort.Strings(lines)

	body := ""
	for _, line := range lines {
		body += line + "<br>"
	}
	return fmt.Sprintf("%s 일부를 다음과 같이 개정한다.<br>%s", lawName, body), true, nil
}
