// Package search implements the highlighting search entry point described
// in spec.md §6: walking a statute's article tree for every occurrence of a
// query term and rendering HTML snippets with nested indentation, grounded
// in the source system's run_search_logic/highlight functions.
package search

import (
	"regexp"
	"strings"

	"github.com/pyhub-apps/gaejeong-cli/internal/lawdoc"
)

// Highlight wraps every case-insensitive occurrence of query in text with
// <mark> tags. Empty query or text returns text unchanged.
func Highlight(text, query string) string {
	if query == "" || text == "" {
		return text
	}
	pattern := regexp.MustCompile("(?i)(" + regexp.QuoteMeta(query) + ")")
	return pattern.ReplaceAllString(text, "<mark>$1</mark>")
}

// clean strips all whitespace, matching the source system's membership-test
// helper: statute text is reflowed across lines by the upstream API, so a
// literal substring test has to ignore whitespace to find real matches.
func clean(text string) string {
	var b strings.Builder
	for _, r := range text {
		if !isSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// LawResult is one statute's collected snippets.
type LawResult struct {
	LawName  string
	Snippets []string
}

// Run walks law's article tree for query and returns one HTML snippet per
// article (or nested paragraph/item/sub-item) that matched, each already
// highlighted and indented to reflect its nesting level.
func Run(law lawdoc.Law, query string) []string {
	keyword := clean(query)
	if keyword == "" {
		return nil
	}

	var results []string
	for _, article := range law.Articles.ArticleUnits {
		var pieces []string
		articleMatched := strings.Contains(clean(article.ArticleContent), keyword)
		if articleMatched {
			pieces = append(pieces, Highlight(article.ArticleContent, query))
		}

		firstParagraphEmitted := false
		for _, paragraph := range article.Paragraphs {
			paragraphMatched := strings.Contains(clean(paragraph.ParagraphContent), keyword)

			var nested []string
			subMatched := false
			for _, item := range paragraph.Items {
				if strings.Contains(clean(item.ItemContent), keyword) {
					subMatched = true
					nested = append(nested, "&nbsp;&nbsp;"+Highlight(item.ItemContent, query))
				}
				for _, sub := range item.SubItems {
					if !strings.Contains(clean(sub.SubItemContent), keyword) {
						continue
					}
					var lines []string
					for _, line := range strings.Split(sub.SubItemContent, "\n") {
						trimmed := strings.TrimSpace(line)
						if trimmed == "" {
							continue
						}
						lines = append(lines, Highlight(trimmed, query))
					}
					if len(lines) == 0 {
						continue
					}
					subMatched = true
					indented := make([]string, len(lines))
					for i, l := range lines {
						indented[i] = "&nbsp;&nbsp;&nbsp;&nbsp;" + l
					}
					nested = append(nested, "<div style='margin:0;padding:0'>"+strings.Join(indented, "<br>")+"</div>")
				}
			}

			if !paragraphMatched && !subMatched {
				continue
			}

			switch {
			case !articleMatched && !firstParagraphEmitted:
				pieces = append(pieces, Highlight(article.ArticleContent, query)+" "+Highlight(paragraph.ParagraphContent, query))
				firstParagraphEmitted = true
			case !firstParagraphEmitted:
				pieces = append(pieces, Highlight(paragraph.ParagraphContent, query))
				firstParagraphEmitted = true
			default:
				pieces = append(pieces, Highlight(paragraph.ParagraphContent, query))
			}
			pieces = append(pieces, nested...)
		}

		if len(pieces) > 0 {
			results = append(results, strings.Join(pieces, "<br>"))
		}
	}
	return results
}
