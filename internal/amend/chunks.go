// Package amend implements spec.md §4.5 and §4.6: the per-law driver that
// finds every occurrence of a search word inside one statute and groups it
// by rewrite rule, and the batch driver that runs that per-law pass across
// a whole search result set and renders the numbered amendment text.
package amend

import (
	"regexp"
	"sort"
	"strings"

	"github.com/pyhub-apps/gaejeong-cli/internal/classify"
	"github.com/pyhub-apps/gaejeong-cli/internal/lawdoc"
)

// tokenPattern mirrors the source system's tokenizer: a maximal run of
// Hangul syllables, Latin letters, or digits.
var tokenPattern = regexp.MustCompile(`[가-힣A-Za-z0-9]+`)

// ChunkKey identifies one distinct rewrite site: the matched chunk, its
// replacement, and whichever particle or excluded suffix followed it.
type ChunkKey struct {
	Chunk, Replaced, Particle, Suffix string
}

// ExtractChunks walks every article, paragraph, item, and sub-item of law
// (skipping 부칙) looking for findWord, and returns every distinct rewrite
// site found, each mapped to the citation locations it occurred at.
func ExtractChunks(law lawdoc.Law, findWord, replaceWord string) map[ChunkKey][]string {
	chunks := map[ChunkKey][]string{}

	record := func(content, location string) {
		if !strings.Contains(content, findWord) {
			return
		}
		for _, token := range tokenPattern.FindAllString(content, -1) {
			if !strings.Contains(token, findWord) {
				continue
			}
			result := classify.Classify(token, findWord)
			replaced := strings.ReplaceAll(result.Chunk, findWord, replaceWord)
			key := ChunkKey{Chunk: result.Chunk, Replaced: replaced}
			switch result.Kind {
			case classify.KindParticle:
				key.Particle = result.Tail
			case classify.KindSuffix:
				key.Suffix = result.Tail
			}
			chunks[key] = append(chunks[key], location)
		}
	}

	for _, article := range law.Articles.ArticleUnits {
		if article.IsSupplementary() {
			continue
		}
		articleID := article.ArticleID()

		titleMatch := strings.Contains(article.ArticleTitle, findWord)
		bodyMatch := strings.Contains(article.ArticleContent, findWord)
		locationSuffix := ""
		switch {
		case titleMatch && bodyMatch:
			locationSuffix = " 제목 및 본문"
		case titleMatch:
			locationSuffix = " 제목"
		}

		if titleMatch {
			record(article.ArticleTitle, articleID+" 제목")
		}
		if bodyMatch {
			loc := articleID
			if !titleMatch {
				loc += locationSuffix
			}
			record(article.ArticleContent, loc)
		}

		for _, paragraph := range article.Paragraphs {
			clauseNum := lawdoc.NormalizeNumber(paragraph.ParagraphNumber)
			clausePart := ""
			if clauseNum != "" {
				clausePart = "제" + clauseNum + "항"
			}

			record(paragraph.ParagraphContent, articleID+clausePart)

			for _, item := range paragraph.Items {
				itemLoc := articleID + clausePart + "제" + item.ItemNumber + "호"
				record(item.ItemContent, itemLoc)

				for _, sub := range item.SubItems {
					subLoc := itemLoc + sub.SubItemNumber + "목"
					for _, line := range splitNonEmptyLines(sub.SubItemContent) {
						record(line, subLoc)
					}
				}
			}
		}
	}

	return chunks
}

func splitNonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// sortedUnique deduplicates and sorts locations lexicographically, matching
// sorted(set(locations)) in the source system.
func sortedUnique(locations []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(locations))
	for _, l := range locations {
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	sort.Strings(out)
	return out
}
