// Package locus models a single citation location inside a statute — an
// article, optionally a sub-article, paragraph, item, and sub-item, plus
// whether the match fell in the article's title — and implements spec.md
// §4.4's aggregator: sorting locations into statute order and rendering
// them back out with the correct comma/및/ㆍ conjunctions.
package locus

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/samber/oops"
)

// Locus is a fully parsed citation path, e.g. "제12조의2제3항제4호가목".
type Locus struct {
	ArticleNum   int
	ArticleSub   int  // "의N" branch number; 0 if the article has no branch
	Clause       int  // 항 number; 0 if the location is at article level
	Item         int  // 호 number; 0 if the location has no item
	SubItem      rune // 목 letter (가,나,다…); 0 if the location has no sub-item
	TitleOnly    bool // location matched only in 조문제목
	TitleAndBody bool // location matched in both 조문제목 and 조문내용
}

// citationLexer tokenizes a rendered location string. Order matters:
// keyword literals are checked before the single-syllable Hangul fallback
// so they are never mistaken for a sub-item letter.
var citationLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "TitleBody", Pattern: `제목 및 본문`},
	{Name: "Title", Pattern: `제목`},
	{Name: "Number", Pattern: `[0-9]+`},
	{Name: "Ui", Pattern: `의`},
	{Name: "Jo", Pattern: `조`},
	{Name: "Hang", Pattern: `항`},
	{Name: "Ho", Pattern: `호`},
	{Name: "Mok", Pattern: `목`},
	{Name: "Je", Pattern: `제`},
	{Name: "Hangul", Pattern: `[가-힣]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// locusAST is the participle grammar for a rendered location string.
// Grammar: 제 NUM 조 (의 NUM)? ((제목 (및 본문)?) | ((제 NUM 항)? (제 NUM 호)? (HANGUL 목)?))
type locusAST struct {
	Pos        lexer.Position `parser:""`
	ArticleNum string         `parser:"Je @Number Jo"`
	ArticleSub string         `parser:"(Ui @Number)?"`
	TitleBody  string         `parser:"( @TitleBody"`
	TitleOnly  string         `parser:"| @Title"`
	Clause     string         `parser:"| (Je @Number Hang)?"`
	Item       string         `parser:"  (Je @Number Ho)?"`
	SubItem    string         `parser:"  (@Hangul Mok)? )"`
}

var citationParser = participle.MustBuild[locusAST](
	participle.Lexer(citationLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// Parse parses a rendered location string, as produced by internal/amend's
// driver, into a structured Locus.
func Parse(s string) (Locus, error) {
	ast, err := citationParser.ParseString("", s)
	if err != nil {
		return Locus{}, oops.With("location", s).Wrapf(err, "parsing citation location")
	}

	loc := Locus{}
	fmt.Sscanf(ast.ArticleNum, "%d", &loc.ArticleNum)
	if ast.ArticleSub != "" {
		fmt.Sscanf(ast.ArticleSub, "%d", &loc.ArticleSub)
	}
	if ast.TitleBody != "" {
		loc.TitleAndBody = true
	} else if ast.TitleOnly != "" {
		loc.TitleOnly = true
	} else {
		if ast.Clause != "" {
			fmt.Sscanf(ast.Clause, "%d", &loc.Clause)
		}
		if ast.Item != "" {
			fmt.Sscanf(ast.Item, "%d", &loc.Item)
		}
		if ast.SubItem != "" {
			loc.SubItem = []rune(ast.SubItem)[0]
		}
	}
	return loc, nil
}

// Format normalizes a rendered location string: an empty 항 number leaves a
// stray "제" immediately before "항", and item/sub-item numbers picked up a
// trailing period from upstream XML formatting; both are stripped.
func Format(s string) string {
	s = strings.Replace(s, "제항", "항", 1)
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '.' {
			if i+1 < len(runes) && runes[i+1] == '호' {
				continue
			}
			if i > 0 && isHangul(runes[i-1]) && i+1 < len(runes) && runes[i+1] == '목' {
				continue
			}
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}

func isHangul(r rune) bool {
	return r >= 0xAC00 && r < 0xAC00+11172
}

// articleKey renders the article+sub-article prefix, e.g. "제12조의2".
func (l Locus) articleKey() string {
	if l.ArticleSub != 0 {
		return fmt.Sprintf("제%d조의%d", l.ArticleNum, l.ArticleSub)
	}
	return fmt.Sprintf("제%d조", l.ArticleNum)
}

// clauseKey renders the paragraph suffix, or "" if Clause is unset.
func (l Locus) clauseKey() string {
	if l.Clause == 0 {
		return ""
	}
	return fmt.Sprintf("제%d항", l.Clause)
}

// titleKey renders the title-match suffix.
func (l Locus) titleKey() string {
	if l.TitleAndBody {
		return " 제목 및 본문"
	}
	if l.TitleOnly {
		return " 제목"
	}
	return ""
}

// itemGoalKey renders the 호/목 tail, or "" if neither is set.
func (l Locus) itemGoalKey() string {
	var b strings.Builder
	if l.Item != 0 {
		fmt.Fprintf(&b, "제%d호", l.Item)
	}
	if l.SubItem != 0 {
		fmt.Fprintf(&b, "%c목", l.SubItem)
	}
	return b.String()
}

// sortKey reproduces parse_location's lexicographic sort tuple: article,
// article-sub, clause, item, sub-item (as an ordinal), title flag.
func (l Locus) sortKey() [6]int {
	subItemOrdinal := 0
	if l.SubItem != 0 {
		subItemOrdinal = int(l.SubItem-'가') + 1
	}
	titleFlag := 0
	if l.TitleOnly || l.TitleAndBody {
		titleFlag = 1
	}
	return [6]int{l.ArticleNum, l.ArticleSub, l.Clause, l.Item, subItemOrdinal, titleFlag}
}

func less(a, b [6]int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// groupKey identifies a (article, clause, title) bucket; locations sharing
// one render as a single article/paragraph citation with their items and
// sub-items folded together via ㆍ.
type groupKey struct {
	article string
	clause  string
	title   string
}

// entry pairs a parsed Locus with its group key and rendered item-goal tail.
type entry struct {
	loc  Locus
	key  groupKey
	item string
}

// clauseGroup is one (article, clause, title) bucket's item citations.
type clauseGroup struct {
	clause, title string
	items         []entry
}

// Group implements spec.md §4.4's aggregator: it sorts locs into statute
// order, groups same-article/paragraph citations, and renders the result
// joined by ", " with a final " 및 " before the last element, and ㆍ between
// item/sub-item citations that share an article and paragraph.
func Group(locs []string) (string, error) {
	if len(locs) == 0 {
		return "", nil
	}

	entries := make([]entry, 0, len(locs))
	for _, raw := range locs {
		formatted := Format(raw)
		parsed, err := Parse(formatted)
		if err != nil {
			return "", oops.With("location", raw).Wrapf(err, "grouping citation locations")
		}
		entries = append(entries, entry{
			loc:  parsed,
			key:  groupKey{article: parsed.articleKey(), clause: parsed.clauseKey(), title: parsed.titleKey()},
			item: parsed.itemGoalKey(),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return less(entries[i].loc.sortKey(), entries[j].loc.sortKey())
	})

	groupOrder := []groupKey{}
	groupItems := map[groupKey][]entry{}
	seen := map[groupKey]bool{}
	for _, e := range entries {
		if !seen[e.key] {
			seen[e.key] = true
			groupOrder = append(groupOrder, e.key)
		}
		if e.item != "" {
			groupItems[e.key] = append(groupItems[e.key], e)
		}
	}

	articleOrder := []string{}
	byArticle := map[string][]clauseGroup{}
	for _, k := range groupOrder {
		if _, ok := byArticle[k.article]; !ok {
			articleOrder = append(articleOrder, k.article)
		}
		byArticle[k.article] = append(byArticle[k.article], clauseGroup{clause: k.clause, title: k.title, items: groupItems[k]})
	}

	var resultParts []string
	for _, article := range articleOrder {
		clauses := byArticle[article]
		if len(clauses) > 1 {
			var clausesNoItems []clauseGroup
			for _, c := range clauses {
				if len(c.items) == 0 {
					clausesNoItems = append(clausesNoItems, c)
				}
			}
			if len(clausesNoItems) > 0 {
				parts := make([]string, 0, len(clausesNoItems))
				for i, c := range clausesNoItems {
					if i == 0 {
						parts = append(parts, fmt.Sprintf("%s%s%s", article, c.title, c.clause))
					} else {
						parts = append(parts, c.clause)
					}
				}
				resultParts = append(resultParts, joinWithFinalAnd(parts))
			}
			for _, c := range clauses {
				if len(c.items) == 0 {
					continue
				}
				resultParts = append(resultParts, renderArticleWithItems(article, c))
			}
		} else {
			resultParts = append(resultParts, renderArticleWithItems(article, clauses[0]))
		}
	}

	return joinWithFinalAnd(resultParts), nil
}

func renderArticleWithItems(article string, c clauseGroup) string {
	s := article + c.title + c.clause
	if len(c.items) == 0 {
		return s
	}
	cores := make([]string, len(c.items))
	var tail string
	for i, it := range c.items {
		cores[i], tail = splitItemTail(it.item)
	}
	return s + strings.Join(cores, "ㆍ") + tail
}

// splitItemTail separates a rendered item-goal string ("제4호", "가목",
// "제4호가목") into its joinable core and its shared trailing tag (호 or
// 목), so several items sharing one paragraph can be rendered as
// "제4ㆍ제5호" instead of repeating the tag per item.
func splitItemTail(s string) (core, tail string) {
	runes := []rune(s)
	if len(runes) == 0 {
		return s, ""
	}
	last := runes[len(runes)-1]
	if last == '호' || last == '목' {
		return string(runes[:len(runes)-1]), string(last)
	}
	return s, ""
}

// joinWithFinalAnd joins parts with ", " except the final separator, which
// is " 및 ".
func joinWithFinalAnd(parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + " 및 " + parts[len(parts)-1]
	}
}
