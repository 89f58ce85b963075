// Package lawdoc is the XML data model for a single statute as returned by
// the National Law Information Center's lawService.do endpoint, per spec.md
// §3 and §6. Field names mirror the upstream API's Korean tag names exactly,
// the way the teacher's internal/api/types.go mirrors them for its own
// subset of the same API.
package lawdoc

import "strconv"

// Document is the root of a single law's XML body.
type Document struct {
	Law Law `xml:"법령"`
}

// Law holds the article tree for one statute.
type Law struct {
	BasicInfo BasicInfo      `xml:"기본정보"`
	Articles  ArticlesGroup  `xml:"조문"`
}

// BasicInfo carries the statute's display name.
type BasicInfo struct {
	LawName string `xml:"법령명_한글"`
}

// ArticlesGroup wraps the flat list of article units the API returns.
type ArticlesGroup struct {
	ArticleUnits []ArticleUnit `xml:"조문단위"`
}

// ArticleUnit is a single 조 (article): 제N조 or 제N조의M.
type ArticleUnit struct {
	ArticleNumber     string      `xml:"조문번호"`
	ArticleBranchNum  string      `xml:"조문가지번호"`
	ArticleName       string      `xml:"조문명"`
	ArticleTitle      string      `xml:"조문제목"`
	ArticleContent    string      `xml:"조문내용"`
	Paragraphs        []Paragraph `xml:"항"`
}

// Paragraph is a single 항 within an article.
type Paragraph struct {
	ParagraphNumber  string `xml:"항번호"`
	ParagraphContent string `xml:"항내용"`
	Items            []Item `xml:"호"`
}

// Item is a single 호 within a paragraph.
type Item struct {
	ItemNumber  string     `xml:"호번호"`
	ItemContent string     `xml:"호내용"`
	SubItems    []SubItem  `xml:"목"`
}

// SubItem is a single 목 within an item.
type SubItem struct {
	SubItemNumber  string `xml:"목번호"`
	SubItemContent string `xml:"목내용"`
}

// IsSupplementary reports whether this article belongs to the 부칙
// (supplementary provisions), which spec.md §4.5 excludes from matching.
func (a ArticleUnit) IsSupplementary() bool {
	return containsKorean(a.ArticleName, "부칙")
}

// ArticleID renders the article's citation prefix, e.g. "제12조" or
// "제12조의2", per make_article_number in the source system.
func (a ArticleUnit) ArticleID() string {
	branch := NormalizeNumber(a.ArticleBranchNum)
	if branch != "" && branch != "0" {
		return "제" + NormalizeNumber(a.ArticleNumber) + "조의" + branch
	}
	return "제" + NormalizeNumber(a.ArticleNumber) + "조"
}

func containsKorean(haystack, needle string) bool {
	hr, nr := []rune(haystack), []rune(needle)
	if len(nr) > len(hr) {
		return false
	}
	for i := 0; i+len(nr) <= len(hr); i++ {
		match := true
		for j := range nr {
			if hr[i+j] != nr[j] {
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

// NormalizeNumber mirrors normalize_number: it converts API-supplied
// paragraph/branch numbers — which are occasionally circled-digit forms
// like "①" rather than plain digits — into a decimal string, falling back
// to the raw text unchanged if it isn't a recognized numeral.
func NormalizeNumber(text string) string {
	trimmed := text
	for len(trimmed) > 0 && (trimmed[0] == ' ' || trimmed[0] == '\t') {
		trimmed = trimmed[1:]
	}
	if trimmed == "" {
		return ""
	}
	if n, ok := circledDigitValue([]rune(trimmed)[0]); ok {
		return strconv.Itoa(n)
	}
	if _, err := strconv.Atoi(trimmed); err == nil {
		return trimmed
	}
	return text
}

// circledDigitValue decodes the Unicode "circled digit" block (①-⑳, U+2460
// to U+2473) that 항번호 fields in this API use instead of plain digits.
func circledDigitValue(r rune) (int, bool) {
	const circledOne = 0x2460
	if r < circledOne || r > circledOne+19 {
		return 0, false
	}
	return int(r-circledOne) + 1, true
}
