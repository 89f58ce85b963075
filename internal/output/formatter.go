// Package output renders amend and search results to table, JSON, or HTML,
// following the shape of the teacher's internal/output.Formatter but wired
// to this module's own result types and to a real tablewriter renderer
// instead of the teacher's (never-exercised) RenderTable helpers.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/pyhub-apps/gaejeong-cli/internal/amend"
	"github.com/pyhub-apps/gaejeong-cli/internal/search"
)

// Formatter renders command results in one of a small set of formats.
type Formatter struct {
	format string
}

// NewFormatter creates a Formatter for the given output format
// (table, json, or html; the empty string defaults to table).
func NewFormatter(format string) *Formatter {
	return &Formatter{format: strings.ToLower(format)}
}

// FormatAmendResults renders the numbered amendment blocks produced by
// amend.RunBatch, plus a diagnostic line per skipped law.
func (f *Formatter) FormatAmendResults(results []string, skipped []amend.SkippedLaw) (string, error) {
	switch f.format {
	case "table", "":
		return f.amendTable(results, skipped), nil
	case "json":
		return f.amendJSON(results, skipped)
	case "html":
		return f.amendHTML(results, skipped), nil
	default:
		return "", fmt.Errorf("지원하지 않는 출력 형식: %s (table, json, html 중 선택)", f.format)
	}
}

func (f *Formatter) amendJSON(results []string, skipped []amend.SkippedLaw) (string, error) {
	payload := struct {
		Results []string          `json:"results"`
		Skipped []amend.SkippedLaw `json:"skipped,omitempty"`
	}{Results: results, Skipped: skipped}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("JSON 변환 실패: %w", err)
	}
	return string(data) + "\n", nil
}

func (f *Formatter) amendTable(results []string, skipped []amend.SkippedLaw) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"번호", "개정문"})
	table.SetAutoWrapText(false)
	table.SetRowLine(true)
	for i, r := range results {
		table.Append([]string{fmt.Sprintf("%d", i+1), strings.ReplaceAll(r, "<br>", "\n")})
	}
	table.Render()

	if len(skipped) > 0 {
		fmt.Fprintf(&buf, "\n건너뛴 법령 %d건:\n", len(skipped))
		for _, s := range skipped {
			fmt.Fprintf(&buf, "  - %s: %s\n", s.Name, s.Reason)
		}
	}

	return buf.String()
}

func (f *Formatter) amendHTML(results []string, skipped []amend.SkippedLaw) string {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, `<!DOCTYPE html>`)
	fmt.Fprintln(&buf, `<html lang="ko">`)
	fmt.Fprintln(&buf, `<head><meta charset="UTF-8"><title>개정문</title></head>`)
	fmt.Fprintln(&buf, `<body>`)
	for _, r := range results {
		fmt.Fprintf(&buf, "  <p>%s</p>\n", r)
	}
	if len(skipped) > 0 {
		fmt.Fprintln(&buf, `  <h3>건너뛴 법령</h3>`)
		fmt.Fprintln(&buf, `  <ul>`)
		for _, s := range skipped {
			fmt.Fprintf(&buf, "    <li>%s: %s</li>\n", s.Name, s.Reason)
		}
		fmt.Fprintln(&buf, `  </ul>`)
	}
	fmt.Fprintln(&buf, `</body>`)
	fmt.Fprintln(&buf, `</html>`)
	return buf.String()
}

// FormatSearchResults renders one search.LawResult per matched law.
func (f *Formatter) FormatSearchResults(results []search.LawResult) (string, error) {
	switch f.format {
	case "table", "":
		return f.searchTable(results), nil
	case "json":
		return f.searchJSON(results)
	case "html":
		return f.searchHTML(results), nil
	default:
		return "", fmt.Errorf("지원하지 않는 출력 형식: %s (table, json, html 중 선택)", f.format)
	}
}

func (f *Formatter) searchJSON(results []search.LawResult) (string, error) {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", fmt.Errorf("JSON 변환 실패: %w", err)
	}
	return string(data) + "\n", nil
}

func (f *Formatter) searchTable(results []search.LawResult) string {
	var buf bytes.Buffer

	if len(results) == 0 {
		fmt.Fprintln(&buf, "검색 결과가 없습니다.")
		return buf.String()
	}

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"법령명", "일치 건수"})
	for _, r := range results {
		table.Append([]string{r.LawName, fmt.Sprintf("%d", len(r.Snippets))})
	}
	table.Render()

	fmt.Fprintln(&buf)
	for _, r := range results {
		fmt.Fprintf(&buf, "■ %s\n", r.LawName)
		for _, snippet := range r.Snippets {
			fmt.Fprintf(&buf, "  %s\n", snippet)
		}
	}

	return buf.String()
}

func (f *Formatter) searchHTML(results []search.LawResult) string {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, `<!DOCTYPE html>`)
	fmt.Fprintln(&buf, `<html lang="ko">`)
	fmt.Fprintln(&buf, `<head><meta charset="UTF-8"><title>검색 결과</title></head>`)
	fmt.Fprintln(&buf, `<body>`)
	if len(results) == 0 {
		fmt.Fprintln(&buf, `  <p><em>검색 결과가 없습니다.</em></p>`)
	}
	for _, r := range results {
		fmt.Fprintf(&buf, "  <h3>%s</h3>\n", r.LawName)
		for _, snippet := range r.Snippets {
			fmt.Fprintf(&buf, "  <p>%s</p>\n", snippet)
		}
	}
	fmt.Fprintln(&buf, `</body>`)
	fmt.Fprintln(&buf, `</html>`)
	return buf.String()
}
