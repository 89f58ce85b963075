package output

import (
	"strings"
	"testing"

	"github.com/pyhub-apps/gaejeong-cli/internal/amend"
	"github.com/pyhub-apps/gaejeong-cli/internal/search"
)

func TestFormatAmendResultsTable(t *testing.T) {
	f := NewFormatter("table")
	out, err := f.FormatAmendResults([]string{"① 가상법 일부를 다음과 같이 개정한다.<br>...\"."}, nil)
	if err != nil {
		t.Fatalf("FormatAmendResults error: %v", err)
	}
	if !strings.Contains(out, "가상법") {
		t.Errorf("table output missing content: %q", out)
	}
}

func TestFormatAmendResultsJSON(t *testing.T) {
	f := NewFormatter("json")
	out, err := f.FormatAmendResults([]string{"① 가상법..."}, []amend.SkippedLaw{{Name: "타법", Reason: "조문단위 없음"}})
	if err != nil {
		t.Fatalf("FormatAmendResults error: %v", err)
	}
	if !strings.Contains(out, `"results"`) || !strings.Contains(out, "타법") {
		t.Errorf("json output = %q", out)
	}
}

func TestFormatAmendResultsUnsupportedFormat(t *testing.T) {
	f := NewFormatter("yaml")
	if _, err := f.FormatAmendResults(nil, nil); err == nil {
		t.Errorf("expected error for unsupported format")
	}
}

func TestFormatSearchResultsTableEmpty(t *testing.T) {
	f := NewFormatter("table")
	out, err := f.FormatSearchResults(nil)
	if err != nil {
		t.Fatalf("FormatSearchResults error: %v", err)
	}
	if !strings.Contains(out, "검색 결과가 없습니다") {
		t.Errorf("output = %q", out)
	}
}

func TestFormatSearchResultsTableWithMatches(t *testing.T) {
	f := NewFormatter("table")
	out, err := f.FormatSearchResults([]search.LawResult{
		{LawName: "가상법", Snippets: []string{"<mark>지방법원</mark>을 설치한다."}},
	})
	if err != nil {
		t.Fatalf("FormatSearchResults error: %v", err)
	}
	if !strings.Contains(out, "가상법") || !strings.Contains(out, "지방법원") {
		t.Errorf("output = %q", out)
	}
}

func TestFormatSearchResultsHTML(t *testing.T) {
	f := NewFormatter("html")
	out, err := f.FormatSearchResults([]search.LawResult{{LawName: "가상법", Snippets: []string{"내용"}}})
	if err != nil {
		t.Fatalf("FormatSearchResults error: %v", err)
	}
	if !strings.Contains(out, "<html") || !strings.Contains(out, "가상법") {
		t.Errorf("output = %q", out)
	}
}
