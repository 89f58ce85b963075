package locus

import "testing"

func TestFormatStripsEmptyClauseMarker(t *testing.T) {
	if got, want := Format("제12조제항"), "제12조항"; got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormatStripsStrayPeriods(t *testing.T) {
	if got, want := Format("제12조제3항제4.호"), "제12조제3항제4호"; got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
	if got, want := Format("제12조제3항제4호가.목"), "제12조제3항제4호가목"; got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestParseArticleOnly(t *testing.T) {
	loc, err := Parse("제12조")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if loc.ArticleNum != 12 || loc.ArticleSub != 0 {
		t.Errorf("got %+v, want article 12", loc)
	}
}

func TestParseArticleWithSub(t *testing.T) {
	loc, err := Parse("제12조의2")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if loc.ArticleNum != 12 || loc.ArticleSub != 2 {
		t.Errorf("got %+v, want article 12 sub 2", loc)
	}
}

func TestParseFullCitation(t *testing.T) {
	loc, err := Parse("제12조제3항제4호가목")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	want := Locus{ArticleNum: 12, Clause: 3, Item: 4, SubItem: '가'}
	if loc != want {
		t.Errorf("got %+v, want %+v", loc, want)
	}
}

func TestParseTitleOnly(t *testing.T) {
	loc, err := Parse("제5조 제목")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if !loc.TitleOnly || loc.TitleAndBody {
		t.Errorf("got %+v, want title-only", loc)
	}
}

func TestParseTitleAndBody(t *testing.T) {
	loc, err := Parse("제5조 제목 및 본문")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if !loc.TitleAndBody {
		t.Errorf("got %+v, want title and body", loc)
	}
}

func TestGroupEmpty(t *testing.T) {
	got, err := Group(nil)
	if err != nil {
		t.Fatalf("Group error: %v", err)
	}
	if got != "" {
		t.Errorf("Group(nil) = %q, want empty", got)
	}
}

func TestGroupSingleLocation(t *testing.T) {
	got, err := Group([]string{"제12조"})
	if err != nil {
		t.Fatalf("Group error: %v", err)
	}
	if got != "제12조" {
		t.Errorf("Group = %q, want 제12조", got)
	}
}

func TestGroupMultipleArticles(t *testing.T) {
	got, err := Group([]string{"제12조", "제5조"})
	if err != nil {
		t.Fatalf("Group error: %v", err)
	}
	if got != "제5조 및 제12조" {
		t.Errorf("Group = %q, want 제5조 및 제12조", got)
	}
}

func TestGroupSameArticleMultipleClausesNoItems(t *testing.T) {
	got, err := Group([]string{"제12조제3항", "제12조제1항"})
	if err != nil {
		t.Fatalf("Group error: %v", err)
	}
	if got != "제12조제1항 및 제3항" {
		t.Errorf("Group = %q, want 제12조제1항 및 제3항", got)
	}
}

func TestGroupItemsJoinedByMiddleDot(t *testing.T) {
	got, err := Group([]string{"제12조제3항제4호", "제12조제3항제5호"})
	if err != nil {
		t.Fatalf("Group error: %v", err)
	}
	if got != "제12조제3항제4ㆍ제5호" {
		t.Errorf("Group = %q, want 제12조제3항제4ㆍ제5호", got)
	}
}
