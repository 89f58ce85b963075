package amend

import (
	"strings"
	"testing"

	"github.com/pyhub-apps/gaejeong-cli/internal/lawdoc"
)

func sampleLaw() lawdoc.Law {
	return lawdoc.Law{
		BasicInfo: lawdoc.BasicInfo{LawName: "가상법"},
		Articles: lawdoc.ArticlesGroup{
			ArticleUnits: []lawdoc.ArticleUnit{
				{
					ArticleNumber:  "12",
					ArticleName:    "제12조",
					ArticleContent: "지방법원을 설치한다.",
				},
				{
					ArticleNumber:  "13",
					ArticleName:    "제13조",
					ArticleContent: "지방법원장 임명한다.",
				},
				{
					ArticleNumber:  "1",
					ArticleName:    "부칙",
					ArticleContent: "지방법원은 시행일부터 효력을 가진다.",
				},
			},
		},
	}
}

func TestExtractChunksSkipsSupplementary(t *testing.T) {
	chunks := ExtractChunks(sampleLaw(), "지방법원", "지역법원")
	for key := range chunks {
		if key.Chunk == "" {
			t.Fatalf("unexpected empty chunk key")
		}
	}
	found := false
	for key := range chunks {
		if key.Chunk == "지방법원" && key.Particle == "을" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected to find chunk 지방법원 with particle 을, got %+v", chunks)
	}
	for _, locations := range chunks {
		for _, loc := range locations {
			if strings.Contains(loc, "부칙") {
				t.Errorf("supplementary-provision location leaked into chunks: %q", loc)
			}
		}
	}
}

func TestExtractChunksCompoundTail(t *testing.T) {
	chunks := ExtractChunks(sampleLaw(), "지방법원", "지역법원")
	foundCompound := false
	for key := range chunks {
		if key.Chunk == "지방법원장" {
			foundCompound = true
		}
	}
	if !foundCompound {
		t.Errorf("expected compound chunk 지방법원장 to survive unmodified, got %+v", chunks)
	}
}

func TestRunLawProducesAmendmentBlock(t *testing.T) {
	block, ok, err := RunLaw("가상법", sampleLaw(), "지방법원", "지역법원")
	if err != nil {
		t.Fatalf("RunLaw error: %v", err)
	}
	if !ok {
		t.Fatalf("RunLaw reported no amendment sites")
	}
	if !strings.HasPrefix(block, "가상법 일부를 다음과 같이 개정한다.<br>") {
		t.Errorf("block = %q, want 가상법 prefix", block)
	}
	if !strings.Contains(block, `"지방법원"을 "지역법원"으로 한다.`) {
		t.Errorf("block missing expected rewrite sentence: %q", block)
	}
}

func TestRunLawNoMatches(t *testing.T) {
	_, ok, err := RunLaw("가상법", sampleLaw(), "존재하지않는단어", "대체어")
	if err != nil {
		t.Fatalf("RunLaw error: %v", err)
	}
	if ok {
		t.Errorf("RunLaw reported a match for a word that doesn't appear")
	}
}

func TestRunBatchNumbersLawsWithCircledDigits(t *testing.T) {
	laws := []NamedLaw{
		{Name: "가상법", Law: sampleLaw()},
		{Name: "가상법2", Law: sampleLaw()},
	}
	results, skipped := RunBatch(laws, "지방법원", "지역법원")
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2: %+v / skipped %+v", len(results), results, skipped)
	}
	if !strings.HasPrefix(results[0], "① 가상법") {
		t.Errorf("results[0] = %q, want ① prefix", results[0])
	}
	if !strings.HasPrefix(results[1], "② 가상법2") {
		t.Errorf("results[1] = %q, want ② prefix", results[1])
	}
}

func TestRunBatchNoTargetsFallback(t *testing.T) {
	laws := []NamedLaw{{Name: "가상법", Law: sampleLaw()}}
	results, _ := RunBatch(laws, "존재하지않는단어", "대체어")
	if len(results) != 1 || results[0] != noAmendmentTargets {
		t.Errorf("results = %+v, want fallback placeholder", results)
	}
}

func TestNumberPrefixBeyondCircledRange(t *testing.T) {
	if got, want := numberPrefix(21), "(21)"; got != want {
		t.Errorf("numberPrefix(21) = %q, want %q", got, want)
	}
	if got, want := numberPrefix(1), "①"; got != want {
		t.Errorf("numberPrefix(1) = %q, want %q", got, want)
	}
}
