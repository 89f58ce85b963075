package corpus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSearchParsesLawList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		w.Write([]byte(`<LawSearch>
			<totalCnt>1</totalCnt>
			<law>
				<법령일련번호>12345</법령일련번호>
				<법령ID>001234</법령ID>
				<법령명한글>가상법</법령명한글>
			</law>
		</LawSearch>`))
	}))
	defer srv.Close()

	c := NewClientWithURLs("test-key", srv.URL, srv.URL)
	laws, err := c.Search(context.Background(), "가상법")
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(laws) != 1 || laws[0].MST != "12345" || laws[0].Name != "가상법" {
		t.Errorf("laws = %+v", laws)
	}
}

func TestFetchTextParsesDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		w.Write([]byte(`<법령>
			<기본정보><법령명_한글>가상법</법령명_한글></기본정보>
			<조문>
				<조문단위>
					<조문번호>1</조문번호>
					<조문내용>지방법원을 설치한다.</조문내용>
				</조문단위>
			</조문>
		</법령>`))
	}))
	defer srv.Close()

	c := NewClientWithURLs("test-key", srv.URL, srv.URL)
	doc, err := c.FetchText(context.Background(), "12345")
	if err != nil {
		t.Fatalf("FetchText error: %v", err)
	}
	if doc.Law.BasicInfo.LawName != "가상법" {
		t.Errorf("LawName = %q", doc.Law.BasicInfo.LawName)
	}
	if len(doc.Law.Articles.ArticleUnits) != 1 {
		t.Fatalf("got %d articles", len(doc.Law.Articles.ArticleUnits))
	}
}

func TestDoRequestRetriesOnServerError(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`<법령><기본정보><법령명_한글>재시도법</법령명_한글></기본정보></법령>`))
	}))
	defer srv.Close()

	c := NewClientWithURLs("test-key", srv.URL, srv.URL)
	c.retryBaseDelay = 0
	doc, err := c.FetchText(context.Background(), "1")
	if err != nil {
		t.Fatalf("FetchText error: %v", err)
	}
	if attempts < 2 {
		t.Errorf("expected at least 2 attempts, got %d", attempts)
	}
	if doc.Law.BasicInfo.LawName != "재시도법" {
		t.Errorf("LawName = %q", doc.Law.BasicInfo.LawName)
	}
}

func TestDoRequestFailsOnClientError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClientWithURLs("test-key", srv.URL, srv.URL)
	_, err := c.FetchText(context.Background(), "1")
	if err == nil {
		t.Fatal("expected error for HTTP 400")
	}
}

func TestFetchAllCollectsPerLawErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mst := r.URL.Query().Get("MST")
		if mst == "bad" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`<법령><기본정보><법령명_한글>법` + mst + `</법령명_한글></기본정보></법령>`))
	}))
	defer srv.Close()

	c := NewClientWithURLs("test-key", srv.URL, srv.URL)
	docs, errs := c.FetchAll(context.Background(), []string{"1", "bad", "2"})
	if len(docs) != 2 {
		t.Errorf("got %d docs, want 2: %+v", len(docs), docs)
	}
	if len(errs) != 1 || !strings.Contains(errs[0].Error(), "bad") {
		t.Errorf("errs = %+v", errs)
	}
}
