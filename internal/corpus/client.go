// Package corpus fetches statute text from the National Law Information
// Center (law.go.kr) Open API, adapted from the teacher's internal/api
// NLIC client: same lawSearch.do/lawService.do endpoints, same retry/
// backoff shape, but returning this module's own lawdoc.Document instead
// of the teacher's JSON-oriented LawDetail, and fetching a batch of laws
// concurrently with sourcegraph/conc instead of one at a time.
package corpus

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/pyhub-apps/gaejeong-cli/internal/lawdoc"
	"github.com/pyhub-apps/gaejeong-cli/internal/logger"
)

const (
	// searchURL is the law.go.kr law-list search endpoint.
	searchURL = "https://www.law.go.kr/DRF/lawSearch.do"
	// textURL is the law.go.kr full-text-by-MST endpoint.
	textURL = "https://www.law.go.kr/DRF/lawService.do"

	// DefaultTimeout bounds a single HTTP round trip.
	DefaultTimeout = 10 * time.Second
	// MaxRetries bounds retryable-error attempts.
	MaxRetries = 3
	// InitialRetryDelay is the first backoff delay; it doubles each retry.
	InitialRetryDelay = 1 * time.Second
	// MaxConcurrentFetches bounds how many laws are fetched in parallel.
	MaxConcurrentFetches = 4
)

// Client fetches law lists and full text from the NLIC Open API.
type Client struct {
	httpClient     *http.Client
	searchURL      string
	textURL        string
	apiKey         string
	retryBaseDelay time.Duration
}

// NewClient creates a Client authenticated with apiKey (the NLIC "OC" value).
func NewClient(apiKey string) *Client {
	return &Client{
		httpClient:     &http.Client{Timeout: DefaultTimeout},
		searchURL:      searchURL,
		textURL:        textURL,
		apiKey:         apiKey,
		retryBaseDelay: InitialRetryDelay,
	}
}

// NewClientWithURLs creates a Client pointed at custom endpoints, for tests.
func NewClientWithURLs(apiKey, search, text string) *Client {
	return &Client{
		httpClient:     &http.Client{Timeout: DefaultTimeout},
		searchURL:      search,
		textURL:        text,
		apiKey:         apiKey,
		retryBaseDelay: InitialRetryDelay,
	}
}

// Search finds laws by name, returning enough to identify each for FetchText.
func (c *Client) Search(ctx context.Context, query string) ([]LawListItem, error) {
	params := url.Values{}
	params.Set("OC", c.apiKey)
	params.Set("target", "law")
	params.Set("type", "XML")
	params.Set("query", query)
	params.Set("display", "100")

	fullURL := fmt.Sprintf("%s?%s", c.searchURL, params.Encode())
	logger.Debug("corpus search request: %s", fullURL)

	body, err := c.doRequestWithRetry(ctx, fullURL)
	if err != nil {
		return nil, err
	}

	var resp searchResponseXML
	if err := xml.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("법령 목록 XML 파싱 실패: %w", err)
	}

	return resp.Laws, nil
}

// FetchText retrieves one law's full text by MST (법령일련번호).
func (c *Client) FetchText(ctx context.Context, mst string) (lawdoc.Document, error) {
	params := url.Values{}
	params.Set("OC", c.apiKey)
	params.Set("target", "law")
	params.Set("MST", mst)
	params.Set("type", "XML")

	fullURL := fmt.Sprintf("%s?%s", c.textURL, params.Encode())

	body, err := c.doRequestWithRetry(ctx, fullURL)
	if err != nil {
		return lawdoc.Document{}, err
	}

	// The response root element is <법령> itself, so it decodes into doc.Law.
	var doc lawdoc.Document
	if err := xml.Unmarshal(body, &doc.Law); err != nil {
		return lawdoc.Document{}, fmt.Errorf("법령 본문 XML 파싱 실패 (MST=%s): %w", mst, err)
	}

	return doc, nil
}

// fetchResult pairs a fetched document with the MST it came from, so
// FetchAll callers can match results back to their original search hit.
type fetchResult struct {
	MST string
	Doc lawdoc.Document
	Err error
}

// FetchAll retrieves full text for every MST concurrently, bounded by
// MaxConcurrentFetches and panic-safe via conc/pool. A single law's
// failure does not abort the others; its error is reported alongside
// the successful results.
func (c *Client) FetchAll(ctx context.Context, msts []string) ([]lawdoc.Document, []error) {
	p := pool.NewWithResults[fetchResult]().WithMaxGoroutines(MaxConcurrentFetches)

	for _, mst := range msts {
		mst := mst
		p.Go(func() fetchResult {
			doc, err := c.FetchText(ctx, mst)
			return fetchResult{MST: mst, Doc: doc, Err: err}
		})
	}

	results := p.Wait()

	var docs []lawdoc.Document
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("MST=%s: %w", r.MST, r.Err))
			continue
		}
		docs = append(docs, r.Doc)
	}

	return docs, errs
}

func (c *Client) doRequestWithRetry(ctx context.Context, requestURL string) ([]byte, error) {
	var lastErr error
	retryDelay := c.retryBaseDelay

	for attempt := 0; attempt < MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(retryDelay):
				retryDelay *= 2
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		body, err := c.doRequest(ctx, requestURL)
		if err == nil {
			return body, nil
		}

		lastErr = err
		if !shouldRetry(err) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("요청 실패 (재시도 %d회 초과): %w", MaxRetries, lastErr)
}

func (c *Client) doRequest(ctx context.Context, requestURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("요청 생성 실패: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("요청이 취소되었거나 시간 초과되었습니다: %w", ctx.Err())
		}
		return nil, &RetryableError{Err: fmt.Errorf("네트워크 에러: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, handleHTTPError(resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("응답 읽기 실패: %w", err)
	}

	if isAPIKeyError(body) {
		return nil, &APIKeyError{Message: extractAPIKeyErrorMessage(body)}
	}

	return body, nil
}

func handleHTTPError(statusCode int) error {
	switch statusCode {
	case http.StatusTooManyRequests, http.StatusRequestTimeout,
		http.StatusBadGateway, http.StatusServiceUnavailable,
		http.StatusGatewayTimeout, http.StatusInternalServerError:
		return &RetryableError{Err: &HTTPError{StatusCode: statusCode}}
	default:
		if statusCode >= 500 {
			return &RetryableError{Err: &HTTPError{StatusCode: statusCode}}
		}
		return &HTTPError{StatusCode: statusCode}
	}
}

func shouldRetry(err error) bool {
	var retryable *RetryableError
	if errors.As(err, &retryable) {
		return true
	}
	return strings.Contains(err.Error(), "네트워크") || strings.Contains(err.Error(), "시간 초과")
}

func isAPIKeyError(body []byte) bool {
	s := string(body)
	return strings.Contains(s, "미신청된 목록") || strings.Contains(s, "인증") && strings.Contains(strings.ToUpper(s), "ERROR")
}

func extractAPIKeyErrorMessage(body []byte) string {
	if strings.Contains(string(body), "미신청된 목록") {
		return "API 사용 권한이 없습니다. open.law.go.kr에서 OPEN API 신청 상태를 확인하세요"
	}
	return "API 인증에 실패했습니다. OC 값(이메일 ID)이 올바른지 확인하세요"
}
