package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Fetcher resolves one feed endpoint into its entries.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]RawEntry, error)
}

var _ Fetcher = (*HTTPFetcher)(nil)

// maxFeedSize caps how much of a response body is read.
var maxFeedSize int64 = 10 << 20

type HTTPFetcher struct {
	httpClient *http.Client
	parser     *Parser
	userAgent  string
}

func NewHTTPFetcher(httpClient *http.Client, parser *Parser, userAgent string) *HTTPFetcher {
	return &HTTPFetcher{
		httpClient: httpClient,
		parser:     parser,
		userAgent:  userAgent,
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]RawEntry, error) {
	data, err := f.fetch(ctx, url)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}

	entries, err := f.parser.Run(data)
	if err != nil {
		return nil, &ParseError{URL: url, Err: err}
	}

	return entries, nil
}

func (f *HTTPFetcher) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml;q=0.9, */*;q=0.8")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("HTTP error: %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if int64(len(data)) > maxFeedSize {
		return nil, fmt.Errorf("response body exceeds %d bytes", maxFeedSize)
	}

	return data, nil
}
