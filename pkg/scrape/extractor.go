package scrape

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
)

// ErrNoContent means the page was fetched but no readable article text
// could be isolated from it.
var ErrNoContent = errors.New("no readable content")

type Extractor struct {
	httpClient *http.Client
}

func NewExtractor() *Extractor {
	return &Extractor{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Extract fetches the page at pageURL and returns its main article text.
// Single attempt, no retry.
func (e *Extractor) Extract(pageURL string) (string, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("scrape url: %w", err)
	}

	resp, err := e.httpClient.Get(pageURL)
	if err != nil {
		return "", fmt.Errorf("scrape fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("scrape status: %d", resp.StatusCode)
	}

	article, err := readability.FromReader(resp.Body, parsed)
	if err != nil {
		return "", ErrNoContent
	}

	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		return "", ErrNoContent
	}

	return text, nil
}
