// Package scrape extracts readable text from web pages. It is the content
// fallback for search results that arrive without text or highlights.
package scrape

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	defaultMaxCharacters = 2000
	defaultTimeout       = 15 * time.Second
	userAgent            = "askweb/1.0 (+https://github.com/smallnest/askweb)"
)

// Scraper fetches a page and extracts its visible text.
type Scraper struct {
	httpClient *http.Client
	maxChars   int
}

// Option is a function that configures a Scraper.
type Option func(*Scraper)

// WithHTTPClient sets the HTTP client used for fetching pages.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Scraper) {
		s.httpClient = client
	}
}

// WithMaxCharacters caps the extracted text length.
func WithMaxCharacters(n int) Option {
	return func(s *Scraper) {
		if n > 0 {
			s.maxChars = n
		}
	}
}

// New creates a Scraper.
func New(opts ...Option) *Scraper {
	s := &Scraper{
		httpClient: &http.Client{Timeout: defaultTimeout},
		maxChars:   defaultMaxCharacters,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Extract fetches url and returns its readable text, capped at the configured
// length. Script, style and navigation chrome are dropped and whitespace is
// collapsed.
func (s *Scraper) Extract(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	doc.Find("script, style, noscript, nav, header, footer, aside").Remove()

	var parts []string
	doc.Find("p, h1, h2, h3, li").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text != "" {
			parts = append(parts, text)
		}
	})

	text := strings.Join(parts, " ")
	if text == "" {
		// Pages without semantic markup still have body text.
		text = strings.Join(strings.Fields(doc.Find("body").Text()), " ")
	}

	if len(text) > s.maxChars {
		text = text[:s.maxChars]
	}

	return text, nil
}
