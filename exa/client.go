// Package exa is a client for the Exa neural search API.
package exa

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var (
	ErrNotSetAuth = errors.New("API key not set")
	ErrEmptyQuery = errors.New("query cannot be empty")
)

const (
	defaultBaseURL        = "https://api.exa.ai"
	searchEndpoint        = "/search"
	defaultNumResults     = 5
	defaultMaxCharacters  = 2000
	defaultHighlightCount = 3
	defaultNumSentences   = 2
)

// Client is a client for the Exa search API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option is a function that configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// WithAPIKey sets the API key for the client.
func WithAPIKey(apiKey string) Option {
	return func(opts *clientOptions) {
		opts.apiKey = apiKey
	}
}

// WithBaseURL sets the base URL for the API.
func WithBaseURL(baseURL string) Option {
	return func(opts *clientOptions) {
		opts.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client for the API.
func WithHTTPClient(client *http.Client) Option {
	return func(opts *clientOptions) {
		opts.httpClient = client
	}
}

// New creates a new Client with the given options.
func New(opts ...Option) (*Client, error) {
	options := &clientOptions{
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(options)
	}

	if options.apiKey == "" {
		return nil, ErrNotSetAuth
	}

	return &Client{
		apiKey:     options.apiKey,
		baseURL:    strings.TrimSuffix(options.baseURL, "/"),
		httpClient: options.httpClient,
	}, nil
}

// SearchRequest represents a request to the Exa search API.
type SearchRequest struct {
	Query         string           `json:"query"`
	Type          string           `json:"type,omitempty"`
	UseAutoprompt bool             `json:"useAutoprompt,omitempty"`
	NumResults    int              `json:"numResults,omitempty"`
	Contents      *ContentsRequest `json:"contents,omitempty"`
}

// ContentsRequest asks the API to return page text and highlights per result.
type ContentsRequest struct {
	Text       *TextOptions      `json:"text,omitempty"`
	Highlights *HighlightOptions `json:"highlights,omitempty"`
}

// TextOptions controls the text body returned for each result.
type TextOptions struct {
	MaxCharacters   int  `json:"maxCharacters,omitempty"`
	IncludeHTMLTags bool `json:"includeHtmlTags"`
}

// HighlightOptions controls the highlight snippets returned for each result.
type HighlightOptions struct {
	HighlightsPerURL int    `json:"highlightsPerUrl,omitempty"`
	NumSentences     int    `json:"numSentences,omitempty"`
	Query            string `json:"query,omitempty"`
}

// SearchResponse represents a response from the Exa search API.
type SearchResponse struct {
	RequestID        string   `json:"requestId"`
	AutopromptString string   `json:"autopromptString,omitempty"`
	Results          []Result `json:"results"`
}

// Result is a single search result.
type Result struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	URL             string    `json:"url"`
	PublishedDate   string    `json:"publishedDate,omitempty"`
	Author          string    `json:"author,omitempty"`
	Score           float64   `json:"score,omitempty"`
	Text            string    `json:"text,omitempty"`
	Highlights      []string  `json:"highlights,omitempty"`
	HighlightScores []float64 `json:"highlightScores,omitempty"`
}

// SearchAndContents runs a neural search with autoprompt enabled and asks for
// capped page text plus query-focused highlights for each result.
func (c *Client) SearchAndContents(ctx context.Context, query string, numResults int) (*SearchResponse, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	if numResults <= 0 {
		numResults = defaultNumResults
	}

	req := &SearchRequest{
		Query:         query,
		Type:          "neural",
		UseAutoprompt: true,
		NumResults:    numResults,
		Contents: &ContentsRequest{
			Text: &TextOptions{
				MaxCharacters:   defaultMaxCharacters,
				IncludeHTMLTags: false,
			},
			Highlights: &HighlightOptions{
				HighlightsPerURL: defaultHighlightCount,
				NumSentences:     defaultNumSentences,
				Query:            query,
			},
		},
	}

	return c.Search(ctx, req)
}

// Search sends a raw search request.
func (c *Client) Search(ctx context.Context, req *SearchRequest) (*SearchResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := c.baseURL + searchEndpoint
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(respBody))
	}

	var result SearchResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	return &result, nil
}
