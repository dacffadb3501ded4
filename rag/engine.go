// Package rag wires search retrieval and model generation into the
// question-answering pipeline.
package rag

import (
	"context"
	"errors"
	"fmt"

	"github.com/tmc/langchaingo/llms"

	"github.com/smallnest/askweb/exa"
	"github.com/smallnest/askweb/log"
)

// ErrNoResults is returned when the search produced nothing to ground on.
var ErrNoResults = errors.New("no search results")

const defaultNumResults = 5

// Searcher retrieves web results with content for a query.
type Searcher interface {
	SearchAndContents(ctx context.Context, query string, numResults int) (*exa.SearchResponse, error)
}

// Cache stores search responses between runs. The engine treats every Get
// error as a miss.
type Cache interface {
	Get(ctx context.Context, query string, numResults int) (*exa.SearchResponse, error)
	Set(ctx context.Context, query string, numResults int, resp *exa.SearchResponse) error
}

// ContentFetcher extracts readable text from a URL. Used as a fallback for
// results the search API returned without content.
type ContentFetcher interface {
	Extract(ctx context.Context, url string) (string, error)
}

// Answer is a generated, source-grounded answer.
type Answer struct {
	Text    string
	Sources []string
	Context string
}

// Engine runs the retrieve-format-generate pipeline.
type Engine struct {
	llm        llms.Model
	searcher   Searcher
	cache      Cache
	fetcher    ContentFetcher
	numResults int
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithCache attaches a search response cache.
func WithCache(c Cache) EngineOption {
	return func(e *Engine) {
		e.cache = c
	}
}

// WithContentFetcher attaches a fallback content fetcher.
func WithContentFetcher(f ContentFetcher) EngineOption {
	return func(e *Engine) {
		e.fetcher = f
	}
}

// WithNumResults sets how many search results to retrieve.
func WithNumResults(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.numResults = n
		}
	}
}

// NewEngine creates an Engine.
func NewEngine(llm llms.Model, searcher Searcher, opts ...EngineOption) (*Engine, error) {
	if llm == nil {
		return nil, errors.New("llm cannot be nil")
	}
	if searcher == nil {
		return nil, errors.New("searcher cannot be nil")
	}

	e := &Engine{
		llm:        llm,
		searcher:   searcher,
		numResults: defaultNumResults,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Answer retrieves context for the query and generates a cited answer.
func (e *Engine) Answer(ctx context.Context, query string) (*Answer, error) {
	resp, err := e.search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	if len(resp.Results) == 0 {
		return nil, ErrNoResults
	}

	searchContext := e.BuildContext(ctx, resp.Results)
	prompt := BuildPrompt(query, searchContext)

	log.Debug("generating answer for %q over %d sources", query, len(resp.Results))
	text, err := llms.GenerateFromSinglePrompt(ctx, e.llm, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	sources := make([]string, 0, len(resp.Results))
	for _, r := range resp.Results {
		sources = append(sources, r.URL)
	}

	return &Answer{
		Text:    text,
		Sources: sources,
		Context: searchContext,
	}, nil
}

func (e *Engine) search(ctx context.Context, query string) (*exa.SearchResponse, error) {
	if e.cache != nil {
		if cached, err := e.cache.Get(ctx, query, e.numResults); err == nil {
			log.Debug("search cache hit for %q", query)
			return cached, nil
		}
	}

	resp, err := e.searcher.SearchAndContents(ctx, query, e.numResults)
	if err != nil {
		return nil, err
	}

	if e.cache != nil {
		if err := e.cache.Set(ctx, query, e.numResults, resp); err != nil {
			log.Warn("caching search response failed: %v", err)
		}
	}

	return resp, nil
}
