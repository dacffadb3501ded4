package rag

import (
	"context"
	"fmt"
	"strings"

	"github.com/smallnest/askweb/exa"
	"github.com/smallnest/askweb/log"
)

const (
	// noResultsContext is handed to the model when the search came back empty.
	noResultsContext = "No search results were found."
	// noContentMarker stands in for a result with nothing quotable.
	noContentMarker = "No content available for this result."

	snippetWidth = 500
)

// BuildContext renders search results into the context block handed to the
// model. Each result becomes a numbered source header followed by its
// highlights, or failing that a shortened text snippet. Results with neither
// are run through the content fetcher when one is configured.
func (e *Engine) BuildContext(ctx context.Context, results []exa.Result) string {
	if len(results) == 0 {
		return noResultsContext
	}

	parts := []string{"Here is the context from a web search for your question:"}
	for i, result := range results {
		content := e.resultContent(ctx, result)
		parts = append(parts, fmt.Sprintf("[Source %d: %s]\n%s\n", i+1, result.URL, content))
	}

	return strings.Join(parts, "\n\n")
}

func (e *Engine) resultContent(ctx context.Context, result exa.Result) string {
	if len(result.Highlights) > 0 {
		return strings.Join(result.Highlights, "... ")
	}
	if result.Text != "" {
		return Shorten(result.Text, snippetWidth, "...")
	}

	if e.fetcher != nil && result.URL != "" {
		text, err := e.fetcher.Extract(ctx, result.URL)
		if err != nil {
			log.Debug("content fetch for %s failed: %v", result.URL, err)
		} else if text != "" {
			return Shorten(text, snippetWidth, "...")
		}
	}

	return noContentMarker
}

// Shorten collapses whitespace in text and trims it to at most width
// characters on a word boundary, appending placeholder when anything was cut.
func Shorten(text string, width int, placeholder string) string {
	words := strings.Fields(text)
	collapsed := strings.Join(words, " ")
	if len(collapsed) <= width {
		return collapsed
	}

	limit := width - len(placeholder)
	var b strings.Builder
	for _, word := range words {
		add := len(word)
		if b.Len() > 0 {
			add++
		}
		if b.Len()+add > limit {
			break
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(word)
	}

	if b.Len() == 0 {
		return placeholder
	}
	return b.String() + placeholder
}
