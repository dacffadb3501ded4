package tool

import (
	"context"
	"fmt"
	"strings"

	"github.com/smallnest/askweb/exa"
)

// ExaSearch is a tool that searches the web through the Exa neural search API.
type ExaSearch struct {
	client     *exa.Client
	maxResults int
}

// NewExaSearch creates an ExaSearch tool around an existing client.
func NewExaSearch(client *exa.Client, maxResults int) (*ExaSearch, error) {
	if client == nil {
		return nil, fmt.Errorf("exa client cannot be nil")
	}
	if maxResults <= 0 {
		maxResults = 5
	}
	return &ExaSearch{client: client, maxResults: maxResults}, nil
}

// Name returns the name of the tool.
func (t *ExaSearch) Name() string {
	return "Exa_Search"
}

// Description returns the description of the tool.
func (t *ExaSearch) Description() string {
	return "A neural web search engine that matches query intent rather than keywords. " +
		"Useful for finding current information and answering questions. " +
		"Input should be a search query."
}

// Call executes the search and formats results as a numbered listing.
func (t *ExaSearch) Call(ctx context.Context, input string) (string, error) {
	resp, err := t.client.SearchAndContents(ctx, input, t.maxResults)
	if err != nil {
		return "", fmt.Errorf("exa search failed: %w", err)
	}

	if len(resp.Results) == 0 {
		return "No results found", nil
	}

	var sb strings.Builder
	for i, r := range resp.Results {
		content := r.Text
		if len(r.Highlights) > 0 {
			content = strings.Join(r.Highlights, " ... ")
		}
		sb.WriteString(fmt.Sprintf("%d. Title: %s\nURL: %s\nContent: %s\n\n",
			i+1, r.Title, r.URL, content))
	}

	return sb.String(), nil
}
