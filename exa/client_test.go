package exa

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClientNew tests the Client creation with various options.
func TestClientNew(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantErr bool
	}{
		{
			name:    "no api key",
			opts:    []Option{},
			wantErr: true,
		},
		{
			name: "with api key",
			opts: []Option{
				WithAPIKey("test-key"),
			},
			wantErr: false,
		},
		{
			name: "with api key and base url",
			opts: []Option{
				WithAPIKey("test-key"),
				WithBaseURL("https://custom.example.com/"),
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(tt.opts...)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, client)
		})
	}
}

// TestSearchAndContents tests the request payload and response decoding.
func TestSearchAndContents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req SearchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "what is quantum computing", req.Query)
		assert.Equal(t, "neural", req.Type)
		assert.True(t, req.UseAutoprompt)
		assert.Equal(t, 3, req.NumResults)
		require.NotNil(t, req.Contents)
		require.NotNil(t, req.Contents.Text)
		assert.Equal(t, 2000, req.Contents.Text.MaxCharacters)
		require.NotNil(t, req.Contents.Highlights)
		assert.Equal(t, 3, req.Contents.Highlights.HighlightsPerURL)
		assert.Equal(t, 2, req.Contents.Highlights.NumSentences)
		assert.Equal(t, req.Query, req.Contents.Highlights.Query)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"requestId": "req-1",
			"autopromptString": "Here is an overview of quantum computing:",
			"results": [
				{
					"id": "doc-1",
					"title": "Quantum computing",
					"url": "https://example.com/quantum",
					"score": 0.92,
					"text": "Quantum computing uses qubits.",
					"highlights": ["Quantum computing uses qubits."],
					"highlightScores": [0.88]
				}
			]
		}`))
	}))
	defer server.Close()

	client, err := New(WithAPIKey("test-key"), WithBaseURL(server.URL))
	require.NoError(t, err)

	resp, err := client.SearchAndContents(context.Background(), "what is quantum computing", 3)
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "https://example.com/quantum", resp.Results[0].URL)
	assert.Equal(t, "Quantum computing", resp.Results[0].Title)
	assert.InDelta(t, 0.92, resp.Results[0].Score, 1e-9)
	assert.Equal(t, "Here is an overview of quantum computing:", resp.AutopromptString)
}

// TestSearchAndContentsErrors tests error paths.
func TestSearchAndContentsErrors(t *testing.T) {
	t.Run("empty query", func(t *testing.T) {
		client, err := New(WithAPIKey("test-key"))
		require.NoError(t, err)

		_, err = client.SearchAndContents(context.Background(), "   ", 5)
		assert.ErrorIs(t, err, ErrEmptyQuery)
	})

	t.Run("non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"invalid api key"}`))
		}))
		defer server.Close()

		client, err := New(WithAPIKey("bad-key"), WithBaseURL(server.URL))
		require.NoError(t, err)

		_, err = client.SearchAndContents(context.Background(), "anything", 5)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
		assert.Contains(t, err.Error(), "invalid api key")
	})

	t.Run("malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{not json`))
		}))
		defer server.Close()

		client, err := New(WithAPIKey("test-key"), WithBaseURL(server.URL))
		require.NoError(t, err)

		_, err = client.SearchAndContents(context.Background(), "anything", 5)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unmarshal response")
	})
}

// TestSearchDefaultNumResults tests that a non-positive count falls back to the default.
func TestSearchDefaultNumResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req SearchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, defaultNumResults, req.NumResults)
		w.Write([]byte(`{"requestId":"req-2","results":[]}`))
	}))
	defer server.Close()

	client, err := New(WithAPIKey("test-key"), WithBaseURL(server.URL))
	require.NoError(t, err)

	resp, err := client.SearchAndContents(context.Background(), "anything", 0)
	require.NoError(t, err)
	assert.Empty(t, resp.Results)
}

// TestSearch_RealAPI runs against the live API. Skipped if EXA_API_KEY is not set.
func TestSearch_RealAPI(t *testing.T) {
	apiKey := os.Getenv("EXA_API_KEY")
	if apiKey == "" {
		t.Skip("EXA_API_KEY not set")
	}

	client, err := New(WithAPIKey(apiKey))
	require.NoError(t, err)

	resp, err := client.SearchAndContents(context.Background(), "latest advances in battery technology", 2)
	require.NoError(t, err)
	require.NotEmpty(t, resp.Results)
	for _, r := range resp.Results {
		t.Logf("%s (%s)", r.Title, r.URL)
	}
}
