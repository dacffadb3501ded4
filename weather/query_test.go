package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsWeatherQuery(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"What is the weather in London?", true},
		{"temperature of Tokyo today", true},
		{"Will it rain tomorrow?", true},
		{"humidity update for Mumbai", true},
		{"5 day forecast", true},
		{"Who won the world cup?", false},
		{"Explain quantum computing", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWeatherQuery(tt.query))
		})
	}
}

func TestCityFromQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{
			name:  "city after in",
			query: "What is the weather in London?",
			want:  "London",
		},
		{
			name:  "city after in lowercase",
			query: "weather in tokyo",
			want:  "Tokyo",
		},
		{
			name:  "last non-filler word",
			query: "temperature Berlin",
			want:  "Berlin",
		},
		{
			name:  "in followed by filler falls back to last word",
			query: "weather in today Paris",
			want:  "Paris",
		},
		{
			name:  "only filler words",
			query: "what is the weather today?",
			want:  "London",
		},
		{
			name:  "empty query",
			query: "",
			want:  "London",
		},
		{
			name:  "short word after in is skipped",
			query: "weather in NY",
			want:  "London",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CityFromQuery(tt.query, "London"))
		})
	}
}
