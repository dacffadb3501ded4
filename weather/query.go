package weather

import (
	"strings"
)

// triggerWords mark a question as a weather question.
var triggerWords = []string{"weather", "temperature", "forecast", "humidity", "rain"}

// stopWords are question filler that can never be a city name.
var stopWords = map[string]struct{}{
	"what": {}, "is": {}, "the": {}, "weather": {}, "temperature": {},
	"of": {}, "forecast": {}, "in": {}, "at": {}, "for": {}, "today": {},
	"tomorrow": {}, "how": {}, "hot": {}, "cold": {}, "humid": {},
	"rain": {}, "snow": {}, "update": {}, "date": {}, "and": {},
}

// IsWeatherQuery reports whether the question asks about the weather.
func IsWeatherQuery(query string) bool {
	q := strings.ToLower(query)
	for _, w := range triggerWords {
		if strings.Contains(q, w) {
			return true
		}
	}
	return false
}

// CityFromQuery extracts a city name from a weather question. It prefers the
// word following "in" ("weather in Paris"), falls back to the last word that
// is not question filler, and finally to defaultCity.
func CityFromQuery(query, defaultCity string) string {
	cleaned := strings.ReplaceAll(strings.ToLower(query), "?", "")
	words := strings.Fields(cleaned)

	for i, w := range words {
		if w == "in" && i+1 < len(words) {
			candidate := words[i+1]
			if _, stop := stopWords[candidate]; !stop && len(candidate) > 2 {
				return capitalize(candidate)
			}
		}
	}

	for i := len(words) - 1; i >= 0; i-- {
		if _, stop := stopWords[words[i]]; !stop && len(words[i]) > 2 {
			return capitalize(words[i])
		}
	}

	return defaultCity
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
