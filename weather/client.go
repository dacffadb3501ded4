// Package weather is a client for the OpenWeatherMap current weather API,
// plus the query heuristics that decide when and where to use it.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

var (
	ErrNotSetAuth   = errors.New("API key not set")
	ErrCityNotFound = errors.New("city not found")
	ErrEmptyCity    = errors.New("city cannot be empty")
)

const (
	defaultBaseURL  = "https://api.openweathermap.org"
	weatherEndpoint = "/data/2.5/weather"
)

// cityAliases canonicalizes common spellings before they hit the API.
var cityAliases = map[string]string{
	"mohali":     "Mohali",
	"chandigarh": "Chandigarh",
	"panchkula":  "Panchkula",
}

// Client is a client for the OpenWeatherMap API.
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

// apiResponse mirrors the OpenWeatherMap current weather payload.
type apiResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
}

// Observation is a normalized current weather reading.
type Observation struct {
	City        string
	Country     string
	Description string
	TempC       float64
	FeelsLikeC  float64
	HumidityPct int
	WindSpeedMS float64
}

// String renders the observation as a single summary line.
func (o Observation) String() string {
	return fmt.Sprintf("Current weather in %s: %s, Temperature: %.1f°C, Humidity: %d%%",
		o.City, o.Description, o.TempC, o.HumidityPct)
}

// Current fetches the current weather for a city in metric units. City aliases
// are canonicalized first, and a lookup for Mohali that the API does not know
// falls back to Chandigarh, the nearest city it does.
func (c *Client) Current(ctx context.Context, city string) (*Observation, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, ErrEmptyCity
	}

	if canonical, ok := cityAliases[strings.ToLower(city)]; ok {
		city = canonical
	}

	obs, err := c.fetch(ctx, city)
	if errors.Is(err, ErrCityNotFound) && strings.EqualFold(city, "Mohali") {
		return c.fetch(ctx, "Chandigarh")
	}
	return obs, err
}

func (c *Client) fetch(ctx context.Context, city string) (*Observation, error) {
	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, weatherEndpoint, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrCityNotFound, city)
	}
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(respBody))
	}

	var data apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	obs := &Observation{
		City:        data.Name,
		Country:     data.Sys.Country,
		TempC:       data.Main.Temp,
		FeelsLikeC:  data.Main.FeelsLike,
		HumidityPct: data.Main.Humidity,
		WindSpeedMS: data.Wind.Speed,
	}
	if obs.City == "" {
		obs.City = city
	}
	if len(data.Weather) > 0 {
		obs.Description = data.Weather[0].Description
	}

	return obs, nil
}
