package tool

import (
	"context"
	"fmt"
	"strings"

	"github.com/smallnest/askweb/weather"
)

// CurrentWeather is a tool that reports current conditions for a city using
// the OpenWeatherMap API.
type CurrentWeather struct {
	client *weather.Client
}

// NewCurrentWeather creates a CurrentWeather tool around an existing client.
func NewCurrentWeather(client *weather.Client) (*CurrentWeather, error) {
	if client == nil {
		return nil, fmt.Errorf("weather client cannot be nil")
	}
	return &CurrentWeather{client: client}, nil
}

// Name returns the name of the tool.
func (t *CurrentWeather) Name() string {
	return "Current_Weather"
}

// Description returns the description of the tool.
func (t *CurrentWeather) Description() string {
	return "Reports the current weather for a city: conditions, temperature in " +
		"Celsius, humidity and wind speed. Input should be a city name."
}

// Call fetches the current weather for the city named by input.
func (t *CurrentWeather) Call(ctx context.Context, input string) (string, error) {
	city := strings.TrimSpace(input)
	obs, err := t.client.Current(ctx, city)
	if err != nil {
		return "", fmt.Errorf("weather lookup failed: %w", err)
	}

	return fmt.Sprintf("%s Feels like: %.1f°C, Wind: %.1f m/s",
		obs, obs.FeelsLikeC, obs.WindSpeedMS), nil
}
