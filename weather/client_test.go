package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBody = `{
	"name": "London",
	"sys": {"country": "GB"},
	"main": {"temp": 14.3, "feels_like": 13.1, "humidity": 72},
	"wind": {"speed": 4.6},
	"weather": [{"main": "Clouds", "description": "overcast clouds"}]
}`

func TestClientNew(t *testing.T) {
	_, err := New()
	assert.ErrorIs(t, err, ErrNotSetAuth)

	client, err := New(WithAPIKey("test-key"))
	require.NoError(t, err)
	require.NotNil(t, client)
}

func TestCurrent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/2.5/weather", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "London", q.Get("q"))
		assert.Equal(t, "test-key", q.Get("appid"))
		assert.Equal(t, "metric", q.Get("units"))
		w.Write([]byte(sampleBody))
	}))
	defer server.Close()

	client, err := New(WithAPIKey("test-key"), WithBaseURL(server.URL))
	require.NoError(t, err)

	obs, err := client.Current(context.Background(), "London")
	require.NoError(t, err)
	assert.Equal(t, "London", obs.City)
	assert.Equal(t, "GB", obs.Country)
	assert.Equal(t, "overcast clouds", obs.Description)
	assert.InDelta(t, 14.3, obs.TempC, 1e-9)
	assert.Equal(t, 72, obs.HumidityPct)
	assert.InDelta(t, 4.6, obs.WindSpeedMS, 1e-9)
}

func TestCurrentCityAlias(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Lowercase alias must reach the API in canonical form.
		assert.Equal(t, "Chandigarh", r.URL.Query().Get("q"))
		w.Write([]byte(sampleBody))
	}))
	defer server.Close()

	client, err := New(WithAPIKey("test-key"), WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.Current(context.Background(), "chandigarh")
	require.NoError(t, err)
}

func TestCurrentMohaliFallback(t *testing.T) {
	var cities []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		city := r.URL.Query().Get("q")
		cities = append(cities, city)
		if city == "Mohali" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(sampleBody))
	}))
	defer server.Close()

	client, err := New(WithAPIKey("test-key"), WithBaseURL(server.URL))
	require.NoError(t, err)

	obs, err := client.Current(context.Background(), "mohali")
	require.NoError(t, err)
	assert.Equal(t, []string{"Mohali", "Chandigarh"}, cities)
	assert.NotNil(t, obs)
}

func TestCurrentErrors(t *testing.T) {
	t.Run("empty city", func(t *testing.T) {
		client, err := New(WithAPIKey("test-key"))
		require.NoError(t, err)

		_, err = client.Current(context.Background(), "  ")
		assert.ErrorIs(t, err, ErrEmptyCity)
	})

	t.Run("city not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client, err := New(WithAPIKey("test-key"), WithBaseURL(server.URL))
		require.NoError(t, err)

		_, err = client.Current(context.Background(), "Atlantis")
		assert.ErrorIs(t, err, ErrCityNotFound)
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"cod":401,"message":"Invalid API key"}`))
		}))
		defer server.Close()

		client, err := New(WithAPIKey("bad-key"), WithBaseURL(server.URL))
		require.NoError(t, err)

		_, err = client.Current(context.Background(), "London")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
	})
}

func TestObservationString(t *testing.T) {
	obs := Observation{
		City:        "London",
		Description: "overcast clouds",
		TempC:       14.3,
		HumidityPct: 72,
	}
	assert.Equal(t, "Current weather in London: overcast clouds, Temperature: 14.3°C, Humidity: 72%", obs.String())
}

// TestCurrent_RealAPI runs against the live API. Skipped if OPENWEATHER_API_KEY is not set.
func TestCurrent_RealAPI(t *testing.T) {
	apiKey := os.Getenv("OPENWEATHER_API_KEY")
	if apiKey == "" {
		t.Skip("OPENWEATHER_API_KEY not set")
	}

	client, err := New(WithAPIKey(apiKey))
	require.NoError(t, err)

	obs, err := client.Current(context.Background(), "London")
	require.NoError(t, err)
	t.Logf("%s", obs)
}
