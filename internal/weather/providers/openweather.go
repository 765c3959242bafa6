package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/lmoreno/weather-dashboard/internal/weather"
	"github.com/sony/gobreaker"
)

// Endpoints holds the OpenWeather API URLs. Separate fields so tests and
// config can point individual endpoints elsewhere.
type Endpoints struct {
	Current  string
	Forecast string
	Reverse  string
}

// DefaultEndpoints returns the public OpenWeather API endpoints.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		Current:  "https://api.openweathermap.org/data/2.5/weather",
		Forecast: "https://api.openweathermap.org/data/2.5/forecast",
		Reverse:  "https://api.openweathermap.org/geo/1.0/reverse",
	}
}

// OpenWeatherClient implements weather.Client against the OpenWeather API.
// Every call goes through a shared circuit breaker and the HTTP client's
// fixed timeout bounds each request.
type OpenWeatherClient struct {
	apiKey    string
	endpoints Endpoints
	client    *http.Client
	circuit   *gobreaker.CircuitBreaker
}

// NewOpenWeatherClient creates a new OpenWeather client. The http.Client
// must carry a timeout; provider latency bounds the whole pipeline.
func NewOpenWeatherClient(client *http.Client, apiKey string, endpoints Endpoints) *OpenWeatherClient {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &OpenWeatherClient{
		apiKey:    apiKey,
		endpoints: endpoints,
		client:    client,
		circuit:   cb,
	}
}

// FetchCurrent returns the raw current-weather payload for a city.
func (c *OpenWeatherClient) FetchCurrent(ctx context.Context, city string) (*weather.RawResponse, error) {
	var raw weather.RawResponse
	if err := c.getJSON(ctx, c.endpoints.Current, cityQuery(c.apiKey, city), &raw); err != nil {
		return nil, &weather.FetchError{City: city, Err: err}
	}
	return &raw, nil
}

// FetchForecast returns the raw 5-day/3-hour forecast payload for a city.
func (c *OpenWeatherClient) FetchForecast(ctx context.Context, city string) (*weather.RawForecast, error) {
	var raw weather.RawForecast
	if err := c.getJSON(ctx, c.endpoints.Forecast, cityQuery(c.apiKey, city), &raw); err != nil {
		return nil, &weather.FetchError{City: city, Err: err}
	}
	return &raw, nil
}

// ReverseGeocode resolves coordinates to the nearest city name.
func (c *OpenWeatherClient) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	values := url.Values{}
	values.Set("lat", fmt.Sprintf("%v", lat))
	values.Set("lon", fmt.Sprintf("%v", lon))
	values.Set("limit", "1")
	values.Set("appid", c.apiKey)

	var places []struct {
		Name string `json:"name"`
	}
	if err := c.getJSON(ctx, c.endpoints.Reverse, values, &places); err != nil {
		return "", &weather.FetchError{City: fmt.Sprintf("%v,%v", lat, lon), Err: err}
	}
	if len(places) == 0 || places[0].Name == "" {
		return "", weather.ErrNotFound
	}
	return places[0].Name, nil
}

func (c *OpenWeatherClient) getJSON(ctx context.Context, baseURL string, values url.Values, out any) error {
	if c.apiKey == "" {
		return fmt.Errorf("openweather api key is not configured")
	}

	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s?%s", baseURL, values.Encode()), nil)
	if err != nil {
		return err
	}

	resp, err := doRequest(ctx, c.client, c.circuit, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return json.NewDecoder(resp.Body).Decode(out)
}

func cityQuery(apiKey, city string) url.Values {
	values := url.Values{}
	values.Set("q", city)
	values.Set("appid", apiKey)
	values.Set("units", "metric")
	return values
}
