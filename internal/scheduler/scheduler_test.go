package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmoreno/weather-dashboard/internal/store"
	"github.com/lmoreno/weather-dashboard/internal/weather"
)

// flakyClient fails for one city and succeeds for the rest.
type flakyClient struct {
	failCity string
}

func (c *flakyClient) FetchCurrent(ctx context.Context, city string) (*weather.RawResponse, error) {
	if city == c.failCity {
		return nil, &weather.FetchError{City: city, Err: errors.New("provider down")}
	}
	temp := 20.0
	humidity := 50.0
	return &weather.RawResponse{
		Name: city,
		Main: &weather.RawMain{Temp: &temp, Humidity: &humidity},
		Weather: []weather.RawCondition{
			{Description: "clear sky"},
		},
	}, nil
}

func (c *flakyClient) FetchForecast(ctx context.Context, city string) (*weather.RawForecast, error) {
	return nil, &weather.FetchError{City: city, Err: errors.New("not implemented")}
}

func (c *flakyClient) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	return "", weather.ErrNotFound
}

func TestSweepIsolatesPerCityFailures(t *testing.T) {
	ds, err := store.OpenSQLite(":memory:")
	require.NoError(t, err)

	svc := weather.NewService(&flakyClient{failCity: "London"}, ds, weather.DefaultBounds())
	s := New([]string{"London", "Valencia", "Madrid"}, time.Minute, svc)

	s.sweep()

	total, _, err := ds.Query("", 50, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total, "one failing city must not abort the sweep")

	_, err = ds.Latest("London")
	assert.ErrorIs(t, err, weather.ErrNotFound)
}

func TestStartWithNoCitiesIsNoop(t *testing.T) {
	s := New(nil, time.Minute, nil)
	require.NoError(t, s.Start())
	s.Stop()
}
