package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(temp, humidity float64) WeatherRecord {
	return WeatherRecord{City: "Valencia", Temperature: temp, Humidity: humidity}
}

func TestSummarizeMinMax(t *testing.T) {
	records := []WeatherRecord{
		rec(18, 40),
		rec(22, 55),
	}

	s := Summarize("Valencia", records)

	assert.Equal(t, "Valencia", s.City)
	assert.InDelta(t, 18.0, s.TempMin, 0.001)
	assert.InDelta(t, 22.0, s.TempMax, 0.001)
	assert.InDelta(t, 40.0, s.HumidityMin, 0.001)
	assert.InDelta(t, 55.0, s.HumidityMax, 0.001)
}

func TestSummarizeOptionalFieldsAbsent(t *testing.T) {
	s := Summarize("Valencia", []WeatherRecord{rec(18, 40)})

	assert.Nil(t, s.FeelsLikeAvg)
	assert.Nil(t, s.PressureAvg)
	assert.Nil(t, s.CloudinessAvg)
	assert.Nil(t, s.WindSpeedMin)
	assert.Nil(t, s.WindSpeedMax)
}

func TestSummarizeAveragesOverPresentValuesOnly(t *testing.T) {
	feels1, feels2 := 17.0, 20.5
	pressure := 1013
	wind := 4.2
	clouds1, clouds2 := 10, 25

	a := rec(18, 40)
	a.FeelsLike = &feels1
	a.Pressure = &pressure
	a.Clouds = &clouds1

	b := rec(22, 55)
	b.FeelsLike = &feels2
	b.WindSpeed = &wind
	b.Clouds = &clouds2

	c := rec(20, 48)

	s := Summarize("Valencia", []WeatherRecord{a, b, c})

	require.NotNil(t, s.FeelsLikeAvg)
	assert.InDelta(t, 18.75, *s.FeelsLikeAvg, 0.001)
	require.NotNil(t, s.PressureAvg)
	assert.InDelta(t, 1013.0, *s.PressureAvg, 0.001)
	require.NotNil(t, s.CloudinessAvg)
	assert.InDelta(t, 17.5, *s.CloudinessAvg, 0.001)
	require.NotNil(t, s.WindSpeedMin)
	assert.InDelta(t, 4.2, *s.WindSpeedMin, 0.001)
	require.NotNil(t, s.WindSpeedMax)
	assert.InDelta(t, 4.2, *s.WindSpeedMax, 0.001)
}

func TestSummarizeRoundsAveragesToTwoDecimals(t *testing.T) {
	f1, f2, f3 := 10.0, 10.0, 11.0

	a := rec(18, 40)
	a.FeelsLike = &f1
	b := rec(19, 41)
	b.FeelsLike = &f2
	c := rec(20, 42)
	c.FeelsLike = &f3

	s := Summarize("Valencia", []WeatherRecord{a, b, c})

	require.NotNil(t, s.FeelsLikeAvg)
	assert.InDelta(t, 10.33, *s.FeelsLikeAvg, 0.0001)
}

func TestSummarizeOrderIndependent(t *testing.T) {
	feels := []float64{17.0, 20.5, 19.1}
	winds := []float64{4.2, 1.1}

	records := []WeatherRecord{rec(18, 40), rec(22, 55), rec(20, 48)}
	for i := range feels {
		records[i].FeelsLike = &feels[i]
	}
	records[0].WindSpeed = &winds[0]
	records[2].WindSpeed = &winds[1]

	forward := Summarize("Valencia", records)

	reversed := []WeatherRecord{records[2], records[1], records[0]}
	backward := Summarize("Valencia", reversed)

	assert.Equal(t, forward, backward)
}
