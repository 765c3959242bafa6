package weather

import (
	"encoding/json"
	"fmt"
	"log"
)

// NoDescription is the placeholder used when the provider returns an empty
// weather-description list.
const NoDescription = "No description available"

// Normalize validates a raw provider payload and maps it into a
// WeatherRecord. It is pure apart from warning logs: required fields
// (resolved city name, temperature, humidity) missing cause a
// ValidationError, while temperature/humidity outside the configured bounds
// only emit a warning and the record is produced as-is.
func Normalize(raw *RawResponse, city string, bounds Bounds) (*WeatherRecord, error) {
	if raw == nil || raw.Main == nil || raw.Weather == nil {
		return nil, NewValidationError("incomplete data received for %s", city)
	}

	if raw.Name == "" || raw.Main.Temp == nil || raw.Main.Humidity == nil {
		return nil, NewValidationError("incomplete data received for %s: %s", city, rawPayload(raw))
	}

	temp := *raw.Main.Temp
	humidity := *raw.Main.Humidity

	if temp < bounds.TempMin || temp > bounds.TempMax {
		log.Printf("WARN: temperature out of expected range for %s: %.1f°C", city, temp)
	}
	if humidity < bounds.HumidityMin || humidity > bounds.HumidityMax {
		log.Printf("WARN: humidity out of expected range for %s: %.0f%%", city, humidity)
	}

	rec := &WeatherRecord{
		City:        raw.Name,
		Description: NoDescription,
		Temperature: temp,
		FeelsLike:   raw.Main.FeelsLike,
		TempMin:     raw.Main.TempMin,
		TempMax:     raw.Main.TempMax,
		Humidity:    humidity,
		Pressure:    raw.Main.Pressure,
		SeaLevel:    raw.Main.SeaLevel,
		GrndLevel:   raw.Main.GrndLevel,
		Visibility:  raw.Visibility,
	}

	if len(raw.Weather) > 0 {
		rec.Description = raw.Weather[0].Description
		rec.Icon = raw.Weather[0].Icon
	}
	if raw.Wind != nil {
		rec.WindSpeed = raw.Wind.Speed
		rec.WindDeg = raw.Wind.Deg
		rec.WindGust = raw.Wind.Gust
	}
	if raw.Rain != nil {
		rec.Rain1h = raw.Rain.OneH
		rec.Rain3h = raw.Rain.ThreeH
	}
	if raw.Clouds != nil {
		rec.Clouds = raw.Clouds.All
	}
	if raw.Sys != nil {
		rec.Country = raw.Sys.Country
		rec.Sunrise = raw.Sys.Sunrise
		rec.Sunset = raw.Sys.Sunset
	}

	return rec, nil
}

// rawPayload renders the raw payload for diagnostic messages.
func rawPayload(raw *RawResponse) string {
	b, err := json.Marshal(raw)
	if err != nil {
		return fmt.Sprintf("%+v", raw)
	}
	return string(b)
}
