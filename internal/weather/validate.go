package weather

import "regexp"

var cityNameRe = regexp.MustCompile(`^[A-Za-z\s\-]+$`)

// ValidateCityName checks the city-name syntax shared by the ingestion and
// read paths: letters, spaces and hyphens only. It runs before any external
// call so malformed input never reaches the provider.
func ValidateCityName(city string) error {
	if !cityNameRe.MatchString(city) {
		return NewValidationError("invalid city name: %q, only letters, spaces, and hyphens allowed", city)
	}
	return nil
}

// Bounds are the soft plausibility limits applied during normalization.
// Values outside the bounds are logged, never rejected.
type Bounds struct {
	TempMin     float64
	TempMax     float64
	HumidityMin float64
	HumidityMax float64
}

// DefaultBounds returns the default soft-validation limits.
func DefaultBounds() Bounds {
	return Bounds{
		TempMin:     -50,
		TempMax:     60,
		HumidityMin: 0,
		HumidityMax: 100,
	}
}
