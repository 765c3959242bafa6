package weather

import (
	"time"
)

// WeatherRecord is the canonical persisted weather snapshot for one city.
// Records are append-only: they are created by the ingestion pipeline and
// never updated or deleted. Optional provider fields are pointers so that
// absent values survive persistence and JSON round-trips as null.
type WeatherRecord struct {
	ID      string `gorm:"primaryKey;size:36" json:"id"`
	City    string `gorm:"size:100;not null;index:idx_weather_city" json:"city"`
	Country string `gorm:"size:8" json:"country,omitempty"`

	Description string `gorm:"size:255;not null" json:"description"`
	Icon        string `gorm:"size:16" json:"icon,omitempty"`

	Temperature float64  `gorm:"not null" json:"temperature"`
	FeelsLike   *float64 `json:"feels_like,omitempty"`
	TempMin     *float64 `json:"temp_min,omitempty"`
	TempMax     *float64 `json:"temp_max,omitempty"`

	Humidity  float64 `gorm:"not null" json:"humidity"`
	Pressure  *int    `json:"pressure,omitempty"`
	SeaLevel  *int    `json:"sea_level,omitempty"`
	GrndLevel *int    `json:"grnd_level,omitempty"`

	WindSpeed *float64 `json:"wind_speed,omitempty"`
	WindDeg   *int     `json:"wind_deg,omitempty"`
	WindGust  *float64 `json:"wind_gust,omitempty"`

	Visibility *int     `json:"visibility,omitempty"`
	Clouds     *int     `json:"clouds,omitempty"`
	Rain1h     *float64 `gorm:"column:rain_1h" json:"rain_1h,omitempty"`
	Rain3h     *float64 `gorm:"column:rain_3h" json:"rain_3h,omitempty"`

	Sunrise *int64 `json:"sunrise,omitempty"`
	Sunset  *int64 `json:"sunset,omitempty"`

	// CreatedAt is assigned by the store at insert time, always UTC.
	CreatedAt time.Time `gorm:"not null;index:idx_weather_created_at" json:"created_at"`
}

// TableName keeps the table name stable regardless of gorm pluralization.
func (WeatherRecord) TableName() string {
	return "weather_records"
}

// Summary holds min/max/average statistics over one city's records for a
// single day. Averages cover only records where the optional field is
// present and are rounded to two decimal places; nil means no record
// supplied the field that day.
type Summary struct {
	City        string  `json:"city"`
	TempMin     float64 `json:"temp_min"`
	TempMax     float64 `json:"temp_max"`
	HumidityMin float64 `json:"humidity_min"`
	HumidityMax float64 `json:"humidity_max"`

	FeelsLikeAvg  *float64 `json:"feels_like_avg"`
	PressureAvg   *float64 `json:"pressure_avg"`
	WindSpeedMin  *float64 `json:"wind_speed_min"`
	WindSpeedMax  *float64 `json:"wind_speed_max"`
	CloudinessAvg *float64 `json:"cloudiness_avg"`
}

// ForecastEntry is a single mapped entry of the provider's 5-day/3-hour
// forecast list.
type ForecastEntry struct {
	CreatedAt   string   `json:"created_at"`
	Temperature *float64 `json:"temperature"`
	FeelsLike   *float64 `json:"feels_like"`
	Humidity    *float64 `json:"humidity"`
	Pressure    *int     `json:"pressure"`
	WindSpeed   *float64 `json:"wind_speed"`
	WindDeg     *int     `json:"wind_deg"`
	Cloudiness  *int     `json:"cloudiness"`
	Icon        string   `json:"icon,omitempty"`
}
