package weather

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Client abstracts the external weather provider (OpenWeather). Implementors
// return the raw payload untouched; interpretation belongs to Normalize.
type Client interface {
	FetchCurrent(ctx context.Context, city string) (*RawResponse, error)
	FetchForecast(ctx context.Context, city string) (*RawForecast, error)
	ReverseGeocode(ctx context.Context, lat, lon float64) (string, error)
}

// Store is the contract the persistent store must satisfy. Save operates
// within the session it is handed so the pipeline controls the transaction
// boundary; the read methods use the store's own connection.
type Store interface {
	// DB exposes the root gorm handle for opening transactions.
	DB() *gorm.DB

	// Save inserts one record within the given session, assigning ID and
	// CreatedAt when unset.
	Save(db *gorm.DB, rec *WeatherRecord) error

	// Query returns records ordered by created_at descending, optionally
	// filtered by exact city match. total ignores limit/offset.
	Query(city string, limit, offset int) (total int64, records []WeatherRecord, err error)

	// Latest returns the most recent record for a city or ErrNotFound.
	Latest(city string) (*WeatherRecord, error)

	// RecordsForDay returns all records for a city with created_at within
	// [day 00:00, day+1 00:00) UTC.
	RecordsForDay(city string, day time.Time) ([]WeatherRecord, error)
}
