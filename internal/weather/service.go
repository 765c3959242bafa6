package weather

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"
)

// Service orchestrates the ingestion pipeline (fetch, normalize, persist)
// and the read paths on top of the store.
type Service struct {
	client Client
	store  Store
	bounds Bounds
}

// NewService creates a new Service.
func NewService(client Client, store Store, bounds Bounds) *Service {
	return &Service{
		client: client,
		store:  store,
		bounds: bounds,
	}
}

// Ingest runs the pipeline for one city: validate city syntax, fetch the
// raw payload, normalize it and persist the record in one transaction.
//
// When tx is non-nil the caller owns the transaction lifecycle and Ingest
// never commits, rolls back or closes it. When tx is nil Ingest opens its
// own transaction and guarantees commit-or-rollback on every exit path.
// FetchError and ValidationError propagate before any write can have
// happened; a StorageError surfaces only after rollback.
func (s *Service) Ingest(ctx context.Context, city string, tx *gorm.DB) error {
	if err := ValidateCityName(city); err != nil {
		return err
	}

	raw, err := s.client.FetchCurrent(ctx, city)
	if err != nil {
		return err
	}

	rec, err := Normalize(raw, city, s.bounds)
	if err != nil {
		return err
	}

	ownTx := tx == nil
	if ownTx {
		tx = s.store.DB().WithContext(ctx).Begin()
		if tx.Error != nil {
			return &StorageError{City: city, Err: tx.Error}
		}
	}

	if err := s.store.Save(tx, rec); err != nil {
		if ownTx {
			tx.Rollback()
		}
		return err
	}

	if ownTx {
		if err := tx.Commit().Error; err != nil {
			tx.Rollback()
			return &StorageError{City: city, Err: err}
		}
	}

	log.Printf("INFO: saved weather data for %s", rec.City)
	return nil
}

// FetchCurrent fetches and normalizes the current weather for a city
// without persisting anything.
func (s *Service) FetchCurrent(ctx context.Context, city string) (*WeatherRecord, error) {
	if err := ValidateCityName(city); err != nil {
		return nil, err
	}

	raw, err := s.client.FetchCurrent(ctx, city)
	if err != nil {
		return nil, err
	}
	return Normalize(raw, city, s.bounds)
}

// History returns stored records ordered by created_at descending, with the
// total count ignoring limit/offset for pagination. city may be empty for
// an unfiltered listing.
func (s *Service) History(city string, limit, offset int) (int64, []WeatherRecord, error) {
	if city != "" {
		if err := ValidateCityName(city); err != nil {
			return 0, nil, err
		}
	}
	return s.store.Query(city, limit, offset)
}

// Latest returns the most recent stored record for a city, falling back to
// a live fetch when the store has none.
func (s *Service) Latest(ctx context.Context, city string) (*WeatherRecord, error) {
	if err := ValidateCityName(city); err != nil {
		return nil, err
	}

	rec, err := s.store.Latest(city)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	log.Printf("INFO: no stored weather for %s, falling back to live fetch", city)
	return s.FetchCurrent(ctx, city)
}

// Forecast fetches the provider forecast for a city and maps it into a
// list of forecast entries.
func (s *Service) Forecast(ctx context.Context, city string) ([]ForecastEntry, error) {
	if err := ValidateCityName(city); err != nil {
		return nil, err
	}

	raw, err := s.client.FetchForecast(ctx, city)
	if err != nil {
		return nil, err
	}
	if raw == nil || len(raw.List) == 0 {
		return nil, &FetchError{City: city, Err: errors.New("no forecast data available")}
	}

	entries := make([]ForecastEntry, 0, len(raw.List))
	for i := range raw.List {
		entries = append(entries, mapForecastItem(&raw.List[i]))
	}
	return entries, nil
}

// ReverseGeocode resolves coordinates to a city name via the provider.
func (s *Service) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return "", NewValidationError("invalid latitude or longitude values: lat=%v lon=%v", lat, lon)
	}
	return s.client.ReverseGeocode(ctx, lat, lon)
}

// DailySummary computes min/max/average statistics over a city's records
// for the day containing date. ErrNotFound when the day holds no records.
func (s *Service) DailySummary(city string, date time.Time) (*Summary, error) {
	if err := ValidateCityName(city); err != nil {
		return nil, err
	}

	records, err := s.store.RecordsForDay(city, date)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNotFound
	}
	return Summarize(city, records), nil
}

func mapForecastItem(item *RawForecastItem) ForecastEntry {
	e := ForecastEntry{CreatedAt: item.DtTxt}
	if item.Main != nil {
		e.Temperature = item.Main.Temp
		e.FeelsLike = item.Main.FeelsLike
		e.Humidity = item.Main.Humidity
		e.Pressure = item.Main.Pressure
	}
	if item.Wind != nil {
		e.WindSpeed = item.Wind.Speed
		e.WindDeg = item.Wind.Deg
	}
	if item.Clouds != nil {
		e.Cloudiness = item.Clouds.All
	}
	if len(item.Weather) > 0 {
		e.Icon = item.Weather[0].Icon
	}
	return e
}
