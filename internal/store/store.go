package store

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lmoreno/weather-dashboard/internal/weather"
)

// DataStore is the gorm-backed implementation of weather.Store. The record
// table is append-only: inserts and reads only, no update or delete path.
type DataStore struct {
	db *gorm.DB
}

// Config selects and configures the database backend.
type Config struct {
	Driver     string // "sqlite" or "mysql"
	SQLitePath string
	MySQLDSN   string
}

// Open connects to the configured backend and runs migrations.
func Open(cfg Config) (*DataStore, error) {
	switch cfg.Driver {
	case "", "sqlite":
		return OpenSQLite(cfg.SQLitePath)
	case "mysql":
		return OpenMySQL(cfg.MySQLDSN)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}
}

// DB exposes the root gorm handle so callers can open transactions.
func (s *DataStore) DB() *gorm.DB {
	return s.db
}

// Save inserts one record within the given session, assigning ID and
// CreatedAt when unset. CreatedAt comes from the store's clock, never from
// the caller's payload.
func (s *DataStore) Save(db *gorm.DB, rec *weather.WeatherRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	if err := db.Create(rec).Error; err != nil {
		return &weather.StorageError{City: rec.City, Err: err}
	}
	return nil
}

// Query returns records ordered by created_at descending, optionally
// filtered by exact city match. total counts all matching records ignoring
// limit and offset so clients can do pagination math.
func (s *DataStore) Query(city string, limit, offset int) (int64, []weather.WeatherRecord, error) {
	filtered := func() *gorm.DB {
		q := s.db.Model(&weather.WeatherRecord{})
		if city != "" {
			q = q.Where("city = ?", city)
		}
		return q
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return 0, nil, &weather.StorageError{City: city, Err: err}
	}

	var records []weather.WeatherRecord
	if err := filtered().
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&records).Error; err != nil {
		return 0, nil, &weather.StorageError{City: city, Err: err}
	}

	return total, records, nil
}

// Latest returns the most recent record for a city, or weather.ErrNotFound
// when the store holds none. Absence is a legitimate outcome, not a fault.
func (s *DataStore) Latest(city string) (*weather.WeatherRecord, error) {
	var rec weather.WeatherRecord
	err := s.db.Where("city = ?", city).Order("created_at DESC").First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, weather.ErrNotFound
		}
		return nil, &weather.StorageError{City: city, Err: err}
	}
	return &rec, nil
}

// RecordsForDay returns all records for a city with created_at within
// [day 00:00, day+1 00:00) UTC.
func (s *DataStore) RecordsForDay(city string, day time.Time) ([]weather.WeatherRecord, error) {
	day = day.UTC()
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	var records []weather.WeatherRecord
	err := s.db.
		Where("city = ? AND created_at >= ? AND created_at < ?", city, start, end).
		Find(&records).Error
	if err != nil {
		return nil, &weather.StorageError{City: city, Err: err}
	}
	return records, nil
}

// migrate creates or updates the schema for the record table.
func migrate(db *gorm.DB, backend, connectionInfo string) (*DataStore, error) {
	if err := db.AutoMigrate(&weather.WeatherRecord{}); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate %s database: %w", backend, err)
	}

	log.Printf("INFO: %s database connection initialized: %s", backend, connectionInfo)
	return &DataStore{db: db}, nil
}

// newGormLogger configures the gorm logger to only surface slow queries
// and errors.
func newGormLogger() logger.Interface {
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: 200 * time.Millisecond,
			LogLevel:      logger.Warn,
		},
	)
}
