package store

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenSQLite opens (or creates) a SQLite database at the given path and
// runs migrations. Pass ":memory:" for an ephemeral database.
func OpenSQLite(path string) (*DataStore, error) {
	if path == "" {
		path = "weather.db"
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: newGormLogger()})
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// An in-memory database exists per connection, so the pool must not
	// hand out more than one.
	if path == ":memory:" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to access SQLite connection pool: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return migrate(db, "SQLite", path)
}
