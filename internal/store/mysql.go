package store

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// OpenMySQL connects to a MySQL database using the given DSN and runs
// migrations. The DSN must include parseTime=true so timestamps scan into
// time.Time.
func OpenMySQL(dsn string) (*DataStore, error) {
	if dsn == "" {
		return nil, fmt.Errorf("mysql dsn is not configured")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newGormLogger()})
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL database: %w", err)
	}

	return migrate(db, "MySQL", "mysql")
}
