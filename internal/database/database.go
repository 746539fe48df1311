package database

import (
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gymdesk/internal/domain"

	_ "modernc.org/sqlite"
)

// Connect opens the store. A postgres:// DSN selects PostgreSQL;
// anything else is treated as a path to the local SQLite file.
func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate keeps the schema in step with the domain models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Client{},
		&domain.Equipment{},
		&domain.Booking{},
		&domain.Payment{},
	); err != nil {
		return err
	}

	// Backstop for two identical slots racing past the availability
	// check. Partial unique indexes work on both PostgreSQL and SQLite.
	return db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_no_double_booking
		ON bookings (equipment_id, date, start_time)
		WHERE status <> 'cancelled'`).Error
}
