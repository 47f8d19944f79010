package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"marhaba/config"
	"marhaba/logger"
	"marhaba/models/booking"
	"marhaba/models/log"
)

// JournalModels are the tables owned by the action journal
func JournalModels() []interface{} {
	return []interface{}{
		&log.ActionLog{},
		&booking.BookingStatusEvent{},
	}
}

// InitDB opens the journal database and migrates its tables
func InitDB(cfg config.Database) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the journal tables and their indexes
func Migrate(db *gorm.DB) error {
	for _, model := range JournalModels() {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}
	logger.Success("All migrations completed successfully")

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_booking_status_events_booking_created ON booking_status_events(booking_id, created_at)").Error; err != nil {
		return fmt.Errorf("failed to create booking status event index: %w", err)
	}
	logger.Success("All indexes created successfully")
	return nil
}
