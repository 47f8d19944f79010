package main

import (
	"fmt"
	"os"

	"marhaba/config"
	"marhaba/database"
	"marhaba/models/booking"
	"marhaba/models/log"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage:")
		fmt.Println("  go run tools/migrate.go migrate  - Create or update the journal tables")
		fmt.Println("  go run tools/migrate.go status   - Show journal row counts")
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	if !cfg.Database.Enabled() {
		fmt.Println("❌ DB_HOST and DB_DATABASE must be set")
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "migrate":
		fmt.Println("🚀 Running database migrations...")
		if _, err := database.InitDB(cfg.Database); err != nil {
			fmt.Printf("❌ Migration failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✅ Migration completed successfully!")

	case "status":
		db, err := database.InitDB(cfg.Database)
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			os.Exit(1)
		}
		var actions, events int64
		db.Model(&log.ActionLog{}).Count(&actions)
		db.Model(&booking.BookingStatusEvent{}).Count(&events)
		fmt.Printf("📈 %d journaled actions, %d booking status events\n", actions, events)

	default:
		fmt.Printf("Unknown command: %s\n", command)
		fmt.Println("Available commands: migrate, status")
	}
}
