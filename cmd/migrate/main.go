package main

import (
	"log"

	"workshift/app/config"
	"workshift/app/database"
)

// Standalone migration runner: applies the schema to the configured
// database and reports per-table row counts.
func main() {
	log.Println("Starting migration...")

	config.InitDB()
	db := config.GetDB()
	if db == nil {
		log.Fatal("Failed to get database instance")
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed: ", err)
	}

	for _, table := range []string{"users", "calendars", "shift_templates", "shifts", "day_notes"} {
		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
			log.Printf("Error counting %s: %v", table, err)
			continue
		}
		log.Printf("%s: %d rows", table, count)
	}

	log.Println("Migration completed successfully!")
}
