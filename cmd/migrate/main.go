package main

import (
	"debt_tracker/internal/config" // Custom package for configuration
	"debt_tracker/internal/db"     // Custom package for database migration
)

// Main function to run database migration
func main() {
	cfg := config.LoadConfig() // Load configuration
	db.Migrate(cfg.DSN())      // Run migration with the configured DSN
}
