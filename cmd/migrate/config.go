package main

import (
	"os"

	"readinglog/internal/config"
)

func loadEnvFiles() {
	// Do not override environment provided by the runtime (e.g. Docker).
	config.LoadEnvFiles()
}

// migrationsDir is where 'create' writes new files. Applied migrations are
// always read from the embedded set.
func migrationsDir() string {
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return v
	}
	return "db/migrations"
}
