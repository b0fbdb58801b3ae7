package database

import (
	"fmt"
	"log"

	"github.com/seekyhq/agent-chat-gateway/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection and runs migrations. The DSN
// comes from configuration; history persistence is optional, so callers
// decide whether a failure here is fatal.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	log.Println("Database connection established")

	if err := db.AutoMigrate(&models.ChatSession{}, &models.ChatExchange{}); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return db, nil
}
