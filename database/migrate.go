package database

import (
	"log"

	"weblog/internal/models"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.Category{},
		&models.Tag{},
		&models.Post{},
		&models.PostTag{},
		&models.PostMeta{},
		&models.Media{},
		&models.Setting{},
	)

	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
