package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	models "breate/backend/internal/models/gorm"
)

var PgDB *gorm.DB

// InitPostgresORM opens the GORM connection and creates the schema from the
// entity model.
func InitPostgresORM(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	PgDB = db
	return db, nil
}

// Migrate auto-creates all tables. Shared with the sqlite test helpers.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Archetype{},
		&models.Tier{},
		&models.User{},
		&models.Coalition{},
		&models.Project{},
		&models.ProjectParticipant{},
		&models.CollabLink{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
