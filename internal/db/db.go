package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/menucraft/restaurant-backend/internal/config"
	"github.com/menucraft/restaurant-backend/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		// Category references are validated in the handlers, never by a
		// schema constraint; orphaned items must stay representable.
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := AutoMigrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// AutoMigrate keeps the schema in sync; shared with the test databases.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Restaurant{},
		&models.Category{},
		&models.MenuItem{},
		&models.User{},
		&models.AuditLog{},
	)
}
