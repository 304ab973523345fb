package database

import (
	"fmt"

	"github.com/charmbracelet/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sharath018/temple-donation-docs/config"
	"github.com/sharath018/temple-donation-docs/internal/auditlog"
	"github.com/sharath018/temple-donation-docs/internal/donation"
)

// DSN builds the Postgres connection string from the config.
func DSN(cfg *config.Config) string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Asia/Kolkata",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)
}

// Connect opens the database and migrates the tables this service owns.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(DSN(cfg)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(&donation.Donation{}, &auditlog.AuditLog{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info("✅ Connected to Postgres", "host", cfg.DBHost, "db", cfg.DBName)
	return db, nil
}
