package database

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"vitalsync/config"
)

func DSN(cfg config.DBConfig) string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=America/Lima",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port,
	)
}

func NewPostgresConnection(cfg config.DBConfig, log *logrus.Logger) (*gorm.DB, error) {
	logLevel := logger.Warn
	if log.IsLevelEnabled(logrus.DebugLevel) {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(DSN(cfg)), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)

	log.Info("Successfully connected to PostgreSQL database")

	return db, nil
}
