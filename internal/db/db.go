package db

import (
	"fmt"
	"time"

	"github.com/MyelinBots/tagbot-go/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB wraps the gorm handle so repositories share one pooled connection set.
type DB struct {
	DB *gorm.DB
}

func NewDatabase(cfg config.DBConfig) (*DB, error) {
	dsn := cfg.URL
	if dsn == "" {
		dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
			cfg.Host, cfg.User, cfg.Password, cfg.DataBase, cfg.Port, cfg.SSLMode)
	}

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("opening postgres connection: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return &DB{DB: gormDB}, nil
}

func (d *DB) AutoMigrate(models ...interface{}) error {
	return d.DB.AutoMigrate(models...)
}

func (d *DB) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
