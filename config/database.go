package config

import (
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Ta1kunjms/GensanWorks/internal/models"
)

var DB *gorm.DB

// InitDatabase opens the relational store. One schema, two engines:
// DB_DRIVER=postgres uses POSTGRES_URI, anything else falls back to an
// embedded sqlite file (DATABASE_PATH, default gensanworks.db).
func InitDatabase() error {
	var (
		db  *gorm.DB
		err error
	)

	if os.Getenv("DB_DRIVER") == "postgres" {
		uri := os.Getenv("POSTGRES_URI")
		if uri == "" {
			return errEnv("POSTGRES_URI")
		}
		db, err = gorm.Open(postgres.Open(uri), &gorm.Config{})
	} else {
		path := os.Getenv("DATABASE_PATH")
		if path == "" {
			path = "gensanworks.db"
		}
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	}
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.AutoMigrate(
		&models.Applicant{},
		&models.Employer{},
		&models.Job{},
		&models.Application{},
		&models.Referral{},
		&models.Admin{},
		&models.RequirementFile{},
	); err != nil {
		return err
	}

	DB = db
	return nil
}
