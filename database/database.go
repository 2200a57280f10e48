package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hustlehapa-server/config"
	"hustlehapa-server/models"
	"hustlehapa-server/store"
)

// Connect opens the Postgres connection, runs migrations and loads the
// first-run dataset into an empty database.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	gormLogger := logger.New(
		log.Default(),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(postgres.Open(cfg.Database.URL), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("accessing connection pool: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	log.Println("✅ Connected to database")

	if err := migrate(db); err != nil {
		return nil, err
	}
	if err := seed(db); err != nil {
		return nil, err
	}
	return db, nil
}

func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.Application{},
		&models.Rating{},
	)
	if err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	log.Println("✅ Database migrations completed")
	return nil
}

// seed loads the first-run dataset when the jobs table is empty.
func seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Job{}).Count(&count).Error; err != nil {
		return fmt.Errorf("checking for existing data: %w", err)
	}
	if count > 0 {
		return nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		users := store.SeedUsers()
		if err := tx.Create(&users).Error; err != nil {
			return err
		}
		jobs := store.SeedJobs()
		if err := tx.Create(&jobs).Error; err != nil {
			return err
		}
		apps := store.SeedApplications()
		if err := tx.Create(&apps).Error; err != nil {
			return err
		}
		ratings := store.SeedRatings()
		return tx.Create(&ratings).Error
	})
	if err != nil {
		return fmt.Errorf("seeding database: %w", err)
	}
	log.Println("✅ Seeded first-run dataset")
	return nil
}
