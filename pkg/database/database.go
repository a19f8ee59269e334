package database

import (
	"fmt"
	"log"

	"craftconnect_backend/internal/config"
	"craftconnect_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.TradeCategory{},
		&model.Artisan{},
		&model.Client{},
		&model.Assessment{},
		&model.JobPosting{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// Seed common trades so registration dropdowns are never empty.
	var count int64
	db.Model(&model.TradeCategory{}).Count(&count)
	if count == 0 {
		defaultTrades := []string{
			"Tailor",
			"Welder",
			"Carpenter",
			"Electrician",
			"Plumber",
			"Mason",
			"Painter",
			"Hairdresser",
		}
		for _, name := range defaultTrades {
			db.Create(&model.TradeCategory{Name: name})
		}
	}

	return db, nil
}
