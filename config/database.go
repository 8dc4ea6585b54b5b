package config

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"tour-booking-api/config/common"
	"tour-booking-api/config/logger"
	"tour-booking-api/entity"
)

type DBConfig struct {
	*gorm.DB
	*logger.AppLogger
}

func NewDB(config *common.Config, log *logger.AppLogger) *DBConfig {
	db := initDatabase(config, log)
	return &DBConfig{DB: db, AppLogger: log}
}

func (db *DBConfig) GetDB() *gorm.DB {
	return db.DB
}

func initDatabase(cfg *common.Config, log *logger.AppLogger) *gorm.DB {
	dbHost, dbUser, dbPassword, dbName, dbPort := cfg.GetDatabaseConfig()
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		dbHost, dbUser, dbPassword, dbName, dbPort,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		NamingStrategy: entity.NamingStrategy,
		TranslateError: true,
	})
	if err != nil {
		log.Http.Error.Fatal().Err(err).Str("host", dbHost).Msg("failed to connect to database")
	}

	conn, err := db.DB()
	if err != nil {
		log.Http.Error.Fatal().Err(err).Msg("failed to get database connection")
	}

	if err := db.AutoMigrate(entity.All()...); err != nil {
		log.Http.Error.Fatal().Err(err).Msg("failed to run migration")
	}
	log.Http.Info.Info().Str("database", dbName).Msg("connection opened to database")

	conn.SetMaxIdleConns(10)
	conn.SetMaxOpenConns(100)
	conn.SetConnMaxLifetime(time.Second * time.Duration(300))
	return db
}
