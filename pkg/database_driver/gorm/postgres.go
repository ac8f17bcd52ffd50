package gorm

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB struct
type DB struct {
	Postgres *gorm.DB
}

// Options struct - connection settings of ConnectToPostgreSQL
type Options struct {
	Host         string
	Port         string
	Username     string
	Password     string
	DbName       string
	SSLMode      bool
	MaxIdleConns int
	MaxOpenConns int
	Debug        bool
}

// DSN builds the connection string
func (o Options) DSN() string {
	sslmode := "disable"
	if o.SSLMode {
		sslmode = "require"
	}
	return fmt.Sprintf("host=%v user=%v password=%v dbname=%v port=%v sslmode=%v connect_timeout=10",
		o.Host, o.Username, o.Password, o.DbName, o.Port, sslmode)
}

// ConnectToPostgreSQL func
func ConnectToPostgreSQL(opts Options) (*DB, error) {
	if opts.Host == "" && opts.Port == "" && opts.DbName == "" {
		return nil, errors.New("cannot estabished the connection")
	}

	logLevel := logger.Error
	if opts.Debug {
		logLevel = logger.Info
	}
	pg, err := gorm.Open(postgres.Open(opts.DSN()), &gorm.Config{
		DryRun:         false,
		TranslateError: true,
		Logger:         logger.Default.LogMode(logLevel),
	})
	if err != nil {
		logrus.Error(err)
		return nil, err
	}
	sqlDB, err := pg.DB()
	if err != nil {
		return nil, err
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	sqlDB.SetConnMaxLifetime(2 * time.Hour)

	logrus.WithFields(logrus.Fields{
		"host":     opts.Host,
		"port":     opts.Port,
		"database": opts.DbName,
	}).Info("Connected with postgres")
	return &DB{Postgres: pg}, nil
}

// DisconnectPostgres func
func DisconnectPostgres(db *gorm.DB) {
	sqlDb, err := db.DB()
	if err != nil {
		logrus.Error(err)
		return
	}
	err = sqlDb.Close()
	if err != nil {
		logrus.Error(err)
	}
	logrus.Println("Connected with postgres has closed")
}
