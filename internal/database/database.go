package database

import (
	"fmt"
	"time"

	"sat-prep/internal/logger"

	_ "github.com/godror/godror"   // "godror" driver (needs Oracle client libraries)
	"github.com/jmoiron/sqlx"
	_ "github.com/sijms/go-ora/v2" // "oracle" driver, pure Go
	"go.uber.org/zap"
)

const (
	DriverGoOra  = "oracle"
	DriverGodror = "godror"
)

// NewSQLXDB opens a pooled connection with the given driver and verifies it with a ping
func NewSQLXDB(driver, dsn string) (*sqlx.DB, error) {
	if driver == "" {
		driver = DriverGoOra
	}
	if driver != DriverGoOra && driver != DriverGodror {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Oracle database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping Oracle database: %w", err)
	}

	logger.Get().Info("Connected to Oracle database", zap.String("driver", driver))
	return db, nil
}
