// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Database type constants
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

var ErrUnsupportedDriver = errors.New("unsupported database type")

// Open connects to a SQLite or PostgreSQL database and verifies the connection
func Open(dbType, url string) (*sql.DB, error) {
	var driver string
	switch dbType {
	case TypeSQLite, "":
		driver = "sqlite"
	case TypePostgres, "postgresql":
		driver = "postgres"
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, dbType)
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	// SQLite allows one writer, and each connection to :memory: is a separate database
	if driver == "sqlite" {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return conn, nil
}
