// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations holds the versioned database schema for both supported
// dialects and applies it with goose.
//
// Versions 1-4 are plain SQL files embedded per dialect. Version 5 is a Go
// migration that adds the progression counters and the expense necessity
// column; it tolerates columns that already exist so databases created
// before the counters were tracked upgrade in place.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/MKhiriev/go-pocket-money/internal/config"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// ErrNilDB is returned when Migrate is called without a connection.
var ErrNilDB = errors.New("db is nil")

// ProgressColumnsVersion is the version of the Go migration adding the
// progression columns.
const ProgressColumnsVersion = 5

type column struct {
	table      string
	name       string
	definition string
}

// Migrate applies every pending migration of the dialect matching driver.
// isDuplicateColumn recognises the driver error raised when a column is
// added twice.
func Migrate(ctx context.Context, db *sql.DB, driver string, isDuplicateColumn func(error) bool) error {
	if db == nil {
		return ErrNilDB
	}

	dialect, dir, err := dialectFor(driver)
	if err != nil {
		return err
	}

	fsys, err := fs.Sub(embedMigrations, dir)
	if err != nil {
		return fmt.Errorf("migration error opening %s: %w", dir, err)
	}

	provider, err := goose.NewProvider(dialect, db, fsys,
		goose.WithGoMigrations(
			goose.NewGoMigration(ProgressColumnsVersion,
				&goose.GoFunc{RunDB: addColumns(progressColumns(driver), isDuplicateColumn)},
				&goose.GoFunc{RunDB: dropColumns(progressColumns(driver))},
			),
		),
	)
	if err != nil {
		return fmt.Errorf("migration error creating provider: %w", err)
	}

	if _, err = provider.Up(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func dialectFor(driver string) (goose.Dialect, string, error) {
	switch driver {
	case config.DriverPostgres:
		return goose.DialectPostgres, "postgres", nil
	case config.DriverSQLite:
		return goose.DialectSQLite3, "sqlite", nil
	default:
		return "", "", fmt.Errorf("migration error: unsupported driver %q", driver)
	}
}

func progressColumns(driver string) []column {
	dateType := "TEXT"
	if driver == config.DriverPostgres {
		dateType = "DATE"
	}

	return []column{
		{table: "users", name: "last_active_date", definition: dateType},
		{table: "users", name: "streak_days", definition: "INTEGER NOT NULL DEFAULT 0"},
		{table: "users", name: "xp", definition: "INTEGER NOT NULL DEFAULT 0"},
		{table: "users", name: "points", definition: "INTEGER NOT NULL DEFAULT 0"},
		{table: "expenses", name: "necessity", definition: "TEXT"},
	}
}

// addColumns runs outside a transaction: a failed ALTER aborts a PostgreSQL
// transaction, and an existing column must not stop the remaining ones.
func addColumns(columns []column, isDuplicateColumn func(error) bool) func(context.Context, *sql.DB) error {
	return func(ctx context.Context, db *sql.DB) error {
		for _, c := range columns {
			stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", c.table, c.name, c.definition)
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				if isDuplicateColumn != nil && isDuplicateColumn(err) {
					continue
				}
				return fmt.Errorf("adding column %s.%s: %w", c.table, c.name, err)
			}
		}
		return nil
	}
}

func dropColumns(columns []column) func(context.Context, *sql.DB) error {
	return func(ctx context.Context, db *sql.DB) error {
		for i := len(columns) - 1; i >= 0; i-- {
			c := columns[i]
			stmt := fmt.Sprintf("ALTER TABLE %s DROP COLUMN %s", c.table, c.name)
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("dropping column %s.%s: %w", c.table, c.name, err)
			}
		}
		return nil
	}
}
