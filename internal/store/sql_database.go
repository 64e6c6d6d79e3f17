// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pocket-money/internal/config"
	"github.com/MKhiriev/go-pocket-money/internal/logger"
	"github.com/MKhiriev/go-pocket-money/migrations"
)

// DB is a database/sql connection bundled with the SQL dialect it speaks:
// a squirrel statement builder using the right placeholder format and an
// error classifier for driver-specific error codes.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger

	// maxOpenConns is the pool limit set at connect time; zero means unlimited.
	maxOpenConns int
}

// NewConnect opens the database selected by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite, "":
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

func newDB(conn *sql.DB, driver string, classifier ErrorClassificator, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if driver == config.DriverPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		driver:             driver,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classifier,
		logger:             log,
	}
}

// wrapError wraps a driver error with sentinel and additionally marks it
// with [ErrTransient] when the classifier deems it retryable.
func (db *DB) wrapError(sentinel, err error) error {
	if db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w: %w", ErrTransient, sentinel, err)
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

// Driver returns the database/sql driver name of the connection.
func (db *DB) Driver() string {
	return db.driver
}

// Migrate applies all pending schema migrations.
//
// goose keeps one connection checked out for the whole run while Go
// migrations execute on the pool, so a single-connection pool is widened for
// the duration of the run.
func (db *DB) Migrate(ctx context.Context) error {
	if db.maxOpenConns == 1 {
		db.SetMaxOpenConns(2)
		defer db.SetMaxOpenConns(db.maxOpenConns)
	}

	return migrations.Migrate(ctx, db.DB, db.driver, db.errorClassificator.IsDuplicateColumn)
}
