// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-vault-adder/internal/config"
	"github.com/MKhiriev/go-vault-adder/internal/logger"
	"github.com/MKhiriev/go-vault-adder/migrations"
)

// Dialect identifies the SQL engine behind a [DB].
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite3"
	DialectPostgres Dialect = "postgres"
)

// DB is a *sql.DB bound to a dialect and its error classifier.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the registry database described by cfg. A DSN starting
// with "postgres://" or "postgresql://" selects PostgreSQL, anything else is
// treated as a SQLite file path.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}

// Migrate applies the embedded migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// Dialect returns the SQL engine of the connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}

	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}

	return db.errorClassificator.Classify(err)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
