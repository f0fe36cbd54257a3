// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-vault-adder/internal/logger"
	"github.com/MKhiriev/go-vault-adder/models"
)

const vaultSourcesTable = "vault_sources"

var vaultSourceColumns = []string{"source_id", "datasource_type", "filename", "create_new", "created_at"}

const (
	maxWriteAttempts = 3
	retryBackoff     = 50 * time.Millisecond
)

// vaultSourceRepository is the SQL implementation of [VaultSourceRepository].
// Queries are built with squirrel so the same code serves SQLite and
// PostgreSQL placeholders.
type vaultSourceRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewVaultSourceRepository(db *DB, logger *logger.Logger) VaultSourceRepository {
	logger.Debug().Msg("creating vault source repository")
	return &vaultSourceRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts source. Transient failures are retried a few times; unique
// violations on either engine are reported as [ErrVaultSourceExists].
func (r *vaultSourceRepository) Create(ctx context.Context, source models.VaultSource) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Insert(vaultSourcesTable).
		Columns(vaultSourceColumns...).
		Values(string(source.SourceID), source.Type, source.Filename, source.CreateNew, source.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building insert query: %w", err)
	}

	for attempt := 1; ; attempt++ {
		_, err = r.db.ExecContext(ctx, query, args...)
		if err == nil {
			return nil
		}
		if r.isUniqueViolation(err) {
			log.Warn().Err(err).
				Str("func", "*vaultSourceRepository.Create").
				Str("source_id", string(source.SourceID)).
				Str("filename", source.Filename).
				Msg("vault source already registered")
			return ErrVaultSourceExists
		}
		if attempt >= maxWriteAttempts || r.db.classify(err) != Retryable {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryBackoff * time.Duration(attempt)):
		}
	}

	log.Err(err).Str("func", "*vaultSourceRepository.Create").Msg("error inserting vault source")
	return fmt.Errorf("unexpected DB error: %w", err)
}

func (r *vaultSourceRepository) FindByFilename(ctx context.Context, filename string) (models.VaultSource, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select(vaultSourceColumns...).
		From(vaultSourcesTable).
		Where(sq.Eq{"filename": filename}).
		Limit(1).
		ToSql()
	if err != nil {
		return models.VaultSource{}, fmt.Errorf("error building select query: %w", err)
	}

	source, err := scanVaultSource(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.VaultSource{}, ErrVaultSourceNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*vaultSourceRepository.FindByFilename").Msg("error scanning vault source")
		return models.VaultSource{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return source, nil
}

func (r *vaultSourceRepository) List(ctx context.Context) ([]models.VaultSource, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select(vaultSourceColumns...).
		From(vaultSourcesTable).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building select query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*vaultSourceRepository.List").Msg("error querying vault sources")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var sources []models.VaultSource
	for rows.Next() {
		source, scanErr := scanVaultSource(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*vaultSourceRepository.List").Msg("error scanning vault source")
			return nil, fmt.Errorf("error scanning vault source: %w", scanErr)
		}
		sources = append(sources, source)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vault sources: %w", err)
	}

	return sources, nil
}

func (r *vaultSourceRepository) isUniqueViolation(err error) bool {
	if r.db.dialect == DialectPostgres {
		return postgresError(err) == pgerrcode.UniqueViolation
	}

	return isSQLiteUniqueViolation(err)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVaultSource(row rowScanner) (models.VaultSource, error) {
	var (
		source   models.VaultSource
		sourceID string
	)
	if err := row.Scan(&sourceID, &source.Type, &source.Filename, &source.CreateNew, &source.CreatedAt); err != nil {
		return models.VaultSource{}, err
	}
	source.SourceID = models.VaultSourceID(sourceID)

	return source, nil
}
