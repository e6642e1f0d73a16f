package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"booking-api/internal/domain/request"
	"booking-api/internal/infra"
	"booking-api/internal/pkg/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps the same whole-sequence contract on top of a table:
// one row per record, ordinal preserves the newest-first sequence order, and
// SaveAll swaps the full content inside a single transaction. Business logic
// is identical across drivers.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS booking_requests (
	id      text PRIMARY KEY,
	ordinal integer NOT NULL,
	payload jsonb   NOT NULL
)`

func NewPostgresStore(cfg config.DBConfig, logger *slog.Logger) (*PostgresStore, func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.BuildDSN())
	if err != nil {
		return nil, nil, infra.WrapStoreErr(logger, infra.KindDBFailure, "failed to create connection pool", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, infra.WrapStoreErr(logger, infra.KindDBFailure, "failed to ping database", err)
	}

	if _, err := pool.Exec(ctx, schemaDDL); err != nil {
		pool.Close()
		return nil, nil, infra.WrapStoreErr(logger, infra.KindDBFailure, "failed to ensure schema", err)
	}

	cleanup := func() {
		pool.Close()
	}

	return &PostgresStore{pool: pool, logger: logger}, cleanup, nil
}

func (s *PostgresStore) LoadAll(ctx context.Context) ([]request.Record, error) {
	rows, err := s.pool.Query(ctx, `SELECT payload FROM booking_requests ORDER BY ordinal`)
	if err != nil {
		return nil, infra.WrapStoreErr(s.logger, infra.KindDBFailure, "failed to query records", err)
	}
	defer rows.Close()

	records := []request.Record{}
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, infra.WrapStoreErr(s.logger, infra.KindDBFailure, "failed to scan record row", err)
		}

		var rec request.Record
		if err := json.Unmarshal(payload, &rec); err != nil {
			return nil, infra.WrapStoreErr(s.logger, infra.KindEncoding, "failed to decode record payload", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapStoreErr(s.logger, infra.KindDBFailure, "failed to iterate record rows", err)
	}

	return records, nil
}

func (s *PostgresStore) SaveAll(ctx context.Context, records []request.Record) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindDBFailure, "failed to begin transaction", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && rollbackErr != pgx.ErrTxClosed {
			s.logger.Warn("failed to rollback transaction", slog.String("error", rollbackErr.Error()))
		}
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM booking_requests`); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindDBFailure, "failed to clear records", err)
	}

	for i, rec := range records {
		payload, err := json.Marshal(rec)
		if err != nil {
			return infra.WrapStoreErr(s.logger, infra.KindEncoding, "failed to encode record", err)
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO booking_requests (id, ordinal, payload) VALUES ($1, $2, $3)`,
			rec.ID, i, payload)
		if err != nil {
			return infra.WrapStoreErr(s.logger, infra.KindDBFailure, "failed to insert record", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindDBFailure, "failed to commit transaction", err)
	}

	return nil
}
