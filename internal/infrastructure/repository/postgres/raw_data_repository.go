package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-views/internal/domain/rawdata"
)

const (
	defaultListRecentLimit = 20
	maxListRecentLimit     = 500
)

const upsertRawDataPayloadQuery = `INSERT INTO raw_data_payloads (
    source, entity_type, entity_key, competition_id, payload, payload_hash, fetched_at
) VALUES (
    :source, :entity_type, :entity_key, :competition_id, :payload, :payload_hash, :fetched_at
)
ON CONFLICT (source, entity_type, entity_key)
DO UPDATE SET
    competition_id = EXCLUDED.competition_id,
    payload = EXCLUDED.payload,
    payload_hash = EXCLUDED.payload_hash,
    fetched_at = EXCLUDED.fetched_at,
    ingested_at = NOW()
WHERE raw_data_payloads.payload_hash IS DISTINCT FROM EXCLUDED.payload_hash
   OR raw_data_payloads.fetched_at < EXCLUDED.fetched_at`

const listRecentRawDataPayloadsQuery = `SELECT
    source, entity_type, entity_key, competition_id, payload, payload_hash, fetched_at, ingested_at
FROM raw_data_payloads
WHERE source = $1
ORDER BY fetched_at DESC, entity_key ASC
LIMIT $2`

type RawDataRepository struct {
	db *sqlx.DB
}

func NewRawDataRepository(db *sqlx.DB) *RawDataRepository {
	return &RawDataRepository{db: db}
}

var _ rawdata.Repository = (*RawDataRepository)(nil)

// UpsertMany stores every payload in one transaction.
func (r *RawDataRepository) UpsertMany(ctx context.Context, items []rawdata.Payload) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert raw payloads: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.PrepareNamedContext(ctx, upsertRawDataPayloadQuery)
	if err != nil {
		return fmt.Errorf("prepare upsert raw payload: %w", err)
	}
	defer stmt.Close()

	for _, item := range items {
		if _, err := stmt.ExecContext(ctx, rawDataRowFromDomain(item)); err != nil {
			return fmt.Errorf("upsert raw payload entity=%s key=%s: %w", item.EntityType, item.EntityKey, classifyPQError(err))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert raw payloads tx: %w", err)
	}
	return nil
}

// ListRecent returns the most recently fetched payloads of one source.
func (r *RawDataRepository) ListRecent(ctx context.Context, source string, limit int) ([]rawdata.Payload, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, fmt.Errorf("list raw payloads: source is required")
	}
	limit = clampLimit(limit)

	var rows []rawDataPayloadRow
	if err := r.db.SelectContext(ctx, &rows, listRecentRawDataPayloadsQuery, source, limit); err != nil {
		return nil, fmt.Errorf("list raw payloads source=%s: %w", source, classifyPQError(err))
	}

	out := make([]rawdata.Payload, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultListRecentLimit
	case limit > maxListRecentLimit:
		return maxListRecentLimit
	default:
		return limit
	}
}
