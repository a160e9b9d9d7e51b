package postgres

import (
	"database/sql"
	"strings"
	"time"

	"github.com/riskibarqy/league-views/internal/domain/rawdata"
)

type rawDataPayloadRow struct {
	Source        string         `db:"source"`
	EntityType    string         `db:"entity_type"`
	EntityKey     string         `db:"entity_key"`
	CompetitionID sql.NullString `db:"competition_id"`
	Payload       string         `db:"payload"`
	PayloadHash   string         `db:"payload_hash"`
	FetchedAt     time.Time      `db:"fetched_at"`
	IngestedAt    time.Time      `db:"ingested_at"`
}

func rawDataRowFromDomain(item rawdata.Payload) rawDataPayloadRow {
	fetchedAt := item.FetchedAt
	if fetchedAt.IsZero() {
		fetchedAt = time.Now()
	}
	return rawDataPayloadRow{
		Source:        item.Source,
		EntityType:    item.EntityType,
		EntityKey:     item.EntityKey,
		CompetitionID: nullableString(item.CompetitionID),
		Payload:       item.PayloadJSON,
		PayloadHash:   item.PayloadHash,
		FetchedAt:     fetchedAt.UTC(),
	}
}

func (r rawDataPayloadRow) toDomain() rawdata.Payload {
	return rawdata.Payload{
		Source:        r.Source,
		EntityType:    r.EntityType,
		EntityKey:     r.EntityKey,
		CompetitionID: r.CompetitionID.String,
		PayloadJSON:   r.Payload,
		PayloadHash:   r.PayloadHash,
		FetchedAt:     r.FetchedAt.UTC(),
		IngestedAt:    r.IngestedAt.UTC(),
	}
}

func nullableString(value string) sql.NullString {
	value = strings.TrimSpace(value)
	return sql.NullString{String: value, Valid: value != ""}
}
