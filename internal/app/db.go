package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/league-views/internal/config"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"
)

const (
	archiveMaxOpenConns    = 4
	archiveMaxIdleConns    = 2
	archiveConnMaxLifetime = 30 * time.Minute
	archivePingTimeout     = 5 * time.Second
)

// openArchiveDB connects to the feed archive with query spans enabled.
func openArchiveDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open("postgres", dbURL,
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(dbNameFromURL(dbURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open archive db: %w", err)
	}
	db.SetMaxOpenConns(archiveMaxOpenConns)
	db.SetMaxIdleConns(archiveMaxIdleConns)
	db.SetConnMaxLifetime(archiveConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, archivePingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping archive db: %w", err)
	}
	return db, nil
}
