package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/league-views/external/analyticom"
	"github.com/riskibarqy/league-views/internal/config"
	"github.com/riskibarqy/league-views/internal/domain/match"
	"github.com/riskibarqy/league-views/internal/domain/rawdata"
	"github.com/riskibarqy/league-views/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/league-views/internal/interfaces/httpapi"
	"github.com/riskibarqy/league-views/internal/platform/logging"
	"github.com/riskibarqy/league-views/internal/platform/resilience"
	"github.com/riskibarqy/league-views/internal/usecase"
)

// Services is the wired view layer shared by the API and the CLI.
type Services struct {
	Matches   *usecase.MatchService
	Standings *usecase.StandingService
	TopScores *usecase.TopScoreService
	// Archive is nil unless FEED_ARCHIVE_ENABLED is set.
	Archive rawdata.Repository

	pool *ants.Pool
	db   *sqlx.DB
}

// Build wires the feed client, the optional archive and the view services.
// Callers own the result and must Close it.
func Build(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Services, error) {
	if logger == nil {
		logger = logging.Default()
	}

	out := &Services{}
	if cfg.FeedArchiveEnabled {
		db, err := openArchiveDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		out.db = db
		out.Archive = postgres.NewRawDataRepository(db)
		logger.Info("feed archive enabled", "db_name", dbNameFromURL(cfg.DBURL))
	}

	if cfg.AggregationWorkers > 0 {
		pool, err := ants.NewPool(cfg.AggregationWorkers, ants.WithPreAlloc(false))
		if err != nil {
			_ = out.Close()
			return nil, fmt.Errorf("create aggregation pool: %w", err)
		}
		out.pool = pool
	}

	source := analyticom.NewClient(analyticom.ClientConfig{
		BaseURL:       cfg.FeedBaseURL,
		CompetitionID: cfg.FeedCompetitionID,
		APIKey:        cfg.APIKey,
		Timeout:       cfg.FeedTimeout,
		Logger:        logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.FeedCircuitEnabled,
			FailureThreshold: cfg.FeedCircuitFailureCount,
			OpenTimeout:      cfg.FeedCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.FeedCircuitHalfOpenMaxReq,
		},
		Archive: out.Archive,
	})

	out.Matches = usecase.NewMatchService(
		source,
		match.NewNormalizer(cfg.FeedByeTeamName),
		usecase.MatchServiceConfig{
			PageSize:      cfg.FeedPageSize,
			UpcomingLimit: cfg.UpcomingMatchesLimit,
		},
		logger,
	)
	out.Standings = usecase.NewStandingService(out.Matches, out.pool, cfg.AggregationPartitionSize)
	out.TopScores = usecase.NewTopScoreService(out.Matches)

	return out, nil
}

// Close releases the worker pool and the archive connection.
func (s *Services) Close() error {
	if s == nil {
		return nil
	}
	if s.pool != nil {
		s.pool.Release()
	}
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func NewHTTPServer(cfg config.Config, services *Services, logger *logging.Logger) (*http.Server, error) {
	if services == nil {
		return nil, errors.New("services are required")
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	handler := httpapi.NewHandler(services.Matches, services.Standings, services.TopScores, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}
