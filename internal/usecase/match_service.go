package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/riskibarqy/league-views/internal/domain/match"
	"github.com/riskibarqy/league-views/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
)

const (
	// MaxUpcomingMatches caps the upcoming view.
	MaxUpcomingMatches = 10
	DefaultPageSize    = 1000
)

type MatchServiceConfig struct {
	PageSize      int
	UpcomingLimit int
}

// MatchService projects the feed into the match views. Every call reads the
// feed again; nothing is kept between requests.
type MatchService struct {
	source        match.Source
	normalizer    *match.Normalizer
	pageSize      int
	upcomingLimit int
	logger        *logging.Logger
}

func NewMatchService(source match.Source, normalizer *match.Normalizer, cfg MatchServiceConfig, logger *logging.Logger) *MatchService {
	if normalizer == nil {
		normalizer = match.NewNormalizer(match.DefaultByeTeamName)
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.UpcomingLimit <= 0 || cfg.UpcomingLimit > MaxUpcomingMatches {
		cfg.UpcomingLimit = MaxUpcomingMatches
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &MatchService{
		source:        source,
		normalizer:    normalizer,
		pageSize:      cfg.PageSize,
		upcomingLimit: cfg.UpcomingLimit,
		logger:        logger,
	}
}

// ListAll returns played and scheduled matches from both ranges, earliest first.
func (s *MatchService) ListAll(ctx context.Context) ([]match.Match, error) {
	ctx, span := startViewSpan(ctx, "usecase.MatchService.ListAll")
	defer span.End()

	var past, future []match.RawMatch
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		items, err := s.fetch(ctx, match.RangePast)
		if err != nil {
			return err
		}
		past = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.fetch(ctx, match.RangeFuture)
		if err != nil {
			return err
		}
		future = items
		return nil
	})
	if err := p.Wait(); err != nil {
		recordSpanError(span, err)
		return nil, err
	}

	raws := make([]match.RawMatch, 0, len(past)+len(future))
	raws = append(raws, past...)
	raws = append(raws, future...)

	items := s.normalizer.NormalizeAll(raws, match.ForSchedule)
	sortByKickoff(items, true)
	span.SetAttributes(attribute.Int("view.size", len(items)))
	return items, nil
}

// ListPlayed returns completed matches, most recent first.
func (s *MatchService) ListPlayed(ctx context.Context) ([]match.Match, error) {
	ctx, span := startViewSpan(ctx, "usecase.MatchService.ListPlayed")
	defer span.End()

	raws, err := s.fetch(ctx, match.RangePast)
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}

	items := s.normalizer.NormalizeAll(raws, match.IsCompleted)
	sortByKickoff(items, false)
	return items, nil
}

// ListUpcoming returns the next scheduled matches, earliest first. A zero
// limit means the configured default.
func (s *MatchService) ListUpcoming(ctx context.Context, limit int) ([]match.Match, error) {
	if limit < 0 || limit > MaxUpcomingMatches {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, MaxUpcomingMatches)
	}
	if limit == 0 {
		limit = s.upcomingLimit
	}

	ctx, span := startViewSpan(ctx, "usecase.MatchService.ListUpcoming", attribute.Int("view.limit", limit))
	defer span.End()

	raws, err := s.fetch(ctx, match.RangeFuture)
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}

	items := s.normalizer.NormalizeAll(raws, match.IsScheduled)
	sortByKickoff(items, true)
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// ListForAggregation returns past matches that count towards standings and
// the goals leaderboard.
func (s *MatchService) ListForAggregation(ctx context.Context) ([]match.Match, error) {
	raws, err := s.fetch(ctx, match.RangePast)
	if err != nil {
		return nil, err
	}
	return s.normalizer.NormalizeAll(raws, match.ForAggregation), nil
}

func (s *MatchService) fetch(ctx context.Context, r match.Range) ([]match.RawMatch, error) {
	ctx, span := startViewSpan(ctx, "usecase.MatchService.fetch", rangeAttr(string(r)))
	defer span.End()

	items, err := s.source.FetchMatches(ctx, r, 1, s.pageSize)
	if err != nil {
		recordSpanError(span, err)
		s.logger.WarnContext(ctx, "fetch feed matches failed", "range", r, "error", err)
		if errors.Is(err, ErrSourceUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: fetch %s matches: %v", ErrSourceUnavailable, r, err)
	}
	if len(items) >= s.pageSize {
		s.logger.WarnContext(ctx, "feed page is full, later records are not read", "range", r, "page_size", s.pageSize)
	}
	return items, nil
}

func sortByKickoff(items []match.Match, ascending bool) {
	sort.SliceStable(items, func(i, j int) bool {
		if ascending {
			return items[i].Kickoff < items[j].Kickoff
		}
		return items[i].Kickoff > items[j].Kickoff
	})
}
