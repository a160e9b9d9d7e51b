package usecase

import (
	"context"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/league-views/internal/domain/match"
	"github.com/riskibarqy/league-views/internal/domain/standing"
	"go.opentelemetry.io/otel/attribute"
)

const DefaultPartitionSize = 200

type StandingService struct {
	matches       *MatchService
	pool          *ants.Pool
	partitionSize int
}

// NewStandingService folds on pool when one is given and the match list is
// larger than partitionSize. A nil pool folds on the calling goroutine.
func NewStandingService(matches *MatchService, pool *ants.Pool, partitionSize int) *StandingService {
	if partitionSize <= 0 {
		partitionSize = DefaultPartitionSize
	}
	return &StandingService{
		matches:       matches,
		pool:          pool,
		partitionSize: partitionSize,
	}
}

func (s *StandingService) List(ctx context.Context) ([]standing.Standing, error) {
	ctx, span := startViewSpan(ctx, "usecase.StandingService.List")
	defer span.End()

	items, err := s.matches.ListForAggregation(ctx)
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}

	table := s.aggregate(items)
	span.SetAttributes(attribute.Int("view.matches", len(items)), attribute.Int("view.teams", table.Len()))
	return standing.Rank(table), nil
}

func (s *StandingService) aggregate(items []match.Match) *standing.Table {
	if s.pool == nil || len(items) <= s.partitionSize {
		return standing.Aggregate(items)
	}

	chunks := partition(items, s.partitionSize)
	partials := make([]*standing.Table, len(chunks))

	var wg sync.WaitGroup
	for i, chunk := range chunks {
		i, chunk := i, chunk
		wg.Add(1)
		if err := s.pool.Submit(func() {
			defer wg.Done()
			partials[i] = standing.Aggregate(chunk)
		}); err != nil {
			wg.Done()
			partials[i] = standing.Aggregate(chunk)
		}
	}
	wg.Wait()

	table := standing.NewTable()
	for _, partial := range partials {
		table.Merge(partial)
	}
	return table
}

func partition(items []match.Match, size int) [][]match.Match {
	out := make([][]match.Match, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		out = append(out, items[start:end])
	}
	return out
}
