package usecase

import (
	"context"

	"github.com/riskibarqy/league-views/internal/domain/topscorers"
)

type TopScoreService struct {
	matches *MatchService
}

func NewTopScoreService(matches *MatchService) *TopScoreService {
	return &TopScoreService{matches: matches}
}

// ListTopScorers ranks teams by goals scored in played matches.
func (s *TopScoreService) ListTopScorers(ctx context.Context) ([]topscorers.TeamGoals, error) {
	ctx, span := startViewSpan(ctx, "usecase.TopScoreService.ListTopScorers")
	defer span.End()

	items, err := s.matches.ListForAggregation(ctx)
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}

	return topscorers.Rank(topscorers.Aggregate(items)), nil
}
