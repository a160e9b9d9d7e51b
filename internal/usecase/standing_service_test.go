package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/league-views/internal/domain/match"
	"github.com/riskibarqy/league-views/internal/domain/standing"
	matchmock "github.com/riskibarqy/league-views/internal/mocks/domain/match"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func roundRobin(teams []string) []match.RawMatch {
	var out []match.RawMatch
	id := int64(1)
	for i, home := range teams {
		for j, away := range teams {
			if i == j {
				continue
			}
			out = append(out, feedMatch(id, home, away, "PLAYED", id*hour, goals((i+2*j)%4), goals((3*i+j)%3), "FT"))
			id++
		}
	}
	return out
}

func TestStandingService_List_ExampleSeason(t *testing.T) {
	t.Parallel()

	source := matchmock.NewSource(t)
	source.On("FetchMatches", mock.Anything, match.RangePast, 1, DefaultPageSize).Return([]match.RawMatch{
		feedMatch(1, "A", "B", "PLAYED", hour, goals(2), goals(1), "FT"),
		feedMatch(2, "C", "D", "PLAYED", 2*hour, goals(1), goals(1), "FT"),
		feedMatch(3, "A", "DESCANSA", "PLAYED", 3*hour, goals(0), goals(0), "FT"),
		feedMatch(4, "B", "C", "SCHEDULED", 4*hour, nil, nil, ""),
		feedMatch(5, "B", "D", "PLAYED", 5*hour, nil, nil, ""),
	}, nil).Once()

	matches := NewMatchService(source, nil, MatchServiceConfig{}, nil)
	service := NewStandingService(matches, nil, 0)

	rows, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 4)

	require.Equal(t, "A", rows[0].Team.Name)
	require.Equal(t, 3, rows[0].Points)
	require.Equal(t, 1, rows[0].Played)
	require.Equal(t, 1, rows[0].Position)

	require.Equal(t, "C", rows[1].Team.Name)
	require.Equal(t, "D", rows[2].Team.Name)
	require.Equal(t, 1, rows[1].Points)
	require.Equal(t, 1, rows[2].Points)

	require.Equal(t, "B", rows[3].Team.Name)
	require.Equal(t, 0, rows[3].Points)
	require.Equal(t, 1, rows[3].Lost)
	require.Equal(t, -1, rows[3].GoalDifference)

	for _, row := range rows {
		require.NotEqual(t, "DESCANSA", row.Team.Name)
	}
}

func TestStandingService_List_PartitionedFoldMatchesSerial(t *testing.T) {
	t.Parallel()

	teams := make([]string, 0, 8)
	for i := 0; i < 8; i++ {
		teams = append(teams, fmt.Sprintf("Team %02d", i))
	}
	feed := roundRobin(teams)

	serialSource := matchmock.NewSource(t)
	serialSource.On("FetchMatches", mock.Anything, match.RangePast, 1, DefaultPageSize).Return(feed, nil).Once()
	serial, err := NewStandingService(NewMatchService(serialSource, nil, MatchServiceConfig{}, nil), nil, 0).List(context.Background())
	require.NoError(t, err)

	pool, err := ants.NewPool(3)
	require.NoError(t, err)
	defer pool.Release()

	pooledSource := matchmock.NewSource(t)
	pooledSource.On("FetchMatches", mock.Anything, match.RangePast, 1, DefaultPageSize).Return(feed, nil).Once()
	pooled, err := NewStandingService(NewMatchService(pooledSource, nil, MatchServiceConfig{}, nil), pool, 5).List(context.Background())
	require.NoError(t, err)

	require.Equal(t, serial, pooled)

	totalPoints, draws := 0, 0
	for _, row := range pooled {
		totalPoints += row.Points
		draws += row.Drawn
	}
	draws /= 2
	require.Equal(t, 3*(len(feed)-draws)+2*draws, totalPoints)
}

func TestStandingService_List_ReleasedPoolStillFolds(t *testing.T) {
	t.Parallel()

	pool, err := ants.NewPool(1)
	require.NoError(t, err)
	pool.Release()

	feed := roundRobin([]string{"A", "B", "C", "D"})
	source := matchmock.NewSource(t)
	source.On("FetchMatches", mock.Anything, match.RangePast, 1, DefaultPageSize).Return(feed, nil).Once()

	rows, err := NewStandingService(NewMatchService(source, nil, MatchServiceConfig{}, nil), pool, 2).List(context.Background())
	require.NoError(t, err)
	require.Equal(t, standing.Rank(standing.Aggregate(match.NewNormalizer("").NormalizeAll(feed, match.ForAggregation))), rows)
}

func TestStandingService_List_SourceUnavailable(t *testing.T) {
	t.Parallel()

	source := matchmock.NewSource(t)
	source.On("FetchMatches", mock.Anything, match.RangePast, 1, DefaultPageSize).
		Return(nil, fmt.Errorf("%w: status 502", ErrSourceUnavailable)).
		Once()

	rows, err := NewStandingService(NewMatchService(source, nil, MatchServiceConfig{}, nil), nil, 0).List(context.Background())
	require.True(t, errors.Is(err, ErrSourceUnavailable), "got %v", err)
	require.Nil(t, rows)
}

func TestTopScoreService_ListTopScorers(t *testing.T) {
	t.Parallel()

	source := matchmock.NewSource(t)
	source.On("FetchMatches", mock.Anything, match.RangePast, 1, DefaultPageSize).Return([]match.RawMatch{
		feedMatch(1, "A", "B", "PLAYED", hour, goals(3), goals(0), "FT"),
		feedMatch(2, "B", "C", "PLAYED", 2*hour, goals(2), goals(2), "FT"),
		feedMatch(3, "C", "A", "PLAYED", 3*hour, goals(1), goals(1), "FT"),
		feedMatch(4, "C", "Descansa", "PLAYED", 4*hour, goals(5), goals(0), "FT"),
	}, nil).Once()

	rows, err := NewTopScoreService(NewMatchService(source, nil, MatchServiceConfig{}, nil)).ListTopScorers(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	require.Equal(t, "A", rows[0].Team.Name)
	require.Equal(t, 4, rows[0].GoalsFor)
	require.Equal(t, "C", rows[1].Team.Name)
	require.Equal(t, 3, rows[1].GoalsFor)
	require.Equal(t, "B", rows[2].Team.Name)
	require.Equal(t, 2, rows[2].GoalsFor)
	require.InDelta(t, 2.0, rows[0].Average(), 1e-9)
}
