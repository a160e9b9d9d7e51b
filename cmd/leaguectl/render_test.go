package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/league-views/internal/domain/match"
	"github.com/riskibarqy/league-views/internal/domain/rawdata"
	"github.com/riskibarqy/league-views/internal/domain/standing"
	"github.com/riskibarqy/league-views/internal/domain/topscorers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderStandings(t *testing.T) {
	var buf bytes.Buffer
	err := renderStandings(&buf, []standing.Standing{
		{Team: match.Team{Name: "Alajuelense"}, Position: 1, Played: 3, Won: 2, Drawn: 1, GoalsFor: 5, GoalsAgainst: 1, GoalDifference: 4, Points: 7},
		{Team: match.Team{Name: "Saprissa"}, Position: 2, Played: 3, Won: 1, Drawn: 1, Lost: 1, GoalsFor: 3, GoalsAgainst: 4, GoalDifference: -1, Points: 4},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Alajuelense")
	assert.Contains(t, out, "+4")
	assert.Contains(t, out, "-1")
	assert.Less(t, strings.Index(out, "Alajuelense"), strings.Index(out, "Saprissa"))
}

func TestRenderTopScorers(t *testing.T) {
	var buf bytes.Buffer
	err := renderTopScorers(&buf, []topscorers.TeamGoals{
		{Team: match.Team{Name: "Herediano"}, Position: 1, Played: 2, GoalsFor: 5, GoalsAgainst: 2},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "2.50")
}

func TestRenderMatches(t *testing.T) {
	kickoff := time.Date(2025, 8, 2, 20, 0, 0, 0, time.UTC).UnixMilli()

	var buf bytes.Buffer
	err := renderMatches(&buf, []match.Match{
		{ID: 1, HomeTeam: match.Team{Name: "Saprissa"}, AwayTeam: match.Team{Name: "Herediano"}, Kickoff: kickoff, Status: match.StatusScheduled},
		{ID: 2, HomeTeam: match.Team{Name: "Cartaginés"}, AwayTeam: match.Team{Name: "Alajuelense"}, Kickoff: kickoff, Status: match.StatusPlayed,
			HomeGoals: 1, AwayGoals: 2, HasHomeResult: true, HasAwayResult: true},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "2025-08-02 20:00")
	assert.Contains(t, out, "1 - 2")
	assert.Contains(t, out, "SCHEDULED")
}

func TestRenderEmptyViews(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderStandings(&buf, nil))
	require.NoError(t, renderTopScorers(&buf, nil))
	require.NoError(t, renderMatches(&buf, nil))
	require.NoError(t, renderArchive(&buf, nil))

	out := buf.String()
	assert.Contains(t, out, "No completed matches yet.")
	assert.Contains(t, out, "No matches.")
	assert.Contains(t, out, "Archive is empty.")
}

func TestRenderArchive(t *testing.T) {
	var buf bytes.Buffer
	err := renderArchive(&buf, []rawdata.Payload{{
		EntityType:  "matches_page",
		EntityKey:   "competition/274811838/past?page=1&pageSize=1000",
		PayloadJSON: `{"result":[]}`,
		PayloadHash: "0123456789abcdef",
		FetchedAt:   time.Date(2025, 8, 2, 20, 0, 0, 0, time.UTC),
	}})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "0123456789ab")
	assert.NotContains(t, out, "0123456789abcdef")
	assert.Contains(t, out, "2025-08-02 20:00:00")
}

func TestRootCmd_HasViewCommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"standings", "topscorers", "matches", "played", "upcoming", "archive"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}
