package topscorers

import (
	"sort"

	"github.com/riskibarqy/league-views/internal/domain/match"
)

// Aggregate folds played matches into per-team goal totals. Outcomes and
// points are not tracked.
func Aggregate(matches []match.Match) map[string]*TeamGoals {
	out := make(map[string]*TeamGoals)
	ensure := func(team match.Team) *TeamGoals {
		if row, ok := out[team.Name]; ok {
			return row
		}
		row := &TeamGoals{Team: team}
		out[team.Name] = row
		return row
	}

	for _, m := range matches {
		home := ensure(m.HomeTeam)
		away := ensure(m.AwayTeam)

		home.Played++
		away.Played++
		home.GoalsFor += m.HomeGoals
		home.GoalsAgainst += m.AwayGoals
		away.GoalsFor += m.AwayGoals
		away.GoalsAgainst += m.HomeGoals
	}

	return out
}

// Rank orders rows by goals scored, then by average per match, both
// descending, then by team name.
func Rank(rows map[string]*TeamGoals) []TeamGoals {
	out := make([]TeamGoals, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		if avgA, avgB := a.Average(), b.Average(); avgA != avgB {
			return avgA > avgB
		}
		return a.Team.Name < b.Team.Name
	})
	for i := range out {
		out[i].Position = i + 1
	}
	return out
}
