package topscorers

import (
	"testing"

	"github.com/riskibarqy/league-views/internal/domain/match"
)

func played(home, away string, homeGoals, awayGoals int) match.Match {
	return match.Match{
		HomeTeam:  match.Team{Name: home},
		AwayTeam:  match.Team{Name: away},
		HomeGoals: homeGoals,
		AwayGoals: awayGoals,
		Status:    match.StatusPlayed,
	}
}

func TestAggregateAndRank(t *testing.T) {
	t.Parallel()

	rows := Rank(Aggregate([]match.Match{
		played("A", "B", 3, 0),
		played("B", "C", 2, 2),
		played("C", "A", 1, 1),
	}))

	// A: 4 goals in 2, C: 3 in 2, B: 2 in 2
	want := []struct {
		name   string
		gf, ga int
	}{
		{name: "A", gf: 4, ga: 1},
		{name: "C", gf: 3, ga: 3},
		{name: "B", gf: 2, ga: 5},
	}
	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(rows))
	}
	for i, w := range want {
		row := rows[i]
		if row.Team.Name != w.name || row.GoalsFor != w.gf || row.GoalsAgainst != w.ga || row.Played != 2 {
			t.Fatalf("row %d unexpected: %+v", i, row)
		}
		if row.Position != i+1 {
			t.Fatalf("row %d position=%d", i, row.Position)
		}
	}
}

func TestRank_AverageBreaksGoalTies(t *testing.T) {
	t.Parallel()

	rows := Rank(map[string]*TeamGoals{
		"Busy":  {Team: match.Team{Name: "Busy"}, Played: 4, GoalsFor: 6},
		"Sharp": {Team: match.Team{Name: "Sharp"}, Played: 2, GoalsFor: 6},
		"Alpha": {Team: match.Team{Name: "Alpha"}, Played: 4, GoalsFor: 6},
	})

	got := []string{rows[0].Team.Name, rows[1].Team.Name, rows[2].Team.Name}
	want := []string{"Sharp", "Alpha", "Busy"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order mismatch: got=%v want=%v", got, want)
		}
	}
}

func TestAverage_ZeroPlayed(t *testing.T) {
	t.Parallel()

	if avg := (TeamGoals{GoalsFor: 3}).Average(); avg != 0 {
		t.Fatalf("expected 0 average, got %v", avg)
	}
	if avg := (TeamGoals{Played: 4, GoalsFor: 6}).Average(); avg != 1.5 {
		t.Fatalf("expected 1.5 average, got %v", avg)
	}
}

func TestRank_Empty(t *testing.T) {
	t.Parallel()

	if rows := Rank(Aggregate(nil)); len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}
