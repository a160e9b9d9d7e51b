package standing

import "github.com/riskibarqy/league-views/internal/domain/match"

const (
	PointsWin  = 3
	PointsDraw = 1
)

// Standing represents a league table row for one team.
type Standing struct {
	Team           match.Team
	Position       int
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
}

// TeamKey identifies a team inside a table. Only built from validated names.
type TeamKey string

func KeyOf(team match.Team) TeamKey {
	return TeamKey(team.Name)
}
