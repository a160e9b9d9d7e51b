package topscorers

import "github.com/riskibarqy/league-views/internal/domain/match"

// TeamGoals is one leaderboard row. The feed carries no player-level scorer
// data, so the leaderboard ranks teams by the goals they scored.
type TeamGoals struct {
	Team         match.Team
	Position     int
	Played       int
	GoalsFor     int
	GoalsAgainst int
}

// Average is goals scored per match played, zero before the first match.
func (t TeamGoals) Average() float64 {
	if t.Played <= 0 {
		return 0
	}
	return float64(t.GoalsFor) / float64(t.Played)
}
