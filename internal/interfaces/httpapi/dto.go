package httpapi

import (
	"time"

	"github.com/riskibarqy/league-views/internal/domain/match"
	"github.com/riskibarqy/league-views/internal/domain/standing"
	"github.com/riskibarqy/league-views/internal/domain/topscorers"
)

type teamDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Crest string `json:"crest,omitempty"`
	Place string `json:"place,omitempty"`
}

type venueDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type matchDTO struct {
	ID            int64     `json:"id"`
	HomeTeam      teamDTO   `json:"homeTeam"`
	AwayTeam      teamDTO   `json:"awayTeam"`
	HomeGoals     *int      `json:"homeGoals,omitempty"`
	AwayGoals     *int      `json:"awayGoals,omitempty"`
	HomeHalfGoals *int      `json:"homeHalfGoals,omitempty"`
	AwayHalfGoals *int      `json:"awayHalfGoals,omitempty"`
	Status        string    `json:"status"`
	Kickoff       int64     `json:"kickoff"`
	KickoffAt     string    `json:"kickoffAt"`
	Round         string    `json:"round,omitempty"`
	MatchNumber   int       `json:"matchNumber,omitempty"`
	CurrentMinute string    `json:"currentMinute,omitempty"`
	Venue         *venueDTO `json:"venue,omitempty"`
}

type standingDTO struct {
	Position       int     `json:"position"`
	Team           teamDTO `json:"team"`
	Played         int     `json:"played"`
	Won            int     `json:"won"`
	Drawn          int     `json:"drawn"`
	Lost           int     `json:"lost"`
	GoalsFor       int     `json:"goalsFor"`
	GoalsAgainst   int     `json:"goalsAgainst"`
	GoalDifference int     `json:"goalDifference"`
	Points         int     `json:"points"`
}

type teamGoalsDTO struct {
	Position     int     `json:"position"`
	Team         teamDTO `json:"team"`
	Played       int     `json:"played"`
	GoalsFor     int     `json:"goalsFor"`
	GoalsAgainst int     `json:"goalsAgainst"`
	Average      float64 `json:"average"`
}

type upcomingMatchesRequest struct {
	Limit *int `validate:"omitnil,min=1,max=10"`
}

func teamToDTO(t match.Team) teamDTO {
	return teamDTO{ID: t.ID, Name: t.Name, Crest: t.Crest, Place: t.Place}
}

func matchToDTO(m match.Match) matchDTO {
	out := matchDTO{
		ID:            m.ID,
		HomeTeam:      teamToDTO(m.HomeTeam),
		AwayTeam:      teamToDTO(m.AwayTeam),
		HomeHalfGoals: m.HomeHalfGoals,
		AwayHalfGoals: m.AwayHalfGoals,
		Status:        string(m.Status),
		Kickoff:       m.Kickoff,
		KickoffAt:     m.KickoffTime().Format(time.RFC3339),
		Round:         m.Round,
		MatchNumber:   m.MatchNumber,
		CurrentMinute: m.CurrentMinute,
	}
	// Scheduled fixtures have no score yet; keep the fields absent rather than 0.
	if m.HasHomeResult {
		v := m.HomeGoals
		out.HomeGoals = &v
	}
	if m.HasAwayResult {
		v := m.AwayGoals
		out.AwayGoals = &v
	}
	if m.Venue.ID != 0 || m.Venue.Name != "" {
		out.Venue = &venueDTO{ID: m.Venue.ID, Name: m.Venue.Name}
	}
	return out
}

func matchesToDTO(items []match.Match) []matchDTO {
	out := make([]matchDTO, 0, len(items))
	for _, m := range items {
		out = append(out, matchToDTO(m))
	}
	return out
}

func standingsToDTO(items []standing.Standing) []standingDTO {
	out := make([]standingDTO, 0, len(items))
	for _, s := range items {
		out = append(out, standingDTO{
			Position:       s.Position,
			Team:           teamToDTO(s.Team),
			Played:         s.Played,
			Won:            s.Won,
			Drawn:          s.Drawn,
			Lost:           s.Lost,
			GoalsFor:       s.GoalsFor,
			GoalsAgainst:   s.GoalsAgainst,
			GoalDifference: s.GoalDifference,
			Points:         s.Points,
		})
	}
	return out
}

func teamGoalsToDTO(items []topscorers.TeamGoals) []teamGoalsDTO {
	out := make([]teamGoalsDTO, 0, len(items))
	for _, g := range items {
		out = append(out, teamGoalsDTO{
			Position:     g.Position,
			Team:         teamToDTO(g.Team),
			Played:       g.Played,
			GoalsFor:     g.GoalsFor,
			GoalsAgainst: g.GoalsAgainst,
			Average:      g.Average(),
		})
	}
	return out
}
