package match

import (
	"strings"
	"time"
)

type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusPlayed    Status = "PLAYED"
	StatusOther     Status = "OTHER"
)

// FullTimeMarker is the feed's currentMinute value once the final whistle went.
const FullTimeMarker = "FT"

// ParseStatus maps the feed liveStatus onto the canonical status set.
func ParseStatus(value string) Status {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case string(StatusPlayed):
		return StatusPlayed
	case string(StatusScheduled):
		return StatusScheduled
	default:
		return StatusOther
	}
}

// Team is a participant identity as carried by the feed.
type Team struct {
	ID    int64
	Name  string `validate:"required"`
	Crest string
	Place string
}

// Venue is the facility a match is played at.
type Venue struct {
	ID      int64
	Name    string
	Address string
	Place   string
}

// Match is the canonical, validated form of one feed record.
type Match struct {
	ID            int64
	HomeTeam      Team
	AwayTeam      Team
	HomeGoals     int `validate:"gte=0"`
	AwayGoals     int `validate:"gte=0"`
	HasHomeResult bool
	HasAwayResult bool
	HomeHalfGoals *int
	AwayHalfGoals *int
	Status        Status
	Kickoff       int64
	Round         string
	RoundOrder    int
	MatchNumber   int
	CurrentMinute string
	Venue         Venue
}

// KickoffTime converts the epoch-millisecond kickoff into UTC time.
func (m Match) KickoffTime() time.Time {
	return time.UnixMilli(m.Kickoff).UTC()
}

// HasFullTimeMarker reports whether the feed flagged the final whistle.
func (m Match) HasFullTimeMarker() bool {
	return strings.EqualFold(strings.TrimSpace(m.CurrentMinute), FullTimeMarker)
}
