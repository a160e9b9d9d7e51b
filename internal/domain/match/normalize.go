package match

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultByeTeamName is the placeholder the feed uses for the team sitting out a round.
const DefaultByeTeamName = "DESCANSA"

// Normalizer turns raw feed records into canonical matches. A rejected record
// is simply dropped by the caller; rejection is not an error.
type Normalizer struct {
	byeTeamName string
	validate    *validator.Validate
}

func NewNormalizer(byeTeamName string) *Normalizer {
	byeTeamName = strings.TrimSpace(byeTeamName)
	if byeTeamName == "" {
		byeTeamName = DefaultByeTeamName
	}

	return &Normalizer{
		byeTeamName: byeTeamName,
		validate:    validator.New(),
	}
}

// IsBye reports whether name is the bye sentinel, ignoring case.
func (n *Normalizer) IsBye(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), n.byeTeamName)
}

// Normalize validates raw and returns its canonical form. The second return
// value is false when the record must be excluded from every view.
func (n *Normalizer) Normalize(raw RawMatch) (Match, bool) {
	if n.IsBye(raw.HomeTeam.Name) || n.IsBye(raw.AwayTeam.Name) {
		return Match{}, false
	}

	out := Match{
		ID:            raw.ID,
		HomeTeam:      toTeam(raw.HomeTeam),
		AwayTeam:      toTeam(raw.AwayTeam),
		Status:        ParseStatus(raw.LiveStatus),
		Kickoff:       raw.DateTimeUTC,
		Round:         strings.TrimSpace(raw.Round),
		RoundOrder:    raw.RoundOrder,
		MatchNumber:   raw.MatchNumber,
		CurrentMinute: strings.TrimSpace(raw.CurrentMinute),
		Venue: Venue{
			ID:      raw.Facility.ID,
			Name:    strings.TrimSpace(raw.Facility.Name),
			Address: strings.TrimSpace(raw.Facility.Address),
			Place:   strings.TrimSpace(raw.Facility.Place),
		},
	}
	if raw.HomeTeamResult != nil {
		out.HasHomeResult = true
		out.HomeGoals = raw.HomeTeamResult.Current
		out.HomeHalfGoals = copyInt(raw.HomeTeamResult.Half)
	}
	if raw.AwayTeamResult != nil {
		out.HasAwayResult = true
		out.AwayGoals = raw.AwayTeamResult.Current
		out.AwayHalfGoals = copyInt(raw.AwayTeamResult.Half)
	}

	if err := n.validate.Struct(out); err != nil {
		return Match{}, false
	}

	return out, true
}

// NormalizeAll keeps the accepted records in feed order.
func (n *Normalizer) NormalizeAll(raws []RawMatch, keep func(Match) bool) []Match {
	out := make([]Match, 0, len(raws))
	for _, raw := range raws {
		m, ok := n.Normalize(raw)
		if !ok {
			continue
		}
		if keep != nil && !keep(m) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// ForSchedule accepts the statuses shown on schedule-style views.
func ForSchedule(m Match) bool {
	return m.Status == StatusPlayed || m.Status == StatusScheduled
}

// ForAggregation accepts played matches with a resolvable score. Both results
// missing means the match has not really been played yet, not a 0-0.
func ForAggregation(m Match) bool {
	return m.Status == StatusPlayed && (m.HasHomeResult || m.HasAwayResult)
}

// IsCompleted accepts played matches that reached full time with both results.
func IsCompleted(m Match) bool {
	return m.Status == StatusPlayed && m.HasFullTimeMarker() && m.HasHomeResult && m.HasAwayResult
}

// IsScheduled accepts fixtures that are still to be played.
func IsScheduled(m Match) bool {
	return m.Status == StatusScheduled
}

func toTeam(raw RawTeam) Team {
	return Team{
		ID:    raw.ID,
		Name:  strings.TrimSpace(raw.Name),
		Crest: strings.TrimSpace(raw.Picture),
		Place: strings.TrimSpace(raw.Place),
	}
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
