package standing

import "github.com/riskibarqy/league-views/internal/domain/match"

// Table accumulates one Standing per team. The zero value is not usable; use NewTable.
type Table struct {
	rows map[TeamKey]*Standing
}

func NewTable() *Table {
	return &Table{rows: make(map[TeamKey]*Standing)}
}

// Aggregate folds played matches into a fresh table. Order of matches does not
// affect the result.
func Aggregate(matches []match.Match) *Table {
	table := NewTable()
	for _, m := range matches {
		table.Apply(m)
	}
	return table
}

func (t *Table) Len() int {
	return len(t.rows)
}

// Get returns a copy of the row for key.
func (t *Table) Get(key TeamKey) (Standing, bool) {
	row, ok := t.rows[key]
	if !ok {
		return Standing{}, false
	}
	return *row, true
}

// Rows returns copies of every row in unspecified order.
func (t *Table) Rows() []Standing {
	out := make([]Standing, 0, len(t.rows))
	for _, row := range t.rows {
		out = append(out, *row)
	}
	return out
}

// Apply records one played match for both participants.
func (t *Table) Apply(m match.Match) {
	home := t.ensure(m.HomeTeam)
	away := t.ensure(m.AwayTeam)

	home.Played++
	away.Played++

	home.GoalsFor += m.HomeGoals
	home.GoalsAgainst += m.AwayGoals
	away.GoalsFor += m.AwayGoals
	away.GoalsAgainst += m.HomeGoals

	switch {
	case m.HomeGoals > m.AwayGoals:
		home.Won++
		home.Points += PointsWin
		away.Lost++
	case m.HomeGoals < m.AwayGoals:
		away.Won++
		away.Points += PointsWin
		home.Lost++
	default:
		home.Drawn++
		away.Drawn++
		home.Points += PointsDraw
		away.Points += PointsDraw
	}

	home.GoalDifference = home.GoalsFor - home.GoalsAgainst
	away.GoalDifference = away.GoalsFor - away.GoalsAgainst
}

// Merge adds every row of other into t. Team attributes already present in t win.
func (t *Table) Merge(other *Table) {
	if other == nil {
		return
	}
	for _, src := range other.rows {
		dst := t.ensure(src.Team)
		dst.Played += src.Played
		dst.Won += src.Won
		dst.Drawn += src.Drawn
		dst.Lost += src.Lost
		dst.GoalsFor += src.GoalsFor
		dst.GoalsAgainst += src.GoalsAgainst
		dst.Points += src.Points
		dst.GoalDifference = dst.GoalsFor - dst.GoalsAgainst
	}
}

// ensure inserts a zeroed row for team if absent and returns it.
func (t *Table) ensure(team match.Team) *Standing {
	key := KeyOf(team)
	if row, ok := t.rows[key]; ok {
		return row
	}
	row := &Standing{Team: team}
	t.rows[key] = row
	return row
}
