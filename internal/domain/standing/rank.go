package standing

import "sort"

// Rank orders the table by points, goal difference and goals scored, all
// descending. Teams level on all three fall back to name order so the output
// never depends on map iteration.
func Rank(table *Table) []Standing {
	if table == nil {
		return []Standing{}
	}

	rows := table.Rows()
	sort.SliceStable(rows, func(i, j int) bool {
		return Less(rows[i], rows[j])
	})
	for i := range rows {
		rows[i].Position = i + 1
	}
	return rows
}

// Less reports whether a ranks above b.
func Less(a, b Standing) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}
	if a.GoalDifference != b.GoalDifference {
		return a.GoalDifference > b.GoalDifference
	}
	if a.GoalsFor != b.GoalsFor {
		return a.GoalsFor > b.GoalsFor
	}
	return a.Team.Name < b.Team.Name
}
