package match

// RawMatch mirrors one element of the feed's "result" array.
type RawMatch struct {
	ID             int64      `json:"id"`
	HomeTeam       RawTeam    `json:"homeTeam"`
	AwayTeam       RawTeam    `json:"awayTeam"`
	HomeTeamResult *RawResult `json:"homeTeamResult,omitempty"`
	AwayTeamResult *RawResult `json:"awayTeamResult,omitempty"`
	LiveStatus     string     `json:"liveStatus"`
	DateTimeUTC    int64      `json:"dateTimeUTC"`
	Round          string     `json:"round"`
	RoundOrder     int        `json:"roundOrder"`
	MatchNumber    int        `json:"matchNumber"`
	CurrentMinute  string     `json:"currentMinute,omitempty"`
	Facility       RawVenue   `json:"facility"`
}

type RawTeam struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	Place   string `json:"place"`
}

type RawResult struct {
	Current int  `json:"current"`
	Regular int  `json:"regular"`
	Half    *int `json:"half,omitempty"`
}

type RawVenue struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Place   string `json:"place"`
}
