package rawdata

import "time"

// Payload is one raw feed response kept for audit and replay. Entries are
// keyed by (Source, EntityType, EntityKey); a later fetch of the same key
// replaces the stored body.
type Payload struct {
	Source        string
	EntityType    string
	EntityKey     string
	CompetitionID string
	PayloadJSON   string
	PayloadHash   string
	FetchedAt     time.Time
	IngestedAt    time.Time
}
