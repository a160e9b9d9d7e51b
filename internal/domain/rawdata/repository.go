package rawdata

import "context"

type Repository interface {
	UpsertMany(ctx context.Context, items []Payload) error
	ListRecent(ctx context.Context, source string, limit int) ([]Payload, error)
}
