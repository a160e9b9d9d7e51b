package match

import "context"

type Range string

const (
	RangePast   Range = "past"
	RangeFuture Range = "future"
)

// Source exposes the competition feed.
type Source interface {
	FetchMatches(ctx context.Context, r Range, page, pageSize int) ([]RawMatch, error)
}
