package postgres

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	// ErrArchiveSchemaMissing reports that the migrations were never applied.
	ErrArchiveSchemaMissing = errors.New("feed archive schema missing, run cmd/migration up")
	// ErrPreparedStatementDropped is raised behind transaction poolers that
	// discard unnamed statements between Parse and Bind.
	ErrPreparedStatementDropped = errors.New("prepared statement dropped by pooler, set DB_DISABLE_PREPARED_BINARY_RESULT=true")
)

const (
	pqUndefinedTable    pq.ErrorCode = "42P01"
	pqStatementMissing  pq.ErrorCode = "26000"
	pqProtocolViolation pq.ErrorCode = "08P01"
)

func classifyPQError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code {
	case pqUndefinedTable:
		return fmt.Errorf("%w: %w", ErrArchiveSchemaMissing, err)
	case pqStatementMissing, pqProtocolViolation:
		return fmt.Errorf("%w: %w", ErrPreparedStatementDropped, err)
	default:
		return err
	}
}
