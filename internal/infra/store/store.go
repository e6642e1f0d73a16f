// Package store holds the record store implementations. The contract is
// deliberately whole-sequence: LoadAll hands callers a private copy of every
// record, SaveAll replaces the prior content entirely. All invariant checks
// happen per call in the usecase layer, never inside a store.
package store

import (
	"context"

	"booking-api/internal/domain/request"
)

type RecordStore interface {
	LoadAll(ctx context.Context) ([]request.Record, error)
	SaveAll(ctx context.Context, records []request.Record) error
}
