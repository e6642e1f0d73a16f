package commands

import (
	"context"
	"sync"

	"booking-api/internal/domain/request"
	"booking-api/internal/infra/store"
	"booking-api/internal/pkg/clock"
	"booking-api/internal/pkg/errs"
)

var (
	ErrValidationFailed     = errs.New("validation failed")
	ErrSlotConflict         = errs.New("slot already booked")
	ErrRequestNotFound      = errs.New("request not found")
	ErrInvalidStatus        = errs.New("invalid status")
	ErrStoreOperationFailed = errs.New("store operation failed")
)

type BookingCommands interface {
	Create(ctx context.Context, params request.NewRecordParams) (*request.Record, error)
	UpdateStatus(ctx context.Context, id string, status string) (*request.Record, error)
}

type bookingCommandsImpl struct {
	store store.RecordStore
	clock clock.Clock

	// Serializes every load-check-write cycle. The store contract has no
	// conditional insert, so without this two concurrent creations for the
	// same slot could both pass the availability check.
	mu sync.Mutex
}

func NewBookingCommands(recordStore store.RecordStore, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		store: recordStore,
		clock: clk,
	}
}

// Create validates the candidate, rejects slot conflicts, derives the
// estimate and persists the new record at the head of the sequence.
// Newest-first ordering is an observable contract of the admin listing.
func (c *bookingCommandsImpl) Create(ctx context.Context, params request.NewRecordParams) (*request.Record, error) {
	if err := params.Validate(); err != nil {
		return nil, errs.Mark(err, ErrValidationFailed)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.store.LoadAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	if request.SlotTaken(records, params.SlotKey()) {
		return nil, errs.Mark(errs.Newf("slot %q is taken", params.SlotKey()), ErrSlotConflict)
	}

	rec := request.NewRecord(params, c.clock.Now())

	records = append([]request.Record{rec}, records...)
	if err := c.store.SaveAll(ctx, records); err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	return &rec, nil
}

// UpdateStatus overwrites only the status of the matched record. Any valid
// status may replace any other, including a no-op.
func (c *bookingCommandsImpl) UpdateStatus(ctx context.Context, id string, status string) (*request.Record, error) {
	target, err := request.ParseStatus(status)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStatus)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.store.LoadAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	idx := -1
	for i := range records {
		if records[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, errs.Mark(errs.Newf("no request with id %q", id), ErrRequestNotFound)
	}

	records[idx].Status = target
	if err := c.store.SaveAll(ctx, records); err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	updated := records[idx]
	return &updated, nil
}
