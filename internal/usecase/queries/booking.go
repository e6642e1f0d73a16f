package queries

import (
	"context"

	"booking-api/internal/domain/request"
	"booking-api/internal/infra/store"
	"booking-api/internal/pkg/errs"
)

var (
	ErrMissingParameter     = errs.New("missing parameter")
	ErrInvalidSlotFormat    = errs.New("invalid slot format")
	ErrStoreOperationFailed = errs.New("store operation failed")
)

// AvailabilityView echoes the derived key so clients can see exactly which
// slot was checked.
type AvailabilityView struct {
	Available bool   `json:"available"`
	DateTime  string `json:"dateTime"`
}

type BookingQueries interface {
	CheckAvailability(ctx context.Context, date, timeOfDay string) (*AvailabilityView, error)
	ListRequests(ctx context.Context) ([]request.Record, error)
}

type bookingQueriesImpl struct {
	store store.RecordStore
}

func NewBookingQueries(recordStore store.RecordStore) BookingQueries {
	return &bookingQueriesImpl{store: recordStore}
}

// CheckAvailability is read-only and idempotent: repeated calls with no
// intervening creation return identical results.
func (q *bookingQueriesImpl) CheckAvailability(ctx context.Context, date, timeOfDay string) (*AvailabilityView, error) {
	if date == "" || timeOfDay == "" {
		return nil, errs.Mark(errs.New("date and time are required"), ErrMissingParameter)
	}
	if !request.ValidDate(date) {
		return nil, errs.Mark(request.ErrInvalidDate, ErrInvalidSlotFormat)
	}
	if !request.ValidTime(timeOfDay) {
		return nil, errs.Mark(request.ErrInvalidTime, ErrInvalidSlotFormat)
	}

	records, err := q.store.LoadAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	key := request.SlotKey(date, timeOfDay)
	return &AvailabilityView{
		Available: !request.SlotTaken(records, key),
		DateTime:  key,
	}, nil
}

// ListRequests returns every record in store order, which is newest-first.
func (q *bookingQueriesImpl) ListRequests(ctx context.Context) ([]request.Record, error) {
	records, err := q.store.LoadAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}
	return records, nil
}
