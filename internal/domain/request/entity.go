package request

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingField  = errors.New("missing required field")
	ErrInvalidDate   = errors.New("date must match YYYY-MM-DD")
	ErrInvalidTime   = errors.New("time must match HH:MM")
	ErrUnknownStatus = errors.New("unknown status")
)

const DefaultFrequency = "one-time"

// Record is the sole persisted entity. It is marshaled verbatim by the
// record store, so the JSON tags are the wire and storage format at once.
// Everything except Status is immutable after creation.
type Record struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"createdAt"`
	Status       Status    `json:"status"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	ServiceType  string    `json:"serviceType"`
	PropertyType string    `json:"propertyType"`
	Address      string    `json:"address"`
	Bedrooms     RoomCount `json:"bedrooms"`
	Bathrooms    RoomCount `json:"bathrooms"`
	Frequency    string    `json:"frequency"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	DateTime     string    `json:"dateTime"`
	Notes        string    `json:"notes"`
	EstimateUSD  int       `json:"estimateUSD"`
}

// NewRecordParams is the caller-supplied portion of a record; everything
// derived (id, createdAt, status, dateTime, estimateUSD) is filled in by
// NewRecord.
type NewRecordParams struct {
	FullName     string
	Email        string
	Phone        string
	ServiceType  string
	PropertyType string
	Address      string
	Bedrooms     RoomCount
	Bathrooms    RoomCount
	Frequency    string
	Date         string
	Time         string
	Notes        string
}

func (p NewRecordParams) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"fullName", p.FullName},
		{"email", p.Email},
		{"phone", p.Phone},
		{"serviceType", p.ServiceType},
		{"propertyType", p.PropertyType},
		{"address", p.Address},
		{"date", p.Date},
		{"time", p.Time},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}

	if !ValidDate(p.Date) {
		return ErrInvalidDate
	}
	if !ValidTime(p.Time) {
		return ErrInvalidTime
	}

	return nil
}

// SlotKey derives the conflict key for the candidate record. Only meaningful
// after Validate has passed.
func (p NewRecordParams) SlotKey() string {
	return SlotKey(p.Date, p.Time)
}

// NewRecord constructs the full record from validated params. The id is a
// fresh UUID, status starts pending and the estimate is computed here so it
// can never be caller-supplied.
func NewRecord(p NewRecordParams, now time.Time) Record {
	frequency := p.Frequency
	if strings.TrimSpace(frequency) == "" {
		frequency = DefaultFrequency
	}

	return Record{
		ID:           uuid.New().String(),
		CreatedAt:    now,
		Status:       StatusPending,
		FullName:     p.FullName,
		Email:        p.Email,
		Phone:        p.Phone,
		ServiceType:  p.ServiceType,
		PropertyType: p.PropertyType,
		Address:      p.Address,
		Bedrooms:     p.Bedrooms,
		Bathrooms:    p.Bathrooms,
		Frequency:    frequency,
		Date:         p.Date,
		Time:         p.Time,
		DateTime:     p.SlotKey(),
		Notes:        p.Notes,
		EstimateUSD:  Estimate(p.ServiceType, p.PropertyType, p.Bedrooms, p.Bathrooms),
	}
}

// ParseStatus validates an admin-supplied target status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return status, nil
}
