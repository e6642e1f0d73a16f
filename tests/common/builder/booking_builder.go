//go:build unit || integration

package builder

import (
	"time"

	domain "booking-api/internal/domain/request"
	reqdto "booking-api/internal/handler/dto/request"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	FullName     string
	Email        string
	Phone        string
	ServiceType  string
	PropertyType string
	Address      string
	Bedrooms     int
	Bathrooms    int
	Frequency    string
	Date         string
	Time         string
	Notes        string
	Status       domain.Status
	CreatedAt    time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		FullName:     "Taro Yamada",
		Email:        "taro@example.com",
		Phone:        "090-0000-0000",
		ServiceType:  "standard",
		PropertyType: "residential",
		Address:      "1-2-3 Chiyoda, Tokyo",
		Bedrooms:     3,
		Bathrooms:    2,
		Frequency:    "weekly",
		Date:         "2025-06-01",
		Time:         "10:00",
		Notes:        "Key under the mat",
		Status:       domain.StatusPending,
		CreatedAt:    time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		FullName:     b.FullName,
		Email:        b.Email,
		Phone:        b.Phone,
		ServiceType:  b.ServiceType,
		PropertyType: b.PropertyType,
		Address:      b.Address,
		Bedrooms:     domain.RoomCount(b.Bedrooms),
		Bathrooms:    domain.RoomCount(b.Bathrooms),
		Frequency:    b.Frequency,
		Date:         b.Date,
		Time:         b.Time,
		Notes:        b.Notes,
	}
}

func (b *BookingBuilder) BuildParams() domain.NewRecordParams {
	return b.BuildCreateRequestDTO().ToParams()
}

func (b *BookingBuilder) BuildRecord() domain.Record {
	params := b.BuildParams()
	rec := domain.NewRecord(params, b.CreatedAt)
	rec.ID = uuid.New().String()
	rec.Status = b.Status
	return rec
}
