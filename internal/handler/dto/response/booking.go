package response

import (
	"time"

	domain "booking-api/internal/domain/request"

	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID           string           `json:"id"`
	CreatedAt    time.Time        `json:"createdAt"`
	Status       domain.Status    `json:"status"`
	FullName     string           `json:"fullName"`
	Email        string           `json:"email"`
	Phone        string           `json:"phone"`
	ServiceType  string           `json:"serviceType"`
	PropertyType string           `json:"propertyType"`
	Address      string           `json:"address"`
	Bedrooms     domain.RoomCount `json:"bedrooms"`
	Bathrooms    domain.RoomCount `json:"bathrooms"`
	Frequency    string           `json:"frequency"`
	Date         string           `json:"date"`
	Time         string           `json:"time"`
	DateTime     string           `json:"dateTime"`
	Notes        string           `json:"notes"`
	EstimateUSD  int              `json:"estimateUSD"`
}

type AvailabilityResponse struct {
	Available bool   `json:"available"`
	DateTime  string `json:"dateTime"`
}

type AdminLoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func FromRecord(rec *domain.Record) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, rec)
	return &resp
}

func FromRecords(records []domain.Record) []*BookingResponse {
	out := make([]*BookingResponse, len(records))
	for i := range records {
		out[i] = FromRecord(&records[i])
	}
	return out
}
