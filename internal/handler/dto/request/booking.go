package request

import (
	domain "booking-api/internal/domain/request"
)

// CreateBookingRequest carries only the caller-supplied fields; id, status,
// createdAt, dateTime and the estimate are always derived server-side.
// Required-field enforcement happens in the domain so the rules live in one
// place, hence no binding tags here.
type CreateBookingRequest struct {
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
	Notes        string           `json:"notes"`
}

func (r CreateBookingRequest) ToParams() domain.NewRecordParams {
	return domain.NewRecordParams{
		FullName:     r.FullName,
		Email:        r.Email,
		Phone:        r.Phone,
		ServiceType:  r.ServiceType,
		PropertyType: r.PropertyType,
		Address:      r.Address,
		Bedrooms:     r.Bedrooms,
		Bathrooms:    r.Bathrooms,
		Frequency:    r.Frequency,
		Date:         r.Date,
		Time:         r.Time,
		Notes:        r.Notes,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AdminLoginRequest struct {
	Key string `json:"key" binding:"required"`
}
