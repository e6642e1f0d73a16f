package api

import (
	"net/http"

	reqdto "booking-api/internal/handler/dto/request"
	resdto "booking-api/internal/handler/dto/response"
	"booking-api/internal/handler/httperr"
	"booking-api/internal/pkg/errs"
	"booking-api/internal/usecase/commands"
	"booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Check slot availability
// @Description Check whether a (date, time) slot is free
// @Tags availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param time query string true "Time (HH:MM)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /availability [get]
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	date := c.Query("date")
	timeOfDay := c.Query("time")

	view, err := h.bookingQueries.CheckAvailability(c.Request.Context(), date, timeOfDay)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrMissingParameter):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "date and time query parameters are required", nil)
		case errs.Is(err, queries.ErrInvalidSlotFormat):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "date must be YYYY-MM-DD and time must be HH:MM", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.AvailabilityResponse{
		Available: view.Available,
		DateTime:  view.DateTime,
	})
}

// @Summary Create booking request
// @Description Submit a new service request for a slot
// @Tags requests
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} map[string]resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /requests [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	rec, err := h.bookingCommands.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrValidationFailed):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", err.Error())
		case errs.Is(err, commands.ErrSlotConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot already booked", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"request": resdto.FromRecord(rec)})
}
