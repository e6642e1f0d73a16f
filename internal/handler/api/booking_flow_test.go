//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"booking-api/internal/handler/api"
	resdto "booking-api/internal/handler/dto/response"
	"booking-api/internal/infra/store"
	"booking-api/internal/pkg/clock"
	"booking-api/internal/usecase/commands"
	"booking-api/internal/usecase/queries"
	"booking-api/tests/common/builder"
	"booking-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Wires the handlers to the real command/query services over a MemoryStore,
// so the status mapping is exercised against genuine usecase errors instead
// of mock-shaped ones.
func TestBookingFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	recordStore := store.NewMemoryStore()
	clk := clock.NewMockClock(time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC))
	bookingCommands := commands.NewBookingCommands(recordStore, clk)
	bookingQueries := queries.NewBookingQueries(recordStore)

	bookingHandler := api.NewBookingHandler(bookingCommands, bookingQueries)
	router.GET("/availability", bookingHandler.CheckAvailability)
	router.POST("/requests", bookingHandler.Create)

	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
	availabilityURL := "/availability?date=" + reqBody.Date + "&time=" + reqBody.Time

	t.Run("success: creating into a free slot returns 201", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, availabilityURL, nil, "")
		var view resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &view)
		require.True(t, view.Available)

		rec = httptest.PerformRequest(t, router, http.MethodPost, "/requests", reqBody, "")
		var created struct {
			Request resdto.BookingResponse `json:"request"`
		}
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &created)
		require.NotEmpty(t, created.Request.ID)
	})

	t.Run("success: slot reads unavailable after creation", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, availabilityURL, nil, "")
		var view resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &view)
		require.False(t, view.Available)
	})

	t.Run("error: duplicate slot returns 409 Conflict", func(t *testing.T) {
		duplicate := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.FullName = "Hanako Sato"
		}).BuildCreateRequestDTO()

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/requests", duplicate, "")
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "Slot already booked")
	})

	t.Run("error: missing required field returns 400", func(t *testing.T) {
		missing := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Email = ""
			b.Date = "2025-06-02"
		}).BuildCreateRequestDTO()

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/requests", missing, "")
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Validation failed")
	})
}
