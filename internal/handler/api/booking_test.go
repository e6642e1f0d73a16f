//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"booking-api/internal/handler/api"
	resdto "booking-api/internal/handler/dto/response"
	"booking-api/internal/pkg/errs"
	"booking-api/internal/usecase/commands"
	"booking-api/internal/usecase/queries"
	"booking-api/tests/common/builder"
	"booking-api/tests/common/httptest"
	"booking-api/tests/common/testutil"
	commandsmock "booking-api/tests/mock/commands"
	queriesmock "booking-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/availability", s.handler.CheckAvailability)
	s.router.POST("/requests", s.handler.Create)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCheckAvailability
// ================================================================================

func (s *BookingHandlerTestSuite) TestCheckAvailability() {
	url := "/availability?date=2025-06-01&time=10:00"

	s.Run("success: returns 200 OK with available=true for free slot", func() {
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), "2025-06-01", "10:00").
			Return(&queries.AvailabilityView{Available: true, DateTime: "2025-06-01 10:00"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Available)
		s.Equal("2025-06-01 10:00", response.DateTime)
	})

	s.Run("success: returns 200 OK with available=false for taken slot", func() {
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), "2025-06-01", "10:00").
			Return(&queries.AvailabilityView{Available: false, DateTime: "2025-06-01 10:00"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Available)
	})

	s.Run("error: maps query errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "missing parameter",
				queriesError:   errs.Mark(errs.New("date and time are required"), queries.ErrMissingParameter),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "date and time query parameters are required",
			},
			{
				name:           "malformed slot",
				queriesError:   errs.Mark(errs.New("date must match YYYY-MM-DD"), queries.ErrInvalidSlotFormat),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "date must be YYYY-MM-DD and time must be HH:MM",
			},
			{
				name:           "store failure",
				queriesError:   errs.Mark(errs.New("failed to read store file"), queries.ErrStoreOperationFailed),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
			{
				name:           "internal server error",
				queriesError:   errors.New("disk on fire"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/requests"

	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
	returnRecord := builder.NewBookingBuilder().BuildRecord()

	s.Run("success: returns 201 Created wrapped in request key", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody.ToParams()).
			Return(&returnRecord, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response struct {
			Request resdto.BookingResponse `json:"request"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnRecord.ID, response.Request.ID)
		s.Equal(returnRecord.Status, response.Request.Status)
		s.Equal(returnRecord.DateTime, response.Request.DateTime)
		s.Equal(returnRecord.EstimateUSD, response.Request.EstimateUSD)
	})

	s.Run("success: unknown extra fields are ignored", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&returnRecord, nil).Times(1)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("unexpected", "value"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("success: non-numeric bedrooms coerces instead of failing", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&returnRecord, nil).Times(1)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("bedrooms", "three"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request for non-object body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, "not-an-object", "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "validation failed",
				commandsError:  errs.Mark(errs.New("missing required field: email"), commands.ErrValidationFailed),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Validation failed",
			},
			{
				name:           "slot conflict",
				commandsError:  errs.Mark(errs.New(`slot "2025-06-01 10:00" is taken`), commands.ErrSlotConflict),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Slot already booked",
			},
			{
				name:           "store failure",
				commandsError:  errs.Mark(errs.New("failed to replace store file"), commands.ErrStoreOperationFailed),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("disk on fire"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), reqBody.ToParams()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
