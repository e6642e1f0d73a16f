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

type AdminHandler struct {
	adminCommands   commands.AdminCommands
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewAdminHandler(
	adminCommands commands.AdminCommands,
	bookingCommands commands.BookingCommands,
	bookingQueries queries.BookingQueries,
) *AdminHandler {
	return &AdminHandler{
		adminCommands:   adminCommands,
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Admin login
// @Description Exchange the admin key for a short-lived token
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.AdminLoginRequest true "Admin key"
// @Success 200 {object} resdto.AdminLoginResponse
// @Failure 401 {object} httperr.Response
// @Router /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req reqdto.AdminLoginRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	result, err := h.adminCommands.Login(c.Request.Context(), req.Key)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidAdminKey):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid admin key", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.AdminLoginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
	})
}

// @Summary List booking requests
// @Description All requests in store order (newest first)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string][]resdto.BookingResponse
// @Failure 401 {object} httperr.Response
// @Router /admin/requests [get]
func (h *AdminHandler) List(c *gin.Context) {
	records, err := h.bookingQueries.ListRequests(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": resdto.FromRecords(records)})
}

// @Summary Update request status
// @Description Overwrite the status of an existing request
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.UpdateStatusRequest true "Target status"
// @Success 200 {object} map[string]resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/requests/{id} [patch]
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req reqdto.UpdateStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	rec, err := h.bookingCommands.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidStatus):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status", err.Error())
		case errs.Is(err, commands.ErrRequestNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Request not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"request": resdto.FromRecord(rec)})
}
