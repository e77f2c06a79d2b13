package api

import (
	"errors"
	"net/http"
	"strconv"

	"gas-agency/internal/domain/notice"
	"gas-agency/internal/handler/dto/request"
	"gas-agency/internal/handler/dto/response"
	"gas-agency/internal/handler/httperr"
	"gas-agency/internal/handler/middleware"
	"gas-agency/internal/usecase/commands"
	"gas-agency/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	bookings        commands.BookingCommands
	notices         commands.NoticeCommands
	bookingQueries  queries.BookingQueries
	customerQueries queries.CustomerQueries
	noticeQueries   queries.NoticeQueries
	statsQueries    queries.StatsQueries
	auditQueries    queries.AuditLogQueries
}

func NewAdminHandler(
	bookings commands.BookingCommands,
	notices commands.NoticeCommands,
	bookingQueries queries.BookingQueries,
	customerQueries queries.CustomerQueries,
	noticeQueries queries.NoticeQueries,
	statsQueries queries.StatsQueries,
	auditQueries queries.AuditLogQueries,
) *AdminHandler {
	return &AdminHandler{
		bookings:        bookings,
		notices:         notices,
		bookingQueries:  bookingQueries,
		customerQueries: customerQueries,
		noticeQueries:   noticeQueries,
		statsQueries:    statsQueries,
		auditQueries:    auditQueries,
	}
}

// @Summary Dashboard statistics
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.DashboardStatsResponse
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	view, err := h.statsQueries.Dashboard(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, response.NewDashboardStatsResponse(view))
}

// @Summary List all bookings
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} response.BookingResponse
// @Router /admin/bookings [get]
func (h *AdminHandler) ListBookings(c *gin.Context) {
	views, err := h.bookingQueries.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	resp, err := response.NewBookingListResponse(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Review a booking
// @Description Approve or reject a pending booking; a booking transitions at most once
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body request.ReviewBookingRequest true "Review decision"
// @Success 200 {object} response.ReviewBookingResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/bookings/{id}/review [post]
func (h *AdminHandler) ReviewBooking(c *gin.Context) {
	reviewerID, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID", nil)
		return
	}

	var req request.ReviewBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.bookings.Review(c.Request.Context(), bookingID, reviewerID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFoundWrite):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, commands.ErrBookingAlreadyReviewed):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking already reviewed", nil)
		case errors.Is(err, commands.ErrInvalidReviewStatus):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Status must be Approved or Rejected", nil)
		case errors.Is(err, commands.ErrBookingConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Review conflicted, please retry", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, response.ReviewBookingResponse{
		BookingID: result.BookingID,
		Status:    result.Status,
	})
}

// @Summary List customers
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} response.CustomerResponse
// @Router /admin/customers [get]
func (h *AdminHandler) ListCustomers(c *gin.Context) {
	views, err := h.customerQueries.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	resp, err := response.NewCustomerListResponse(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Post a notice
// @Description Post a global notice or one addressed to a single customer
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.PostNoticeRequest true "Notice"
// @Success 201 {object} response.PostNoticeResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/notices [post]
func (h *AdminHandler) PostNotice(c *gin.Context) {
	adminID, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req request.PostNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	noticeID, err := h.notices.Post(c.Request.Context(), adminID, req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrNoticeTargetNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Target customer not found", nil)
		case errors.Is(err, notice.ErrMissingTarget):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Specific notice requires a target customer", nil)
		case errors.Is(err, commands.ErrNoticeStoreFailed):
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, response.PostNoticeResponse{NoticeID: noticeID})
}

// @Summary List all notices
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} response.NoticeResponse
// @Router /admin/notices [get]
func (h *AdminHandler) ListNotices(c *gin.Context) {
	views, err := h.noticeQueries.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	resp, err := response.NewNoticeListResponse(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List recent audit log entries
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Max entries (default 100, cap 500)"
// @Success 200 {array} response.AuditLogResponse
// @Router /admin/audit-logs [get]
func (h *AdminHandler) ListAuditLogs(c *gin.Context) {
	var limit int32
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || parsed < 0 {
			httperr.AbortWithError(c, http.StatusBadRequest, errors.New("invalid limit"), "Invalid limit parameter", nil)
			return
		}
		limit = int32(parsed)
	}

	views, err := h.auditQueries.ListRecent(c.Request.Context(), limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	resp, err := response.NewAuditLogListResponse(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resp)
}
