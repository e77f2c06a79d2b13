package api

import (
	"errors"
	"net/http"

	"gas-agency/internal/handler/dto/request"
	"gas-agency/internal/handler/dto/response"
	"gas-agency/internal/handler/httperr"
	"gas-agency/internal/handler/middleware"
	"gas-agency/internal/usecase/commands"
	"gas-agency/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookings commands.BookingCommands
	queries  queries.BookingQueries
}

func NewBookingHandler(bookings commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookings: bookings,
		queries:  bookingQueries,
	}
}

// @Summary Book a cylinder
// @Description Create a booking against the customer's remaining yearly quota
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateBookingRequest true "Booking request"
// @Success 201 {object} response.CreateBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	customerID, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req request.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.bookings.Create(c.Request.Context(), customerID, req.Payment)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrQuotaExhausted):
			httperr.AbortWithError(c, http.StatusConflict, err, "Yearly booking quota exhausted", nil)
		case errors.Is(err, commands.ErrInvalidPayment):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payment method", nil)
		case errors.Is(err, commands.ErrCustomerNotFoundWrite):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
		case errors.Is(err, commands.ErrBookingConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking conflicted, please retry", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, response.NewCreateBookingResponse(result))
}

// @Summary List own bookings
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Success 200 {array} response.BookingResponse
// @Router /bookings [get]
func (h *BookingHandler) ListOwn(c *gin.Context) {
	customerID, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	views, err := h.queries.ListByCustomer(c.Request.Context(), customerID)
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
