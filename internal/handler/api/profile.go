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

type ProfileHandler struct {
	profile commands.ProfileCommands
	queries queries.CustomerQueries
}

func NewProfileHandler(profile commands.ProfileCommands, customerQueries queries.CustomerQueries) *ProfileHandler {
	return &ProfileHandler{
		profile: profile,
		queries: customerQueries,
	}
}

// @Summary Get own profile
// @Tags customers
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.CustomerResponse
// @Failure 404 {object} httperr.Response
// @Router /customers/me/profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	customerID, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	view, err := h.queries.GetProfile(c.Request.Context(), customerID)
	if err != nil {
		if errors.Is(err, queries.ErrCustomerNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	resp, err := response.NewCustomerResponse(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update own profile
// @Description Partial update; omitted fields keep their current values
// @Tags customers
// @Security BearerAuth
// @Accept json
// @Param request body request.UpdateProfileRequest true "Profile patch"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Router /customers/me/profile [patch]
func (h *ProfileHandler) Update(c *gin.Context) {
	customerID, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req request.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.profile.UpdateProfile(c.Request.Context(), customerID, req.ToCommand()); err != nil {
		switch {
		case errors.Is(err, commands.ErrCustomerNotFoundWrite):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
		case errors.Is(err, commands.ErrProfileUpdateFailed):
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Change password
// @Tags customers
// @Security BearerAuth
// @Accept json
// @Param request body request.ChangePasswordRequest true "Password change"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /customers/me/password [post]
func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	customerID, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req request.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.profile.ChangePassword(c.Request.Context(), customerID, req.CurrentPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, commands.ErrWrongPassword):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Current password does not match", nil)
		case errors.Is(err, commands.ErrCustomerNotFoundWrite):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
		case errors.Is(err, commands.ErrProfileUpdateFailed):
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
