package api

import (
	"context"
	"errors"
	"net/http"

	"gas-agency/internal/handler/dto/request"
	"gas-agency/internal/handler/dto/response"
	"gas-agency/internal/handler/httperr"
	"gas-agency/internal/handler/middleware"
	"gas-agency/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth commands.AuthCommands
}

func NewAuthHandler(auth commands.AuthCommands) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// @Summary Register a customer
// @Description Create a customer account with the full yearly cylinder quota
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.RegisterCustomerRequest true "Registration request"
// @Success 201 {object} response.RegisterCustomerResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/customer/register [post]
func (h *AuthHandler) RegisterCustomer(c *gin.Context) {
	var req request.RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	customerID, err := h.auth.RegisterCustomer(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmailTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "Email already registered", nil)
		case errors.Is(err, commands.ErrRegistrationFailed):
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, response.RegisterCustomerResponse{CustomerID: customerID})
}

// @Summary Customer login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Login request"
// @Success 200 {object} response.LoginResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/customer/login [post]
func (h *AuthHandler) LoginCustomer(c *gin.Context) {
	h.login(c, h.auth.LoginCustomer)
}

// @Summary Admin login
// @Description Login against the admin registry
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Login request"
// @Success 200 {object} response.LoginResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/admin/login [post]
func (h *AuthHandler) LoginAdmin(c *gin.Context) {
	h.login(c, h.auth.LoginAdmin)
}

func (h *AuthHandler) login(c *gin.Context, fn func(ctx context.Context, email, pass string) (*commands.LoginResult, error)) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := fn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, response.NewLoginResponse(result))
}

// @Summary Refresh session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.RefreshRequest true "Refresh request"
// @Success 200 {object} response.LoginResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req request.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.auth.Refresh(c.Request.Context(), req.SessionToken)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSessionExpired):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Session expired", nil)
		case errors.Is(err, commands.ErrNotAnAdmin):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Admin access revoked", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, response.NewLoginResponse(result))
}

// @Summary Logout
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Param request body request.LogoutRequest true "Logout request"
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	var req request.LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.auth.Logout(c.Request.Context(), req.SessionToken); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get current principal
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.MeResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	role, _ := middleware.GetRole(c)

	c.JSON(http.StatusOK, response.MeResponse{
		AccountID: accountID,
		Role:      role.String(),
	})
}
