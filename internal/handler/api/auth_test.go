//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"gas-agency/internal/domain/identity"
	"gas-agency/internal/handler/api"
	resdto "gas-agency/internal/handler/dto/response"
	"gas-agency/internal/usecase/commands"
	"gas-agency/tests/common/httptest"
	"gas-agency/tests/common/testutil"
	commandsmock "gas-agency/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands)

	s.router.POST("/auth/customer/register", s.handler.RegisterCustomer)
	s.router.POST("/auth/customer/login", s.handler.LoginCustomer)
	s.router.POST("/auth/admin/login", s.handler.LoginAdmin)
	s.router.POST("/auth/refresh", s.handler.Refresh)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// Mock middleware behavior for /auth/me
		if c.GetHeader("Authorization") != "" {
			c.Set("account_id", uuid.New())
			c.Set("account_role", identity.RoleCustomer)
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func registrationBody() map[string]any {
	return map[string]any{
		"name":     "Asha Verma",
		"email":    "asha@example.com",
		"password": "secret1",
		"phone":    "9876543210",
		"address":  "12 Gandhi Road, Pune",
	}
}

func (s *AuthHandlerTestSuite) TestRegisterCustomer() {
	url := "/auth/customer/register"

	s.Run("success: returns 201 Created with the customer id", func() {
		customerID := uuid.New()
		s.mockCommands.EXPECT().RegisterCustomer(gomock.Any(), gomock.Any()).
			Return(customerID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, registrationBody(), "")

		var response resdto.RegisterCustomerResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(customerID, response.CustomerID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: name (required)", mutate: testutil.Field("name", nil)},
			{name: "missing field: email (required)", mutate: testutil.Field("email", nil)},
			{name: "invalid email", mutate: testutil.Field("email", "invalid-email")},
			{name: "password boundary invalid (5 chars)", mutate: testutil.Field("password", strings.Repeat("a", 5))},
			{name: "name too long", mutate: testutil.Field("name", strings.Repeat("a", 101))},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), registrationBody(), tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 409 Conflict when the email is taken", func() {
		s.mockCommands.EXPECT().RegisterCustomer(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrEmailTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, registrationBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Email already registered")
	})
}

func (s *AuthHandlerTestSuite) TestLoginCustomer() {
	url := "/auth/customer/login"
	reqBody := map[string]any{"email": "asha@example.com", "password": "secret1"}

	s.Run("success: returns 200 OK with tokens", func() {
		accountID := uuid.New()
		s.mockCommands.EXPECT().LoginCustomer(gomock.Any(), "asha@example.com", "secret1").
			Return(&commands.LoginResult{
				AccountID:    accountID,
				Role:         identity.RoleCustomer,
				AccessToken:  "test-jwt-token",
				SessionToken: "test-session-token",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(accountID, response.AccountID)
		s.Equal("customer", response.Role)
		s.Equal("test-jwt-token", response.AccessToken)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid credentials",
				commandsError:  commands.ErrInvalidCredentials,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Invalid email or password",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().LoginCustomer(gomock.Any(), "asha@example.com", "secret1").
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLoginAdmin() {
	url := "/auth/admin/login"
	reqBody := map[string]any{"email": "owner@gas-agency.local", "password": "hunter22"}

	s.Run("success: returns 200 OK with the admin role", func() {
		accountID := uuid.New()
		s.mockCommands.EXPECT().LoginAdmin(gomock.Any(), "owner@gas-agency.local", "hunter22").
			Return(&commands.LoginResult{
				AccountID:    accountID,
				Role:         identity.RoleAdmin,
				AccessToken:  "test-jwt-token",
				SessionToken: "test-session-token",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("admin", response.Role)
	})

	s.Run("error: 401 on invalid credentials", func() {
		s.mockCommands.EXPECT().LoginAdmin(gomock.Any(), "owner@gas-agency.local", "hunter22").
			Return(nil, commands.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})
}

func (s *AuthHandlerTestSuite) TestRefresh() {
	url := "/auth/refresh"
	reqBody := map[string]any{"session_token": "test-session-token"}

	s.Run("success: returns 200 OK with fresh tokens", func() {
		s.mockCommands.EXPECT().Refresh(gomock.Any(), "test-session-token").
			Return(&commands.LoginResult{
				AccountID:    uuid.New(),
				Role:         identity.RoleCustomer,
				AccessToken:  "rotated-jwt-token",
				SessionToken: "rotated-session-token",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("rotated-session-token", response.SessionToken)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "session expired",
				commandsError:  commands.ErrSessionExpired,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Session expired",
			},
			{
				name:           "admin revoked",
				commandsError:  commands.ErrNotAnAdmin,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Admin access revoked",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Refresh(gomock.Any(), "test-session-token").
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	url := "/auth/logout"
	reqBody := map[string]any{"session_token": "test-session-token"}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Logout(gomock.Any(), "test-session-token").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success: returns the current principal", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.MeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("customer", response.Role)
	})

	s.Run("error: 401 without a principal", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}
