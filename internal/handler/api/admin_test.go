//go:build unit

package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"gas-agency/internal/handler/api"
	resdto "gas-agency/internal/handler/dto/response"
	"gas-agency/internal/usecase/commands"
	"gas-agency/internal/usecase/queries"
	"gas-agency/tests/common/httptest"
	"gas-agency/tests/common/testutil"
	commandsmock "gas-agency/tests/mock/commands"
	queriesmock "gas-agency/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockCtrl            *gomock.Controller
	mockBookingCommands *commandsmock.MockBookingCommands
	mockNoticeCommands  *commandsmock.MockNoticeCommands
	mockBookingQueries  *queriesmock.MockBookingQueries
	mockCustomerQueries *queriesmock.MockCustomerQueries
	mockNoticeQueries   *queriesmock.MockNoticeQueries
	mockStatsQueries    *queriesmock.MockStatsQueries
	mockAuditQueries    *queriesmock.MockAuditLogQueries
	handler             *api.AdminHandler
	adminID             uuid.UUID
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBookingCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockNoticeCommands = commandsmock.NewMockNoticeCommands(s.mockCtrl)
	s.mockBookingQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.mockCustomerQueries = queriesmock.NewMockCustomerQueries(s.mockCtrl)
	s.mockNoticeQueries = queriesmock.NewMockNoticeQueries(s.mockCtrl)
	s.mockStatsQueries = queriesmock.NewMockStatsQueries(s.mockCtrl)
	s.mockAuditQueries = queriesmock.NewMockAuditLogQueries(s.mockCtrl)
	s.handler = api.NewAdminHandler(
		s.mockBookingCommands, s.mockNoticeCommands,
		s.mockBookingQueries, s.mockCustomerQueries, s.mockNoticeQueries,
		s.mockStatsQueries, s.mockAuditQueries,
	)
	s.adminID = uuid.New()

	// Mock middleware behavior: an Authorization header stands in for a
	// validated admin session.
	principal := func(next gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			if c.GetHeader("Authorization") != "" {
				c.Set("account_id", s.adminID)
			}
			next(c)
		}
	}

	s.router.GET("/admin/stats", principal(s.handler.Stats))
	s.router.GET("/admin/bookings", principal(s.handler.ListBookings))
	s.router.POST("/admin/bookings/:id/review", principal(s.handler.ReviewBooking))
	s.router.GET("/admin/customers", principal(s.handler.ListCustomers))
	s.router.POST("/admin/notices", principal(s.handler.PostNotice))
	s.router.GET("/admin/audit-logs", principal(s.handler.ListAuditLogs))
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestStats() {
	s.Run("success: returns dashboard counters", func() {
		s.mockStatsQueries.EXPECT().Dashboard(gomock.Any()).
			Return(&queries.DashboardStatsView{TotalCustomers: 7, TotalBookings: 20, PendingBookings: 3}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/stats", nil, "bearer-token")

		var response resdto.DashboardStatsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(7), response.TotalCustomers)
		s.Equal(int64(3), response.PendingBookings)
	})
}

func (s *AdminHandlerTestSuite) TestReviewBooking() {
	bookingID := uuid.New()
	url := fmt.Sprintf("/admin/bookings/%s/review", bookingID)
	reqBody := map[string]any{"status": "Approved"}

	s.Run("success: returns 200 OK with the new status", func() {
		s.mockBookingCommands.EXPECT().Review(gomock.Any(), bookingID, s.adminID, "Approved").
			Return(&commands.ReviewBookingResult{BookingID: bookingID, Status: "Approved"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.ReviewBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.BookingID)
		s.Equal("Approved", response.Status)
	})

	s.Run("error: 400 on a malformed booking id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/bookings/not-a-uuid/review", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: status (required)", mutate: testutil.Field("status", nil)},
			{name: "unknown status", mutate: testutil.Field("status", "Maybe")},
			{name: "lowercase status", mutate: testutil.Field("status", "approved")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "booking not found",
				commandsError:  commands.ErrBookingNotFoundWrite,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "already reviewed",
				commandsError:  commands.ErrBookingAlreadyReviewed,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Booking already reviewed",
			},
			{
				name:           "invalid review status",
				commandsError:  commands.ErrInvalidReviewStatus,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Status must be Approved or Rejected",
			},
			{
				name:           "transaction conflict",
				commandsError:  commands.ErrBookingConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Review conflicted",
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
				s.mockBookingCommands.EXPECT().Review(gomock.Any(), bookingID, s.adminID, "Approved").
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AdminHandlerTestSuite) TestPostNotice() {
	url := "/admin/notices"

	s.Run("success: posts a global notice", func() {
		noticeID := uuid.New()
		s.mockNoticeCommands.EXPECT().Post(gomock.Any(), s.adminID, gomock.Any()).
			Return(noticeID, nil).Times(1)

		reqBody := map[string]any{"message": "Delivery truck delayed this week", "target_type": "global"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.PostNoticeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(noticeID, response.NoticeID)
	})

	s.Run("error: 404 when the target customer does not exist", func() {
		s.mockNoticeCommands.EXPECT().Post(gomock.Any(), s.adminID, gomock.Any()).
			Return(uuid.Nil, commands.ErrNoticeTargetNotFound).Times(1)

		reqBody := map[string]any{
			"message":            "Your cylinder is ready",
			"target_type":        "specific",
			"target_customer_id": uuid.NewString(),
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Target customer not found")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name    string
			reqBody map[string]any
		}{
			{name: "missing message", reqBody: map[string]any{"target_type": "global"}},
			{name: "unknown target type", reqBody: map[string]any{"message": "hello", "target_type": "broadcast"}},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, tc.reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})
}

func (s *AdminHandlerTestSuite) TestListAuditLogs() {
	url := "/admin/audit-logs"

	s.Run("success: passes the limit through", func() {
		s.mockAuditQueries.EXPECT().ListRecent(gomock.Any(), int32(25)).
			Return([]*queries.AuditLogView{{ID: uuid.New(), Action: "LOGIN"}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=25", nil, "bearer-token")

		var response []resdto.AuditLogResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("error: 400 on a bad limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=lots", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit parameter")
	})
}
