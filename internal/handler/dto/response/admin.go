package response

import (
	"time"

	"gas-agency/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type DashboardStatsResponse struct {
	TotalCustomers  int64 `json:"total_customers"`
	TotalBookings   int64 `json:"total_bookings"`
	PendingBookings int64 `json:"pending_bookings"`
}

func NewDashboardStatsResponse(view *queries.DashboardStatsView) DashboardStatsResponse {
	return DashboardStatsResponse{
		TotalCustomers:  view.TotalCustomers,
		TotalBookings:   view.TotalBookings,
		PendingBookings: view.PendingBookings,
	}
}

type AuditLogResponse struct {
	ID        uuid.UUID `json:"id"`
	ActorID   string    `json:"actor_id"`
	ActorRole string    `json:"actor_role"`
	Action    string    `json:"action"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func NewAuditLogListResponse(views []*queries.AuditLogView) ([]AuditLogResponse, error) {
	resps := make([]AuditLogResponse, 0, len(views))
	for _, view := range views {
		var resp AuditLogResponse
		if err := copier.Copy(&resp, view); err != nil {
			return nil, err
		}
		resps = append(resps, resp)
	}
	return resps, nil
}
