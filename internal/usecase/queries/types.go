package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models are snapshots; they are stale the moment any write commits.

type CustomerView struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Address   string
	Quota     int
	CreatedAt time.Time
}

type BookingView struct {
	ID            uuid.UUID
	CustomerID    uuid.UUID
	CustomerEmail string
	Payment       string
	Status        string
	CreatedAt     time.Time
	ReviewedBy    *uuid.UUID
	ReviewedAt    *time.Time
}

type NoticeView struct {
	ID               uuid.UUID
	Message          string
	TargetType       string
	TargetCustomerID *uuid.UUID
	PostedBy         uuid.UUID
	CreatedAt        time.Time
}

type AuditLogView struct {
	ID        uuid.UUID
	ActorID   string
	ActorRole string
	Action    string
	Message   string
	CreatedAt time.Time
}

type DashboardStatsView struct {
	TotalCustomers  int64
	TotalBookings   int64
	PendingBookings int64
}
