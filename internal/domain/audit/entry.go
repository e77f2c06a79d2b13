package audit

import "time"

// Action codes mirror the portal's historical log vocabulary; dashboards key
// off these strings, so they stay stable.
const (
	ActionCustomerRegistered = "CUSTOMER_REGISTERED"
	ActionLogin              = "LOGIN"
	ActionLogout             = "LOGOUT"
	ActionProfileUpdated     = "PROFILE_UPDATED"
	ActionPasswordChanged    = "PASSWORD_CHANGED"
	ActionBookingCreated     = "BOOKING_CREATED"
	ActionNoticePosted       = "NOTICE_POSTED"
)

// BookingReviewAction yields BOOKING_Approved / BOOKING_Rejected.
func BookingReviewAction(status string) string {
	return "BOOKING_" + status
}

type ActorRole string

const (
	ActorCustomer ActorRole = "customer"
	ActorAdmin    ActorRole = "admin"
)

// ActorUnknown is recorded when an entry is appended outside any session.
const ActorUnknown = "unknown"

// Entry is an append-only trace record. Appends are best effort: a failed
// append is logged and dropped, never propagated to the triggering operation.
type Entry struct {
	ActorID   string
	ActorRole ActorRole
	Action    string
	Message   string
	CreatedAt time.Time
}

func NewEntry(actorID string, role ActorRole, action, message string) Entry {
	if actorID == "" {
		actorID = ActorUnknown
	}
	return Entry{
		ActorID:   actorID,
		ActorRole: role,
		Action:    action,
		Message:   message,
	}
}
