package booking

import (
	"errors"
	"time"

	"gas-agency/internal/domain/identity"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus        = errors.New("invalid booking status")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrNotReviewable        = errors.New("target status must be Approved or Rejected")
	ErrAlreadyReviewed      = errors.New("booking has already been reviewed")
)

// Booking is a single cylinder request. The customer email is denormalized at
// creation time so status notifications survive later profile edits.
type Booking struct {
	id            uuid.UUID
	customerID    uuid.UUID
	customerEmail identity.Email
	payment       PaymentMethod
	status        Status
	createdAt     time.Time
	reviewedBy    *uuid.UUID
	reviewedAt    *time.Time
}

func NewBooking(customerID uuid.UUID, customerEmail identity.Email, payment PaymentMethod) (*Booking, error) {
	if !payment.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}
	return &Booking{
		id:            uuid.New(),
		customerID:    customerID,
		customerEmail: customerEmail,
		payment:       payment,
		status:        StatusPendingApproval,
	}, nil
}

func ReconstructBooking(
	id, customerID uuid.UUID,
	customerEmail identity.Email,
	payment PaymentMethod,
	status Status,
	createdAt time.Time,
	reviewedBy *uuid.UUID,
	reviewedAt *time.Time,
) *Booking {
	return &Booking{
		id:            id,
		customerID:    customerID,
		customerEmail: customerEmail,
		payment:       payment,
		status:        status,
		createdAt:     createdAt,
		reviewedBy:    reviewedBy,
		reviewedAt:    reviewedAt,
	}
}

// Review moves the booking into a terminal status. A booking transitions at
// most once; re-reviewing a terminal booking is rejected rather than silently
// overwritten.
func (b *Booking) Review(target Status, reviewerID uuid.UUID, at time.Time) error {
	if !target.IsTerminal() {
		return ErrNotReviewable
	}
	if b.status != StatusPendingApproval {
		return ErrAlreadyReviewed
	}
	b.status = target
	b.reviewedBy = &reviewerID
	b.reviewedAt = &at
	return nil
}

func (b *Booking) IsPending() bool {
	return b.status == StatusPendingApproval
}

func (b *Booking) ID() uuid.UUID                  { return b.id }
func (b *Booking) CustomerID() uuid.UUID          { return b.customerID }
func (b *Booking) CustomerEmail() identity.Email  { return b.customerEmail }
func (b *Booking) Payment() PaymentMethod         { return b.payment }
func (b *Booking) Status() Status                 { return b.status }
func (b *Booking) CreatedAt() time.Time           { return b.createdAt }
func (b *Booking) ReviewedBy() *uuid.UUID         { return b.reviewedBy }
func (b *Booking) ReviewedAt() *time.Time         { return b.reviewedAt }
