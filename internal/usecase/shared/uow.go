package shared

import (
	"context"

	"gas-agency/internal/domain/booking"
	"gas-agency/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrMaxRetriesExceeded marks a unit of work abandoned after its bounded
// retries; callers surface it as a conflict.
var ErrMaxRetriesExceeded = errs.New("transaction failed after max retries")

// UnitOfWork is the transactional boundary both coordinators run inside.
// Within retries the whole body on serialization failures and deadlocks, so
// the body must be safe to re-execute from the top.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Customers() CustomerTxRepository
	Bookings() BookingTxRepository
}

// CustomerSnapshot is the minimal ledger view the booking transaction needs.
type CustomerSnapshot struct {
	ID    uuid.UUID
	Name  string
	Email string
	Quota int
}

type CustomerTxRepository interface {
	// LockByID reads the customer row under a row lock, serializing
	// concurrent bookings for the same customer.
	LockByID(ctx context.Context, id uuid.UUID) (*CustomerSnapshot, error)
	DecrementQuota(ctx context.Context, id uuid.UUID) error
}

type BookingTxRepository interface {
	Insert(ctx context.Context, b *booking.Booking) error
	// LockByID reads the booking row under a row lock for the status
	// transition.
	LockByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	SaveReview(ctx context.Context, b *booking.Booking) error
}
