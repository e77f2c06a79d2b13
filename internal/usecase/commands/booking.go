package commands

import (
	"context"
	"fmt"

	"gas-agency/internal/domain/audit"
	"gas-agency/internal/domain/booking"
	"gas-agency/internal/domain/identity"
	"gas-agency/internal/infra"
	"gas-agency/internal/pkg/clock"
	"gas-agency/internal/pkg/errs"
	"gas-agency/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFoundWrite  = errs.New("customer not found")
	ErrQuotaExhausted         = errs.New("booking quota exhausted")
	ErrInvalidPayment         = errs.New("invalid payment method")
	ErrBookingNotFoundWrite   = errs.New("booking not found")
	ErrBookingAlreadyReviewed = errs.New("booking already reviewed")
	ErrInvalidReviewStatus    = errs.New("review status must be Approved or Rejected")
	ErrBookingConflict        = errs.New("booking conflicted with concurrent operations")
	ErrBookingStoreFailed     = errs.New("booking store operation failed")
)

type CreateBookingResult struct {
	BookingID      uuid.UUID
	Status         string
	RemainingQuota int
}

type ReviewBookingResult struct {
	BookingID uuid.UUID
	Status    string
}

type BookingCommands interface {
	Create(ctx context.Context, customerID uuid.UUID, payment string) (*CreateBookingResult, error)
	Review(ctx context.Context, bookingID, reviewerID uuid.UUID, target string) (*ReviewBookingResult, error)
}

type bookingCommandsImpl struct {
	uow         shared.UnitOfWork
	effects     SideEffects
	clock       clock.Clock
	agencyEmail string
}

func NewBookingCommands(uowInst shared.UnitOfWork, effects SideEffects, clk clock.Clock, agencyEmail string) BookingCommands {
	return &bookingCommandsImpl{
		uow:         uowInst,
		effects:     effects,
		clock:       clk,
		agencyEmail: agencyEmail,
	}
}

// Create books one cylinder against the customer's remaining quota. The row
// lock on the customer serializes concurrent bookings for the same customer,
// so at quota=1 exactly one of two racing requests can succeed. The quota
// check, booking insert and decrement commit or roll back together.
func (c *bookingCommandsImpl) Create(ctx context.Context, customerID uuid.UUID, payment string) (*CreateBookingResult, error) {
	method, err := booking.NewPaymentMethod(payment)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPayment)
	}

	var (
		created   *booking.Booking
		remaining int
		customer  *shared.CustomerSnapshot
	)
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, lockErr := tx.Customers().LockByID(ctx, customerID)
		if lockErr != nil {
			if infra.IsKind(lockErr, infra.KindNotFound) {
				return errs.Mark(lockErr, ErrCustomerNotFoundWrite)
			}
			return errs.Mark(lockErr, ErrBookingStoreFailed)
		}

		if snap.Quota <= 0 {
			return ErrQuotaExhausted
		}

		email, emailErr := identity.NewEmail(snap.Email)
		if emailErr != nil {
			return errs.Mark(emailErr, ErrBookingStoreFailed)
		}

		b, newErr := booking.NewBooking(customerID, email, method)
		if newErr != nil {
			return errs.Mark(newErr, ErrInvalidPayment)
		}

		if insErr := tx.Bookings().Insert(ctx, b); insErr != nil {
			return errs.Mark(insErr, ErrBookingStoreFailed)
		}
		if decErr := tx.Customers().DecrementQuota(ctx, customerID); decErr != nil {
			return errs.Mark(decErr, ErrBookingStoreFailed)
		}

		created = b
		remaining = snap.Quota - 1
		customer = snap
		return nil
	})
	if err != nil {
		if errs.Is(err, shared.ErrMaxRetriesExceeded) {
			return nil, errs.Mark(err, ErrBookingConflict)
		}
		return nil, err
	}

	c.effects.Email(ctx, c.agencyEmail,
		fmt.Sprintf("New Booking: %s", customer.Name),
		fmt.Sprintf("%s (%s) booked a cylinder. Payment: %s. Remaining quota: %d.",
			customer.Name, customer.Email, method.String(), remaining))
	c.effects.Audit(ctx, audit.NewEntry(customerID.String(), audit.ActorCustomer,
		audit.ActionBookingCreated,
		fmt.Sprintf("booking %s created, payment %s", created.ID(), method.String())))

	return &CreateBookingResult{
		BookingID:      created.ID(),
		Status:         created.Status().String(),
		RemainingQuota: remaining,
	}, nil
}

// Review moves a pending booking to Approved or Rejected. The booking row is
// locked before the guard so two concurrent reviews cannot both pass; the
// loser sees a terminal status and fails with ErrBookingAlreadyReviewed.
func (c *bookingCommandsImpl) Review(ctx context.Context, bookingID, reviewerID uuid.UUID, target string) (*ReviewBookingResult, error) {
	status, err := booking.NewStatus(target)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidReviewStatus)
	}

	var reviewed *booking.Booking
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, lockErr := tx.Bookings().LockByID(ctx, bookingID)
		if lockErr != nil {
			if infra.IsKind(lockErr, infra.KindNotFound) {
				return errs.Mark(lockErr, ErrBookingNotFoundWrite)
			}
			return errs.Mark(lockErr, ErrBookingStoreFailed)
		}

		if revErr := b.Review(status, reviewerID, c.clock.Now()); revErr != nil {
			if errs.Is(revErr, booking.ErrAlreadyReviewed) {
				return errs.Mark(revErr, ErrBookingAlreadyReviewed)
			}
			return errs.Mark(revErr, ErrInvalidReviewStatus)
		}

		if saveErr := tx.Bookings().SaveReview(ctx, b); saveErr != nil {
			return errs.Mark(saveErr, ErrBookingStoreFailed)
		}

		reviewed = b
		return nil
	})
	if err != nil {
		if errs.Is(err, shared.ErrMaxRetriesExceeded) {
			return nil, errs.Mark(err, ErrBookingConflict)
		}
		return nil, err
	}

	c.effects.Email(ctx, reviewed.CustomerEmail().Value(),
		fmt.Sprintf("Booking %s", status.String()),
		fmt.Sprintf("Your cylinder booking of %s has been %s.",
			reviewed.CreatedAt().Format("2006-01-02"), status.String()))
	c.effects.Audit(ctx, audit.NewEntry(reviewerID.String(), audit.ActorAdmin,
		audit.BookingReviewAction(status.String()),
		fmt.Sprintf("booking %s reviewed to %s", bookingID, status.String())))

	return &ReviewBookingResult{
		BookingID: reviewed.ID(),
		Status:    reviewed.Status().String(),
	}, nil
}
