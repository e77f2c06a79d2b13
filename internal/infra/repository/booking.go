package repository

import (
	"context"
	"time"

	"gas-agency/internal/domain/booking"
	"gas-agency/internal/domain/identity"
	"gas-agency/internal/infra"
	"gas-agency/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// BookingTxRepository runs inside a unit of work; inserts pair with the quota
// decrement and reviews pair with the row lock taken by LockByID.
type BookingTxRepository struct {
	db DBTX
}

func NewBookingTxRepository(db DBTX) *BookingTxRepository {
	return &BookingTxRepository{db: db}
}

func (r *BookingTxRepository) Insert(ctx context.Context, b *booking.Booking) error {
	const q = `
		INSERT INTO bookings (id, customer_id, customer_email, payment, status, created_at)
		VALUES ($1, $2, $3, $4, $5, now())`

	_, err := r.db.Exec(ctx, q,
		b.ID(), b.CustomerID(), b.CustomerEmail().Value(), b.Payment().String(), b.Status().String())
	if err != nil {
		return classifyPgError("failed to insert booking", err)
	}

	return nil
}

func (r *BookingTxRepository) LockByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	const q = `
		SELECT id, customer_id, customer_email, payment, status, created_at, reviewed_by, reviewed_at
		FROM bookings
		WHERE id = $1
		FOR UPDATE`

	var (
		bookingID     uuid.UUID
		customerID    uuid.UUID
		customerEmail string
		payment       string
		status        string
		createdAt     time.Time
		reviewedBy    pgtype.UUID
		reviewedAt    pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, q, id).Scan(
		&bookingID, &customerID, &customerEmail, &payment, &status,
		&createdAt, &reviewedBy, &reviewedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}

	email, err := identity.NewEmail(customerEmail)
	if err != nil {
		return nil, infra.WrapRepoErr("stored customer email is invalid", err)
	}
	st, err := booking.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking status is invalid", err)
	}
	pm, err := booking.NewPaymentMethod(payment)
	if err != nil {
		return nil, infra.WrapRepoErr("stored payment method is invalid", err)
	}

	return booking.ReconstructBooking(
		bookingID, customerID, email, pm, st, createdAt,
		pgconv.UUIDPtrFromPgtype(reviewedBy),
		pgconv.TimePtrFromPgtype(reviewedAt),
	), nil
}

func (r *BookingTxRepository) SaveReview(ctx context.Context, b *booking.Booking) error {
	const q = `
		UPDATE bookings
		SET status = $2, reviewed_by = $3, reviewed_at = $4
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q,
		b.ID(), b.Status().String(),
		pgconv.UUIDPtrToPgtype(b.ReviewedBy()),
		pgconv.TimePtrToPgtype(b.ReviewedAt()))
	if err != nil {
		return infra.WrapRepoErr("failed to save booking review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	return nil
}
