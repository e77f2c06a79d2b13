//go:build unit || e2e

package builder

import (
	"time"

	"gas-agency/internal/domain/booking"
	"gas-agency/internal/domain/identity"
	"gas-agency/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	id            uuid.UUID
	customerID    uuid.UUID
	customerEmail string
	payment       booking.PaymentMethod
	status        booking.Status
	createdAt     time.Time
	reviewedBy    *uuid.UUID
	reviewedAt    *time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		id:            uuid.New(),
		customerID:    uuid.New(),
		customerEmail: "asha@example.com",
		payment:       booking.PaymentCash,
		status:        booking.StatusPendingApproval,
		createdAt:     time.Now(),
	}
}

func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.id = id
	return b
}

func (b *BookingBuilder) WithCustomerID(id uuid.UUID) *BookingBuilder {
	b.customerID = id
	return b
}

func (b *BookingBuilder) WithPayment(p booking.PaymentMethod) *BookingBuilder {
	b.payment = p
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.status = s
	return b
}

func (b *BookingBuilder) Reviewed(by uuid.UUID, at time.Time) *BookingBuilder {
	b.reviewedBy = &by
	b.reviewedAt = &at
	return b
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	email, err := identity.NewEmail(b.customerEmail)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(
		b.id, b.customerID, email, b.payment, b.status, b.createdAt, b.reviewedBy, b.reviewedAt,
	), nil
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:            b.id,
		CustomerID:    b.customerID,
		CustomerEmail: b.customerEmail,
		Payment:       b.payment.String(),
		Status:        b.status.String(),
		CreatedAt:     b.createdAt,
		ReviewedBy:    b.reviewedBy,
		ReviewedAt:    b.reviewedAt,
	}
}

// BuildViewList builds n views sharing the builder's fields but with
// distinct IDs.
func (b *BookingBuilder) BuildViewList(n int) []*queries.BookingView {
	views := make([]*queries.BookingView, 0, n)
	for i := 0; i < n; i++ {
		view := b.BuildView()
		view.ID = uuid.New()
		views = append(views, view)
	}
	return views
}
