package readstore

import (
	"context"

	"gas-agency/internal/infra"
	"gas-agency/internal/infra/repository"
	"gas-agency/internal/pkg/pgconv"
	"gas-agency/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db repository.DBTX
}

func NewBookingReadStore(db repository.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

const bookingColumns = `id, customer_id, customer_email, payment, status, created_at, reviewed_by, reviewed_at`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	q := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	view, err := scanBookingRow(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	return view, nil
}

func (r *BookingReadStore) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*queries.BookingView, error) {
	q := `SELECT ` + bookingColumns + ` FROM bookings WHERE customer_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customer bookings", err)
	}
	defer rows.Close()

	return collectBookingRows(rows)
}

func (r *BookingReadStore) ListAll(ctx context.Context) ([]*queries.BookingView, error) {
	q := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	return collectBookingRows(rows)
}

func collectBookingRows(rows pgx.Rows) ([]*queries.BookingView, error) {
	views := []*queries.BookingView{}
	for rows.Next() {
		view, err := scanBookingRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return views, nil
}

func scanBookingRow(row pgx.Row) (*queries.BookingView, error) {
	var (
		view       queries.BookingView
		reviewedBy pgtype.UUID
		reviewedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.CustomerID, &view.CustomerEmail, &view.Payment,
		&view.Status, &view.CreatedAt, &reviewedBy, &reviewedAt)
	if err != nil {
		return nil, err
	}

	view.ReviewedBy = pgconv.UUIDPtrFromPgtype(reviewedBy)
	view.ReviewedAt = pgconv.TimePtrFromPgtype(reviewedAt)
	return &view, nil
}
