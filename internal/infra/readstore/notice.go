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

type NoticeReadStore struct {
	db repository.DBTX
}

func NewNoticeReadStore(db repository.DBTX) *NoticeReadStore {
	return &NoticeReadStore{db: db}
}

func (r *NoticeReadStore) ListVisibleToCustomer(ctx context.Context, customerID uuid.UUID) ([]*queries.NoticeView, error) {
	const q = `
		SELECT id, message, target_type, target_customer_id, posted_by, created_at
		FROM notices
		WHERE target_type = 'global' OR target_customer_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notices for customer", err)
	}
	defer rows.Close()

	return collectNoticeRows(rows)
}

func (r *NoticeReadStore) ListAll(ctx context.Context) ([]*queries.NoticeView, error) {
	const q = `
		SELECT id, message, target_type, target_customer_id, posted_by, created_at
		FROM notices
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notices", err)
	}
	defer rows.Close()

	return collectNoticeRows(rows)
}

func collectNoticeRows(rows pgx.Rows) ([]*queries.NoticeView, error) {
	views := []*queries.NoticeView{}
	for rows.Next() {
		var (
			view   queries.NoticeView
			target pgtype.UUID
		)
		err := rows.Scan(
			&view.ID, &view.Message, &view.TargetType, &target,
			&view.PostedBy, &view.CreatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan notice row", err)
		}
		view.TargetCustomerID = pgconv.UUIDPtrFromPgtype(target)
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notice rows", err)
	}
	return views, nil
}
