package repository

import (
	"context"

	"gas-agency/internal/domain/notice"
)

type NoticeRepository struct {
	db DBTX
}

func NewNoticeRepository(db DBTX) *NoticeRepository {
	return &NoticeRepository{db: db}
}

func (r *NoticeRepository) Insert(ctx context.Context, n *notice.Notice) error {
	const q = `
		INSERT INTO notices (id, message, target_type, target_customer_id, posted_by, created_at)
		VALUES ($1, $2, $3, $4, $5, now())`

	_, err := r.db.Exec(ctx, q,
		n.ID(), n.Message(), n.TargetType().String(), n.TargetCustomerID(), n.PostedBy())
	if err != nil {
		return classifyPgError("failed to insert notice", err)
	}

	return nil
}
