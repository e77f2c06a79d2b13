package repository

import (
	"context"

	"gas-agency/internal/domain/audit"
	"gas-agency/internal/infra"

	"github.com/google/uuid"
)

// AuditRepository appends trace records. It is always called on the
// fire-and-forget path, never inside a unit of work.
type AuditRepository struct {
	db DBTX
}

func NewAuditRepository(db DBTX) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Append(ctx context.Context, e audit.Entry) error {
	const q = `
		INSERT INTO audit_logs (id, actor_id, actor_role, action, message, created_at)
		VALUES ($1, $2, $3, $4, $5, now())`

	_, err := r.db.Exec(ctx, q, uuid.New(), e.ActorID, string(e.ActorRole), e.Action, e.Message)
	if err != nil {
		return infra.WrapRepoErr("failed to append audit entry", err)
	}

	return nil
}
