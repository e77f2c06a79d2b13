package readstore

import (
	"context"

	"gas-agency/internal/infra"
	"gas-agency/internal/infra/repository"
	"gas-agency/internal/usecase/queries"
)

type AuditLogReadStore struct {
	db repository.DBTX
}

func NewAuditLogReadStore(db repository.DBTX) *AuditLogReadStore {
	return &AuditLogReadStore{db: db}
}

func (r *AuditLogReadStore) ListRecent(ctx context.Context, limit int32) ([]*queries.AuditLogView, error) {
	const q = `
		SELECT id, actor_id, actor_role, action, message, created_at
		FROM audit_logs
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, q, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list audit logs", err)
	}
	defer rows.Close()

	views := []*queries.AuditLogView{}
	for rows.Next() {
		var view queries.AuditLogView
		err := rows.Scan(
			&view.ID, &view.ActorID, &view.ActorRole,
			&view.Action, &view.Message, &view.CreatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan audit log row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate audit log rows", err)
	}

	return views, nil
}
