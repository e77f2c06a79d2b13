package queries

import "context"

type AuditLogQueries interface {
	ListRecent(ctx context.Context, limit int32) ([]*AuditLogView, error)
}

type AuditLogReadStore interface {
	ListRecent(ctx context.Context, limit int32) ([]*AuditLogView, error)
}

const defaultAuditLogLimit = 100

type auditLogQueriesImpl struct {
	readStore AuditLogReadStore
}

func NewAuditLogQueries(readStore AuditLogReadStore) AuditLogQueries {
	return &auditLogQueriesImpl{readStore: readStore}
}

func (q *auditLogQueriesImpl) ListRecent(ctx context.Context, limit int32) ([]*AuditLogView, error) {
	if limit <= 0 || limit > 500 {
		limit = defaultAuditLogLimit
	}
	return q.readStore.ListRecent(ctx, limit)
}
