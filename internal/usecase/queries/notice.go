package queries

import (
	"context"

	"github.com/google/uuid"
)

type NoticeQueries interface {
	// ListVisibleToCustomer returns global notices plus the ones addressed
	// to the given customer, newest first.
	ListVisibleToCustomer(ctx context.Context, customerID uuid.UUID) ([]*NoticeView, error)
	ListAll(ctx context.Context) ([]*NoticeView, error)
}

type NoticeReadStore interface {
	ListVisibleToCustomer(ctx context.Context, customerID uuid.UUID) ([]*NoticeView, error)
	ListAll(ctx context.Context) ([]*NoticeView, error)
}

type noticeQueriesImpl struct {
	readStore NoticeReadStore
}

func NewNoticeQueries(readStore NoticeReadStore) NoticeQueries {
	return &noticeQueriesImpl{readStore: readStore}
}

func (q *noticeQueriesImpl) ListVisibleToCustomer(ctx context.Context, customerID uuid.UUID) ([]*NoticeView, error) {
	return q.readStore.ListVisibleToCustomer(ctx, customerID)
}

func (q *noticeQueriesImpl) ListAll(ctx context.Context) ([]*NoticeView, error) {
	return q.readStore.ListAll(ctx)
}
