package queries

import "context"

type StatsQueries interface {
	Dashboard(ctx context.Context) (*DashboardStatsView, error)
}

type StatsReadStore interface {
	Dashboard(ctx context.Context) (*DashboardStatsView, error)
}

type statsQueriesImpl struct {
	readStore StatsReadStore
}

func NewStatsQueries(readStore StatsReadStore) StatsQueries {
	return &statsQueriesImpl{readStore: readStore}
}

func (q *statsQueriesImpl) Dashboard(ctx context.Context) (*DashboardStatsView, error) {
	return q.readStore.Dashboard(ctx)
}
