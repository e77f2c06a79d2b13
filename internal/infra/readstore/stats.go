package readstore

import (
	"context"

	"gas-agency/internal/infra"
	"gas-agency/internal/infra/repository"
	"gas-agency/internal/usecase/queries"
)

type StatsReadStore struct {
	db repository.DBTX
}

func NewStatsReadStore(db repository.DBTX) *StatsReadStore {
	return &StatsReadStore{db: db}
}

func (r *StatsReadStore) Dashboard(ctx context.Context) (*queries.DashboardStatsView, error) {
	const q = `
		SELECT
			(SELECT count(*) FROM customers),
			(SELECT count(*) FROM bookings),
			(SELECT count(*) FROM bookings WHERE status = 'PendingApproval')`

	var view queries.DashboardStatsView
	err := r.db.QueryRow(ctx, q).Scan(
		&view.TotalCustomers, &view.TotalBookings, &view.PendingBookings)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load dashboard stats", err)
	}

	return &view, nil
}
