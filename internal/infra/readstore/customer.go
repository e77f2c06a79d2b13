package readstore

import (
	"context"

	"gas-agency/internal/infra"
	"gas-agency/internal/infra/repository"
	"gas-agency/internal/pkg/pgconv"
	"gas-agency/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerReadStore struct {
	db repository.DBTX
}

func NewCustomerReadStore(db repository.DBTX) *CustomerReadStore {
	return &CustomerReadStore{db: db}
}

func (r *CustomerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CustomerView, error) {
	const q = `
		SELECT id, name, email, phone, address, quota, created_at
		FROM customers
		WHERE id = $1`

	var view queries.CustomerView
	err := r.db.QueryRow(ctx, q, id).Scan(
		&view.ID, &view.Name, &view.Email, &view.Phone,
		&view.Address, &view.Quota, &view.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by ID", err)
	}

	return &view, nil
}

func (r *CustomerReadStore) FindByEmail(ctx context.Context, email string) (*queries.CustomerView, string, error) {
	const q = `
		SELECT id, name, email, phone, address, quota, created_at, password_hash
		FROM customers
		WHERE email = $1`

	var (
		view         queries.CustomerView
		passwordHash string
	)
	err := r.db.QueryRow(ctx, q, email).Scan(
		&view.ID, &view.Name, &view.Email, &view.Phone,
		&view.Address, &view.Quota, &view.CreatedAt, &passwordHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find customer by email", err)
	}

	return &view, passwordHash, nil
}

func (r *CustomerReadStore) ListAll(ctx context.Context) ([]*queries.CustomerView, error) {
	const q = `
		SELECT id, name, email, phone, address, quota, created_at
		FROM customers
		ORDER BY name ASC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customers", err)
	}
	defer rows.Close()

	views := []*queries.CustomerView{}
	for rows.Next() {
		var view queries.CustomerView
		err := rows.Scan(
			&view.ID, &view.Name, &view.Email, &view.Phone,
			&view.Address, &view.Quota, &view.CreatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan customer row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate customer rows", err)
	}

	return views, nil
}
