package repository

import (
	"context"

	"gas-agency/internal/domain/customer"
	"gas-agency/internal/infra"
	"gas-agency/internal/pkg/pgconv"
	"gas-agency/internal/usecase/shared"

	"github.com/google/uuid"
)

// CustomerTxRepository runs inside a unit of work and owns the quota ledger
// writes. No other code path may touch the quota column.
type CustomerTxRepository struct {
	db DBTX
}

func NewCustomerTxRepository(db DBTX) *CustomerTxRepository {
	return &CustomerTxRepository{db: db}
}

func (r *CustomerTxRepository) LockByID(ctx context.Context, id uuid.UUID) (*shared.CustomerSnapshot, error) {
	const q = `
		SELECT id, name, email, quota
		FROM customers
		WHERE id = $1
		FOR UPDATE`

	var snap shared.CustomerSnapshot
	err := r.db.QueryRow(ctx, q, id).Scan(&snap.ID, &snap.Name, &snap.Email, &snap.Quota)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock customer", err)
	}

	return &snap, nil
}

func (r *CustomerTxRepository) DecrementQuota(ctx context.Context, id uuid.UUID) error {
	// The check constraint backstops the coordinator's quota > 0 validation.
	const q = `
		UPDATE customers
		SET quota = quota - 1
		WHERE id = $1 AND quota > 0`

	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return infra.WrapRepoErr("failed to decrement quota", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("customer not found or quota exhausted", nil, infra.KindNotFound)
	}

	return nil
}

// CustomerRepository covers registration and profile writes outside the
// booking transaction.
type CustomerRepository struct {
	db DBTX
}

func NewCustomerRepository(db DBTX) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	const q = `
		INSERT INTO customers (id, name, email, password_hash, phone, address, quota, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())`

	_, err := r.db.Exec(ctx, q,
		c.ID(), c.Name().Value(), c.Email().Value(), c.PasswordHash(),
		c.Phone().Value(), c.Address().Value(), c.Quota())
	if err != nil {
		return classifyPgError("failed to create customer", err)
	}

	return nil
}

func (r *CustomerRepository) UpdateProfile(ctx context.Context, id uuid.UUID, name, phone, address string) error {
	const q = `
		UPDATE customers
		SET name = $2, phone = $3, address = $4
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id, name, phone, address)
	if err != nil {
		return infra.WrapRepoErr("failed to update profile", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *CustomerRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	const q = `
		UPDATE customers
		SET password_hash = $2
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id, passwordHash)
	if err != nil {
		return infra.WrapRepoErr("failed to update password", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}

	return nil
}
