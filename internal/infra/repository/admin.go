package repository

import (
	"context"

	"gas-agency/internal/infra"
	"gas-agency/internal/pkg/pgconv"
	"gas-agency/internal/usecase/commands"

	"github.com/google/uuid"
)

// AdminRegistry is the authoritative list of administrator accounts. Row
// existence is the authorization; there is no role escalation path.
type AdminRegistry struct {
	db DBTX
}

func NewAdminRegistry(db DBTX) *AdminRegistry {
	return &AdminRegistry{db: db}
}

func (r *AdminRegistry) FindByEmail(ctx context.Context, email string) (*commands.AdminSnapshot, error) {
	const q = `
		SELECT id, email, password_hash
		FROM admins
		WHERE email = $1`

	var snap commands.AdminSnapshot
	err := r.db.QueryRow(ctx, q, email).Scan(&snap.ID, &snap.Email, &snap.PasswordHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("admin not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find admin by email", err)
	}

	return &snap, nil
}

func (r *AdminRegistry) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM admins WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, q, id).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check admin registry", err)
	}

	return exists, nil
}
