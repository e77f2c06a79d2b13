package commands

import (
	"context"

	"gas-agency/internal/domain/audit"
	"gas-agency/internal/domain/identity"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)

// AdminSnapshot is a row from the admin registry. Row existence is the
// authorization; there is no role stored anywhere else.
type AdminSnapshot struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
}

type AdminRegistry interface {
	FindByEmail(ctx context.Context, email string) (*AdminSnapshot, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// SessionStore holds refresh sessions. Terminate drops every session an
// account owns, which is how a revoked admin loses access mid-session.
type SessionStore interface {
	Create(ctx context.Context, accountID uuid.UUID, role identity.Role) (string, error)
	Get(ctx context.Context, token string) (uuid.UUID, identity.Role, error)
	Delete(ctx context.Context, token string) error
	Terminate(ctx context.Context, accountID uuid.UUID) error
}

// SideEffects is the fan-out surface for notifications and audit entries.
// Both calls return immediately; delivery is best effort and failures are
// invisible to the caller.
type SideEffects interface {
	Email(ctx context.Context, to, subject, message string)
	Audit(ctx context.Context, entry audit.Entry)
}
