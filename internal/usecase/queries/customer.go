package queries

import (
	"context"

	"gas-agency/internal/infra"
	"gas-agency/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCustomerNotFound = errs.New("customer not found")

type CustomerQueries interface {
	GetProfile(ctx context.Context, customerID uuid.UUID) (*CustomerView, error)
	ListAll(ctx context.Context) ([]*CustomerView, error)
}

type CustomerReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
	// FindByEmail also returns the password hash for credential checks.
	FindByEmail(ctx context.Context, email string) (*CustomerView, string, error)
	ListAll(ctx context.Context) ([]*CustomerView, error)
}

type customerQueriesImpl struct {
	readStore CustomerReadStore
}

func NewCustomerQueries(readStore CustomerReadStore) CustomerQueries {
	return &customerQueriesImpl{readStore: readStore}
}

func (q *customerQueriesImpl) GetProfile(ctx context.Context, customerID uuid.UUID) (*CustomerView, error) {
	view, err := q.readStore.FindByID(ctx, customerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *customerQueriesImpl) ListAll(ctx context.Context) ([]*CustomerView, error) {
	return q.readStore.ListAll(ctx)
}
