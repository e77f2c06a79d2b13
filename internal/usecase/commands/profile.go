package commands

import (
	"context"

	"gas-agency/internal/domain/audit"
	"gas-agency/internal/domain/customer"
	"gas-agency/internal/domain/identity"
	"gas-agency/internal/infra"
	"gas-agency/internal/pkg/errs"
	"gas-agency/internal/pkg/password"
	"gas-agency/internal/pkg/patch"
	"gas-agency/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrProfileUpdateFailed = errs.New("profile update failed")
	ErrWrongPassword       = errs.New("current password does not match")
)

type UpdateProfileRequest struct {
	Name    *string
	Phone   *string
	Address *string
}

type ProfileCommands interface {
	UpdateProfile(ctx context.Context, customerID uuid.UUID, req UpdateProfileRequest) error
	ChangePassword(ctx context.Context, customerID uuid.UUID, current, next string) error
}

type profileCommandsImpl struct {
	customers CustomerWriteRepository
	readStore queries.CustomerReadStore
	effects   SideEffects
}

func NewProfileCommands(customers CustomerWriteRepository, readStore queries.CustomerReadStore, effects SideEffects) ProfileCommands {
	return &profileCommandsImpl{
		customers: customers,
		readStore: readStore,
		effects:   effects,
	}
}

// UpdateProfile applies a partial update; omitted fields keep their current
// values. Email and quota are not editable here.
func (p *profileCommandsImpl) UpdateProfile(ctx context.Context, customerID uuid.UUID, req UpdateProfileRequest) error {
	current, err := p.readStore.FindByID(ctx, customerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrCustomerNotFoundWrite)
		}
		return errs.Mark(err, ErrProfileUpdateFailed)
	}

	name, err := customer.NewName(patch.Coalesce(req.Name, current.Name))
	if err != nil {
		return err
	}
	phone, err := customer.NewPhone(patch.Coalesce(req.Phone, current.Phone))
	if err != nil {
		return err
	}
	address, err := customer.NewAddress(patch.Coalesce(req.Address, current.Address))
	if err != nil {
		return err
	}

	if err := p.customers.UpdateProfile(ctx, customerID, name.Value(), phone.Value(), address.Value()); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrCustomerNotFoundWrite)
		}
		return errs.Mark(err, ErrProfileUpdateFailed)
	}

	p.effects.Audit(ctx, audit.NewEntry(customerID.String(), audit.ActorCustomer,
		audit.ActionProfileUpdated, "profile updated"))

	return nil
}

func (p *profileCommandsImpl) ChangePassword(ctx context.Context, customerID uuid.UUID, current, next string) error {
	view, err := p.readStore.FindByID(ctx, customerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrCustomerNotFoundWrite)
		}
		return errs.Mark(err, ErrProfileUpdateFailed)
	}

	_, hash, err := p.readStore.FindByEmail(ctx, view.Email)
	if err != nil {
		return errs.Mark(err, ErrProfileUpdateFailed)
	}

	if err := password.ComparePassword(hash, current); err != nil {
		return errs.Mark(err, ErrWrongPassword)
	}

	newPass, err := identity.NewPassword(next)
	if err != nil {
		return err
	}

	newHash, err := password.HashPassword(newPass.Value())
	if err != nil {
		return errs.Mark(err, ErrProfileUpdateFailed)
	}

	if err := p.customers.UpdatePasswordHash(ctx, customerID, newHash); err != nil {
		return errs.Mark(err, ErrProfileUpdateFailed)
	}

	p.effects.Audit(ctx, audit.NewEntry(customerID.String(), audit.ActorCustomer,
		audit.ActionPasswordChanged, "password changed"))

	return nil
}
