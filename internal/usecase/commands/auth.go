package commands

import (
	"context"
	"fmt"

	"gas-agency/internal/domain/audit"
	"gas-agency/internal/domain/customer"
	"gas-agency/internal/domain/identity"
	"gas-agency/internal/infra"
	"gas-agency/internal/pkg/errs"
	"gas-agency/internal/pkg/jwt"
	"gas-agency/internal/pkg/password"
	"gas-agency/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrNotAnAdmin           = errs.New("account is not in the admin registry")
	ErrEmailTaken           = errs.New("email already registered")
	ErrRegistrationFailed   = errs.New("registration failed")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrSessionExpired       = errs.New("session expired or revoked")
)

type RegisterCustomerRequest struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Address  string
}

type LoginResult struct {
	AccountID    uuid.UUID
	Role         identity.Role
	AccessToken  string
	SessionToken string
}

type CustomerWriteRepository interface {
	Create(ctx context.Context, c *customer.Customer) error
	UpdateProfile(ctx context.Context, id uuid.UUID, name, phone, address string) error
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error
}

type AuthCommands interface {
	RegisterCustomer(ctx context.Context, req RegisterCustomerRequest) (uuid.UUID, error)
	LoginCustomer(ctx context.Context, email, pass string) (*LoginResult, error)
	LoginAdmin(ctx context.Context, email, pass string) (*LoginResult, error)
	Refresh(ctx context.Context, sessionToken string) (*LoginResult, error)
	Logout(ctx context.Context, sessionToken string) error
}

type authCommandsImpl struct {
	customers CustomerWriteRepository
	readStore queries.CustomerReadStore
	admins    AdminRegistry
	sessions  SessionStore
	jwt       *jwt.Service
	effects   SideEffects
}

func NewAuthCommands(
	customers CustomerWriteRepository,
	readStore queries.CustomerReadStore,
	admins AdminRegistry,
	sessions SessionStore,
	jwtService *jwt.Service,
	effects SideEffects,
) AuthCommands {
	return &authCommandsImpl{
		customers: customers,
		readStore: readStore,
		admins:    admins,
		sessions:  sessions,
		jwt:       jwtService,
		effects:   effects,
	}
}

// RegisterCustomer creates the account with the full yearly quota. Quota
// replenishment is an out-of-band concern; registration is the only place a
// quota is ever set.
func (a *authCommandsImpl) RegisterCustomer(ctx context.Context, req RegisterCustomerRequest) (uuid.UUID, error) {
	name, err := customer.NewName(req.Name)
	if err != nil {
		return uuid.Nil, err
	}
	email, err := identity.NewEmail(req.Email)
	if err != nil {
		return uuid.Nil, err
	}
	pass, err := identity.NewPassword(req.Password)
	if err != nil {
		return uuid.Nil, err
	}
	phone, err := customer.NewPhone(req.Phone)
	if err != nil {
		return uuid.Nil, err
	}
	address, err := customer.NewAddress(req.Address)
	if err != nil {
		return uuid.Nil, err
	}

	hash, err := password.HashPassword(pass.Value())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrRegistrationFailed)
	}

	c := customer.NewCustomer(name, email, hash, phone, address)
	if err := a.customers.Create(ctx, c); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.Mark(err, ErrEmailTaken)
		}
		return uuid.Nil, errs.Mark(err, ErrRegistrationFailed)
	}

	a.effects.Audit(ctx, audit.NewEntry(c.ID().String(), audit.ActorCustomer,
		audit.ActionCustomerRegistered,
		fmt.Sprintf("customer %s registered with quota %d", email.Value(), customer.DefaultAnnualQuota)))

	return c.ID(), nil
}

func (a *authCommandsImpl) LoginCustomer(ctx context.Context, email, pass string) (*LoginResult, error) {
	view, hash, err := a.readStore.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if err := password.ComparePassword(hash, pass); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	result, err := a.openSession(ctx, view.ID, identity.RoleCustomer)
	if err != nil {
		return nil, err
	}

	a.effects.Audit(ctx, audit.NewEntry(view.ID.String(), audit.ActorCustomer,
		audit.ActionLogin, "customer logged in"))

	return result, nil
}

// LoginAdmin authenticates against the admin registry only. A customer
// account with the same email cannot obtain an admin session.
func (a *authCommandsImpl) LoginAdmin(ctx context.Context, email, pass string) (*LoginResult, error) {
	admin, err := a.admins.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if err := password.ComparePassword(admin.PasswordHash, pass); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	result, err := a.openSession(ctx, admin.ID, identity.RoleAdmin)
	if err != nil {
		return nil, err
	}

	a.effects.Audit(ctx, audit.NewEntry(admin.ID.String(), audit.ActorAdmin,
		audit.ActionLogin, "admin logged in"))

	return result, nil
}

// Refresh rotates the session token. An admin session whose registry row has
// disappeared is terminated on the spot instead of being renewed.
func (a *authCommandsImpl) Refresh(ctx context.Context, sessionToken string) (*LoginResult, error) {
	accountID, role, err := a.sessions.Get(ctx, sessionToken)
	if err != nil {
		return nil, errs.Mark(err, ErrSessionExpired)
	}

	if role == identity.RoleAdmin {
		exists, regErr := a.admins.Exists(ctx, accountID)
		if regErr != nil {
			return nil, errs.Mark(regErr, ErrAuthenticationFailed)
		}
		if !exists {
			if termErr := a.sessions.Terminate(ctx, accountID); termErr != nil {
				return nil, errs.Mark(termErr, ErrAuthenticationFailed)
			}
			return nil, ErrNotAnAdmin
		}
	}

	if err := a.sessions.Delete(ctx, sessionToken); err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	return a.openSession(ctx, accountID, role)
}

func (a *authCommandsImpl) Logout(ctx context.Context, sessionToken string) error {
	accountID, role, err := a.sessions.Get(ctx, sessionToken)
	if err != nil {
		// Already gone; logout is idempotent.
		return nil
	}

	if err := a.sessions.Delete(ctx, sessionToken); err != nil {
		return errs.Mark(err, ErrAuthenticationFailed)
	}

	actorRole := audit.ActorCustomer
	if role == identity.RoleAdmin {
		actorRole = audit.ActorAdmin
	}
	a.effects.Audit(ctx, audit.NewEntry(accountID.String(), actorRole,
		audit.ActionLogout, "logged out"))

	return nil
}

func (a *authCommandsImpl) openSession(ctx context.Context, accountID uuid.UUID, role identity.Role) (*LoginResult, error) {
	accessToken, err := a.jwt.GenerateToken(accountID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	sessionToken, err := a.sessions.Create(ctx, accountID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		AccountID:    accountID,
		Role:         role,
		AccessToken:  accessToken,
		SessionToken: sessionToken,
	}, nil
}
