//go:build unit

package commands_test

import (
	"context"
	"testing"

	"gas-agency/internal/domain/audit"
	"gas-agency/internal/domain/customer"
	"gas-agency/internal/domain/identity"
	"gas-agency/internal/infra"
	"gas-agency/internal/pkg/jwt"
	"gas-agency/internal/pkg/password"
	"gas-agency/internal/usecase/commands"
	"gas-agency/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profileUpdate struct {
	ID      uuid.UUID
	Name    string
	Phone   string
	Address string
}

type fakeCustomerWriteRepo struct {
	created        []*customer.Customer
	createErr      error
	profileUpdates []profileUpdate
	updatedHashes  map[uuid.UUID]string
}

func (r *fakeCustomerWriteRepo) Create(_ context.Context, c *customer.Customer) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, c)
	return nil
}

func (r *fakeCustomerWriteRepo) UpdateProfile(_ context.Context, id uuid.UUID, name, phone, address string) error {
	r.profileUpdates = append(r.profileUpdates, profileUpdate{ID: id, Name: name, Phone: phone, Address: address})
	return nil
}

func (r *fakeCustomerWriteRepo) UpdatePasswordHash(_ context.Context, id uuid.UUID, hash string) error {
	if r.updatedHashes == nil {
		r.updatedHashes = map[uuid.UUID]string{}
	}
	r.updatedHashes[id] = hash
	return nil
}

type fakeAdminRegistry struct {
	admins map[uuid.UUID]*commands.AdminSnapshot
}

func (r *fakeAdminRegistry) FindByEmail(_ context.Context, email string) (*commands.AdminSnapshot, error) {
	for _, a := range r.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, infra.WrapRepoErr("admin not found", nil, infra.KindNotFound)
}

func (r *fakeAdminRegistry) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := r.admins[id]
	return ok, nil
}

type fakeSession struct {
	accountID uuid.UUID
	role      identity.Role
}

type fakeSessionStore struct {
	sessions   map[string]fakeSession
	terminated []uuid.UUID
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]fakeSession{}}
}

func (s *fakeSessionStore) Create(_ context.Context, accountID uuid.UUID, role identity.Role) (string, error) {
	token := uuid.NewString()
	s.sessions[token] = fakeSession{accountID: accountID, role: role}
	return token, nil
}

func (s *fakeSessionStore) Get(_ context.Context, token string) (uuid.UUID, identity.Role, error) {
	sess, ok := s.sessions[token]
	if !ok {
		return uuid.Nil, "", infra.WrapRepoErr("session not found", nil, infra.KindNotFound)
	}
	return sess.accountID, sess.role, nil
}

func (s *fakeSessionStore) Delete(_ context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}

func (s *fakeSessionStore) Terminate(_ context.Context, accountID uuid.UUID) error {
	s.terminated = append(s.terminated, accountID)
	for token, sess := range s.sessions {
		if sess.accountID == accountID {
			delete(s.sessions, token)
		}
	}
	return nil
}

type authFixture struct {
	customers *fakeCustomerWriteRepo
	readStore *fakeCustomerReadStore
	admins    *fakeAdminRegistry
	sessions  *fakeSessionStore
	effects   *effectsRecorder
	cmds      commands.AuthCommands
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	f := &authFixture{
		customers: &fakeCustomerWriteRepo{},
		readStore: &fakeCustomerReadStore{
			customers: map[uuid.UUID]*queries.CustomerView{},
			hashes:    map[string]string{},
		},
		admins:    &fakeAdminRegistry{admins: map[uuid.UUID]*commands.AdminSnapshot{}},
		sessions:  newFakeSessionStore(),
		effects:   &effectsRecorder{},
	}
	f.cmds = commands.NewAuthCommands(
		f.customers, f.readStore, f.admins, f.sessions,
		jwt.NewService("unit-test-secret", 0), f.effects,
	)
	return f
}

func validRegistration() commands.RegisterCustomerRequest {
	return commands.RegisterCustomerRequest{
		Name:     "Asha Verma",
		Email:    "asha@example.com",
		Password: "secret1",
		Phone:    "9876543210",
		Address:  "12 Gandhi Road, Pune",
	}
}

func TestRegisterCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the account with the full yearly quota", func(t *testing.T) {
		f := newAuthFixture(t)

		id, err := f.cmds.RegisterCustomer(ctx, validRegistration())
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)

		require.Len(t, f.customers.created, 1)
		created := f.customers.created[0]
		assert.Equal(t, customer.DefaultAnnualQuota, created.Quota())
		assert.NotEqual(t, "secret1", created.PasswordHash())
		assert.NoError(t, password.ComparePassword(created.PasswordHash(), "secret1"))

		require.Len(t, f.effects.audits, 1)
		assert.Equal(t, audit.ActionCustomerRegistered, f.effects.audits[0].Action)
	})

	t.Run("short password is rejected", func(t *testing.T) {
		f := newAuthFixture(t)
		req := validRegistration()
		req.Password = "short"

		_, err := f.cmds.RegisterCustomer(ctx, req)
		assert.ErrorIs(t, err, identity.ErrPasswordTooWeak)
		assert.Empty(t, f.customers.created)
	})

	t.Run("duplicate email", func(t *testing.T) {
		f := newAuthFixture(t)
		f.customers.createErr = infra.WrapRepoErr("duplicate", nil, infra.KindDuplicateKey)

		_, err := f.cmds.RegisterCustomer(ctx, validRegistration())
		assert.ErrorIs(t, err, commands.ErrEmailTaken)
	})
}

func TestLoginCustomer(t *testing.T) {
	ctx := context.Background()

	seedCustomer := func(f *authFixture, pass string) *queries.CustomerView {
		hash, err := password.HashPassword(pass)
		if err != nil {
			panic(err)
		}
		view := &queries.CustomerView{ID: uuid.New(), Name: "Asha Verma", Email: "asha@example.com", Quota: customer.DefaultAnnualQuota}
		f.readStore.customers[view.ID] = view
		f.readStore.hashes[view.Email] = hash
		return view
	}

	t.Run("issues tokens on matching credentials", func(t *testing.T) {
		f := newAuthFixture(t)
		view := seedCustomer(f, "secret1")

		result, err := f.cmds.LoginCustomer(ctx, view.Email, "secret1")
		require.NoError(t, err)
		assert.Equal(t, view.ID, result.AccountID)
		assert.Equal(t, identity.RoleCustomer, result.Role)
		assert.NotEmpty(t, result.AccessToken)

		gotID, gotRole, err := f.sessions.Get(ctx, result.SessionToken)
		require.NoError(t, err)
		assert.Equal(t, view.ID, gotID)
		assert.Equal(t, identity.RoleCustomer, gotRole)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newAuthFixture(t)
		view := seedCustomer(f, "secret1")

		_, err := f.cmds.LoginCustomer(ctx, view.Email, "nope-nope")
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
		assert.Empty(t, f.sessions.sessions)
	})

	t.Run("unknown email", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.cmds.LoginCustomer(ctx, "nobody@example.com", "whatever")
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})
}

func TestLoginAdmin(t *testing.T) {
	ctx := context.Background()

	seedAdmin := func(f *authFixture, pass string) *commands.AdminSnapshot {
		hash, err := password.HashPassword(pass)
		if err != nil {
			panic(err)
		}
		admin := &commands.AdminSnapshot{ID: uuid.New(), Email: "owner@gas-agency.local", PasswordHash: hash}
		f.admins.admins[admin.ID] = admin
		return admin
	}

	t.Run("issues tokens for a registry member", func(t *testing.T) {
		f := newAuthFixture(t)
		admin := seedAdmin(f, "hunter22")

		result, err := f.cmds.LoginAdmin(ctx, admin.Email, "hunter22")
		require.NoError(t, err)
		assert.Equal(t, admin.ID, result.AccountID)
		assert.Equal(t, identity.RoleAdmin, result.Role)
		assert.NotEmpty(t, result.AccessToken)
		assert.NotEmpty(t, result.SessionToken)

		require.Len(t, f.effects.audits, 1)
		assert.Equal(t, audit.ActionLogin, f.effects.audits[0].Action)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newAuthFixture(t)
		admin := seedAdmin(f, "hunter22")

		_, err := f.cmds.LoginAdmin(ctx, admin.Email, "wrong-pass")
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.cmds.LoginAdmin(ctx, "nobody@gas-agency.local", "whatever")
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("rotates the session token", func(t *testing.T) {
		f := newAuthFixture(t)
		accountID := uuid.New()
		token, err := f.sessions.Create(ctx, accountID, identity.RoleCustomer)
		require.NoError(t, err)

		result, err := f.cmds.Refresh(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, accountID, result.AccountID)
		assert.NotEqual(t, token, result.SessionToken)

		// The old token no longer resolves.
		_, _, err = f.sessions.Get(ctx, token)
		assert.Error(t, err)
	})

	t.Run("revoked admin loses every session", func(t *testing.T) {
		f := newAuthFixture(t)
		ghostAdmin := uuid.New() // not in the registry
		token, err := f.sessions.Create(ctx, ghostAdmin, identity.RoleAdmin)
		require.NoError(t, err)

		_, err = f.cmds.Refresh(ctx, token)
		assert.ErrorIs(t, err, commands.ErrNotAnAdmin)
		assert.Contains(t, f.sessions.terminated, ghostAdmin)
		assert.Empty(t, f.sessions.sessions)
	})

	t.Run("expired session", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.cmds.Refresh(ctx, "gone")
		assert.ErrorIs(t, err, commands.ErrSessionExpired)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the session and audits", func(t *testing.T) {
		f := newAuthFixture(t)
		accountID := uuid.New()
		token, err := f.sessions.Create(ctx, accountID, identity.RoleCustomer)
		require.NoError(t, err)

		require.NoError(t, f.cmds.Logout(ctx, token))
		assert.Empty(t, f.sessions.sessions)

		require.Len(t, f.effects.audits, 1)
		assert.Equal(t, audit.ActionLogout, f.effects.audits[0].Action)
	})

	t.Run("idempotent on unknown token", func(t *testing.T) {
		f := newAuthFixture(t)
		assert.NoError(t, f.cmds.Logout(ctx, "gone"))
		assert.Empty(t, f.effects.audits)
	})
}
