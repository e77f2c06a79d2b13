//go:build unit

package commands_test

import (
	"context"
	"testing"

	"gas-agency/internal/domain/audit"
	"gas-agency/internal/domain/customer"
	"gas-agency/internal/domain/identity"
	"gas-agency/internal/pkg/password"
	"gas-agency/internal/usecase/commands"
	"gas-agency/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profileFixture struct {
	customers *fakeCustomerWriteRepo
	readStore *fakeCustomerReadStore
	effects   *effectsRecorder
	cmds      commands.ProfileCommands
	id        uuid.UUID
}

func newProfileFixture(t *testing.T) *profileFixture {
	t.Helper()
	f := &profileFixture{
		customers: &fakeCustomerWriteRepo{},
		readStore: &fakeCustomerReadStore{
			customers: map[uuid.UUID]*queries.CustomerView{},
			hashes:    map[string]string{},
		},
		effects: &effectsRecorder{},
		id:      uuid.New(),
	}
	f.readStore.customers[f.id] = &queries.CustomerView{
		ID:      f.id,
		Name:    "Asha Verma",
		Email:   "asha@example.com",
		Phone:   "9876543210",
		Address: "12 Gandhi Road, Pune",
		Quota:   customer.DefaultAnnualQuota,
	}
	f.cmds = commands.NewProfileCommands(f.customers, f.readStore, f.effects)
	return f
}

func strPtr(s string) *string { return &s }

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("omitted fields keep their current values", func(t *testing.T) {
		f := newProfileFixture(t)

		err := f.cmds.UpdateProfile(ctx, f.id, commands.UpdateProfileRequest{
			Phone: strPtr("9123456780"),
		})
		require.NoError(t, err)

		require.Len(t, f.customers.profileUpdates, 1)
		want := profileUpdate{
			ID:      f.id,
			Name:    "Asha Verma",
			Phone:   "9123456780",
			Address: "12 Gandhi Road, Pune",
		}
		if diff := cmp.Diff(want, f.customers.profileUpdates[0]); diff != "" {
			t.Errorf("unexpected profile update (-want +got):\n%s", diff)
		}

		require.Len(t, f.effects.audits, 1)
		assert.Equal(t, audit.ActionProfileUpdated, f.effects.audits[0].Action)
	})

	t.Run("all fields replaceable at once", func(t *testing.T) {
		f := newProfileFixture(t)

		err := f.cmds.UpdateProfile(ctx, f.id, commands.UpdateProfileRequest{
			Name:    strPtr("Asha V"),
			Phone:   strPtr("9123456780"),
			Address: strPtr("4 Nehru Street, Mumbai"),
		})
		require.NoError(t, err)

		require.Len(t, f.customers.profileUpdates, 1)
		want := profileUpdate{
			ID:      f.id,
			Name:    "Asha V",
			Phone:   "9123456780",
			Address: "4 Nehru Street, Mumbai",
		}
		if diff := cmp.Diff(want, f.customers.profileUpdates[0]); diff != "" {
			t.Errorf("unexpected profile update (-want +got):\n%s", diff)
		}
	})

	t.Run("invalid replacement value writes nothing", func(t *testing.T) {
		f := newProfileFixture(t)

		err := f.cmds.UpdateProfile(ctx, f.id, commands.UpdateProfileRequest{
			Name: strPtr(""),
		})
		assert.ErrorIs(t, err, customer.ErrEmptyName)
		assert.Empty(t, f.customers.profileUpdates)
		assert.Empty(t, f.effects.audits)
	})

	t.Run("unknown customer", func(t *testing.T) {
		f := newProfileFixture(t)

		err := f.cmds.UpdateProfile(ctx, uuid.New(), commands.UpdateProfileRequest{Phone: strPtr("9123456780")})
		assert.ErrorIs(t, err, commands.ErrCustomerNotFoundWrite)
	})
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()

	withPassword := func(f *profileFixture, pass string) {
		hash, err := password.HashPassword(pass)
		if err != nil {
			panic(err)
		}
		f.readStore.hashes["asha@example.com"] = hash
	}

	t.Run("stores a hash of the new password", func(t *testing.T) {
		f := newProfileFixture(t)
		withPassword(f, "secret1")

		err := f.cmds.ChangePassword(ctx, f.id, "secret1", "secret2")
		require.NoError(t, err)

		newHash, ok := f.customers.updatedHashes[f.id]
		require.True(t, ok)
		assert.NoError(t, password.ComparePassword(newHash, "secret2"))

		require.Len(t, f.effects.audits, 1)
		assert.Equal(t, audit.ActionPasswordChanged, f.effects.audits[0].Action)
	})

	t.Run("wrong current password", func(t *testing.T) {
		f := newProfileFixture(t)
		withPassword(f, "secret1")

		err := f.cmds.ChangePassword(ctx, f.id, "not-the-one", "secret2")
		assert.ErrorIs(t, err, commands.ErrWrongPassword)
		assert.Empty(t, f.customers.updatedHashes)
	})

	t.Run("weak new password is rejected", func(t *testing.T) {
		f := newProfileFixture(t)
		withPassword(f, "secret1")

		err := f.cmds.ChangePassword(ctx, f.id, "secret1", "short")
		assert.ErrorIs(t, err, identity.ErrPasswordTooWeak)
		assert.Empty(t, f.customers.updatedHashes)
	})
}
