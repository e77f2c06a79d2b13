//go:build unit

package commands_test

import (
	"context"
	"testing"

	"gas-agency/internal/domain/audit"
	domnotice "gas-agency/internal/domain/notice"
	"gas-agency/internal/infra"
	"gas-agency/internal/usecase/commands"
	"gas-agency/internal/usecase/queries"
	"gas-agency/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNoticeRepo struct {
	inserted  []*domnotice.Notice
	insertErr error
}

func (r *fakeNoticeRepo) Insert(_ context.Context, n *domnotice.Notice) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, n)
	return nil
}

type fakeCustomerReadStore struct {
	customers map[uuid.UUID]*queries.CustomerView
	hashes    map[string]string
}

func (r *fakeCustomerReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.CustomerView, error) {
	view, ok := r.customers[id]
	if !ok {
		return nil, infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return view, nil
}

func (r *fakeCustomerReadStore) FindByEmail(_ context.Context, email string) (*queries.CustomerView, string, error) {
	for _, view := range r.customers {
		if view.Email == email {
			return view, r.hashes[email], nil
		}
	}
	return nil, "", infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
}

func (r *fakeCustomerReadStore) ListAll(_ context.Context) ([]*queries.CustomerView, error) {
	views := make([]*queries.CustomerView, 0, len(r.customers))
	for _, view := range r.customers {
		views = append(views, view)
	}
	return views, nil
}

func TestPostNotice(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()

	newFixture := func() (*fakeNoticeRepo, *fakeCustomerReadStore, *effectsRecorder, commands.NoticeCommands) {
		repo := &fakeNoticeRepo{}
		customers := &fakeCustomerReadStore{customers: map[uuid.UUID]*queries.CustomerView{}}
		effects := &effectsRecorder{}
		cmds := commands.NewNoticeCommands(repo, customers, effects)
		return repo, customers, effects, cmds
	}

	t.Run("posts a global notice", func(t *testing.T) {
		repo, _, effects, cmds := newFixture()

		noticeID, err := cmds.Post(ctx, adminID, commands.PostNoticeRequest{
			Message:    "Delivery delayed due to transport strike.",
			TargetType: "global",
		})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, noticeID)

		require.Len(t, repo.inserted, 1)
		assert.True(t, repo.inserted[0].IsGlobal())

		// Global notices do not email anyone.
		assert.Empty(t, effects.emails)
		require.Len(t, effects.audits, 1)
		assert.Equal(t, audit.ActionNoticePosted, effects.audits[0].Action)
	})

	t.Run("posts a specific notice and emails the target", func(t *testing.T) {
		repo, customers, effects, cmds := newFixture()
		target := builder.NewCustomerBuilder().BuildView()
		customers.customers[target.ID] = target

		_, err := cmds.Post(ctx, adminID, commands.PostNoticeRequest{
			Message:          "Your refill is ready for pickup.",
			TargetType:       "specific",
			TargetCustomerID: &target.ID,
		})
		require.NoError(t, err)

		require.Len(t, repo.inserted, 1)
		require.NotNil(t, repo.inserted[0].TargetCustomerID())
		assert.Equal(t, target.ID, *repo.inserted[0].TargetCustomerID())

		require.Len(t, effects.emails, 1)
		assert.Equal(t, target.Email, effects.emails[0].To)
	})

	t.Run("specific notice without target writes nothing", func(t *testing.T) {
		repo, _, effects, cmds := newFixture()

		_, err := cmds.Post(ctx, adminID, commands.PostNoticeRequest{
			Message:    "hello",
			TargetType: "specific",
		})
		assert.ErrorIs(t, err, domnotice.ErrMissingTarget)
		assert.Empty(t, repo.inserted)
		assert.Empty(t, effects.emails)
		assert.Empty(t, effects.audits)
	})

	t.Run("unknown target customer writes nothing", func(t *testing.T) {
		repo, _, effects, cmds := newFixture()
		unknown := uuid.New()

		_, err := cmds.Post(ctx, adminID, commands.PostNoticeRequest{
			Message:          "hello",
			TargetType:       "specific",
			TargetCustomerID: &unknown,
		})
		assert.ErrorIs(t, err, commands.ErrNoticeTargetNotFound)
		assert.Empty(t, repo.inserted)
		assert.Empty(t, effects.audits)
	})

	t.Run("invalid target type", func(t *testing.T) {
		repo, _, _, cmds := newFixture()

		_, err := cmds.Post(ctx, adminID, commands.PostNoticeRequest{
			Message:    "hello",
			TargetType: "broadcast",
		})
		assert.ErrorIs(t, err, domnotice.ErrInvalidTargetType)
		assert.Empty(t, repo.inserted)
	})
}
