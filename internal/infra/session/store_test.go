//go:build unit

package session_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"gas-agency/internal/domain/identity"
	"gas-agency/internal/infra/session"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sessionTTL = time.Hour

func encodePayload(t *testing.T, accountID uuid.UUID, role identity.Role) string {
	t.Helper()
	payload, err := json.Marshal(map[string]any{"account_id": accountID, "role": role})
	require.NoError(t, err)
	return string(payload)
}

func TestStoreCreate(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := session.NewStore(client, sessionTTL)
	accountID := uuid.New()

	mock.ExpectTxPipeline()
	mock.Regexp().ExpectSet(`session:.+`, `\{.+\}`, sessionTTL).SetVal("OK")
	mock.Regexp().ExpectSAdd("account_sessions:"+accountID.String(), `.+`).SetVal(1)
	mock.ExpectExpire("account_sessions:"+accountID.String(), sessionTTL).SetVal(true)
	mock.ExpectTxPipelineExec()

	token, err := store.Create(context.Background(), accountID, identity.RoleCustomer)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreGet(t *testing.T) {
	t.Run("resolves a live session", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		store := session.NewStore(client, sessionTTL)
		accountID := uuid.New()

		mock.ExpectGet("session:tok-1").SetVal(encodePayload(t, accountID, identity.RoleAdmin))

		gotID, gotRole, err := store.Get(context.Background(), "tok-1")
		require.NoError(t, err)
		assert.Equal(t, accountID, gotID)
		assert.Equal(t, identity.RoleAdmin, gotRole)
	})

	t.Run("missing key means expired", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		store := session.NewStore(client, sessionTTL)

		mock.ExpectGet("session:gone").RedisNil()

		_, _, err := store.Get(context.Background(), "gone")
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})
}

func TestStoreDelete(t *testing.T) {
	t.Run("removes the session and its account index entry", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		store := session.NewStore(client, sessionTTL)
		accountID := uuid.New()

		mock.ExpectGet("session:tok-1").SetVal(encodePayload(t, accountID, identity.RoleCustomer))
		mock.ExpectTxPipeline()
		mock.ExpectDel("session:tok-1").SetVal(1)
		mock.ExpectSRem("account_sessions:"+accountID.String(), "tok-1").SetVal(1)
		mock.ExpectTxPipelineExec()

		require.NoError(t, store.Delete(context.Background(), "tok-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("deleting an expired session is a no-op", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		store := session.NewStore(client, sessionTTL)

		mock.ExpectGet("session:gone").RedisNil()

		assert.NoError(t, store.Delete(context.Background(), "gone"))
	})
}

func TestStoreTerminate(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := session.NewStore(client, sessionTTL)
	accountID := uuid.New()
	accountKey := "account_sessions:" + accountID.String()

	mock.ExpectSMembers(accountKey).SetVal([]string{"tok-1", "tok-2"})
	mock.ExpectTxPipeline()
	mock.ExpectDel("session:tok-1").SetVal(1)
	mock.ExpectDel("session:tok-2").SetVal(1)
	mock.ExpectDel(accountKey).SetVal(1)
	mock.ExpectTxPipelineExec()

	require.NoError(t, store.Terminate(context.Background(), accountID))
	assert.NoError(t, mock.ExpectationsWereMet())
}
