package session

import (
	"context"
	"encoding/json"
	"time"

	"gas-agency/internal/domain/identity"
	"gas-agency/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrSessionNotFound = errs.New("session not found or expired")

const (
	sessionKeyPrefix = "session:"
	accountKeyPrefix = "account_sessions:"
)

// Store keeps refresh sessions in Redis. Terminating an account removes every
// session it holds, which is how a revoked admin loses access mid-session.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

type sessionPayload struct {
	AccountID uuid.UUID     `json:"account_id"`
	Role      identity.Role `json:"role"`
}

func (s *Store) Create(ctx context.Context, accountID uuid.UUID, role identity.Role) (string, error) {
	token := uuid.NewString()

	payload, err := json.Marshal(sessionPayload{AccountID: accountID, Role: role})
	if err != nil {
		return "", errs.Wrap(err, "failed to encode session")
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, sessionKeyPrefix+token, payload, s.ttl)
	pipe.SAdd(ctx, accountKeyPrefix+accountID.String(), token)
	pipe.Expire(ctx, accountKeyPrefix+accountID.String(), s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", errs.Wrap(err, "failed to store session")
	}

	return token, nil
}

func (s *Store) Get(ctx context.Context, token string) (uuid.UUID, identity.Role, error) {
	payload, err := s.client.Get(ctx, sessionKeyPrefix+token).Bytes()
	if err != nil {
		if err == redis.Nil {
			return uuid.Nil, "", ErrSessionNotFound
		}
		return uuid.Nil, "", errs.Wrap(err, "failed to load session")
	}

	var sess sessionPayload
	if err := json.Unmarshal(payload, &sess); err != nil {
		return uuid.Nil, "", errs.Wrap(err, "failed to decode session")
	}

	return sess.AccountID, sess.Role, nil
}

func (s *Store) Delete(ctx context.Context, token string) error {
	accountID, _, err := s.Get(ctx, token)
	if err != nil {
		if errs.Is(err, ErrSessionNotFound) {
			return nil
		}
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, sessionKeyPrefix+token)
	pipe.SRem(ctx, accountKeyPrefix+accountID.String(), token)
	if _, err := pipe.Exec(ctx); err != nil {
		return errs.Wrap(err, "failed to delete session")
	}

	return nil
}

// Terminate drops every session the account holds.
func (s *Store) Terminate(ctx context.Context, accountID uuid.UUID) error {
	accountKey := accountKeyPrefix + accountID.String()

	tokens, err := s.client.SMembers(ctx, accountKey).Result()
	if err != nil {
		return errs.Wrap(err, "failed to list account sessions")
	}

	pipe := s.client.TxPipeline()
	for _, token := range tokens {
		pipe.Del(ctx, sessionKeyPrefix+token)
	}
	pipe.Del(ctx, accountKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return errs.Wrap(err, "failed to terminate account sessions")
	}

	return nil
}
