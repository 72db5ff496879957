package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrInvalidState = errors.New("invalid oauth state")

const stateTTL = 10 * time.Minute

// StateStore issues and verifies the one-time state nonce of the OAuth
// authorization-code flow.
type StateStore interface {
	Issue(ctx context.Context) (string, error)
	Verify(ctx context.Context, state string) error
}

type redisStateStore struct {
	client *redis.Client
}

func NewRedisStateStore(client *redis.Client) StateStore {
	return &redisStateStore{client: client}
}

func (s *redisStateStore) Issue(ctx context.Context) (string, error) {
	state, err := randomToken()
	if err != nil {
		return "", err
	}

	if err := s.client.Set(ctx, "oauth_state:"+state, "1", stateTTL).Err(); err != nil {
		return "", err
	}

	return state, nil
}

func (s *redisStateStore) Verify(ctx context.Context, state string) error {
	if state == "" {
		return ErrInvalidState
	}

	// GetDel makes the nonce single-use.
	if err := s.client.GetDel(ctx, "oauth_state:"+state).Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrInvalidState
		}
		return err
	}

	return nil
}

// staticStateStore is the fallback when no Redis is configured: one random
// per-process value, not single-use.
type staticStateStore struct {
	state string
}

func NewStaticStateStore() (StateStore, error) {
	state, err := randomToken()
	if err != nil {
		return nil, err
	}
	return &staticStateStore{state: state}, nil
}

func (s *staticStateStore) Issue(ctx context.Context) (string, error) {
	return s.state, nil
}

func (s *staticStateStore) Verify(ctx context.Context, state string) error {
	if state != s.state {
		return ErrInvalidState
	}
	return nil
}

func randomToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
