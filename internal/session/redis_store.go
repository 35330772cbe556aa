package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Tharusha999/isdn-sub001/internal/auth"

	"github.com/redis/go-redis/v9"
)

// Hash fields per session key. authUser, profileName and userRole are
// the recognized client-state keys; a hash missing any of them is a
// partial write and reads back as no session.
const (
	fieldAuthUser    = "authUser"
	fieldProfileName = "profileName"
	fieldUserRole    = "userRole"
	fieldCreatedAt   = "createdAt"
	fieldExpiresAt   = "expiresAt"
)

type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "session:",
	}
}

func (r *RedisStore) key(sessionID string) string {
	return r.prefix + sessionID
}

func (r *RedisStore) Create(ctx context.Context, s Session) error {
	if s.SessionID == "" || !s.Identity.Complete() {
		return fmt.Errorf("session: refusing to persist partial session")
	}

	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session: expires_at must be in the future")
	}

	identityJSON, err := json.Marshal(s.Identity)
	if err != nil {
		return fmt.Errorf("session: failed to marshal identity: %w", err)
	}

	key := r.key(s.SessionID)

	// Single pipeline so a reader never observes the hash without
	// all recognized fields.
	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, key, map[string]any{
		fieldAuthUser:    string(identityJSON),
		fieldProfileName: s.Identity.FullName,
		fieldUserRole:    string(s.Identity.Role),
		fieldCreatedAt:   s.CreatedAt.UTC().Format(time.RFC3339Nano),
		fieldExpiresAt:   s.ExpiresAt.UTC().Format(time.RFC3339Nano),
	})
	pipe.Expire(ctx, key, ttl)

	_, err = pipe.Exec(ctx)
	return err
}

func (r *RedisStore) Get(ctx context.Context, sessionID string) (*Session, error) {
	vals, err := r.client.HGetAll(ctx, r.key(sessionID)).Result()
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, nil // not found
	}

	rawUser, okUser := vals[fieldAuthUser]
	_, okName := vals[fieldProfileName]
	_, okRole := vals[fieldUserRole]
	if !okUser || !okName || !okRole {
		return nil, nil // partial write, treat as absent
	}

	var identity auth.Identity
	if err := json.Unmarshal([]byte(rawUser), &identity); err != nil {
		return nil, nil
	}
	if !identity.Complete() {
		return nil, nil
	}

	s := Session{
		SessionID: sessionID,
		Identity:  identity,
	}

	if t, err := time.Parse(time.RFC3339Nano, vals[fieldCreatedAt]); err == nil {
		s.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339Nano, vals[fieldExpiresAt]); err == nil {
		s.ExpiresAt = t
	}

	if !s.Valid(time.Now()) {
		return nil, nil
	}

	return &s, nil
}

func (r *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, r.key(sessionID)).Err()
}
