// Package session implements the session service: the single place the
// authenticated identity record is written, read and cleared. Pages
// never read ambient state directly; they go through the identity
// middleware, which consults this store.
package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/parkeasy/parking-reservation-client/internal/model"
)

// keyPrefix namespaces session records in Redis. Each record is the
// JSON form of model.User stored under one well-known key per session.
const keyPrefix = "session:user:"

// Store persists identity records in Redis. When constructed without a
// Redis client it degrades to an in-process map, so the gateway stays
// usable (single instance, sessions lost on restart) if Redis is down
// at startup. Records carry no TTL: a session lives until logout
// clears it.
type Store struct {
	rdb *redis.Client

	mu  sync.RWMutex
	mem map[string]model.User
}

// NewStore returns a Store backed by rdb, or by process memory when
// rdb is nil.
func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb, mem: make(map[string]model.User)}
}

// Save writes the identity record and returns the new session id.
func (s *Store) Save(ctx context.Context, u model.User) (string, error) {
	sid := uuid.NewString()
	if s.rdb == nil {
		s.mu.Lock()
		s.mem[sid] = u
		s.mu.Unlock()
		return sid, nil
	}
	buf, err := json.Marshal(u)
	if err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, keyPrefix+sid, buf, 0).Err(); err != nil {
		return "", err
	}
	return sid, nil
}

// Load reads the identity record for a session id. The second return
// is false when no record exists; absence means unauthenticated.
func (s *Store) Load(ctx context.Context, sid string) (model.User, bool) {
	if sid == "" {
		return model.User{}, false
	}
	if s.rdb == nil {
		s.mu.RLock()
		u, ok := s.mem[sid]
		s.mu.RUnlock()
		return u, ok
	}
	raw, err := s.rdb.Get(ctx, keyPrefix+sid).Bytes()
	if err != nil {
		return model.User{}, false
	}
	var u model.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return model.User{}, false
	}
	return u, true
}

// Clear removes the identity record. Clearing an unknown session id is
// not an error.
func (s *Store) Clear(ctx context.Context, sid string) error {
	if sid == "" {
		return nil
	}
	if s.rdb == nil {
		s.mu.Lock()
		delete(s.mem, sid)
		s.mu.Unlock()
		return nil
	}
	return s.rdb.Del(ctx, keyPrefix+sid).Err()
}
