// Package session owns the single current-authenticated-user value and its
// durable persistence. The store is constructed once at startup and passed
// to whoever needs it; nothing else may write the persisted user.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/greenvalley/community/internal/client/models"
	"github.com/greenvalley/community/internal/client/storage"
	"github.com/greenvalley/community/internal/logging"
)

// userKey is the sole durable-storage key the store writes.
const userKey = "user"

// Store keeps the in-memory current user in sync with durable storage.
// The zero state before Load is "unknown", distinguishable from "known
// absent" via Loaded.
type Store struct {
	mu      sync.Mutex
	kv      storage.KV
	log     logging.Logger
	loaded  bool
	current *models.User
	subs    []func(*models.User)
}

func New(kv storage.KV, log logging.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// Load rehydrates the persisted user. It runs once per process; repeat
// calls are no-ops. A read or parse fault degrades to "absent" rather than
// failing the caller.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return
	}
	s.loaded = true

	raw, err := s.kv.Get(ctx, userKey)
	if err != nil {
		s.log.Warn(ctx, "failed to read persisted user, treating as absent", "error", err.Error())
		return
	}
	if raw == nil {
		return
	}

	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		s.log.Warn(ctx, "persisted user is malformed, treating as absent", "error", err.Error())
		return
	}
	s.current = &u
}

// Set persists the user (nil means absent) and then updates the in-memory
// value. The durable write or delete completes before Set returns; on a
// storage fault the in-memory value is left untouched and the error is
// returned.
func (s *Store) Set(ctx context.Context, u *models.User) error {
	s.mu.Lock()

	if u == nil {
		if err := s.kv.Delete(ctx, userKey); err != nil {
			s.mu.Unlock()
			return fmt.Errorf("failed to clear persisted user: %w", err)
		}
	} else {
		raw, err := json.Marshal(u)
		if err != nil {
			s.mu.Unlock()
			return fmt.Errorf("failed to encode user: %w", err)
		}
		if err := s.kv.Set(ctx, userKey, raw); err != nil {
			s.mu.Unlock()
			return fmt.Errorf("failed to persist user: %w", err)
		}
	}

	if u != nil {
		cp := *u
		s.current = &cp
	} else {
		s.current = nil
	}
	s.loaded = true
	subs := append([]func(*models.User){}, s.subs...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(s.Current())
	}
	return nil
}

// Logout clears the session. Calling it while already logged out is a no-op.
func (s *Store) Logout(ctx context.Context) error {
	return s.Set(ctx, nil)
}

// Current returns a copy of the current user, or nil when absent (or not
// yet loaded). Callers must not assume the returned record is shared.
func (s *Store) Current() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	cp := *s.current
	return &cp
}

// Loaded reports whether Load (or a Set) has settled the session state.
func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Subscribe registers fn to run after every settled change. Callbacks get
// their own copy of the user (nil on logout).
func (s *Store) Subscribe(fn func(*models.User)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}
