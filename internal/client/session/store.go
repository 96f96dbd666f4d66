// Package session holds the client's current authenticated-user/token pair
// and persists it across runs. The store is created once at startup and
// injected into everything that needs it; there is no package-level state.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/tablekeeper/internal/client/models"
	"github.com/dmitrijs2005/tablekeeper/internal/common"
)

// persisted is the on-disk schema. It mirrors the backend-agnostic shape
// {state:{user,token},version} under the fixed storage key.
type persisted struct {
	State struct {
		User  *models.User `json:"user"`
		Token *string      `json:"token"`
	} `json:"state"`
	Version int `json:"version"`
}

// Store owns the session. All reads and writes go through the mutex so an
// outgoing request can never observe a token mid-clear.
type Store struct {
	mu    sync.RWMutex
	path  string
	user  *models.User
	token string
}

// NewStore creates a store persisting under dir and hydrates it from a
// previous run. Absent or malformed persisted data yields an empty session,
// never an error.
func NewStore(dir string) *Store {
	s := &Store{path: filepath.Join(dir, common.SessionStorageKey+".json")}
	s.hydrate()
	return s
}

func (s *Store) hydrate() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var p persisted
	if err := json.Unmarshal(data, &p); err != nil {
		return
	}
	s.user = p.State.User
	if p.State.Token != nil {
		s.token = *p.State.Token
	}
}

// SetAuth replaces both session fields atomically, then persists.
func (s *Store) SetAuth(user *models.User, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.token = token
	return s.persist()
}

// Logout clears both fields, then persists the cleared state under the same
// key.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.token = ""
	return s.persist()
}

// persist writes the current state; callers must hold the write lock.
func (s *Store) persist() error {
	var p persisted
	p.Version = common.SessionStorageVersion
	p.State.User = s.user
	if s.token != "" {
		t := s.token
		p.State.Token = &t
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Token returns the current bearer token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the current user snapshot, or nil when logged out.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// LoggedIn reports whether the store holds a token.
func (s *Store) LoggedIn() bool {
	return s.Token() != ""
}

// ExpiresAt reads the exp claim from the bearer token without verifying the
// signature. Verification is the server's job; the client only wants to warn
// before a request is certain to be rejected. The zero time is returned when
// there is no token or no exp claim.
func (s *Store) ExpiresAt() time.Time {
	token := s.Token()
	if token == "" {
		return time.Time{}
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// Expired reports whether the token carries an exp claim in the past.
func (s *Store) Expired() bool {
	exp := s.ExpiresAt()
	return !exp.IsZero() && exp.Before(time.Now())
}
