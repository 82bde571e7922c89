// Package credentials holds the session's tokens and role.
package credentials

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/oauth2"
)

// Snapshot is a point-in-time copy of the store.
type Snapshot struct {
	AccessToken  string
	RefreshToken string
	Expiry       time.Time
	ResetToken   string
	Role         string
}

// Store is the process-wide credential holder shared by the auth client and
// the request executor. The zero value is an empty, usable store.
type Store struct {
	mu         sync.RWMutex
	token      oauth2.Token
	resetToken string
	role       string
	version    uint64
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// Token returns a copy of the current access/refresh pair.
func (s *Store) Token() oauth2.Token {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetTokens replaces the access and refresh tokens together.
func (s *Store) SetTokens(access, refresh string, expiry time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = oauth2.Token{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		Expiry:       expiry,
	}
	s.version++
}

// Role returns the role read from the access token at login.
func (s *Store) Role() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.role
}

// SetRole sets the user role.
func (s *Store) SetRole(role string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.role = role
	s.version++
}

// ResetToken returns the password-reset token issued by forgot-password.
func (s *Store) ResetToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resetToken
}

// SetResetToken sets the password-reset token.
func (s *Store) SetResetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetToken = token
	s.version++
}

// Snapshot returns all fields under a single read lock.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		AccessToken:  s.token.AccessToken,
		RefreshToken: s.token.RefreshToken,
		Expiry:       s.token.Expiry,
		ResetToken:   s.resetToken,
		Role:         s.role,
	}
}

// Version increases on every mutation.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// LoggedIn reports whether an access token is present.
func (s *Store) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token.AccessToken != ""
}

// fileFormat is the on-disk layout of the credentials file.
type fileFormat struct {
	Token      *oauth2.Token `json:"token,omitempty"`
	ResetToken string        `json:"reset_token,omitempty"`
	Role       string        `json:"role,omitempty"`
}

// Load reads a store from path. A missing file yields an empty store.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials: %w", err)
	}

	var f fileFormat
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("invalid credentials file: %w", err)
	}

	s := &Store{resetToken: f.ResetToken, role: f.Role}
	if f.Token != nil {
		s.token = *f.Token
	}
	return s, nil
}

// Save writes the store to path with mode 0600.
func (s *Store) Save(path string) error {
	s.mu.RLock()
	tok := s.token
	f := fileFormat{ResetToken: s.resetToken, Role: s.role}
	s.mu.RUnlock()

	if tok.AccessToken != "" || tok.RefreshToken != "" {
		f.Token = &tok
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
