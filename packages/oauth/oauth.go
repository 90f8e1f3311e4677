// Package oauth holds the pieces a caller needs to thread user tokens into a
// bungie.Client. The authorization code flow itself is not implemented.
package oauth

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrNotImplemented = errors.New("oauth: authorization flow not implemented")

type Token struct {
	AccessToken  string
	RefreshToken string
	Expiry       time.Time
}

// Valid reports whether the access token is present and not yet expired.
func (t Token) Valid() bool {
	return t.AccessToken != "" && (t.Expiry.IsZero() || time.Now().Before(t.Expiry))
}

type TokenStore interface {
	AccessToken(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) (string, error)
	Save(ctx context.Context, token Token) error
}

// MemoryStore is a TokenStore that lives only as long as the process.
type MemoryStore struct {
	mu    sync.RWMutex
	token Token
}

var ErrNoToken = errors.New("oauth: no valid token")

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) AccessToken(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.token.Valid() {
		return "", ErrNoToken
	}
	return s.token.AccessToken, nil
}

func (s *MemoryStore) RefreshToken(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token.RefreshToken == "" {
		return "", ErrNoToken
	}
	return s.token.RefreshToken, nil
}

func (s *MemoryStore) Save(ctx context.Context, token Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

// Authorize would exchange an authorization code for a token and save it.
func Authorize(ctx context.Context, store TokenStore, clientId string, code string) error {
	return ErrNotImplemented
}
