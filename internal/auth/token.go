package auth

import (
	"sync"
	"time"

	"github.com/gronnmann/fiken-go/internal/constants"
)

// Token represents an OAuth2 token response.
type Token struct {
	AccessToken  string    `json:"access_token"`
	TokenType    string    `json:"token_type"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ExpiresIn    int       `json:"expires_in,omitempty"`
	Scope        string    `json:"scope,omitempty"`
	ExpiresAt    time.Time `json:"-"`
}

// Valid reports whether the token can still be sent. A token is invalid
// once it is within the refresh buffer of its expiry, so refresh happens
// before the server starts rejecting it.
func (t *Token) Valid() bool {
	if t == nil || t.AccessToken == "" {
		return false
	}

	if t.ExpiresAt.IsZero() {
		return true
	}

	return time.Now().Add(constants.TokenRefreshBuffer).Before(t.ExpiresAt)
}

// TokenStore provides thread-safe token storage.
type TokenStore struct {
	mu    sync.RWMutex
	token *Token
}

// NewTokenStore creates a new token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Get returns the stored token, or nil.
func (s *TokenStore) Get() *Token {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// Set stores a token.
func (s *TokenStore) Set(token *Token) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
}

// Clear removes the stored token.
func (s *TokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = nil
}

// ClearIf removes the stored token only if its access token still equals
// accessToken. It reports whether the store held that token (and so whether
// the caller observed a stale rejection or a genuinely dead credential).
func (s *TokenStore) ClearIf(accessToken string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == nil || s.token.AccessToken != accessToken {
		return false
	}

	s.token = nil

	return true
}
