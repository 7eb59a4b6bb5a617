package auth

import (
	"context"
	"time"
)

// TokenManager provides access tokens for API requests.
type TokenManager interface {
	// GetToken returns a valid access token, refreshing it if necessary.
	GetToken(ctx context.Context) (string, error)

	// Invalidate marks accessToken as rejected by the API. It reports
	// whether a subsequent GetToken can yield a different token, i.e.
	// whether the caller should retry the failed request.
	Invalidate(accessToken string) bool

	// SetToken manually sets the access token.
	SetToken(token string, expiresAt time.Time)
}

// StaticTokenManager serves a fixed personal API token. It never refreshes.
type StaticTokenManager struct {
	store *TokenStore
}

// NewStaticTokenManager creates a token manager around a personal API token.
func NewStaticTokenManager(apiToken string) *StaticTokenManager {
	store := NewTokenStore()
	store.Set(&Token{
		AccessToken: apiToken,
		TokenType:   "bearer",
	})

	return &StaticTokenManager{store: store}
}

// GetToken returns the configured token.
func (m *StaticTokenManager) GetToken(_ context.Context) (string, error) {
	token := m.store.Get()
	if token == nil || token.AccessToken == "" {
		return "", ErrNoToken
	}

	return token.AccessToken, nil
}

// Invalidate is a no-op for static tokens; a rejected personal token stays
// rejected, so retrying cannot help.
func (m *StaticTokenManager) Invalidate(_ string) bool {
	return false
}

// SetToken replaces the stored token.
func (m *StaticTokenManager) SetToken(token string, expiresAt time.Time) {
	m.store.Set(&Token{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
	})
}
