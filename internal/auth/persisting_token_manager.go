package auth

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"
)

// Static errors for err113 compliance.
var (
	ErrNoCredentialsPersister = errors.New("no credentials persister configured")
)

// CredentialsPersister saves rotated tokens so they survive process
// restarts. Fiken rotates the refresh token on every refresh, which makes
// losing it fatal for long-lived credentials.
type CredentialsPersister interface {
	UpdateTokens(accessToken, refreshToken string, expiresAt time.Time) error
}

// PersistingTokenManager wraps OAuth2TokenManager and writes rotated tokens
// back through a CredentialsPersister.
type PersistingTokenManager struct {
	oauth2Manager *OAuth2TokenManager
	persister     CredentialsPersister

	mu            sync.Mutex
	lastPersisted string
}

// NewPersistingTokenManager creates a persisting token manager.
func NewPersistingTokenManager(config *OAuth2Config, persister CredentialsPersister) *PersistingTokenManager {
	return &PersistingTokenManager{
		oauth2Manager: NewOAuth2TokenManager(config),
		persister:     persister,
		lastPersisted: config.AccessToken,
	}
}

// GetToken returns a valid access token, refreshing and persisting if
// necessary.
func (m *PersistingTokenManager) GetToken(ctx context.Context) (string, error) {
	accessToken, err := m.oauth2Manager.GetToken(ctx)
	if err != nil {
		return "", err
	}

	m.persistIfRotated()

	return accessToken, nil
}

// Invalidate delegates to the wrapped manager.
func (m *PersistingTokenManager) Invalidate(accessToken string) bool {
	return m.oauth2Manager.Invalidate(accessToken)
}

// SetToken manually sets the access token.
func (m *PersistingTokenManager) SetToken(token string, expiresAt time.Time) {
	m.oauth2Manager.SetToken(token, expiresAt)
}

// RefreshToken forces a refresh and persists the result.
func (m *PersistingTokenManager) RefreshToken(ctx context.Context) error {
	if err := m.oauth2Manager.RefreshToken(ctx); err != nil {
		return err
	}

	m.persistIfRotated()

	return nil
}

// persistIfRotated writes the stored token through the persister when it
// differs from the last persisted one. Persist failures are reported on
// stderr but never fail the request; the in-memory token is still good.
func (m *PersistingTokenManager) persistIfRotated() {
	current := m.oauth2Manager.store.Get()
	if current == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if current.AccessToken == m.lastPersisted {
		return
	}

	if err := m.persist(current); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: failed to persist refreshed token: %v\n", err)

		return
	}

	m.lastPersisted = current.AccessToken
}

func (m *PersistingTokenManager) persist(token *Token) error {
	if m.persister == nil {
		return ErrNoCredentialsPersister
	}

	err := m.persister.UpdateTokens(token.AccessToken, token.RefreshToken, token.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to update stored tokens: %w", err)
	}

	return nil
}
