package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gronnmann/fiken-go/internal/constants"
	"github.com/gronnmann/fiken-go/pkg/fiken"
)

// Static errors for err113 compliance.
var (
	ErrNoToken        = errors.New("no access token available")
	ErrNoRefreshToken = errors.New("no refresh token available")
	ErrEmptyToken     = errors.New("token endpoint returned no access token")
)

// OAuth2Config contains the credentials for the OAuth2 refresh-token flow.
type OAuth2Config struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	AccessToken  string
	RefreshToken string

	// HTTPClient is used for token requests. Defaults to a client with
	// TokenHTTPTimeout. Token requests do not go through the API rate
	// limiter.
	HTTPClient *http.Client
}

// OAuth2TokenManager serves access tokens and refreshes them through the
// token endpoint when they near expiry or are rejected by the API. Refresh
// is single-flight: concurrent callers coalesce on one token request.
type OAuth2TokenManager struct {
	config *OAuth2Config
	store  *TokenStore

	// refreshMu serializes refreshes; store stays readable throughout.
	refreshMu  sync.Mutex
	httpClient *http.Client
}

// NewOAuth2TokenManager creates a new OAuth2 token manager.
func NewOAuth2TokenManager(config *OAuth2Config) *OAuth2TokenManager {
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: constants.TokenHTTPTimeout}
	}

	manager := &OAuth2TokenManager{
		config:     config,
		store:      NewTokenStore(),
		httpClient: httpClient,
	}

	if config.AccessToken != "" {
		manager.store.Set(&Token{
			AccessToken:  config.AccessToken,
			TokenType:    "bearer",
			RefreshToken: config.RefreshToken,
			ExpiresAt:    time.Now().Add(constants.DefaultTokenLifetime),
		})
	}

	return manager
}

// GetToken returns a valid access token, refreshing if necessary.
func (m *OAuth2TokenManager) GetToken(ctx context.Context) (string, error) {
	if token := m.store.Get(); token.Valid() {
		return token.AccessToken, nil
	}

	m.refreshMu.Lock()
	defer m.refreshMu.Unlock()

	// Another caller may have refreshed while we waited for the lock.
	if token := m.store.Get(); token.Valid() {
		return token.AccessToken, nil
	}

	token, err := m.refresh(ctx)
	if err != nil {
		return "", err
	}

	return token.AccessToken, nil
}

// Invalidate drops accessToken from the store so the next GetToken
// refreshes. A no-op when the store already holds a different (newer)
// token. Always reports true: a refresh token means retrying can succeed.
func (m *OAuth2TokenManager) Invalidate(accessToken string) bool {
	m.store.ClearIf(accessToken)

	return true
}

// SetToken manually sets the access token, keeping the current refresh
// token.
func (m *OAuth2TokenManager) SetToken(token string, expiresAt time.Time) {
	refreshToken := m.config.RefreshToken
	if current := m.store.Get(); current != nil && current.RefreshToken != "" {
		refreshToken = current.RefreshToken
	}

	m.store.Set(&Token{
		AccessToken:  token,
		TokenType:    "bearer",
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
	})
}

// RefreshToken forces a refresh regardless of the stored token's validity.
func (m *OAuth2TokenManager) RefreshToken(ctx context.Context) error {
	m.refreshMu.Lock()
	defer m.refreshMu.Unlock()

	_, err := m.refresh(ctx)

	return err
}

// refresh performs the refresh_token grant and replaces the stored token.
// The caller must hold refreshMu. On failure the store is left untouched so
// credentials survive transient token-endpoint outages.
func (m *OAuth2TokenManager) refresh(ctx context.Context) (*Token, error) {
	refreshToken := m.config.RefreshToken
	if current := m.store.Get(); current != nil && current.RefreshToken != "" {
		refreshToken = current.RefreshToken
	}

	if refreshToken == "" {
		return nil, ErrNoRefreshToken
	}

	data := url.Values{}
	data.Set("grant_type", "refresh_token")
	data.Set("refresh_token", refreshToken)
	data.Set("client_id", m.config.ClientID)
	data.Set("client_secret", m.config.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.config.TokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, fmt.Errorf("creating token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, refreshError(resp.StatusCode, body)
	}

	var token Token
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, fmt.Errorf("parsing token response: %w", err)
	}

	if token.AccessToken == "" {
		return nil, ErrEmptyToken
	}

	if token.RefreshToken == "" {
		token.RefreshToken = refreshToken
	}

	lifetime := constants.DefaultTokenLifetime
	if token.ExpiresIn > 0 {
		lifetime = time.Duration(token.ExpiresIn) * time.Second
	}

	token.ExpiresAt = time.Now().Add(lifetime)
	m.store.Set(&token)

	return &token, nil
}

// refreshError turns a failed token response into an AuthError so callers
// can branch on the same taxonomy as API errors.
func refreshError(statusCode int, body []byte) error {
	var responseData map[string]interface{}

	message := ""

	if len(body) > 0 {
		if err := json.Unmarshal(body, &responseData); err == nil {
			if desc, ok := responseData["error_description"].(string); ok && desc != "" {
				message = desc
			}

			if errCode, ok := responseData["error"].(string); ok && errCode != "" {
				if message != "" {
					message = errCode + ": " + message
				} else {
					message = errCode
				}
			}
		}

		if message == "" {
			message = string(body)
		}
	}

	if message == "" {
		message = http.StatusText(statusCode)
	}

	return &fiken.AuthError{APIError: fiken.APIError{
		StatusCode:   statusCode,
		Message:      "token refresh failed: " + message,
		ResponseData: responseData,
		Body:         body,
	}}
}
