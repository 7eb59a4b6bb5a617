// Package fikenclient provides the main entry point for creating Fiken API clients
package fikenclient

import (
	"fmt"
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gronnmann/fiken-go/internal/auth"
	"github.com/gronnmann/fiken-go/internal/client"
	"github.com/gronnmann/fiken-go/internal/constants"
	"github.com/gronnmann/fiken-go/pkg/fiken"
)

// New creates a new Fiken API client.
func New(config *fiken.Config) (fiken.Client, error) {
	if config == nil {
		return nil, fiken.ErrConfigRequired
	}

	fikenClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return fikenClient, nil
}

// NewWithAPIToken creates a new client authenticating with a personal API
// token.
func NewWithAPIToken(apiToken string) (fiken.Client, error) {
	return New(&fiken.Config{
		APIToken: apiToken,
	})
}

// NewWithOAuth2 creates a new client authenticating with OAuth2 credentials.
// Fiken rotates the refresh token on every refresh, so long-lived processes
// should prefer NewFromFile, which writes rotated tokens back to disk.
func NewWithOAuth2(accessToken, refreshToken, clientID, clientSecret string) (fiken.Client, error) {
	return New(&fiken.Config{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ClientID:     clientID,
		ClientSecret: clientSecret,
	})
}

// Credentials is the on-disk credentials file format read by NewFromFile.
// Either APIToken or the full OAuth2 set must be present.
type Credentials struct {
	APIToken string `yaml:"apiToken,omitempty"`

	AccessToken  string `yaml:"accessToken,omitempty"`
	RefreshToken string `yaml:"refreshToken,omitempty"`
	ClientID     string `yaml:"clientId,omitempty"`
	ClientSecret string `yaml:"clientSecret,omitempty"`

	// ExpiresAt records when the access token expires, so a restart can tell
	// whether the stored token is still usable.
	ExpiresAt time.Time `yaml:"expiresAt,omitempty"`

	BaseURL  string `yaml:"baseUrl,omitempty"`
	TokenURL string `yaml:"tokenUrl,omitempty"`
}

// NewFromFile creates a client from a YAML credentials file. OAuth2 clients
// built this way persist rotated refresh tokens back to the same file.
func NewFromFile(path string) (fiken.Client, error) {
	credentials, err := LoadCredentials(path)
	if err != nil {
		return nil, err
	}

	config := &fiken.Config{
		APIToken:     credentials.APIToken,
		AccessToken:  credentials.AccessToken,
		RefreshToken: credentials.RefreshToken,
		ClientID:     credentials.ClientID,
		ClientSecret: credentials.ClientSecret,
		BaseURL:      credentials.BaseURL,
		TokenURL:     credentials.TokenURL,
	}

	if config.HasAPIToken() {
		return New(config)
	}

	if !config.HasOAuth2() {
		return nil, fiken.ErrCredentialsRequired
	}

	persister := &fileCredentialsStore{path: path, credentials: *credentials}
	tokenManager := auth.NewPersistingTokenManager(client.OAuth2Config(config), persister)

	// A persisted expiry overrides the default lifetime assumed for a fresh
	// access token, so a restart with a stale token refreshes up front
	// instead of burning a request on a guaranteed 401.
	if !credentials.ExpiresAt.IsZero() {
		tokenManager.SetToken(credentials.AccessToken, credentials.ExpiresAt)
	}

	fikenClient, err := client.NewWithTokenManager(config, tokenManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return fikenClient, nil
}

// LoadCredentials reads and parses a YAML credentials file.
func LoadCredentials(path string) (*Credentials, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is caller-chosen by design
	if err != nil {
		return nil, fmt.Errorf("reading credentials file: %w", err)
	}

	var credentials Credentials

	if err := yaml.Unmarshal(data, &credentials); err != nil {
		return nil, fmt.Errorf("parsing credentials file: %w", err)
	}

	return &credentials, nil
}

// fileCredentialsStore writes rotated tokens back to the credentials file.
type fileCredentialsStore struct {
	path string

	mu          sync.Mutex
	credentials Credentials
}

// UpdateTokens implements auth.CredentialsPersister.
func (s *fileCredentialsStore) UpdateTokens(accessToken, refreshToken string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.credentials.AccessToken = accessToken
	s.credentials.RefreshToken = refreshToken
	s.credentials.ExpiresAt = expiresAt

	data, err := yaml.Marshal(&s.credentials)
	if err != nil {
		return fmt.Errorf("encoding credentials: %w", err)
	}

	if err := os.WriteFile(s.path, data, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("writing credentials file: %w", err)
	}

	return nil
}
