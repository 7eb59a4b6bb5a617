// +build integration

package integration

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/gronnmann/fiken-go/pkg/fiken"
	"github.com/gronnmann/fiken-go/pkg/fikenclient"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	APIToken    string
	CompanySlug string
	Verbose     bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIToken:    os.Getenv("FIKEN_API_TOKEN"),
		CompanySlug: os.Getenv("FIKEN_COMPANY_SLUG"),
		Verbose:     os.Getenv("FIKEN_VERBOSE") == "true",
	}
}

// SkipIfMissingConfig skips the test when the required environment is absent.
// Integration tests run against a real Fiken test company and should only be
// pointed at one flagged as a test company.
func (c *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if c.APIToken == "" || c.CompanySlug == "" {
		t.Skip("Skipping integration test: FIKEN_API_TOKEN and FIKEN_COMPANY_SLUG must be set")
	}
}

// NewClient builds a client from the test configuration.
func (c *TestConfig) NewClient(t *testing.T) fiken.Client {
	t.Helper()

	client, err := fikenclient.NewWithAPIToken(c.APIToken)
	if err != nil {
		t.Fatalf("Failed to create Fiken client: %v", err)
	}

	return client
}

// GenerateTestName creates a unique name for test resources
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}
