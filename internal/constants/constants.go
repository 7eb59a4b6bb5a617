package constants

import "time"

// API endpoints.
const (
	// DefaultBaseURL is the Fiken API base URL.
	DefaultBaseURL = "https://api.fiken.no/api/v2"

	// DefaultTokenURL is the OAuth2 token endpoint used for refresh grants.
	DefaultTokenURL = "https://fiken.no/oauth/token"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for a single HTTP exchange.
	DefaultHTTPTimeout = 30 * time.Second

	// TokenHTTPTimeout bounds the OAuth2 refresh exchange.
	TokenHTTPTimeout = 10 * time.Second
)

// Retry limits. Retrying is off by default since the API's rate limit makes
// blind retries counterproductive.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 0

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Rate limiting, matching the API's documented limits.
const (
	// RateLimitWindow is the sliding window over which request starts are
	// counted.
	RateLimitWindow = 1 * time.Second

	// RateLimitMaxRequests is the maximum number of requests started per
	// window.
	RateLimitMaxRequests = 4

	// RateLimitMaxConcurrent is the maximum number of in-flight requests.
	RateLimitMaxConcurrent = 1
)

// Token lifetime handling.
const (
	// TokenRefreshBuffer is subtracted from a token's expiry so refresh
	// happens before the server-side deadline.
	TokenRefreshBuffer = 5 * time.Minute

	// DefaultTokenLifetime is assumed when a token response carries no
	// expires_in field.
	DefaultTokenLifetime = 86157 * time.Second
)

// File permissions.
const (
	// ConfigFilePerm is the permission for credential files.
	ConfigFilePerm = 0600
)
