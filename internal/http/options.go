package http

import (
	"time"

	"github.com/gronnmann/fiken-go/pkg/fiken"
)

// Option configures the transport client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger fiken.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging through the configured logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithHTTPTimeout bounds a single HTTP exchange.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.HTTPClient.Timeout = timeout
		}
	}
}

// WithRetryConfig enables retries for connection errors and 429/5xx
// responses. retryMax of 0 keeps retrying disabled.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax

		if waitMin > 0 {
			c.httpClient.RetryWaitMin = waitMin
		}

		if waitMax > 0 {
			c.httpClient.RetryWaitMax = waitMax
		}
	}
}

// WithRateLimiter substitutes the rate limiter, letting several transport
// clients share one budget.
func WithRateLimiter(limiter *RateLimiter) Option {
	return func(c *Client) {
		if limiter != nil {
			c.limiter = limiter
		}
	}
}
