package fiken

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Static errors for err113 compliance.
var (
	ErrCredentialsRequired = errors.New("either an API token or the full set of OAuth2 credentials (access token, refresh token, client ID, client secret) must be provided")
	ErrConfigRequired      = errors.New("config is required")
	ErrStaticTokenRefresh  = errors.New("personal API tokens cannot be refreshed")
	ErrNoLocationHeader    = errors.New("response carries no Location header")
	ErrNoMoreItems         = errors.New("no more items")
)

// APIError represents an error response from the Fiken API. It is the base
// type for the classified error kinds below; every one of them carries the
// HTTP status code, the message reported by the API, the decoded response
// body (when it was JSON) and the raw body bytes.
type APIError struct {
	StatusCode   int
	Message      string
	ResponseData map[string]interface{}
	Body         []byte
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("[%d] %s", e.StatusCode, e.Message)
	}

	return e.Message
}

// HTTPStatus returns the status code of the response the error was built
// from. The method is promoted to every classified error kind.
func (e *APIError) HTTPStatus() int {
	return e.StatusCode
}

// AuthError is returned when authentication fails (401/403) or an OAuth2
// token refresh is rejected by the token endpoint.
type AuthError struct{ APIError }

// NotFoundError is returned when a resource does not exist (404).
type NotFoundError struct{ APIError }

// ValidationError is returned when the API rejects the request payload (400).
type ValidationError struct{ APIError }

// MethodNotAllowedError is returned when the HTTP method is not supported by
// the endpoint (405).
type MethodNotAllowedError struct{ APIError }

// UnsupportedMediaTypeError is returned when the request content type is not
// accepted (415).
type UnsupportedMediaTypeError struct{ APIError }

// RateLimitError is returned when the API reports the rate limit was
// exceeded (429). Fiken allows 1 concurrent request and at most 4 requests
// per second.
type RateLimitError struct{ APIError }

// ServerError is returned on 5xx responses.
type ServerError struct{ APIError }

// DecodeError is returned when a 2xx response body cannot be decoded into
// the expected type. The raw body is preserved for inspection.
type DecodeError struct {
	Err  error
	Body []byte
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response body: %v", e.Err)
}

// Unwrap returns the underlying decode failure.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ParseErrorResponse classifies a non-2xx response into the typed error
// taxonomy. The message is taken from the body's "message" field when the
// body is a JSON object; otherwise the raw body (or the status text) is used.
func ParseErrorResponse(statusCode int, body []byte) error {
	var responseData map[string]interface{}

	message := ""

	if len(body) > 0 {
		if err := json.Unmarshal(body, &responseData); err == nil {
			if msg, ok := responseData["message"].(string); ok {
				message = msg
			}
		}

		if message == "" {
			message = string(body)
		}
	}

	if message == "" {
		message = http.StatusText(statusCode)
	}

	base := APIError{
		StatusCode:   statusCode,
		Message:      message,
		ResponseData: responseData,
		Body:         body,
	}

	switch {
	case statusCode == http.StatusBadRequest:
		return &ValidationError{base}
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return &AuthError{base}
	case statusCode == http.StatusNotFound:
		return &NotFoundError{base}
	case statusCode == http.StatusMethodNotAllowed:
		return &MethodNotAllowedError{base}
	case statusCode == http.StatusUnsupportedMediaType:
		return &UnsupportedMediaTypeError{base}
	case statusCode == http.StatusTooManyRequests:
		return &RateLimitError{base}
	case statusCode >= http.StatusInternalServerError:
		return &ServerError{base}
	default:
		return &base
	}
}

// IsAuth checks if the error is an authentication error.
func IsAuth(err error) bool {
	authErr := &AuthError{}

	return errors.As(err, &authErr)
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	notFoundErr := &NotFoundError{}

	return errors.As(err, &notFoundErr)
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	validationErr := &ValidationError{}

	return errors.As(err, &validationErr)
}

// IsRateLimit checks if the error is a rate limit error.
func IsRateLimit(err error) bool {
	rateLimitErr := &RateLimitError{}

	return errors.As(err, &rateLimitErr)
}

// IsServer checks if the error is a server error.
func IsServer(err error) bool {
	serverErr := &ServerError{}

	return errors.As(err, &serverErr)
}

// StatusCode returns the HTTP status code carried by an API error, or 0 when
// the error did not originate from an HTTP status.
func StatusCode(err error) int {
	var coder interface{ HTTPStatus() int }
	if errors.As(err, &coder) {
		return coder.HTTPStatus()
	}

	return 0
}
