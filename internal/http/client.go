// Package http implements the transport layer shared by all resource
// clients: authentication headers, client-side rate limiting, retry-once on
// rejected tokens, and mapping of error responses to the typed taxonomy.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/gronnmann/fiken-go/internal/auth"
	"github.com/gronnmann/fiken-go/internal/constants"
	"github.com/gronnmann/fiken-go/pkg/fiken"
)

const defaultUserAgent = "fiken-go/1.0 (+https://github.com/gronnmann/fiken-go)"

// Request represents an API request.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	// Body is JSON-encoded when set. Ignored if RawBody is set.
	Body interface{}
	// RawBody is sent verbatim with ContentType. Used for multipart
	// uploads.
	RawBody     []byte
	ContentType string
	Headers     map[string]string
}

// Response represents an API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client is the low-level HTTP client for the Fiken API.
type Client struct {
	baseURL      string
	tokenManager auth.TokenManager
	httpClient   *retryablehttp.Client
	limiter      *RateLimiter
	logger       fiken.Logger
	debug        bool
	userAgent    string
}

// NewClient creates a new transport client. Retrying transient failures is
// disabled unless enabled via WithRetryConfig.
func NewClient(baseURL string, tokenManager auth.TokenManager, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.Logger = nil
	// Keep the final 429/5xx response so it can be mapped to a typed error
	// instead of retryablehttp's "giving up" error.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		tokenManager: tokenManager,
		httpClient:   retryClient,
		limiter:      NewRateLimiter(),
		userAgent:    defaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseURL returns the API base URL the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do executes a request. A 401 or 403 response invalidates the token that
// was sent; when the token manager can produce a fresh one, the request is
// retried once. Non-2xx responses are returned together with a typed error.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	resp, sentToken, err := c.attempt(ctx, req)
	if err != nil {
		return nil, err
	}

	if isAuthFailure(resp.StatusCode) && c.tokenManager != nil && c.tokenManager.Invalidate(sentToken) {
		if c.debug && c.logger != nil {
			c.logger.Debug("retrying request with refreshed token", map[string]interface{}{
				"method": req.Method,
				"path":   req.Path,
			})
		}

		resp, _, err = c.attempt(ctx, req)
		if err != nil {
			return nil, err
		}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return resp, fiken.ParseErrorResponse(resp.StatusCode, resp.Body)
	}

	return resp, nil
}

func isAuthFailure(statusCode int) bool {
	return statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden
}

// attempt performs a single exchange under the rate limiter and returns the
// response together with the bearer token that was sent.
func (c *Client) attempt(ctx context.Context, req *Request) (*Response, string, error) {
	if err := c.limiter.Acquire(ctx); err != nil {
		return nil, "", err
	}
	defer c.limiter.Release()

	token := ""

	if c.tokenManager != nil {
		var err error

		token, err = c.tokenManager.GetToken(ctx)
		if err != nil {
			return nil, "", fmt.Errorf("getting access token: %w", err)
		}
	}

	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	body, contentType, err := encodeBody(req)
	if err != nil {
		return nil, "", err
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, "", fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("X-Request-ID", uuid.NewString())

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method":     req.Method,
			"url":        fullURL,
			"request_id": httpReq.Header.Get("X-Request-ID"),
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, "", fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("reading response body: %w", err)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":     req.Method,
			"url":        fullURL,
			"status":     httpResp.StatusCode,
			"request_id": httpReq.Header.Get("X-Request-ID"),
		})
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}, token, nil
}

func encodeBody(req *Request) ([]byte, string, error) {
	if req.RawBody != nil {
		return req.RawBody, req.ContentType, nil
	}

	if req.Body == nil {
		return nil, "", nil
	}

	data, err := json.Marshal(req.Body)
	if err != nil {
		return nil, "", fmt.Errorf("encoding request body: %w", err)
	}

	return data, "application/json", nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request with an optional JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// PostMultipart uploads a file as multipart/form-data. The file goes into
// the "file" part; fields become ordinary form fields.
func (c *Client) PostMultipart(ctx context.Context, path, filename string, file []byte, fields map[string]string) (*Response, error) {
	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("creating multipart file part: %w", err)
	}

	if _, err := part.Write(file); err != nil {
		return nil, fmt.Errorf("writing multipart file part: %w", err)
	}

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, fmt.Errorf("writing multipart field: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalizing multipart body: %w", err)
	}

	return c.Do(ctx, &Request{
		Method:      http.MethodPost,
		Path:        path,
		RawBody:     buf.Bytes(),
		ContentType: writer.FormDataContentType(),
	})
}
