package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fikenhttp "github.com/gronnmann/fiken-go/internal/http"
	"github.com/gronnmann/fiken-go/pkg/fiken"
)

// MockTokenManager for testing.
type MockTokenManager struct {
	mu          sync.Mutex
	tokens      []string
	err         error
	refreshable bool
	invalidated []string
}

func (m *MockTokenManager) GetToken(_ context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return "", m.err
	}

	if len(m.tokens) == 0 {
		return "", nil
	}

	token := m.tokens[0]
	if len(m.tokens) > 1 {
		m.tokens = m.tokens[1:]
	}

	return token, nil
}

func (m *MockTokenManager) Invalidate(accessToken string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.invalidated = append(m.invalidated, accessToken)

	return m.refreshable
}

func (m *MockTokenManager) SetToken(token string, _ time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tokens = []string{token}
}

// MockLogger for testing.
type MockLogger struct {
	mu   sync.Mutex
	logs []map[string]interface{}
}

func (l *MockLogger) append(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logs = append(l.logs, map[string]interface{}{"level": level, "msg": msg, "fields": fields})
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) { l.append("debug", msg, fields) }
func (l *MockLogger) Info(msg string, fields map[string]interface{})  { l.append("info", msg, fields) }
func (l *MockLogger) Warn(msg string, fields map[string]interface{})  { l.append("warn", msg, fields) }
func (l *MockLogger) Error(msg string, fields map[string]interface{}) { l.append("error", msg, fields) }

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/companies", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.NotEmpty(t, request.Header.Get("X-Request-ID"))

			response := []map[string]string{{"slug": "acme-as", "name": "Acme AS"}}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		tokenManager := &MockTokenManager{tokens: []string{"test-token"}}
		client := fikenhttp.NewClient(server.URL, tokenManager)

		req := &fikenhttp.Request{
			Method: "GET",
			Path:   "/companies",
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result []map[string]string

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "acme-as", result[0]["slug"])
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/companies", request.URL.Path)
			assert.Equal(t, "page=2", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := fikenhttp.NewClient(server.URL, nil)

		req := &fikenhttp.Request{
			Method: "GET",
			Path:   "/companies",
			Query:  url.Values{"page": []string{"2"}},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "Test Contact", body["name"])

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := fikenhttp.NewClient(server.URL, nil)

		req := &fikenhttp.Request{
			Method: "POST",
			Path:   "/companies/acme-as/contacts",
			Body:   map[string]string{"name": "Test Contact"},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("error response is classified", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(writer).Encode(map[string]string{"message": "Contact not found"})
		}))
		defer server.Close()

		client := fikenhttp.NewClient(server.URL, nil)

		req := &fikenhttp.Request{
			Method: "GET",
			Path:   "/companies/acme-as/contacts/999",
		}

		resp, err := client.Do(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, 404, resp.StatusCode)

		var notFoundErr *fiken.NotFoundError
		require.ErrorAs(t, err, &notFoundErr)
		assert.Equal(t, 404, notFoundErr.StatusCode)
		assert.Equal(t, "Contact not found", notFoundErr.Message)
		assert.Equal(t, "Contact not found", notFoundErr.ResponseData["message"])
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := fikenhttp.NewClient(server.URL, nil)

		req := &fikenhttp.Request{
			Method: "GET",
			Path:   "/companies",
			Headers: map[string]string{
				"X-Custom-Header": "custom-value",
			},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := fikenhttp.NewClient(server.URL, nil, fikenhttp.WithLogger(logger), fikenhttp.WithDebug(true))

		req := &fikenhttp.Request{
			Method: "GET",
			Path:   "/companies",
		}

		_, err := client.Do(context.Background(), req)
		require.NoError(t, err)

		// Should have logged request and response
		assert.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_TokenRetry(t *testing.T) {
	t.Parallel()
	t.Run("retries once after 401 with refreshed token", func(t *testing.T) {
		t.Parallel()

		var attempts int

		var mu sync.Mutex

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			mu.Lock()
			attempts++
			attempt := attempts
			mu.Unlock()

			if attempt == 1 {
				assert.Equal(t, "Bearer stale-token", request.Header.Get("Authorization"))
				writer.WriteHeader(http.StatusUnauthorized)

				return
			}

			assert.Equal(t, "Bearer fresh-token", request.Header.Get("Authorization"))
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		tokenManager := &MockTokenManager{
			tokens:      []string{"stale-token", "fresh-token"},
			refreshable: true,
		}
		client := fikenhttp.NewClient(server.URL, tokenManager)

		resp, err := client.Get(context.Background(), "/companies", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, []string{"stale-token"}, tokenManager.invalidated)
	})

	t.Run("retries once after 403 with refreshed token", func(t *testing.T) {
		t.Parallel()

		var attempts int

		var mu sync.Mutex

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			mu.Lock()
			attempts++
			attempt := attempts
			mu.Unlock()

			if attempt == 1 {
				assert.Equal(t, "Bearer stale-token", request.Header.Get("Authorization"))
				writer.WriteHeader(http.StatusForbidden)

				return
			}

			assert.Equal(t, "Bearer fresh-token", request.Header.Get("Authorization"))
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		tokenManager := &MockTokenManager{
			tokens:      []string{"stale-token", "fresh-token"},
			refreshable: true,
		}
		client := fikenhttp.NewClient(server.URL, tokenManager)

		resp, err := client.Get(context.Background(), "/companies", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, []string{"stale-token"}, tokenManager.invalidated)
	})

	t.Run("second 401 is returned as auth error", func(t *testing.T) {
		t.Parallel()

		var attempts int

		var mu sync.Mutex

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			mu.Lock()
			attempts++
			mu.Unlock()

			writer.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		tokenManager := &MockTokenManager{
			tokens:      []string{"token-1", "token-2"},
			refreshable: true,
		}
		client := fikenhttp.NewClient(server.URL, tokenManager)

		_, err := client.Get(context.Background(), "/companies", nil)
		require.Error(t, err)
		assert.True(t, fiken.IsAuth(err))

		mu.Lock()
		assert.Equal(t, 2, attempts)
		mu.Unlock()
	})

	t.Run("static tokens fail immediately on 401", func(t *testing.T) {
		t.Parallel()

		var attempts int

		var mu sync.Mutex

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			mu.Lock()
			attempts++
			mu.Unlock()

			writer.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		tokenManager := &MockTokenManager{
			tokens:      []string{"api-token"},
			refreshable: false,
		}
		client := fikenhttp.NewClient(server.URL, tokenManager)

		_, err := client.Get(context.Background(), "/companies", nil)
		require.Error(t, err)
		assert.True(t, fiken.IsAuth(err))

		mu.Lock()
		assert.Equal(t, 1, attempts)
		mu.Unlock()
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		fn     func(*fikenhttp.Client, context.Context) (*fikenhttp.Response, error)
	}{
		{
			name:   "GET",
			method: "GET",
			fn: func(c *fikenhttp.Client, ctx context.Context) (*fikenhttp.Response, error) {
				return c.Get(ctx, "/test", nil)
			},
		},
		{
			name:   "POST",
			method: "POST",
			fn: func(c *fikenhttp.Client, ctx context.Context) (*fikenhttp.Response, error) {
				return c.Post(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PUT",
			method: "PUT",
			fn: func(c *fikenhttp.Client, ctx context.Context) (*fikenhttp.Response, error) {
				return c.Put(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PATCH",
			method: "PATCH",
			fn: func(c *fikenhttp.Client, ctx context.Context) (*fikenhttp.Response, error) {
				return c.Patch(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "DELETE",
			method: "DELETE",
			fn: func(c *fikenhttp.Client, ctx context.Context) (*fikenhttp.Response, error) {
				return c.Delete(ctx, "/test")
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase

		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.Equal(t, "/test", request.URL.Path)
				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := fikenhttp.NewClient(server.URL, nil)
			resp, err := testCase.fn(client, context.Background())
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}

func TestClient_PostMultipart(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		require.NoError(t, request.ParseMultipartForm(1<<20))

		assert.Equal(t, "receipt.pdf", request.MultipartForm.Value["filename"][0])

		file, header, err := request.FormFile("file")
		require.NoError(t, err)

		defer func() { _ = file.Close() }()

		assert.Equal(t, "receipt.pdf", header.Filename)

		writer.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := fikenhttp.NewClient(server.URL, nil)

	resp, err := client.PostMultipart(context.Background(), "/companies/acme-as/purchases/1/attachments",
		"receipt.pdf", []byte("%PDF-1.4"), map[string]string{"filename": "receipt.pdf"})
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_RetryLogic(t *testing.T) {
	t.Parallel()
	t.Run("does not retry by default", func(t *testing.T) {
		t.Parallel()

		var attempts int

		var mu sync.Mutex

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			mu.Lock()
			attempts++
			mu.Unlock()

			writer.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := fikenhttp.NewClient(server.URL, nil)

		_, err := client.Get(context.Background(), "/test", nil)
		require.Error(t, err)
		assert.True(t, fiken.IsRateLimit(err))

		mu.Lock()
		assert.Equal(t, 1, attempts)
		mu.Unlock()
	})

	t.Run("retries on 5xx errors when enabled", func(t *testing.T) {
		t.Parallel()

		var attempts int

		var mu sync.Mutex

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			mu.Lock()
			attempts++
			attempt := attempts
			mu.Unlock()

			if attempt < 3 {
				writer.WriteHeader(http.StatusInternalServerError)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		client := fikenhttp.NewClient(server.URL, nil, fikenhttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		mu.Lock()
		assert.Equal(t, 3, attempts)
		mu.Unlock()
	})

	t.Run("does not retry on client errors", func(t *testing.T) {
		t.Parallel()

		var attempts int

		var mu sync.Mutex

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			mu.Lock()
			attempts++
			mu.Unlock()

			writer.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := fikenhttp.NewClient(server.URL, nil, fikenhttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.Error(t, err)
		assert.Equal(t, 400, resp.StatusCode)
		assert.True(t, fiken.IsValidation(err))

		mu.Lock()
		assert.Equal(t, 1, attempts)
		mu.Unlock()
	})
}
