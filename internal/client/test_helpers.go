package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/gronnmann/fiken-go/internal/http"
)

// NewTestClient creates a new test client with the given base URL.
func NewTestClient(baseURL string) *Client {
	// Create HTTP client without token manager for testing
	httpClient := internalhttp.NewClient(baseURL, nil)

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}

	// Initialize resource clients
	client.initializeResourceClients()

	return client
}

// WriteTestPage writes items as a JSON array with the pagination headers
// list endpoints carry.
func WriteTestPage(writer http.ResponseWriter, items interface{}, page, pageCount, pageSize, resultCount int) {
	writer.Header().Set("Content-Type", "application/json")
	writer.Header().Set("Fiken-Api-Page", strconv.Itoa(page))
	writer.Header().Set("Fiken-Api-Page-Count", strconv.Itoa(pageCount))
	writer.Header().Set("Fiken-Api-Page-Size", strconv.Itoa(pageSize))
	writer.Header().Set("Fiken-Api-Result-Count", strconv.Itoa(resultCount))

	_ = json.NewEncoder(writer).Encode(items)
}

// TestGetOperation represents a generic get operation test case.
type TestGetOperation[TResponse any] struct {
	Name         string
	ID           int64
	ExpectedPath string
	StatusCode   int
	Response     *TResponse
	WantErr      bool
	ErrMessage   string
}

// RunGetTests runs a series of get operation tests.
func RunGetTests[TResponse any](
	t *testing.T,
	tests []TestGetOperation[TResponse],
	getFunc func(*Client) func(context.Context, int64) (*TResponse, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, "GET", request.Method)
				writer.Header().Set("Content-Type", "application/json")
				writer.WriteHeader(testCase.StatusCode)

				if testCase.WantErr {
					_ = json.NewEncoder(writer).Encode(map[string]string{"message": "Resource not found"})
				} else if testCase.Response != nil {
					_ = json.NewEncoder(writer).Encode(testCase.Response)
				}
			}))
			defer server.Close()

			client := NewTestClient(server.URL)

			getFn := getFunc(client)
			result, err := getFn(context.Background(), testCase.ID)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
			}
		})
	}
}

// TestCreateOperation represents a generic create operation test case. The
// server answers 201 with a Location header pointing at LocationPath, then
// serves Created on the follow-up GET.
type TestCreateOperation[TRequest, TResponse any] struct {
	Name         string
	Request      *TRequest
	ExpectedPath string
	LocationPath string
	Created      *TResponse
	WantErr      bool
	StatusCode   int
	ErrMessage   string
}

// RunCreateTests runs a series of create-via-Location operation tests.
func RunCreateTests[TRequest, TResponse any](
	t *testing.T,
	tests []TestCreateOperation[TRequest, TResponse],
	createFunc func(*Client) func(context.Context, *TRequest) (*TResponse, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			var server *httptest.Server

			server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				switch request.Method {
				case "POST":
					assert.Equal(t, testCase.ExpectedPath, request.URL.Path)

					if testCase.WantErr {
						writer.Header().Set("Content-Type", "application/json")
						writer.WriteHeader(testCase.StatusCode)
						_ = json.NewEncoder(writer).Encode(map[string]string{"message": testCase.ErrMessage})

						return
					}

					writer.Header().Set("Location", server.URL+testCase.LocationPath)
					writer.WriteHeader(http.StatusCreated)
				case "GET":
					assert.Equal(t, testCase.LocationPath, request.URL.Path)
					writer.Header().Set("Content-Type", "application/json")
					_ = json.NewEncoder(writer).Encode(testCase.Created)
				default:
					t.Errorf("unexpected method %s", request.Method)
				}
			}))
			defer server.Close()

			client := NewTestClient(server.URL)

			createFn := createFunc(client)
			result, err := createFn(context.Background(), testCase.Request)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
			}
		})
	}
}

// TestDeleteOperation represents a generic delete operation test case.
type TestDeleteOperation struct {
	Name           string
	ID             int64
	ExpectedPath   string
	ExpectedMethod string
	StatusCode     int
	WantErr        bool
	ErrMessage     string
}

// RunDeleteTests runs a series of delete operation tests.
func RunDeleteTests(
	t *testing.T,
	tests []TestDeleteOperation,
	deleteFunc func(*Client) func(context.Context, int64) error,
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)

				expectedMethod := testCase.ExpectedMethod
				if expectedMethod == "" {
					expectedMethod = "DELETE"
				}

				assert.Equal(t, expectedMethod, request.Method)
				writer.WriteHeader(testCase.StatusCode)
			}))
			defer server.Close()

			client := NewTestClient(server.URL)

			deleteFn := deleteFunc(client)
			err := deleteFn(context.Background(), testCase.ID)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}
}
