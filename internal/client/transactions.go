package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gronnmann/fiken-go/internal/http"
	"github.com/gronnmann/fiken-go/pkg/fiken"
)

// TransactionsClient implements fiken.TransactionsClient.
type TransactionsClient struct {
	httpClient *http.Client
}

// NewTransactionsClient creates a new transactions client.
func NewTransactionsClient(httpClient *http.Client) *TransactionsClient {
	return &TransactionsClient{httpClient: httpClient}
}

// List implements fiken.TransactionsClient.List.
func (c *TransactionsClient) List(ctx context.Context, companySlug string, opts *fiken.ListOptions) (*fiken.Page[fiken.Transaction], error) {
	return listPage[fiken.Transaction](ctx, c.httpClient, "/companies/"+companySlug+"/transactions", opts)
}

// Get implements fiken.TransactionsClient.Get.
func (c *TransactionsClient) Get(ctx context.Context, companySlug string, transactionID int64) (*fiken.Transaction, error) {
	path := "/companies/" + companySlug + "/transactions/" + strconv.FormatInt(transactionID, 10)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return decodeResponse[fiken.Transaction](resp)
}
