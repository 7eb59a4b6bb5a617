package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/gronnmann/fiken-go/internal/http"
	"github.com/gronnmann/fiken-go/pkg/fiken"
)

// AccountsClient implements fiken.AccountsClient.
type AccountsClient struct {
	httpClient *http.Client
}

// NewAccountsClient creates a new accounts client.
func NewAccountsClient(httpClient *http.Client) *AccountsClient {
	return &AccountsClient{httpClient: httpClient}
}

// List implements fiken.AccountsClient.List.
func (c *AccountsClient) List(ctx context.Context, companySlug string, opts *fiken.ListOptions) (*fiken.Page[fiken.Account], error) {
	return listPage[fiken.Account](ctx, c.httpClient, "/companies/"+companySlug+"/accounts", opts)
}

// Get implements fiken.AccountsClient.Get.
func (c *AccountsClient) Get(ctx context.Context, companySlug, accountCode string) (*fiken.Account, error) {
	resp, err := c.httpClient.Get(ctx, "/companies/"+companySlug+"/accounts/"+accountCode, nil)
	if err != nil {
		return nil, fmt.Errorf("getting account: %w", err)
	}

	return decodeResponse[fiken.Account](resp)
}

// ListBalances implements fiken.AccountsClient.ListBalances. The date is the
// day the balances are calculated for, in ISO-8601 form.
func (c *AccountsClient) ListBalances(ctx context.Context, companySlug, date string, opts *fiken.ListOptions) (*fiken.Page[fiken.AccountBalance], error) {
	if opts == nil {
		opts = fiken.NewListOptions()
	}

	opts = opts.WithFilter("date", date)

	return listPage[fiken.AccountBalance](ctx, c.httpClient, "/companies/"+companySlug+"/accountBalances", opts)
}

// GetBalance implements fiken.AccountsClient.GetBalance.
func (c *AccountsClient) GetBalance(ctx context.Context, companySlug, accountCode, date string) (*fiken.AccountBalance, error) {
	query := url.Values{}
	query.Set("date", date)

	resp, err := c.httpClient.Get(ctx, "/companies/"+companySlug+"/accountBalances/"+accountCode, query)
	if err != nil {
		return nil, fmt.Errorf("getting account balance: %w", err)
	}

	return decodeResponse[fiken.AccountBalance](resp)
}
