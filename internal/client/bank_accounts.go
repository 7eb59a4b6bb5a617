package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gronnmann/fiken-go/internal/http"
	"github.com/gronnmann/fiken-go/pkg/fiken"
)

// BankAccountsClient implements fiken.BankAccountsClient.
type BankAccountsClient struct {
	httpClient *http.Client
}

// NewBankAccountsClient creates a new bank accounts client.
func NewBankAccountsClient(httpClient *http.Client) *BankAccountsClient {
	return &BankAccountsClient{httpClient: httpClient}
}

func bankAccountsPath(companySlug string) string {
	return "/companies/" + companySlug + "/bankAccounts"
}

// List implements fiken.BankAccountsClient.List.
func (c *BankAccountsClient) List(ctx context.Context, companySlug string, opts *fiken.ListOptions) (*fiken.Page[fiken.BankAccount], error) {
	return listPage[fiken.BankAccount](ctx, c.httpClient, bankAccountsPath(companySlug), opts)
}

// Get implements fiken.BankAccountsClient.Get.
func (c *BankAccountsClient) Get(ctx context.Context, companySlug string, bankAccountID int64) (*fiken.BankAccount, error) {
	path := bankAccountsPath(companySlug) + "/" + strconv.FormatInt(bankAccountID, 10)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting bank account: %w", err)
	}

	return decodeResponse[fiken.BankAccount](resp)
}

// Create implements fiken.BankAccountsClient.Create.
func (c *BankAccountsClient) Create(ctx context.Context, companySlug string, request *fiken.BankAccountRequest) (*fiken.BankAccount, error) {
	return createAndFollow[fiken.BankAccount](ctx, c.httpClient, bankAccountsPath(companySlug), request)
}
