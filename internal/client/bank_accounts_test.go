package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gronnmann/fiken-go/internal/client"
	"github.com/gronnmann/fiken-go/pkg/fiken"
)

func TestBankAccountsClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/companies/acme-as/bankAccounts", request.URL.Path)

		client.WriteTestPage(writer, []fiken.BankAccount{
			{BankAccountID: 1, Name: "Drift", BankAccountNumber: "15031234567", Type: "NORMAL"},
			{BankAccountID: 2, Name: "Skattetrekk", BankAccountNumber: "15037654321", Type: "TAX_DEDUCTION"},
		}, 0, 1, 25, 2)
	}))
	defer server.Close()

	c := client.NewTestClient(server.URL)

	page, err := c.BankAccounts().List(context.Background(), "acme-as", nil)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Drift", page.Items[0].Name)
	assert.False(t, page.HasMore())
}

func TestBankAccountsClient_Get(t *testing.T) {
	t.Parallel()

	tests := []client.TestGetOperation[fiken.BankAccount]{
		{
			Name:         "successful get",
			ID:           1,
			ExpectedPath: "/companies/acme-as/bankAccounts/1",
			StatusCode:   http.StatusOK,
			Response:     &fiken.BankAccount{BankAccountID: 1, Name: "Drift", BankAccountNumber: "15031234567", Type: "NORMAL"},
		},
		{
			Name:         "bank account not found",
			ID:           404,
			ExpectedPath: "/companies/acme-as/bankAccounts/404",
			StatusCode:   http.StatusNotFound,
			WantErr:      true,
			ErrMessage:   "Resource not found",
		},
	}

	client.RunGetTests(t, tests, func(c *client.Client) func(context.Context, int64) (*fiken.BankAccount, error) {
		return func(ctx context.Context, id int64) (*fiken.BankAccount, error) {
			return c.BankAccounts().Get(ctx, "acme-as", id)
		}
	})
}

func TestBankAccountsClient_Create(t *testing.T) {
	t.Parallel()

	tests := []client.TestCreateOperation[fiken.BankAccountRequest, fiken.BankAccount]{
		{
			Name:         "successful create",
			Request:      &fiken.BankAccountRequest{Name: "Drift", BankAccountNumber: "15031234567", Type: "NORMAL"},
			ExpectedPath: "/companies/acme-as/bankAccounts",
			LocationPath: "/companies/acme-as/bankAccounts/3",
			Created:      &fiken.BankAccount{BankAccountID: 3, Name: "Drift", BankAccountNumber: "15031234567", Type: "NORMAL"},
		},
		{
			Name:         "create with invalid account number",
			Request:      &fiken.BankAccountRequest{Name: "Drift", BankAccountNumber: "123", Type: "NORMAL"},
			ExpectedPath: "/companies/acme-as/bankAccounts",
			WantErr:      true,
			StatusCode:   http.StatusBadRequest,
			ErrMessage:   "bankAccountNumber is invalid",
		},
	}

	client.RunCreateTests(t, tests, func(c *client.Client) func(context.Context, *fiken.BankAccountRequest) (*fiken.BankAccount, error) {
		return func(ctx context.Context, request *fiken.BankAccountRequest) (*fiken.BankAccount, error) {
			return c.BankAccounts().Create(ctx, "acme-as", request)
		}
	})
}
