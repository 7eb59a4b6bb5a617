package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gronnmann/fiken-go/internal/client"
	"github.com/gronnmann/fiken-go/pkg/fiken"
)

func TestInvoicesClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/companies/acme-as/invoices", request.URL.Path)
		assert.Equal(t, "2024-01-01", request.URL.Query().Get("issueDateFrom"))

		client.WriteTestPage(writer, []fiken.Invoice{
			{InvoiceID: 1, IssueDate: "2024-01-15", DueDate: "2024-01-29"},
		}, 0, 1, 25, 1)
	}))
	defer server.Close()

	c := client.NewTestClient(server.URL)

	opts := fiken.NewListOptions().WithFilter("issueDateFrom", "2024-01-01")

	page, err := c.Invoices().List(context.Background(), "acme-as", opts)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, int64(1), page.Items[0].InvoiceID)
}

func TestInvoicesClient_Create(t *testing.T) {
	t.Parallel()

	tests := []client.TestCreateOperation[fiken.InvoiceRequest, fiken.Invoice]{
		{
			Name: "created via location header",
			Request: &fiken.InvoiceRequest{
				IssueDate:       "2024-01-15",
				DueDate:         "2024-01-29",
				CustomerID:      100,
				BankAccountCode: "1920:10001",
			},
			ExpectedPath: "/companies/acme-as/invoices",
			LocationPath: "/companies/acme-as/invoices/42",
			Created:      &fiken.Invoice{InvoiceID: 42, IssueDate: "2024-01-15", DueDate: "2024-01-29"},
		},
	}

	client.RunCreateTests(t, tests, func(c *client.Client) func(context.Context, *fiken.InvoiceRequest) (*fiken.Invoice, error) {
		return func(ctx context.Context, request *fiken.InvoiceRequest) (*fiken.Invoice, error) {
			return c.Invoices().Create(ctx, "acme-as", request)
		}
	})
}

func TestInvoicesClient_Send(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/companies/acme-as/invoices/send", request.URL.Path)
		assert.Equal(t, "POST", request.Method)

		var body fiken.SendInvoiceRequest

		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, int64(42), body.InvoiceID)
		assert.Equal(t, "email", body.Method[0])

		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c := client.NewTestClient(server.URL)

	err := c.Invoices().Send(context.Background(), "acme-as", &fiken.SendInvoiceRequest{
		InvoiceID: 42,
		Method:    []string{"email"},
	})
	require.NoError(t, err)
}

func TestInvoicesClient_Drafts(t *testing.T) {
	t.Parallel()

	var server *httptest.Server

	server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch {
		case request.Method == "POST" && request.URL.Path == "/companies/acme-as/invoices/drafts":
			writer.Header().Set("Location", server.URL+"/companies/acme-as/invoices/drafts/7")
			writer.WriteHeader(http.StatusCreated)
		case request.Method == "GET" && request.URL.Path == "/companies/acme-as/invoices/drafts/7":
			_ = json.NewEncoder(writer).Encode(fiken.InvoiceishDraftResult{DraftID: 7})
		case request.Method == "POST" && request.URL.Path == "/companies/acme-as/invoices/drafts/7/createInvoice":
			writer.Header().Set("Location", server.URL+"/companies/acme-as/invoices/42")
			writer.WriteHeader(http.StatusCreated)
		case request.Method == "GET" && request.URL.Path == "/companies/acme-as/invoices/42":
			_ = json.NewEncoder(writer).Encode(fiken.Invoice{InvoiceID: 42})
		default:
			t.Errorf("unexpected request %s %s", request.Method, request.URL.Path)
		}
	}))
	defer server.Close()

	c := client.NewTestClient(server.URL)
	ctx := context.Background()

	draft, err := c.Invoices().CreateDraft(ctx, "acme-as", &fiken.InvoiceishDraftRequest{
		Type:       "invoice",
		CustomerID: 100,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), draft.DraftID)

	invoice, err := c.Invoices().CreateInvoiceFromDraft(ctx, "acme-as", draft.DraftID)
	require.NoError(t, err)
	assert.Equal(t, int64(42), invoice.InvoiceID)
}

func TestInvoicesClient_Update(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/companies/acme-as/invoices/42", request.URL.Path)
		assert.Equal(t, "PATCH", request.Method)

		_ = json.NewEncoder(writer).Encode(fiken.Invoice{InvoiceID: 42, Sent: true})
	}))
	defer server.Close()

	c := client.NewTestClient(server.URL)

	sentManually := true

	invoice, err := c.Invoices().Update(context.Background(), "acme-as", 42, &fiken.InvoiceUpdateRequest{SentManually: &sentManually})
	require.NoError(t, err)
	assert.True(t, invoice.Sent)
}
