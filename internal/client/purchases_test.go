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

func TestPurchasesClient_Create(t *testing.T) {
	t.Parallel()

	supplierID := int64(9)

	tests := []client.TestCreateOperation[fiken.PurchaseRequest, fiken.Purchase]{
		{
			Name: "created via location header",
			Request: &fiken.PurchaseRequest{
				Date:       "2024-03-01",
				Kind:       "supplier",
				Currency:   "NOK",
				SupplierID: &supplierID,
			},
			ExpectedPath: "/companies/acme-as/purchases",
			LocationPath: "/companies/acme-as/purchases/88",
			Created:      &fiken.Purchase{PurchaseID: 88, Date: "2024-03-01", Kind: "supplier"},
		},
	}

	client.RunCreateTests(t, tests, func(c *client.Client) func(context.Context, *fiken.PurchaseRequest) (*fiken.Purchase, error) {
		return func(ctx context.Context, request *fiken.PurchaseRequest) (*fiken.Purchase, error) {
			return c.Purchases().Create(ctx, "acme-as", request)
		}
	})
}

func TestPurchasesClient_Delete_UsesPatchSubresource(t *testing.T) {
	t.Parallel()

	tests := []client.TestDeleteOperation{
		{
			Name:           "marks purchase deleted",
			ID:             88,
			ExpectedPath:   "/companies/acme-as/purchases/88/delete",
			ExpectedMethod: "PATCH",
			StatusCode:     http.StatusOK,
		},
	}

	client.RunDeleteTests(t, tests, func(c *client.Client) func(context.Context, int64) error {
		return func(ctx context.Context, id int64) error {
			return c.Purchases().Delete(ctx, "acme-as", id)
		}
	})
}

func TestPurchasesClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/companies/acme-as/purchases", request.URL.Path)
		assert.Equal(t, "0", request.URL.Query().Get("page"))

		client.WriteTestPage(writer, []fiken.Purchase{
			{PurchaseID: 88, Date: "2024-03-01", Kind: "supplier"},
			{PurchaseID: 89, Date: "2024-03-02", Kind: "cash_purchase"},
		}, 0, 1, 25, 2)
	}))
	defer server.Close()

	c := client.NewTestClient(server.URL)

	page, err := c.Purchases().List(context.Background(), "acme-as", &fiken.ListOptions{Page: 0})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, int64(89), page.Items[1].PurchaseID)
	assert.False(t, page.HasMore())
}

func TestPurchasesClient_Payments(t *testing.T) {
	t.Parallel()

	var server *httptest.Server

	server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch {
		case request.Method == "GET" && request.URL.Path == "/companies/acme-as/purchases/88/payments":
			_ = json.NewEncoder(writer).Encode([]fiken.Payment{
				{PaymentID: 3, Date: "2024-03-05", Amount: 40000, Account: "1920:10001"},
			})
		case request.Method == "POST" && request.URL.Path == "/companies/acme-as/purchases/88/payments":
			writer.Header().Set("Location", server.URL+"/companies/acme-as/purchases/88/payments/4")
			writer.WriteHeader(http.StatusCreated)
		case request.Method == "GET" && request.URL.Path == "/companies/acme-as/purchases/88/payments/4":
			_ = json.NewEncoder(writer).Encode(fiken.Payment{PaymentID: 4, Date: "2024-03-06", Amount: 2000})
		default:
			t.Errorf("unexpected request %s %s", request.Method, request.URL.Path)
		}
	}))
	defer server.Close()

	c := client.NewTestClient(server.URL)
	ctx := context.Background()

	payments, err := c.Purchases().ListPayments(ctx, "acme-as", 88)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, int64(40000), payments[0].Amount)

	created, err := c.Purchases().CreatePayment(ctx, "acme-as", 88, &fiken.Payment{Date: "2024-03-06", Amount: 2000})
	require.NoError(t, err)
	assert.Equal(t, int64(4), created.PaymentID)
}
