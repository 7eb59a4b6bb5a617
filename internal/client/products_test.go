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

func TestProductsClient_Get(t *testing.T) {
	t.Parallel()

	tests := []client.TestGetOperation[fiken.Product]{
		{
			Name:         "existing product",
			ID:           10,
			ExpectedPath: "/companies/acme-as/products/10",
			StatusCode:   http.StatusOK,
			Response:     &fiken.Product{ProductID: 10, Name: "Consulting hour", VatType: "HIGH", Active: true},
		},
		{
			Name:         "missing product",
			ID:           404,
			ExpectedPath: "/companies/acme-as/products/404",
			StatusCode:   http.StatusNotFound,
			WantErr:      true,
		},
	}

	client.RunGetTests(t, tests, func(c *client.Client) func(context.Context, int64) (*fiken.Product, error) {
		return func(ctx context.Context, id int64) (*fiken.Product, error) {
			return c.Products().Get(ctx, "acme-as", id)
		}
	})
}

func TestProductsClient_Create(t *testing.T) {
	t.Parallel()

	tests := []client.TestCreateOperation[fiken.Product, fiken.Product]{
		{
			Name:         "created via location header",
			Request:      &fiken.Product{Name: "Consulting hour", VatType: "HIGH"},
			ExpectedPath: "/companies/acme-as/products",
			LocationPath: "/companies/acme-as/products/10",
			Created:      &fiken.Product{ProductID: 10, Name: "Consulting hour", VatType: "HIGH"},
		},
	}

	client.RunCreateTests(t, tests, func(c *client.Client) func(context.Context, *fiken.Product) (*fiken.Product, error) {
		return func(ctx context.Context, product *fiken.Product) (*fiken.Product, error) {
			return c.Products().Create(ctx, "acme-as", product)
		}
	})
}

func TestProductsClient_CreateSalesReport(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/companies/acme-as/products/salesReport", request.URL.Path)
		assert.Equal(t, "POST", request.Method)

		var body fiken.ProductSalesReportRequest

		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, "2024-01-01", body.From)
		assert.Equal(t, "2024-12-31", body.To)

		lines := []fiken.ProductSalesLine{{Product: fiken.Product{ProductID: 10, Name: "Consulting hour"}}}
		lines[0].Sold.Count = 12

		_ = json.NewEncoder(writer).Encode(lines)
	}))
	defer server.Close()

	c := client.NewTestClient(server.URL)

	report, err := c.Products().CreateSalesReport(context.Background(), "acme-as", &fiken.ProductSalesReportRequest{
		From: "2024-01-01",
		To:   "2024-12-31",
	})
	require.NoError(t, err)
	require.Len(t, report, 1)
	assert.Equal(t, int64(12), report[0].Sold.Count)
}

func TestProductsClient_Delete(t *testing.T) {
	t.Parallel()

	tests := []client.TestDeleteOperation{
		{
			Name:         "successful delete",
			ID:           10,
			ExpectedPath: "/companies/acme-as/products/10",
			StatusCode:   http.StatusNoContent,
		},
	}

	client.RunDeleteTests(t, tests, func(c *client.Client) func(context.Context, int64) error {
		return func(ctx context.Context, id int64) error {
			return c.Products().Delete(ctx, "acme-as", id)
		}
	})
}
