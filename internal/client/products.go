package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gronnmann/fiken-go/internal/http"
	"github.com/gronnmann/fiken-go/pkg/fiken"
)

// ProductsClient implements fiken.ProductsClient.
type ProductsClient struct {
	httpClient *http.Client
}

// NewProductsClient creates a new products client.
func NewProductsClient(httpClient *http.Client) *ProductsClient {
	return &ProductsClient{httpClient: httpClient}
}

func productsPath(companySlug string) string {
	return "/companies/" + companySlug + "/products"
}

func productPath(companySlug string, productID int64) string {
	return productsPath(companySlug) + "/" + strconv.FormatInt(productID, 10)
}

// List implements fiken.ProductsClient.List.
func (c *ProductsClient) List(ctx context.Context, companySlug string, opts *fiken.ListOptions) (*fiken.Page[fiken.Product], error) {
	return listPage[fiken.Product](ctx, c.httpClient, productsPath(companySlug), opts)
}

// ListAll implements fiken.ProductsClient.ListAll.
func (c *ProductsClient) ListAll(ctx context.Context, companySlug string, opts *fiken.ListOptions) ([]fiken.Product, error) {
	return listAll[fiken.Product](ctx, c.httpClient, productsPath(companySlug), opts)
}

// Get implements fiken.ProductsClient.Get.
func (c *ProductsClient) Get(ctx context.Context, companySlug string, productID int64) (*fiken.Product, error) {
	resp, err := c.httpClient.Get(ctx, productPath(companySlug, productID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting product: %w", err)
	}

	return decodeResponse[fiken.Product](resp)
}

// Create implements fiken.ProductsClient.Create.
func (c *ProductsClient) Create(ctx context.Context, companySlug string, product *fiken.Product) (*fiken.Product, error) {
	return createAndFollow[fiken.Product](ctx, c.httpClient, productsPath(companySlug), product)
}

// Update implements fiken.ProductsClient.Update.
func (c *ProductsClient) Update(ctx context.Context, companySlug string, productID int64, product *fiken.Product) (*fiken.Product, error) {
	resp, err := c.httpClient.Put(ctx, productPath(companySlug, productID), product)
	if err != nil {
		return nil, fmt.Errorf("updating product: %w", err)
	}

	if len(resp.Body) == 0 {
		return c.Get(ctx, companySlug, productID)
	}

	return decodeResponse[fiken.Product](resp)
}

// Delete implements fiken.ProductsClient.Delete.
func (c *ProductsClient) Delete(ctx context.Context, companySlug string, productID int64) error {
	_, err := c.httpClient.Delete(ctx, productPath(companySlug, productID))
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	return nil
}

// CreateSalesReport implements fiken.ProductsClient.CreateSalesReport.
func (c *ProductsClient) CreateSalesReport(ctx context.Context, companySlug string, request *fiken.ProductSalesReportRequest) ([]fiken.ProductSalesLine, error) {
	resp, err := c.httpClient.Post(ctx, productsPath(companySlug)+"/salesReport", request)
	if err != nil {
		return nil, fmt.Errorf("creating product sales report: %w", err)
	}

	return decodeSlice[fiken.ProductSalesLine](resp)
}
