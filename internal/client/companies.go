package client

import (
	"context"
	"fmt"

	"github.com/gronnmann/fiken-go/internal/http"
	"github.com/gronnmann/fiken-go/pkg/fiken"
)

// CompaniesClient implements fiken.CompaniesClient.
type CompaniesClient struct {
	httpClient *http.Client
}

// NewCompaniesClient creates a new companies client.
func NewCompaniesClient(httpClient *http.Client) *CompaniesClient {
	return &CompaniesClient{httpClient: httpClient}
}

// List implements fiken.CompaniesClient.List.
func (c *CompaniesClient) List(ctx context.Context, opts *fiken.ListOptions) (*fiken.Page[fiken.Company], error) {
	return listPage[fiken.Company](ctx, c.httpClient, "/companies", opts)
}

// ListAll implements fiken.CompaniesClient.ListAll.
func (c *CompaniesClient) ListAll(ctx context.Context, opts *fiken.ListOptions) ([]fiken.Company, error) {
	return listAll[fiken.Company](ctx, c.httpClient, "/companies", opts)
}

// Get implements fiken.CompaniesClient.Get.
func (c *CompaniesClient) Get(ctx context.Context, companySlug string) (*fiken.Company, error) {
	resp, err := c.httpClient.Get(ctx, "/companies/"+companySlug, nil)
	if err != nil {
		return nil, fmt.Errorf("getting company: %w", err)
	}

	return decodeResponse[fiken.Company](resp)
}
