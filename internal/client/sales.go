package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gronnmann/fiken-go/internal/http"
	"github.com/gronnmann/fiken-go/pkg/fiken"
)

// SalesClient implements fiken.SalesClient.
type SalesClient struct {
	httpClient *http.Client
}

// NewSalesClient creates a new sales client.
func NewSalesClient(httpClient *http.Client) *SalesClient {
	return &SalesClient{httpClient: httpClient}
}

func salesPath(companySlug string) string {
	return "/companies/" + companySlug + "/sales"
}

func salePath(companySlug string, saleID int64) string {
	return salesPath(companySlug) + "/" + strconv.FormatInt(saleID, 10)
}

// List implements fiken.SalesClient.List.
func (c *SalesClient) List(ctx context.Context, companySlug string, opts *fiken.ListOptions) (*fiken.Page[fiken.Sale], error) {
	return listPage[fiken.Sale](ctx, c.httpClient, salesPath(companySlug), opts)
}

// ListAll implements fiken.SalesClient.ListAll.
func (c *SalesClient) ListAll(ctx context.Context, companySlug string, opts *fiken.ListOptions) ([]fiken.Sale, error) {
	return listAll[fiken.Sale](ctx, c.httpClient, salesPath(companySlug), opts)
}

// Get implements fiken.SalesClient.Get.
func (c *SalesClient) Get(ctx context.Context, companySlug string, saleID int64) (*fiken.Sale, error) {
	resp, err := c.httpClient.Get(ctx, salePath(companySlug, saleID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting sale: %w", err)
	}

	return decodeResponse[fiken.Sale](resp)
}

// Create implements fiken.SalesClient.Create.
func (c *SalesClient) Create(ctx context.Context, companySlug string, request *fiken.SaleRequest) (*fiken.Sale, error) {
	return createAndFollow[fiken.Sale](ctx, c.httpClient, salesPath(companySlug), request)
}

// Delete implements fiken.SalesClient.Delete. Sales are never removed from
// the ledger; the API marks them deleted through a PATCH sub-resource.
func (c *SalesClient) Delete(ctx context.Context, companySlug string, saleID int64) error {
	_, err := c.httpClient.Patch(ctx, salePath(companySlug, saleID)+"/delete", nil)
	if err != nil {
		return fmt.Errorf("deleting sale: %w", err)
	}

	return nil
}

// ListPayments implements fiken.SalesClient.ListPayments.
func (c *SalesClient) ListPayments(ctx context.Context, companySlug string, saleID int64) ([]fiken.Payment, error) {
	resp, err := c.httpClient.Get(ctx, salePath(companySlug, saleID)+"/payments", nil)
	if err != nil {
		return nil, fmt.Errorf("listing sale payments: %w", err)
	}

	return decodeSlice[fiken.Payment](resp)
}

// GetPayment implements fiken.SalesClient.GetPayment.
func (c *SalesClient) GetPayment(ctx context.Context, companySlug string, saleID, paymentID int64) (*fiken.Payment, error) {
	path := salePath(companySlug, saleID) + "/payments/" + strconv.FormatInt(paymentID, 10)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting sale payment: %w", err)
	}

	return decodeResponse[fiken.Payment](resp)
}

// CreatePayment implements fiken.SalesClient.CreatePayment.
func (c *SalesClient) CreatePayment(ctx context.Context, companySlug string, saleID int64, payment *fiken.Payment) (*fiken.Payment, error) {
	return createAndFollow[fiken.Payment](ctx, c.httpClient, salePath(companySlug, saleID)+"/payments", payment)
}

// ListAttachments implements fiken.SalesClient.ListAttachments.
func (c *SalesClient) ListAttachments(ctx context.Context, companySlug string, saleID int64) ([]fiken.Attachment, error) {
	resp, err := c.httpClient.Get(ctx, salePath(companySlug, saleID)+"/attachments", nil)
	if err != nil {
		return nil, fmt.Errorf("listing sale attachments: %w", err)
	}

	return decodeSlice[fiken.Attachment](resp)
}

// AddAttachment implements fiken.SalesClient.AddAttachment.
func (c *SalesClient) AddAttachment(ctx context.Context, companySlug string, saleID int64, filename string, file []byte) error {
	path := salePath(companySlug, saleID) + "/attachments"

	_, err := c.httpClient.PostMultipart(ctx, path, filename, file, map[string]string{"filename": filename})
	if err != nil {
		return fmt.Errorf("adding sale attachment: %w", err)
	}

	return nil
}
