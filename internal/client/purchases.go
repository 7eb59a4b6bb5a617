package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gronnmann/fiken-go/internal/http"
	"github.com/gronnmann/fiken-go/pkg/fiken"
)

// PurchasesClient implements fiken.PurchasesClient.
type PurchasesClient struct {
	httpClient *http.Client
}

// NewPurchasesClient creates a new purchases client.
func NewPurchasesClient(httpClient *http.Client) *PurchasesClient {
	return &PurchasesClient{httpClient: httpClient}
}

func purchasesPath(companySlug string) string {
	return "/companies/" + companySlug + "/purchases"
}

func purchasePath(companySlug string, purchaseID int64) string {
	return purchasesPath(companySlug) + "/" + strconv.FormatInt(purchaseID, 10)
}

// List implements fiken.PurchasesClient.List.
func (c *PurchasesClient) List(ctx context.Context, companySlug string, opts *fiken.ListOptions) (*fiken.Page[fiken.Purchase], error) {
	return listPage[fiken.Purchase](ctx, c.httpClient, purchasesPath(companySlug), opts)
}

// ListAll implements fiken.PurchasesClient.ListAll.
func (c *PurchasesClient) ListAll(ctx context.Context, companySlug string, opts *fiken.ListOptions) ([]fiken.Purchase, error) {
	return listAll[fiken.Purchase](ctx, c.httpClient, purchasesPath(companySlug), opts)
}

// Get implements fiken.PurchasesClient.Get.
func (c *PurchasesClient) Get(ctx context.Context, companySlug string, purchaseID int64) (*fiken.Purchase, error) {
	resp, err := c.httpClient.Get(ctx, purchasePath(companySlug, purchaseID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting purchase: %w", err)
	}

	return decodeResponse[fiken.Purchase](resp)
}

// Create implements fiken.PurchasesClient.Create.
func (c *PurchasesClient) Create(ctx context.Context, companySlug string, request *fiken.PurchaseRequest) (*fiken.Purchase, error) {
	return createAndFollow[fiken.Purchase](ctx, c.httpClient, purchasesPath(companySlug), request)
}

// Delete implements fiken.PurchasesClient.Delete. Purchases are marked
// deleted through a PATCH sub-resource, mirroring sales.
func (c *PurchasesClient) Delete(ctx context.Context, companySlug string, purchaseID int64) error {
	_, err := c.httpClient.Patch(ctx, purchasePath(companySlug, purchaseID)+"/delete", nil)
	if err != nil {
		return fmt.Errorf("deleting purchase: %w", err)
	}

	return nil
}

// ListPayments implements fiken.PurchasesClient.ListPayments.
func (c *PurchasesClient) ListPayments(ctx context.Context, companySlug string, purchaseID int64) ([]fiken.Payment, error) {
	resp, err := c.httpClient.Get(ctx, purchasePath(companySlug, purchaseID)+"/payments", nil)
	if err != nil {
		return nil, fmt.Errorf("listing purchase payments: %w", err)
	}

	return decodeSlice[fiken.Payment](resp)
}

// GetPayment implements fiken.PurchasesClient.GetPayment.
func (c *PurchasesClient) GetPayment(ctx context.Context, companySlug string, purchaseID, paymentID int64) (*fiken.Payment, error) {
	path := purchasePath(companySlug, purchaseID) + "/payments/" + strconv.FormatInt(paymentID, 10)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting purchase payment: %w", err)
	}

	return decodeResponse[fiken.Payment](resp)
}

// CreatePayment implements fiken.PurchasesClient.CreatePayment.
func (c *PurchasesClient) CreatePayment(ctx context.Context, companySlug string, purchaseID int64, payment *fiken.Payment) (*fiken.Payment, error) {
	return createAndFollow[fiken.Payment](ctx, c.httpClient, purchasePath(companySlug, purchaseID)+"/payments", payment)
}

// ListAttachments implements fiken.PurchasesClient.ListAttachments.
func (c *PurchasesClient) ListAttachments(ctx context.Context, companySlug string, purchaseID int64) ([]fiken.Attachment, error) {
	resp, err := c.httpClient.Get(ctx, purchasePath(companySlug, purchaseID)+"/attachments", nil)
	if err != nil {
		return nil, fmt.Errorf("listing purchase attachments: %w", err)
	}

	return decodeSlice[fiken.Attachment](resp)
}

// AddAttachment implements fiken.PurchasesClient.AddAttachment.
func (c *PurchasesClient) AddAttachment(ctx context.Context, companySlug string, purchaseID int64, filename string, file []byte) error {
	path := purchasePath(companySlug, purchaseID) + "/attachments"

	_, err := c.httpClient.PostMultipart(ctx, path, filename, file, map[string]string{"filename": filename})
	if err != nil {
		return fmt.Errorf("adding purchase attachment: %w", err)
	}

	return nil
}
