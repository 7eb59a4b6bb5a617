package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gronnmann/fiken-go/internal/http"
	"github.com/gronnmann/fiken-go/pkg/fiken"
)

// InvoicesClient implements fiken.InvoicesClient.
type InvoicesClient struct {
	httpClient *http.Client
}

// NewInvoicesClient creates a new invoices client.
func NewInvoicesClient(httpClient *http.Client) *InvoicesClient {
	return &InvoicesClient{httpClient: httpClient}
}

func invoicesPath(companySlug string) string {
	return "/companies/" + companySlug + "/invoices"
}

func invoicePath(companySlug string, invoiceID int64) string {
	return invoicesPath(companySlug) + "/" + strconv.FormatInt(invoiceID, 10)
}

func invoiceDraftPath(companySlug string, draftID int64) string {
	return invoicesPath(companySlug) + "/drafts/" + strconv.FormatInt(draftID, 10)
}

// List implements fiken.InvoicesClient.List.
func (c *InvoicesClient) List(ctx context.Context, companySlug string, opts *fiken.ListOptions) (*fiken.Page[fiken.Invoice], error) {
	return listPage[fiken.Invoice](ctx, c.httpClient, invoicesPath(companySlug), opts)
}

// ListAll implements fiken.InvoicesClient.ListAll.
func (c *InvoicesClient) ListAll(ctx context.Context, companySlug string, opts *fiken.ListOptions) ([]fiken.Invoice, error) {
	return listAll[fiken.Invoice](ctx, c.httpClient, invoicesPath(companySlug), opts)
}

// Get implements fiken.InvoicesClient.Get.
func (c *InvoicesClient) Get(ctx context.Context, companySlug string, invoiceID int64) (*fiken.Invoice, error) {
	resp, err := c.httpClient.Get(ctx, invoicePath(companySlug, invoiceID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	return decodeResponse[fiken.Invoice](resp)
}

// Create implements fiken.InvoicesClient.Create.
func (c *InvoicesClient) Create(ctx context.Context, companySlug string, request *fiken.InvoiceRequest) (*fiken.Invoice, error) {
	return createAndFollow[fiken.Invoice](ctx, c.httpClient, invoicesPath(companySlug), request)
}

// Update implements fiken.InvoicesClient.Update.
func (c *InvoicesClient) Update(ctx context.Context, companySlug string, invoiceID int64, request *fiken.InvoiceUpdateRequest) (*fiken.Invoice, error) {
	resp, err := c.httpClient.Patch(ctx, invoicePath(companySlug, invoiceID), request)
	if err != nil {
		return nil, fmt.Errorf("updating invoice: %w", err)
	}

	if len(resp.Body) == 0 {
		return c.Get(ctx, companySlug, invoiceID)
	}

	return decodeResponse[fiken.Invoice](resp)
}

// ListAttachments implements fiken.InvoicesClient.ListAttachments.
func (c *InvoicesClient) ListAttachments(ctx context.Context, companySlug string, invoiceID int64) ([]fiken.Attachment, error) {
	resp, err := c.httpClient.Get(ctx, invoicePath(companySlug, invoiceID)+"/attachments", nil)
	if err != nil {
		return nil, fmt.Errorf("listing invoice attachments: %w", err)
	}

	return decodeSlice[fiken.Attachment](resp)
}

// AddAttachment implements fiken.InvoicesClient.AddAttachment.
func (c *InvoicesClient) AddAttachment(ctx context.Context, companySlug string, invoiceID int64, filename string, file []byte) error {
	path := invoicePath(companySlug, invoiceID) + "/attachments"

	_, err := c.httpClient.PostMultipart(ctx, path, filename, file, map[string]string{"filename": filename})
	if err != nil {
		return fmt.Errorf("adding invoice attachment: %w", err)
	}

	return nil
}

// Send implements fiken.InvoicesClient.Send.
func (c *InvoicesClient) Send(ctx context.Context, companySlug string, request *fiken.SendInvoiceRequest) error {
	_, err := c.httpClient.Post(ctx, invoicesPath(companySlug)+"/send", request)
	if err != nil {
		return fmt.Errorf("sending invoice: %w", err)
	}

	return nil
}

// ListDrafts implements fiken.InvoicesClient.ListDrafts.
func (c *InvoicesClient) ListDrafts(ctx context.Context, companySlug string, opts *fiken.ListOptions) (*fiken.Page[fiken.InvoiceishDraftResult], error) {
	return listPage[fiken.InvoiceishDraftResult](ctx, c.httpClient, invoicesPath(companySlug)+"/drafts", opts)
}

// GetDraft implements fiken.InvoicesClient.GetDraft.
func (c *InvoicesClient) GetDraft(ctx context.Context, companySlug string, draftID int64) (*fiken.InvoiceishDraftResult, error) {
	resp, err := c.httpClient.Get(ctx, invoiceDraftPath(companySlug, draftID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting invoice draft: %w", err)
	}

	return decodeResponse[fiken.InvoiceishDraftResult](resp)
}

// CreateDraft implements fiken.InvoicesClient.CreateDraft.
func (c *InvoicesClient) CreateDraft(ctx context.Context, companySlug string, request *fiken.InvoiceishDraftRequest) (*fiken.InvoiceishDraftResult, error) {
	return createAndFollow[fiken.InvoiceishDraftResult](ctx, c.httpClient, invoicesPath(companySlug)+"/drafts", request)
}

// UpdateDraft implements fiken.InvoicesClient.UpdateDraft.
func (c *InvoicesClient) UpdateDraft(ctx context.Context, companySlug string, draftID int64, request *fiken.InvoiceishDraftRequest) (*fiken.InvoiceishDraftResult, error) {
	resp, err := c.httpClient.Put(ctx, invoiceDraftPath(companySlug, draftID), request)
	if err != nil {
		return nil, fmt.Errorf("updating invoice draft: %w", err)
	}

	if len(resp.Body) == 0 {
		return c.GetDraft(ctx, companySlug, draftID)
	}

	return decodeResponse[fiken.InvoiceishDraftResult](resp)
}

// DeleteDraft implements fiken.InvoicesClient.DeleteDraft.
func (c *InvoicesClient) DeleteDraft(ctx context.Context, companySlug string, draftID int64) error {
	_, err := c.httpClient.Delete(ctx, invoiceDraftPath(companySlug, draftID))
	if err != nil {
		return fmt.Errorf("deleting invoice draft: %w", err)
	}

	return nil
}

// CreateInvoiceFromDraft implements fiken.InvoicesClient.CreateInvoiceFromDraft.
func (c *InvoicesClient) CreateInvoiceFromDraft(ctx context.Context, companySlug string, draftID int64) (*fiken.Invoice, error) {
	return createAndFollow[fiken.Invoice](ctx, c.httpClient, invoiceDraftPath(companySlug, draftID)+"/createInvoice", nil)
}
