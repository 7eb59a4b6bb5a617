package client

import (
	"context"

	"github.com/gronnmann/fiken-go/pkg/fiken"
)

// ScopedClient implements fiken.CompanyClient by delegating to the parent
// client's resource clients with a fixed company slug.
type ScopedClient struct {
	client *Client
	slug   string
}

// Slug implements fiken.CompanyClient.Slug.
func (s *ScopedClient) Slug() string {
	return s.slug
}

// GetCompany implements fiken.CompanyClient.GetCompany.
func (s *ScopedClient) GetCompany(ctx context.Context) (*fiken.Company, error) {
	return s.client.Companies().Get(ctx, s.slug)
}

// GetContacts implements fiken.CompanyClient.GetContacts.
func (s *ScopedClient) GetContacts(ctx context.Context, opts *fiken.ListOptions) (*fiken.Page[fiken.Contact], error) {
	return s.client.Contacts().List(ctx, s.slug, opts)
}

// GetContact implements fiken.CompanyClient.GetContact.
func (s *ScopedClient) GetContact(ctx context.Context, contactID int64) (*fiken.Contact, error) {
	return s.client.Contacts().Get(ctx, s.slug, contactID)
}

// CreateContact implements fiken.CompanyClient.CreateContact.
func (s *ScopedClient) CreateContact(ctx context.Context, contact *fiken.Contact) (*fiken.Contact, error) {
	return s.client.Contacts().Create(ctx, s.slug, contact)
}

// UpdateContact implements fiken.CompanyClient.UpdateContact.
func (s *ScopedClient) UpdateContact(ctx context.Context, contactID int64, contact *fiken.Contact) (*fiken.Contact, error) {
	return s.client.Contacts().Update(ctx, s.slug, contactID, contact)
}

// DeleteContact implements fiken.CompanyClient.DeleteContact.
func (s *ScopedClient) DeleteContact(ctx context.Context, contactID int64) error {
	return s.client.Contacts().Delete(ctx, s.slug, contactID)
}

// GetProducts implements fiken.CompanyClient.GetProducts.
func (s *ScopedClient) GetProducts(ctx context.Context, opts *fiken.ListOptions) (*fiken.Page[fiken.Product], error) {
	return s.client.Products().List(ctx, s.slug, opts)
}

// GetProduct implements fiken.CompanyClient.GetProduct.
func (s *ScopedClient) GetProduct(ctx context.Context, productID int64) (*fiken.Product, error) {
	return s.client.Products().Get(ctx, s.slug, productID)
}

// CreateProduct implements fiken.CompanyClient.CreateProduct.
func (s *ScopedClient) CreateProduct(ctx context.Context, product *fiken.Product) (*fiken.Product, error) {
	return s.client.Products().Create(ctx, s.slug, product)
}

// UpdateProduct implements fiken.CompanyClient.UpdateProduct.
func (s *ScopedClient) UpdateProduct(ctx context.Context, productID int64, product *fiken.Product) (*fiken.Product, error) {
	return s.client.Products().Update(ctx, s.slug, productID, product)
}

// DeleteProduct implements fiken.CompanyClient.DeleteProduct.
func (s *ScopedClient) DeleteProduct(ctx context.Context, productID int64) error {
	return s.client.Products().Delete(ctx, s.slug, productID)
}

// GetInvoices implements fiken.CompanyClient.GetInvoices.
func (s *ScopedClient) GetInvoices(ctx context.Context, opts *fiken.ListOptions) (*fiken.Page[fiken.Invoice], error) {
	return s.client.Invoices().List(ctx, s.slug, opts)
}

// GetInvoice implements fiken.CompanyClient.GetInvoice.
func (s *ScopedClient) GetInvoice(ctx context.Context, invoiceID int64) (*fiken.Invoice, error) {
	return s.client.Invoices().Get(ctx, s.slug, invoiceID)
}

// CreateInvoice implements fiken.CompanyClient.CreateInvoice.
func (s *ScopedClient) CreateInvoice(ctx context.Context, request *fiken.InvoiceRequest) (*fiken.Invoice, error) {
	return s.client.Invoices().Create(ctx, s.slug, request)
}

// SendInvoice implements fiken.CompanyClient.SendInvoice.
func (s *ScopedClient) SendInvoice(ctx context.Context, request *fiken.SendInvoiceRequest) error {
	return s.client.Invoices().Send(ctx, s.slug, request)
}

// GetSales implements fiken.CompanyClient.GetSales.
func (s *ScopedClient) GetSales(ctx context.Context, opts *fiken.ListOptions) (*fiken.Page[fiken.Sale], error) {
	return s.client.Sales().List(ctx, s.slug, opts)
}

// CreateSale implements fiken.CompanyClient.CreateSale.
func (s *ScopedClient) CreateSale(ctx context.Context, request *fiken.SaleRequest) (*fiken.Sale, error) {
	return s.client.Sales().Create(ctx, s.slug, request)
}

// GetPurchases implements fiken.CompanyClient.GetPurchases.
func (s *ScopedClient) GetPurchases(ctx context.Context, opts *fiken.ListOptions) (*fiken.Page[fiken.Purchase], error) {
	return s.client.Purchases().List(ctx, s.slug, opts)
}

// CreatePurchase implements fiken.CompanyClient.CreatePurchase.
func (s *ScopedClient) CreatePurchase(ctx context.Context, request *fiken.PurchaseRequest) (*fiken.Purchase, error) {
	return s.client.Purchases().Create(ctx, s.slug, request)
}

// GetProjects implements fiken.CompanyClient.GetProjects.
func (s *ScopedClient) GetProjects(ctx context.Context, opts *fiken.ListOptions) (*fiken.Page[fiken.Project], error) {
	return s.client.Projects().List(ctx, s.slug, opts)
}

// GetBankAccounts implements fiken.CompanyClient.GetBankAccounts.
func (s *ScopedClient) GetBankAccounts(ctx context.Context, opts *fiken.ListOptions) (*fiken.Page[fiken.BankAccount], error) {
	return s.client.BankAccounts().List(ctx, s.slug, opts)
}
