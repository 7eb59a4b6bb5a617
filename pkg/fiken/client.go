package fiken

import (
	"context"
	"time"
)

// Client is the full Fiken API surface. Obtain one through the fikenclient
// package.
type Client interface {
	// GetUser returns information about the authenticated user.
	GetUser(ctx context.Context) (*Userinfo, error)

	Companies() CompaniesClient
	Contacts() ContactsClient
	Products() ProductsClient
	Invoices() InvoicesClient
	Sales() SalesClient
	Purchases() PurchasesClient
	Projects() ProjectsClient
	BankAccounts() BankAccountsClient
	Accounts() AccountsClient
	JournalEntries() JournalEntriesClient
	Transactions() TransactionsClient

	// ForCompany returns a client scoped to a single company so the slug
	// does not have to be repeated per call.
	ForCompany(companySlug string) CompanyClient
}

// CompaniesClient accesses the companies the user is authorized for.
type CompaniesClient interface {
	List(ctx context.Context, opts *ListOptions) (*Page[Company], error)
	ListAll(ctx context.Context, opts *ListOptions) ([]Company, error)
	Get(ctx context.Context, companySlug string) (*Company, error)
}

// ContactsClient accesses a company's contacts and their contact persons.
type ContactsClient interface {
	List(ctx context.Context, companySlug string, opts *ListOptions) (*Page[Contact], error)
	ListAll(ctx context.Context, companySlug string, opts *ListOptions) ([]Contact, error)
	Get(ctx context.Context, companySlug string, contactID int64) (*Contact, error)
	Create(ctx context.Context, companySlug string, contact *Contact) (*Contact, error)
	Update(ctx context.Context, companySlug string, contactID int64, contact *Contact) (*Contact, error)
	Delete(ctx context.Context, companySlug string, contactID int64) error
	AddAttachment(ctx context.Context, companySlug string, contactID int64, filename string, file []byte) error

	ListContactPersons(ctx context.Context, companySlug string, contactID int64) ([]ContactPerson, error)
	GetContactPerson(ctx context.Context, companySlug string, contactID, personID int64) (*ContactPerson, error)
	AddContactPerson(ctx context.Context, companySlug string, contactID int64, person *ContactPerson) (*ContactPerson, error)
	UpdateContactPerson(ctx context.Context, companySlug string, contactID, personID int64, person *ContactPerson) (*ContactPerson, error)
	DeleteContactPerson(ctx context.Context, companySlug string, contactID, personID int64) error
}

// ProductsClient accesses a company's products.
type ProductsClient interface {
	List(ctx context.Context, companySlug string, opts *ListOptions) (*Page[Product], error)
	ListAll(ctx context.Context, companySlug string, opts *ListOptions) ([]Product, error)
	Get(ctx context.Context, companySlug string, productID int64) (*Product, error)
	Create(ctx context.Context, companySlug string, product *Product) (*Product, error)
	Update(ctx context.Context, companySlug string, productID int64, product *Product) (*Product, error)
	Delete(ctx context.Context, companySlug string, productID int64) error
	CreateSalesReport(ctx context.Context, companySlug string, request *ProductSalesReportRequest) ([]ProductSalesLine, error)
}

// InvoicesClient accesses a company's invoices and invoice drafts.
type InvoicesClient interface {
	List(ctx context.Context, companySlug string, opts *ListOptions) (*Page[Invoice], error)
	ListAll(ctx context.Context, companySlug string, opts *ListOptions) ([]Invoice, error)
	Get(ctx context.Context, companySlug string, invoiceID int64) (*Invoice, error)
	Create(ctx context.Context, companySlug string, request *InvoiceRequest) (*Invoice, error)
	Update(ctx context.Context, companySlug string, invoiceID int64, request *InvoiceUpdateRequest) (*Invoice, error)
	ListAttachments(ctx context.Context, companySlug string, invoiceID int64) ([]Attachment, error)
	AddAttachment(ctx context.Context, companySlug string, invoiceID int64, filename string, file []byte) error
	Send(ctx context.Context, companySlug string, request *SendInvoiceRequest) error

	ListDrafts(ctx context.Context, companySlug string, opts *ListOptions) (*Page[InvoiceishDraftResult], error)
	GetDraft(ctx context.Context, companySlug string, draftID int64) (*InvoiceishDraftResult, error)
	CreateDraft(ctx context.Context, companySlug string, request *InvoiceishDraftRequest) (*InvoiceishDraftResult, error)
	UpdateDraft(ctx context.Context, companySlug string, draftID int64, request *InvoiceishDraftRequest) (*InvoiceishDraftResult, error)
	DeleteDraft(ctx context.Context, companySlug string, draftID int64) error
	CreateInvoiceFromDraft(ctx context.Context, companySlug string, draftID int64) (*Invoice, error)
}

// SalesClient accesses a company's sales, their payments and attachments.
type SalesClient interface {
	List(ctx context.Context, companySlug string, opts *ListOptions) (*Page[Sale], error)
	ListAll(ctx context.Context, companySlug string, opts *ListOptions) ([]Sale, error)
	Get(ctx context.Context, companySlug string, saleID int64) (*Sale, error)
	Create(ctx context.Context, companySlug string, request *SaleRequest) (*Sale, error)
	Delete(ctx context.Context, companySlug string, saleID int64) error

	ListPayments(ctx context.Context, companySlug string, saleID int64) ([]Payment, error)
	GetPayment(ctx context.Context, companySlug string, saleID, paymentID int64) (*Payment, error)
	CreatePayment(ctx context.Context, companySlug string, saleID int64, payment *Payment) (*Payment, error)
	ListAttachments(ctx context.Context, companySlug string, saleID int64) ([]Attachment, error)
	AddAttachment(ctx context.Context, companySlug string, saleID int64, filename string, file []byte) error
}

// PurchasesClient accesses a company's purchases, their payments and
// attachments.
type PurchasesClient interface {
	List(ctx context.Context, companySlug string, opts *ListOptions) (*Page[Purchase], error)
	ListAll(ctx context.Context, companySlug string, opts *ListOptions) ([]Purchase, error)
	Get(ctx context.Context, companySlug string, purchaseID int64) (*Purchase, error)
	Create(ctx context.Context, companySlug string, request *PurchaseRequest) (*Purchase, error)
	Delete(ctx context.Context, companySlug string, purchaseID int64) error

	ListPayments(ctx context.Context, companySlug string, purchaseID int64) ([]Payment, error)
	GetPayment(ctx context.Context, companySlug string, purchaseID, paymentID int64) (*Payment, error)
	CreatePayment(ctx context.Context, companySlug string, purchaseID int64, payment *Payment) (*Payment, error)
	ListAttachments(ctx context.Context, companySlug string, purchaseID int64) ([]Attachment, error)
	AddAttachment(ctx context.Context, companySlug string, purchaseID int64, filename string, file []byte) error
}

// ProjectsClient accesses a company's projects.
type ProjectsClient interface {
	List(ctx context.Context, companySlug string, opts *ListOptions) (*Page[Project], error)
	ListAll(ctx context.Context, companySlug string, opts *ListOptions) ([]Project, error)
	Get(ctx context.Context, companySlug string, projectID int64) (*Project, error)
	Create(ctx context.Context, companySlug string, request *ProjectRequest) (*Project, error)
	Update(ctx context.Context, companySlug string, projectID int64, request *ProjectRequest) (*Project, error)
	Delete(ctx context.Context, companySlug string, projectID int64) error
}

// BankAccountsClient accesses a company's bank accounts.
type BankAccountsClient interface {
	List(ctx context.Context, companySlug string, opts *ListOptions) (*Page[BankAccount], error)
	Get(ctx context.Context, companySlug string, bankAccountID int64) (*BankAccount, error)
	Create(ctx context.Context, companySlug string, request *BankAccountRequest) (*BankAccount, error)
}

// AccountsClient accesses the chart of accounts and account balances.
type AccountsClient interface {
	List(ctx context.Context, companySlug string, opts *ListOptions) (*Page[Account], error)
	Get(ctx context.Context, companySlug, accountCode string) (*Account, error)
	ListBalances(ctx context.Context, companySlug, date string, opts *ListOptions) (*Page[AccountBalance], error)
	GetBalance(ctx context.Context, companySlug, accountCode, date string) (*AccountBalance, error)
}

// JournalEntriesClient accesses a company's journal entries.
type JournalEntriesClient interface {
	List(ctx context.Context, companySlug string, opts *ListOptions) (*Page[JournalEntry], error)
	ListAll(ctx context.Context, companySlug string, opts *ListOptions) ([]JournalEntry, error)
	Get(ctx context.Context, companySlug string, journalEntryID int64) (*JournalEntry, error)
	CreateGeneralJournalEntry(ctx context.Context, companySlug string, request *GeneralJournalEntryRequest) (*JournalEntry, error)
	ListAttachments(ctx context.Context, companySlug string, journalEntryID int64) ([]Attachment, error)
	AddAttachment(ctx context.Context, companySlug string, journalEntryID int64, filename string, file []byte) error
}

// TransactionsClient accesses a company's bookkeeping transactions.
type TransactionsClient interface {
	List(ctx context.Context, companySlug string, opts *ListOptions) (*Page[Transaction], error)
	Get(ctx context.Context, companySlug string, transactionID int64) (*Transaction, error)
}

// CompanyClient is a client bound to a single company slug. It mirrors the
// company-scoped operations of the resource clients without the slug
// parameter.
type CompanyClient interface {
	Slug() string
	GetCompany(ctx context.Context) (*Company, error)

	GetContacts(ctx context.Context, opts *ListOptions) (*Page[Contact], error)
	GetContact(ctx context.Context, contactID int64) (*Contact, error)
	CreateContact(ctx context.Context, contact *Contact) (*Contact, error)
	UpdateContact(ctx context.Context, contactID int64, contact *Contact) (*Contact, error)
	DeleteContact(ctx context.Context, contactID int64) error

	GetProducts(ctx context.Context, opts *ListOptions) (*Page[Product], error)
	GetProduct(ctx context.Context, productID int64) (*Product, error)
	CreateProduct(ctx context.Context, product *Product) (*Product, error)
	UpdateProduct(ctx context.Context, productID int64, product *Product) (*Product, error)
	DeleteProduct(ctx context.Context, productID int64) error

	GetInvoices(ctx context.Context, opts *ListOptions) (*Page[Invoice], error)
	GetInvoice(ctx context.Context, invoiceID int64) (*Invoice, error)
	CreateInvoice(ctx context.Context, request *InvoiceRequest) (*Invoice, error)
	SendInvoice(ctx context.Context, request *SendInvoiceRequest) error

	GetSales(ctx context.Context, opts *ListOptions) (*Page[Sale], error)
	CreateSale(ctx context.Context, request *SaleRequest) (*Sale, error)
	GetPurchases(ctx context.Context, opts *ListOptions) (*Page[Purchase], error)
	CreatePurchase(ctx context.Context, request *PurchaseRequest) (*Purchase, error)
	GetProjects(ctx context.Context, opts *ListOptions) (*Page[Project], error)
	GetBankAccounts(ctx context.Context, opts *ListOptions) (*Page[BankAccount], error)
}

// Logger is the logging interface accepted by the client. Adapt your
// application logger (zap, slog, ...) to it.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration.
//
// # Authentication
//
// Exactly one credential variant must be provided:
//  1. APIToken: a personal API token used directly as a static Bearer token.
//  2. AccessToken + RefreshToken + ClientID + ClientSecret: OAuth2
//     credentials for third-party applications. The access token is
//     refreshed through the token endpoint when it nears expiry or when the
//     API rejects it with 401.
//
// # Timeouts and retries
//
// Per-request cancellation is controlled via the context passed to client
// methods. HTTPTimeout bounds a single HTTP exchange. Transient-failure
// retries are disabled by default since the API's own rate limit makes
// blind retries counterproductive; they can be enabled via RetryMax.
type Config struct {
	// APIToken is a personal API token from Fiken.
	APIToken string
	// AccessToken is the current OAuth2 access token.
	AccessToken string
	// RefreshToken is the OAuth2 refresh token used to renew AccessToken.
	RefreshToken string
	// ClientID is the OAuth2 application client ID.
	ClientID string
	// ClientSecret is the OAuth2 application client secret.
	ClientSecret string

	// BaseURL overrides the API base URL (default https://api.fiken.no/api/v2).
	BaseURL string
	// TokenURL overrides the OAuth2 token endpoint (default
	// https://fiken.no/oauth/token).
	TokenURL string

	// HTTPTimeout bounds a single HTTP exchange (default 30s).
	HTTPTimeout time.Duration
	// RetryMax enables up to N retries for connection errors and 429/5xx
	// responses. 0 disables retrying.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries when RetryMax > 0.
	RetryWaitMax time.Duration

	// Debug enables verbose request/response logging when Logger is set.
	Debug bool
	// Logger receives structured log output from the HTTP layer.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}

// HasAPIToken reports whether the static-token credential variant is set.
func (c *Config) HasAPIToken() bool {
	return c.APIToken != ""
}

// HasOAuth2 reports whether the full OAuth2 credential variant is set.
func (c *Config) HasOAuth2() bool {
	return c.AccessToken != "" && c.RefreshToken != "" && c.ClientID != "" && c.ClientSecret != ""
}
