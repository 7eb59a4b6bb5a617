// Package client implements the fiken.Client interface on top of the
// internal transport.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gronnmann/fiken-go/internal/auth"
	"github.com/gronnmann/fiken-go/internal/constants"
	"github.com/gronnmann/fiken-go/internal/http"
	"github.com/gronnmann/fiken-go/pkg/fiken"
)

// Client implements the fiken.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	baseURL      string
	logger       fiken.Logger

	// Resource clients
	companies      fiken.CompaniesClient
	contacts       fiken.ContactsClient
	products       fiken.ProductsClient
	invoices       fiken.InvoicesClient
	sales          fiken.SalesClient
	purchases      fiken.PurchasesClient
	projects       fiken.ProjectsClient
	bankAccounts   fiken.BankAccountsClient
	accounts       fiken.AccountsClient
	journalEntries fiken.JournalEntriesClient
	transactions   fiken.TransactionsClient
}

// New creates a new Fiken API client from configuration.
func New(config *fiken.Config) (*Client, error) {
	if config == nil {
		return nil, fiken.ErrConfigRequired
	}

	tokenManager, err := createTokenManager(config)
	if err != nil {
		return nil, err
	}

	return NewWithTokenManager(config, tokenManager)
}

// NewWithTokenManager creates a client around a caller-supplied token
// manager, e.g. one that persists rotated tokens.
func NewWithTokenManager(config *fiken.Config, tokenManager auth.TokenManager) (*Client, error) {
	if config == nil {
		return nil, fiken.ErrConfigRequired
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	httpClient := http.NewClient(baseURL, tokenManager, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		logger:       config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// createTokenManager picks the token manager matching the configured
// credential variant.
func createTokenManager(config *fiken.Config) (auth.TokenManager, error) {
	switch {
	case config.HasAPIToken():
		return auth.NewStaticTokenManager(config.APIToken), nil
	case config.HasOAuth2():
		return auth.NewOAuth2TokenManager(OAuth2Config(config)), nil
	default:
		return nil, fiken.ErrCredentialsRequired
	}
}

// OAuth2Config maps client configuration onto the auth package's OAuth2
// credentials.
func OAuth2Config(config *fiken.Config) *auth.OAuth2Config {
	tokenURL := config.TokenURL
	if tokenURL == "" {
		tokenURL = constants.DefaultTokenURL
	}

	return &auth.OAuth2Config{
		TokenURL:     tokenURL,
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		AccessToken:  config.AccessToken,
		RefreshToken: config.RefreshToken,
	}
}

// createHTTPClientOptions builds transport options from config.
func createHTTPClientOptions(config *fiken.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// initializeResourceClients sets up all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.companies = NewCompaniesClient(c.httpClient)
	c.contacts = NewContactsClient(c.httpClient)
	c.products = NewProductsClient(c.httpClient)
	c.invoices = NewInvoicesClient(c.httpClient)
	c.sales = NewSalesClient(c.httpClient)
	c.purchases = NewPurchasesClient(c.httpClient)
	c.projects = NewProjectsClient(c.httpClient)
	c.bankAccounts = NewBankAccountsClient(c.httpClient)
	c.accounts = NewAccountsClient(c.httpClient)
	c.journalEntries = NewJournalEntriesClient(c.httpClient)
	c.transactions = NewTransactionsClient(c.httpClient)
}

// GetUser implements fiken.Client.GetUser.
func (c *Client) GetUser(ctx context.Context) (*fiken.Userinfo, error) {
	resp, err := c.httpClient.Get(ctx, "/user", nil)
	if err != nil {
		return nil, fmt.Errorf("getting user info: %w", err)
	}

	return decodeResponse[fiken.Userinfo](resp)
}

// Companies implements fiken.Client.Companies.
func (c *Client) Companies() fiken.CompaniesClient { return c.companies }

// Contacts implements fiken.Client.Contacts.
func (c *Client) Contacts() fiken.ContactsClient { return c.contacts }

// Products implements fiken.Client.Products.
func (c *Client) Products() fiken.ProductsClient { return c.products }

// Invoices implements fiken.Client.Invoices.
func (c *Client) Invoices() fiken.InvoicesClient { return c.invoices }

// Sales implements fiken.Client.Sales.
func (c *Client) Sales() fiken.SalesClient { return c.sales }

// Purchases implements fiken.Client.Purchases.
func (c *Client) Purchases() fiken.PurchasesClient { return c.purchases }

// Projects implements fiken.Client.Projects.
func (c *Client) Projects() fiken.ProjectsClient { return c.projects }

// BankAccounts implements fiken.Client.BankAccounts.
func (c *Client) BankAccounts() fiken.BankAccountsClient { return c.bankAccounts }

// Accounts implements fiken.Client.Accounts.
func (c *Client) Accounts() fiken.AccountsClient { return c.accounts }

// JournalEntries implements fiken.Client.JournalEntries.
func (c *Client) JournalEntries() fiken.JournalEntriesClient { return c.journalEntries }

// Transactions implements fiken.Client.Transactions.
func (c *Client) Transactions() fiken.TransactionsClient { return c.transactions }

// ForCompany implements fiken.Client.ForCompany.
func (c *Client) ForCompany(companySlug string) fiken.CompanyClient {
	return &ScopedClient{client: c, slug: companySlug}
}

// decodeResponse unmarshals a 2xx body into T, preserving the raw body on
// failure.
func decodeResponse[T any](resp *http.Response) (*T, error) {
	var result T

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, &fiken.DecodeError{Err: err, Body: resp.Body}
	}

	return &result, nil
}

// decodeSlice unmarshals a JSON-array body into []T.
func decodeSlice[T any](resp *http.Response) ([]T, error) {
	var result []T

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, &fiken.DecodeError{Err: err, Body: resp.Body}
	}

	return result, nil
}

// decodePage unmarshals a JSON-array body and lifts pagination metadata
// from the Fiken-Api-* response headers.
func decodePage[T any](resp *http.Response) (*fiken.Page[T], error) {
	items, err := decodeSlice[T](resp)
	if err != nil {
		return nil, err
	}

	return &fiken.Page[T]{
		Items: items,
		PageInfo: fiken.PageInfo{
			Page:        headerInt(resp, "Fiken-Api-Page"),
			PageCount:   headerInt(resp, "Fiken-Api-Page-Count"),
			PageSize:    headerInt(resp, "Fiken-Api-Page-Size"),
			ResultCount: headerInt(resp, "Fiken-Api-Result-Count"),
		},
	}, nil
}

func headerInt(resp *http.Response, name string) int {
	value, err := strconv.Atoi(resp.Headers.Get(name))
	if err != nil {
		return 0
	}

	return value
}

// pager adapts a list endpoint to fiken.PageClient so the shared pagination
// helpers can drive it.
type pager[T any] struct {
	httpClient *http.Client
}

// FetchPage implements fiken.PageClient.
func (p pager[T]) FetchPage(ctx context.Context, path string, opts *fiken.ListOptions) (*fiken.Page[T], error) {
	resp, err := p.httpClient.Get(ctx, path, opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", path, err)
	}

	return decodePage[T](resp)
}

// listPage fetches a single page from a list endpoint.
func listPage[T any](ctx context.Context, httpClient *http.Client, path string, opts *fiken.ListOptions) (*fiken.Page[T], error) {
	return pager[T]{httpClient: httpClient}.FetchPage(ctx, path, opts)
}

// listAll drains a list endpoint across pages.
func listAll[T any](ctx context.Context, httpClient *http.Client, path string, opts *fiken.ListOptions) ([]T, error) {
	return fiken.FetchAllPages[T](ctx, pager[T]{httpClient: httpClient}, path, opts, nil)
}

// createAndFollow issues a POST and resolves the created resource through
// the Location header, the way the API reports creations. When the response
// carries a body instead, the body is decoded directly.
func createAndFollow[T any](ctx context.Context, httpClient *http.Client, path string, body interface{}) (*T, error) {
	resp, err := httpClient.Post(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}

	if len(resp.Body) > 0 && json.Valid(resp.Body) && resp.Body[0] == '{' {
		return decodeResponse[T](resp)
	}

	location := resp.Headers.Get("Location")
	if location == "" {
		return nil, fiken.ErrNoLocationHeader
	}

	followPath, err := locationPath(httpClient.BaseURL(), location)
	if err != nil {
		return nil, err
	}

	followResp, err := httpClient.Get(ctx, followPath, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching created resource: %w", err)
	}

	return decodeResponse[T](followResp)
}

// locationPath reduces a Location header to a path relative to the API base
// URL.
func locationPath(baseURL, location string) (string, error) {
	if strings.HasPrefix(location, baseURL) {
		return strings.TrimPrefix(location, baseURL), nil
	}

	parsed, err := url.Parse(location)
	if err != nil {
		return "", fmt.Errorf("parsing Location header: %w", err)
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parsing base URL: %w", err)
	}

	return strings.TrimPrefix(parsed.Path, base.Path), nil
}
