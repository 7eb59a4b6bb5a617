package fiken

// Address represents a postal address as used across contacts, companies and
// invoice recipients.
type Address struct {
	StreetAddress      *string `json:"streetAddress,omitempty"      yaml:"streetAddress,omitempty"`
	StreetAddressLine2 *string `json:"streetAddressLine2,omitempty" yaml:"streetAddressLine2,omitempty"`
	City               *string `json:"city,omitempty"               yaml:"city,omitempty"`
	PostCode           *string `json:"postCode,omitempty"           yaml:"postCode,omitempty"`
	Country            string  `json:"country"                      yaml:"country"`
}

// Attachment represents a document attached to an invoice, sale, purchase,
// contact or journal entry.
type Attachment struct {
	Identifier  string  `json:"identifier,omitempty"  yaml:"identifier,omitempty"`
	DownloadURL string  `json:"downloadUrl,omitempty" yaml:"downloadUrl,omitempty"`
	Comment     *string `json:"comment,omitempty"     yaml:"comment,omitempty"`
	Type        string  `json:"type,omitempty"        yaml:"type,omitempty"`
}

// Payment represents a registered payment on a sale or purchase.
type Payment struct {
	PaymentID   int64   `json:"paymentId,omitempty"   yaml:"paymentId,omitempty"`
	Date        string  `json:"date"                  yaml:"date"`
	Account     string  `json:"account"               yaml:"account"`
	Amount      int64   `json:"amount"                yaml:"amount"`
	AmountInNok *int64  `json:"amountInNok,omitempty" yaml:"amountInNok,omitempty"`
	Currency    *string `json:"currency,omitempty"    yaml:"currency,omitempty"`
	Fee         *int64  `json:"fee,omitempty"         yaml:"fee,omitempty"`
}

// PageInfo carries the pagination metadata the Fiken API reports through the
// Fiken-Api-* response headers on list endpoints.
type PageInfo struct {
	// Page is the zero-based index of the returned page.
	Page int
	// PageCount is the total number of pages for the query.
	PageCount int
	// PageSize is the requested page size.
	PageSize int
	// ResultCount is the total number of matching items across all pages.
	ResultCount int
}

// Page is a single page of a list response: the decoded items plus the
// pagination metadata needed to fetch the rest.
type Page[T any] struct {
	Items []T
	PageInfo
}

// HasMore reports whether pages beyond this one exist.
func (p *Page[T]) HasMore() bool {
	return p.Page < p.PageCount-1
}
