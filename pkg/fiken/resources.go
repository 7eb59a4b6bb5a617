package fiken

// Userinfo represents the authenticated user as returned by GET /user.
type Userinfo struct {
	Name  string `json:"name"  yaml:"name"`
	Email string `json:"email" yaml:"email"`
}

// Company represents a Fiken company the authenticated user has access to.
type Company struct {
	Name                string   `json:"name"                          yaml:"name"`
	Slug                string   `json:"slug"                          yaml:"slug"`
	OrganizationNumber  string   `json:"organizationNumber,omitempty"  yaml:"organizationNumber,omitempty"`
	VatType             string   `json:"vatType,omitempty"             yaml:"vatType,omitempty"`
	Address             *Address `json:"address,omitempty"             yaml:"address,omitempty"`
	PhoneNumber         *string  `json:"phoneNumber,omitempty"         yaml:"phoneNumber,omitempty"`
	Email               *string  `json:"email,omitempty"               yaml:"email,omitempty"`
	CreationDate        string   `json:"creationDate,omitempty"        yaml:"creationDate,omitempty"`
	HasAPIAccess        bool     `json:"hasApiAccess,omitempty"        yaml:"hasApiAccess,omitempty"`
	TestCompany         bool     `json:"testCompany,omitempty"         yaml:"testCompany,omitempty"`
	AccountingStartDate string   `json:"accountingStartDate,omitempty" yaml:"accountingStartDate,omitempty"`
}

// Contact represents a customer or supplier.
type Contact struct {
	ContactID                 int64    `json:"contactId,omitempty"                 yaml:"contactId,omitempty"`
	CreatedDate               string   `json:"createdDate,omitempty"               yaml:"createdDate,omitempty"`
	LastModifiedDate          string   `json:"lastModifiedDate,omitempty"          yaml:"lastModifiedDate,omitempty"`
	Name                      string   `json:"name"                                yaml:"name"`
	Email                     *string  `json:"email,omitempty"                     yaml:"email,omitempty"`
	OrganizationNumber        *string  `json:"organizationNumber,omitempty"        yaml:"organizationNumber,omitempty"`
	CustomerNumber            *int64   `json:"customerNumber,omitempty"            yaml:"customerNumber,omitempty"`
	SupplierNumber            *int64   `json:"supplierNumber,omitempty"            yaml:"supplierNumber,omitempty"`
	MemberNumber              *int64   `json:"memberNumber,omitempty"              yaml:"memberNumber,omitempty"`
	Customer                  bool     `json:"customer,omitempty"                  yaml:"customer,omitempty"`
	Supplier                  bool     `json:"supplier,omitempty"                  yaml:"supplier,omitempty"`
	PhoneNumber               *string  `json:"phoneNumber,omitempty"               yaml:"phoneNumber,omitempty"`
	Currency                  *string  `json:"currency,omitempty"                  yaml:"currency,omitempty"`
	Language                  *string  `json:"language,omitempty"                  yaml:"language,omitempty"`
	Inactive                  bool     `json:"inactive,omitempty"                  yaml:"inactive,omitempty"`
	DaysUntilInvoicingDueDate *int     `json:"daysUntilInvoicingDueDate,omitempty" yaml:"daysUntilInvoicingDueDate,omitempty"`
	Address                   *Address `json:"address,omitempty"                   yaml:"address,omitempty"`
	Groups                    []string `json:"groups,omitempty"                    yaml:"groups,omitempty"`
	Notes                     []string `json:"notes,omitempty"                     yaml:"notes,omitempty"`
}

// ContactPerson represents a person attached to a contact.
type ContactPerson struct {
	ContactPersonID int64    `json:"contactPersonId,omitempty" yaml:"contactPersonId,omitempty"`
	Name            string   `json:"name"                      yaml:"name"`
	Email           string   `json:"email"                     yaml:"email"`
	PhoneNumber     *string  `json:"phoneNumber,omitempty"     yaml:"phoneNumber,omitempty"`
	Address         *Address `json:"address,omitempty"         yaml:"address,omitempty"`
}

// Product represents a product or service the company sells.
type Product struct {
	ProductID        int64   `json:"productId,omitempty"        yaml:"productId,omitempty"`
	CreatedDate      string  `json:"createdDate,omitempty"      yaml:"createdDate,omitempty"`
	LastModifiedDate string  `json:"lastModifiedDate,omitempty" yaml:"lastModifiedDate,omitempty"`
	Name             string  `json:"name"                       yaml:"name"`
	UnitPrice        *int64  `json:"unitPrice,omitempty"        yaml:"unitPrice,omitempty"`
	IncomeAccount    *string `json:"incomeAccount,omitempty"    yaml:"incomeAccount,omitempty"`
	VatType          string  `json:"vatType"                    yaml:"vatType"`
	Active           bool    `json:"active"                     yaml:"active"`
	ProductNumber    *string `json:"productNumber,omitempty"    yaml:"productNumber,omitempty"`
	Stock            *int64  `json:"stock,omitempty"            yaml:"stock,omitempty"`
	Note             *string `json:"note,omitempty"             yaml:"note,omitempty"`
}

// ProductSalesReportRequest asks for a sales report over a date range.
type ProductSalesReportRequest struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to"   yaml:"to"`
}

// ProductSalesLine is a single line of a product sales report.
type ProductSalesLine struct {
	Product Product `json:"product" yaml:"product"`
	Sold    struct {
		Count       int64 `json:"count"       yaml:"count"`
		NetAmount   int64 `json:"netAmount"   yaml:"netAmount"`
		GrossAmount int64 `json:"grossAmount" yaml:"grossAmount"`
	} `json:"sold" yaml:"sold"`
}

// OrderLine is an invoice, draft or credit note line.
type OrderLine struct {
	Description       *string  `json:"description,omitempty"       yaml:"description,omitempty"`
	Comment           *string  `json:"comment,omitempty"           yaml:"comment,omitempty"`
	IncomeAccount     *string  `json:"incomeAccount,omitempty"     yaml:"incomeAccount,omitempty"`
	VatType           *string  `json:"vatType,omitempty"           yaml:"vatType,omitempty"`
	UnitPrice         *int64   `json:"unitPrice,omitempty"         yaml:"unitPrice,omitempty"`
	Quantity          float64  `json:"quantity"                    yaml:"quantity"`
	Discount          *float64 `json:"discount,omitempty"          yaml:"discount,omitempty"`
	ProductID         *int64   `json:"productId,omitempty"         yaml:"productId,omitempty"`
	ProductName       *string  `json:"productName,omitempty"       yaml:"productName,omitempty"`
	Net               *int64   `json:"net,omitempty"               yaml:"net,omitempty"`
	Vat               *int64   `json:"vat,omitempty"               yaml:"vat,omitempty"`
	Gross             *int64   `json:"gross,omitempty"             yaml:"gross,omitempty"`
	VatInPercent      *float64 `json:"vatInPercent,omitempty"      yaml:"vatInPercent,omitempty"`
}

// Invoice represents an issued invoice.
type Invoice struct {
	InvoiceID          int64       `json:"invoiceId,omitempty"          yaml:"invoiceId,omitempty"`
	CreatedDate        string      `json:"createdDate,omitempty"        yaml:"createdDate,omitempty"`
	LastModifiedDate   string      `json:"lastModifiedDate,omitempty"   yaml:"lastModifiedDate,omitempty"`
	InvoiceNumber      *int64      `json:"invoiceNumber,omitempty"      yaml:"invoiceNumber,omitempty"`
	Kid                *string     `json:"kid,omitempty"                yaml:"kid,omitempty"`
	IssueDate          string      `json:"issueDate"                    yaml:"issueDate"`
	DueDate            string      `json:"dueDate"                      yaml:"dueDate"`
	OriginalDueDate    *string     `json:"originalDueDate,omitempty"    yaml:"originalDueDate,omitempty"`
	Net                int64       `json:"net,omitempty"                yaml:"net,omitempty"`
	Vat                int64       `json:"vat,omitempty"                yaml:"vat,omitempty"`
	Gross              int64       `json:"gross,omitempty"              yaml:"gross,omitempty"`
	Cash               bool        `json:"cash,omitempty"               yaml:"cash,omitempty"`
	InvoiceText        *string     `json:"invoiceText,omitempty"        yaml:"invoiceText,omitempty"`
	YourReference      *string     `json:"yourReference,omitempty"      yaml:"yourReference,omitempty"`
	OurReference       *string     `json:"ourReference,omitempty"       yaml:"ourReference,omitempty"`
	OrderReference     *string     `json:"orderReference,omitempty"     yaml:"orderReference,omitempty"`
	Currency           string      `json:"currency,omitempty"           yaml:"currency,omitempty"`
	Lines              []OrderLine `json:"lines,omitempty"              yaml:"lines,omitempty"`
	Customer           *Contact    `json:"customer,omitempty"           yaml:"customer,omitempty"`
	Sent               bool        `json:"sent,omitempty"               yaml:"sent,omitempty"`
	Settled            bool        `json:"settled,omitempty"            yaml:"settled,omitempty"`
	InvoiceDraftUUID   *string     `json:"invoiceDraftUuid,omitempty"   yaml:"invoiceDraftUuid,omitempty"`
	ProjectID          *int64      `json:"projectId,omitempty"          yaml:"projectId,omitempty"`
	BankAccountNumber  *string     `json:"bankAccountNumber,omitempty"  yaml:"bankAccountNumber,omitempty"`
}

// InvoiceRequest is the payload for creating an invoice.
type InvoiceRequest struct {
	IssueDate         string      `json:"issueDate"                   yaml:"issueDate"`
	DueDate           string      `json:"dueDate"                     yaml:"dueDate"`
	Lines             []OrderLine `json:"lines"                       yaml:"lines"`
	CustomerID        int64       `json:"customerId"                  yaml:"customerId"`
	BankAccountCode   string      `json:"bankAccountCode"             yaml:"bankAccountCode"`
	Cash              *bool       `json:"cash,omitempty"              yaml:"cash,omitempty"`
	OurReference      *string     `json:"ourReference,omitempty"      yaml:"ourReference,omitempty"`
	YourReference     *string     `json:"yourReference,omitempty"     yaml:"yourReference,omitempty"`
	OrderReference    *string     `json:"orderReference,omitempty"    yaml:"orderReference,omitempty"`
	InvoiceText       *string     `json:"invoiceText,omitempty"       yaml:"invoiceText,omitempty"`
	Currency          *string     `json:"currency,omitempty"          yaml:"currency,omitempty"`
	ContactPersonID   *int64      `json:"contactPersonId,omitempty"   yaml:"contactPersonId,omitempty"`
	ProjectID         *int64      `json:"projectId,omitempty"         yaml:"projectId,omitempty"`
	UUID              *string     `json:"uuid,omitempty"              yaml:"uuid,omitempty"`
	PaymentAccount    *string     `json:"paymentAccount,omitempty"    yaml:"paymentAccount,omitempty"`
}

// InvoiceUpdateRequest is the payload for PATCHing an invoice.
type InvoiceUpdateRequest struct {
	NewDueDate *string `json:"newDueDate,omitempty" yaml:"newDueDate,omitempty"`
	SentManually *bool `json:"sentManually,omitempty" yaml:"sentManually,omitempty"`
}

// SendInvoiceRequest asks Fiken to deliver an invoice to the customer.
type SendInvoiceRequest struct {
	InvoiceID              int64   `json:"invoiceId"                        yaml:"invoiceId"`
	Method                 []string `json:"method"                          yaml:"method"`
	IncludeDocumentAttachments *bool `json:"includeDocumentAttachments,omitempty" yaml:"includeDocumentAttachments,omitempty"`
	RecipientName          *string `json:"recipientName,omitempty"          yaml:"recipientName,omitempty"`
	RecipientEmail         *string `json:"recipientEmail,omitempty"         yaml:"recipientEmail,omitempty"`
	Message                *string `json:"message,omitempty"                yaml:"message,omitempty"`
	EmailSendOption        *string `json:"emailSendOption,omitempty"        yaml:"emailSendOption,omitempty"`
}

// InvoiceishDraftRequest is the payload for creating or updating an invoice
// draft.
type InvoiceishDraftRequest struct {
	Type            string      `json:"type"                      yaml:"type"`
	DaysUntilDueDate int        `json:"daysUntilDueDate"          yaml:"daysUntilDueDate"`
	CustomerID      int64       `json:"customerId"                yaml:"customerId"`
	Lines           []OrderLine `json:"lines"                     yaml:"lines"`
	InvoiceText     *string     `json:"invoiceText,omitempty"     yaml:"invoiceText,omitempty"`
	YourReference   *string     `json:"yourReference,omitempty"   yaml:"yourReference,omitempty"`
	OurReference    *string     `json:"ourReference,omitempty"    yaml:"ourReference,omitempty"`
	Currency        *string     `json:"currency,omitempty"        yaml:"currency,omitempty"`
	BankAccountNumber *string   `json:"bankAccountNumber,omitempty" yaml:"bankAccountNumber,omitempty"`
	ProjectID       *int64      `json:"projectId,omitempty"       yaml:"projectId,omitempty"`
}

// InvoiceishDraftResult represents an invoice draft.
type InvoiceishDraftResult struct {
	DraftID          int64       `json:"draftId,omitempty"          yaml:"draftId,omitempty"`
	UUID             *string     `json:"uuid,omitempty"             yaml:"uuid,omitempty"`
	Type             string      `json:"type,omitempty"             yaml:"type,omitempty"`
	IssueDate        *string     `json:"issueDate,omitempty"        yaml:"issueDate,omitempty"`
	DaysUntilDueDate int         `json:"daysUntilDueDate,omitempty" yaml:"daysUntilDueDate,omitempty"`
	Customers        []Contact   `json:"customers,omitempty"        yaml:"customers,omitempty"`
	Lines            []OrderLine `json:"lines,omitempty"            yaml:"lines,omitempty"`
	Net              *int64      `json:"net,omitempty"              yaml:"net,omitempty"`
	Gross            *int64      `json:"gross,omitempty"            yaml:"gross,omitempty"`
	Currency         *string     `json:"currency,omitempty"         yaml:"currency,omitempty"`
}

// Sale represents a registered sale.
type Sale struct {
	SaleID           int64       `json:"saleId,omitempty"           yaml:"saleId,omitempty"`
	LastModifiedDate string      `json:"lastModifiedDate,omitempty" yaml:"lastModifiedDate,omitempty"`
	Date             string      `json:"date"                       yaml:"date"`
	Kind             string      `json:"kind"                       yaml:"kind"`
	Settled          bool        `json:"settled,omitempty"          yaml:"settled,omitempty"`
	TotalPaid        *int64      `json:"totalPaid,omitempty"        yaml:"totalPaid,omitempty"`
	Lines            []OrderLine `json:"lines,omitempty"            yaml:"lines,omitempty"`
	CustomerID       *int64      `json:"customerId,omitempty"       yaml:"customerId,omitempty"`
	Currency         string      `json:"currency,omitempty"         yaml:"currency,omitempty"`
	DueDate          *string     `json:"dueDate,omitempty"          yaml:"dueDate,omitempty"`
	Kid              *string     `json:"kid,omitempty"              yaml:"kid,omitempty"`
	PaymentAccount   *string     `json:"paymentAccount,omitempty"   yaml:"paymentAccount,omitempty"`
	Deleted          bool        `json:"deleted,omitempty"          yaml:"deleted,omitempty"`
	ProjectID        *int64      `json:"projectId,omitempty"        yaml:"projectId,omitempty"`
}

// SaleRequest is the payload for creating a sale.
type SaleRequest struct {
	Date           string      `json:"date"                     yaml:"date"`
	Kind           string      `json:"kind"                     yaml:"kind"`
	Lines          []OrderLine `json:"lines"                    yaml:"lines"`
	Currency       string      `json:"currency"                 yaml:"currency"`
	CustomerID     *int64      `json:"customerId,omitempty"     yaml:"customerId,omitempty"`
	DueDate        *string     `json:"dueDate,omitempty"        yaml:"dueDate,omitempty"`
	Kid            *string     `json:"kid,omitempty"            yaml:"kid,omitempty"`
	PaymentAccount *string     `json:"paymentAccount,omitempty" yaml:"paymentAccount,omitempty"`
	PaymentDate    *string     `json:"paymentDate,omitempty"    yaml:"paymentDate,omitempty"`
	ProjectID      *int64      `json:"projectId,omitempty"      yaml:"projectId,omitempty"`
}

// Purchase represents a registered purchase.
type Purchase struct {
	PurchaseID       int64       `json:"purchaseId,omitempty"       yaml:"purchaseId,omitempty"`
	Date             string      `json:"date"                       yaml:"date"`
	Kind             string      `json:"kind"                       yaml:"kind"`
	Paid             bool        `json:"paid,omitempty"             yaml:"paid,omitempty"`
	Lines            []OrderLine `json:"lines,omitempty"            yaml:"lines,omitempty"`
	SupplierID       *int64      `json:"supplierId,omitempty"       yaml:"supplierId,omitempty"`
	Currency         string      `json:"currency,omitempty"         yaml:"currency,omitempty"`
	DueDate          *string     `json:"dueDate,omitempty"          yaml:"dueDate,omitempty"`
	Kid              *string     `json:"kid,omitempty"              yaml:"kid,omitempty"`
	PaymentAccount   *string     `json:"paymentAccount,omitempty"   yaml:"paymentAccount,omitempty"`
	PaymentDate      *string     `json:"paymentDate,omitempty"      yaml:"paymentDate,omitempty"`
	Deleted          bool        `json:"deleted,omitempty"          yaml:"deleted,omitempty"`
	ProjectID        *int64      `json:"projectId,omitempty"        yaml:"projectId,omitempty"`
}

// PurchaseRequest is the payload for creating a purchase.
type PurchaseRequest struct {
	Date           string      `json:"date"                     yaml:"date"`
	Kind           string      `json:"kind"                     yaml:"kind"`
	Lines          []OrderLine `json:"lines"                    yaml:"lines"`
	Currency       string      `json:"currency"                 yaml:"currency"`
	SupplierID     *int64      `json:"supplierId,omitempty"     yaml:"supplierId,omitempty"`
	DueDate        *string     `json:"dueDate,omitempty"        yaml:"dueDate,omitempty"`
	Kid            *string     `json:"kid,omitempty"            yaml:"kid,omitempty"`
	PaymentAccount *string     `json:"paymentAccount,omitempty" yaml:"paymentAccount,omitempty"`
	PaymentDate    *string     `json:"paymentDate,omitempty"    yaml:"paymentDate,omitempty"`
	ProjectID      *int64      `json:"projectId,omitempty"      yaml:"projectId,omitempty"`
}

// Project represents a project.
type Project struct {
	ProjectID   int64    `json:"projectId,omitempty"   yaml:"projectId,omitempty"`
	Number      string   `json:"number"                yaml:"number"`
	Name        string   `json:"name"                  yaml:"name"`
	Description *string  `json:"description,omitempty" yaml:"description,omitempty"`
	StartDate   string   `json:"startDate"             yaml:"startDate"`
	EndDate     *string  `json:"endDate,omitempty"     yaml:"endDate,omitempty"`
	Contact     *Contact `json:"contact,omitempty"     yaml:"contact,omitempty"`
	Completed   bool     `json:"completed,omitempty"   yaml:"completed,omitempty"`
}

// ProjectRequest is the payload for creating or updating a project.
type ProjectRequest struct {
	Number      string  `json:"number"                yaml:"number"`
	Name        string  `json:"name"                  yaml:"name"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
	StartDate   string  `json:"startDate"             yaml:"startDate"`
	EndDate     *string `json:"endDate,omitempty"     yaml:"endDate,omitempty"`
	ContactID   *int64  `json:"contactId,omitempty"   yaml:"contactId,omitempty"`
	Completed   *bool   `json:"completed,omitempty"   yaml:"completed,omitempty"`
}

// BankAccount represents a bank account registered with the company.
type BankAccount struct {
	BankAccountID     int64   `json:"bankAccountId,omitempty"     yaml:"bankAccountId,omitempty"`
	Name              string  `json:"name"                        yaml:"name"`
	AccountCode       string  `json:"accountCode,omitempty"       yaml:"accountCode,omitempty"`
	BankAccountNumber string  `json:"bankAccountNumber"           yaml:"bankAccountNumber"`
	Iban              *string `json:"iban,omitempty"              yaml:"iban,omitempty"`
	Bic               *string `json:"bic,omitempty"               yaml:"bic,omitempty"`
	ForeignService    *string `json:"foreignService,omitempty"    yaml:"foreignService,omitempty"`
	Type              string  `json:"type"                        yaml:"type"`
	ReconciledBalance *int64  `json:"reconciledBalance,omitempty" yaml:"reconciledBalance,omitempty"`
	Inactive          bool    `json:"inactive,omitempty"          yaml:"inactive,omitempty"`
}

// BankAccountRequest is the payload for creating a bank account.
type BankAccountRequest struct {
	Name              string  `json:"name"                     yaml:"name"`
	BankAccountNumber string  `json:"bankAccountNumber"        yaml:"bankAccountNumber"`
	Type              string  `json:"type"                     yaml:"type"`
	Iban              *string `json:"iban,omitempty"           yaml:"iban,omitempty"`
	Bic               *string `json:"bic,omitempty"            yaml:"bic,omitempty"`
	ForeignService    *string `json:"foreignService,omitempty" yaml:"foreignService,omitempty"`
	Inactive          *bool   `json:"inactive,omitempty"       yaml:"inactive,omitempty"`
}

// Account represents a bookkeeping account from the chart of accounts.
type Account struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
}

// AccountBalance represents the balance of a bookkeeping account at a date.
type AccountBalance struct {
	Code    string `json:"code"    yaml:"code"`
	Name    string `json:"name"    yaml:"name"`
	Balance int64  `json:"balance" yaml:"balance"`
}

// JournalEntryLine is a single debit/credit line of a journal entry.
type JournalEntryLine struct {
	Amount        int64   `json:"amount"                  yaml:"amount"`
	Account       *string `json:"account,omitempty"       yaml:"account,omitempty"`
	VatCode       *string `json:"vatCode,omitempty"       yaml:"vatCode,omitempty"`
	DebitAccount  *string `json:"debitAccount,omitempty"  yaml:"debitAccount,omitempty"`
	DebitVatCode  *string `json:"debitVatCode,omitempty"  yaml:"debitVatCode,omitempty"`
	CreditAccount *string `json:"creditAccount,omitempty" yaml:"creditAccount,omitempty"`
	CreditVatCode *string `json:"creditVatCode,omitempty" yaml:"creditVatCode,omitempty"`
	ProjectID     []int64 `json:"projectId,omitempty"     yaml:"projectId,omitempty"`
}

// JournalEntry represents a single journal entry.
type JournalEntry struct {
	JournalEntryID   int64              `json:"journalEntryId,omitempty"   yaml:"journalEntryId,omitempty"`
	CreatedDate      string             `json:"createdDate,omitempty"      yaml:"createdDate,omitempty"`
	LastModifiedDate string             `json:"lastModifiedDate,omitempty" yaml:"lastModifiedDate,omitempty"`
	TransactionID    *int64             `json:"transactionId,omitempty"    yaml:"transactionId,omitempty"`
	OffsetTransactionID *int64          `json:"offsetTransactionId,omitempty" yaml:"offsetTransactionId,omitempty"`
	Description      string             `json:"description"                yaml:"description"`
	Date             string             `json:"date"                       yaml:"date"`
	Lines            []JournalEntryLine `json:"lines,omitempty"            yaml:"lines,omitempty"`
	Attachments      []Attachment       `json:"attachments,omitempty"      yaml:"attachments,omitempty"`
}

// GeneralJournalEntryRequest is the payload for creating a free-form journal
// entry.
type GeneralJournalEntryRequest struct {
	Description    string         `json:"description,omitempty" yaml:"description,omitempty"`
	OpenReference  *string        `json:"openReference,omitempty" yaml:"openReference,omitempty"`
	JournalEntries []JournalEntry `json:"journalEntries"        yaml:"journalEntries"`
}

// Transaction represents a bookkeeping transaction (a set of journal
// entries).
type Transaction struct {
	TransactionID    int64          `json:"transactionId,omitempty"    yaml:"transactionId,omitempty"`
	CreatedDate      string         `json:"createdDate,omitempty"      yaml:"createdDate,omitempty"`
	LastModifiedDate string         `json:"lastModifiedDate,omitempty" yaml:"lastModifiedDate,omitempty"`
	Description      *string        `json:"description,omitempty"     yaml:"description,omitempty"`
	Type             *string        `json:"type,omitempty"             yaml:"type,omitempty"`
	Entries          []JournalEntry `json:"entries,omitempty"          yaml:"entries,omitempty"`
	Deletable        bool           `json:"deletable,omitempty"        yaml:"deletable,omitempty"`
}
