package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gronnmann/fiken-go/internal/http"
	"github.com/gronnmann/fiken-go/pkg/fiken"
)

// JournalEntriesClient implements fiken.JournalEntriesClient.
type JournalEntriesClient struct {
	httpClient *http.Client
}

// NewJournalEntriesClient creates a new journal entries client.
func NewJournalEntriesClient(httpClient *http.Client) *JournalEntriesClient {
	return &JournalEntriesClient{httpClient: httpClient}
}

func journalEntriesPath(companySlug string) string {
	return "/companies/" + companySlug + "/journalEntries"
}

func journalEntryPath(companySlug string, journalEntryID int64) string {
	return journalEntriesPath(companySlug) + "/" + strconv.FormatInt(journalEntryID, 10)
}

// List implements fiken.JournalEntriesClient.List.
func (c *JournalEntriesClient) List(ctx context.Context, companySlug string, opts *fiken.ListOptions) (*fiken.Page[fiken.JournalEntry], error) {
	return listPage[fiken.JournalEntry](ctx, c.httpClient, journalEntriesPath(companySlug), opts)
}

// ListAll implements fiken.JournalEntriesClient.ListAll.
func (c *JournalEntriesClient) ListAll(ctx context.Context, companySlug string, opts *fiken.ListOptions) ([]fiken.JournalEntry, error) {
	return listAll[fiken.JournalEntry](ctx, c.httpClient, journalEntriesPath(companySlug), opts)
}

// Get implements fiken.JournalEntriesClient.Get.
func (c *JournalEntriesClient) Get(ctx context.Context, companySlug string, journalEntryID int64) (*fiken.JournalEntry, error) {
	resp, err := c.httpClient.Get(ctx, journalEntryPath(companySlug, journalEntryID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting journal entry: %w", err)
	}

	return decodeResponse[fiken.JournalEntry](resp)
}

// CreateGeneralJournalEntry implements
// fiken.JournalEntriesClient.CreateGeneralJournalEntry. Free-form entries go
// through their own endpoint; the created entry appears under
// journalEntries.
func (c *JournalEntriesClient) CreateGeneralJournalEntry(ctx context.Context, companySlug string, request *fiken.GeneralJournalEntryRequest) (*fiken.JournalEntry, error) {
	return createAndFollow[fiken.JournalEntry](ctx, c.httpClient, "/companies/"+companySlug+"/generalJournalEntries", request)
}

// ListAttachments implements fiken.JournalEntriesClient.ListAttachments.
func (c *JournalEntriesClient) ListAttachments(ctx context.Context, companySlug string, journalEntryID int64) ([]fiken.Attachment, error) {
	resp, err := c.httpClient.Get(ctx, journalEntryPath(companySlug, journalEntryID)+"/attachments", nil)
	if err != nil {
		return nil, fmt.Errorf("listing journal entry attachments: %w", err)
	}

	return decodeSlice[fiken.Attachment](resp)
}

// AddAttachment implements fiken.JournalEntriesClient.AddAttachment.
func (c *JournalEntriesClient) AddAttachment(ctx context.Context, companySlug string, journalEntryID int64, filename string, file []byte) error {
	path := journalEntryPath(companySlug, journalEntryID) + "/attachments"

	_, err := c.httpClient.PostMultipart(ctx, path, filename, file, map[string]string{"filename": filename})
	if err != nil {
		return fmt.Errorf("adding journal entry attachment: %w", err)
	}

	return nil
}
