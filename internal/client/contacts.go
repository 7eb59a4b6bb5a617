package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gronnmann/fiken-go/internal/http"
	"github.com/gronnmann/fiken-go/pkg/fiken"
)

// ContactsClient implements fiken.ContactsClient.
type ContactsClient struct {
	httpClient *http.Client
}

// NewContactsClient creates a new contacts client.
func NewContactsClient(httpClient *http.Client) *ContactsClient {
	return &ContactsClient{httpClient: httpClient}
}

func contactsPath(companySlug string) string {
	return "/companies/" + companySlug + "/contacts"
}

func contactPath(companySlug string, contactID int64) string {
	return contactsPath(companySlug) + "/" + strconv.FormatInt(contactID, 10)
}

// List implements fiken.ContactsClient.List.
func (c *ContactsClient) List(ctx context.Context, companySlug string, opts *fiken.ListOptions) (*fiken.Page[fiken.Contact], error) {
	return listPage[fiken.Contact](ctx, c.httpClient, contactsPath(companySlug), opts)
}

// ListAll implements fiken.ContactsClient.ListAll.
func (c *ContactsClient) ListAll(ctx context.Context, companySlug string, opts *fiken.ListOptions) ([]fiken.Contact, error) {
	return listAll[fiken.Contact](ctx, c.httpClient, contactsPath(companySlug), opts)
}

// Get implements fiken.ContactsClient.Get.
func (c *ContactsClient) Get(ctx context.Context, companySlug string, contactID int64) (*fiken.Contact, error) {
	resp, err := c.httpClient.Get(ctx, contactPath(companySlug, contactID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting contact: %w", err)
	}

	return decodeResponse[fiken.Contact](resp)
}

// Create implements fiken.ContactsClient.Create.
func (c *ContactsClient) Create(ctx context.Context, companySlug string, contact *fiken.Contact) (*fiken.Contact, error) {
	return createAndFollow[fiken.Contact](ctx, c.httpClient, contactsPath(companySlug), contact)
}

// Update implements fiken.ContactsClient.Update.
func (c *ContactsClient) Update(ctx context.Context, companySlug string, contactID int64, contact *fiken.Contact) (*fiken.Contact, error) {
	resp, err := c.httpClient.Put(ctx, contactPath(companySlug, contactID), contact)
	if err != nil {
		return nil, fmt.Errorf("updating contact: %w", err)
	}

	if len(resp.Body) == 0 {
		return c.Get(ctx, companySlug, contactID)
	}

	return decodeResponse[fiken.Contact](resp)
}

// Delete implements fiken.ContactsClient.Delete.
func (c *ContactsClient) Delete(ctx context.Context, companySlug string, contactID int64) error {
	_, err := c.httpClient.Delete(ctx, contactPath(companySlug, contactID))
	if err != nil {
		return fmt.Errorf("deleting contact: %w", err)
	}

	return nil
}

// AddAttachment implements fiken.ContactsClient.AddAttachment.
func (c *ContactsClient) AddAttachment(ctx context.Context, companySlug string, contactID int64, filename string, file []byte) error {
	path := contactPath(companySlug, contactID) + "/attachments"

	_, err := c.httpClient.PostMultipart(ctx, path, filename, file, map[string]string{"filename": filename})
	if err != nil {
		return fmt.Errorf("adding contact attachment: %w", err)
	}

	return nil
}

// ListContactPersons implements fiken.ContactsClient.ListContactPersons.
func (c *ContactsClient) ListContactPersons(ctx context.Context, companySlug string, contactID int64) ([]fiken.ContactPerson, error) {
	resp, err := c.httpClient.Get(ctx, contactPath(companySlug, contactID)+"/contactPerson", nil)
	if err != nil {
		return nil, fmt.Errorf("listing contact persons: %w", err)
	}

	return decodeSlice[fiken.ContactPerson](resp)
}

// GetContactPerson implements fiken.ContactsClient.GetContactPerson.
func (c *ContactsClient) GetContactPerson(ctx context.Context, companySlug string, contactID, personID int64) (*fiken.ContactPerson, error) {
	path := contactPath(companySlug, contactID) + "/contactPerson/" + strconv.FormatInt(personID, 10)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting contact person: %w", err)
	}

	return decodeResponse[fiken.ContactPerson](resp)
}

// AddContactPerson implements fiken.ContactsClient.AddContactPerson.
func (c *ContactsClient) AddContactPerson(ctx context.Context, companySlug string, contactID int64, person *fiken.ContactPerson) (*fiken.ContactPerson, error) {
	return createAndFollow[fiken.ContactPerson](ctx, c.httpClient, contactPath(companySlug, contactID)+"/contactPerson", person)
}

// UpdateContactPerson implements fiken.ContactsClient.UpdateContactPerson.
func (c *ContactsClient) UpdateContactPerson(ctx context.Context, companySlug string, contactID, personID int64, person *fiken.ContactPerson) (*fiken.ContactPerson, error) {
	path := contactPath(companySlug, contactID) + "/contactPerson/" + strconv.FormatInt(personID, 10)

	resp, err := c.httpClient.Put(ctx, path, person)
	if err != nil {
		return nil, fmt.Errorf("updating contact person: %w", err)
	}

	if len(resp.Body) == 0 {
		return c.GetContactPerson(ctx, companySlug, contactID, personID)
	}

	return decodeResponse[fiken.ContactPerson](resp)
}

// DeleteContactPerson implements fiken.ContactsClient.DeleteContactPerson.
func (c *ContactsClient) DeleteContactPerson(ctx context.Context, companySlug string, contactID, personID int64) error {
	path := contactPath(companySlug, contactID) + "/contactPerson/" + strconv.FormatInt(personID, 10)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting contact person: %w", err)
	}

	return nil
}
