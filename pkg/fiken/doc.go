// Package fiken provides types, interfaces, and helpers for working with the
// Fiken accounting API (https://api.fiken.no/api/v2).
//
// # Overview
//
// The fiken package defines the domain types (e.g., Company, Contact,
// Invoice, Sale, Purchase, JournalEntry) and the interfaces for
// resource-oriented clients (e.g., ContactsClient, InvoicesClient). A
// concrete implementation of these clients is provided by the fikenclient
// package, which wires configuration, transport, authentication, and rate
// limiting. Most consumers should import fikenclient to construct a client
// and then interact with the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/gronnmann/fiken-go/pkg/fiken"
//	  "github.com/gronnmann/fiken-go/pkg/fikenclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := fikenclient.NewWithAPIToken("my-api-token")
//	  if err != nil { log.Fatal(err) }
//
//	  // List the first page of contacts
//	  contacts, err := cli.Contacts().List(ctx, "my-company-as", fiken.NewListOptions().WithPageSize(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = contacts
//	}
//
// # Queries and pagination
//
// Use ListOptions to express common list options (page, pageSize, sortBy,
// endpoint-specific filters). List endpoints return a Page whose PageInfo is
// taken from the Fiken-Api-* response headers. The package also provides
// helpers for iterating or collecting paginated results:
//
//	it := fiken.NewPageIterator(ctx, pager, "/companies/my-company-as/contacts", nil)
//	for it.HasNext() {
//	  contact, err := it.Next()
//	  if err != nil { break }
//	  _ = contact
//	}
//
// or use the resource clients' ListAll methods to fetch everything at once.
//
// # Errors
//
// API errors are represented by APIError and its typed wrappers (AuthError,
// NotFoundError, ValidationError, RateLimitError, ServerError, ...). Helpers
// such as IsNotFound, IsAuth, and IsValidation make it easy to branch on
// common error cases, and StatusCode extracts the HTTP status from any API
// error.
//
// # Scoped access
//
// Client.ForCompany binds a company slug once and returns a CompanyClient
// whose methods omit the slug parameter, which reads better in applications
// working against a single company.
package fiken
