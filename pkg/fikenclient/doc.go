// Package fikenclient provides the primary entry point for constructing a
// Fiken API client that implements the fiken.Client interface.
//
// It layers configuration, HTTP transport, authentication and rate limiting
// on top of the resource interfaces and types defined in the fiken package.
// Most applications should import fikenclient to build a client, then use the
// returned fiken.Client to access resource-specific clients, for example
// Contacts(), Invoices(), Sales(), etc.
//
// Quick start
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
//
//	  // Simplest: a personal API token from the Fiken settings page.
//	  cli, err := fikenclient.NewWithAPIToken("my-api-token")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with OAuth2 credentials for a third-party application:
//	  cli, err = fikenclient.New(&fiken.Config{
//	    AccessToken:  "eyJhbGciOi...",
//	    RefreshToken: "refresh-token",
//	    ClientID:     "client-id",
//	    ClientSecret: "client-secret",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the fiken.Client interface
//	  contacts, err := cli.Contacts().List(ctx, "my-company-as", fiken.NewListOptions().WithPageSize(10))
//	  if err != nil { log.Fatal(err) }
//	  _ = contacts
//	}
//
// # Token rotation
//
// Fiken rotates the refresh token on every refresh. A process that loses a
// rotated refresh token cannot authenticate again without operator
// intervention, so long-lived OAuth2 clients should be built with
// NewFromFile: it reads a YAML credentials file and writes rotated tokens
// back to it after each refresh.
//
// # Helpers
//
// The package also provides convenience constructors NewWithAPIToken and
// NewWithOAuth2 that wrap New with the appropriate configuration.
package fikenclient
