package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gronnmann/fiken-go/internal/client"
	"github.com/gronnmann/fiken-go/pkg/fiken"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires config", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(nil)
		require.ErrorIs(t, err, fiken.ErrConfigRequired)
	})

	t.Run("requires credentials", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(&fiken.Config{})
		require.ErrorIs(t, err, fiken.ErrCredentialsRequired)
	})

	t.Run("rejects partial oauth2 credentials", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(&fiken.Config{
			AccessToken:  "access",
			RefreshToken: "refresh",
		})
		require.ErrorIs(t, err, fiken.ErrCredentialsRequired)
	})

	t.Run("api token config", func(t *testing.T) {
		t.Parallel()

		c, err := client.New(&fiken.Config{APIToken: "personal-token"})
		require.NoError(t, err)
		assert.NotNil(t, c.Companies())
		assert.NotNil(t, c.Contacts())
		assert.NotNil(t, c.Products())
		assert.NotNil(t, c.Invoices())
		assert.NotNil(t, c.Sales())
		assert.NotNil(t, c.Purchases())
		assert.NotNil(t, c.Projects())
		assert.NotNil(t, c.BankAccounts())
		assert.NotNil(t, c.Accounts())
		assert.NotNil(t, c.JournalEntries())
		assert.NotNil(t, c.Transactions())
	})

	t.Run("oauth2 config", func(t *testing.T) {
		t.Parallel()

		c, err := client.New(&fiken.Config{
			AccessToken:  "access",
			RefreshToken: "refresh",
			ClientID:     "client-id",
			ClientSecret: "client-secret",
		})
		require.NoError(t, err)
		assert.NotNil(t, c.Companies())
	})
}

func TestClient_GetUser(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/user", request.URL.Path)
		assert.Equal(t, "Bearer personal-token", request.Header.Get("Authorization"))

		_ = json.NewEncoder(writer).Encode(fiken.Userinfo{
			Name:  "Ola Nordmann",
			Email: "ola@example.com",
		})
	}))
	defer server.Close()

	c, err := client.New(&fiken.Config{
		APIToken: "personal-token",
		BaseURL:  server.URL,
	})
	require.NoError(t, err)

	user, err := c.GetUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ola Nordmann", user.Name)
	assert.Equal(t, "ola@example.com", user.Email)
}

func TestClient_DecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		_, _ = writer.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	c := client.NewTestClient(server.URL)

	_, err := c.GetUser(context.Background())
	require.Error(t, err)

	var decodeErr *fiken.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, []byte("<html>not json</html>"), decodeErr.Body)
}
