package client_test

import (
	"bytes"
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

func TestJournalEntriesClient_CreateGeneralJournalEntry(t *testing.T) {
	t.Parallel()

	var server *httptest.Server

	server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch {
		case request.Method == "POST" && request.URL.Path == "/companies/acme-as/generalJournalEntries":
			var body fiken.GeneralJournalEntryRequest

			require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			require.Len(t, body.JournalEntries, 1)
			assert.Equal(t, "Manual correction", body.JournalEntries[0].Description)

			writer.Header().Set("Location", server.URL+"/companies/acme-as/journalEntries/77")
			writer.WriteHeader(http.StatusCreated)
		case request.Method == "GET" && request.URL.Path == "/companies/acme-as/journalEntries/77":
			_ = json.NewEncoder(writer).Encode(fiken.JournalEntry{
				JournalEntryID: 77,
				Description:    "Manual correction",
				Date:           "2024-03-01",
			})
		default:
			t.Errorf("unexpected request %s %s", request.Method, request.URL.Path)
		}
	}))
	defer server.Close()

	c := client.NewTestClient(server.URL)

	debit := "1920:10001"
	credit := "3000"

	entry, err := c.JournalEntries().CreateGeneralJournalEntry(context.Background(), "acme-as", &fiken.GeneralJournalEntryRequest{
		JournalEntries: []fiken.JournalEntry{
			{
				Description: "Manual correction",
				Date:        "2024-03-01",
				Lines: []fiken.JournalEntryLine{
					{Amount: 10000, DebitAccount: &debit, CreditAccount: &credit},
				},
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(77), entry.JournalEntryID)
}

func TestJournalEntriesClient_AddAttachment(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/companies/acme-as/journalEntries/77/attachments", request.URL.Path)
		require.NoError(t, request.ParseMultipartForm(1<<20))

		file, _, err := request.FormFile("file")
		require.NoError(t, err)

		defer func() { _ = file.Close() }()

		var buf bytes.Buffer

		_, err = buf.ReadFrom(file)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.4", buf.String())

		writer.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	c := client.NewTestClient(server.URL)

	err := c.JournalEntries().AddAttachment(context.Background(), "acme-as", 77, "voucher.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)
}
