package fiken_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gronnmann/fiken-go/pkg/fiken"
)

//nolint:funlen // Test functions can be longer for detailed testing
func TestListOptions_ToValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     *fiken.ListOptions
		expected url.Values
	}{
		{
			name:     "nil options",
			opts:     nil,
			expected: url.Values{},
		},
		{
			name:     "empty options",
			opts:     fiken.NewListOptions(),
			expected: url.Values{},
		},
		{
			name: "with pagination",
			opts: &fiken.ListOptions{
				Page:     2,
				PageSize: 50,
			},
			expected: url.Values{
				"page":     []string{"2"},
				"pageSize": []string{"50"},
			},
		},
		{
			name:     "page zero is omitted",
			opts:     fiken.NewListOptions().WithPage(0),
			expected: url.Values{},
		},
		{
			name: "with sorting",
			opts: &fiken.ListOptions{
				SortBy: "createdDate desc",
			},
			expected: url.Values{
				"sortBy": []string{"createdDate desc"},
			},
		},
		{
			name: "with filters",
			opts: fiken.NewListOptions().
				WithFilter("issueDateFrom", "2024-01-01").
				WithFilter("customerId", "1234"),
			expected: url.Values{
				"issueDateFrom": []string{"2024-01-01"},
				"customerId":    []string{"1234"},
			},
		},
		{
			name: "multiple filter values joined by comma",
			opts: fiken.NewListOptions().
				WithFilter("invoiceNumber", "100", "101"),
			expected: url.Values{
				"invoiceNumber": []string{"100,101"},
			},
		},
		{
			name: "everything combined",
			opts: fiken.NewListOptions().
				WithPage(1).
				WithPageSize(100).
				WithSortBy("lastModified asc").
				WithFilter("date", "2024-06-30"),
			expected: url.Values{
				"page":     []string{"1"},
				"pageSize": []string{"100"},
				"sortBy":   []string{"lastModified asc"},
				"date":     []string{"2024-06-30"},
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase

		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, testCase.opts.ToValues())
		})
	}
}

func TestListOptions_WithFilterAppends(t *testing.T) {
	t.Parallel()

	opts := fiken.NewListOptions().
		WithFilter("invoiceNumber", "100").
		WithFilter("invoiceNumber", "101")

	assert.Equal(t, []string{"100", "101"}, opts.Filters["invoiceNumber"])
}

func TestListOptions_WithFilterOnZeroValue(t *testing.T) {
	t.Parallel()

	var opts fiken.ListOptions

	opts.WithFilter("date", "2024-01-01")

	assert.Equal(t, url.Values{"date": []string{"2024-01-01"}}, opts.ToValues())
}
