package fiken

import "context"

// PageClient fetches one page of T from a list endpoint. Resource clients
// implement it; tests can substitute mocks.
type PageClient[T any] interface {
	FetchPage(ctx context.Context, path string, opts *ListOptions) (*Page[T], error)
}

// PageIterator walks a paginated collection lazily, fetching pages on
// demand. It is not safe for concurrent use.
type PageIterator[T any] struct {
	ctx     context.Context
	client  PageClient[T]
	path    string
	opts    *ListOptions
	current *Page[T]
	index   int
	err     error
}

// NewPageIterator creates an iterator over the collection at path. No
// request is made until the iterator is first advanced.
func NewPageIterator[T any](ctx context.Context, client PageClient[T], path string, opts *ListOptions) *PageIterator[T] {
	return &PageIterator[T]{
		ctx:    ctx,
		client: client,
		path:   path,
		opts:   opts.clone(),
	}
}

// HasNext reports whether another item is available, fetching the next page
// if the current one is exhausted. Empty pages are skipped as long as the
// metadata reports more. A fetch failure makes HasNext return false; the
// error surfaces from the following Next call.
func (it *PageIterator[T]) HasNext() bool {
	if it.err != nil {
		return false
	}

	if it.current == nil {
		it.fetch()

		if it.err != nil {
			return false
		}
	}

	for it.index >= len(it.current.Items) {
		if !it.current.HasMore() {
			return false
		}

		it.opts.Page = it.current.PageInfo.Page + 1
		it.fetch()

		if it.err != nil {
			return false
		}
	}

	return true
}

// Next returns the next item in the collection. It returns ErrNoMoreItems
// once the collection is exhausted.
func (it *PageIterator[T]) Next() (T, error) {
	var zero T

	if !it.HasNext() {
		if it.err != nil {
			return zero, it.err
		}

		return zero, ErrNoMoreItems
	}

	item := it.current.Items[it.index]
	it.index++

	return item, nil
}

// All drains the iterator and returns the remaining items.
func (it *PageIterator[T]) All() ([]T, error) {
	var items []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if it.err != nil {
		return nil, it.err
	}

	return items, nil
}

// ForEach applies fn to each remaining item, stopping at the first error.
func (it *PageIterator[T]) ForEach(fn func(item T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return err
		}

		if err := fn(item); err != nil {
			return err
		}
	}

	return it.err
}

func (it *PageIterator[T]) fetch() {
	page, err := it.client.FetchPage(it.ctx, it.path, it.opts)
	if err != nil {
		it.err = err

		return
	}

	it.current = page
	it.index = 0
}

// FetchAllPages collects every item of a paginated collection. maxPages
// caps the number of pages fetched; nil means no cap.
func FetchAllPages[T any](ctx context.Context, client PageClient[T], path string, opts *ListOptions, maxPages *int) ([]T, error) {
	opts = opts.clone()

	var items []T

	for fetched := 0; ; fetched++ {
		if maxPages != nil && fetched >= *maxPages {
			return items, nil
		}

		page, err := client.FetchPage(ctx, path, opts)
		if err != nil {
			return nil, err
		}

		items = append(items, page.Items...)

		if !page.HasMore() {
			return items, nil
		}

		opts.Page = page.PageInfo.Page + 1
	}
}
