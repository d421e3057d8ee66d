package worker

import "context"

// Page is one batch of items produced by a Paginator. Number is 1-based.
type Page[I any] struct {
	Items  []I
	Number int
}

// Paginator is a forward-only page source. TotalPages is fixed at
// construction time; NextPage returns successive pages in order and is never
// called more than TotalPages times per instance.
type Paginator[I any] interface {
	TotalPages() int
	NextPage(ctx context.Context) (Page[I], error)
}

// SlicePaginator serves a pre-loaded slice in fixed-size pages. It backs
// small workloads and tests; production paginators stream from storage.
type SlicePaginator[I any] struct {
	items    []I
	pageSize int
	next     int
}

// NewSlicePaginator builds a paginator over items with the given page size.
func NewSlicePaginator[I any](items []I, pageSize int) *SlicePaginator[I] {
	if pageSize < 1 {
		pageSize = 1
	}
	return &SlicePaginator[I]{items: items, pageSize: pageSize}
}

func (p *SlicePaginator[I]) TotalPages() int {
	return (len(p.items) + p.pageSize - 1) / p.pageSize
}

func (p *SlicePaginator[I]) NextPage(_ context.Context) (Page[I], error) {
	start := p.next * p.pageSize
	if start >= len(p.items) {
		return Page[I]{Number: p.next + 1}, nil
	}
	end := min(start+p.pageSize, len(p.items))
	p.next++
	return Page[I]{Items: p.items[start:end], Number: p.next}, nil
}
