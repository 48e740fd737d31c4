package rop

import (
	"github.com/ib-77/railway/pkg/rop/paging"
	"github.com/ib-77/railway/pkg/rop/problem"
)

// CollectionResult is a Result over an ordered slice plus the page it
// represents. A failure holds no items and a zero page.
type CollectionResult[T any] struct {
	Result[[]T]
	page paging.Page
}

// SuccessCollection treats items as one whole page. A nil slice becomes an
// empty one.
func SuccessCollection[T any](items []T) CollectionResult[T] {
	if items == nil {
		items = []T{}
	}
	return CollectionResult[T]{
		Result: Success(items),
		page:   paging.Single(len(items)),
	}
}

// SuccessPage wraps items with an already computed page.
func SuccessPage[T any](items []T, page paging.Page) CollectionResult[T] {
	if items == nil {
		items = []T{}
	}
	return CollectionResult[T]{
		Result: Success(items),
		page:   page,
	}
}

// SuccessSkipTake computes the page from a skip/take request over
// totalItems.
func SuccessSkipTake[T any](items []T, skip, take, totalItems int, opts paging.Options) CollectionResult[T] {
	return SuccessPage(items, paging.Calculate(totalItems, skip, take, opts))
}

// EmptyCollection is a success without items; every page number is 0.
func EmptyCollection[T any]() CollectionResult[T] {
	return SuccessPage([]T{}, paging.Page{})
}

func FailCollection[T any](p *problem.Problem) CollectionResult[T] {
	return CollectionResult[T]{Result: Fail[[]T](p)}
}

func FailCollectionError[T any](err error) CollectionResult[T] {
	return CollectionResult[T]{Result: FailError[[]T](err)}
}

// ToCollection moves the failure of r into a collection result. A success
// input yields a failure without problem, as Propagate does.
func ToCollection[T, In any](r Result[In]) CollectionResult[T] {
	return CollectionResult[T]{Result: Propagate[[]T](r)}
}

// Items returns the collected values, nil on failure.
func (c CollectionResult[T]) Items() []T {
	if !c.isSuccess {
		return nil
	}
	return c.value
}

func (c CollectionResult[T]) Page() paging.Page {
	return c.page
}

func (c CollectionResult[T]) PageNumber() int {
	return c.page.Number
}

func (c CollectionResult[T]) PageSize() int {
	return c.page.Size
}

func (c CollectionResult[T]) TotalItems() int {
	return c.page.TotalItems
}

func (c CollectionResult[T]) TotalPages() int {
	return c.page.TotalPages
}

func (c CollectionResult[T]) HasNextPage() bool {
	return c.isSuccess && c.page.HasNext()
}

func (c CollectionResult[T]) HasPreviousPage() bool {
	return c.isSuccess && c.page.HasPrevious()
}

// IsEmpty reports a success without items.
func (c CollectionResult[T]) IsEmpty() bool {
	return c.isSuccess && len(c.value) == 0
}
