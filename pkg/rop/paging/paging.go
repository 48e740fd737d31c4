// Package paging holds the page arithmetic used by collection results.
package paging

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidOptions = errors.New("invalid pagination options")

// Options bound the page size. A requested size <= 0 means DefaultPageSize;
// any size is then clamped into [MinPageSize, MaxPageSize].
type Options struct {
	DefaultPageSize int `yaml:"default_page_size"`
	MaxPageSize     int `yaml:"max_page_size"`
	MinPageSize     int `yaml:"min_page_size"`
}

func DefaultOptions() Options {
	return Options{
		DefaultPageSize: 50,
		MaxPageSize:     1000,
		MinPageSize:     1,
	}
}

func (o Options) Validate() error {
	if o.MinPageSize < 1 {
		return fmt.Errorf("%w: min_page_size %d must be at least 1", ErrInvalidOptions, o.MinPageSize)
	}
	if o.MaxPageSize < o.MinPageSize {
		return fmt.Errorf("%w: max_page_size %d is below min_page_size %d", ErrInvalidOptions, o.MaxPageSize, o.MinPageSize)
	}
	if o.DefaultPageSize < o.MinPageSize || o.DefaultPageSize > o.MaxPageSize {
		return fmt.Errorf("%w: default_page_size %d is outside [%d, %d]",
			ErrInvalidOptions, o.DefaultPageSize, o.MinPageSize, o.MaxPageSize)
	}
	return nil
}

// Normalize resolves the effective page size for a request.
func (o Options) Normalize(size int) int {
	if size <= 0 {
		size = o.DefaultPageSize
	}
	return max(o.MinPageSize, min(size, o.MaxPageSize))
}

// Page is the pagination state of one collection result.
type Page struct {
	Number     int
	Size       int
	TotalItems int
	TotalPages int
}

// Calculate derives the page for a skip/take request. PageNumber is the
// 1-based block that contains skip; TotalPages is the ceiling of
// totalItems/size and 0 when there are no items.
func Calculate(totalItems, skip, take int, opts Options) Page {
	size := opts.Normalize(take)
	if size <= 0 {
		size = 1
	}
	skip = max(skip, 0)
	totalItems = max(totalItems, 0)

	number := skip / size
	if number < math.MaxInt {
		number++
	}

	return Page{
		Number:     number,
		Size:       size,
		TotalItems: totalItems,
		TotalPages: TotalPages(totalItems, size),
	}
}

// ForPage derives the page for a page-number request. Numbers below 1 are
// treated as the first page.
func ForPage(totalItems, number, size int, opts Options) Page {
	number = max(number, 1)
	size = opts.Normalize(size)
	if size <= 0 {
		size = 1
	}
	number = min(number, math.MaxInt/size)
	return Calculate(totalItems, (number-1)*size, size, opts)
}

// Single treats a whole sequence as one page.
func Single(length int) Page {
	if length <= 0 {
		return Page{}
	}
	return Page{
		Number:     1,
		Size:       length,
		TotalItems: length,
		TotalPages: 1,
	}
}

func TotalPages(totalItems, size int) int {
	if totalItems <= 0 || size <= 0 {
		return 0
	}
	pages := totalItems / size
	if totalItems%size != 0 {
		pages++
	}
	return pages
}

// Skip is the offset of the first item of the page.
func (p Page) Skip() int {
	if p.Number < 1 {
		return 0
	}
	return (p.Number - 1) * p.Size
}

func (p Page) HasNext() bool {
	return p.Number < p.TotalPages
}

func (p Page) HasPrevious() bool {
	return p.Number > 1
}

func (p Page) IsEmpty() bool {
	return p.TotalItems == 0
}
