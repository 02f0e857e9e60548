package model

import "time"

// Page is one page of a paginated listing. PageNumber starts at 1 and
// IsLastPage is the only source of truth for whether another page exists.
type Page[T any] struct {
	Items       []T       `json:"items"`
	PageNumber  int       `json:"page_number"`
	IsLastPage  bool      `json:"is_last_page"`
	LastRefresh time.Time `json:"last_refresh"`
}

type (
	TelevisionShowsPage = Page[TelevisionShow]
	MoviesPage          = Page[Movie]
	PersonsPage         = Page[Person]
)

func NewPage[T any](items []T, pageNumber int, isLastPage bool, lastRefresh time.Time) *Page[T] {
	return &Page[T]{
		Items:       items,
		PageNumber:  pageNumber,
		IsLastPage:  isLastPage,
		LastRefresh: lastRefresh,
	}
}

func (p *Page[T]) IsFirstPage() bool {
	return p.PageNumber == 1
}

func (p *Page[T]) IsEmpty() bool {
	return len(p.Items) == 0
}

// NextPage returns the number of the page following p, or 0 when p is the last one.
func (p *Page[T]) NextPage() int {
	if p.IsLastPage {
		return 0
	}
	return p.PageNumber + 1
}
