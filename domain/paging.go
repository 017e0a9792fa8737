package domain

import (
	"math"
	"strings"
)

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
	MaxPageSize       = 100
	DefaultSortBy     = "createdAt"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// BanStatusFilter narrows the super-admin user listing.
type BanStatusFilter string

const (
	BanStatusAll       BanStatusFilter = "all"
	BanStatusBanned    BanStatusFilter = "banned"
	BanStatusNotBanned BanStatusFilter = "notBanned"
)

// Query describes one page of a listing.
// SearchTerms maps a searchable field (name, login, email...) to a substring;
// all provided terms must match.
type Query struct {
	SearchTerms   map[string]string
	SortBy        string
	SortDirection SortDirection
	PageNumber    int64
	PageSize      int64
	BanStatus     BanStatusFilter
}

// Normalize fills the defaults and rejects values that can not be served.
// Unknown sort fields are rejected by the repository that knows its columns.
func (q *Query) Normalize() error {
	if q.SortBy == "" {
		q.SortBy = DefaultSortBy
	}
	switch SortDirection(strings.ToLower(string(q.SortDirection))) {
	case "":
		q.SortDirection = SortDesc
	case SortAsc:
		q.SortDirection = SortAsc
	case SortDesc:
		q.SortDirection = SortDesc
	default:
		return ErrBadParamInput
	}
	if q.PageNumber == 0 {
		q.PageNumber = DefaultPageNumber
	}
	if q.PageSize == 0 {
		q.PageSize = DefaultPageSize
	}
	if q.PageNumber < 1 || q.PageSize < 1 || q.PageSize > MaxPageSize {
		return ErrBadParamInput
	}
	switch q.BanStatus {
	case "":
		q.BanStatus = BanStatusAll
	case BanStatusAll, BanStatusBanned, BanStatusNotBanned:
	default:
		return ErrBadParamInput
	}
	return nil
}

// Skip is the number of rows before the requested page. It saturates at
// math.MaxInt64, so a huge page number still lands past the last row.
func (q Query) Skip() int64 {
	if q.PageNumber < 1 || q.PageSize < 1 {
		return 0
	}
	if q.PageNumber-1 > math.MaxInt64/q.PageSize {
		return math.MaxInt64
	}
	return (q.PageNumber - 1) * q.PageSize
}

// Term returns the trimmed search term for field, empty when absent.
func (q Query) Term(field string) string {
	return strings.TrimSpace(q.SearchTerms[field])
}

// Page is one page of a listing.
type Page[T any] struct {
	PagesCount int64
	Page       int64
	PageSize   int64
	TotalCount int64
	Items      []T
}

// PagesCount returns ceil(total / size).
func PagesCount(total, size int64) int64 {
	if size <= 0 || total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// NewPage assembles a page for q. A page past the end simply has no items.
func NewPage[T any](q Query, total int64, items []T) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		PagesCount: PagesCount(total, q.PageSize),
		Page:       q.PageNumber,
		PageSize:   q.PageSize,
		TotalCount: total,
		Items:      items,
	}
}

// MapPage converts the items of a page, keeping the counters.
func MapPage[T, R any](p Page[T], fn func(*T) R) Page[R] {
	items := make([]R, len(p.Items))
	for i := range p.Items {
		items[i] = fn(&p.Items[i])
	}
	return Page[R]{
		PagesCount: p.PagesCount,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalCount: p.TotalCount,
		Items:      items,
	}
}
