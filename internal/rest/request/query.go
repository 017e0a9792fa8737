package request

import "github.com/Guyuepp/bloggers-platform/domain"

// ListQuery holds the paging, sorting and search parameters of listings.
type ListQuery struct {
	SearchNameTerm  string `form:"searchNameTerm"`
	SearchTitleTerm string `form:"searchTitleTerm"`
	SearchLoginTerm string `form:"searchLoginTerm"`
	SearchEmailTerm string `form:"searchEmailTerm"`
	SortBy          string `form:"sortBy"`
	SortDirection   string `form:"sortDirection"`
	PageNumber      int64  `form:"pageNumber"`
	PageSize        int64  `form:"pageSize"`
	BanStatus       string `form:"banStatus"`
}

// ToDomain: Request -> Domain, with the defaults applied
func (r *ListQuery) ToDomain() (domain.Query, error) {
	q := domain.Query{
		SearchTerms: map[string]string{
			"name":  r.SearchNameTerm,
			"title": r.SearchTitleTerm,
			"login": r.SearchLoginTerm,
			"email": r.SearchEmailTerm,
		},
		SortBy:        r.SortBy,
		SortDirection: domain.SortDirection(r.SortDirection),
		PageNumber:    r.PageNumber,
		PageSize:      r.PageSize,
		BanStatus:     domain.BanStatusFilter(r.BanStatus),
	}
	if err := q.Normalize(); err != nil {
		return domain.Query{}, err
	}
	return q, nil
}
