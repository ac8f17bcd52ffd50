package domain

import (
	"math"
	"net/url"
	"strconv"
)

const (
	// DefaultPage is used when the page query parameter is missing or unparseable
	DefaultPage = 1
	// DefaultPageSize is used when the limit query parameter is missing or unparseable
	DefaultPageSize = 10
	// FirstPage is the number of the first page
	FirstPage = 1
)

// PageRequest is a validated page/limit pair.
type PageRequest struct {
	Page  int
	Limit int
}

// NewPageRequest validates page and limit. Both must be positive.
func NewPageRequest(page, limit int) (PageRequest, error) {
	if page < 1 {
		return PageRequest{}, NewInvalidPaginationParameterError("Invalid pagination parameter - page")
	}
	if limit < 1 {
		return PageRequest{}, NewInvalidPaginationParameterError("Invalid pagination parameter - limit")
	}
	return PageRequest{Page: page, Limit: limit}, nil
}

// Offset is the number of items to skip before the requested page. It
// saturates at math.MaxInt instead of wrapping.
func (p PageRequest) Offset() int {
	if p.OffsetOverflows() {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// OffsetOverflows reports whether (Page-1)*Limit does not fit in an int. No
// collection holds that many items, so such a page is always past the end.
func (p PageRequest) OffsetOverflows() bool {
	return p.Limit > 0 && p.Page-1 > math.MaxInt/p.Limit
}

// PageLinks holds the navigation links of a page. All links are empty when
// the collection is empty.
type PageLinks struct {
	First string
	Last  string
	Prev  string
	Next  string
}

// PageBounds is the outcome of Paginate.
type PageBounds struct {
	Page       int
	PageSize   int
	TotalCount int64
	LastPage   int
	PrevPage   int
	NextPage   int
	Links      PageLinks
}

// IsEmpty reports whether the bounds describe an empty collection.
func (b PageBounds) IsEmpty() bool {
	return b.TotalCount == 0
}

// Paginate computes the page bounds and navigation links for a listing of
// totalCount items. page and pageSize must be positive. A page past the last
// page is not an error: the bounds are still computed, the caller's scan
// simply returns no items.
//
// Links are built from base by replacing the page parameter and pinning limit
// to pageSize; every other query parameter is kept.
func Paginate(page, pageSize int, totalCount int64, base *url.URL) PageBounds {
	bounds := PageBounds{
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
	}
	if totalCount <= 0 {
		bounds.TotalCount = 0
		return bounds
	}

	size := int64(pageSize)
	lastPage := int((totalCount + size - 1) / size)

	bounds.LastPage = lastPage
	bounds.PrevPage = clamp(page-1, FirstPage, lastPage)
	bounds.NextPage = lastPage
	if page < lastPage {
		bounds.NextPage = clamp(page+1, FirstPage, lastPage)
	}
	bounds.Links = PageLinks{
		First: pageLink(base, FirstPage, pageSize),
		Last:  pageLink(base, lastPage, pageSize),
		Prev:  pageLink(base, bounds.PrevPage, pageSize),
		Next:  pageLink(base, bounds.NextPage, pageSize),
	}
	return bounds
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func pageLink(base *url.URL, page, limit int) string {
	var u url.URL
	if base != nil {
		u = *base
	}
	query := u.Query()
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))
	u.RawQuery = query.Encode()
	u.Fragment = ""
	return u.String()
}
