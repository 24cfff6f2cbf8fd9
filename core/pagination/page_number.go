package pagination

import (
	"net/url"
	"strconv"

	"gorm.io/gorm"
)

const (
	PageParam       = "page"
	PageSizeParam   = "page_size"
	DefaultPageSize = 50
	MaxPageSize     = 100000
)

// PageNumber selects a 1-based page of PageSize rows.
type PageNumber struct {
	Page     int `json:"page" query:"page"`
	PageSize int `json:"page_size" query:"page_size"`
}

// ParsePageNumber reads page and page_size. A missing or malformed page is 1;
// a missing or malformed page size is DefaultPageSize; larger sizes are
// clamped to MaxPageSize.
func ParsePageNumber(q Query) PageNumber {
	p := PageNumber{Page: 1, PageSize: DefaultPageSize}
	if n, ok := positiveInt(q.Query(PageParam), true, 0); ok {
		p.Page = n
	}
	if n, ok := positiveInt(q.Query(PageSizeParam), true, MaxPageSize); ok {
		p.PageSize = n
	}
	return p
}

// Offset is the number of rows before the page.
func (p PageNumber) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// LastPage is the number of the last page for count rows. An empty result
// still has one (empty) page.
func (p PageNumber) LastPage(count int64) int {
	if count <= 0 {
		return 1
	}
	size := int64(p.PageSize)
	return int((count + size - 1) / size)
}

// Scope implements Paginator.
func (p PageNumber) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(p.Offset()).Limit(p.PageSize)
	}
}

// Validate implements Paginator.
func (p PageNumber) Validate(count int64) error {
	if p.Page < 1 || p.Page > p.LastPage(count) {
		return ErrInvalidPage
	}
	return nil
}

// Links implements Paginator. The link to page 1 drops the page parameter.
func (p PageNumber) Links(requestURL *url.URL, count int64) (next, previous *string) {
	if p.Page < p.LastPage(count) {
		next = withParams(requestURL, map[string]string{PageParam: strconv.Itoa(p.Page + 1)})
	}
	if p.Page > 1 {
		prev := ""
		if p.Page-1 > 1 {
			prev = strconv.Itoa(p.Page - 1)
		}
		previous = withParams(requestURL, map[string]string{PageParam: prev})
	}
	return next, previous
}
