package pagination

import (
	"errors"
	"net/url"
	"strconv"

	"gorm.io/gorm"
)

// ErrInvalidPage is returned when the requested page lies beyond the last page.
var ErrInvalidPage = errors.New("invalid page")

// Query reads a query parameter. *fiber.Ctx satisfies it.
type Query interface {
	Query(key string, defaultValue ...string) string
}

// Page is one page of results.
type Page[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// Paginator restricts a query to one page and links to its neighbours.
type Paginator interface {
	Scope() func(*gorm.DB) *gorm.DB
	Validate(count int64) error
	Links(requestURL *url.URL, count int64) (next, previous *string)
}

// Paginate counts the rows matched by db, validates the page against that
// count and loads the page into a Page. db must not carry Limit or Offset.
func Paginate[T any](db *gorm.DB, p Paginator, requestURL *url.URL) (*Page[T], error) {
	var count int64
	if err := db.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return nil, err
	}
	if err := p.Validate(count); err != nil {
		return nil, err
	}

	results := make([]T, 0)
	if err := db.Session(&gorm.Session{}).Scopes(p.Scope()).Find(&results).Error; err != nil {
		return nil, err
	}

	page := &Page[T]{Count: count, Results: results}
	if requestURL != nil {
		page.Next, page.Previous = p.Links(requestURL, count)
	}
	return page, nil
}

// positiveInt parses raw as an integer > 0 (>= 0 unless strict), capped at
// cutoff when cutoff > 0.
func positiveInt(raw string, strict bool, cutoff int) (int, bool) {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 || (strict && n == 0) {
		return 0, false
	}
	if cutoff > 0 && n > cutoff {
		n = cutoff
	}
	return n, true
}

// withParams returns u with each key set to its value; an empty value removes the key.
func withParams(u *url.URL, params map[string]string) *string {
	cp := *u
	q := cp.Query()
	for k, v := range params {
		if v == "" {
			q.Del(k)
			continue
		}
		q.Set(k, v)
	}
	cp.RawQuery = q.Encode()
	s := cp.String()
	return &s
}
