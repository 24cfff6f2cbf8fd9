package pagination

import (
	"net/url"
	"strconv"

	"gorm.io/gorm"
)

const (
	LimitParam  = "take"
	OffsetParam = "skip"
	MaxLimit    = 100
)

// LimitOffset selects Limit rows after skipping Offset rows.
type LimitOffset struct {
	Limit  int `json:"take" query:"take"`
	Offset int `json:"skip" query:"skip"`
}

// ParseLimitOffset reads take and skip. A missing, zero or malformed take is
// MaxLimit and larger values are clamped to it; a missing or negative skip is 0.
func ParseLimitOffset(q Query) LimitOffset {
	p := LimitOffset{Limit: MaxLimit}
	if n, ok := positiveInt(q.Query(LimitParam), true, MaxLimit); ok {
		p.Limit = n
	}
	if n, ok := positiveInt(q.Query(OffsetParam), false, 0); ok {
		p.Offset = n
	}
	return p
}

// Scope implements Paginator.
func (p LimitOffset) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(p.Offset).Limit(p.Limit)
	}
}

// Validate implements Paginator. An offset past the end yields an empty page.
func (p LimitOffset) Validate(int64) error {
	return nil
}

// Links implements Paginator.
func (p LimitOffset) Links(requestURL *url.URL, count int64) (next, previous *string) {
	limit := strconv.Itoa(p.Limit)
	if int64(p.Offset+p.Limit) < count {
		next = withParams(requestURL, map[string]string{
			LimitParam:  limit,
			OffsetParam: strconv.Itoa(p.Offset + p.Limit),
		})
	}
	if p.Offset > 0 {
		offset := ""
		if p.Offset-p.Limit > 0 {
			offset = strconv.Itoa(p.Offset - p.Limit)
		}
		previous = withParams(requestURL, map[string]string{LimitParam: limit, OffsetParam: offset})
	}
	return next, previous
}
