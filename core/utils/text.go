package utils

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"
)

// IDAlphabet omits O and 0 (and U) to keep ids readable.
const IDAlphabet = "ABCDEFGHIJKLMNPQRSTVWXYZ123456789"

// IDLength is the length of ids returned by GetIDString.
const IDLength = 7

// ConcatFields joins the string form of each value with CRLF, skipping
// blanks and "nan".
func ConcatFields(values ...any) string {
	var b strings.Builder
	for _, v := range values {
		s := ToString(v)
		if s == "nan" || strings.TrimSpace(s) == "" {
			continue
		}
		b.WriteString(s)
		b.WriteString("\r\n")
	}
	return strings.TrimSpace(b.String())
}

// GetIDString returns a random short id drawn uniformly from IDAlphabet.
func GetIDString() string {
	const limit = 256 - 256%len(IDAlphabet)
	id := make([]byte, 0, IDLength)
	buf := make([]byte, IDLength*2)
	for len(id) < IDLength {
		_, _ = rand.Read(buf)
		for _, c := range buf {
			if int(c) >= limit {
				continue
			}
			id = append(id, IDAlphabet[int(c)%len(IDAlphabet)])
			if len(id) == IDLength {
				break
			}
		}
	}
	return string(id)
}

// LastDayOfMonth returns the last day of the month containing val, which is
// coerced with ToDate.
func LastDayOfMonth(val any) (time.Time, error) {
	d, err := ToDate(val, nil)
	if err != nil {
		return time.Time{}, err
	}
	if d == nil {
		return time.Time{}, fmt.Errorf("could not convert %v to date: %w", val, ErrUnsupportedType)
	}
	return time.Date(d.Year(), d.Month()+1, 0, 0, 0, 0, 0, time.UTC), nil
}
