package utils

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/shopspring/decimal"
)

// ErrUnsupportedType is wrapped by the strict coercions for inputs of a type
// they do not handle.
var ErrUnsupportedType = errors.New("unsupported type")

// ToInt converts various types to int using explicit type switching.
// It handles standard integer types, floats, strings, and byte slices.
// Unparsable input yields 0.
func ToInt(val any) int {
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case int16:
		return int(v)
	case int8:
		return int(v)
	case uint:
		return int(v)
	case uint64:
		return int(v)
	case uint32:
		return int(v)
	case uint16:
		return int(v)
	case uint8:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	case string:
		i, _ := strconv.Atoi(strings.TrimSpace(v))
		return i
	case []byte:
		i, _ := strconv.Atoi(strings.TrimSpace(string(v)))
		return i
	default:
		i, _ := strconv.Atoi(fmt.Sprintf("%v", v))
		return i
	}
}

// ToString converts various types to string.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToIntDefault converts val to int. Blank or unparsable strings and nil give
// def; numbers are truncated toward zero. Booleans and other types are an error.
func ToIntDefault(val any, def int) (int, error) {
	switch v := val.(type) {
	case nil:
		return def, nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return def, nil
		}
		i, err := strconv.Atoi(s)
		if err != nil {
			return def, nil
		}
		return i, nil
	case int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8, float64, float32:
		return ToInt(v), nil
	default:
		return 0, fmt.Errorf("could not convert %v to integer: %w", val, ErrUnsupportedType)
	}
}

// ToBoolean converts val to bool. Integers are true when non-zero. Strings
// accept y, yes, t, true, on, 1 and n, no, f, false, off, 0 in any case;
// blank strings, nil and other types give def.
func ToBoolean(val any, def bool) (bool, error) {
	switch v := val.(type) {
	case bool:
		return v, nil
	case int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		return ToInt(v) != 0, nil
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		switch s {
		case "":
			return def, nil
		case "y", "yes", "t", "true", "on", "1":
			return true, nil
		case "n", "no", "f", "false", "off", "0":
			return false, nil
		}
		return def, fmt.Errorf("invalid truth value %q", v)
	default:
		return def, nil
	}
}

// ToDecimal converts val to a decimal. nil and blank strings are zero;
// floats and integers are rounded to two places (half to even).
func ToDecimal(val any) (decimal.Decimal, error) {
	switch v := val.(type) {
	case decimal.Decimal:
		return v, nil
	case *decimal.Decimal:
		if v == nil {
			return decimal.Zero, nil
		}
		return *v, nil
	case nil:
		return decimal.Zero, nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return decimal.Zero, nil
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, fmt.Errorf("could not convert %q to decimal: %w", v, err)
		}
		return d, nil
	case float64:
		d, err := exactDecimal(v)
		if err != nil {
			return decimal.Zero, err
		}
		return d.RoundBank(2), nil
	case float32:
		d, err := exactDecimal(float64(v))
		if err != nil {
			return decimal.Zero, err
		}
		return d.RoundBank(2), nil
	case int, int64, int32, int16, int8, uint, uint32, uint16, uint8:
		return decimal.NewFromInt(int64(ToInt(v))), nil
	case uint64:
		return decimal.NewFromUint64(v), nil
	default:
		return decimal.Zero, fmt.Errorf("could not convert %v to decimal: %w", val, ErrUnsupportedType)
	}
}

// exactDecimal returns the exact value of the binary float v, so 2.675
// (stored as 2.67499999...) rounds down rather than as its shortest form.
func exactDecimal(v float64) (decimal.Decimal, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero, fmt.Errorf("could not convert %v to decimal", v)
	}
	if v == 0 {
		return decimal.Zero, nil
	}

	frac, exp := math.Frexp(v)
	mant := int64(frac * (1 << 53))
	exp -= 53
	for mant&1 == 0 {
		mant >>= 1
		exp++
	}

	n := big.NewInt(mant)
	if exp >= 0 {
		return decimal.NewFromBigInt(n.Lsh(n, uint(exp)), 0), nil
	}
	// m * 2^e == m * 5^-e / 10^-e
	five := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-exp)), nil)
	return decimal.NewFromBigInt(n.Mul(n, five), int32(exp)), nil
}

// ToDate converts val to a calendar date at midnight UTC. Times keep their
// wall-clock date. Strings longer than 7 characters are parsed in any common
// layout, shorter ones give def. Numbers are Unix timestamps in seconds.
func ToDate(val any, def *time.Time) (*time.Time, error) {
	switch v := val.(type) {
	case time.Time:
		return dateOf(v), nil
	case *time.Time:
		if v == nil {
			return def, nil
		}
		return dateOf(*v), nil
	case nil:
		return def, nil
	case string:
		s := strings.TrimSpace(v)
		if len(s) <= 7 {
			return def, nil
		}
		t, err := dateparse.ParseIn(s, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("could not convert %q to date: %w", v, err)
		}
		return dateOf(t), nil
	case float64:
		sec := int64(v)
		return dateOf(time.Unix(sec, int64((v-float64(sec))*1e9)).UTC()), nil
	case float32:
		return ToDate(float64(v), def)
	case int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		return dateOf(time.Unix(int64(ToInt(v)), 0).UTC()), nil
	default:
		return nil, fmt.Errorf("could not convert %v to date: %w", val, ErrUnsupportedType)
	}
}

func dateOf(t time.Time) *time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}
