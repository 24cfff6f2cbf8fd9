package excel

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultColumnWidth is used when a parsed column gives no width.
const DefaultColumnWidth = 15

// MaxColumnWidth is the widest column a sheet accepts.
const MaxColumnWidth = 255

// ColumnSpec describes one exported column.
type ColumnSpec struct {
	// FieldPath names the value, dotted to traverse relations ("customer.name").
	FieldPath string
	// Width is the column width in characters.
	Width float64
	// Format overrides the format resolved from field metadata when set.
	Format *FormatTag
	// Header overrides the label derived from field metadata when not empty.
	Header string
}

// Column is a shorthand constructor for a ColumnSpec with a derived header.
func Column(path string, width float64) ColumnSpec {
	return ColumnSpec{FieldPath: path, Width: width}
}

// WithHeader returns a copy of c with an explicit header.
func (c ColumnSpec) WithHeader(header string) ColumnSpec {
	c.Header = header
	return c
}

// WithFormat returns a copy of c with an explicit format tag.
func (c ColumnSpec) WithFormat(tag FormatTag) ColumnSpec {
	c.Format = &tag
	return c
}

// ParseColumns parses "path[:width[:header]]" items separated by commas,
// e.g. "id:8,customer.name:30:Customer,total:12".
func ParseColumns(s string) ([]ColumnSpec, error) {
	var specs []ColumnSpec
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		parts := strings.SplitN(item, ":", 3)
		spec := ColumnSpec{FieldPath: strings.TrimSpace(parts[0]), Width: DefaultColumnWidth}
		if spec.FieldPath == "" {
			return nil, fmt.Errorf("column %q has no field path", item)
		}
		if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
			w, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
			if err != nil {
				return nil, fmt.Errorf("column %q has invalid width: %w", item, err)
			}
			spec.Width = w
		}
		if len(parts) > 2 {
			spec.Header = strings.TrimSpace(parts[2])
		}
		if spec.Width <= 0 || spec.Width > MaxColumnWidth {
			return nil, fmt.Errorf("column %q width must be between 0 and %d", item, MaxColumnWidth)
		}
		specs = append(specs, spec)
	}
	if len(specs) == 0 {
		return nil, ErrNoColumns
	}
	return specs, nil
}
