package excel

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Accessor reads a field's value from one record.
type Accessor func(record any) (any, error)

// Field is a resolved field path: its label, its type and a typed accessor
// built once per export.
type Field struct {
	Path      string
	Label     string
	Semantic  SemanticType
	Precision int
	// Preload is the relation chain the path traverses ("Customer.Region"),
	// empty for plain columns.
	Preload string
	Value   Accessor
}

// FieldResolver resolves dotted field paths against one record type.
type FieldResolver interface {
	Resolve(path string) (*Field, error)
}

// PrettyLabel turns resolved segment labels into a heading:
// underscores become spaces and each segment is title-cased, keeping
// existing capitals ("ID number" stays "ID Number").
func PrettyLabel(segments []string) string {
	caser := cases.Title(language.Und, cases.NoLower)
	pretty := make([]string, len(segments))
	for i, s := range segments {
		s = strings.TrimSpace(strings.ReplaceAll(s, "_", " "))
		pretty[i] = caser.String(s)
	}
	return strings.Join(pretty, ".")
}
