package excel

import (
	"regexp"
	"strconv"
	"strings"
)

// FormatTag tells the sheet writer how to render a cell.
type FormatTag string

const (
	FormatDate    FormatTag = "date"
	FormatNumber  FormatTag = "number"
	FormatDecimal FormatTag = "decimal"
	FormatDefault FormatTag = "default"

	// FormatHeader styles the heading row. ColumnFormat never returns it.
	FormatHeader FormatTag = "header"
)

// DefaultDecimalPlaces applies to decimal columns whose metadata carries no scale.
const DefaultDecimalPlaces = 2

// Format is a format tag plus the number of decimal places for FormatDecimal.
type Format struct {
	Tag       FormatTag
	Precision int
}

// SemanticType is the kind of value a field holds, independent of the database.
type SemanticType string

const (
	SemanticDate     SemanticType = "date"
	SemanticDateTime SemanticType = "datetime"
	SemanticFloat    SemanticType = "float"
	SemanticDecimal  SemanticType = "decimal"
	SemanticInteger  SemanticType = "integer"
	SemanticBoolean  SemanticType = "boolean"
	SemanticString   SemanticType = "string"
	SemanticBinary   SemanticType = "binary"
	SemanticUnknown  SemanticType = ""
)

// ColumnFormat maps a semantic type to its cell format.
// Every semantic type, known or not, maps to exactly one of
// date, number, decimal or default.
func ColumnFormat(semantic SemanticType, precision int) Format {
	switch semantic {
	case SemanticDate, SemanticDateTime:
		return Format{Tag: FormatDate}
	case SemanticFloat:
		return Format{Tag: FormatNumber}
	case SemanticDecimal:
		if precision <= 0 {
			precision = DefaultDecimalPlaces
		}
		return Format{Tag: FormatDecimal, Precision: precision}
	default:
		return Format{Tag: FormatDefault}
	}
}

var scalePattern = regexp.MustCompile(`\(\s*\d+\s*,\s*(\d+)\s*\)`)

// SemanticFromSQLType classifies a declared SQL column type such as
// "decimal(10,2)", "datetime(6)" or "varchar(70)". The second result is the
// scale of fixed-point types and zero otherwise.
func SemanticFromSQLType(sqlType string) (SemanticType, int) {
	t := strings.ToLower(strings.TrimSpace(sqlType))
	base := t
	if i := strings.IndexAny(base, "( "); i >= 0 {
		base = base[:i]
	}

	switch base {
	case "date":
		return SemanticDate, 0
	case "datetime", "timestamp", "timestamptz", "datetime2", "smalldatetime":
		return SemanticDateTime, 0
	case "decimal", "numeric", "dec", "money":
		scale := 0
		if m := scalePattern.FindStringSubmatch(t); m != nil {
			scale, _ = strconv.Atoi(m[1])
		}
		return SemanticDecimal, scale
	case "float", "double", "real", "float4", "float8":
		return SemanticFloat, 0
	case "bool", "boolean", "bit":
		return SemanticBoolean, 0
	case "tinyint":
		if strings.HasPrefix(t, "tinyint(1)") {
			return SemanticBoolean, 0
		}
		return SemanticInteger, 0
	case "int", "integer", "smallint", "mediumint", "bigint", "int2", "int4", "int8", "serial", "bigserial":
		return SemanticInteger, 0
	case "char", "varchar", "text", "tinytext", "mediumtext", "longtext", "nchar", "nvarchar", "enum", "set", "json", "uuid", "time":
		return SemanticString, 0
	case "blob", "tinyblob", "mediumblob", "longblob", "binary", "varbinary", "bytea":
		return SemanticBinary, 0
	default:
		return SemanticUnknown, 0
	}
}
