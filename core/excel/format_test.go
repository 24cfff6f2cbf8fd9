package excel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnFormat(t *testing.T) {
	tests := []struct {
		name      string
		semantic  SemanticType
		precision int
		want      Format
	}{
		{"Date", SemanticDate, 0, Format{Tag: FormatDate}},
		{"DateTime", SemanticDateTime, 0, Format{Tag: FormatDate}},
		{"Float", SemanticFloat, 0, Format{Tag: FormatNumber}},
		{"Decimal With Scale", SemanticDecimal, 4, Format{Tag: FormatDecimal, Precision: 4}},
		{"Decimal Without Scale", SemanticDecimal, 0, Format{Tag: FormatDecimal, Precision: DefaultDecimalPlaces}},
		{"Integer", SemanticInteger, 0, Format{Tag: FormatDefault}},
		{"Boolean", SemanticBoolean, 0, Format{Tag: FormatDefault}},
		{"String", SemanticString, 0, Format{Tag: FormatDefault}},
		{"Binary", SemanticBinary, 0, Format{Tag: FormatDefault}},
		{"Unknown", SemanticUnknown, 0, Format{Tag: FormatDefault}},
		{"Unlisted", SemanticType("geometry"), 3, Format{Tag: FormatDefault}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ColumnFormat(tt.semantic, tt.precision)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, []FormatTag{FormatDate, FormatNumber, FormatDecimal, FormatDefault}, got.Tag)
			// deterministic
			assert.Equal(t, got, ColumnFormat(tt.semantic, tt.precision))
		})
	}
}

func TestSemanticFromSQLType(t *testing.T) {
	tests := []struct {
		sqlType  string
		semantic SemanticType
		scale    int
	}{
		{"date", SemanticDate, 0},
		{"DATETIME", SemanticDateTime, 0},
		{"datetime(6)", SemanticDateTime, 0},
		{"timestamp", SemanticDateTime, 0},
		{"decimal(10,2)", SemanticDecimal, 2},
		{"DECIMAL(12, 4)", SemanticDecimal, 4},
		{"numeric", SemanticDecimal, 0},
		{"double", SemanticFloat, 0},
		{"double(4,2)", SemanticFloat, 0},
		{"float", SemanticFloat, 0},
		{"real", SemanticFloat, 0},
		{"tinyint(1)", SemanticBoolean, 0},
		{"tinyint(4)", SemanticInteger, 0},
		{"int(11) unsigned", SemanticInteger, 0},
		{"integer", SemanticInteger, 0},
		{"bigint", SemanticInteger, 0},
		{"varchar(70)", SemanticString, 0},
		{"text", SemanticString, 0},
		{"enum('0','1')", SemanticString, 0},
		{"blob", SemanticBinary, 0},
		{"", SemanticUnknown, 0},
		{"point", SemanticUnknown, 0},
	}

	for _, tt := range tests {
		t.Run(tt.sqlType, func(t *testing.T) {
			semantic, scale := SemanticFromSQLType(tt.sqlType)
			assert.Equal(t, tt.semantic, semantic)
			assert.Equal(t, tt.scale, scale)
		})
	}
}
