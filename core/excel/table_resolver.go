package excel

import (
	"fmt"
	"strings"

	"revo-utils/core/database"
)

// TableResolver resolves column names of a table that has no Go model.
// Records are the maps produced by TableSource.
type TableResolver struct {
	table   string
	columns map[string]database.ColumnInfo
}

// NewTableResolver builds a resolver from inspected table columns.
func NewTableResolver(table string, columns []database.ColumnInfo) *TableResolver {
	byName := make(map[string]database.ColumnInfo, len(columns))
	for _, col := range columns {
		byName[strings.ToLower(col.Field)] = col
	}
	return &TableResolver{table: table, columns: byName}
}

// Columns returns the column names known to the resolver, in no particular order.
func (r *TableResolver) Columns() []string {
	names := make([]string, 0, len(r.columns))
	for name := range r.columns {
		names = append(names, name)
	}
	return names
}

// Resolve implements FieldResolver. Raw tables have no relations, so paths
// are single column names.
func (r *TableResolver) Resolve(path string) (*Field, error) {
	if strings.Contains(path, ".") {
		return nil, &FieldResolutionError{Path: path, Reason: "relations are not supported for raw tables"}
	}
	col, ok := r.columns[strings.ToLower(path)]
	if !ok {
		return nil, &FieldResolutionError{Path: path, Segment: path, Reason: fmt.Sprintf("does not exist on %s", r.table)}
	}

	semantic, precision := SemanticFromSQLType(col.Type)
	key := col.Field

	return &Field{
		Path:      path,
		Label:     PrettyLabel([]string{col.Field}),
		Semantic:  semantic,
		Precision: precision,
		Value: func(record any) (any, error) {
			row, ok := record.(map[string]any)
			if !ok {
				return nil, &FieldResolutionError{Path: path, Reason: fmt.Sprintf("record is %T, want map[string]any", record)}
			}
			v, ok := lookupKey(row, key)
			if !ok {
				return nil, &FieldResolutionError{Path: path, Segment: path, Reason: "is missing on record"}
			}
			if b, isBytes := v.([]byte); isBytes && semantic != SemanticBinary {
				return string(b), nil
			}
			return v, nil
		},
	}, nil
}

// lookupKey finds key in row, tolerating drivers that report column names in
// a different case than the inspector.
func lookupKey(row map[string]any, key string) (any, bool) {
	if v, ok := row[key]; ok {
		return v, true
	}
	for k, v := range row {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return nil, false
}
