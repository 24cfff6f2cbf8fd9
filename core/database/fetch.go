package database

import (
	"database/sql"
	"fmt"

	"gorm.io/gorm"
)

// FetchMaps returns all rows from rows as maps keyed by column name.
// rows is closed before returning.
func FetchMaps(db *gorm.DB, rows *sql.Rows) ([]map[string]any, error) {
	defer rows.Close()

	result := make([]map[string]any, 0)
	for rows.Next() {
		row := make(map[string]any)
		if err := db.ScanRows(rows, &row); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}
	return result, nil
}

// FetchColumn returns the first column of every row, for queries selecting a single field.
// rows is closed before returning.
func FetchColumn(rows *sql.Rows) ([]any, error) {
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("query returned no columns")
	}

	result := make([]any, 0)
	dest := make([]any, len(cols))
	for rows.Next() {
		var first any
		dest[0] = &first
		for i := 1; i < len(dest); i++ {
			dest[i] = new(any)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		if b, ok := first.([]byte); ok {
			first = string(b)
		}
		result = append(result, first)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}
	return result, nil
}
