package excel

import (
	"errors"
	"fmt"
)

var (
	// ErrNoColumns is returned when an export is started without columns.
	ErrNoColumns = errors.New("no columns to export")
	// ErrAlreadyOutput is returned when Output is called a second time.
	ErrAlreadyOutput = errors.New("export already output")
	// ErrWriterClosed is returned by writes after the writer was closed.
	ErrWriterClosed = errors.New("sheet writer closed")
	// ErrOrderedSource is returned by GormSource for a db carrying an ORDER BY.
	ErrOrderedSource = errors.New("gorm source pages by primary key and cannot be ordered")
)

// FieldResolutionError reports a field path that does not exist on the
// record type, or a record missing an attribute the path needs.
type FieldResolutionError struct {
	Path    string
	Segment string
	Reason  string
}

func (e *FieldResolutionError) Error() string {
	if e.Segment != "" && e.Segment != e.Path {
		return fmt.Sprintf("field %q: segment %q %s", e.Path, e.Segment, e.Reason)
	}
	return fmt.Sprintf("field %q: %s", e.Path, e.Reason)
}

// UnsupportedTypeError reports a cell value the sheet writer cannot encode.
type UnsupportedTypeError struct {
	Type string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported cell value type %s", e.Type)
}

// CellError wraps a failure writing one cell with its coordinates.
type CellError struct {
	Row, Col int
	Path     string
	Err      error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("row %d column %d (%s): %v", e.Row, e.Col, e.Path, e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}
