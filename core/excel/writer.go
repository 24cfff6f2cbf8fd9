package excel

import (
	"database/sql/driver"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ContentType is the MIME type of workbooks produced by XLSXWriter.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// SheetWriter receives cell writes at zero-based row/column coordinates.
type SheetWriter interface {
	SetColumnWidth(col int, width float64) error
	WriteString(row, col int, value string, format Format) error
	Write(row, col int, value any, format Format) error
	Close() error
}

// XLSXWriter writes a single worksheet with excelize and saves the workbook
// to an io.Writer on Close.
type XLSXWriter struct {
	file   *excelize.File
	sheet  string
	out    io.Writer
	styles map[Format]int
	closed bool
}

// NewXLSXWriter creates a workbook with one sheet named sheet ("Sheet1" when empty).
func NewXLSXWriter(out io.Writer, sheet string) (*XLSXWriter, error) {
	f := excelize.NewFile()
	name := f.GetSheetName(0)
	if sheet != "" && sheet != name {
		if err := f.SetSheetName(name, sheet); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("invalid sheet name %q: %w", sheet, err)
		}
		name = sheet
	}
	return &XLSXWriter{
		file:   f,
		sheet:  name,
		out:    out,
		styles: make(map[Format]int),
	}, nil
}

// SetColumnWidth implements SheetWriter.
func (w *XLSXWriter) SetColumnWidth(col int, width float64) error {
	if w.closed {
		return ErrWriterClosed
	}
	name, err := excelize.ColumnNumberToName(col + 1)
	if err != nil {
		return err
	}
	return w.file.SetColWidth(w.sheet, name, name, width)
}

// WriteString implements SheetWriter.
func (w *XLSXWriter) WriteString(row, col int, value string, format Format) error {
	if w.closed {
		return ErrWriterClosed
	}
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return err
	}
	if err := w.file.SetCellStr(w.sheet, cell, value); err != nil {
		return err
	}
	return w.applyStyle(cell, format)
}

// Write implements SheetWriter. Numbers, booleans, strings, times and nil are
// written as typed cells; other kinds fail with UnsupportedTypeError.
func (w *XLSXWriter) Write(row, col int, value any, format Format) error {
	if w.closed {
		return ErrWriterClosed
	}
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return err
	}
	v, err := cellValue(value)
	if err != nil {
		return err
	}
	if err := w.file.SetCellValue(w.sheet, cell, v); err != nil {
		return err
	}
	return w.applyStyle(cell, format)
}

// Close saves the workbook to the output and releases it.
func (w *XLSXWriter) Close() error {
	if w.closed {
		return ErrWriterClosed
	}
	w.closed = true
	defer w.file.Close()

	if _, err := w.file.WriteTo(w.out); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// Discard releases the workbook without writing anything to the output.
func (w *XLSXWriter) Discard() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.file.Close()
}

func (w *XLSXWriter) applyStyle(cell string, format Format) error {
	id, err := w.style(format)
	if err != nil || id == 0 {
		return err
	}
	return w.file.SetCellStyle(w.sheet, cell, cell, id)
}

// style returns the excelize style id for format, creating it on first use.
// FormatDefault cells keep the default style (id 0).
func (w *XLSXWriter) style(format Format) (int, error) {
	if id, ok := w.styles[format]; ok {
		return id, nil
	}

	var st *excelize.Style
	switch format.Tag {
	case FormatHeader:
		st = &excelize.Style{
			Font:   &excelize.Font{Bold: true},
			Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 1}},
		}
	case FormatDate:
		numFmt := "yyyy-mm-dd"
		st = &excelize.Style{CustomNumFmt: &numFmt}
	case FormatNumber:
		st = &excelize.Style{NumFmt: 4} // #,##0.00
	case FormatDecimal:
		numFmt := "0"
		if format.Precision > 0 {
			numFmt += "." + strings.Repeat("0", format.Precision)
		}
		st = &excelize.Style{CustomNumFmt: &numFmt}
	default:
		return 0, nil
	}

	id, err := w.file.NewStyle(st)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s style: %w", format.Tag, err)
	}
	w.styles[format] = id
	return id, nil
}

// cellValue normalises v into a value excelize stores as a typed cell.
// Times lose their zone so the sheet shows the wall clock the record holds.
func cellValue(v any) (any, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, nil
		}
		return cellValue(rv.Elem().Interface())
	}

	switch t := v.(type) {
	case nil:
		return nil, nil
	case string, bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, time.Duration:
		return t, nil
	case []byte:
		return string(t), nil
	case time.Time:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC), nil
	case decimal.Decimal:
		return t.InexactFloat64(), nil
	case decimal.NullDecimal:
		if !t.Valid {
			return nil, nil
		}
		return t.Decimal.InexactFloat64(), nil
	case driver.Valuer:
		dv, err := t.Value()
		if err != nil {
			return nil, err
		}
		return cellValue(dv)
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint(), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	}
	return nil, &UnsupportedTypeError{Type: fmt.Sprintf("%T", v)}
}
