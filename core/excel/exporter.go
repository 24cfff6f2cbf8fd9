package excel

type column struct {
	spec   ColumnSpec
	field  *Field
	format Format
}

// Exporter writes a header row and one row per record into a sheet.
// It owns the sheet writer from New until Output.
type Exporter struct {
	writer  SheetWriter
	source  RecordSource
	columns []column
	row     int
	col     int
	records int
	output  bool
}

// New resolves every column, then writes column widths, the heading and all
// records before returning. Invalid paths fail before anything is written.
// On error the writer may hold partial rows and must not be output.
func New(writer SheetWriter, source RecordSource, specs []ColumnSpec, resolver FieldResolver) (*Exporter, error) {
	if len(specs) == 0 {
		return nil, ErrNoColumns
	}

	e := &Exporter{writer: writer, source: source}
	if err := e.resolve(specs, resolver); err != nil {
		return nil, err
	}
	if p, ok := source.(Preloader); ok {
		if relations := e.preloads(); len(relations) > 0 {
			e.source = p.WithPreloads(relations)
		}
	}

	if err := e.SetColumnWidths(); err != nil {
		return nil, err
	}
	if err := e.WriteHeading(); err != nil {
		return nil, err
	}
	if err := e.WriteData(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Exporter) resolve(specs []ColumnSpec, resolver FieldResolver) error {
	e.columns = make([]column, len(specs))
	for i, spec := range specs {
		field, err := resolver.Resolve(spec.FieldPath)
		if err != nil {
			return err
		}
		format := ColumnFormat(field.Semantic, field.Precision)
		if spec.Format != nil {
			format = Format{Tag: *spec.Format}
			if format.Tag == FormatDecimal {
				format.Precision = ColumnFormat(SemanticDecimal, field.Precision).Precision
			}
		}
		e.columns[i] = column{spec: spec, field: field, format: format}
	}
	return nil
}

// preloads lists the distinct relation chains used by the columns.
func (e *Exporter) preloads() []string {
	seen := make(map[string]struct{})
	var relations []string
	for _, c := range e.columns {
		if c.field.Preload == "" {
			continue
		}
		if _, ok := seen[c.field.Preload]; ok {
			continue
		}
		seen[c.field.Preload] = struct{}{}
		relations = append(relations, c.field.Preload)
	}
	return relations
}

// SetColumnWidths sets each column's width from its spec.
func (e *Exporter) SetColumnWidths() error {
	for i, c := range e.columns {
		if err := e.writer.SetColumnWidth(i, c.spec.Width); err != nil {
			return &CellError{Row: 0, Col: i, Path: c.spec.FieldPath, Err: err}
		}
	}
	return nil
}

// WriteHeading writes the header row at the cursor: the explicit header when
// given, otherwise the resolved label.
func (e *Exporter) WriteHeading() error {
	e.col = 0
	for _, c := range e.columns {
		label := c.spec.Header
		if label == "" {
			label = c.field.Label
		}
		if err := e.writer.WriteString(e.row, e.col, label, Format{Tag: FormatHeader}); err != nil {
			return &CellError{Row: e.row, Col: e.col, Path: c.spec.FieldPath, Err: err}
		}
		e.col++
	}
	return nil
}

// WriteData writes one row per record, in source order, below the heading.
func (e *Exporter) WriteData() error {
	e.row++
	e.col = 0
	return e.source.Each(func(record any) error {
		for _, c := range e.columns {
			value, err := c.field.Value(record)
			if err != nil {
				return &CellError{Row: e.row, Col: e.col, Path: c.spec.FieldPath, Err: err}
			}
			if err := e.writer.Write(e.row, e.col, value, c.format); err != nil {
				return &CellError{Row: e.row, Col: e.col, Path: c.spec.FieldPath, Err: err}
			}
			e.col++
		}
		e.records++
		e.row++
		e.col = 0
		return nil
	})
}

// Records returns the number of data rows written.
func (e *Exporter) Records() int {
	return e.records
}

// Headers returns the heading row as written.
func (e *Exporter) Headers() []string {
	headers := make([]string, len(e.columns))
	for i, c := range e.columns {
		headers[i] = c.spec.Header
		if headers[i] == "" {
			headers[i] = c.field.Label
		}
	}
	return headers
}

// Formats returns the resolved format of each column.
func (e *Exporter) Formats() []Format {
	formats := make([]Format, len(e.columns))
	for i, c := range e.columns {
		formats[i] = c.format
	}
	return formats
}

// Output finalises the sheet and releases the writer. It may be called once.
func (e *Exporter) Output() error {
	if e.output {
		return ErrAlreadyOutput
	}
	e.output = true
	return e.writer.Close()
}
