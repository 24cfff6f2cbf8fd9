// Package excel exports ordered records into a formatted spreadsheet sheet.
//
// An export is described by a list of ColumnSpec values (field path, width,
// optional format and header). A FieldResolver turns each path into a Field
// once, before any row is written: the human readable label, the semantic
// type that selects the cell format, and an accessor that reads the value
// from a record. Invalid paths therefore fail at setup rather than mid-export.
//
// # Resolvers
//
//   - SchemaResolver: GORM models. Dotted paths follow belongs-to and has-one
//     relations; labels come from the `label` struct tag or the column name.
//   - TableResolver: raw tables described by database.GetTableColumns.
//
// # Sources
//
//   - SliceOf: records already in memory.
//   - GormSource: a model read in primary key batches, preloading the
//     relations the columns traverse.
//   - TableSource: rows of a raw table as maps.
//
// # Formats
//
// ColumnFormat maps semantic types onto the closed set date, number,
// decimal and default. Decimal columns carry the scale from the field
// metadata (2 when unknown) and the XLSX writer renders that many places.
//
// # Usage
//
//	w, _ := excel.NewXLSXWriter(out, "Invoices")
//	resolver, _ := excel.ResolverFor(db, &Invoice{})
//	exp, err := excel.New(w, excel.NewGormSource(db, &Invoice{}, 0), []excel.ColumnSpec{
//	    excel.Column("number", 12),
//	    excel.Column("customer.name", 30),
//	    excel.Column("total", 14).WithHeader("Amount"),
//	}, resolver)
//	if err != nil {
//	    _ = w.Discard()
//	    return err
//	}
//	return exp.Output()
package excel
