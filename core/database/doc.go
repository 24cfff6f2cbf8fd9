// Package database handles database connections, schema inspection and raw
// row fetching.
//
// It wraps GORM to configure MySQL (production) or SQLite (local runs and
// tests) connections from the application's configuration.
//
// # Connect
//
// Connect establishes a connection and verifies it with a ping bounded by the
// configured timeout. Setting Debug logs every statement GORM executes, which
// replaces ad-hoc query dumping while investigating slow pages.
//
// # Schema Inspection
//
// GetTableColumns lists the columns and declared SQL types of a table. The
// spreadsheet exporter uses it to resolve column formats for tables that have
// no Go model.
//
// # Fetching
//
// FetchMaps turns a result set into one map per row keyed by column name, and
// FetchColumn collects the first column of every row.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database, logg)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "invoices")
package database
