// Package tables exposes database tables over HTTP: paginated listings,
// single rows and spreadsheet exports.
//
// Routes:
//   - GET /tables                      table names
//   - GET /tables/:table               page-number paginated rows (page, page_size)
//   - GET /tables/:table/rows          limit/offset paginated rows (take, skip)
//   - GET /tables/:table/columns       column definitions
//   - GET /tables/:table/row/:id       one row by primary key
//   - GET /tables/:table/export        xlsx download, or upload with upload=true
package tables
