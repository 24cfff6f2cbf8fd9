// Package pagination parses paging query parameters and applies them to GORM
// queries.
//
// Two styles are supported:
//   - PageNumber reads "page" and "page_size" (default 50, max 100000).
//   - LimitOffset reads "take" and "skip" (max 100), the parameter names used
//     by Kendo UI data sources.
//
// Both produce a Page with the total count and next/previous links built from
// the request URL.
package pagination
