// Package assets serves webpack bundle lookups for front-ends rendered
// outside this process.
package assets
