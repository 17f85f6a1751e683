// Package catalog owns the ordered, immutable list of portfolio projects and
// the pure views derived from it.
//
// A Catalog is built once at startup and shared read-only across request
// goroutines. Every accessor returns copies so callers never alias catalog
// storage.
package catalog
