// Package catalog provides the pattern catalog data model and the parsing
// and validation of pattern definition sets.
//
// A definition set is a YAML document listing design patterns. This package
// reads it, validates every record, and assembles an immutable Catalog. A
// catalog is only ever published whole: one malformed record fails the entire
// load, so readers never observe a partially valid catalog.
package catalog
