// Package gof embeds the built-in Gang of Four definition set: the 23
// classic design patterns, ready to load without any file on disk.
package gof

import (
	_ "embed"

	"github.com/simonhull/magpie/pkg/catalog"
)

//go:embed patterns.yml
var source string

// DataVersion is the version the built-in definition set declares.
const DataVersion = "1.0.0"

// Source returns the raw built-in definition set.
func Source() []byte {
	return []byte(source)
}

// Catalog parses the built-in definition set. The data ships inside the
// binary, so an error here means a broken build rather than user input.
func Catalog() (*catalog.Catalog, error) {
	return catalog.ParseBytes([]byte(source))
}
