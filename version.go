// Package magpie holds shared metadata for the magpie CLI.
package magpie

// Version is the current magpie release.
const Version = "0.1.0"
