// Package query answers read-only questions about a pattern catalog:
// filtering by category and searching applicability keywords and
// participant roles.
package query

import (
	"strings"

	"github.com/simonhull/magpie/pkg/catalog"
)

// Engine runs queries against a catalog. It holds nothing but the catalog
// reference, so one Engine is safe for concurrent use.
type Engine struct {
	catalog *catalog.Catalog
}

// NewEngine returns an engine over c.
func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// ByCategory returns every pattern in the given category, preserving catalog
// order. An unknown category fails with *catalog.InvalidQueryError; a known
// category with no patterns is an empty result, not an error.
func (e *Engine) ByCategory(c catalog.Category) ([]catalog.Entry, error) {
	if !c.IsValid() {
		return nil, &catalog.InvalidQueryError{
			Param:      "category",
			Value:      string(c),
			Message:    "unknown category",
			Suggestion: "use Creational, Structural, or Behavioral",
		}
	}

	var out []catalog.Entry
	for _, entry := range e.catalog.All() {
		if entry.Category == c {
			out = append(out, entry)
		}
	}
	return out, nil
}

// ByKeyword returns every pattern that lists the given applicability
// keyword. Matching is case-insensitive and compares whole keywords, so
// "undo" matches "Undo" but never "undoable".
func (e *Engine) ByKeyword(keyword string) ([]catalog.Entry, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, &catalog.InvalidQueryError{
			Param:      "keyword",
			Message:    "keyword must not be empty",
			Suggestion: "pass an applicability term such as 'undo'",
		}
	}

	var out []catalog.Entry
	for _, entry := range e.catalog.All() {
		for _, k := range entry.Keywords {
			if strings.EqualFold(k, keyword) {
				out = append(out, entry)
				break
			}
		}
	}
	return out, nil
}

// ByParticipant returns every pattern in which the given role participates.
// Matching is case-insensitive against the full role name.
func (e *Engine) ByParticipant(role string) ([]catalog.Entry, error) {
	role = strings.TrimSpace(role)
	if role == "" {
		return nil, &catalog.InvalidQueryError{
			Param:      "role",
			Message:    "role must not be empty",
			Suggestion: "pass a participant role such as 'Observer'",
		}
	}

	var out []catalog.Entry
	for _, entry := range e.catalog.All() {
		for _, p := range entry.Participants {
			if strings.EqualFold(p, role) {
				out = append(out, entry)
				break
			}
		}
	}
	return out, nil
}

// CountByCategory tallies catalog entries per category.
func (e *Engine) CountByCategory() map[catalog.Category]int {
	counts := make(map[catalog.Category]int, len(catalog.Categories()))
	for _, entry := range e.catalog.All() {
		counts[entry.Category]++
	}
	return counts
}
