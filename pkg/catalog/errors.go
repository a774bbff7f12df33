package catalog

import (
	"fmt"
	"strings"
)

// ValidationError describes one problem found in a definition set, with
// enough context to fix it: the field path, what went wrong, and a line
// number when the definitions came from a file.
type ValidationError struct {
	Field      string // path into the document, e.g. "patterns[3].category"
	Message    string
	Suggestion string // optional hint for fixing the problem
	Line       int    // line in the source document, 0 when unknown
}

func (e *ValidationError) Error() string {
	var msg string
	if e.Line > 0 {
		msg = fmt.Sprintf("invalid definition at %s (line %d): %s", e.Field, e.Line, e.Message)
	} else {
		msg = fmt.Sprintf("invalid definition at %s: %s", e.Field, e.Message)
	}
	if e.Suggestion != "" {
		msg += fmt.Sprintf(". Suggestion: %s", e.Suggestion)
	}
	return msg
}

// ValidationErrors collects every problem in a definition set so that a
// single failed load reports all of them at once.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("found %d problems in the definition set:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// InvalidQueryError reports a malformed query argument, such as an unknown
// category name. It marks caller mistakes, as opposed to lookups that ran
// fine and simply matched nothing.
type InvalidQueryError struct {
	Param      string // which argument was bad: "category", "keyword", "role"
	Value      string // the offending value, may be empty
	Message    string
	Suggestion string
}

func (e *InvalidQueryError) Error() string {
	var msg string
	if e.Value != "" {
		msg = fmt.Sprintf("invalid %s %q: %s", e.Param, e.Value, e.Message)
	} else {
		msg = fmt.Sprintf("invalid %s: %s", e.Param, e.Message)
	}
	if e.Suggestion != "" {
		msg += fmt.Sprintf(". Suggestion: %s", e.Suggestion)
	}
	return msg
}
