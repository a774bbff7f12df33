package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// APIVersion is the definition document format this loader accepts.
const APIVersion = "v1"

// Kind is the document kind this loader accepts.
const Kind = "PatternCatalog"

// document is the on-disk shape of a definition set.
type document struct {
	APIVersion string  `yaml:"apiVersion"`
	Kind       string  `yaml:"kind"`
	Version    string  `yaml:"version"`
	Patterns   []Entry `yaml:"patterns"`
}

// Parse reads and validates a definition set from path, returning the
// assembled catalog. The load is all-or-nothing: if any record is invalid
// no catalog is returned, and the error lists every problem found.
func Parse(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file: %w", err)
	}
	return ParseBytes(data)
}

// ParseBytes validates a definition set held in memory. See Parse.
func ParseBytes(data []byte) (*Catalog, error) {
	// First pass: walk the raw node tree to map fields to line numbers,
	// so validation errors can point into the source document.
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	lines := extractLineNumbers(&root)

	// Second pass: strict decode. Unknown fields are rejected so typos
	// surface as parse errors instead of silently dropped data.
	var doc document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("definition set is empty")
		}
		return nil, fmt.Errorf("failed to parse definition set (check for unknown or misspelled fields): %w", err)
	}

	errs := validateHeader(doc, lines)
	errs = append(errs, validate(doc.Version, doc.Patterns, lines)...)
	if len(errs) > 0 {
		return nil, errs
	}

	return build(doc.Version, doc.Patterns), nil
}

// validateHeader checks the document envelope fields that only exist in the
// on-disk form.
func validateHeader(doc document, lines map[string]int) ValidationErrors {
	var errs ValidationErrors

	switch {
	case doc.APIVersion == "":
		errs = append(errs, ValidationError{
			Field:      "apiVersion",
			Message:    "apiVersion is required",
			Suggestion: fmt.Sprintf("add 'apiVersion: %s'", APIVersion),
			Line:       lineOf(lines, "apiVersion"),
		})
	case doc.APIVersion != APIVersion:
		errs = append(errs, ValidationError{
			Field:      "apiVersion",
			Message:    fmt.Sprintf("unsupported apiVersion %q", doc.APIVersion),
			Suggestion: fmt.Sprintf("use %q", APIVersion),
			Line:       lineOf(lines, "apiVersion"),
		})
	}

	switch {
	case doc.Kind == "":
		errs = append(errs, ValidationError{
			Field:      "kind",
			Message:    "kind is required",
			Suggestion: fmt.Sprintf("add 'kind: %s'", Kind),
			Line:       lineOf(lines, "kind"),
		})
	case doc.Kind != Kind:
		errs = append(errs, ValidationError{
			Field:      "kind",
			Message:    fmt.Sprintf("unsupported kind %q", doc.Kind),
			Suggestion: fmt.Sprintf("use %q", Kind),
			Line:       lineOf(lines, "kind"),
		})
	}

	return errs
}

// validate checks the declared data version and every entry, collecting all
// problems instead of stopping at the first. lines may be nil when the
// entries did not come from a file.
func validate(version string, entries []Entry, lines map[string]int) ValidationErrors {
	var errs ValidationErrors

	if version == "" {
		errs = append(errs, ValidationError{
			Field:      "version",
			Message:    "version is required",
			Suggestion: "declare the definition-set version, e.g. '1.0.0'",
			Line:       lineOf(lines, "version"),
		})
	} else {
		compatible, err := IsCompatible(version)
		switch {
		case err != nil:
			errs = append(errs, ValidationError{
				Field:      "version",
				Message:    fmt.Sprintf("cannot parse version %q", version),
				Suggestion: "use a semantic version like '1.0.0'",
				Line:       lineOf(lines, "version"),
			})
		case !compatible:
			errs = append(errs, ValidationError{
				Field:      "version",
				Message:    fmt.Sprintf("version %s is outside the supported range ^%s", version, SupportedVersion),
				Suggestion: "upgrade magpie or use an older definition set",
				Line:       lineOf(lines, "version"),
			})
		}
	}

	if len(entries) == 0 {
		errs = append(errs, ValidationError{
			Field:   "patterns",
			Message: "at least one pattern is required",
			Line:    lineOf(lines, "patterns"),
		})
		return errs
	}

	names := make(map[string]int, len(entries))
	folded := make(map[string]int, len(entries))
	for i, e := range entries {
		errs = append(errs, validateEntry(i, e, lines)...)

		if e.Name == "" {
			continue
		}
		if first, ok := names[e.Name]; ok {
			errs = append(errs, ValidationError{
				Field:      entryField(i, "name"),
				Message:    fmt.Sprintf("duplicate pattern name %q, first defined at patterns[%d]", e.Name, first),
				Suggestion: "pattern names must be unique",
				Line:       lineOf(lines, entryKey(i, "name")),
			})
			continue
		}
		if first, ok := folded[strings.ToLower(e.Name)]; ok {
			errs = append(errs, ValidationError{
				Field:      entryField(i, "name"),
				Message:    fmt.Sprintf("pattern name %q differs from %q only in case", e.Name, entries[first].Name),
				Suggestion: "rename one of the two",
				Line:       lineOf(lines, entryKey(i, "name")),
			})
			continue
		}
		names[e.Name] = i
		folded[strings.ToLower(e.Name)] = i
	}

	// Cross-references can only be resolved once every name is known.
	for i, e := range entries {
		errs = append(errs, validateRelated(i, e, names, lines)...)
	}

	return errs
}

// validateEntry checks the fields of one entry in isolation.
func validateEntry(i int, e Entry, lines map[string]int) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(e.Name) == "" {
		errs = append(errs, ValidationError{
			Field:   entryField(i, "name"),
			Message: "pattern name is required",
			Line:    lineOf(lines, entryKey(i, "name")),
		})
	}

	switch {
	case e.Category == "":
		errs = append(errs, ValidationError{
			Field:      entryField(i, "category"),
			Message:    "category is required",
			Suggestion: "use Creational, Structural, or Behavioral",
			Line:       lineOf(lines, entryKey(i, "category")),
		})
	case !e.Category.IsValid():
		suggestion := "use Creational, Structural, or Behavioral"
		for _, c := range Categories() {
			if editDistance(string(e.Category), string(c)) <= 2 {
				suggestion = fmt.Sprintf("did you mean %q?", c)
				break
			}
		}
		errs = append(errs, ValidationError{
			Field:      entryField(i, "category"),
			Message:    fmt.Sprintf("unknown category %q", e.Category),
			Suggestion: suggestion,
			Line:       lineOf(lines, entryKey(i, "category")),
		})
	}

	if strings.TrimSpace(e.Purpose) == "" {
		errs = append(errs, ValidationError{
			Field:   entryField(i, "purpose"),
			Message: "purpose is required",
			Line:    lineOf(lines, entryKey(i, "purpose")),
		})
	}

	if len(e.Participants) == 0 {
		errs = append(errs, ValidationError{
			Field:      entryField(i, "participants"),
			Message:    "at least one participant is required",
			Suggestion: "name the roles that collaborate in the pattern",
			Line:       lineOf(lines, entryKey(i, "participants")),
		})
	}
	seenParticipants := make(map[string]bool, len(e.Participants))
	for j, p := range e.Participants {
		key := entryItemKey(i, "participants", j)
		if strings.TrimSpace(p) == "" {
			errs = append(errs, ValidationError{
				Field:   entryItemField(i, "participants", j),
				Message: "participant must not be blank",
				Line:    lineOf(lines, key),
			})
			continue
		}
		if seenParticipants[strings.ToLower(strings.TrimSpace(p))] {
			errs = append(errs, ValidationError{
				Field:   entryItemField(i, "participants", j),
				Message: fmt.Sprintf("duplicate participant %q", p),
				Line:    lineOf(lines, key),
			})
		}
		seenParticipants[strings.ToLower(strings.TrimSpace(p))] = true
	}

	if len(e.Keywords) == 0 {
		errs = append(errs, ValidationError{
			Field:      entryField(i, "keywords"),
			Message:    "at least one keyword is required",
			Suggestion: "add applicability terms such as 'decouple' or 'undo'",
			Line:       lineOf(lines, entryKey(i, "keywords")),
		})
	}
	seenKeywords := make(map[string]bool, len(e.Keywords))
	for j, k := range e.Keywords {
		key := entryItemKey(i, "keywords", j)
		if strings.TrimSpace(k) == "" {
			errs = append(errs, ValidationError{
				Field:   entryItemField(i, "keywords", j),
				Message: "keyword must not be blank",
				Line:    lineOf(lines, key),
			})
			continue
		}
		if seenKeywords[strings.ToLower(strings.TrimSpace(k))] {
			errs = append(errs, ValidationError{
				Field:      entryItemField(i, "keywords", j),
				Message:    fmt.Sprintf("duplicate keyword %q", k),
				Suggestion: "keywords match case-insensitively",
				Line:       lineOf(lines, key),
			})
		}
		seenKeywords[strings.ToLower(strings.TrimSpace(k))] = true
	}

	for j, a := range e.AlsoKnownAs {
		if strings.TrimSpace(a) == "" {
			errs = append(errs, ValidationError{
				Field:   entryItemField(i, "aka", j),
				Message: "alternative name must not be blank",
				Line:    lineOf(lines, entryItemKey(i, "aka", j)),
			})
		}
	}

	return errs
}

// validateRelated checks that every related reference resolves to a pattern
// defined in the same set.
func validateRelated(i int, e Entry, names map[string]int, lines map[string]int) ValidationErrors {
	var errs ValidationErrors

	for j, r := range e.Related {
		key := entryItemKey(i, "related", j)
		if strings.TrimSpace(r) == "" {
			errs = append(errs, ValidationError{
				Field:   entryItemField(i, "related", j),
				Message: "related name must not be blank",
				Line:    lineOf(lines, key),
			})
			continue
		}
		if r == e.Name {
			errs = append(errs, ValidationError{
				Field:   entryItemField(i, "related", j),
				Message: fmt.Sprintf("pattern %q lists itself as related", e.Name),
				Line:    lineOf(lines, key),
			})
			continue
		}
		if _, ok := names[r]; ok {
			continue
		}

		suggestion := "add the pattern or remove the reference"
		if best := closestName(r, names); best != "" {
			suggestion = fmt.Sprintf("did you mean %q?", best)
		}
		errs = append(errs, ValidationError{
			Field:      entryItemField(i, "related", j),
			Message:    fmt.Sprintf("related pattern %q is not defined in this catalog", r),
			Suggestion: suggestion,
			Line:       lineOf(lines, key),
		})
	}

	return errs
}

func entryField(i int, field string) string {
	return fmt.Sprintf("patterns[%d].%s", i, field)
}

func entryItemField(i int, field string, j int) string {
	return fmt.Sprintf("patterns[%d].%s[%d]", i, field, j)
}

func entryKey(i int, field string) string {
	return fmt.Sprintf("patterns.%d.%s", i, field)
}

func entryItemKey(i int, field string, j int) string {
	return fmt.Sprintf("patterns.%d.%s.%d", i, field, j)
}

// closestName returns the defined pattern name most plausibly intended by
// r, or "" when nothing is within a small edit distance.
func closestName(r string, names map[string]int) string {
	best, bestDist := "", 3
	for name := range names {
		if name == "" {
			continue
		}
		d := editDistance(name, r)
		if d < bestDist || (d == bestDist && best != "" && name < best) {
			best, bestDist = name, d
		}
	}
	return best
}

// editDistance is the Levenshtein distance between a and b, ignoring case.
func editDistance(a, b string) int {
	ar := []rune(strings.ToLower(a))
	br := []rune(strings.ToLower(b))

	prev := make([]int, len(br)+1)
	curr := make([]int, len(br)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ar); i++ {
		curr[0] = i
		for j := 1; j <= len(br); j++ {
			cost := 1
			if ar[i-1] == br[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(br)]
}

// extractLineNumbers walks the YAML node tree and records the source line of
// every field, keyed by dotted path ("patterns.3.category").
func extractLineNumbers(root *yaml.Node) map[string]int {
	lines := make(map[string]int)
	node := root
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	walkNode(node, "", lines)
	return lines
}

func walkNode(n *yaml.Node, path string, lines map[string]int) {
	switch n.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			child := key.Value
			if path != "" {
				child = path + "." + key.Value
			}
			lines[child] = key.Line
			walkNode(n.Content[i+1], child, lines)
		}
	case yaml.SequenceNode:
		for i, item := range n.Content {
			child := strconv.Itoa(i)
			if path != "" {
				child = path + "." + child
			}
			lines[child] = item.Line
			walkNode(item, child, lines)
		}
	}
}

// lineOf resolves a dotted path to a source line, falling back to enclosing
// paths when the field itself is absent from the document.
func lineOf(lines map[string]int, key string) int {
	if lines == nil {
		return 0
	}
	for key != "" {
		if line, ok := lines[key]; ok {
			return line
		}
		i := strings.LastIndex(key, ".")
		if i < 0 {
			break
		}
		key = key[:i]
	}
	return 0
}
