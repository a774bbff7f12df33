package catalog

import "strings"

// Category groups patterns by the kind of problem they solve.
type Category string

const (
	// Creational patterns abstract how objects come into existence.
	Creational Category = "Creational"
	// Structural patterns compose objects into larger structures.
	Structural Category = "Structural"
	// Behavioral patterns assign responsibilities among collaborating objects.
	Behavioral Category = "Behavioral"
)

// Categories returns the known categories in canonical order.
func Categories() []Category {
	return []Category{Creational, Structural, Behavioral}
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	switch c {
	case Creational, Structural, Behavioral:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory resolves a user-supplied category name, ignoring case.
// Unknown values fail with *InvalidQueryError.
func ParseCategory(s string) (Category, error) {
	if s == "" {
		return "", &InvalidQueryError{
			Param:      "category",
			Message:    "category must not be empty",
			Suggestion: "use Creational, Structural, or Behavioral",
		}
	}
	for _, c := range Categories() {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", &InvalidQueryError{
		Param:      "category",
		Value:      s,
		Message:    "unknown category",
		Suggestion: "use Creational, Structural, or Behavioral",
	}
}

// Entry describes one design pattern.
//
// Entries are built by New or by the loader and never modified afterwards.
// Treat every Entry, including the slices inside it, as read-only.
type Entry struct {
	// Name identifies the pattern, e.g. "Abstract Factory". Unique within
	// a catalog.
	Name string `yaml:"name"`

	// Category is the problem family the pattern belongs to.
	Category Category `yaml:"category"`

	// Purpose is a short prose statement of the pattern's intent.
	Purpose string `yaml:"purpose"`

	// AlsoKnownAs lists alternative names the literature uses, if any.
	AlsoKnownAs []string `yaml:"aka,omitempty"`

	// Participants names the roles that collaborate in the pattern,
	// e.g. "Subject" and "Observer".
	Participants []string `yaml:"participants"`

	// Keywords are applicability terms used for searching, e.g. "undo"
	// or "decouple".
	Keywords []string `yaml:"keywords"`

	// Related names other patterns in the same catalog that this one is
	// commonly combined with or confused with.
	Related []string `yaml:"related,omitempty"`
}

// Catalog is an immutable collection of pattern entries keyed by name.
// It preserves definition order and is safe for concurrent readers.
type Catalog struct {
	version string
	entries []Entry
	byName  map[string]int
}

// New validates entries and assembles a catalog from them. Construction is
// all-or-nothing: any invalid or duplicate entry fails the whole catalog,
// and every problem found is reported in the returned ValidationErrors.
//
// Participant and keyword terms are stored with surrounding whitespace
// removed, so padded definition data matches queries for the same term.
//
// version declares which revision of the definition data the entries came
// from and must be a semantic version compatible with SupportedVersion.
func New(version string, entries []Entry) (*Catalog, error) {
	if errs := validate(version, entries, nil); len(errs) > 0 {
		return nil, errs
	}
	return build(version, entries), nil
}

// build assembles a catalog from entries that already passed validation.
func build(version string, entries []Entry) *Catalog {
	c := &Catalog{
		version: version,
		entries: make([]Entry, len(entries)),
		byName:  make(map[string]int, len(entries)),
	}
	copy(c.entries, entries)
	for i := range c.entries {
		c.entries[i].Participants = trimAll(c.entries[i].Participants)
		c.entries[i].Keywords = trimAll(c.entries[i].Keywords)
		c.byName[c.entries[i].Name] = i
	}
	return c
}

// trimAll returns a copy of values with surrounding whitespace removed.
func trimAll(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.TrimSpace(v)
	}
	return out
}

// Get returns the entry named name. The match is exact and case-sensitive;
// ok is false when no such pattern exists.
func (c *Catalog) Get(name string) (Entry, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// All returns every entry in definition order. The slice is a fresh copy on
// each call, so callers may sort or filter it freely.
func (c *Catalog) All() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of entries in the catalog.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Version returns the data version the definition set declared.
func (c *Catalog) Version() string {
	return c.version
}
