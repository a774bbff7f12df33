package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func testEntries() []Entry {
	return []Entry{
		{
			Name:         "Singleton",
			Category:     Creational,
			Purpose:      "Ensure a class has exactly one instance and provide a global point of access to it.",
			Participants: []string{"Singleton"},
			Keywords:     []string{"single instance", "global access"},
		},
		{
			Name:         "Adapter",
			Category:     Structural,
			AlsoKnownAs:  []string{"Wrapper"},
			Purpose:      "Convert the interface of a class into another interface clients expect.",
			Participants: []string{"Target", "Adapter", "Adaptee"},
			Keywords:     []string{"convert", "incompatible interfaces"},
			Related:      []string{"Singleton"},
		},
		{
			Name:         "Observer",
			Category:     Behavioral,
			Purpose:      "Define a one-to-many dependency between objects so dependents are notified of state changes.",
			Participants: []string{"Subject", "Observer"},
			Keywords:     []string{"notify", "event", "decouple"},
		},
	}
}

func TestNew(t *testing.T) {
	c, err := New("1.0.0", testEntries())
	require.NoError(t, err)

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, "1.0.0", c.Version())
}

func TestNewDuplicateName(t *testing.T) {
	entries := testEntries()
	entries = append(entries, Entry{
		Name:         "Singleton",
		Category:     Creational,
		Purpose:      "A second singleton definition.",
		Participants: []string{"Singleton"},
		Keywords:     []string{"duplicate"},
	})

	_, err := New("1.0.0", entries)
	require.Error(t, err)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 1)
	assert.Equal(t, "patterns[3].name", verrs[0].Field)
	assert.Contains(t, verrs[0].Message, `duplicate pattern name "Singleton"`)
	assert.Contains(t, verrs[0].Message, "patterns[0]")
}

func TestNewNameCaseCollision(t *testing.T) {
	entries := testEntries()
	entries = append(entries, Entry{
		Name:         "singleton",
		Category:     Creational,
		Purpose:      "Same name, different case.",
		Participants: []string{"Singleton"},
		Keywords:     []string{"duplicate"},
	})

	_, err := New("1.0.0", entries)
	require.Error(t, err)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 1)
	assert.Contains(t, verrs[0].Message, "differs from")
}

func TestNewCollectsAllProblems(t *testing.T) {
	entries := []Entry{
		{
			Name:     "Broken",
			Category: Category("Imaginary"),
			Related:  []string{"Missing"},
		},
	}

	_, err := New("1.0.0", entries)
	require.Error(t, err)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))

	fields := make([]string, 0, len(verrs))
	for _, verr := range verrs {
		fields = append(fields, verr.Field)
	}
	assert.Contains(t, fields, "patterns[0].category")
	assert.Contains(t, fields, "patterns[0].purpose")
	assert.Contains(t, fields, "patterns[0].participants")
	assert.Contains(t, fields, "patterns[0].keywords")
	assert.Contains(t, fields, "patterns[0].related[0]")
}

func TestNewNoEntries(t *testing.T) {
	_, err := New("1.0.0", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one pattern is required")
}

func TestNewBadVersion(t *testing.T) {
	_, err := New("not-a-version", testEntries())
	require.Error(t, err)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 1)
	assert.Equal(t, "version", verrs[0].Field)
	assert.Contains(t, verrs[0].Message, "cannot parse version")
}

func TestNewSelfReference(t *testing.T) {
	entries := []Entry{
		{
			Name:         "Composite",
			Category:     Structural,
			Purpose:      "Compose objects into tree structures.",
			Participants: []string{"Component", "Leaf", "Composite"},
			Keywords:     []string{"tree", "hierarchy"},
			Related:      []string{"Composite"},
		},
	}

	_, err := New("1.0.0", entries)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lists itself as related")
}

func TestNewTrimsSearchTerms(t *testing.T) {
	entries := testEntries()
	entries[0].Participants = []string{"  Singleton  "}
	entries[0].Keywords = []string{" single instance", "global access "}

	c, err := New("1.0.0", entries)
	require.NoError(t, err)

	e, ok := c.Get("Singleton")
	require.True(t, ok)
	assert.Equal(t, []string{"Singleton"}, e.Participants)
	assert.Equal(t, []string{"single instance", "global access"}, e.Keywords)
}

func TestGet(t *testing.T) {
	c, err := New("1.0.0", testEntries())
	require.NoError(t, err)

	e, ok := c.Get("Observer")
	require.True(t, ok)
	assert.Equal(t, Behavioral, e.Category)
	assert.Equal(t, []string{"Subject", "Observer"}, e.Participants)

	_, ok = c.Get("Monostate")
	assert.False(t, ok)

	// Lookups are case-sensitive.
	_, ok = c.Get("observer")
	assert.False(t, ok)
}

func TestAllPreservesOrder(t *testing.T) {
	c, err := New("1.0.0", testEntries())
	require.NoError(t, err)

	all := c.All()
	require.Len(t, all, 3)
	assert.Equal(t, "Singleton", all[0].Name)
	assert.Equal(t, "Adapter", all[1].Name)
	assert.Equal(t, "Observer", all[2].Name)
}

func TestAllReturnsCopy(t *testing.T) {
	c, err := New("1.0.0", testEntries())
	require.NoError(t, err)

	first := c.All()
	first[0] = Entry{Name: "Clobbered"}

	second := c.All()
	assert.Equal(t, "Singleton", second[0].Name)
}

func TestConcurrentReaders(t *testing.T) {
	c, err := New("1.0.0", testEntries())
	require.NoError(t, err)

	var g errgroup.Group
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			for j := 0; j < 100; j++ {
				if _, ok := c.Get("Adapter"); !ok {
					return errors.New("Adapter disappeared")
				}
				if n := len(c.All()); n != 3 {
					return errors.New("All returned wrong length")
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input string
		want  Category
	}{
		{"Creational", Creational},
		{"creational", Creational},
		{"STRUCTURAL", Structural},
		{"behavioral", Behavioral},
		{"BeHaViOrAl", Behavioral},
	}

	for _, tt := range tests {
		got, err := ParseCategory(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseCategoryUnknown(t *testing.T) {
	_, err := ParseCategory("Architectural")
	require.Error(t, err)

	var qerr *InvalidQueryError
	require.True(t, errors.As(err, &qerr))
	assert.Equal(t, "category", qerr.Param)
	assert.Equal(t, "Architectural", qerr.Value)
	assert.Contains(t, qerr.Suggestion, "Creational")
}

func TestParseCategoryEmpty(t *testing.T) {
	_, err := ParseCategory("")
	require.Error(t, err)

	var qerr *InvalidQueryError
	require.True(t, errors.As(err, &qerr))
	assert.Contains(t, qerr.Message, "must not be empty")
}

func TestCategoryIsValid(t *testing.T) {
	assert.True(t, Creational.IsValid())
	assert.True(t, Structural.IsValid())
	assert.True(t, Behavioral.IsValid())
	assert.False(t, Category("Concurrency").IsValid())
	assert.False(t, Category("").IsValid())
}

func TestCategoriesOrder(t *testing.T) {
	assert.Equal(t, []Category{Creational, Structural, Behavioral}, Categories())
}
