// Package docgen renders a pattern catalog into a directory of markdown
// pages. Rendering and writing are separate phases: pages are rendered
// concurrently in memory, then written through a validate-first pipeline so
// a conflict aborts the export before any file is touched.
package docgen

import (
	"context"
	"embed"
	"fmt"
	"io"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/magpie/pkg/catalog"
)

//go:embed templates
var templates embed.FS

// ExecuteOptions configures execution behavior.
type ExecuteOptions struct {
	DryRun bool
	Force  bool
	Writer io.Writer // where to report progress, defaults to os.Stdout
}

// pageLink is a cross-reference between rendered pages.
type pageLink struct {
	Name string
	Slug string
}

// patternPage is the template data for one pattern's page.
type patternPage struct {
	Entry   catalog.Entry
	Slug    string
	Related []pageLink
}

// indexEntry is one row in the index table.
type indexEntry struct {
	Name    string
	Slug    string
	Purpose string
}

// indexSection groups index rows by category.
type indexSection struct {
	Category catalog.Category
	Patterns []indexEntry
}

// indexPage is the template data for the index page.
type indexPage struct {
	Version  string
	Total    int
	Sections []indexSection
}

// Exporter renders a catalog to markdown files.
type Exporter struct {
	renderer *Renderer
}

// NewExporter returns an exporter with a fresh template cache.
func NewExporter() *Exporter {
	return &Exporter{renderer: NewRenderer()}
}

// Export writes one markdown page per pattern plus an index.md into dir.
// Page rendering runs concurrently; the first template error cancels the
// whole export and nothing is written.
func (e *Exporter) Export(ctx context.Context, c *catalog.Catalog, dir string, opts ExecuteOptions) error {
	entries := c.All()

	// Page paths come from slugged names, and two distinct names can slug
	// identically ("Null Object", "Null/Object"). Refuse the export before
	// any op is built, otherwise the later write would silently replace the
	// earlier page.
	slugs := make(map[string]string, len(entries))
	for _, entry := range entries {
		s := Slug(entry.Name)
		if first, ok := slugs[s]; ok {
			return fmt.Errorf("patterns %q and %q would both be written to %s.md; rename one of them", first, entry.Name, s)
		}
		slugs[s] = entry.Name
	}

	ops := make([]Operation, len(entries)+1)

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	g.Go(func() error {
		content, err := e.renderer.RenderFS(templates, "templates/index.md.tmpl", buildIndex(c))
		if err != nil {
			return fmt.Errorf("rendering index: %w", err)
		}
		ops[0] = &WriteFileOp{
			Path:    filepath.Join(dir, "index.md"),
			Content: content,
			Mode:    0644,
		}
		return nil
	})
	for i, entry := range entries {
		g.Go(func() error {
			content, err := e.renderer.RenderFS(templates, "templates/pattern.md.tmpl", buildPage(entry))
			if err != nil {
				return fmt.Errorf("rendering %s: %w", entry.Name, err)
			}
			ops[i+1] = &WriteFileOp{
				Path:    filepath.Join(dir, Slug(entry.Name)+".md"),
				Content: content,
				Mode:    0644,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return Execute(ctx, ops, opts)
}

func buildPage(entry catalog.Entry) patternPage {
	page := patternPage{
		Entry: entry,
		Slug:  Slug(entry.Name),
	}
	for _, name := range entry.Related {
		page.Related = append(page.Related, pageLink{Name: name, Slug: Slug(name)})
	}
	return page
}

func buildIndex(c *catalog.Catalog) indexPage {
	page := indexPage{
		Version: c.Version(),
		Total:   c.Len(),
	}
	for _, category := range catalog.Categories() {
		section := indexSection{Category: category}
		for _, entry := range c.All() {
			if entry.Category != category {
				continue
			}
			section.Patterns = append(section.Patterns, indexEntry{
				Name:    entry.Name,
				Slug:    Slug(entry.Name),
				Purpose: entry.Purpose,
			})
		}
		if len(section.Patterns) > 0 {
			page.Sections = append(page.Sections, section)
		}
	}
	return page
}
