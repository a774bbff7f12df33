package docgen

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"sync"
	"text/template"
	"unicode"
)

// Renderer handles template parsing and rendering with caching.
type Renderer struct {
	funcMap template.FuncMap
	cache   map[string]*template.Template
	mu      sync.RWMutex // protect cache for concurrent access
}

// NewRenderer creates a renderer with built-in helper functions.
func NewRenderer() *Renderer {
	return &Renderer{
		funcMap: defaultFuncMap(),
		cache:   make(map[string]*template.Template),
	}
}

// RenderString renders a template from a string. The name is used for
// caching and error messages.
func (r *Renderer) RenderString(name, templateStr string, data any) ([]byte, error) {
	cacheKey := r.cacheKey("string", name)

	r.mu.RLock()
	if tmpl, ok := r.cache[cacheKey]; ok {
		r.mu.RUnlock()
		return r.executeTemplate(tmpl, data)
	}
	r.mu.RUnlock()

	tmpl, err := template.New(name).Funcs(r.funcMap).Parse(templateStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template '%s': %w", name, err)
	}

	r.mu.Lock()
	r.cache[cacheKey] = tmpl
	r.mu.Unlock()

	return r.executeTemplate(tmpl, data)
}

// RenderFS renders a template from an embedded filesystem.
func (r *Renderer) RenderFS(fsys embed.FS, path string, data any) ([]byte, error) {
	cacheKey := r.cacheKey("fs", path)

	r.mu.RLock()
	if tmpl, ok := r.cache[cacheKey]; ok {
		r.mu.RUnlock()
		return r.executeTemplate(tmpl, data)
	}
	r.mu.RUnlock()

	templateBytes, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template from fs '%s': %w", path, err)
	}

	tmpl, err := template.New(path).Funcs(r.funcMap).Parse(string(templateBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template '%s': %w", path, err)
	}

	r.mu.Lock()
	r.cache[cacheKey] = tmpl
	r.mu.Unlock()

	return r.executeTemplate(tmpl, data)
}

// ClearCache clears the template cache (useful for testing).
func (r *Renderer) ClearCache() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = make(map[string]*template.Template)
}

func (r *Renderer) executeTemplate(tmpl *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render template '%s': %w", tmpl.Name(), err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) cacheKey(typ, identifier string) string {
	return fmt.Sprintf("%s:%s", typ, identifier)
}

// defaultFuncMap returns the helpers available inside page templates.
func defaultFuncMap() template.FuncMap {
	return template.FuncMap{
		"join":  strings.Join,
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
		"title": Title,
		"trim":  strings.TrimSpace,
		"quote": Quote,
		"slug":  Slug,
	}
}

// Slug converts a pattern name to a file-safe lowercase identifier.
// Examples: "Abstract Factory" → "abstract-factory", "Handle/Body" → "handle-body".
func Slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if b.Len() > 0 && !dash {
			b.WriteRune('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// Quote wraps a string in double quotes.
func Quote(s string) string {
	return fmt.Sprintf("%q", s)
}

// Title converts a string to title case (first letter of each word
// capitalized). This replaces the deprecated strings.Title.
func Title(s string) string {
	if s == "" {
		return ""
	}

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(string(word[0])) + strings.ToLower(word[1:])
		}
	}
	return strings.Join(words, " ")
}
