// Package render turns an assembled invoice document into a PDF.
// Templates decide placement and styling only; all content arrives
// preformatted in the document.
package render

import (
	"sort"

	"github.com/johnfercher/maroto/v2/pkg/core"

	"github.com/billcraft/billcraft/internal/invoice/document"
)

// Template names. DefaultTemplate is both a template in its own right
// and the fallback for unrecognized names.
const (
	DefaultTemplate = "Default"
	ModernTemplate  = "Modern"
	ClassicTemplate = "Classic"
	MinimalTemplate = "Minimal"
)

// Template lays out an invoice document as maroto rows.
type Template interface {
	Name() string
	Description() string
	Layout(doc document.Document) []core.Row
}

// Registry holds the available templates. Lookup never fails: an
// unknown name resolves to the default template.
type Registry struct {
	templates map[string]Template
	fallback  Template
}

// NewRegistry builds the registry with all built-in templates.
func NewRegistry() *Registry {
	fallback := &defaultTemplate{}
	r := &Registry{
		templates: map[string]Template{},
		fallback:  fallback,
	}
	for _, t := range []Template{
		fallback,
		&modernTemplate{},
		&classicTemplate{},
		&minimalTemplate{},
	} {
		r.templates[t.Name()] = t
	}
	return r
}

// Get resolves a template by name, falling back to the default.
func (r *Registry) Get(name string) Template {
	if t, ok := r.templates[name]; ok {
		return t
	}
	return r.fallback
}

// Names lists the registered template names in stable order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// partyLines flattens a party block into displayable lines, skipping
// empty fields. Multi-line addresses stay multi-line.
func partyLines(p document.Party) []string {
	lines := make([]string, 0, 6)
	for _, s := range []string{p.Name, p.Address, p.Phone, p.Email, p.Website} {
		if s != "" {
			lines = append(lines, splitLines(s)...)
		}
	}
	return lines
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}
