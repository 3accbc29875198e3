// Package template fills {{NAME}} placeholders in document bodies.
package template

import (
	"regexp"
	"strings"

	"github.com/cspzone/docs-service/internal/catalog"
)

// placeholder matches any name between the delimiters, padding excluded.
var placeholder = regexp.MustCompile(`\{\{\s*([^{}]+?)\s*\}\}`)

// FieldLogo is filled from the configured logo when the caller leaves it empty.
const FieldLogo = "LOGO_IMAGE"

type Engine struct {
	logo     string
	sections func(serviceKey string) (map[string]string, bool)
}

// NewEngine returns an engine that falls back to logo for LOGO_IMAGE.
func NewEngine(logo string) *Engine {
	return &Engine{
		logo:     logo,
		sections: catalogSections,
	}
}

// Render replaces every placeholder in tmpl in a single pass. A value is
// never scanned for further placeholders. Lookup order is the caller's
// non-empty field, then catalog content for serviceKey, then the engine
// default, then the empty string.
func (e *Engine) Render(tmpl string, fields map[string]string, serviceKey string) string {
	var content map[string]string
	if serviceKey != "" && e.sections != nil {
		if sections, ok := e.sections(serviceKey); ok {
			content = sections
		}
	}

	return placeholder.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := strings.TrimSpace(match[2 : len(match)-2])
		if value := fields[name]; value != "" {
			return value
		}
		if value, ok := content[name]; ok {
			return value
		}
		if name == FieldLogo {
			return e.logo
		}
		return ""
	})
}

// Placeholders lists the distinct placeholder names in tmpl in order of first
// appearance.
func Placeholders(tmpl string) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, m := range placeholder.FindAllStringSubmatch(tmpl, -1) {
		name := strings.TrimSpace(m[1])
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// Unknown returns the placeholders in tmpl that no document field, catalog
// section or engine default fills. Such placeholders always render empty.
func Unknown(tmpl string) []string {
	known := make(map[string]struct{}, len(documentFields)+1)
	for _, name := range documentFields {
		known[name] = struct{}{}
	}
	for _, name := range catalog.ContentFields() {
		known[name] = struct{}{}
	}
	known[FieldLogo] = struct{}{}

	var unknown []string
	for _, name := range Placeholders(tmpl) {
		if _, ok := known[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

func catalogSections(serviceKey string) (map[string]string, bool) {
	svc, ok := catalog.Lookup(serviceKey)
	if !ok {
		return nil, false
	}
	return catalog.Sections(svc), true
}
