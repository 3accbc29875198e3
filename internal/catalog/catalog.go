// Package catalog holds the static service descriptions used to autofill
// quotation content.
package catalog

import (
	"html"
	"sort"
	"strings"
)

// Content placeholders the catalog can fill.
const (
	FieldRemarks           = "REMARKS"
	FieldScope             = "SCOPE_OF_SERVICES"
	FieldRequiredDocuments = "REQUIRED_DOCUMENTS"
	FieldProcess           = "SERVICE_PROCESS"
	FieldTimeline          = "ESTIMATED_TIMELINE"
	FieldPayment           = "PAYMENT_TERMS"
	FieldExclusions        = "EXCLUSIONS"
	FieldAcceptance        = "ACCEPTANCE_CLAUSE"
)

// minRemarkLength drops sentence fragments such as abbreviations.
const minRemarkLength = 5

type Service struct {
	Key        string `json:"key"`
	Name       string `json:"name"`
	Remarks    string `json:"remarks"`
	Scope      string `json:"scope"`
	Documents  string `json:"documents"`
	Process    string `json:"process"`
	Timeline   string `json:"timeline"`
	Payment    string `json:"payment"`
	Exclusions string `json:"exclusions"`
}

type Entry struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

func Lookup(key string) (Service, bool) {
	svc, ok := services[strings.TrimSpace(key)]
	return svc, ok
}

// List returns every service sorted by key.
func List() []Entry {
	entries := make([]Entry, 0, len(services))
	for key, svc := range services {
		entries = append(entries, Entry{Key: key, Name: svc.Name})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})
	return entries
}

// ContentFields lists the placeholders Sections produces.
func ContentFields() []string {
	return []string{
		FieldRemarks,
		FieldScope,
		FieldRequiredDocuments,
		FieldProcess,
		FieldTimeline,
		FieldPayment,
		FieldExclusions,
		FieldAcceptance,
	}
}

// Sections renders the service text as HTML fragments keyed by placeholder.
func Sections(svc Service) map[string]string {
	return map[string]string{
		FieldRemarks:           list("ul", remarkItems(svc.Remarks)),
		FieldScope:             paragraph(svc.Scope),
		FieldRequiredDocuments: list("ul", splitItems(svc.Documents, ";")),
		FieldProcess:           list("ol", splitItems(svc.Process, ";")),
		FieldTimeline:          paragraph(svc.Timeline),
		FieldPayment:           paragraph(svc.Payment),
		FieldExclusions:        list("ul", splitItems(svc.Exclusions, ";")),
		FieldAcceptance:        paragraph(AcceptanceClause),
	}
}

func remarkItems(text string) []string {
	var items []string
	for _, part := range strings.Split(text, ".") {
		part = strings.TrimSpace(part)
		if len(part) <= minRemarkLength {
			continue
		}
		items = append(items, part+".")
	}
	return items
}

func splitItems(text, sep string) []string {
	var items []string
	for _, part := range strings.Split(text, sep) {
		part = strings.TrimSpace(part)
		if part != "" {
			items = append(items, part)
		}
	}
	return items
}

func list(tag string, items []string) string {
	var b strings.Builder
	b.WriteString("<" + tag + ">")
	for _, item := range items {
		b.WriteString("<li>")
		b.WriteString(html.EscapeString(item))
		b.WriteString("</li>")
	}
	b.WriteString("</" + tag + ">")
	return b.String()
}

func paragraph(text string) string {
	return "<p>" + html.EscapeString(strings.TrimSpace(text)) + "</p>"
}
