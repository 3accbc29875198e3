package template

import (
	_ "embed"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
)

//go:embed templates/quotation.html
var defaultQuotation string

//go:embed templates/invoice.html
var defaultInvoice string

func DefaultQuotation() string { return defaultQuotation }

func DefaultInvoice() string { return defaultInvoice }

// Load reads a template override, returning fallback when path is empty.
func Load(path, fallback string) (string, error) {
	if path == "" {
		return fallback, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read template: %w", err)
	}
	return string(data), nil
}

// LogoDataURI encodes an image file as a data: URI usable in an <img> tag.
// An empty path yields an empty URI.
func LogoDataURI(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read logo: %w", err)
	}
	return "data:" + http.DetectContentType(data) + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
