// Package pdf lays document bodies out on A4 pages with gofpdf. It needs no
// external binary.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

const (
	fontFamily = "Helvetica"
	margin     = 15.0
	lineHeight = 5.0
)

type Generator struct {
	author string
}

// NewGenerator returns a renderer that stamps author into the PDF metadata.
func NewGenerator(author string) *Generator {
	return &Generator{author: author}
}

// Render writes the body to destPath as a PDF.
func (g *Generator) Render(ctx context.Context, body, destPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := g.Generate(body)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return os.WriteFile(destPath, data, 0o644)
}

// Generate lays the markup body out and returns the PDF bytes.
func (g *Generator) Generate(body string) ([]byte, error) {
	doc := parseBody(body)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	if doc.title != "" {
		pdf.SetTitle(doc.title, true)
	}
	if g.author != "" {
		pdf.SetAuthor(g.author, true)
	}
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for _, b := range doc.blocks {
		switch b.kind {
		case blockHeading:
			addHeading(pdf, tr, b)
		case blockParagraph:
			pdf.SetFont(fontFamily, "", 10)
			pdf.MultiCell(0, lineHeight, tr(b.text), "", "L", false)
			pdf.Ln(1.5)
		case blockListItem:
			addListItem(pdf, tr, b)
		case blockRow:
			drawTableRow(pdf, tr, b.cells, b.header)
		}
	}

	if err := pdf.Error(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func addHeading(pdf *gofpdf.Fpdf, tr func(string) string, b block) {
	size := 11.0
	switch b.level {
	case 1:
		size = 16
	case 2:
		size = 12
	}
	pdf.Ln(2)
	pdf.SetFont(fontFamily, "B", size)
	pdf.SetTextColor(31, 59, 99)
	pdf.MultiCell(0, size*0.5, tr(b.text), "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(1)
}

func addListItem(pdf *gofpdf.Fpdf, tr func(string) string, b block) {
	indent := 4.0 * float64(b.level)
	markerWidth := 7.0
	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()

	pdf.SetFont(fontFamily, "", 10)
	pdf.SetX(left + indent)
	pdf.CellFormat(markerWidth, lineHeight, tr(b.marker), "", 0, "L", false, 0, "")
	pdf.MultiCell(pageWidth-left-right-indent-markerWidth, lineHeight, tr(b.text), "", "L", false)
}

func drawTableRow(pdf *gofpdf.Fpdf, tr func(string) string, cols []string, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontFamily, style, 9)

	pageWidth, pageHeight := pdf.GetPageSize()
	left, _, right, bottom := pdf.GetMargins()
	width := (pageWidth - left - right) / float64(len(cols))

	lines := make([][]string, len(cols))
	maxLines := 1
	for i, col := range cols {
		for _, line := range pdf.SplitLines([]byte(tr(strings.TrimSpace(col))), width-2) {
			lines[i] = append(lines[i], string(line))
		}
		if len(lines[i]) > maxLines {
			maxLines = len(lines[i])
		}
	}
	height := float64(maxLines)*lineHeight + 2

	if pdf.GetY()+height > pageHeight-bottom {
		pdf.AddPage()
	}
	x, y := left, pdf.GetY()
	for i := range cols {
		cellX := x + float64(i)*width
		fill := header
		if fill {
			pdf.SetFillColor(31, 59, 99)
			pdf.SetTextColor(255, 255, 255)
		}
		pdf.SetDrawColor(204, 212, 223)
		rectStyle := "D"
		if fill {
			rectStyle = "FD"
		}
		pdf.Rect(cellX, y, width, height, rectStyle)
		align := "L"
		if i > 0 && looksNumeric(cols[i]) {
			align = "R"
		}
		for j, line := range lines[i] {
			pdf.SetXY(cellX+1, y+1+float64(j)*lineHeight)
			pdf.CellFormat(width-2, lineHeight, line, "", 0, align, false, 0, "")
		}
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.SetXY(left, y+height)
}

func looksNumeric(value string) bool {
	value = strings.TrimSpace(strings.TrimSuffix(value, "%"))
	if value == "" {
		return false
	}
	for _, r := range value {
		if (r < '0' || r > '9') && r != '.' && r != ',' && r != '-' {
			return false
		}
	}
	return true
}
