package excel

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/cspzone/docs-service/internal/model"
)

const maxSheetName = 31

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// breakdown is one table sheet of the workbook.
type breakdown struct {
	title   string
	headers []string
	rows    [][]interface{}
}

// Generate builds a workbook with a summary sheet followed by one sheet per
// dashboard breakdown.
func (g *Generator) Generate(d model.Dashboard) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	summarySheet := "Summary"
	if err := file.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	g.writeSummary(file, summarySheet, d)

	used := map[string]struct{}{summarySheet: {}}
	for _, b := range breakdowns(d) {
		name := buildSheetName(b.title, used)
		used[name] = struct{}{}
		if _, err := file.NewSheet(name); err != nil {
			return nil, err
		}
		if err := g.writeBreakdown(file, name, b); err != nil {
			return nil, err
		}
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, d model.Dashboard) {
	rows := [][2]interface{}{
		{"Period", d.Period.Label},
		{"From", formatDate(d.Period.From)},
		{"To (exclusive)", formatDate(d.Period.To)},
		{"Generated at", d.GeneratedAt.UTC().Format(time.RFC3339)},
		{"", ""},
		{"Total revenue", amount(d.Revenue.TotalRevenue)},
		{"Period revenue", amount(d.Revenue.PeriodRevenue)},
		{"Outstanding", amount(d.Revenue.Outstanding)},
		{"Conversion, %", amount(d.Revenue.ConversionPercent)},
		{"Average deal", amount(d.Revenue.AverageDeal)},
		{"Total clients", d.Revenue.TotalClients},
		{"New clients in period", d.Revenue.PeriodClients},
		{"", ""},
		{"Quotations, last 30 days", d.Activity.Quotations},
		{"Invoices, last 30 days", d.Activity.Invoices},
		{"Paid invoices, last 30 days", d.Activity.PaidInvoices},
		{"Pending invoices", d.Activity.PendingInvoices},
	}
	if last := d.Activity.LastPaid; last != nil {
		rows = append(rows,
			[2]interface{}{"Last paid invoice", last.InvoiceNo},
			[2]interface{}{"Last paid amount", amount(last.Amount)},
			[2]interface{}{"Last paid client", last.ClientName},
			[2]interface{}{"Last paid date", formatDate(last.Date)},
		)
	}

	for i, row := range rows {
		_ = file.SetCellValue(sheet, fmt.Sprintf("A%d", i+1), row[0])
		_ = file.SetCellValue(sheet, fmt.Sprintf("B%d", i+1), row[1])
	}
	_ = file.SetColWidth(sheet, "A", "A", 32)
	_ = file.SetColWidth(sheet, "B", "B", 24)
}

func (g *Generator) writeBreakdown(file *excelize.File, sheet string, b breakdown) error {
	for i, header := range b.headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		_ = file.SetCellValue(sheet, cell, header)
	}
	for r, row := range b.rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			_ = file.SetCellValue(sheet, cell, value)
		}
	}
	_ = file.SetColWidth(sheet, "A", "A", 40)
	_ = file.SetColWidth(sheet, "B", "B", 16)
	return nil
}

func breakdowns(d model.Dashboard) []breakdown {
	amounts := func(title, nameHeader string, groups []model.AmountGroup) breakdown {
		b := breakdown{title: title, headers: []string{nameHeader, "Total"}}
		for _, g := range groups {
			b.rows = append(b.rows, []interface{}{displayName(g.Name), amount(g.Total)})
		}
		return b
	}
	counts := func(title, nameHeader string, groups []model.CountGroup) breakdown {
		b := breakdown{title: title, headers: []string{nameHeader, "Count"}}
		for _, g := range groups {
			b.rows = append(b.rows, []interface{}{displayName(g.Name), g.Count})
		}
		return b
	}
	return []breakdown{
		amounts("Revenue by activity", "Business activity", d.RevenueByActivity),
		counts("Top services", "Service", d.TopServices),
		amounts("Top clients", "Client", d.TopClients),
		counts("Quotation statuses", "Status", d.QuotationStatuses),
	}
}

func buildSheetName(title string, used map[string]struct{}) string {
	base := sanitizeSheetName(title)
	if len(base) > maxSheetName {
		base = base[:maxSheetName]
	}

	candidate := base
	for counter := 2; ; counter++ {
		if _, exists := used[candidate]; !exists {
			return candidate
		}
		suffix := fmt.Sprintf("-%d", counter)
		trimmed := base
		if len(trimmed)+len(suffix) > maxSheetName {
			trimmed = trimmed[:maxSheetName-len(suffix)]
		}
		candidate = trimmed + suffix
	}
}

func sanitizeSheetName(value string) string {
	replacer := strings.NewReplacer(
		"[", "-",
		"]", "-",
		":", "-",
		"*", "-",
		"?", "-",
		"/", "-",
		"\\", "-",
	)
	value = strings.TrimSpace(replacer.Replace(value))
	if value == "" {
		return "Sheet"
	}
	return value
}

func displayName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "(unspecified)"
	}
	return name
}

func amount(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
