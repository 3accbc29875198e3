package template

import (
	"html"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cspzone/docs-service/internal/model"
)

const dateLayout = "02-01-2006"

const qrEndpoint = "https://api.qrserver.com/v1/create-qr-code/?size=150x150&data="

// InvoiceOptions carries the presentation settings of invoice fields.
type InvoiceOptions struct {
	Currency string
	// URLBase, when set, is joined with the invoice number and encoded as
	// the QR_CODE_IMAGE link.
	URLBase string
}

// documentFields are the names QuotationFields and InvoiceFields can fill.
var documentFields = []string{
	"QUOTATION_NO", "QUOTATION_DATE", "VALID_TILL_DATE", "QUOTATION_REF",
	"INVOICE_NO", "INVOICE_DATE", "DUE_DATE", "INVOICE_URL", "QR_CODE_IMAGE",
	"CLIENT_NAME", "CLIENT_PHONE", "CLIENT_EMAIL",
	"JURISDICTION", "BUSINESS_ACTIVITY", "ITEMS_TABLE",
	"SUB_TOTAL", "VAT_TOTAL", "GRAND_TOTAL", "TOTAL_IN_WORDS", "REMARKS",
}

// QuotationFields builds the placeholder values for a quotation body.
func QuotationFields(q *model.Quotation, client *model.Client) map[string]string {
	fields := map[string]string{
		"QUOTATION_NO":      q.QuotationNo,
		"QUOTATION_DATE":    FormatDate(q.Date),
		"VALID_TILL_DATE":   FormatDate(q.ValidTill),
		"JURISDICTION":      html.EscapeString(q.Jurisdiction),
		"BUSINESS_ACTIVITY": html.EscapeString(q.BusinessActivity),
		"ITEMS_TABLE":       ItemsTable(q.Items),
		"SUB_TOTAL":         FormatAmount(q.SubTotal),
		"VAT_TOTAL":         FormatAmount(q.VATTotal),
		"GRAND_TOTAL":       FormatAmount(q.GrandTotal),
		"REMARKS":           textBlock(q.Remarks),
	}
	addClient(fields, client)
	return fields
}

// InvoiceFields builds the placeholder values for an invoice raised from q.
func InvoiceFields(inv *model.Invoice, q *model.Quotation, client *model.Client, opts InvoiceOptions) map[string]string {
	fields := map[string]string{
		"INVOICE_NO":     inv.InvoiceNo,
		"INVOICE_DATE":   FormatDate(inv.Date),
		"DUE_DATE":       FormatDate(inv.DueDate),
		"GRAND_TOTAL":    FormatAmount(inv.Amount),
		"TOTAL_IN_WORDS": html.EscapeString(AmountInWords(inv.Amount.Round(2), opts.Currency)),
	}
	if q != nil {
		fields["QUOTATION_REF"] = q.QuotationNo
		fields["ITEMS_TABLE"] = ItemsTable(q.Items)
		fields["SUB_TOTAL"] = FormatAmount(q.SubTotal)
		fields["VAT_TOTAL"] = FormatAmount(q.VATTotal)
		fields["JURISDICTION"] = html.EscapeString(q.Jurisdiction)
		fields["BUSINESS_ACTIVITY"] = html.EscapeString(q.BusinessActivity)
	}
	if base := strings.TrimRight(opts.URLBase, "/"); base != "" {
		link := base + "/" + url.PathEscape(inv.InvoiceNo)
		fields["INVOICE_URL"] = html.EscapeString(link)
		fields["QR_CODE_IMAGE"] = html.EscapeString(qrEndpoint + url.QueryEscape(link))
	}
	addClient(fields, client)
	return fields
}

// ItemsTable renders one <tr> per item in the order given.
func ItemsTable(items []model.QuotationItem) string {
	var b strings.Builder
	for _, item := range items {
		vat := "-"
		if item.VATPercent.IsPositive() {
			vat = item.VATPercent.String() + "%"
		}
		b.WriteString("<tr>")
		writeCell(&b, html.EscapeString(item.Description))
		writeCell(&b, item.Quantity.String())
		writeCell(&b, FormatAmount(item.Rate))
		writeCell(&b, vat)
		writeCell(&b, FormatAmount(item.Amount))
		b.WriteString("</tr>\n")
	}
	return b.String()
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func addClient(fields map[string]string, client *model.Client) {
	if client == nil {
		return
	}
	fields["CLIENT_NAME"] = html.EscapeString(client.Name)
	fields["CLIENT_PHONE"] = html.EscapeString(client.Phone)
	fields["CLIENT_EMAIL"] = html.EscapeString(client.Email)
}

func writeCell(b *strings.Builder, value string) {
	b.WriteString("<td>")
	b.WriteString(value)
	b.WriteString("</td>")
}

// textBlock escapes free text and keeps its line breaks.
func textBlock(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	return strings.ReplaceAll(html.EscapeString(text), "\n", "<br>")
}
