package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/cspzone/docs-service/internal/model"
	"github.com/cspzone/docs-service/internal/repository"
)

const (
	activityWindow = 30 * 24 * time.Hour
	topLimit       = 5

	PeriodThisMonth = "this-month"
	PeriodLastMonth = "last-month"
)

var (
	yearPattern  = regexp.MustCompile(`^\d{4}$`)
	monthPattern = regexp.MustCompile(`^(\d{2})-(\d{4})$`)
	rangePattern = regexp.MustCompile(`^(\d{2}-\d{2}-\d{4})\s+to\s+(\d{2}-\d{2}-\d{4})$`)
)

type ExcelGenerator interface {
	Generate(d model.Dashboard) ([]byte, error)
}

type ReportService struct {
	reports *repository.ReportRepository
	excel   ExcelGenerator
	log     zerolog.Logger
	now     func() time.Time
}

type DashboardExport struct {
	FileName string
	Content  []byte
}

func NewReportService(reports *repository.ReportRepository, excel ExcelGenerator, log zerolog.Logger) *ReportService {
	return &ReportService{
		reports: reports,
		excel:   excel,
		log:     log,
		now:     time.Now,
	}
}

// ParsePeriod turns a period expression into a half-open date window.
// Accepted forms: this-month (the default), last-month, YYYY, MM-YYYY and
// "DD-MM-YYYY to DD-MM-YYYY" with an inclusive end day.
func ParsePeriod(input string, now time.Time) (model.Period, error) {
	raw := strings.ToLower(strings.TrimSpace(input))
	today := dateOnly(now.UTC())
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)

	month := func(start time.Time) model.Period {
		return model.Period{
			Label: start.Format("01-2006"),
			From:  start,
			To:    start.AddDate(0, 1, 0),
		}
	}

	switch {
	case raw == "" || raw == PeriodThisMonth:
		return month(monthStart), nil

	case raw == PeriodLastMonth:
		return month(monthStart.AddDate(0, -1, 0)), nil

	case yearPattern.MatchString(raw):
		start, err := time.Parse("2006", raw)
		if err != nil {
			return model.Period{}, validationError("invalid year %q", input)
		}
		return model.Period{Label: raw, From: start, To: start.AddDate(1, 0, 0)}, nil

	case monthPattern.MatchString(raw):
		start, err := time.Parse("01-2006", raw)
		if err != nil {
			return model.Period{}, validationError("invalid month %q", input)
		}
		return month(start), nil

	case rangePattern.MatchString(raw):
		parts := rangePattern.FindStringSubmatch(raw)
		from, err := time.Parse("02-01-2006", parts[1])
		if err != nil {
			return model.Period{}, validationError("invalid start date %q", parts[1])
		}
		to, err := time.Parse("02-01-2006", parts[2])
		if err != nil {
			return model.Period{}, validationError("invalid end date %q", parts[2])
		}
		if to.Before(from) {
			return model.Period{}, validationError("period end %s is before start %s", parts[2], parts[1])
		}
		return model.Period{
			Label: parts[1] + " to " + parts[2],
			From:  from,
			To:    to.AddDate(0, 0, 1),
		}, nil
	}

	return model.Period{}, validationError("unsupported period %q", input)
}

func (s *ReportService) Dashboard(ctx context.Context, period model.Period) (*model.Dashboard, error) {
	if period.From.IsZero() || period.To.IsZero() {
		p, err := ParsePeriod(PeriodThisMonth, s.now())
		if err != nil {
			return nil, err
		}
		period = p
	}
	if !period.From.Before(period.To) {
		return nil, validationError("period must end after it starts")
	}

	now := timestamp(s.now())
	d := &model.Dashboard{Period: period, GeneratedAt: now}

	var err error
	if d.Revenue, err = s.revenue(ctx, period); err != nil {
		return nil, err
	}
	if d.Activity, err = s.activity(ctx, now); err != nil {
		return nil, err
	}

	if d.RevenueByActivity, err = s.reports.RevenueByActivity(ctx); err != nil {
		return nil, storeError("revenue by activity", err)
	}
	if d.TopServices, err = s.reports.TopServices(ctx, topLimit); err != nil {
		return nil, storeError("top services", err)
	}
	if d.TopClients, err = s.reports.TopClients(ctx, topLimit); err != nil {
		return nil, storeError("top clients", err)
	}
	if d.QuotationStatuses, err = s.reports.QuotationStatusCounts(ctx); err != nil {
		return nil, storeError("quotation statuses", err)
	}
	normalizeGroups(d)

	return d, nil
}

// ExportDashboard renders the dashboard for period as an xlsx workbook.
func (s *ReportService) ExportDashboard(ctx context.Context, period model.Period) (*DashboardExport, error) {
	d, err := s.Dashboard(ctx, period)
	if err != nil {
		return nil, err
	}
	content, err := s.excel.Generate(*d)
	if err != nil {
		return nil, fmt.Errorf("%w: dashboard workbook: %w", ErrRender, err)
	}
	return &DashboardExport{
		FileName: buildReportFileName(d.Period),
		Content:  content,
	}, nil
}

func (s *ReportService) revenue(ctx context.Context, period model.Period) (model.RevenueOverview, error) {
	var out model.RevenueOverview
	var err error

	if out.TotalRevenue, err = s.reports.PaidRevenue(ctx, nil, nil); err != nil {
		return out, storeError("paid revenue", err)
	}
	if out.PeriodRevenue, err = s.reports.PaidRevenue(ctx, &period.From, &period.To); err != nil {
		return out, storeError("period revenue", err)
	}
	if out.Outstanding, err = s.reports.Outstanding(ctx); err != nil {
		return out, storeError("outstanding", err)
	}
	total, paid, err := s.reports.InvoiceCounts(ctx)
	if err != nil {
		return out, storeError("invoice counts", err)
	}
	if out.TotalClients, err = s.reports.CountClients(ctx, nil, nil); err != nil {
		return out, storeError("client count", err)
	}
	if out.PeriodClients, err = s.reports.CountClients(ctx, &period.From, &period.To); err != nil {
		return out, storeError("period client count", err)
	}

	out.ConversionPercent = decimal.Zero
	if total > 0 {
		out.ConversionPercent = decimal.NewFromInt(paid).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(total)).
			Round(2)
	}
	out.AverageDeal = decimal.Zero
	if paid > 0 {
		out.AverageDeal = out.TotalRevenue.Div(decimal.NewFromInt(paid)).Round(2)
	}
	out.TotalRevenue = out.TotalRevenue.Round(2)
	out.PeriodRevenue = out.PeriodRevenue.Round(2)
	out.Outstanding = out.Outstanding.Round(2)
	return out, nil
}

func (s *ReportService) activity(ctx context.Context, now time.Time) (model.RecentActivity, error) {
	var out model.RecentActivity
	var err error
	since := now.Add(-activityWindow)
	paid := model.InvoiceStatusPaid

	if out.Quotations, err = s.reports.CountQuotationsSince(ctx, since); err != nil {
		return out, storeError("recent quotations", err)
	}
	if out.Invoices, err = s.reports.CountInvoicesSince(ctx, since, nil); err != nil {
		return out, storeError("recent invoices", err)
	}
	if out.PaidInvoices, err = s.reports.CountInvoicesSince(ctx, since, &paid); err != nil {
		return out, storeError("recent paid invoices", err)
	}
	if out.PendingInvoices, err = s.reports.CountInvoicesByStatus(ctx, model.InvoiceStatusUnpaid); err != nil {
		return out, storeError("pending invoices", err)
	}
	if out.LastPaid, err = s.reports.LastPaidInvoice(ctx); err != nil {
		return out, storeError("last paid invoice", err)
	}
	return out, nil
}

func normalizeGroups(d *model.Dashboard) {
	if d.RevenueByActivity == nil {
		d.RevenueByActivity = []model.AmountGroup{}
	}
	if d.TopServices == nil {
		d.TopServices = []model.CountGroup{}
	}
	if d.TopClients == nil {
		d.TopClients = []model.AmountGroup{}
	}
	if d.QuotationStatuses == nil {
		d.QuotationStatuses = []model.CountGroup{}
	}
	for i := range d.RevenueByActivity {
		d.RevenueByActivity[i].Total = d.RevenueByActivity[i].Total.Round(2)
	}
	for i := range d.TopClients {
		d.TopClients[i].Total = d.TopClients[i].Total.Round(2)
	}
}

func buildReportFileName(period model.Period) string {
	last := period.To.AddDate(0, 0, -1)
	return fmt.Sprintf("dashboard-%s-%s.xlsx", period.From.Format("20060102"), last.Format("20060102"))
}

func sanitizeFileName(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z':
			result = append(result, r)
		case r >= 'A' && r <= 'Z':
			result = append(result, r)
		case r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	return strings.Trim(string(result), "-")
}
