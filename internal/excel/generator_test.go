package excel

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/cspzone/docs-service/internal/model"
)

func sampleDashboard() model.Dashboard {
	return model.Dashboard{
		Period: model.Period{
			Label: "02-2026",
			From:  time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
			To:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		GeneratedAt: time.Date(2026, 2, 20, 9, 30, 0, 0, time.UTC),
		Revenue: model.RevenueOverview{
			TotalRevenue:  decimal.RequireFromString("3150.5"),
			PeriodRevenue: decimal.RequireFromString("1050"),
			TotalClients:  4,
		},
		Activity: model.RecentActivity{
			Quotations: 3,
			LastPaid: &model.LastPaidInvoice{
				InvoiceNo:  "INV-2026-0002",
				Amount:     decimal.RequireFromString("1050"),
				ClientName: "Acme",
			},
		},
		RevenueByActivity: []model.AmountGroup{
			{Name: "Trading", Total: decimal.RequireFromString("2100.5")},
			{Name: "", Total: decimal.RequireFromString("1050")},
		},
		TopServices:       []model.CountGroup{{Name: "ifza", Count: 2}},
		TopClients:        []model.AmountGroup{{Name: "Acme", Total: decimal.RequireFromString("3150.5")}},
		QuotationStatuses: []model.CountGroup{{Name: "pending", Count: 2}, {Name: "accepted", Count: 1}},
	}
}

func TestGenerate(t *testing.T) {
	data, err := NewGenerator().Generate(sampleDashboard())
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer file.Close()

	assert.Equal(t,
		[]string{"Summary", "Revenue by activity", "Top services", "Top clients", "Quotation statuses"},
		file.GetSheetList(),
	)

	period, err := file.GetCellValue("Summary", "B1")
	require.NoError(t, err)
	assert.Equal(t, "02-2026", period)

	total, err := file.GetCellValue("Summary", "B6")
	require.NoError(t, err)
	assert.Equal(t, "3150.5", total)

	rows, err := file.GetRows("Revenue by activity")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Business activity", "Total"}, rows[0])
	assert.Equal(t, "(unspecified)", rows[2][0])

	statuses, err := file.GetRows("Quotation statuses")
	require.NoError(t, err)
	assert.Equal(t, []string{"accepted", "1"}, statuses[2])
}

func TestBuildSheetName(t *testing.T) {
	used := map[string]struct{}{}

	first := buildSheetName("Clients: top/bottom", used)
	assert.Equal(t, "Clients- top-bottom", first)
	used[first] = struct{}{}

	assert.Equal(t, "Clients- top-bottom-2", buildSheetName("Clients: top/bottom", used))

	long := buildSheetName(strings.Repeat("x", 40), used)
	assert.Len(t, long, maxSheetName)
	used[long] = struct{}{}
	dup := buildSheetName(strings.Repeat("x", 40), used)
	assert.Len(t, dup, maxSheetName)
	assert.True(t, strings.HasSuffix(dup, "-2"))

	assert.Equal(t, "Sheet", buildSheetName("  ", map[string]struct{}{}))
}
