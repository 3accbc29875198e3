package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/cspzone/docs-service/internal/service"
)

func newReportCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{Use: "report", Short: "Business reports"}

	var (
		period string
		xlsx   string
	)
	dashboard := &cobra.Command{
		Use:   "dashboard",
		Short: "Revenue, activity and breakdowns for a period",
		Long: `Periods: this-month (default), last-month, YYYY, MM-YYYY or
"DD-MM-YYYY to DD-MM-YYYY".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := service.ParsePeriod(period, time.Now())
			if err != nil {
				return err
			}
			a, err := rt.open()
			if err != nil {
				return err
			}

			if xlsx == "" {
				d, err := a.reports.Dashboard(cmd.Context(), p)
				if err != nil {
					return err
				}
				return rt.print(d)
			}

			export, err := a.reports.ExportDashboard(cmd.Context(), p)
			if err != nil {
				return err
			}
			if err := writeFile(xlsx, export.Content); err != nil {
				return err
			}
			return rt.print(map[string]string{"path": xlsx, "file_name": export.FileName})
		},
	}
	dashboard.Flags().StringVarP(&period, "period", "p", service.PeriodThisMonth, "reporting period")
	dashboard.Flags().StringVar(&xlsx, "xlsx", "", "write the dashboard workbook to this file")

	cmd.AddCommand(dashboard)
	return cmd
}
