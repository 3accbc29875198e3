package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cspzone/docs-service/internal/service"
)

func newMigrateCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the schema and raise number counters to the stored history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := rt.open()
			if err != nil {
				return err
			}
			seeded, err := a.sequences.SeedFromHistory(cmd.Context())
			if err != nil {
				return fmt.Errorf("%w: seed sequences: %w", service.ErrStore, err)
			}
			a.log.Info().Msg("migrations applied")
			return rt.print(map[string]interface{}{
				"migrated":  true,
				"sequences": seeded,
			})
		},
	}
}
