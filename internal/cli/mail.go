package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cspzone/docs-service/internal/mail"
	"github.com/cspzone/docs-service/internal/service"
)

func newMailCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{Use: "mail", Short: "SMTP utilities"}

	var to string
	test := &cobra.Command{
		Use:   "test",
		Short: "Check the SMTP login, or send a test message with --to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := rt.open()
			if err != nil {
				return err
			}

			if to == "" {
				if err := a.mailer.Verify(cmd.Context()); err != nil {
					return fmt.Errorf("%w: %w", service.ErrMail, err)
				}
				return rt.print(map[string]interface{}{"verified": true, "host": a.cfg.SMTP.Host})
			}

			err = a.mailer.Send(cmd.Context(), mail.Message{
				To:      to,
				Subject: "Test message from " + a.cfg.Documents.CompanyName,
				Body:    "SMTP delivery is configured correctly.",
			})
			if err != nil {
				return fmt.Errorf("%w: %w", service.ErrMail, err)
			}
			return rt.print(map[string]interface{}{"sent": true, "to": to})
		},
	}
	test.Flags().StringVar(&to, "to", "", "recipient of a test message")

	cmd.AddCommand(test)
	return cmd
}
