package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cspzone/docs-service/internal/catalog"
	"github.com/cspzone/docs-service/internal/model"
	"github.com/cspzone/docs-service/internal/service"
)

func newClientCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{Use: "client", Short: "Manage clients"}

	var desc model.ClientDescriptor
	resolve := &cobra.Command{
		Use:   "resolve",
		Short: "Create or update a client keyed by email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := rt.open()
			if err != nil {
				return err
			}
			result, err := a.clients.ResolveClient(cmd.Context(), desc)
			if err != nil {
				return err
			}
			return rt.print(result)
		},
	}
	resolve.Flags().StringVar(&desc.Name, "name", "", "client name")
	resolve.Flags().StringVar(&desc.Email, "email", "", "client email")
	resolve.Flags().StringVar(&desc.Phone, "phone", "", "phone number")
	resolve.Flags().StringVar(&desc.Jurisdiction, "jurisdiction", "", "jurisdiction")
	resolve.Flags().StringVar(&desc.BusinessActivity, "activity", "", "business activity")

	var email string
	find := &cobra.Command{
		Use:   "find",
		Short: "Look a client up by email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := rt.open()
			if err != nil {
				return err
			}
			client, err := a.clients.FindClientByEmail(cmd.Context(), email)
			if err != nil {
				return err
			}
			if client == nil {
				return fmt.Errorf("%w: client %s", service.ErrNotFound, email)
			}
			return rt.print(client)
		},
	}
	find.Flags().StringVar(&email, "email", "", "client email")

	list := &cobra.Command{
		Use:   "list",
		Short: "List clients, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := rt.open()
			if err != nil {
				return err
			}
			clients, err := a.clients.ListClients(cmd.Context())
			if err != nil {
				return err
			}
			return rt.print(clients)
		},
	}

	quotations := &cobra.Command{
		Use:   "quotations <client-id>",
		Short: "List a client's quotations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "client id")
			if err != nil {
				return err
			}
			a, err := rt.open()
			if err != nil {
				return err
			}
			result, err := a.quotations.ListQuotationsForClient(cmd.Context(), id)
			if err != nil {
				return err
			}
			return rt.print(result)
		},
	}

	invoices := &cobra.Command{
		Use:   "invoices <client-id>",
		Short: "List a client's invoices",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "client id")
			if err != nil {
				return err
			}
			a, err := rt.open()
			if err != nil {
				return err
			}
			result, err := a.invoices.ListInvoicesForClient(cmd.Context(), id)
			if err != nil {
				return err
			}
			return rt.print(result)
		},
	}

	cmd.AddCommand(resolve, find, list, quotations, invoices)
	return cmd
}

// quotationPayload is the JSON document accepted by "quotation create".
type quotationPayload struct {
	ClientID         int64             `json:"client_id"`
	Date             string            `json:"date"`
	ValidTill        string            `json:"valid_till"`
	Jurisdiction     string            `json:"jurisdiction"`
	BusinessActivity string            `json:"business_activity"`
	ServiceKey       string            `json:"service_key"`
	SubTotal         decimal.Decimal   `json:"sub_total"`
	VATTotal         decimal.Decimal   `json:"vat_total"`
	GrandTotal       decimal.Decimal   `json:"grand_total"`
	Remarks          string            `json:"remarks"`
	Items            []model.ItemInput `json:"items"`
}

func newQuotationCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{Use: "quotation", Short: "Manage quotations"}

	var file string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a quotation from a JSON payload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return usageError("--file is required")
			}
			data, err := readInput(rt, file)
			if err != nil {
				return err
			}
			var payload quotationPayload
			if err := json.Unmarshal(data, &payload); err != nil {
				return usageError("parse payload: %v", err)
			}
			date, err := service.ParseDate(payload.Date)
			if err != nil {
				return err
			}
			validTill, err := service.ParseDate(payload.ValidTill)
			if err != nil {
				return err
			}

			a, err := rt.open()
			if err != nil {
				return err
			}
			created, err := a.quotations.CreateQuotation(cmd.Context(), payload.ClientID, model.QuotationInput{
				Date:             date,
				ValidTill:        validTill,
				Jurisdiction:     payload.Jurisdiction,
				BusinessActivity: payload.BusinessActivity,
				ServiceKey:       payload.ServiceKey,
				SubTotal:         payload.SubTotal,
				VATTotal:         payload.VATTotal,
				GrandTotal:       payload.GrandTotal,
				Remarks:          payload.Remarks,
			}, payload.Items)
			if err != nil {
				return err
			}
			return rt.print(created)
		},
	}
	create.Flags().StringVarP(&file, "file", "f", "", "payload file, - for stdin")

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a quotation with its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "quotation id")
			if err != nil {
				return err
			}
			a, err := rt.open()
			if err != nil {
				return err
			}
			q, err := a.quotations.GetQuotation(cmd.Context(), id)
			if err != nil {
				return err
			}
			if q == nil {
				return fmt.Errorf("%w: quotation #%d", service.ErrNotFound, id)
			}
			return rt.print(q)
		},
	}

	status := &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Move a quotation to accepted, rejected or expired",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "quotation id")
			if err != nil {
				return err
			}
			a, err := rt.open()
			if err != nil {
				return err
			}
			result, err := a.quotations.SetQuotationStatus(cmd.Context(), id, model.QuotationStatus(args[1]))
			if err != nil {
				return err
			}
			return rt.print(result)
		},
	}

	var asOf string
	expire := &cobra.Command{
		Use:   "expire",
		Short: "Expire pending quotations past their validity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := service.ParseDate(asOf)
			if err != nil {
				return err
			}
			a, err := rt.open()
			if err != nil {
				return err
			}
			result, err := a.quotations.ExpireQuotations(cmd.Context(), at)
			if err != nil {
				return err
			}
			return rt.print(result)
		},
	}
	expire.Flags().StringVar(&asOf, "as-of", "", "cut-off date, today when empty")

	render := &cobra.Command{
		Use:   "render <id>",
		Short: "Render the quotation PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "quotation id")
			if err != nil {
				return err
			}
			a, err := rt.open()
			if err != nil {
				return err
			}
			result, err := a.documents.RenderQuotation(cmd.Context(), id)
			if err != nil {
				return err
			}
			return rt.print(result)
		},
	}

	var override service.MailOverride
	send := &cobra.Command{
		Use:   "send <id>",
		Short: "Mail the quotation PDF to the client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "quotation id")
			if err != nil {
				return err
			}
			a, err := rt.open()
			if err != nil {
				return err
			}
			result, err := a.documents.SendQuotation(cmd.Context(), id, override)
			if err != nil {
				return err
			}
			return rt.print(result)
		},
	}
	addMailFlags(send, &override)

	cmd.AddCommand(create, get, status, expire, render, send)
	return cmd
}

func newInvoiceCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{Use: "invoice", Short: "Manage invoices"}

	var date, dueDate string
	create := &cobra.Command{
		Use:   "create <quotation-id>",
		Short: "Raise an invoice for a quotation's grand total",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "quotation id")
			if err != nil {
				return err
			}
			invoiceDate, err := service.ParseDate(date)
			if err != nil {
				return err
			}
			due, err := service.ParseDate(dueDate)
			if err != nil {
				return err
			}
			a, err := rt.open()
			if err != nil {
				return err
			}
			created, err := a.invoices.CreateInvoiceFromQuotation(cmd.Context(), id, model.InvoiceInput{
				Date:    invoiceDate,
				DueDate: due,
			})
			if err != nil {
				return err
			}
			return rt.print(created)
		},
	}
	create.Flags().StringVar(&date, "date", "", "invoice date, today when empty")
	create.Flags().StringVar(&dueDate, "due-date", "", "due date, date plus payment days when empty")

	get := &cobra.Command{
		Use:   "get <id|number>",
		Short: "Show an invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := rt.open()
			if err != nil {
				return err
			}
			inv, err := a.invoices.FindInvoice(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return rt.print(inv)
		},
	}

	status := &cobra.Command{
		Use:   "status <id|number> <paid|unpaid>",
		Short: "Mark an invoice paid or unpaid",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := rt.open()
			if err != nil {
				return err
			}
			result, err := a.invoices.SetInvoiceStatus(cmd.Context(), args[0], model.InvoiceStatus(args[1]))
			if err != nil {
				return err
			}
			return rt.print(result)
		},
	}

	render := &cobra.Command{
		Use:   "render <id|number>",
		Short: "Render the invoice PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := rt.open()
			if err != nil {
				return err
			}
			result, err := a.documents.RenderInvoice(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return rt.print(result)
		},
	}

	var override service.MailOverride
	send := &cobra.Command{
		Use:   "send <id|number>",
		Short: "Mail the invoice PDF to the client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := rt.open()
			if err != nil {
				return err
			}
			result, err := a.documents.SendInvoice(cmd.Context(), args[0], override)
			if err != nil {
				return err
			}
			return rt.print(result)
		},
	}
	addMailFlags(send, &override)

	cmd.AddCommand(create, get, status, render, send)
	return cmd
}

func addMailFlags(cmd *cobra.Command, override *service.MailOverride) {
	cmd.Flags().StringVar(&override.To, "to", "", "recipient, the client email when empty")
	cmd.Flags().StringVar(&override.Subject, "subject", "", "subject line")
	cmd.Flags().StringVar(&override.Body, "body", "", "message text")
}

func newRenderCommand(rt *runtime) *cobra.Command {
	var (
		templatePath string
		fieldsPath   string
		in           service.RawRender
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Fill a template with fields and optionally print it to PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if templatePath == "" {
				return usageError("--template is required")
			}
			body, err := readInput(rt, templatePath)
			if err != nil {
				return err
			}
			in.Template = string(body)
			if fieldsPath != "" {
				data, err := readInput(rt, fieldsPath)
				if err != nil {
					return err
				}
				if err := json.Unmarshal(data, &in.Fields); err != nil {
					return usageError("parse fields: %v", err)
				}
			}

			a, err := rt.open()
			if err != nil {
				return err
			}
			result, err := a.documents.Render(cmd.Context(), in)
			if err != nil {
				return err
			}
			if !in.PDF {
				_, err = fmt.Fprint(rt.stdout, result.HTML)
				return err
			}
			return rt.print(map[string]string{"path": result.Path})
		},
	}
	cmd.Flags().StringVarP(&templatePath, "template", "t", "", "template file, - for stdin")
	cmd.Flags().StringVar(&fieldsPath, "fields", "", "JSON object of field values")
	cmd.Flags().StringVar(&in.ServiceKey, "service", "", "catalog service key")
	cmd.Flags().BoolVar(&in.PDF, "pdf", false, "write a PDF and print its path")
	return cmd
}

func newCatalogCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{Use: "catalog", Short: "Browse the service catalog"}

	list := &cobra.Command{
		Use:   "list",
		Short: "List catalog services",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.print(catalog.List())
		},
	}

	get := &cobra.Command{
		Use:   "get <key>",
		Short: "Show a service and its rendered sections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, ok := catalog.Lookup(args[0])
			if !ok {
				return fmt.Errorf("%w: service %s", service.ErrNotFound, args[0])
			}
			return rt.print(map[string]interface{}{
				"service":  svc,
				"sections": catalog.Sections(svc),
			})
		},
	}

	cmd.AddCommand(list, get)
	return cmd
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
