// Package cli is the docs-service command line.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cspzone/docs-service/internal/service"
)

// Exit codes by error kind.
const (
	ExitOK         = 0
	ExitOther      = 1
	ExitValidation = 2
	ExitNotFound   = 3
	ExitConflict   = 4
	ExitStore      = 5
	ExitRender     = 6
	ExitMail       = 7
)

// runtime carries the streams and lazily built services of one invocation.
type runtime struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	app    *app
}

func (rt *runtime) open() (*app, error) {
	if rt.app != nil {
		return rt.app, nil
	}
	cfg, log, err := loadConfig()
	if err != nil {
		return nil, err
	}
	a, err := newApp(cfg, log)
	if err != nil {
		return nil, err
	}
	rt.app = a
	return a, nil
}

func (rt *runtime) close() {
	if rt.app != nil {
		rt.app.Close()
		rt.app = nil
	}
}

func (rt *runtime) print(value interface{}) error {
	enc := json.NewEncoder(rt.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func newRootCommand(rt *runtime) *cobra.Command {
	root := &cobra.Command{
		Use:           "docs-service",
		Short:         "Quotations, invoices and client records for a corporate services firm",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.SetIn(rt.stdin)
	root.SetOut(rt.stdout)
	root.SetErr(rt.stderr)

	root.AddCommand(
		newServeCommand(rt),
		newMigrateCommand(rt),
		newClientCommand(rt),
		newQuotationCommand(rt),
		newInvoiceCommand(rt),
		newRenderCommand(rt),
		newCatalogCommand(rt),
		newReportCommand(rt),
		newMailCommand(rt),
	)
	return root
}

// Run executes args and returns the process exit code.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rt := &runtime{stdin: stdin, stdout: stdout, stderr: stderr}
	defer rt.close()

	root := newRootCommand(rt)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		kind := service.KindOf(err)
		fmt.Fprintf(stderr, "error (%s): %s\n", kind, err.Error())
		return ExitCode(err)
	}
	return ExitOK
}

// Execute runs the process command line.
func Execute() int {
	return Run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, service.ErrValidation):
		return ExitValidation
	case errors.Is(err, service.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, service.ErrConflict):
		return ExitConflict
	case errors.Is(err, service.ErrStore):
		return ExitStore
	case errors.Is(err, service.ErrRender):
		return ExitRender
	case errors.Is(err, service.ErrMail):
		return ExitMail
	default:
		return ExitOther
	}
}

// usageError marks bad command-line input as a validation failure.
func usageError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", service.ErrValidation, fmt.Sprintf(format, args...))
}

func parseID(raw, what string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, usageError("invalid %s %q", what, raw)
	}
	return id, nil
}

func readInput(rt *runtime, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(rt.stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, usageError("read %s: %v", path, err)
	}
	return data, nil
}
