// Package printing turns HTML bodies into PDF files with headless Chrome.
package printing

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog"
)

const (
	defaultTimeout = 30 * time.Second

	a4WidthMM  = 210.0
	a4HeightMM = 297.0
	marginMM   = 10.0
)

type Config struct {
	Timeout time.Duration
	// RemoteURL points at a running Chrome DevTools endpoint instead of
	// launching a local browser.
	RemoteURL string
	NoSandbox bool
	Logger    zerolog.Logger
}

type ChromedpRenderer struct {
	config      Config
	log         zerolog.Logger
	allocCtx    context.Context
	allocCancel context.CancelFunc
}

func NewChromedpRenderer(cfg Config) *ChromedpRenderer {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	r := &ChromedpRenderer{
		config: cfg,
		log:    cfg.Logger.With().Str("component", "chromedp").Logger(),
	}
	r.initAllocator()
	return r
}

func (r *ChromedpRenderer) initAllocator() {
	if r.config.RemoteURL != "" {
		r.allocCtx, r.allocCancel = chromedp.NewRemoteAllocator(context.Background(), r.config.RemoteURL)
		return
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("font-render-hinting", "none"),
	)
	if r.config.NoSandbox {
		opts = append(opts,
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-setuid-sandbox", true),
		)
	}
	r.allocCtx, r.allocCancel = chromedp.NewExecAllocator(context.Background(), opts...)
}

// Render prints body as an A4 PDF with backgrounds and writes it to destPath.
func (r *ChromedpRenderer) Render(ctx context.Context, body, destPath string) error {
	if strings.TrimSpace(body) == "" {
		return errors.New("document body is empty")
	}

	ctx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	browserCtx, browserCancel := chromedp.NewContext(r.allocCtx,
		chromedp.WithLogf(func(format string, args ...interface{}) {
			r.log.Debug().Msg(fmt.Sprintf(format, args...))
		}),
	)
	defer browserCancel()

	// tie the browser tab to the caller's deadline
	stop := context.AfterFunc(ctx, browserCancel)
	defer stop()

	started := time.Now()
	params := printParams()
	var data []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, completeHTML(body)).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			out, _, err := params.Do(ctx)
			if err != nil {
				return err
			}
			data = out
			return nil
		}),
	)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("chrome print after %s: %w", r.config.Timeout, ctxErr)
		}
		return fmt.Errorf("chrome print: %w", err)
	}
	if len(data) == 0 {
		return errors.New("chrome produced an empty pdf")
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(destPath, data, 0o644); err != nil {
		return err
	}

	r.log.Debug().
		Int("bytes", len(data)).
		Dur("duration", time.Since(started)).
		Str("path", destPath).
		Msg("pdf printed")
	return nil
}

func (r *ChromedpRenderer) Close() error {
	if r.allocCancel != nil {
		r.allocCancel()
	}
	return nil
}

func printParams() *page.PrintToPDFParams {
	return page.PrintToPDF().
		WithPrintBackground(true).
		WithPaperWidth(mmToInches(a4WidthMM)).
		WithPaperHeight(mmToInches(a4HeightMM)).
		WithMarginTop(mmToInches(marginMM)).
		WithMarginRight(mmToInches(marginMM)).
		WithMarginBottom(mmToInches(marginMM)).
		WithMarginLeft(mmToInches(marginMM)).
		WithPreferCSSPageSize(true)
}

// completeHTML wraps a fragment in a minimal document.
func completeHTML(body string) string {
	lower := strings.ToLower(body)
	if strings.Contains(lower, "<!doctype") || strings.Contains(lower, "<html") {
		return body
	}
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html><html><head><meta charset="UTF-8"></head><body>`)
	b.WriteString(body)
	b.WriteString("</body></html>")
	return b.String()
}

func mmToInches(mm float64) float64 {
	return mm / 25.4
}
