// Command invoicectl calcula totales de borradores y exporta facturas desde la
// línea de comandos contra el mismo backend que la API.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/jhoicas/invoice-system/internal/application/billing"
	"github.com/jhoicas/invoice-system/internal/application/dto"
	"github.com/jhoicas/invoice-system/internal/domain/document"
	"github.com/jhoicas/invoice-system/internal/infrastructure/backend"
	infrapdf "github.com/jhoicas/invoice-system/internal/infrastructure/pdf"
	"github.com/jhoicas/invoice-system/internal/infrastructure/postgres"
	"github.com/jhoicas/invoice-system/internal/infrastructure/printview"
	"github.com/jhoicas/invoice-system/pkg/config"
	"github.com/jhoicas/invoice-system/pkg/logger"
)

func main() {
	app := &cli.App{
		Name:  "invoicectl",
		Usage: "invoice drafts and exports from the command line",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log to stderr"},
		},
		Commands: []*cli.Command{
			totalsCommand(),
			pdfCommand(),
			printCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// env configuración y dependencias compartidas por los subcomandos.
type env struct {
	cfg      *config.Config
	log      *logger.Logger
	client   *backend.Client
	settings billing.ExportSettings
}

func newEnv(c *cli.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logger.Nop()
	if c.Bool("verbose") {
		log = logger.New(logger.Config{Env: "development", Level: cfg.App.LogLevel, Output: os.Stderr})
	}
	return &env{
		cfg:    cfg,
		log:    log,
		client: backend.NewClient(cfg.Backend, log),
		settings: billing.ExportSettings{
			Company:      document.Company{Name: cfg.Company.Name, AddressLines: cfg.Company.AddressLines},
			Defaults:     infrapdf.Options{Format: cfg.Export.Format, Orientation: cfg.Export.Orientation, Margins: infrapdf.UniformMargins(cfg.Export.MarginMM)}.WithDefaults(),
			TitleRestore: cfg.Export.TitleRestore,
		},
	}, nil
}

// ── totals ────────────────────────────────────────────────────────────────────

func totalsCommand() *cli.Command {
	return &cli.Command{
		Name:      "totals",
		Usage:     "compute line amounts, tax and total of a draft (JSON file or stdin)",
		ArgsUsage: "[draft.json]",
		Action: func(c *cli.Context) error {
			var r io.Reader = os.Stdin
			if path := c.Args().First(); path != "" && path != "-" {
				f, err := os.Open(path)
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			var in dto.DraftRequest
			if err := json.NewDecoder(r).Decode(&in); err != nil {
				return fmt.Errorf("leer borrador: %w", err)
			}
			out, err := billing.NewDraftUseCase(nil).Preview(in)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(c.App.Writer)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
}

// ── pdf ───────────────────────────────────────────────────────────────────────

func pdfCommand() *cli.Command {
	return &cli.Command{
		Name:  "pdf",
		Usage: "export an invoice to PDF",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "id", Required: true, Usage: "invoice id"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output file (default invoice-<number>-<date>.pdf)"},
			&cli.StringFlag{Name: "format", Usage: "a4 | letter"},
			&cli.StringFlag{Name: "orientation", Usage: "portrait | landscape"},
			&cli.Float64Flag{Name: "quality", Usage: "render scale (0, 4]"},
			&cli.Float64Flag{Name: "margin", Usage: "uniform margin in mm"},
		},
		Action: func(c *cli.Context) error {
			e, err := newEnv(c)
			if err != nil {
				return err
			}
			uc := billing.NewPDFUseCase(
				backend.NewInvoiceRepository(e.client),
				infrapdf.NewInvoiceRenderer("invoicectl"),
				postgres.NopExportLog{},
				billing.NewExportTracker(time.Second, time.Second),
				nil,
				e.settings,
				e.log,
			)
			opts := infrapdf.Options{
				Filename:    c.String("out"),
				Format:      c.String("format"),
				Orientation: c.String("orientation"),
				Quality:     c.Float64("quality"),
			}
			if m := c.Float64("margin"); m > 0 {
				opts.Margins = infrapdf.UniformMargins(m)
			}
			res, err := uc.Export(c.Context, c.Int64("id"), opts)
			if err != nil {
				return fmt.Errorf("%s (%w)", billing.NormalizeExportError(err), err)
			}
			if err := os.WriteFile(res.Filename, res.Content, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "PDF %q downloaded successfully\n", res.Filename)
			return nil
		},
	}
}

// ── print ─────────────────────────────────────────────────────────────────────

func printCommand() *cli.Command {
	return &cli.Command{
		Name:  "print",
		Usage: "render the printable HTML view of an invoice",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "id", Required: true, Usage: "invoice id"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output file (default stdout)"},
			&cli.BoolFlag{Name: "autoprint", Usage: "open the print dialog when the page loads"},
		},
		Action: func(c *cli.Context) error {
			e, err := newEnv(c)
			if err != nil {
				return err
			}
			uc := billing.NewPrintUseCase(
				backend.NewInvoiceRepository(e.client),
				printview.NewRenderer(),
				postgres.NopExportLog{},
				e.settings,
				e.log,
			)
			html, err := uc.Print(c.Context, c.Int64("id"), c.Bool("autoprint"))
			if err != nil {
				return err
			}
			if out := c.String("out"); out != "" {
				return os.WriteFile(out, html, 0o644)
			}
			_, err = c.App.Writer.Write(html)
			return err
		},
	}
}
