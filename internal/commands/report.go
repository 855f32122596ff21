package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/yigit/college/internal/app/report/render"
	"github.com/yigit/college/internal/app/services"
	"github.com/yigit/college/internal/bootstrap"
	"github.com/yigit/college/internal/config"
	"github.com/yigit/college/internal/pkg/filestorage"
)

var (
	formatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: "output format: json, yaml or xlsx",
	}
	strategyFlag = &cli.StringFlag{
		Name:  "strategy",
		Usage: "join strategy: pipeline or memory",
	}
)

// NewReportApp prints the enrollment report to stdout
func NewReportApp() *cli.App {
	return NewApp("report", "print the enrollment report",
		[]cli.Flag{formatFlag, strategyFlag}, readerOptions, applyReportFlags, ReportRunner(os.Stdout, LocalExports))
}

// StoreOpener opens the export store rooted at dir
type StoreOpener func(dir string) (filestorage.FileStorage, error)

// LocalExports stores exports on the local filesystem
func LocalExports(dir string) (filestorage.FileStorage, error) {
	return filestorage.NewLocalStorage(dir)
}

// applyReportFlags lets explicit flags win over the file and environment
func applyReportFlags(c *cli.Context, cfg *config.Config) error {
	if c.IsSet(formatFlag.Name) {
		cfg.Report.Format = c.String(formatFlag.Name)
	}
	if c.IsSet(strategyFlag.Name) {
		cfg.Report.Strategy = c.String(strategyFlag.Name)
	}

	if err := config.ValidateFormat(cfg.Report.Format); err != nil {
		return err
	}
	return config.ValidateStrategy(cfg.Report.Strategy)
}

// ReportRunner builds the report and writes it to out. Spreadsheets are saved to
// the export directory and only their path is written to out.
func ReportRunner(out io.Writer, openStore StoreOpener) Runner {
	return func(ctx context.Context, cfg *config.Config, lgr zerolog.Logger, h *bootstrap.Handle) error {
		svc := services.NewReportService(h.Repos, cfg.Report.Strategy)

		rows, err := svc.BuildEnrollmentReport(ctx)
		if err != nil {
			return err
		}
		lgr.Info().
			Str("strategy", svc.Strategy()).
			Int("rows", len(rows)).
			Msg("Enrollment report built")

		if cfg.Report.Format != config.FormatXLSX {
			return render.Write(out, cfg.Report.Format, rows)
		}

		store, err := openStore(cfg.Report.ExportDir)
		if err != nil {
			return err
		}
		info, err := store.SaveReport("enrollments", config.FormatXLSX, func(w io.Writer) error {
			return render.Write(w, config.FormatXLSX, rows)
		})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, info.Path)
		return err
	}
}
