package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/loi-rocket/dealflow-cli/internal/export"
	"github.com/loi-rocket/dealflow-cli/internal/fetcher"
	"github.com/loi-rocket/dealflow-cli/internal/importer"
	"github.com/loi-rocket/dealflow-cli/internal/model"
	"github.com/loi-rocket/dealflow-cli/internal/pipeline"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file-or-url>",
	Short: "Analyze a lead export and compute offers",
	Long: `Reads a CSV or XLSX lead export (local path, or http/https/ftp URL),
computes valuation, debt, and offer economics for every listing, and
classifies each one into an acquisition strategy.

Examples:
  # Analyze a local CSV, print a table
  analyze leads.csv

  # Pull an XLSX feed over FTP and save the run
  analyze ftp://feeds.example.com/leads.xlsx --save

  # Only Subject To candidates, as CSV
  analyze leads.csv --strategy "Subject To" --format csv --output subto.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.String("format", "table", "output format: table, csv, or xlsx")
	f.String("output", "", "output file path (default: stdout)")
	f.String("sheet", "", "XLSX sheet name (default: first sheet)")
	f.String("strategy", "", "only output listings with this acquisition strategy")
	f.Int("limit", 0, "maximum number of results to output (0=all)")
	f.String("as-of", "", "analysis date as YYYY-MM-DD (default: today)")
	f.Int("concurrency", 0, "concurrent listing workers (default from config)")
	f.Bool("save", false, "persist the run and its results to the store")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	input := args[0]
	log := zap.L().With(zap.String("command", "analyze"))

	if err := cfg.Deal.Validate(); err != nil {
		return err
	}

	format, err := export.ParseFormat(mustString(cmd, "format"))
	if err != nil {
		return err
	}

	asOf := time.Now()
	if s := mustString(cmd, "as-of"); s != "" {
		asOf, err = time.Parse("2006-01-02", s)
		if err != nil {
			return eris.Wrapf(err, "analyze: parse --as-of %q", s)
		}
	}

	listings, err := loadListings(ctx, cmd, input)
	if err != nil {
		return err
	}
	if len(listings) == 0 {
		log.Warn("no listings found in input", zap.String("input", input))
		return nil
	}

	analyzer, err := pipeline.New(&cfg.Deal, asOf)
	if err != nil {
		return err
	}

	concurrency, _ := cmd.Flags().GetInt("concurrency")
	if concurrency <= 0 {
		concurrency = cfg.Batch.MaxConcurrentListings
	}

	log.Info("starting analysis",
		zap.String("input", input),
		zap.Int("listings", len(listings)),
		zap.Int("concurrency", concurrency),
	)

	batch, err := analyzer.MapBatch(ctx, listings, concurrency)
	if err != nil {
		return eris.Wrap(err, "analyze: batch")
	}
	summary := batch.Summarize()

	results := make([]model.ListingFull, 0, len(batch.Results))
	for _, r := range batch.Results {
		if r != nil {
			results = append(results, *r)
		}
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		if err := saveRun(ctx, input, batch, summary); err != nil {
			return err
		}
	}

	filtered := filterResults(cmd, results)

	out := os.Stdout
	if path := mustString(cmd, "output"); path != "" {
		out, err = os.Create(path)
		if err != nil {
			return eris.Wrapf(err, "analyze: create output file %s", path)
		}
		defer out.Close() //nolint:errcheck
	}

	if err := export.Results(out, format, filtered); err != nil {
		return err
	}
	if format == export.FormatTable && out == os.Stdout {
		export.PrintSummary(out, summary)
	}

	return nil
}

// loadListings reads the input from disk or downloads it, then parses rows.
func loadListings(ctx context.Context, cmd *cobra.Command, input string) ([]model.ListingRawData, error) {
	isXLSX := strings.EqualFold(filepath.Ext(stripQuery(input)), ".xlsx")

	if fetcher.IsRemote(input) {
		f, err := fetcher.ForURL(input, cfg.Fetch)
		if err != nil {
			return nil, err
		}
		body, err := f.Download(ctx, input)
		if err != nil {
			return nil, err
		}
		defer body.Close() //nolint:errcheck

		if !isXLSX {
			return importer.ReadCSV(body)
		}

		// The XLSX reader needs a seekable file, so spool the download.
		tmp, err := os.CreateTemp("", "dealflow-*.xlsx")
		if err != nil {
			return nil, eris.Wrap(err, "analyze: create temp file")
		}
		defer os.Remove(tmp.Name()) //nolint:errcheck
		if _, err := io.Copy(tmp, body); err != nil {
			tmp.Close() //nolint:errcheck
			return nil, eris.Wrap(err, "analyze: spool download")
		}
		if err := tmp.Close(); err != nil {
			return nil, eris.Wrap(err, "analyze: close temp file")
		}
		return importer.ReadXLSX(tmp.Name(), xlsxOptions(cmd))
	}

	if isXLSX {
		return importer.ReadXLSX(input, xlsxOptions(cmd))
	}

	f, err := os.Open(input)
	if err != nil {
		return nil, eris.Wrapf(err, "analyze: open %s", input)
	}
	defer f.Close() //nolint:errcheck
	return importer.ReadCSV(f)
}

func xlsxOptions(cmd *cobra.Command) importer.XLSXOptions {
	return importer.XLSXOptions{SheetName: mustString(cmd, "sheet")}
}

func filterResults(cmd *cobra.Command, results []model.ListingFull) []model.ListingFull {
	strategy := mustString(cmd, "strategy")
	limit, _ := cmd.Flags().GetInt("limit")

	filtered := results
	if strategy != "" {
		filtered = filtered[:0:0]
		for _, r := range results {
			if strings.EqualFold(string(r.AcquisitionStrategy), strategy) {
				filtered = append(filtered, r)
			}
		}
	}
	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered
}

func saveRun(ctx context.Context, source string, batch *pipeline.BatchResult, summary *model.RunSummary) error {
	st, err := initStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close() //nolint:errcheck
	if err := st.Migrate(ctx); err != nil {
		return err
	}

	run, err := st.CreateRun(ctx, source)
	if err != nil {
		return err
	}
	if err := st.SaveResults(ctx, run.ID, batch.Results); err != nil {
		if failErr := st.FailRun(ctx, run.ID); failErr != nil {
			zap.L().Warn("could not mark run failed", zap.String("run_id", run.ID), zap.Error(failErr))
		}
		return err
	}
	if err := st.CompleteRun(ctx, run.ID, summary); err != nil {
		return err
	}

	zap.L().Info("run saved",
		zap.String("run_id", run.ID),
		zap.Int("listings", summary.Listings),
		zap.Int("failed", summary.Failed),
	)
	return nil
}

func mustString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

// stripQuery removes any query string so URL extensions resolve correctly.
func stripQuery(input string) string {
	if i := strings.IndexByte(input, '?'); i >= 0 {
		return input[:i]
	}
	return input
}
