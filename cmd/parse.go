// Package cmd — parse command.
// This is the main command that orchestrates the pipeline:
// fetch → segment → extract → classify → autofill → write.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/johnny-y-wang/fireroad-server/config"
	"github.com/johnny-y-wang/fireroad-server/core"
	"github.com/johnny-y-wang/fireroad-server/core/evals"
	"github.com/johnny-y-wang/fireroad-server/core/fetch"
	"github.com/johnny-y-wang/fireroad-server/core/output"
	"github.com/johnny-y-wang/fireroad-server/core/render"
	"github.com/johnny-y-wang/fireroad-server/crawl"
)

// Flag variables.
var (
	flagOut         string
	flagEvaluations string
	flagDepartments string
	flagWorkers     int
	flagMarkdown    bool
	flagJSON        bool
	flagPDF         bool
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse the full catalog and write course files",
	Long: `Parse crawls every department listing page, reconstructs one record per
subject, and writes per-department files, four condensed slices, and a
combined courses file. Optional renderers emit Markdown, JSON or PDF
listings alongside.

Examples:
  catalog parse
  catalog parse --out ./catalog --evaluations evaluations.json
  catalog parse --departments 6,18 --markdown`,
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVar(&flagOut, "out", "", "Output directory (default: CATALOG_OUTPUT_DIR)")
	parseCmd.Flags().StringVar(&flagEvaluations, "evaluations", "", "Path to a subject evaluations JSON file")
	parseCmd.Flags().StringVar(&flagDepartments, "departments", "", "Comma-separated department codes (default: all)")
	parseCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Parallel department workers (default: CATALOG_WORKERS)")

	// Extra output formats; any combination may be enabled.
	parseCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Also write Markdown listings")
	parseCmd.Flags().BoolVar(&flagJSON, "json", false, "Also write JSON listings")
	parseCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Also write PDF listings")
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if flagOut != "" {
		cfg.OutputDir = flagOut
	}
	if flagEvaluations != "" {
		cfg.EvaluationsPath = flagEvaluations
	}
	if flagWorkers > 0 {
		cfg.Workers = flagWorkers
	}

	writer, err := output.New(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	var evaluations map[string]evals.Metrics
	if cfg.EvaluationsPath != "" {
		evaluations, err = evals.Load(cfg.EvaluationsPath)
		if err != nil {
			return err
		}
	}

	var departments []string
	if flagDepartments != "" {
		for _, code := range strings.Split(flagDepartments, ",") {
			if trimmed := strings.TrimSpace(code); trimmed != "" {
				departments = append(departments, trimmed)
			}
		}
	}

	aggregator := &crawl.Aggregator{
		Fetcher:     fetch.New(),
		Writer:      writer,
		BaseURL:     cfg.BaseURL,
		Departments: departments,
		Evaluations: evaluations,
		Renderers:   selectRenderers(),
		Workers:     cfg.Workers,
		Progress: func(fraction float64, message string) {
			fmt.Fprintf(os.Stdout, "[%3.0f%%] %s\n", fraction*100, message)
		},
	}

	summary, err := aggregator.Run(context.Background())
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "✓ %d courses from %d pages (%d pages absent)\n",
		summary.Courses, summary.Pages, summary.MissingPages)

	if len(summary.SegmentationFailures) > 0 {
		for _, url := range summary.SegmentationFailures {
			fmt.Fprintf(os.Stderr, "  ✗ no listings container: %s\n", url)
		}
		return fmt.Errorf("segmentation failed on %d retrieved pages", len(summary.SegmentationFailures))
	}
	return nil
}

// selectRenderers creates the enabled extra-format renderers.
func selectRenderers() []core.Renderer {
	var renderers []core.Renderer
	if flagMarkdown {
		renderers = append(renderers, render.NewMarkdownRenderer())
	}
	if flagJSON {
		renderers = append(renderers, render.NewJSONRenderer())
	}
	if flagPDF {
		renderers = append(renderers, render.NewPDFRenderer())
	}
	return renderers
}
