// Package cmd — scrape command.
// This is the main command that orchestrates the pipeline:
// fetch → locate containers → build records → render → write.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"time"

	"github.com/gaurav-prasanna/rosterpipe/core"
	"github.com/gaurav-prasanna/rosterpipe/core/fetch"
	"github.com/gaurav-prasanna/rosterpipe/core/normalize"
	"github.com/gaurav-prasanna/rosterpipe/core/output"
	"github.com/gaurav-prasanna/rosterpipe/core/render"
	"github.com/gaurav-prasanna/rosterpipe/core/roster"
	"github.com/gaurav-prasanna/rosterpipe/core/site"
	"github.com/spf13/cobra"
)

// Flag variables.
var (
	flagConfig    string
	flagPDF       bool
	flagMarkdown  bool
	flagJSON      bool
	flagOutputDir string
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape [listing-url]",
	Short: "Scrape a member listing page into a roster file",
	Long: `Scrape fetches the member listing page, builds one record per legislator card
and writes the deduplicated roster. The listing URL defaults to the site
profile's listing_url (the Alaska Senate unless --config says otherwise).

Examples:
  rosterpipe scrape
  rosterpipe scrape https://akleg.gov/senate.php --output_dir ./out
  rosterpipe scrape --config house.yaml --markdown`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScrape,
}

func init() {
	rootCmd.AddCommand(scrapeCmd)

	scrapeCmd.Flags().StringVar(&flagConfig, "config", "", "YAML site profile (default: Alaska Senate)")

	// Output format flags (mutually exclusive, JSON by default).
	scrapeCmd.Flags().BoolVar(&flagJSON, "json", false, "Output JSON (default)")
	scrapeCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output Markdown")
	scrapeCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output PDF")

	scrapeCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: current directory)")
}

func runScrape(cmd *cobra.Command, args []string) error {
	if err := validateFlags(); err != nil {
		return err
	}

	profile := site.Default()
	if flagConfig != "" {
		var err error
		profile, err = site.Load(flagConfig)
		if err != nil {
			return err
		}
	}

	listingURL := profile.ListingURL
	if len(args) == 1 {
		listingURL = args[0]
	}
	parsed, err := url.Parse(listingURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid URL: %s (must include scheme, e.g. https://akleg.gov/senate.php)", listingURL)
	}

	renderer := selectRenderer()

	writer, err := output.New(flagOutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	p, err := newPipeline(profile, fetch.New(), renderer, writer, slog.Default(), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	_, err = p.run(cmd.Context(), listingURL)
	return err
}

// pipeline wires the stages for one run.
type pipeline struct {
	profile  site.Profile
	fetcher  core.Fetcher
	locator  core.ContainerLocator
	renderer core.Renderer
	writer   *output.Writer
	logger   *slog.Logger
	stdout   io.Writer
}

// newPipeline builds the container locator for profile. A profile the
// locator rejects is a configuration error and nothing is written.
func newPipeline(
	profile site.Profile,
	fetcher core.Fetcher,
	renderer core.Renderer,
	writer *output.Writer,
	logger *slog.Logger,
	stdout io.Writer,
) (*pipeline, error) {
	locator, err := profile.Locator()
	if err != nil {
		return nil, fmt.Errorf("site profile: %w", err)
	}
	locator.Logger = logger

	return &pipeline{
		profile:  profile,
		fetcher:  fetcher,
		locator:  locator,
		renderer: renderer,
		writer:   writer,
		logger:   logger,
		stdout:   stdout,
	}, nil
}

// run scrapes listingURL and writes the roster. A provider failure still
// writes an empty roster before the error is returned; a write failure
// does not discard the scraped records.
func (p *pipeline) run(ctx context.Context, listingURL string) ([]core.Legislator, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	p.logger.InfoContext(ctx, "fetching listing", "url", listingURL)

	records, scrapeErr := p.scrape(ctx, listingURL)
	if scrapeErr != nil {
		p.logger.ErrorContext(ctx, "scrape failed", "url", listingURL, "err", scrapeErr)
	}

	meta := core.RosterMetadata{
		URL:       listingURL,
		Site:      p.profile.Name,
		Title:     p.profile.Title,
		FetchedAt: time.Now().UTC().Format(time.RFC3339),
	}

	data, err := p.renderer.Render(records, meta)
	if err != nil {
		return records, errors.Join(scrapeErr, fmt.Errorf("render: %w", err))
	}

	path, err := p.writer.Write(p.profile.OutputBasename, data, p.renderer.Extension())
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to write roster", "err", err)
		return records, errors.Join(scrapeErr, err)
	}

	p.logger.InfoContext(ctx, "scraping completed", "total", len(records), "path", path)
	fmt.Fprintf(p.stdout, "✓ Written: %s (%d legislators)\n", path, len(records))
	return records, scrapeErr
}

// scrape fetches the listing and builds the roster. Errors here are
// provider failures; per-container problems are only logged.
func (p *pipeline) scrape(ctx context.Context, listingURL string) ([]core.Legislator, error) {
	result, err := p.fetcher.Fetch(ctx, listingURL)
	if err != nil {
		return []core.Legislator{}, fmt.Errorf("fetch: %w", err)
	}

	containers, err := p.locator.Containers(result.HTML)
	if err != nil {
		return []core.Legislator{}, fmt.Errorf("locate containers: %w", err)
	}
	p.logger.InfoContext(ctx, "found containers", "count", len(containers))

	return roster.Scrape(ctx, containers, p.profile.Builder(), p.logger), nil
}

// validateFlags checks that at most one output format is chosen.
func validateFlags() error {
	formatCount := 0
	for _, set := range []bool{flagJSON, flagMarkdown, flagPDF} {
		if set {
			formatCount++
		}
	}
	if formatCount > 1 {
		return fmt.Errorf("only one output format allowed per run (got %d)", formatCount)
	}
	return nil
}

// selectRenderer creates the Renderer chosen by flags.
func selectRenderer() core.Renderer {
	switch {
	case flagMarkdown:
		return render.NewMarkdownRenderer(normalize.New())
	case flagPDF:
		return render.NewPDFRenderer()
	default:
		return render.NewJSONRenderer()
	}
}
