package cmd

import (
	"bufio"
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/screensnap/shotone/screenshotone"
)

var (
	inputFile   string
	concurrency int
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch [urls...]",
	Short: "Capture screenshots of many URLs concurrently",
	Long: `Capture screenshots of every URL given as an argument or listed in an
input file (one URL per line, blank lines and #-comments ignored). Captures run
concurrently up to the configured limit; failures are reported per URL and do
not stop the batch.`,
	PreRunE: initializeApp,
	RunE:    runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&inputFile, "input", "i", "", "file with one URL per line")
	batchCmd.Flags().IntVarP(&concurrency, "concurrency", "c", 0, "concurrent captures (default from config)")
	batchCmd.Flags().StringVarP(&format, "format", "f", "", "output format")
	batchCmd.Flags().BoolVar(&fullPage, "full-page", false, "capture the whole scrollable page")
	batchCmd.Flags().BoolVar(&blockAds, "block-ads", false, "block advertisements")
	batchCmd.Flags().BoolVar(&blockBanners, "block-banners", false, "dismiss cookie banners")
}

// collectURLs merges positional arguments with the input file.
func collectURLs(args []string) ([]string, error) {
	urls := append([]string(nil), args...)

	if inputFile != "" {
		f, err := os.Open(inputFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open input file: %w", err)
		}
		defer f.Close()

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			urls = append(urls, line)
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}
	}

	if len(urls) == 0 {
		return nil, fmt.Errorf("no URLs given; pass them as arguments or via --input")
	}

	return urls, nil
}

// batchFileName derives a stable output name from the page URL, falling
// back to the batch index for unparseable inputs.
func batchFileName(pageURL string, index int, ext string) string {
	parsed, err := url.Parse(pageURL)
	if err != nil || parsed.Host == "" {
		return fmt.Sprintf("capture-%03d.%s", index+1, ext)
	}

	name := parsed.Host + strings.ReplaceAll(parsed.Path, "/", "-")
	name = strings.Trim(name, "-")
	return fmt.Sprintf("%s.%s", name, ext)
}

func runBatch(cmd *cobra.Command, args []string) error {
	urls, err := collectURLs(args)
	if err != nil {
		return err
	}

	limit := cfg.Batch.Concurrency
	if concurrency > 0 {
		limit = concurrency
	}

	ext := cfg.Output.Format
	if format != "" {
		ext = format
	}

	logger.Info().
		Int("urls", len(urls)).
		Int("concurrency", limit).
		Msg("Starting batch capture")

	ctx := context.Background()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	var mu sync.Mutex
	var failed []string

	for i, pageURL := range urls {
		i, pageURL := i, pageURL
		g.Go(func() error {
			opts := screenshotone.TakeWithURL(pageURL)
			applyCaptureFlags(opts)

			asset, err := client.Take(ctx, opts)
			if err != nil {
				logger.Warn().Err(err).Str("url", pageURL).Msg("Capture failed")
				mu.Lock()
				failed = append(failed, pageURL)
				mu.Unlock()
				// Keep going; per-URL failures are collected, not fatal.
				return nil
			}

			path := filepath.Join(cfg.Output.Directory, batchFileName(pageURL, i, ext))
			if err := os.WriteFile(path, asset, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}

			logger.Debug().Str("url", pageURL).Str("file", path).Msg("Capture saved")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if len(failed) > 0 {
		color.New(color.FgYellow).Printf("Captured %d of %d URLs; %d failed:\n", len(urls)-len(failed), len(urls), len(failed))
		for _, u := range failed {
			fmt.Printf("  • %s\n", u)
		}
		return fmt.Errorf("%d captures failed", len(failed))
	}

	color.New(color.FgGreen).Printf("✓ Captured %d URLs\n", len(urls))
	return nil
}
