package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/screensnap/shotone/screenshotone"
)

var (
	targetURL    string
	htmlFile     string
	markdownFile string
	outputFile   string
	format       string
	fullPage     bool
	blockAds     bool
	blockBanners bool
	darkMode     bool
	width        int
	height       int
	quality      int
	delay        int
	selector     string
	userAgent    string
)

// takeCmd represents the take command
var takeCmd = &cobra.Command{
	Use:   "take",
	Short: "Capture a static screenshot",
	Long: `Capture a static screenshot of a page URL, a local HTML file or a local
Markdown file and write it to disk.`,
	PreRunE: initializeApp,
	RunE:    runTake,
}

func init() {
	rootCmd.AddCommand(takeCmd)

	takeCmd.Flags().StringVarP(&targetURL, "url", "u", "", "page URL to capture")
	takeCmd.Flags().StringVar(&htmlFile, "html", "", "local HTML file to render")
	takeCmd.Flags().StringVar(&markdownFile, "markdown", "", "local Markdown file to render")
	takeCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default screenshot.<format>)")
	addCaptureFlags(takeCmd)
}

// addCaptureFlags registers the rendering flags shared by take, store
// and url.
func addCaptureFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format (png, jpeg, webp, pdf, ...)")
	cmd.Flags().BoolVar(&fullPage, "full-page", false, "capture the whole scrollable page")
	cmd.Flags().BoolVar(&blockAds, "block-ads", false, "block advertisements")
	cmd.Flags().BoolVar(&blockBanners, "block-banners", false, "dismiss cookie banners")
	cmd.Flags().BoolVar(&darkMode, "dark-mode", false, "prefer the dark color scheme")
	cmd.Flags().IntVar(&width, "width", 0, "viewport width in pixels")
	cmd.Flags().IntVar(&height, "height", 0, "viewport height in pixels")
	cmd.Flags().IntVar(&quality, "quality", 0, "image quality for lossy formats (1-100)")
	cmd.Flags().IntVar(&delay, "delay", 0, "seconds to wait after load before capturing")
	cmd.Flags().StringVar(&selector, "selector", "", "capture only the element matching this CSS selector")
	cmd.Flags().StringVar(&userAgent, "user-agent", "", "override the browser user agent")
}

// buildTakeOptions assembles TakeOptions from the capture flags. The
// source is exactly one of --url, --html or --markdown.
func buildTakeOptions() (*screenshotone.TakeOptions, error) {
	var opts *screenshotone.TakeOptions

	switch {
	case targetURL != "":
		opts = screenshotone.TakeWithURL(targetURL)
	case htmlFile != "":
		content, err := os.ReadFile(htmlFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read HTML file: %w", err)
		}
		opts = screenshotone.TakeWithHTML(string(content))
	case markdownFile != "":
		content, err := os.ReadFile(markdownFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read Markdown file: %w", err)
		}
		opts = screenshotone.TakeWithMarkdown(string(content))
	default:
		return nil, fmt.Errorf("one of --url, --html or --markdown is required")
	}

	applyCaptureFlags(opts)
	return opts, nil
}

func applyCaptureFlags(opts *screenshotone.TakeOptions) {
	if format != "" {
		opts.Format(format)
	}
	if fullPage {
		opts.FullPage(true)
	}
	if blockAds {
		opts.BlockAds(true)
	}
	if blockBanners {
		opts.BlockCookieBanners(true)
	}
	if darkMode {
		opts.DarkMode(true)
	}
	if width > 0 {
		opts.ViewportWidth(width)
	}
	if height > 0 {
		opts.ViewportHeight(height)
	}
	if quality > 0 {
		opts.ImageQuality(quality)
	}
	if delay > 0 {
		opts.Delay(delay)
	}
	if selector != "" {
		opts.Selector(selector)
	}
	if userAgent != "" {
		opts.UserAgent(userAgent)
	}
}

func runTake(cmd *cobra.Command, args []string) error {
	opts, err := buildTakeOptions()
	if err != nil {
		return err
	}

	logger.Info().Str("url", targetURL).Msg("Capturing screenshot")

	asset, err := client.Take(context.Background(), opts)
	if err != nil {
		return fmt.Errorf("capture failed: %w", err)
	}

	path := outputPath(outputFile, "screenshot")
	if err := os.WriteFile(path, asset, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	color.New(color.FgGreen).Printf("✓ Saved %d bytes to %s\n", len(asset), path)
	return nil
}

// outputPath resolves the output file, defaulting to
// <output.directory>/<stem>.<format>.
func outputPath(flagValue, stem string) string {
	if flagValue != "" {
		return flagValue
	}

	ext := cfg.Output.Format
	if format != "" {
		ext = format
	}

	return filepath.Join(cfg.Output.Directory, stem+"."+ext)
}
