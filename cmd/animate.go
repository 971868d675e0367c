package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/screensnap/shotone/screenshotone"
)

var (
	animateFormat   string
	duration        int
	scenario        string
	scrollDuration  int
	animateBlockAds bool
	animateWidth    int
	animateHeight   int
)

// animateCmd represents the animate command
var animateCmd = &cobra.Command{
	Use:   "animate",
	Short: "Record an animated capture of a page",
	Long: `Record a scrolling video or GIF of a page through the ScreenshotOne
animate endpoint and write it to disk.`,
	PreRunE: initializeApp,
	RunE:    runAnimate,
}

func init() {
	rootCmd.AddCommand(animateCmd)

	animateCmd.Flags().StringVarP(&targetURL, "url", "u", "", "page URL to record (required)")
	animateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default recording.<format>)")
	animateCmd.Flags().StringVarP(&animateFormat, "format", "f", "mp4", "output format (mp4, webm, gif)")
	animateCmd.Flags().IntVar(&duration, "duration", 5, "recording length in seconds")
	animateCmd.Flags().StringVar(&scenario, "scenario", "scroll", "recording scenario")
	animateCmd.Flags().IntVar(&scrollDuration, "scroll-duration", 0, "duration of one scroll step in milliseconds")
	animateCmd.Flags().BoolVar(&animateBlockAds, "block-ads", false, "block advertisements")
	animateCmd.Flags().IntVar(&animateWidth, "width", 0, "viewport width in pixels")
	animateCmd.Flags().IntVar(&animateHeight, "height", 0, "viewport height in pixels")

	animateCmd.MarkFlagRequired("url")
}

func buildAnimateOptions() *screenshotone.AnimateOptions {
	opts := screenshotone.AnimateWithURL(targetURL).
		Format(animateFormat).
		Duration(duration).
		Scenario(scenario)

	if scrollDuration > 0 {
		opts.ScrollDuration(scrollDuration)
	}
	if animateBlockAds {
		opts.BlockAds(true)
	}
	if animateWidth > 0 {
		opts.ViewportWidth(animateWidth)
	}
	if animateHeight > 0 {
		opts.ViewportHeight(animateHeight)
	}

	return opts
}

func runAnimate(cmd *cobra.Command, args []string) error {
	opts := buildAnimateOptions()

	logger.Info().Str("url", targetURL).Int("duration", duration).Msg("Recording animated capture")

	asset, err := client.Animate(context.Background(), opts)
	if err != nil {
		return fmt.Errorf("recording failed: %w", err)
	}

	path := outputFile
	if path == "" {
		path = "recording." + animateFormat
	}
	if err := os.WriteFile(path, asset, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	color.New(color.FgGreen).Printf("✓ Saved %d bytes to %s\n", len(asset), path)
	return nil
}
