package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/screensnap/shotone/config"
	"github.com/screensnap/shotone/screenshotone"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *screenshotone.Client

	version   = "dev"
	buildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "shotone",
	Short: "Capture website screenshots and recordings via the ScreenshotOne API",
	Long: `shotone renders web pages through the ScreenshotOne API and saves the
result locally or stores it server-side. It can capture static screenshots,
record scrolling videos, and generate signed URLs for embedding without
exposing your secret key.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion injects build information from the main package.
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the configuration and the API client. It is
// set as PreRunE on every command that talks to the API so that version
// and upgrade work without credentials.
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create the API client
	opts := []screenshotone.Option{
		screenshotone.WithLogger(logger),
		screenshotone.WithTimeout(time.Duration(cfg.API.Timeout) * time.Second),
	}
	if cfg.API.BaseURL != "" {
		opts = append(opts, screenshotone.WithBaseURL(cfg.API.BaseURL))
	}

	client, err = screenshotone.NewClient(cfg.API.AccessKey, cfg.API.SecretKey, opts...)
	if err != nil {
		return fmt.Errorf("failed to create ScreenshotOne client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; color only when stderr is a terminal
	noColor := !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd())
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// versionCmd prints build information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("shotone version %s (built %s)\n", version, buildTime)
	},
}
