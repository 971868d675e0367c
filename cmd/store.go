package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/screensnap/shotone/screenshotone"
)

var (
	storagePath  string
	bucket       string
	acl          string
	storageClass string
	storeAnimate bool
)

// storeCmd represents the store command
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Render a capture and store it server-side",
	Long: `Render a capture and have ScreenshotOne upload it directly to your
configured S3-compatible storage, without downloading the asset locally.`,
	PreRunE: initializeApp,
	RunE:    runStore,
}

func init() {
	rootCmd.AddCommand(storeCmd)

	storeCmd.Flags().StringVarP(&targetURL, "url", "u", "", "page URL to capture (required)")
	storeCmd.Flags().StringVarP(&storagePath, "path", "p", "", "storage object key, without extension (required)")
	storeCmd.Flags().StringVar(&bucket, "bucket", "", "override the storage bucket")
	storeCmd.Flags().StringVar(&acl, "acl", "", "canned ACL for the stored object")
	storeCmd.Flags().StringVar(&storageClass, "class", "", "storage class for the stored object")
	storeCmd.Flags().BoolVar(&storeAnimate, "animate", false, "store an animated capture instead of a screenshot")
	storeCmd.Flags().StringVarP(&format, "format", "f", "", "output format")
	storeCmd.Flags().BoolVar(&blockAds, "block-ads", false, "block advertisements")

	storeCmd.MarkFlagRequired("url")
	storeCmd.MarkFlagRequired("path")
}

func runStore(cmd *cobra.Command, args []string) error {
	// Pick the capture variant; Store accepts both.
	var opts screenshotone.Options
	if storeAnimate {
		a := screenshotone.AnimateWithURL(targetURL)
		if format != "" {
			a.Format(format)
		}
		if blockAds {
			a.BlockAds(true)
		}
		opts = a
	} else {
		t := screenshotone.TakeWithURL(targetURL)
		if format != "" {
			t.Format(format)
		}
		if blockAds {
			t.BlockAds(true)
		}
		opts = t
	}

	var storeOpts []screenshotone.StoreOption
	if bucket != "" {
		storeOpts = append(storeOpts, screenshotone.WithBucket(bucket))
	}
	if acl != "" {
		storeOpts = append(storeOpts, screenshotone.WithACL(acl))
	}
	if storageClass != "" {
		storeOpts = append(storeOpts, screenshotone.WithStorageClass(storageClass))
	}

	logger.Info().Str("url", targetURL).Str("path", storagePath).Msg("Storing capture server-side")

	result, err := client.Store(context.Background(), opts, storagePath, storeOpts...)
	if err != nil {
		return fmt.Errorf("store failed: %w", err)
	}

	color.New(color.FgGreen).Println("✓ Capture stored")
	fmt.Printf("- Bucket: %s\n", result.Bucket)
	fmt.Printf("- Key: %s\n", result.Key)
	return nil
}
