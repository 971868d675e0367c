package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var unsigned bool

// urlCmd represents the url command
var urlCmd = &cobra.Command{
	Use:   "url",
	Short: "Print the request URL without fetching it",
	Long: `Build the capture request URL and print it. Signed URLs can be embedded
in pages or shared; they carry the signature instead of the secret key.`,
	PreRunE: initializeApp,
	RunE:    runURL,
}

func init() {
	rootCmd.AddCommand(urlCmd)

	urlCmd.Flags().StringVarP(&targetURL, "url", "u", "", "page URL to capture")
	urlCmd.Flags().StringVar(&htmlFile, "html", "", "local HTML file to render")
	urlCmd.Flags().StringVar(&markdownFile, "markdown", "", "local Markdown file to render")
	urlCmd.Flags().BoolVar(&unsigned, "unsigned", false, "omit the signature parameter")
	addCaptureFlags(urlCmd)
}

func runURL(cmd *cobra.Command, args []string) error {
	opts, err := buildTakeOptions()
	if err != nil {
		return err
	}

	if unsigned {
		fmt.Println(client.GenerateURL(opts))
		return nil
	}

	signedURL, err := client.GenerateSignedURL(opts)
	if err != nil {
		return err
	}
	fmt.Println(signedURL)
	return nil
}
