// Package screenshotone provides a client for the ScreenshotOne
// rendering API.
//
// The API renders a web page (or an inline HTML/Markdown document)
// server-side and returns the result as an image, video or PDF. This
// package builds the request URLs, signs them with the account's secret
// key and performs the HTTP calls.
//
// # Usage
//
// Create a client with your account credentials, build options with one
// of the fluent builders and fetch the asset:
//
//	client, err := screenshotone.NewClient(accessKey, secretKey)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	opts := screenshotone.TakeWithURL("https://example.com").
//		BlockAds(true).
//		FullPage(true)
//
//	image, err := client.Take(context.Background(), opts)
//
// GenerateSignedURL produces the URL without fetching it, for embedding
// in an <img> tag or handing to another system. Signed URLs are
// deterministic: parameter order follows setter invocation order, with
// access_key and signature appended at the end, so equal inputs always
// yield byte-identical URLs.
//
// # Error Handling
//
// Rejected requests surface as *APIError carrying the HTTP status and
// the API's machine-readable error code, message and documentation
// link:
//
//	var apiErr *screenshotone.APIError
//	if errors.As(err, &apiErr) && apiErr.IsThrottled() {
//		// back off
//	}
//
// Network failures and responses without a structured body come back as
// plain wrapped errors. Nothing is retried internally.
package screenshotone
