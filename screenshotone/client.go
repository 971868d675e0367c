package screenshotone

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://api.screenshotone.com"

	takeEndpoint    = "/take"
	animateEndpoint = "/animate"
)

// Store-operation response headers reporting where the asset landed.
const (
	storeBucketHeader = "X-Screenshotone-Store-Bucket"
	storeKeyHeader    = "X-Screenshotone-Store-Key"
)

// Client talks to the ScreenshotOne API. It holds the account
// credentials and is safe for concurrent use: every operation works on
// its own snapshot of the supplied options.
type Client struct {
	accessKey  string
	secretKey  string
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL overrides the API endpoint. Useful for testing against a
// local server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" && baseURL[len(baseURL)-1] == '/' {
			baseURL = baseURL[:len(baseURL)-1]
		}
		c.baseURL = baseURL
	}
}

// WithLogger sets the logger. The client only emits debug-level request
// traces; the default logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new ScreenshotOne API client. The access key is
// sent with every request as a plain parameter; the secret key never
// leaves the process and is only used to sign request URLs.
func NewClient(accessKey, secretKey string, opts ...Option) (*Client, error) {
	if accessKey == "" {
		return nil, ErrMissingAccessKey
	}
	if secretKey == "" {
		return nil, ErrMissingSecretKey
	}

	client := &Client{
		accessKey: accessKey,
		secretKey: secretKey,
		baseURL:   DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// encodeQuery snapshots the options and appends the access key after
// all user-set parameters.
func (c *Client) encodeQuery(options Options) string {
	query := options.Query()
	query.Set("access_key", c.accessKey)
	return query.Encode()
}

// GenerateURL builds the unsigned request URL for the given options.
// The parameter order is the setter invocation order with access_key
// appended last. Use GenerateSignedURL unless signing happens out of
// band.
func (c *Client) GenerateURL(options Options) string {
	return c.baseURL + options.endpoint() + "?" + c.encodeQuery(options)
}

// GenerateSignedURL builds the request URL for the given options and
// appends the signature as the final parameter. Calling it twice with
// the same options yields byte-identical URLs.
func (c *Client) GenerateSignedURL(options Options) (string, error) {
	query := c.encodeQuery(options)

	signature, err := Sign(query, c.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign request: %w", err)
	}

	return c.baseURL + options.endpoint() + "?" + query + "&signature=" + signature, nil
}

// Take renders a screenshot and returns the asset bytes in the
// requested format.
func (c *Client) Take(ctx context.Context, options *TakeOptions) ([]byte, error) {
	return c.fetch(ctx, options)
}

// Animate renders an animated capture and returns the asset bytes in
// the requested format.
func (c *Client) Animate(ctx context.Context, options *AnimateOptions) ([]byte, error) {
	return c.fetch(ctx, options)
}

// fetch performs a signed GET for either options variant and returns
// the raw response body.
func (c *Client) fetch(ctx context.Context, options Options) ([]byte, error) {
	requestURL, err := c.GenerateSignedURL(options)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	c.logger.Debug().
		Str("endpoint", options.endpoint()).
		Msg("Requesting rendered asset")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apiError(resp, body)
	}

	return body, nil
}

// apiError shapes a non-2xx response into an *APIError when the body
// carries the structured error document, or a plain error with the
// status line when it does not.
func apiError(resp *http.Response, body []byte) error {
	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.ErrorCode != "" {
		apiErr.StatusCode = resp.StatusCode
		return &apiErr
	}

	return fmt.Errorf("API request failed with status %s", resp.Status)
}

// StoreResult reports where a stored asset landed.
type StoreResult struct {
	Bucket string
	Key    string
}

// StoreOption tweaks storage placement for a single Store call.
type StoreOption func(q *Query)

// WithBucket stores the asset in the given bucket instead of the
// account default.
func WithBucket(bucket string) StoreOption {
	return func(q *Query) {
		q.Set("storage_bucket", bucket)
	}
}

// WithACL sets the canned ACL of the stored object.
func WithACL(acl string) StoreOption {
	return func(q *Query) {
		q.Set("storage_acl", acl)
	}
}

// WithStorageClass sets the storage class of the stored object.
func WithStorageClass(class string) StoreOption {
	return func(q *Query) {
		q.Set("storage_class", class)
	}
}

// Store renders the asset described by the options (either variant) and
// uploads it server-side to the account's storage under the given path,
// skipping the response body. It mutates the supplied options: the
// store flag, storage path and empty response type are set on them
// before the request is signed.
func (c *Client) Store(ctx context.Context, options Options, path string, opts ...StoreOption) (*StoreResult, error) {
	q := options.params()
	q.Set("store", "true")
	q.Set("storage_path", path)
	q.Set("response_type", "empty")
	for _, opt := range opts {
		opt(q)
	}

	requestURL, err := c.GenerateSignedURL(options)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	c.logger.Debug().
		Str("endpoint", options.endpoint()).
		Str("storage_path", path).
		Msg("Requesting server-side storage upload")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apiError(resp, body)
	}

	return &StoreResult{
		Bucket: resp.Header.Get(storeBucketHeader),
		Key:    resp.Header.Get(storeKeyHeader),
	}, nil
}
