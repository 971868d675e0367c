package screenshotone

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAccessKey = "RcLsdM6uhIN6gw"
	testSecretKey = "MW2vfkkgLTzGGw"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name      string
		accessKey string
		secretKey string
		wantErr   error
	}{
		{
			name:      "valid credentials",
			accessKey: testAccessKey,
			secretKey: testSecretKey,
		},
		{
			name:      "missing access key",
			accessKey: "",
			secretKey: testSecretKey,
			wantErr:   ErrMissingAccessKey,
		},
		{
			name:      "missing secret key",
			accessKey: testAccessKey,
			secretKey: "",
			wantErr:   ErrMissingSecretKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.accessKey, tt.secretKey)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestClientOptions(t *testing.T) {
	t.Run("with timeout", func(t *testing.T) {
		client, err := NewClient(testAccessKey, testSecretKey, WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	})

	t.Run("with base URL trims trailing slash", func(t *testing.T) {
		client, err := NewClient(testAccessKey, testSecretKey, WithBaseURL("http://localhost:8080/"))
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080", client.baseURL)
	})

	t.Run("with custom http client", func(t *testing.T) {
		custom := &http.Client{Timeout: 10 * time.Second}
		client, err := NewClient(testAccessKey, testSecretKey, WithHTTPClient(custom))
		require.NoError(t, err)
		assert.Equal(t, custom, client.httpClient)
	})
}

func TestGenerateSignedURLKnownAnswer(t *testing.T) {
	client, err := NewClient(testAccessKey, testSecretKey)
	require.NoError(t, err)

	opts := TakeWithURL("https://example.com").BlockAds(true)

	got, err := client.GenerateSignedURL(opts)
	require.NoError(t, err)

	want := "https://api.screenshotone.com/take?url=https%3A%2F%2Fexample.com&block_ads=true&access_key=RcLsdM6uhIN6gw&signature=3cf1edeafc139f41191928c1c5b8b04fe1d5722560244ccdd76a55d69120bbac"
	assert.Equal(t, want, got)
}

func TestGenerateSignedURLWithUserAgent(t *testing.T) {
	client, err := NewClient(testAccessKey, testSecretKey)
	require.NoError(t, err)

	opts := TakeWithURL("https://example.com").
		BlockAds(true).
		FullPage(true).
		UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/51.0.2704.103 Safari/537.36")

	signed, err := client.GenerateSignedURL(opts)
	require.NoError(t, err)

	want := "https://api.screenshotone.com/take?" +
		"url=https%3A%2F%2Fexample.com" +
		"&block_ads=true" +
		"&full_page=true" +
		"&user_agent=Mozilla%2F5.0+%28X11%3B+Linux+x86_64%29+AppleWebKit%2F537.36+%28KHTML%2C+like+Gecko%29+Chrome%2F51.0.2704.103+Safari%2F537.36" +
		"&access_key=RcLsdM6uhIN6gw" +
		"&signature=ea217db7d746c8bf9b710257d62ef09670b003137d239ee4c81eae3645b4a901"
	assert.Equal(t, want, signed)

	// The unsigned URL is the same minus the signature suffix.
	unsigned := client.GenerateURL(opts)
	assert.Equal(t, strings.TrimSuffix(want, "&signature=ea217db7d746c8bf9b710257d62ef09670b003137d239ee4c81eae3645b4a901"), unsigned)
}

func TestGenerateSignedURLIsDeterministic(t *testing.T) {
	client, err := NewClient(testAccessKey, testSecretKey)
	require.NoError(t, err)

	opts := TakeWithURL("https://example.com").BlockAds(true).FullPage(true)

	first, err := client.GenerateSignedURL(opts)
	require.NoError(t, err)
	second, err := client.GenerateSignedURL(opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateSignedURLAnimatePath(t *testing.T) {
	client, err := NewClient(testAccessKey, testSecretKey)
	require.NoError(t, err)

	signed, err := client.GenerateSignedURL(AnimateWithURL("https://example.com").Duration(5))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(signed, "https://api.screenshotone.com/animate?"))
}

func TestTakeReturnsAssetBytes(t *testing.T) {
	asset := []byte("\x89PNG fake image bytes")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/take", r.URL.Path)

		query := r.URL.Query()
		assert.Equal(t, "https://example.com", query.Get("url"))
		assert.Equal(t, testAccessKey, query.Get("access_key"))
		assert.NotEmpty(t, query.Get("signature"))

		// signature must be the last parameter on the wire.
		assert.True(t, strings.Contains(r.URL.RawQuery, "&signature="))
		assert.False(t, strings.Contains(strings.SplitN(r.URL.RawQuery, "&signature=", 2)[1], "&"))

		w.Write(asset)
	}))
	defer server.Close()

	client, err := NewClient(testAccessKey, testSecretKey, WithBaseURL(server.URL))
	require.NoError(t, err)

	got, err := client.Take(context.Background(), TakeWithURL("https://example.com").BlockAds(true))
	require.NoError(t, err)
	assert.Equal(t, asset, got)
}

func TestFetchStructuredAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error_code":"name_not_resolved","error_message":"Usually, the error happens when the domain name of the requested URL is not resolved.","documentation_url":"https://screenshotone.com/docs/errors/"}`))
	}))
	defer server.Close()

	client, err := NewClient(testAccessKey, testSecretKey, WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.Take(context.Background(), TakeWithURL("https://nonexistent.invalid"))
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok, "expected *APIError, got %T", err)
	assert.Equal(t, 400, apiErr.StatusCode)
	assert.Equal(t, "name_not_resolved", apiErr.ErrorCode)
	assert.Equal(t, "https://screenshotone.com/docs/errors/", apiErr.DocumentationURL)
	assert.True(t, apiErr.IsBadRequest())
}

func TestFetchUnparseableErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>upstream exploded</html>"))
	}))
	defer server.Close()

	client, err := NewClient(testAccessKey, testSecretKey, WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.Take(context.Background(), TakeWithURL("https://example.com"))
	require.Error(t, err)

	_, ok := err.(*APIError)
	assert.False(t, ok, "unparseable body must not produce a structured APIError")
	assert.Contains(t, err.Error(), "502")
}

func TestStore(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "true", query.Get("store"))
		assert.Equal(t, "screenshots/example", query.Get("storage_path"))
		assert.Equal(t, "empty", query.Get("response_type"))
		assert.Equal(t, "shots-archive", query.Get("storage_bucket"))
		assert.Equal(t, "public-read", query.Get("storage_acl"))

		w.Header().Set("X-Screenshotone-Store-Bucket", "shots-archive")
		w.Header().Set("X-Screenshotone-Store-Key", "screenshots/example.png")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := NewClient(testAccessKey, testSecretKey, WithBaseURL(server.URL))
	require.NoError(t, err)

	result, err := client.Store(context.Background(),
		TakeWithURL("https://example.com"),
		"screenshots/example",
		WithBucket("shots-archive"),
		WithACL("public-read"),
	)
	require.NoError(t, err)
	assert.Equal(t, "shots-archive", result.Bucket)
	assert.Equal(t, "screenshots/example.png", result.Key)
}

func TestStoreDispatchesOnVariant(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := NewClient(testAccessKey, testSecretKey, WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.Store(context.Background(), TakeWithURL("https://example.com"), "a")
	require.NoError(t, err)
	assert.Equal(t, "/take", gotPath)

	_, err = client.Store(context.Background(), AnimateWithURL("https://example.com"), "b")
	require.NoError(t, err)
	assert.Equal(t, "/animate", gotPath)
}

func TestStoreErrorPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error_code":"access_key_invalid","error_message":"The access key is invalid.","documentation_url":"https://screenshotone.com/docs/errors/"}`))
	}))
	defer server.Close()

	client, err := NewClient(testAccessKey, testSecretKey, WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.Store(context.Background(), TakeWithURL("https://example.com"), "a")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.True(t, apiErr.IsUnauthorized())
}
