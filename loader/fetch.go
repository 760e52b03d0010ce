package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/erraggy/swaggertools"
	"github.com/erraggy/swaggertools/oaserrors"
)

// Fetcher reads raw document content from local paths and http(s) URLs.
type Fetcher struct {
	// HTTPClient is the client used for URLs. If nil, a client with no
	// timeout (or Timeout, when set) is created.
	HTTPClient *http.Client
	// UserAgent is sent with every remote request.
	// Defaults to "swagger-tools/<version>" if not set.
	UserAgent string
	// WorkDir is the directory relative paths are resolved against.
	// Defaults to the process working directory.
	WorkDir string
	// Timeout bounds remote requests when HTTPClient is nil. Zero means none.
	Timeout time.Duration
	// Logger is the structured logger for debug output.
	Logger Logger
}

// log returns the configured logger, or a no-op logger if none is set.
func (f *Fetcher) log() Logger {
	if f.Logger != nil {
		return f.Logger
	}
	return NopLogger{}
}

// isURL determines if the given path is a URL (http:// or https://)
func isURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// Fetch returns the raw content behind ref.
//
// An empty ref yields no content and no error. Remote response bodies are
// returned whatever the HTTP status; a non-2xx body is handed to the parser,
// which reports it if it is not a document.
func (f *Fetcher) Fetch(ctx context.Context, ref string) ([]byte, error) {
	if ref == "" {
		return nil, nil
	}
	if isURL(ref) {
		return f.fetchURL(ctx, ref)
	}
	return f.readFile(ref)
}

// readFile reads a local document fully into memory
func (f *Fetcher) readFile(ref string) ([]byte, error) {
	path := ref
	if !filepath.IsAbs(path) {
		base := f.WorkDir
		if base == "" {
			wd, err := os.Getwd()
			if err != nil {
				return nil, &oaserrors.FetchError{Source: ref, Cause: err}
			}
			base = wd
		}
		path = filepath.Join(base, path)
	}

	start := time.Now()
	data, err := os.ReadFile(path) //nolint:gosec // G304 - CLI reads user-supplied paths
	if err != nil {
		return nil, &oaserrors.FetchError{Source: ref, Cause: err}
	}
	f.log().Debug("read document", "source", ref, "path", path, "bytes", len(data), "elapsed", time.Since(start))
	return data, nil
}

// fetchURL performs a GET for a remote document
func (f *Fetcher) fetchURL(ctx context.Context, urlStr string) ([]byte, error) {
	client := f.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: f.Timeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, &oaserrors.FetchError{Source: urlStr, IsRemote: true, Cause: fmt.Errorf("creating request: %w", err)}
	}

	userAgent := f.UserAgent
	if userAgent == "" {
		userAgent = swaggertools.UserAgent()
	}
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := client.Do(req) //nolint:gosec // G107 - URL is user-provided CLI input
	if err != nil {
		return nil, &oaserrors.FetchError{Source: urlStr, IsRemote: true, Cause: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &oaserrors.FetchError{Source: urlStr, IsRemote: true, Cause: fmt.Errorf("reading response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		f.log().Warn("remote document returned non-success status; parsing body anyway",
			"source", urlStr, "status", resp.StatusCode)
	}
	f.log().Debug("fetched document", "source", urlStr, "status", resp.StatusCode,
		"bytes", len(data), "elapsed", time.Since(start))
	return data, nil
}
