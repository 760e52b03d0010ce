package loader

import (
	"net/http"
	"time"

	"github.com/erraggy/swaggertools"
	"github.com/erraggy/swaggertools/oaserrors"
)

// Option is a function that configures document acquisition
type Option func(*acquireConfig) error

// acquireConfig holds configuration for an acquisition
type acquireConfig struct {
	httpClient *http.Client
	userAgent  string
	workDir    string
	timeout    time.Duration
	logger     Logger
}

// applyOptions applies option functions over the defaults
func applyOptions(opts ...Option) (*acquireConfig, error) {
	cfg := &acquireConfig{
		userAgent: swaggertools.UserAgent(),
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// newFetcher builds the Fetcher described by the configuration
func (c *acquireConfig) newFetcher() *Fetcher {
	return &Fetcher{
		HTTPClient: c.httpClient,
		UserAgent:  c.userAgent,
		WorkDir:    c.workDir,
		Timeout:    c.timeout,
		Logger:     c.logger,
	}
}

// WithHTTPClient sets the HTTP client used for remote documents.
// When set, WithTimeout is ignored (configure the timeout on your client).
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *acquireConfig) error {
		cfg.httpClient = client
		return nil
	}
}

// WithUserAgent sets the User-Agent header sent with remote requests.
// Defaults to "swagger-tools/<version>".
func WithUserAgent(ua string) Option {
	return func(cfg *acquireConfig) error {
		if ua == "" {
			return &oaserrors.ConfigError{Option: "UserAgent", Message: "must not be empty"}
		}
		cfg.userAgent = ua
		return nil
	}
}

// WithWorkDir sets the directory relative paths are resolved against.
// Defaults to the process working directory.
func WithWorkDir(dir string) Option {
	return func(cfg *acquireConfig) error {
		cfg.workDir = dir
		return nil
	}
}

// WithTimeout bounds each remote request. Zero, the default, means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(cfg *acquireConfig) error {
		if d < 0 {
			return &oaserrors.ConfigError{Option: "Timeout", Value: d, Message: "must not be negative"}
		}
		cfg.timeout = d
		return nil
	}
}

// WithLogger sets the structured logger for acquisition diagnostics
func WithLogger(l Logger) Option {
	return func(cfg *acquireConfig) error {
		cfg.logger = l
		return nil
	}
}

// log returns the configured logger, or a no-op logger if none is set.
func (c *acquireConfig) log() Logger {
	if c.logger != nil {
		return c.logger
	}
	return NopLogger{}
}
