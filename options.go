package client

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/http/httpguts"
)

type Option func(*Options)

type Options struct {
	apiKey        string
	bearerToken   string
	timeout       time.Duration
	maxRetries    int
	userAgent     string
	customHeaders map[string]string
	debug         bool
	requestLogger RequestLogger
	httpClient    *http.Client
}

func newClientOptions() *Options {
	return &Options{
		timeout:       DefaultTimeout,
		maxRetries:    DefaultMaxRetries,
		userAgent:     defaultUserAgent,
		customHeaders: map[string]string{},
		requestLogger: defaultNoopLogger,
	}
}

// WithAPIKey authenticates requests with the X-API-Key header. Ignored
// when a bearer token is also configured.
func WithAPIKey(key string) Option {
	return func(o *Options) {
		o.apiKey = key
	}
}

// WithBearerToken authenticates requests with an Authorization bearer
// header. Takes precedence over WithAPIKey.
func WithBearerToken(token string) Option {
	return func(o *Options) {
		o.bearerToken = token
	}
}

// WithTimeout sets the per-attempt request timeout. Non-positive values
// are ignored.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithMaxRetries sets the retry ceiling. Zero disables retries entirely;
// negative values are ignored.
func WithMaxRetries(count int) Option {
	return func(o *Options) {
		if count >= 0 {
			o.maxRetries = count
		}
	}
}

// WithUserAgent overrides the default User-Agent header. Blank values are
// ignored.
func WithUserAgent(userAgent string) Option {
	return func(o *Options) {
		if strings.TrimSpace(userAgent) != "" {
			o.userAgent = userAgent
		}
	}
}

// WithHeader adds a custom header sent on every request. Custom headers
// are merged last and may override the defaults, including User-Agent and
// authentication. Content-Type and Accept are managed by the client and
// cannot be overridden.
func WithHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" || strings.EqualFold(header, "Content-Type") || strings.EqualFold(header, "Accept") {
			return
		}

		o.customHeaders[header] = value
	}
}

// WithDebug enables diagnostic logging to stderr. A logger supplied via
// WithRequestLogger takes precedence.
func WithDebug(debug bool) Option {
	return func(o *Options) {
		o.debug = debug
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

// WithHTTPClient supplies a custom *http.Client for the underlying
// transport. The client is used as-is, so its own timeout governs each
// attempt and WithTimeout has no effect.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *Options) {
		if httpClient != nil {
			o.httpClient = httpClient
		}
	}
}

func (o *Options) Validate() error {
	if o.timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}

	if o.maxRetries < 0 {
		return fmt.Errorf("maxRetries must be non-negative")
	}

	if o.maxRetries > 100 {
		return fmt.Errorf("maxRetries must not exceed 100")
	}

	if o.requestLogger == nil {
		return fmt.Errorf("requestLogger must not be nil")
	}

	if !httpguts.ValidHeaderFieldValue(o.userAgent) {
		return fmt.Errorf("userAgent is not a valid header value")
	}

	if o.bearerToken != "" && !httpguts.ValidHeaderFieldValue("Bearer "+o.bearerToken) {
		return fmt.Errorf("bearerToken is not a valid header value")
	}

	if o.apiKey != "" && !httpguts.ValidHeaderFieldValue(o.apiKey) {
		return fmt.Errorf("apiKey is not a valid header value")
	}

	for name, value := range o.customHeaders {
		if !httpguts.ValidHeaderFieldName(name) {
			return fmt.Errorf("invalid header name %q", name)
		}
		if !httpguts.ValidHeaderFieldValue(value) {
			return fmt.Errorf("invalid value for header %q", name)
		}
	}

	return nil
}
