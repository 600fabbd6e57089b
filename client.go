package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client is an immutable handle on the YourAPI REST API. All configuration
// is baked in by [New]; a Client is safe for concurrent use and holds no
// mutable state between requests.
type Client struct {
	baseURL string
	http    *resty.Client
	options *Options

	// sleep performs the backoff wait. Overridable in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// New builds a Client for the API at baseURL. Trailing slashes on baseURL
// are insignificant. New fails when baseURL is blank or when the assembled
// configuration does not validate, including any header name or value that
// is not encodable.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(baseURL, "/")
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("base URL must be set")
	}

	options := newClientOptions()
	for _, opt := range opts {
		opt(options)
	}

	if options.debug && options.requestLogger == defaultNoopLogger {
		options.requestLogger = newDebugLogger()
	}

	if err := options.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	httpClient := resty.New()
	if options.httpClient != nil {
		httpClient = resty.NewWithClient(options.httpClient)
	} else {
		httpClient.SetTimeout(options.timeout)
	}

	httpClient.
		SetBaseURL(baseURL).
		SetRetryCount(0).
		SetHeaders(buildDefaultHeaders(options))

	return &Client{
		baseURL: baseURL,
		http:    httpClient,
		options: options,
		sleep:   sleepContext,
	}, nil
}

// buildDefaultHeaders assembles the header set sent on every request.
// Custom headers are merged last and win on collision.
func buildDefaultHeaders(o *Options) map[string]string {
	headers := map[string]string{
		"User-Agent":     o.userAgent,
		"X-SDK-Language": sdkLanguage,
		"X-SDK-Version":  Version,
		"Accept":         "application/json",
	}

	if o.bearerToken != "" {
		headers["Authorization"] = "Bearer " + o.bearerToken
	} else if o.apiKey != "" {
		headers["X-API-Key"] = o.apiKey
	}

	for k, v := range o.customHeaders {
		headers[k] = v
	}

	return headers
}

// Close releases idle connections held by the underlying transport. The
// Client must not be used after Close.
func (c *Client) Close() {
	if c == nil || c.http == nil {
		return
	}
	c.http.GetClient().CloseIdleConnections()
}

// sleepContext waits for d or until ctx is cancelled.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
