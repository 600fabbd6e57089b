// Package client provides an HTTP client for the YourAPI REST API.
//
// The client wraps [github.com/go-resty/resty/v2] with bounded retries,
// exponential backoff that honors server Retry-After hints, structured
// error parsing, and cursor pagination.
//
// # Basic Usage
//
//	c, err := client.New("https://api.yourapi.com",
//	    client.WithBearerToken("my-token"),
//	    client.WithMaxRetries(5),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
//	raw, err := c.Get(ctx, "/v1/widgets/w_123")
//
// # Configuration
//
// All configuration is supplied as [Option] functions passed to [New].
// Invalid single values are silently ignored and the default is retained;
// the assembled configuration is validated by [New], which fails when any
// resulting header name or value is not encodable.
//
// # Retry Behaviour
//
// Requests that fail in transport or draw HTTP 429, 500, 502, 503 or 504
// are retried up to the configured ceiling; a ceiling of N permits N+1
// attempts in total. The wait before each retry is 2^attempt seconds,
// capped at 8, unless the server supplied Retry-After in integer seconds,
// which is honored verbatim. The configured timeout applies to each
// attempt individually, not to the whole retry sequence. Cancelling the
// request context abandons the call immediately, including any pending
// backoff sleep.
//
// # Authentication
//
// Bearer authentication is configured with [WithBearerToken] and API-key
// authentication with [WithAPIKey]. When both are supplied only the
// Authorization header is emitted.
//
// # Logging
//
// [WithDebug] enables single-line diagnostic logging to stderr: one line
// per attempt, one per response, and one per backoff delay. Implement
// [RequestLogger] and supply it via [WithRequestLogger] to integrate with
// your logging library instead; a supplied logger wins over the debug
// default. Ensure your implementation redacts credentials before
// persisting logs.
package client
