package client

import (
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// Error codes the SDK attaches to [APIError]. Server-supplied codes pass
// through unchanged.
const (
	// CodeParseError marks a body that could not be decoded as JSON.
	CodeParseError = "PARSE_ERROR"
	// CodeRequestError marks a transport failure that survived all retries.
	CodeRequestError = "REQUEST_ERROR"
	// CodeMaxRetriesExceeded guards the fall-through of the retry loop.
	CodeMaxRetriesExceeded = "MAX_RETRIES_EXCEEDED"
)

// APIError is the single failure descriptor for every non-success outcome.
type APIError struct {
	// Message is always present.
	Message string
	// Status is the HTTP status code; zero when no response was received.
	Status int
	// Code is the server-supplied or SDK-attached error code, if any.
	Code string
	// Details carries the server's structured error payload verbatim.
	Details any
	// RequestID correlates the failure with server-side logs. The body's
	// requestId field wins over the x-request-id response header.
	RequestID string

	cause error
}

// Error renders the message followed by any status, code, and request id.
func (e *APIError) Error() string {
	parts := []string{e.Message}

	if e.Status != 0 {
		parts = append(parts, fmt.Sprintf("(status=%d)", e.Status))
	}
	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("(code=%s)", e.Code))
	}
	if e.RequestID != "" {
		parts = append(parts, fmt.Sprintf("(request_id=%s)", e.RequestID))
	}

	return strings.Join(parts, " ")
}

// Unwrap returns the underlying transport or decode error, if any.
func (e *APIError) Unwrap() error {
	return e.cause
}

// parseAPIError builds an APIError from a non-2xx response that the
// pipeline will not retry. The x-request-id header is captured first so
// the body's requestId field can override it.
func parseAPIError(resp *resty.Response) *APIError {
	apiErr := &APIError{
		Status:    resp.StatusCode(),
		RequestID: resp.Header().Get("x-request-id"),
	}

	body := resp.Body()
	if !gjson.ValidBytes(body) {
		apiErr.Message = fmt.Sprintf("Request failed with status %d", resp.StatusCode())
		return apiErr
	}

	fields := gjson.GetManyBytes(body, "message", "code", "details", "requestId")

	apiErr.Message = "Request failed"
	if fields[0].Type == gjson.String {
		apiErr.Message = fields[0].Str
	}
	if fields[1].Type == gjson.String {
		apiErr.Code = fields[1].Str
	}
	if fields[2].Exists() {
		apiErr.Details = fields[2].Value()
	}
	if fields[3].Type == gjson.String {
		apiErr.RequestID = fields[3].Str
	}

	return apiErr
}
