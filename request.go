package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

// Do executes one API call with retries and returns the raw JSON response
// body. A nil result with a nil error is an empty success (HTTP 204).
// Every other failure is an *APIError. A non-nil body is JSON-encoded and
// sent with Content-Type: application/json; extraHeaders are applied after
// the client defaults and may override them for this call only.
func (c *Client) Do(ctx context.Context, method, path string, body any, extraHeaders map[string]string) (json.RawMessage, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}

	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		payload = data
	}

	for attempt := 0; attempt <= c.options.maxRetries; attempt++ {
		c.options.requestLogger.Debugf("%s %s%s (attempt %d/%d)",
			method, c.baseURL, path, attempt+1, c.options.maxRetries+1)

		req := c.http.R().SetContext(ctx)
		if payload != nil {
			req.SetHeader("Content-Type", "application/json").SetBody(payload)
		}
		if len(extraHeaders) > 0 {
			req.SetHeaders(extraHeaders)
		}

		resp, err := req.Execute(method, path)
		if err != nil {
			if ctx.Err() != nil {
				// The caller gave up; no retry after cancellation.
				return nil, &APIError{
					Message: fmt.Sprintf("Request failed: %v", err),
					Code:    CodeRequestError,
					cause:   err,
				}
			}

			if attempt < c.options.maxRetries {
				delay := backoffDelay(attempt, nil)
				c.options.requestLogger.Warnf("Request error, retrying after %v: %v", delay, err)
				if serr := c.sleep(ctx, delay); serr != nil {
					return nil, &APIError{
						Message: fmt.Sprintf("Request failed: %v", serr),
						Code:    CodeRequestError,
						cause:   serr,
					}
				}
				continue
			}

			return nil, &APIError{
				Message: fmt.Sprintf("Request failed: %v", err),
				Code:    CodeRequestError,
				cause:   err,
			}
		}

		status := resp.StatusCode()
		c.options.requestLogger.Debugf("Response: %d", status)

		if status >= 200 && status < 300 {
			if status == http.StatusNoContent {
				return nil, nil
			}

			raw := resp.Body()
			if !gjson.ValidBytes(raw) {
				return nil, &APIError{
					Message: "Failed to parse response body",
					Status:  status,
					Code:    CodeParseError,
				}
			}
			return json.RawMessage(raw), nil
		}

		if retryableStatus(status) && attempt < c.options.maxRetries {
			delay := backoffDelay(attempt, resp)
			c.options.requestLogger.Warnf("Retrying after %v", delay)
			if serr := c.sleep(ctx, delay); serr != nil {
				return nil, &APIError{
					Message: fmt.Sprintf("Request failed: %v", serr),
					Code:    CodeRequestError,
					cause:   serr,
				}
			}
			continue
		}

		return nil, parseAPIError(resp)
	}

	// Unreachable when the classification above is exhaustive.
	return nil, &APIError{
		Message: "Max retries exceeded",
		Code:    CodeMaxRetriesExceeded,
	}
}

// Get issues a GET request and returns the raw JSON response.
func (c *Client) Get(ctx context.Context, path string) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodGet, path, nil, nil)
}

// Post issues a POST request. A non-empty idempotencyKey is forwarded as
// the Idempotency-Key header so the server can deduplicate retried calls;
// see [NewIdempotencyKey].
func (c *Client) Post(ctx context.Context, path string, body any, idempotencyKey string) (json.RawMessage, error) {
	var headers map[string]string
	if idempotencyKey != "" {
		headers = map[string]string{"Idempotency-Key": idempotencyKey}
	}
	return c.Do(ctx, http.MethodPost, path, body, headers)
}

// Patch issues a PATCH request with the given body.
func (c *Client) Patch(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPatch, path, body, nil)
}

// Put issues a PUT request with the given body.
func (c *Client) Put(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPut, path, body, nil)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodDelete, path, nil, nil)
}

// GetInto issues a GET request and decodes the response into result.
// An empty (204) success leaves result untouched.
func (c *Client) GetInto(ctx context.Context, path string, result any) error {
	raw, err := c.Get(ctx, path)
	if err != nil {
		return err
	}
	return decodeInto(raw, result)
}

// PostInto issues a POST request and decodes the response into result.
func (c *Client) PostInto(ctx context.Context, path string, body any, idempotencyKey string, result any) error {
	raw, err := c.Post(ctx, path, body, idempotencyKey)
	if err != nil {
		return err
	}
	return decodeInto(raw, result)
}

// PatchInto issues a PATCH request and decodes the response into result.
func (c *Client) PatchInto(ctx context.Context, path string, body any, result any) error {
	raw, err := c.Patch(ctx, path, body)
	if err != nil {
		return err
	}
	return decodeInto(raw, result)
}

// PutInto issues a PUT request and decodes the response into result.
func (c *Client) PutInto(ctx context.Context, path string, body any, result any) error {
	raw, err := c.Put(ctx, path, body)
	if err != nil {
		return err
	}
	return decodeInto(raw, result)
}

func decodeInto(raw json.RawMessage, result any) error {
	if raw == nil || result == nil {
		return nil
	}
	if err := json.Unmarshal(raw, result); err != nil {
		return &APIError{
			Message: fmt.Sprintf("Failed to decode response: %v", err),
			Code:    CodeParseError,
			cause:   err,
		}
	}
	return nil
}
