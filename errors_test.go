package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *APIError
		expected string
	}{
		{
			name:     "message only",
			err:      &APIError{Message: "Request failed"},
			expected: "Request failed",
		},
		{
			name:     "with status",
			err:      &APIError{Message: "bad", Status: 400},
			expected: "bad (status=400)",
		},
		{
			name:     "with code",
			err:      &APIError{Message: "bad", Code: "E_BAD"},
			expected: "bad (code=E_BAD)",
		},
		{
			name:     "with request id",
			err:      &APIError{Message: "bad", RequestID: "r1"},
			expected: "bad (request_id=r1)",
		},
		{
			name:     "all fields",
			err:      &APIError{Message: "bad", Status: 400, Code: "E_BAD", RequestID: "r1"},
			expected: "bad (status=400) (code=E_BAD) (request_id=r1)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestErrorParsing_FullBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("X-Request-Id", "r2")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"bad","code":"E_BAD","details":{"field":"name"},"requestId":"r1"}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)

	_, err := client.Get(context.Background(), "/things")

	apiErr := asAPIError(t, err)

	if apiErr.Message != "bad" {
		t.Errorf("expected message=bad, got %s", apiErr.Message)
	}

	if apiErr.Status != http.StatusBadRequest {
		t.Errorf("expected status=400, got %d", apiErr.Status)
	}

	if apiErr.Code != "E_BAD" {
		t.Errorf("expected code=E_BAD, got %s", apiErr.Code)
	}

	// Body requestId wins over the x-request-id header.
	if apiErr.RequestID != "r1" {
		t.Errorf("expected requestId=r1, got %s", apiErr.RequestID)
	}

	details, ok := apiErr.Details.(map[string]any)
	if !ok {
		t.Fatalf("expected details map, got %T", apiErr.Details)
	}
	if details["field"] != "name" {
		t.Errorf("expected details.field=name, got %v", details["field"])
	}
}

func TestErrorParsing_RequestIDFromHeader(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("X-Request-Id", "r2")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"not found"}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)

	_, err := client.Get(context.Background(), "/things")

	apiErr := asAPIError(t, err)

	if apiErr.RequestID != "r2" {
		t.Errorf("expected requestId=r2, got %s", apiErr.RequestID)
	}

	if apiErr.Code != "" {
		t.Errorf("expected no code, got %s", apiErr.Code)
	}
}

func TestErrorParsing_MessageFallback(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"nope"}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)

	_, err := client.Get(context.Background(), "/things")

	apiErr := asAPIError(t, err)

	if apiErr.Message != "Request failed" {
		t.Errorf("expected fallback message, got %s", apiErr.Message)
	}
}

func TestErrorParsing_NonJSONBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("X-Request-Id", "r2")
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("I'm a teapot"))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)

	_, err := client.Get(context.Background(), "/things")

	apiErr := asAPIError(t, err)

	if apiErr.Message != "Request failed with status 418" {
		t.Errorf("expected synthesized message, got %s", apiErr.Message)
	}

	if apiErr.Code != "" {
		t.Errorf("expected no code, got %s", apiErr.Code)
	}

	if apiErr.RequestID != "r2" {
		t.Errorf("expected requestId=r2, got %s", apiErr.RequestID)
	}
}

func TestErrorParsing_EmptyBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)

	_, err := client.Get(context.Background(), "/things")

	apiErr := asAPIError(t, err)

	if apiErr.Message != "Request failed with status 400" {
		t.Errorf("expected synthesized message, got %s", apiErr.Message)
	}
}
