package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// CursorPaginatedResponse is one page of a cursor-paginated listing.
type CursorPaginatedResponse[T any] struct {
	Items      []T     `json:"items"`
	NextCursor *string `json:"nextCursor"`
	HasMore    bool    `json:"hasMore"`
}

// PagePaginatedResponse is one page of a page-number-paginated listing.
// The SDK issues no page-numbered requests itself; the type is a decode
// target for callers of the raw shortcuts.
type PagePaginatedResponse[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PerPage    int `json:"perPage"`
	TotalPages int `json:"totalPages"`
	TotalItems int `json:"totalItems"`
}

// PaginateCursor walks every page of a cursor-paginated listing under
// path, invoking fn for each item in order. path may already carry a query
// string; the cursor parameter is appended with ? or & accordingly.
// Iteration stops on the first page reporting hasMore=false or a null
// nextCursor, on an empty (204) response, or on the first error.
//
// The cursor token is inserted into the query string without URL-encoding;
// servers are expected to issue URL-safe cursors.
func PaginateCursor[T any](ctx context.Context, c *Client, path string, fn func(T) error) error {
	cursor := ""
	hasMore := true

	for hasMore {
		currentPath := path
		if cursor != "" {
			separator := "?"
			if strings.Contains(path, "?") {
				separator = "&"
			}
			currentPath = path + separator + "cursor=" + cursor
		}

		raw, err := c.Get(ctx, currentPath)
		if err != nil {
			return err
		}
		if raw == nil {
			return nil
		}

		var page CursorPaginatedResponse[T]
		if err := json.Unmarshal(raw, &page); err != nil {
			return &APIError{
				Message: fmt.Sprintf("Failed to parse paginated response: %v", err),
				Code:    CodeParseError,
				cause:   err,
			}
		}

		for _, item := range page.Items {
			if err := fn(item); err != nil {
				return err
			}
		}

		hasMore = page.HasMore && page.NextCursor != nil
		if page.NextCursor != nil {
			cursor = *page.NextCursor
		}
	}

	return nil
}

// GetAllCursor fetches every page of a cursor-paginated listing and
// returns the concatenated items. On error no partial results are
// returned.
func GetAllCursor[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var items []T
	err := PaginateCursor(ctx, c, path, func(item T) error {
		items = append(items, item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}
