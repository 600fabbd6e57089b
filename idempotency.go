package client

import "github.com/google/uuid"

// NewIdempotencyKey returns a random opaque token suitable for the
// idempotencyKey argument of [Client.Post]. Reusing the same key across
// retried submissions lets the server deduplicate the operation.
func NewIdempotencyKey() string {
	return uuid.NewString()
}
