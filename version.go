package client

import "time"

const (
	// Version is the SDK release version, reported in the X-SDK-Version
	// header and the default User-Agent.
	Version = "0.1.0"

	// DefaultTimeout is the per-attempt request timeout applied when
	// WithTimeout is not supplied.
	DefaultTimeout = 15 * time.Second

	// DefaultMaxRetries is the retry ceiling applied when WithMaxRetries
	// is not supplied. A ceiling of N permits N+1 attempts in total.
	DefaultMaxRetries = 3
)

// sdkLanguage identifies this implementation in the X-SDK-Language header.
const sdkLanguage = "go"

// defaultUserAgent is sent on every request unless overridden via WithUserAgent.
const defaultUserAgent = "yourapi-go-sdk/" + Version
