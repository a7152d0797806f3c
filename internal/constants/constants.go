package constants

import "time"

// Context and session keys
const (
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyUser      = "user"
	ContextKeyRequestID = "request_id"
	SessionCookieName   = "labourlink_session"
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Validation limits
const (
	MinPasswordLength = 6
	MinRating         = 1
	MaxRating         = 5
	MaxMessageLength  = 2000
)

// Timeouts
const (
	RateLimitTimeout = 250 * time.Millisecond
	ShutdownTimeout  = 10 * time.Second
)
