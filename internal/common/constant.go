// Package common contains shared constants and small helpers used across
// Scanly client components.
package common

// HTTP header names set by the request pipeline.
const (
	AuthorizationHeaderName = "Authorization"
	ContentTypeHeaderName   = "Content-Type"
	AcceptHeaderName        = "Accept"
	RequestIDHeaderName     = "X-Request-Id"

	BearerPrefix    = "Bearer "
	JSONContentType = "application/json"
)

// Keys of the local metadata table.
const (
	MetadataAccessToken  = "access_token"
	MetadataRefreshToken = "refresh_token"
	MetadataStoreSalt    = "store_salt"
	MetadataLoginID      = "login_id"
	MetadataMemberID     = "member_id"
)
