package client

import "strings"

// Default API paths owned by the pipeline itself.
const (
	LoginPath        = "/api/auth/v1/login"
	ReissuePath      = "/api/auth/v1/reissue"
	SignUpPath       = "/api/members/v1/sign-up"
	CheckLoginIDPath = "/api/members/v1/check-login-id"
)

// PublicEndpoints lists path prefixes that are sent without a bearer token
// and never trigger a refresh on 401.
type PublicEndpoints []string

// DefaultPublicEndpoints covers login, token reissue, sign-up and the login
// id availability check.
var DefaultPublicEndpoints = PublicEndpoints{
	LoginPath,
	ReissuePath,
	SignUpPath,
	CheckLoginIDPath,
}

// Match reports whether endpoint starts with one of the prefixes. The prefix
// must end on a path boundary: "/api/auth/v1/login?x=1" and
// "/api/auth/v1/login/sso" match "/api/auth/v1/login", "/api/auth/v1/logins" does not.
func (p PublicEndpoints) Match(endpoint string) bool {
	for _, prefix := range p {
		if !strings.HasPrefix(endpoint, prefix) {
			continue
		}
		rest := endpoint[len(prefix):]
		if rest == "" || strings.HasSuffix(prefix, "/") || rest[0] == '/' || rest[0] == '?' || rest[0] == '#' {
			return true
		}
	}
	return false
}
