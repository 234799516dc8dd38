// Package client is the authenticated request pipeline of the Scanly API.
//
// # Overview
//
// Every API call goes through (*Client).Do, or the typed Get/Post/Put/Delete
// helpers built on the Requester interface. A call:
//  1. Joins the configured base URL with the endpoint path.
//  2. Attaches "Authorization: Bearer <access token>" unless the endpoint is
//     public (see PublicEndpoints).
//  3. Sends the JSON body and decodes the {success, data, error} envelope
//     (see DecodeEnvelope).
//  4. On 401 from a protected endpoint, refreshes the token pair once through
//     a single-flight Refresher and retries the request once.
//
// # Error Handling
//
// Failures are *Error values tagged with a Kind: KindAPI, KindUnauthorized,
// KindEmptyResponse, KindParse, KindNetwork. Match them with errors.Is against
// ErrAPI, ErrUnauthorized, ErrEmptyResponse, ErrParse, ErrNetwork, or switch
// on KindOf(err). Token store failures are returned wrapped and carry no kind.
//
// Concurrency & Contexts
//
// Client and Refresher are safe for concurrent use. Many requests failing
// with 401 at once cause a single reissue call. All operations honor
// context cancellation.
//
// The package also bootstraps the local SQLite database used by the token
// store (InitDatabase, RunMigrations).
package client
