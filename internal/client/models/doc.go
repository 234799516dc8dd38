// Package models defines the JSON wire types of the Scanly API.
//
// Field names follow the server's camelCase contract. Nullable server fields
// are pointers; optional request fields use omitempty.
package models
