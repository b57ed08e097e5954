// Package common contains shared constants and sentinel errors used across
// Taskify components.
package common

// AuthHeaderName is the HTTP header that carries the session token.
const AuthHeaderName = "Authorization"

// AuthScheme is the expected prefix of the AuthHeaderName value.
const AuthScheme = "Bearer"
