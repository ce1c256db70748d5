// Package utils provides small helpers shared by the client packages:
// the resty HTTP client constructor with a cookie jar, request identifiers
// and typed context keys.
package utils
