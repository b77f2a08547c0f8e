// Package fetch provides the HTTP client that retrieves the gallery catalog.
//
// A Client issues one unauthenticated GET against the configured catalog URL
// and hands the body to catalog.Decode. Transport failures, timeouts, oversize
// bodies, and non-success statuses surface as *NetworkError; shape problems
// surface as *catalog.DecodeError. There is no retry or caching: each Fetch is
// a single attempt. Options let tests substitute the HTTP client.
package fetch
