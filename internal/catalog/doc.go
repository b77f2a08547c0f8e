// Package catalog defines the artist and work records shown by the gallery and
// the strict decoder for the remote catalog document.
//
// The wire shape is a single JSON object:
//
//	{"artists": [{"name", "bio", "image", "works": [{"title", "image", "info"}]}]}
//
// Every field is required at every level. Decode is all-or-nothing: one bad
// record fails the whole document and no artists are returned. Decoded strings
// are kept exactly as received. Values are treated as read-only once decoded;
// consumers that need to change them copy first.
package catalog
