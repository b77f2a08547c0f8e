// Package textutil holds the small text helpers shared by the store, the
// browser, and the CLI: Unicode case folding for artist search and
// whitespace-collapsing excerpts for one-line previews.
package textutil
