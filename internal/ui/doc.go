// Package ui is the interactive catalog browser: a bubbletea model that owns
// a navigation stack of screens over an injected catalog store.
//
// The root model starts the single catalog load in Init and applies the
// result inside Update, so store state is only ever touched from the
// bubbletea event loop. Screens are constructed with the value they display
// (the store for the list, an Artist or a Work for the detail screens) and
// talk back to the model through push and pop messages.
package ui
