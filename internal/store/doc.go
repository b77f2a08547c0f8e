// Package store holds the authoritative gallery catalog and the filtered view
// the screens render.
//
// A Store is owned by one goroutine, the one that renders. The single network
// fetch is split in two: Load moves the store to Loading and returns a Task
// that may run anywhere, and Complete applies the Task's Result back on the
// owning goroutine. The catalog is replaced as a whole value, so a render
// never sees a partially populated catalog. Failures leave the catalog empty
// and are logged; they are never retried.
package store
