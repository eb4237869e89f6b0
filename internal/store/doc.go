// Package store implements the in-memory mock catalog backing the app.
//
// [Store] is an explicit repository object owning the user, song, and
// playlist collections behind list/create/update/delete methods, injected
// into whichever component needs it. There is no database and no network:
// every operation is synchronous array mutation, with one exception:
// [Store.Authenticate] applies a configurable artificial delay standing in
// for backend latency.
//
// Identifiers for created records derive from the current time in
// milliseconds, as the demo dataset expects, with a uuid fallback when two
// writes collide on the same millisecond.
package store
