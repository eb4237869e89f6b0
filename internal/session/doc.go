// Package session implements the login lifecycle for a running instance.
//
// A [Session] moves from [StateLoading] to either [StateAuthenticated] or
// [StateUnauthenticated] during [Session.Initialize], then transitions via
// [Session.Login] and [Session.Logout]. The identity survives restarts
// through a single JSON file holding the serialized user record, the
// terminal analog of the browser's local-storage key.
package session
