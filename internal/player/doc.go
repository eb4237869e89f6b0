// Package player implements the client-side playback state machine.
//
// A [Player] is either empty (no current song) or loaded, with an
// orthogonal playing/paused flag meaningful only while loaded. The queue
// cursor saturates at both ends: skipping past the last song or before the
// first is a strict no-op, not a wrap-around.
//
// The package deliberately stops at state: elapsed time and duration are
// pure setters fed by whatever drives playback (in this app, the TUI's
// progress ticker), and the audio URL is never dereferenced.
package player
