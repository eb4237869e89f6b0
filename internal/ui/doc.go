// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI mirrors a small streaming client with three screens:
//  1. [LoginView] : Sign in with a username, email, or account ID
//  2. [DashboardView] : Search the catalog and start playback
//  3. [AdminView] : Manage users, songs, and playlists
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern, receiving messages via typed msg structs.
// Playback state lives in the player package; the UI drives it through transport key bindings and a one-second progress ticker,
// and a persistent bar under every authenticated view renders the current snapshot.
//
// Keyboard navigation uses tab/arrow bindings with contextual help displayed via charmbracelet/bubbles/help.
package ui
