// Package models defines domain entities for the chorus streaming clone.
//
// Three entity types make up the mock catalog:
//   - [User] : accounts with a role gating the admin panel
//   - [Song] : track metadata carrying an opaque, never-dereferenced audio URL
//   - [Playlist] : an ordered sequence of song identifiers owned by a user
//
// Entities are plain value structs. The catalog in internal/store owns the
// canonical collections; everything else holds copies for display only.
// Validate methods implement required-field checks and nothing more.
package models
