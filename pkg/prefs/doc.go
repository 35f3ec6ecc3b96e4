// Package prefs holds the user's durable preferences (theme and locale)
// behind a small store interface.
//
// Lifecycle: load once at startup (missing storage yields defaults),
// pass the value down explicitly, save immediately on every change. The
// file-backed store writes atomically.
package prefs
