// Package cli provides the interactive Scanly command-line client.
//
// It wires configuration, the local database and token store, the
// authenticated API client and the typed services, then runs a REPL.
// Typical flow: log in, look at your own card, scan or open other members'
// cards, save them to the card book and organise them into groups.
//
// A background watcher keeps the unread notification count in the prompt.
// When the server ends the session (token refresh fails), the app drops its
// session state and asks the user to log in again.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartNotificationWatcher, and runREPL for details.
package cli
