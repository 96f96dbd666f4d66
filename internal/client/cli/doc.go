// Package cli implements the interactive TableKeeper command-line client.
//
// The entry point is App, which wires the HTTP API client, the persisted
// session, the local cache database, and the application services, then runs
// a read-eval-print loop. Opening a room switches to a nested loop with
// room-scoped commands (members, character sheets, room administration).
package cli
