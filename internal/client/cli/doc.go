// Package cli provides the interactive portal client.
//
// It restores the session from local storage, then runs a REPL in which the
// user logs in, downloads certificates and receipts, donates, and (as an
// admin) approves members and issues documents. Which commands a session may
// run is decided by access.Guard, the same policy the web portal applies.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
