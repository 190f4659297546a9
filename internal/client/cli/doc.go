// Package cli provides the interactive treekeeper command-line client.
//
// It wires configuration, the local SQLite store, the account, session and
// activity services, the navigation guard and a console notifier, then runs
// a read-eval-print loop. Every user command is turned into a
// commands.Command and handed to the dispatcher; the loop itself only reads
// input and renders views.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
