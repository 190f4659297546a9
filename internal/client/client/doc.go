// Package client bootstraps local persistence for the TreeKeeper CLI: it
// opens the SQLite database file and applies the embedded goose migrations
// (see InitDatabase and RunMigrations).
package client
