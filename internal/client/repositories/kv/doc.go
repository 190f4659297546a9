// Package kv is the client's lowest persistence layer: a string-keyed byte
// store backed by the SQLite "kv" table (see internal/client/migrations).
//
// Each key holds one independently serialised collection. A Set is one
// upsert statement, which makes a single key the unit of atomicity.
//
// SQLiteRepository works over dbx.DBTX, so it accepts either *sql.DB or
// *sql.Tx.
package kv
