// Package sqlite provides an SQLite-based implementation of driven.EntityStore.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO. The database is opened in memory, so its contents last exactly as long as
// the process, matching the memory adapter.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
// All entity kinds share one table keyed by (kind, id); entities are stored as JSON.
//
// # Thread Safety
//
// All operations are thread-safe. The store holds a single connection, so
// statements are serialised and Update's read-merge-write runs in one transaction.
package sqlite
