// Package sqlite implements the durable side of the query engine on a SQLite
// database file: the edge snapshot reader, the append-only path-result
// writer, and the atomic per-namespace inode counter behind identifier
// minting.
//
// The counter increment is a single upsert-and-increment statement so that
// concurrent callers, including separate processes sharing the same file,
// never consume the same inode. Everything else is plain parameterized SQL.
package sqlite
