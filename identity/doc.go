// Package identity mints globally unique, URN-addressable identifiers for
// graph entities and computed results.
//
// Every identifier is backed by a monotonic per-namespace counter (the
// "inode", by analogy with filesystem inode numbers) held in durable storage
// behind the CounterStore interface. The counter increment is the only
// concurrency-correctness-bearing operation in the system: implementations
// must perform it as a single atomic create-if-absent-and-increment so that
// concurrent callers never consume the same inode.
//
// Identifier formats:
//
//	local id: <namespace>-<8charToken>[-<sanitizedHint>]
//	URN:      urn:singine:<namespace>:<localID>
package identity
