// Package graph holds the in-memory edge model of the Singine similarity
// graph and the transforms that prepare it for querying: weight-ordered
// sorting and adjacency construction.
//
// Values in this package are owned by a single query invocation. They are
// built fresh from the current edge snapshot and are never shared between
// concurrent searches, so none of the types here carry locks.
package graph
