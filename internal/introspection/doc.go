// Package introspection models GraphQL schema introspection documents
// and acquires them from files, readers, or live endpoints.
//
// The model mirrors the standard introspection query's response shape:
// a __schema object naming the root operation types and listing every
// named type, with each field carrying a wrapped type descriptor (a
// finite chain of NON_NULL/LIST wrappers around a named type).
//
// Parse validates structural invariants up front so downstream
// conversion can assume a well-formed type graph; violations abort with
// ErrMalformedDocument before any output is produced.
package introspection
