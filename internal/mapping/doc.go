// Package mapping provides the YAML scalar-override file: a small,
// explicit mapping from custom scalar names to JDDF primitive types.
//
// Introspection declares nothing about a custom scalar's wire
// representation, so the generator normally emits the empty form for
// it. When the representation is known, an override file makes the
// output precise and deterministic:
//
//	version: "1"
//	scalars:
//	  DateTime: timestamp
//	  BigInt: string
//
// The five built-in scalars (String, ID, Boolean, Int, Float) have a
// fixed translation and cannot be remapped.
package mapping
