// Package convert walks an introspected type graph and emits an
// equivalent JDDF schema document.
//
// The conversion is a pure, single-pass, synchronous function of the
// document. Assemble picks the query root and requests it from the
// registry; the registry converts each named type at most once, marking
// it pending while its fields resolve so that cyclic type graphs (A
// referencing B referencing A) terminate with plain refs instead of
// recursing. Field types are unwrapped by a depth-budgeted resolver:
// NON_NULL layers only decide the required/optional split on the owning
// definition, LIST layers become elements forms, and nesting beyond the
// budget degrades to the empty form.
//
// Known, deliberate approximations (not errors): unions and field-less
// interfaces become the empty form, enums become plain strings, and
// custom scalars without an override become the empty form.
package convert
