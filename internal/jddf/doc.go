// Package jddf models JSON Data Definition Format schema documents.
//
// Only the forms this generator emits are modelled: the empty form,
// primitive type forms, elements (homogeneous arrays), ref (reference
// into the shared definitions map), and the properties/optionalProperties
// split for object shapes. All fields are omit-empty so that the empty
// form serializes as {}.
package jddf
