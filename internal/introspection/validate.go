package introspection

import (
	"fmt"

	"jddf-generator/internal/diagnostic"
)

// Diagnostic codes emitted by Validate.
const (
	CodeMissingTypeName = "missing-type-name"
	CodeUnknownKind     = "unknown-kind"
	CodeWrapperAtTop    = "wrapper-at-top-level"
	CodeDuplicateType   = "duplicate-type"
	CodeMissingFieldRef = "missing-field-type"
	CodeBrokenTypeRef   = "broken-type-ref"
	CodeUndeclaredRef   = "undeclared-type-ref"
	CodeEmptyComposite  = "empty-composite"
)

// Validate checks the structural invariants the converter relies on:
// every declared type has a name and a known non-wrapper kind, every
// field carries a type descriptor, every wrapper chain terminates in a
// named type, and every named reference points at a declared type.
func Validate(doc *Document) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	declared := make(map[string]bool, len(doc.Types))

	for i := range doc.Types {
		typ := &doc.Types[i]

		if typ.Name == "" {
			diags.AddError(CodeMissingTypeName, fmt.Sprintf("type at index %d has no name", i), "", "")
			continue
		}

		if !typ.Kind.Valid() {
			diags.AddError(CodeUnknownKind, fmt.Sprintf("unknown kind %q", typ.Kind), typ.Name, "")
		} else if typ.Kind.Wrapper() {
			diags.AddError(CodeWrapperAtTop, fmt.Sprintf("wrapper kind %s cannot be declared as a named type", typ.Kind), typ.Name, "")
		}

		if declared[typ.Name] {
			diags.AddError(CodeDuplicateType, "type declared more than once", typ.Name, "")
		}

		declared[typ.Name] = true
	}

	for i := range doc.Types {
		typ := &doc.Types[i]
		if typ.Name == "" {
			continue
		}

		validateFields(typ, declared, &diags)
	}

	return diags
}

func validateFields(typ *Type, declared map[string]bool, diags *diagnostic.Diagnostics) {
	switch typ.Kind {
	case KindObject, KindInterface:
		if len(typ.Fields) == 0 && typ.Kind == KindObject {
			diags.AddWarning(CodeEmptyComposite, "object type declares no fields", typ.Name, "")
		}

		for i := range typ.Fields {
			field := &typ.Fields[i]
			if field.Name == "" {
				diags.AddError(CodeMissingTypeName, fmt.Sprintf("field at index %d has no name", i), typ.Name, "")
				continue
			}

			if field.Type == nil {
				diags.AddError(CodeMissingFieldRef, "field has no type descriptor", typ.Name, field.Name)
				continue
			}

			validateTypeRef(field.Type, typ.Name, field.Name, declared, diags)
		}

	case KindInputObject:
		for i := range typ.InputFields {
			field := &typ.InputFields[i]
			if field.Name == "" {
				diags.AddError(CodeMissingTypeName, fmt.Sprintf("input field at index %d has no name", i), typ.Name, "")
				continue
			}

			if field.Type == nil {
				diags.AddError(CodeMissingFieldRef, "input field has no type descriptor", typ.Name, field.Name)
				continue
			}

			validateTypeRef(field.Type, typ.Name, field.Name, declared, diags)
		}

	case KindUnion:
		for i := range typ.PossibleTypes {
			validateTypeRef(&typ.PossibleTypes[i], typ.Name, "", declared, diags)
		}

	case KindScalar, KindEnum, KindNonNull, KindList:
		// Scalars and enums carry no type references; wrapper kinds are
		// already rejected at the top level.
	}
}

func validateTypeRef(ref *TypeRef, typeName, fieldName string, declared map[string]bool, diags *diagnostic.Diagnostics) {
	for cur := ref; ; cur = cur.OfType {
		if !cur.Kind.Valid() {
			diags.AddError(CodeUnknownKind, fmt.Sprintf("type reference has unknown kind %q", cur.Kind), typeName, fieldName)
			return
		}

		if cur.Kind.Wrapper() {
			if cur.OfType == nil {
				diags.AddError(CodeBrokenTypeRef, fmt.Sprintf("%s wrapper has no inner type", cur.Kind), typeName, fieldName)
				return
			}

			continue
		}

		if cur.Name == "" {
			diags.AddError(CodeBrokenTypeRef, "named type reference has no name", typeName, fieldName)
			return
		}

		if !declared[cur.Name] {
			diags.AddError(CodeUndeclaredRef, fmt.Sprintf("reference to undeclared type %q", cur.Name), typeName, fieldName)
		}

		return
	}
}
