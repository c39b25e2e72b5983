package parser

import (
	"github.com/vektah/gqlparser/v2/ast"
)

// builtinScalars are the five scalars with language-level meaning. They are
// never user-defined and never appear in a usage report, even when a schema
// redeclares one of them.
var builtinScalars = map[string]struct{}{
	"String":  {},
	"Boolean": {},
	"ID":      {},
	"Float":   {},
	"Int":     {},
}

// IsBuiltinScalar reports whether name is one of String, Boolean, ID, Float
// or Int.
func IsBuiltinScalar(name string) bool {
	_, ok := builtinScalars[name]
	return ok
}

// Innermost strips list wrapping from t until the named type remains.
// Non-null is a flag on the node rather than a wrapper, so it disappears
// with the unwrapping. Returns nil for a nil type.
func Innermost(t *ast.Type) *ast.Type {
	if t == nil {
		return nil
	}
	for t.Elem != nil {
		t = t.Elem
	}
	return t
}

// NamedType returns the name of the innermost named type of t, or "" when t
// is nil.
func NamedType(t *ast.Type) string {
	inner := Innermost(t)
	if inner == nil {
		return ""
	}
	return inner.NamedType
}
