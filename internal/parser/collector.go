package parser

import (
	"github.com/vektah/gqlparser/v2/ast"
)

// usageSet records type names once each, in first-seen order.
type usageSet struct {
	seen  map[string]struct{}
	names []string
}

func newUsageSet() *usageSet {
	return &usageSet{seen: make(map[string]struct{})}
}

func (u *usageSet) add(name string) {
	if _, ok := u.seen[name]; ok {
		return
	}
	u.seen[name] = struct{}{}
	u.names = append(u.names, name)
}

// CollectUsedTypes walks every definition and extension in doc and returns
// the names of all referenced non-builtin types, each once, in first-seen
// order. Extensions are walked exactly like their base definitions; the
// ordered-set insert collapses the double registration. The walk is total:
// nil nodes and absent lists contribute nothing.
func CollectUsedTypes(doc *ast.SchemaDocument) []string {
	u := newUsageSet()
	if doc == nil {
		return nil
	}
	for _, def := range doc.Definitions {
		collectDefinition(u, def)
	}
	for _, def := range doc.Extensions {
		collectDefinition(u, def)
	}
	return u.names
}

// collectDefinition dispatches on the definition kind. Implemented
// interfaces are walked before fields. Kinds outside the type-system set are
// skipped.
func collectDefinition(u *usageSet, def *ast.Definition) {
	if def == nil {
		return
	}
	switch def.Kind {
	case ast.Object, ast.Interface:
		u.add(def.Name)
		for _, iface := range def.Interfaces {
			collectNamed(u, iface)
		}
		for _, field := range def.Fields {
			collectField(u, field)
		}
	case ast.InputObject:
		u.add(def.Name)
		for _, field := range def.Fields {
			collectField(u, field)
		}
	case ast.Union:
		u.add(def.Name)
		for _, member := range def.Types {
			collectNamed(u, member)
		}
	case ast.Enum:
		// enum values carry no further type references
		u.add(def.Name)
	case ast.Scalar:
		collectNamed(u, def.Name)
	default:
		// not a type declaration, nothing to record
	}
}

// collectField records the field's innermost named type, then each argument's.
func collectField(u *usageSet, field *ast.FieldDefinition) {
	if field == nil {
		return
	}
	collectNamed(u, NamedType(field.Type))
	for _, arg := range field.Arguments {
		collectArgument(u, arg)
	}
}

func collectArgument(u *usageSet, arg *ast.ArgumentDefinition) {
	if arg == nil {
		return
	}
	collectNamed(u, NamedType(arg.Type))
}

// collectNamed records a bare type name unless it is one of the builtin
// scalars, which are never reported as used.
func collectNamed(u *usageSet, name string) {
	if name == "" || IsBuiltinScalar(name) {
		return
	}
	u.add(name)
}
