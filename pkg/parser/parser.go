package parser

import (
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/schemakit/gqlusage/internal/parser"
)

// Public surface of the analyzer. The implementation lives in
// internal/parser; this package re-exports the pieces callers need.

type (
	Parser  = parser.Parser
	Options = parser.Options
	Option  = parser.Option
)

var (
	New         = parser.New
	NewWithOpts = parser.NewWithOpts
	NewOptions  = parser.NewOptions

	WithInDir      = parser.WithInDir
	WithOutDir     = parser.WithOutDir
	WithOutFile    = parser.WithOutFile
	WithOutPackage = parser.WithOutPackage
	WithReportFile = parser.WithReportFile
	WithExtensions = parser.WithExtensions
)

// CollectUsedTypes returns the non-builtin type names referenced anywhere in
// doc, each once, in first-seen order.
func CollectUsedTypes(doc *ast.SchemaDocument) []string {
	return parser.CollectUsedTypes(doc)
}

// NamedType unwraps t through any list/non-null wrapping and returns the
// innermost type name.
func NamedType(t *ast.Type) string {
	return parser.NamedType(t)
}

// Innermost unwraps t through any list/non-null wrapping and returns the
// innermost named type node.
func Innermost(t *ast.Type) *ast.Type {
	return parser.Innermost(t)
}

// GroupByModule partitions schema sources into modules by directory under
// baseDir.
func GroupByModule(sources []*ast.Source, baseDir string) map[string][]*ast.Source {
	return parser.GroupByModule(sources, baseDir)
}

// IsBuiltinScalar reports whether name is one of the five builtin scalars.
func IsBuiltinScalar(name string) bool {
	return parser.IsBuiltinScalar(name)
}
