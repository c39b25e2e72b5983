package parser

import (
	"path"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

// GroupByModule partitions sources into modules by directory. A source whose
// name lives in a subdirectory of baseDir belongs to the module named after
// the first path segment below baseDir; a source directly under baseDir
// belongs to the module named after baseDir itself. Source names are treated
// as /-separated paths. Order within a group follows the input order.
func GroupByModule(sources []*ast.Source, baseDir string) map[string][]*ast.Source {
	base := strings.TrimSuffix(path.Clean(strings.ReplaceAll(baseDir, "\\", "/")), "/")
	groups := make(map[string][]*ast.Source)
	for _, src := range sources {
		if src == nil {
			continue
		}
		name := path.Clean(strings.ReplaceAll(src.Name, "\\", "/"))
		rel := strings.TrimPrefix(name, base+"/")
		mod := path.Base(base)
		if i := strings.Index(rel, "/"); i >= 0 {
			mod = rel[:i]
		}
		groups[mod] = append(groups[mod], src)
	}
	return groups
}
