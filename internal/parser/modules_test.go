package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
	"golang.org/x/tools/txtar"
)

const moduleFixture = `Schema tree with two modules plus a root-level file.
-- schemas/blog/post.graphql --
type Post { id: ID! }
-- schemas/blog/user.graphql --
type User { name: String }
-- schemas/search/search.graphql --
union SearchResult = Post | User
-- schemas/common.graphql --
scalar DateTime
`

func fixtureSources(t *testing.T) []*ast.Source {
	t.Helper()
	arc := txtar.Parse([]byte(moduleFixture))
	sources := make([]*ast.Source, 0, len(arc.Files))
	for _, f := range arc.Files {
		sources = append(sources, &ast.Source{Name: f.Name, Input: string(f.Data)})
	}
	return sources
}

func TestGroupByModule(t *testing.T) {
	groups := GroupByModule(fixtureSources(t), "schemas")

	require.Len(t, groups, 3)

	blog := groups["blog"]
	require.Len(t, blog, 2)
	require.Equal(t, "schemas/blog/post.graphql", blog[0].Name)
	require.Equal(t, "schemas/blog/user.graphql", blog[1].Name)

	require.Len(t, groups["search"], 1)

	// files directly under the base dir group under its own name
	root := groups["schemas"]
	require.Len(t, root, 1)
	require.Equal(t, "schemas/common.graphql", root[0].Name)
}

func TestGroupByModuleTrailingSlashAndEmpty(t *testing.T) {
	groups := GroupByModule(fixtureSources(t), "schemas/")
	require.Len(t, groups["blog"], 2)

	require.Empty(t, GroupByModule(nil, "schemas"))
}
