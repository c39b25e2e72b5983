package parser

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/schemakit/gqlusage/internal/model"
)

func TestGenerateUsageFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "go.mod"),
		[]byte("module example.com/demo\n\ngo 1.24\n"),
		0o644,
	))
	outDir := filepath.Join(dir, "gen")

	opts := NewOptions()
	opts.OutDir = outDir
	p, err := NewWithOpts(opts)
	require.NoError(t, err)

	p.Report = &model.Report{
		Modules: []*model.ModuleUsage{
			{Module: "blog", UsedTypes: []string{"Post", "User"}},
			{Module: "search-index", UsedTypes: []string{"SearchResult", "Post"}},
		},
		UsedTypes: []string{"Post", "User", "SearchResult"},
	}

	f, err := p.GenerateUsageFile()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf))
	out := buf.String()

	require.Contains(t, out, "Code generated by gqlusage. DO NOT EDIT.")
	require.Contains(t, out, "package gen")
	require.Contains(t, out, "var BlogTypes = []string{\"Post\", \"User\"}")
	require.Contains(t, out, "var SearchIndexTypes = []string{\"SearchResult\", \"Post\"}")
	require.Contains(t, out, "var UsedTypes = []string{\"Post\", \"User\", \"SearchResult\"}")
}

func TestGenerateUsageFileRequiresParse(t *testing.T) {
	p, err := NewWithOpts(NewOptions())
	require.NoError(t, err)

	_, err = p.GenerateUsageFile()
	require.Error(t, err)
}

func TestGenerateUsageFilePackageOverride(t *testing.T) {
	opts := NewOptions()
	opts.OutDir = filepath.Join(t.TempDir(), "out")
	opts.OutPackage = "registry"
	p, err := NewWithOpts(opts)
	require.NoError(t, err)
	p.Report = &model.Report{UsedTypes: []string{"Foo"}}

	f, err := p.GenerateUsageFile()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf))
	require.Contains(t, buf.String(), "package registry")
}

func TestSanitizeIdent(t *testing.T) {
	require.Equal(t, "api", sanitizeIdent("API"))
	require.Equal(t, "schemav2", sanitizeIdent("schema-v2"))
	require.Equal(t, "schema", sanitizeIdent("123"))
	require.Equal(t, "schema", sanitizeIdent(""))
}

func TestExportedIdent(t *testing.T) {
	require.Equal(t, "Blog", exportedIdent("blog"))
	require.Equal(t, "UserAccounts", exportedIdent("user-accounts"))
	require.Equal(t, "Schema", exportedIdent("---"))
}
