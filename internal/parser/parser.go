package parser

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jinzhu/inflection"
	"github.com/vektah/gqlparser/v2/ast"
	gqlparser "github.com/vektah/gqlparser/v2/parser"

	"github.com/schemakit/gqlusage/internal/model"
)

// Parser holds state/results of an analysis run.
type Parser struct {
	Opts Options

	Sources []*ast.Source
	Modules map[string][]*ast.Source
	Docs    map[string]*ast.SchemaDocument
	Report  *model.Report
}

// New executes the parser with opts.
func New(opts ...Option) (*Parser, error) {
	o := NewOptions()
	for _, fn := range opts {
		fn(o)
	}

	return NewWithOpts(o)
}

func NewWithOpts(opts *Options) (*Parser, error) {
	opts.Normalize()

	p := &Parser{
		Opts:    *opts,
		Modules: make(map[string][]*ast.Source),
		Docs:    make(map[string]*ast.SchemaDocument),
	}

	return p, nil
}

// Parse scans InDir for schema sources, groups them into modules by
// directory, parses each module into one schema document, and builds the
// usage report. Documents are parsed raw; no validation is performed.
func (p *Parser) Parse() error {
	if err := p.loadSources(); err != nil {
		return err
	}

	p.Modules = GroupByModule(p.Sources, p.Opts.InDir)

	names := make([]string, 0, len(p.Modules))
	for name := range p.Modules {
		names = append(names, name)
	}
	sort.Strings(names)

	report := &model.Report{}
	for _, name := range names {
		doc, err := gqlparser.ParseSchemas(p.Modules[name]...)
		if err != nil {
			return fmt.Errorf("parse module %s: %w", name, err)
		}
		p.Docs[name] = doc

		usage := p.buildModuleUsage(name, doc)
		report.Modules = append(report.Modules, usage)
		report.UsedTypes = append(report.UsedTypes, usage.UsedTypes...)
	}
	report.UsedTypes = Uniq(report.UsedTypes)
	p.Report = report

	return nil
}

// loadSources walks InDir and reads every file with a configured extension.
func (p *Parser) loadSources() error {
	p.Sources = p.Sources[:0]

	err := filepath.WalkDir(p.Opts.InDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !p.matchesExtension(path) {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read schema source %s: %w", path, err)
		}
		p.Sources = append(p.Sources, &ast.Source{
			Name:  filepath.ToSlash(path),
			Input: string(data),
		})
		return nil
	})
	if err != nil {
		return fmt.Errorf("scan %s: %w", p.Opts.InDir, err)
	}

	return nil
}

func (p *Parser) matchesExtension(path string) bool {
	ext := filepath.Ext(path)
	for _, want := range p.Opts.Extensions {
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	return false
}

// buildModuleUsage runs the collector over doc and attaches the per-kind
// declaration breakdown. Only declarations that made it into the used set
// are counted, so a redeclared builtin scalar never shows up.
func (p *Parser) buildModuleUsage(name string, doc *ast.SchemaDocument) *model.ModuleUsage {
	used := CollectUsedTypes(doc)

	inUse := make(map[string]struct{}, len(used))
	for _, n := range used {
		inUse[n] = struct{}{}
	}

	kinds := make(map[string]int)
	for _, def := range doc.Definitions {
		if _, ok := inUse[def.Name]; !ok {
			continue
		}
		kinds[kindLabel(def.Kind)]++
	}

	srcs := make([]string, 0, len(p.Modules[name]))
	for _, src := range p.Modules[name] {
		srcs = append(srcs, src.Name)
	}

	usage := &model.ModuleUsage{
		Module:    name,
		Sources:   srcs,
		UsedTypes: used,
	}
	if len(kinds) > 0 {
		usage.Kinds = kinds
	}
	return usage
}

// kindLabel maps a definition kind to a pluralized lowercase report label,
// e.g. OBJECT → objects, INPUT_OBJECT → input_objects.
func kindLabel(kind ast.DefinitionKind) string {
	return inflection.Plural(strings.ToLower(string(kind)))
}
