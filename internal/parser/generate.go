package parser

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/dave/jennifer/jen"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
)

var ErrNoModule = errors.New("no enclosing go.mod")

// GenerateUsageFile emits a Go file declaring, for each analyzed module, a
// []string of its used type names, plus the aggregated UsedTypes slice.
// Parse must have been called first.
func (p *Parser) GenerateUsageFile() (*jen.File, error) {
	if p.Report == nil {
		return nil, fmt.Errorf("generate: no report, call Parse first")
	}

	pkgName := p.Opts.OutPackage
	if pkgName == "" {
		pkgName = sanitizeIdent(filepath.Base(p.Opts.OutDir))
	}

	var f *jen.File
	if pkgPath, err := p.resolveOutPkgPath(pkgName); err == nil {
		f = jen.NewFilePathName(pkgPath, pkgName)
	} else if errors.Is(err, ErrNoModule) {
		f = jen.NewFile(pkgName)
	} else {
		return nil, err
	}
	f.HeaderComment("Code generated by gqlusage. DO NOT EDIT.")

	for _, mod := range p.Report.Modules {
		varName := exportedIdent(mod.Module) + "Types"
		f.Commentf("%s lists the type names referenced by the %s module.", varName, mod.Module)
		f.Var().Id(varName).Op("=").Index().String().ValuesFunc(func(g *jen.Group) {
			for _, name := range mod.UsedTypes {
				g.Lit(name)
			}
		})
	}

	f.Comment("UsedTypes lists every referenced type name across all modules.")
	f.Var().Id("UsedTypes").Op("=").Index().String().ValuesFunc(func(g *jen.Group) {
		for _, name := range p.Report.UsedTypes {
			g.Lit(name)
		}
	})

	return f, nil
}

// resolveOutPkgPath derives the import path of the output package from the
// nearest go.mod above OutDir.
func (p *Parser) resolveOutPkgPath(pkgName string) (string, error) {
	outDir, err := filepath.Abs(p.Opts.OutDir)
	if err != nil {
		return "", err
	}

	dir := outDir
	for {
		modPath := filepath.Join(dir, "go.mod")
		data, err := os.ReadFile(modPath)
		if err == nil {
			mf, err := modfile.Parse(modPath, data, nil)
			if err != nil {
				return "", fmt.Errorf("parse %s: %w", modPath, err)
			}
			rel, err := filepath.Rel(dir, outDir)
			if err != nil {
				return "", err
			}
			pkgPath := path.Join(mf.Module.Mod.Path, filepath.ToSlash(rel))
			if err := module.CheckImportPath(pkgPath); err != nil {
				return "", fmt.Errorf("output package path %s: %w", pkgPath, err)
			}
			return pkgPath, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w above %s", ErrNoModule, outDir)
		}
		dir = parent
	}
}

// sanitizeIdent lowercases s and strips everything that cannot appear in a
// package name.
func sanitizeIdent(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 || unicode.IsDigit(rune(b.String()[0])) {
		return "schema"
	}
	return b.String()
}

// exportedIdent turns a module directory name into an exported Go
// identifier, e.g. "user-accounts" → "UserAccounts".
func exportedIdent(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var b strings.Builder
	for _, part := range parts {
		r := []rune(part)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	if b.Len() == 0 {
		return "Schema"
	}
	return b.String()
}
