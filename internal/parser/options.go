package parser

import (
	"path/filepath"
	"strings"
)

// Options control scanning and post-processing.
//
// InDir      – directory to scan for schema sources
// OutDir     – output directory for generated artifacts
// OutFile    – generated Go registry filename
// OutPackage – package name for the generated file (default: base of OutDir)
// ReportFile – YAML usage report filename, written into OutDir
// Extensions – schema source filename extensions to pick up
type Options struct {
	InDir      string   `json:"in_dir,omitempty" yaml:"in_dir,omitempty" toml:"in_dir,omitempty" mapstructure:"in_dir,omitempty"`
	OutDir     string   `json:"out_dir,omitempty" yaml:"out_dir,omitempty" toml:"out_dir,omitempty" mapstructure:"out_dir,omitempty"`
	OutFile    string   `json:"out_file,omitempty" yaml:"out_file,omitempty" toml:"out_file,omitempty" mapstructure:"out_file,omitempty"`
	OutPackage string   `json:"out_package,omitempty" yaml:"out_package,omitempty" toml:"out_package,omitempty" mapstructure:"out_package,omitempty"`
	ReportFile string   `json:"report_file,omitempty" yaml:"report_file,omitempty" toml:"report_file,omitempty" mapstructure:"report_file,omitempty"`
	Extensions []string `json:"extensions,omitempty" yaml:"extensions,omitempty" toml:"extensions,omitempty" mapstructure:"extensions,omitempty"`
}

func NewOptions() *Options {
	return &Options{
		InDir:      ".",
		OutDir:     "schema",
		OutFile:    "usage_gen.go",
		ReportFile: "usage.yaml",
		Extensions: []string{".graphql", ".graphqls", ".gql"},
	}
}

func (o *Options) Normalize() {
	if strings.Contains(o.InDir, ".") {
		o.InDir, _ = filepath.Abs(o.InDir)
	}
	if len(o.OutDir) == 0 {
		o.OutDir = "schema"
	}
	if len(o.OutFile) == 0 {
		o.OutFile = "usage_gen.go"
	}
	if len(o.ReportFile) == 0 {
		o.ReportFile = "usage.yaml"
	}
	if len(o.Extensions) == 0 {
		o.Extensions = []string{".graphql", ".graphqls", ".gql"}
	}
	for i, ext := range o.Extensions {
		if !strings.HasPrefix(ext, ".") {
			o.Extensions[i] = "." + ext
		}
	}
}

// functional option pattern ---------------------------------------------------

type Option func(*Options)

func WithInDir(d string) Option      { return func(o *Options) { o.InDir = d } }
func WithOutDir(d string) Option     { return func(o *Options) { o.OutDir = d } }
func WithOutFile(f string) Option    { return func(o *Options) { o.OutFile = f } }
func WithOutPackage(p string) Option { return func(o *Options) { o.OutPackage = p } }
func WithReportFile(f string) Option { return func(o *Options) { o.ReportFile = f } }
func WithExtensions(exts ...string) Option {
	return func(o *Options) {
		for _, e := range exts {
			o.Extensions = append(o.Extensions, strings.TrimSpace(e))
		}
	}
}
