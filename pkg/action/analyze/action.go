package analyze

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/schemakit/gqlusage/pkg/parser"
)

// Run parses the configured schema directory and writes the YAML usage
// report and the generated Go registry file into OutDir. It returns the
// report path.
func Run(opts *parser.Options) (string, error) {
	par, err := parser.NewWithOpts(opts)
	if err != nil {
		return "", err
	}
	if err = par.Parse(); err != nil {
		return "", err
	}

	if err = os.MkdirAll(par.Opts.OutDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	reportPath := filepath.Clean(filepath.Join(par.Opts.OutDir, par.Opts.ReportFile))
	data, err := yaml.Marshal(par.Report)
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	if err = os.WriteFile(reportPath, data, 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	f, err := par.GenerateUsageFile()
	if err != nil {
		return "", err
	}
	outFile := filepath.Clean(filepath.Join(par.Opts.OutDir, par.Opts.OutFile))
	ff, err := os.OpenFile(outFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", outFile, err)
	}
	defer func() { _ = ff.Close() }()
	if err = f.Render(ff); err != nil {
		return "", fmt.Errorf("render %s: %w", outFile, err)
	}

	return reportPath, nil
}
