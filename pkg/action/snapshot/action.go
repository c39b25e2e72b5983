package snapshot

import (
	"fmt"
	"os"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/schemakit/gqlusage/internal/model"
	"github.com/schemakit/gqlusage/pkg/action/analyze"
	"github.com/schemakit/gqlusage/pkg/manifest"
	"github.com/schemakit/gqlusage/pkg/parser"
)

// Generate runs an analysis, writes the usage report, and records it in the
// manifest under the provided name and version.
func Generate(opts *parser.Options, manifestPath, snapshotName, snapshotVersion string) (string, error) {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return "", err
	}

	reportPath, err := analyze.Run(opts)
	if err != nil {
		return "", err
	}

	report, err := loadReport(reportPath)
	if err != nil {
		return "", err
	}

	m.AddSnapshot(manifest.Snapshot{
		Name:      snapshotName,
		Version:   snapshotVersion,
		File:      reportPath,
		TypeCount: len(report.UsedTypes),
	})

	if err := m.Save(manifestPath); err != nil {
		return "", err
	}

	return reportPath, nil
}

// List returns all snapshots recorded in the manifest.
func List(manifestPath string) (*manifest.Manifest, error) {
	return manifest.Load(manifestPath)
}

// DiffCurrentWithPrevious loads the manifest, locates the current and
// previous report files, and returns a structural diff of the two reports.
func DiffCurrentWithPrevious(manifestPath string) (string, error) {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return "", err
	}

	if m.CurrentVersion == "" || m.PreviousVersion == "" {
		return "", fmt.Errorf("no current/previous snapshots recorded")
	}

	currentPath := m.SnapshotFile(m.CurrentVersion)
	previousPath := m.SnapshotFile(m.PreviousVersion)

	if currentPath == "" || previousPath == "" {
		return "", fmt.Errorf("report files not found in manifest")
	}

	current, err := loadReport(currentPath)
	if err != nil {
		return "", fmt.Errorf("load current report: %w", err)
	}

	previous, err := loadReport(previousPath)
	if err != nil {
		return "", fmt.Errorf("load previous report: %w", err)
	}

	return cmp.Diff(previous, current), nil
}

func loadReport(path string) (*model.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	var r model.Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("unmarshal report: %w", err)
	}
	return &r, nil
}
