package manifest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingManifest(t *testing.T) {
	m, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.Empty(t, m.Snapshots)
	require.Empty(t, m.CurrentVersion)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "manifest.yaml")

	m := &Manifest{}
	m.AddSnapshot(Snapshot{Name: "schema", Version: "v1", File: "usage.yaml", TypeCount: 4})
	m.AddSnapshot(Snapshot{Name: "schema", Version: "v2", File: "usage2.yaml", TypeCount: 6})
	require.NoError(t, m.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "v2", got.CurrentVersion)
	require.Equal(t, "v1", got.PreviousVersion)
	require.Len(t, got.Snapshots, 2)
	require.Equal(t, 6, got.Snapshots[1].TypeCount)
}

func TestAddSnapshotDeduplicates(t *testing.T) {
	m := &Manifest{}
	m.AddSnapshot(Snapshot{Name: "schema", Version: "v1", File: "a.yaml"})
	m.AddSnapshot(Snapshot{Name: "schema", Version: "v1", File: "b.yaml", TypeCount: 2})

	require.Len(t, m.Snapshots, 1)
	require.Equal(t, "b.yaml", m.Snapshots[0].File)
	require.Equal(t, "v1", m.CurrentVersion)
	require.Empty(t, m.PreviousVersion)
}

func TestSnapshotFile(t *testing.T) {
	m := &Manifest{}
	m.AddSnapshot(Snapshot{Name: "schema", Version: "v1", File: "a.yaml"})
	require.Equal(t, "a.yaml", m.SnapshotFile("v1"))
	require.Empty(t, m.SnapshotFile("v9"))
}
