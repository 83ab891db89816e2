package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rastonlab/ftmw-api/pkg/models"
)

func writeLinelist(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestFileStoreLoad(t *testing.T) {
	dir := t.TempDir()
	writeLinelist(t, dir, "OCS.dat", "12162.979  1.0\n24325.921  0.5\n")

	store := NewFileStore(dir)
	lines, err := store.Load(context.Background(), "OCS")
	require.NoError(t, err)

	require.Len(t, lines, 2)
	assert.Equal(t, models.SpectralLine{Frequency: 12162.979, Intensity: 1.0}, lines[0])
	assert.Equal(t, models.SpectralLine{Frequency: 24325.921, Intensity: 0.5}, lines[1])
}

func TestFileStoreSkipsMalformedRows(t *testing.T) {
	dir := t.TempDir()
	writeLinelist(t, dir, "OCS.dat", "# header comment\n12162.979  1.0\nnot-a-number  0.3\n24325.921\n24325.921  bad\n36488.813  0.2\n")

	store := NewFileStore(dir)
	lines, err := store.Load(context.Background(), "OCS")
	require.NoError(t, err)

	require.Len(t, lines, 2)
	assert.Equal(t, 12162.979, lines[0].Frequency)
	assert.Equal(t, 36488.813, lines[1].Frequency)
}

func TestFileStoreUnknownMolecule(t *testing.T) {
	store := NewFileStore(t.TempDir())
	_, err := store.Load(context.Background(), "H2O2")
	require.ErrorIs(t, err, ErrUnknownMolecule)
}

func TestFileStoreMissingFile(t *testing.T) {
	store := NewFileStore(t.TempDir())
	_, err := store.Load(context.Background(), "OCS")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrUnknownMolecule)
}

func TestFileStoreCachesCatalog(t *testing.T) {
	dir := t.TempDir()
	writeLinelist(t, dir, "OCS.dat", "12162.979  1.0\n")

	store := NewFileStore(dir)
	first, err := store.Load(context.Background(), "OCS")
	require.NoError(t, err)

	// Rewriting the file must not change an already-loaded catalog.
	writeLinelist(t, dir, "OCS.dat", "99999.999  9.9\n")
	second, err := store.Load(context.Background(), "OCS")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFileStoreMolecules(t *testing.T) {
	store := NewFileStore(t.TempDir())
	molecules := store.Molecules()

	assert.Len(t, molecules, 8)
	assert.Contains(t, molecules, "OCS")
	assert.Contains(t, molecules, "HC7N")
	assert.IsIncreasing(t, molecules)
}

func TestMemStore(t *testing.T) {
	store := &MemStore{Lines: map[string][]models.SpectralLine{
		"OCS": {{Frequency: 100, Intensity: 1}},
	}}

	lines, err := store.Load(context.Background(), "OCS")
	require.NoError(t, err)
	require.Len(t, lines, 1)

	_, err = store.Load(context.Background(), "HC7N")
	require.ErrorIs(t, err, ErrUnknownMolecule)

	assert.Equal(t, []string{"OCS"}, store.Molecules())
}
