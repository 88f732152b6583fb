package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsekit/coo"
)

// writeFile drops contents into a temp file and returns its path.
func writeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "matrix.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadMatrix_FullDescription(t *testing.T) {
	path := writeFile(t, `
rows = 2
cols = 2
row = [1, 0]
col = [0, 1]
value = [3.0, 1.0]
`)

	s, err := loadMatrix(path)
	require.NoError(t, err)

	// Normalization reorders into row-major.
	require.Equal(t, []int64{0, 1}, s.Row())
	require.Equal(t, []int64{1, 0}, s.Col())
	require.Equal(t, []float64{1, 3}, s.Value())
}

func TestLoadMatrix_ComputedExtent(t *testing.T) {
	path := writeFile(t, `
row = [0, 4]
col = [2, 0]
`)

	s, err := loadMatrix(path)
	require.NoError(t, err)

	rows, cols := s.SparseSize()
	require.Equal(t, int64(5), rows)
	require.Equal(t, int64(3), cols)
	require.False(t, s.HasValue())
}

func TestLoadMatrix_StructuralViolation(t *testing.T) {
	path := writeFile(t, `
row = [0, 1]
col = [0]
`)

	_, err := loadMatrix(path)
	require.ErrorIs(t, err, coo.ErrIndexMismatch)
}

func TestLoadMatrix_MissingFile(t *testing.T) {
	_, err := loadMatrix(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestOccupancy(t *testing.T) {
	empty, max := occupancy([]int64{2, 0, 5, 0, 1})
	require.Equal(t, int64(2), empty)
	require.Equal(t, int64(5), max)
}
