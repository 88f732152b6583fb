package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/sparsekit/coo"
)

// matrixFile is the TOML description of a COO matrix:
//
//	rows = 2
//	cols = 2
//	row = [0, 0, 1]
//	col = [1, 1, 0]
//	value = [1.0, 2.0, 3.0]   # optional
//
// rows/cols may be omitted for a non-empty index, in which case the extent
// is computed from the coordinates.
type matrixFile struct {
	Rows  int64     `toml:"rows"`
	Cols  int64     `toml:"cols"`
	Row   []int64   `toml:"row"`
	Col   []int64   `toml:"col"`
	Value []float64 `toml:"value"`
}

// loadMatrix decodes path and normalizes its contents into storage.
func loadMatrix(path string) (*coo.SparseStorage, error) {
	var mf matrixFile
	if _, err := toml.DecodeFile(path, &mf); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	opts := []coo.Option{}
	if mf.Rows > 0 || mf.Cols > 0 {
		opts = append(opts, coo.WithSparseSize(mf.Rows, mf.Cols))
	}
	if mf.Value != nil {
		opts = append(opts, coo.WithValue(mf.Value))
	}

	s, err := coo.New(mf.Row, mf.Col, opts...)
	if err != nil {
		return nil, fmt.Errorf("normalize %s: %w", path, err)
	}
	return s, nil
}
