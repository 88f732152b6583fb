package coo_test

import (
	"fmt"

	"github.com/katalvlaran/sparsekit/coo"
	"github.com/katalvlaran/sparsekit/kernel"
)

// ExampleNew demonstrates normalization: unsorted input is reordered into
// row-major order and the extent is computed from the coordinates.
func ExampleNew() {
	s, _ := coo.New([]int64{1, 0}, []int64{0, 1})

	rows, cols := s.SparseSize()
	fmt.Println("size:", rows, "x", cols)
	fmt.Println("row:", s.Row())
	fmt.Println("col:", s.Col())
	// Output:
	// size: 2 x 2
	// row: [0 1]
	// col: [1 0]
}

// ExampleSparseStorage_Rowptr shows the lazily derived CSR offsets.
func ExampleSparseStorage_Rowptr() {
	s, _ := coo.New([]int64{0, 0, 1}, []int64{0, 2, 1}, coo.WithSparseSize(2, 3))

	fmt.Println("rowptr:", s.Rowptr())
	fmt.Println("colptr:", s.Colptr())
	// Output:
	// rowptr: [0 2 3]
	// colptr: [0 1 2 3]
}

// ExampleSparseStorage_Coalesce merges duplicate coordinates under a sum.
func ExampleSparseStorage_Coalesce() {
	s, _ := coo.New([]int64{0, 0, 1}, []int64{1, 1, 0},
		coo.WithSparseSize(2, 2),
		coo.WithValue([]float64{1, 2, 3}))

	out := s.Coalesce(kernel.Sum)
	fmt.Println("row:", out.Row())
	fmt.Println("col:", out.Col())
	fmt.Println("value:", out.Value())
	// Output:
	// row: [0 1]
	// col: [1 0]
	// value: [3 3]
}
