package ndslice_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/ndslice"
	"github.com/hupe1980/ndslice/dataset"
)

// Example_bins demonstrates partitioning two columns and reading each bin.
func Example_bins() {
	tbl, err := dataset.FromColumns(map[string][]float64{
		"H":    {16, 17, 18, 19, 20, 21},
		"time": {0, 5, 9, 1, 6, 10},
	})
	if err != nil {
		log.Fatal(err)
	}

	s, err := ndslice.NewNDSlicer([]string{"H", "time"}, ndslice.WithBins(2))
	if err != nil {
		log.Fatal(err)
	}
	if err := s.Setup(tbl); err != nil {
		log.Fatal(err)
	}

	bins, err := s.Bins()
	if err != nil {
		log.Fatal(err)
	}
	for i, b := range bins {
		fmt.Println(i, b.Left, b.Rows.Slice())
	}
	// Output:
	// 0 [16 0] [0]
	// 1 [16 5] [1 2]
	// 2 [18.5 0] [3]
	// 3 [18.5 5] [4 5]
}

// Example_explicitEdges demonstrates random access with explicit edges.
func Example_explicitEdges() {
	tbl, err := dataset.FromColumns(map[string][]float64{
		"x": {0.1, 0.6, 0.9},
	})
	if err != nil {
		log.Fatal(err)
	}

	s, err := ndslice.NewNDSlicer([]string{"x"}, ndslice.WithEdges([]float64{0, 0.5, 1}))
	if err != nil {
		log.Fatal(err)
	}
	total, _ := s.TotalBins()
	fmt.Println("bins:", total)

	if err := s.Setup(tbl); err != nil {
		log.Fatal(err)
	}
	b, err := s.Bin(1)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(b.Left, b.Right, b.Rows.Len())
	// Output:
	// bins: 2
	// [0.5] [1] 2
}

// Example_degenerateRange demonstrates the diagnostic for a constant column.
func Example_degenerateRange() {
	tbl, err := dataset.FromColumns(map[string][]float64{
		"x": {3, 3, 3},
	})
	if err != nil {
		log.Fatal(err)
	}

	s, err := ndslice.NewNDSlicer([]string{"x"}, ndslice.WithBins(4))
	if err != nil {
		log.Fatal(err)
	}
	if err := s.Setup(tbl); err != nil {
		log.Fatal(err)
	}
	for _, d := range s.Diagnostics() {
		fmt.Println(d.Code, d.Dimension)
	}
	fmt.Println(s.Edges()[0])
	// Output:
	// degenerate_range x
	// constant_column x
	// [2.5 2.75 3 3.25 3.5]
}
