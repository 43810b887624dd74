package hopfield_test

import (
	"fmt"

	"github.com/katalvlaran/hopnet/hopfield"
	"github.com/katalvlaran/hopnet/instance"
	"github.com/katalvlaran/hopnet/matrix"
)

func ExampleOutputActivation() {
	fmt.Printf("%.2f %.2f\n", hopfield.OutputActivation(0, 0.02), hopfield.OutputActivation(0.02, 0.02))
	// Output: 0.50 0.88
}

func ExampleExtractTour() {
	v, _ := matrix.NewDenseFrom([][]float64{
		{0.0, 0.1, 0.9},
		{0.8, 0.0, 0.0},
		{0.1, 0.7, 0.0},
	})
	tour := hopfield.ExtractTour(v)
	fmt.Println(tour, hopfield.ValidTour(tour, 3))
	// Output: [1 2 0] true
}

func ExampleSolver_EnergyOf() {
	d, _ := instance.DistanceMatrix([]instance.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}})
	s, _ := hopfield.New(d)

	// Tour 1 → 2 → 3 → 0 as a permutation matrix.
	v, _ := matrix.NewDense(4, 4)
	for pos, city := range []int{1, 2, 3, 0} {
		_ = v.Set(city, pos, 1)
	}
	terms, _ := s.EnergyOf(v)
	fmt.Printf("%+v %g\n", terms, terms.Total(s.Options()))
	// Output: {RowConflict:0 ColConflict:0 Count:121 TourLength:8} 14100
}

func ExampleSolver_Solve_singleCity() {
	d, _ := matrix.NewDense(1, 1)
	s, _ := hopfield.New(d)
	res := s.Solve()
	fmt.Println(res.Tour, res.Valid)
	// Output: [0] true
}
