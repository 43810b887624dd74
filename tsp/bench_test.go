package tsp_test

import (
	"testing"

	"github.com/katalvlaran/hopnet/matrix"
	"github.com/katalvlaran/hopnet/tsp"
)

func benchInstance(b *testing.B, n int) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDenseFrom(euclidRows(randomPoints(tsp.NewRand(seedDet), n)))
	if err != nil {
		b.Fatalf("instance: %v", err)
	}

	return m
}

func BenchmarkTSPExact_N12(b *testing.B) {
	m := benchInstance(b, 12)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.TSPExact(m); err != nil {
			b.Fatalf("TSPExact: %v", err)
		}
	}
}

func BenchmarkNearestNeighbor_N200(b *testing.B) {
	m := benchInstance(b, 200)
	rng := tsp.NewRand(seedDet)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.NearestNeighbor(m, rng); err != nil {
			b.Fatalf("NearestNeighbor: %v", err)
		}
	}
}

func BenchmarkTourLength_N1000(b *testing.B) {
	m := benchInstance(b, 1000)
	tour, _ := tsp.RandomTour(1000, tsp.NewRand(seedDet))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tsp.TourLength(m, tour)
	}
}

func BenchmarkTwoOpt_N100(b *testing.B) {
	m := benchInstance(b, 100)
	start, err := tsp.NearestNeighborFrom(m, 0)
	if err != nil {
		b.Fatalf("NearestNeighborFrom: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := tsp.TwoOpt(m, start, 0); err != nil {
			b.Fatalf("TwoOpt: %v", err)
		}
	}
}
