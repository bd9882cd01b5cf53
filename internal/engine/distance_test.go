package engine

import (
	"testing"

	"github.com/shaiso/Starfield/internal/domain"
)

func TestDistances_PairCount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		n     int
	}{
		{name: "no galaxies", input: "...\n...\n", n: 0},
		{name: "single galaxy", input: "...\n.#.\n", n: 1},
		{name: "two galaxies", input: "#..\n..#\n", n: 2},
		{name: "sample", input: sampleSpace, n: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, res := Analyze(mustParse(t, tt.input), nil)

			want := tt.n * (tt.n - 1) / 2
			if res.Pairs != want {
				t.Errorf("expected %d pairs, got %d", want, res.Pairs)
			}
			if len(res.Distances) != want {
				t.Errorf("expected %d records, got %d", want, len(res.Distances))
			}

			seen := make(map[[2]int]bool)
			sum := 0
			for _, d := range res.Distances {
				if d.Length <= 0 {
					t.Errorf("distance %d -> %d is not positive: %d", d.From, d.To, d.Length)
				}
				if d.From >= d.To {
					t.Errorf("pair %d -> %d is not in scan order", d.From, d.To)
				}
				key := [2]int{d.From, d.To}
				if seen[key] {
					t.Errorf("pair %d -> %d reported twice", d.From, d.To)
				}
				seen[key] = true
				sum += d.Length
			}
			if sum != res.Sum {
				t.Errorf("Sum = %d, records add up to %d", res.Sum, sum)
			}
		})
	}
}

func TestDistances_SingleAndEmpty(t *testing.T) {
	for _, galaxies := range [][]domain.Galaxy{
		nil,
		{{Label: 1, Pos: domain.Point{X: 3, Y: 4}}},
	} {
		res := Distances(galaxies)
		if res.Pairs != 0 || res.Sum != 0 || len(res.Distances) != 0 {
			t.Errorf("%d galaxies: expected empty result, got %+v", len(galaxies), res)
		}
	}
}

func TestManhattan_Symmetric(t *testing.T) {
	points := []domain.Point{
		{X: 0, Y: 0},
		{X: 4, Y: 0},
		{X: 1, Y: 6},
		{X: 12, Y: 7},
		{X: 5, Y: 11},
	}

	for _, a := range points {
		for _, b := range points {
			if Manhattan(a, b) != Manhattan(b, a) {
				t.Errorf("Manhattan(%v, %v) = %d, reverse = %d", a, b, Manhattan(a, b), Manhattan(b, a))
			}
		}
	}

	if got := Manhattan(domain.Point{X: 1, Y: 6}, domain.Point{X: 5, Y: 11}); got != 9 {
		t.Errorf("expected 9, got %d", got)
	}
}
