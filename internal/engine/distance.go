package engine

import "github.com/shaiso/Starfield/internal/domain"

// Distances считает манхэттенское расстояние для каждой неупорядоченной
// пары галактик.
//
// Пары перебираются в порядке сканирования: (i, j) при i < j,
// поэтому каждая пара встречается ровно один раз.
func Distances(galaxies []domain.Galaxy) domain.Result {
	n := len(galaxies)
	res := domain.Result{
		Distances: make([]domain.Distance, 0, n*(n-1)/2),
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := galaxies[i], galaxies[j]
			d := domain.Distance{
				From:   a.Label,
				To:     b.Label,
				Length: Manhattan(a.Pos, b.Pos),
			}
			res.Distances = append(res.Distances, d)
			res.Sum += d.Length
		}
	}
	res.Pairs = len(res.Distances)

	return res
}

// Manhattan возвращает |a.X-b.X| + |a.Y-b.Y|.
func Manhattan(a, b domain.Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
