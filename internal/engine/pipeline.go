package engine

import (
	"time"

	"github.com/shaiso/Starfield/internal/domain"
)

// Стадии конвейера.
const (
	StageParse   = "parse"
	StageExpand  = "expand"
	StageMeasure = "measure"
)

// StageObserver получает длительность каждой завершённой стадии.
type StageObserver func(stage string, took time.Duration)

// Analyze выполняет expand → measure над копией d.
//
// Исходный d не изменяется, чтобы его можно было вывести
// как начальное состояние. observe может быть nil.
func Analyze(d *domain.Dimension, observe StageObserver) (*domain.Dimension, domain.Result) {
	if observe == nil {
		observe = func(string, time.Duration) {}
	}

	start := time.Now()
	expanded := d.Clone()
	Expand(expanded)
	observe(StageExpand, time.Since(start))

	start = time.Now()
	res := Distances(expanded.Galaxies)
	observe(StageMeasure, time.Since(start))

	return expanded, res
}
