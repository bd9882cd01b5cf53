package engine

import (
	"slices"

	"github.com/shaiso/Starfield/internal/domain"
)

// Expand расширяет космос по плану d.Plan, изменяя d на месте.
//
// Каждая строка из плана дублируется, в каждый столбец из плана
// вставляется ещё одна пустая клетка. Высота растёт на len(Plan.Rows),
// ширина — на len(Plan.Columns). Координаты галактик сдвигаются на
// количество отмеченных индексов строго меньше исходной координаты.
//
// План не меняется: индексы в нём относятся к исходной сетке.
func Expand(d *domain.Dimension) {
	d.Grid = expandGrid(d.Grid, d.Plan)
	expandGalaxies(d.Galaxies, d.Plan)
}

// expandGrid вставляет строки и столбцы. k-й (с 0) индекс плана
// смещён на k уже вставленных перед ним строк/столбцов.
func expandGrid(g domain.Grid, plan domain.ExpansionPlan) domain.Grid {
	for k, y := range plan.Rows {
		pos := y + k
		g = slices.Insert(g, pos+1, slices.Clone(g[pos]))
	}

	for i, row := range g {
		for k, x := range plan.Columns {
			row = slices.Insert(row, x+k, domain.EmptyCell)
		}
		g[i] = row
	}

	return g
}

// expandGalaxies сдвигает координаты галактик по исходному плану.
func expandGalaxies(galaxies []domain.Galaxy, plan domain.ExpansionPlan) {
	for i := range galaxies {
		pos := galaxies[i].Pos
		galaxies[i].Pos = domain.Point{
			X: pos.X + countBelow(plan.Columns, pos.X),
			Y: pos.Y + countBelow(plan.Rows, pos.Y),
		}
	}
}

// countBelow возвращает количество индексов строго меньше v.
// indices отсортированы по возрастанию.
func countBelow(indices []int, v int) int {
	n, _ := slices.BinarySearch(indices, v)
	return n
}
