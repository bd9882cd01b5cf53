package domain

import (
	"slices"
	"strconv"
	"strings"
)

// EmptyCell — метка пустой клетки космоса.
const EmptyCell = "."

// GalaxyMark — символ галактики во входном файле.
const GalaxyMark = '#'

// Grid — двумерная карта космоса.
//
// Каждая строка — упорядоченный набор меток клеток:
// "." для пустого пространства или номер галактики ("1", "2", ...).
// Ширина берётся по первой строке.
type Grid [][]string

// Width возвращает ширину сетки (длину первой строки).
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Height возвращает количество строк.
func (g Grid) Height() int {
	return len(g)
}

// Clone возвращает глубокую копию сетки.
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = slices.Clone(row)
	}
	return out
}

// String возвращает сетку построчно, без завершающего перевода строки.
func (g Grid) String() string {
	var b strings.Builder
	for i, row := range g {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range row {
			b.WriteString(cell)
		}
	}
	return b.String()
}

// Point — координата клетки: X — столбец, Y — строка.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Galaxy — отмеченная клетка сетки.
type Galaxy struct {
	// Label — порядковый номер (с 1) в порядке сканирования:
	// слева направо, сверху вниз.
	Label int `json:"label"`

	// Pos — положение галактики. Меняется только при расширении.
	Pos Point `json:"pos"`
}

// Name возвращает метку галактики в виде строки (как она записана в сетке).
func (g Galaxy) Name() string {
	return strconv.Itoa(g.Label)
}

// ExpansionPlan — строки и столбцы без галактик, которые нужно продублировать.
//
// Индексы отсортированы по возрастанию и не повторяются.
// План вычисляется один раз по исходной (нерасширенной) сетке.
type ExpansionPlan struct {
	Rows    []int `json:"rows"`
	Columns []int `json:"columns"`
}

// IsEmpty возвращает true, если расширять нечего.
func (p ExpansionPlan) IsEmpty() bool {
	return len(p.Rows) == 0 && len(p.Columns) == 0
}

// Dimension — сетка вместе с галактиками и планом расширения.
type Dimension struct {
	Grid     Grid
	Galaxies []Galaxy
	Plan     ExpansionPlan
}

// Clone возвращает независимую копию: сетка, галактики и план копируются.
func (d *Dimension) Clone() *Dimension {
	return &Dimension{
		Grid:     d.Grid.Clone(),
		Galaxies: slices.Clone(d.Galaxies),
		Plan: ExpansionPlan{
			Rows:    slices.Clone(d.Plan.Rows),
			Columns: slices.Clone(d.Plan.Columns),
		},
	}
}
