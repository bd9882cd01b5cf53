package cli

import (
	"fmt"
	"io"

	"github.com/shaiso/Starfield/internal/domain"
)

// Output печатает текстовый отчёт анализа.
type Output struct {
	w io.Writer
}

// NewOutput создаёт Output, пишущий в w.
func NewOutput(w io.Writer) *Output {
	return &Output{w: w}
}

// Section печатает заголовок раздела: "--- title ---".
func (o *Output) Section(title string) {
	fmt.Fprintf(o.w, "--- %s ---\n", title)
}

// Dimension печатает размеры и содержимое сетки, галактики и план.
func (o *Output) Dimension(d *domain.Dimension) {
	fmt.Fprintf(o.w, "space: %dx%d\n", d.Grid.Width(), d.Grid.Height())
	if d.Grid.Height() > 0 {
		fmt.Fprintln(o.w, d.Grid.String())
	}

	for _, g := range d.Galaxies {
		fmt.Fprintf(o.w, "Galaxy %d (%d,%d)\n", g.Label, g.Pos.X, g.Pos.Y)
	}

	o.Plan(d.Plan)
}

// Plan печатает индексы строк и столбцов для расширения.
func (o *Output) Plan(p domain.ExpansionPlan) {
	fmt.Fprintf(o.w, "expand_columns: %v\n", p.Columns)
	fmt.Fprintf(o.w, "expand_rows: %v\n", p.Rows)
}

// Distances печатает расстояние для каждой пары.
func (o *Output) Distances(res domain.Result) {
	for _, d := range res.Distances {
		fmt.Fprintf(o.w, "%d -> %d = %d\n", d.From, d.To, d.Length)
	}
}

// Summary печатает количество пар и сумму.
func (o *Output) Summary(res domain.Result) {
	fmt.Fprintf(o.w, "pairs: %d\n", res.Pairs)
	fmt.Fprintf(o.w, "sum: %d\n", res.Sum)
}

// Report печатает полный отчёт в порядке:
// initial → expansion → distances → sum.
func (o *Output) Report(initial, expanded *domain.Dimension, res domain.Result) {
	o.Section("initial")
	o.Dimension(initial)

	o.Section("expansion")
	o.Dimension(expanded)

	o.Section("distances")
	o.Distances(res)

	o.Section("sum")
	o.Summary(res)
}
