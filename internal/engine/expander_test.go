package engine

import (
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/shaiso/Starfield/internal/domain"
)

// emptyGrid возвращает сетку width x height из пустых клеток.
func emptyGrid(width, height int) domain.Grid {
	g := make(domain.Grid, height)
	for y := range g {
		g[y] = slices.Repeat([]string{domain.EmptyCell}, width)
	}
	return g
}

func TestExpand_ShiftsByFlaggedIndices(t *testing.T) {
	g := emptyGrid(10, 10)
	g[0][0] = "1"
	g[9][9] = "2"

	d := &domain.Dimension{
		Grid: g,
		Galaxies: []domain.Galaxy{
			{Label: 1, Pos: domain.Point{X: 0, Y: 0}},
			{Label: 2, Pos: domain.Point{X: 9, Y: 9}},
		},
		Plan: domain.ExpansionPlan{Rows: []int{4}, Columns: []int{4}},
	}

	Expand(d)

	want := []domain.Galaxy{
		{Label: 1, Pos: domain.Point{X: 0, Y: 0}},
		{Label: 2, Pos: domain.Point{X: 10, Y: 10}},
	}
	if diff := cmp.Diff(want, d.Galaxies); diff != "" {
		t.Errorf("galaxies mismatch (-want +got):\n%s", diff)
	}

	if d.Grid.Width() != 11 || d.Grid.Height() != 11 {
		t.Fatalf("expected 11x11, got %dx%d", d.Grid.Width(), d.Grid.Height())
	}
	for _, gal := range d.Galaxies {
		if cell := d.Grid[gal.Pos.Y][gal.Pos.X]; cell != gal.Name() {
			t.Errorf("galaxy %d: cell at %+v is %q", gal.Label, gal.Pos, cell)
		}
	}

	// План не меняется
	if diff := cmp.Diff(domain.ExpansionPlan{Rows: []int{4}, Columns: []int{4}}, d.Plan); diff != "" {
		t.Errorf("plan changed (-want +got):\n%s", diff)
	}
}

func TestExpand_DistanceGrowsByFlagsBetween(t *testing.T) {
	// D = 6 + 4, между галактиками 3 пустые строки и 5 пустых столбцов
	d := mustParse(t, strings.Join([]string{
		"#......",
		".......",
		".......",
		".......",
		"......#",
	}, "\n"))

	before := Distances(d.Galaxies)
	if before.Sum != 10 {
		t.Fatalf("expected pre-expansion distance 10, got %d", before.Sum)
	}

	Expand(d)

	after := Distances(d.Galaxies)
	if after.Sum != 10+3+5 {
		t.Errorf("expected distance %d, got %d", 10+3+5, after.Sum)
	}
}

func TestExpand_GridAndGalaxyCount(t *testing.T) {
	d := mustParse(t, sampleSpace)
	n := len(d.Galaxies)
	w, h := d.Grid.Width(), d.Grid.Height()

	Expand(d)

	if len(d.Galaxies) != n {
		t.Errorf("galaxy count changed from %d to %d", n, len(d.Galaxies))
	}
	if got, want := d.Grid.Width(), w+len(d.Plan.Columns); got != want {
		t.Errorf("expected width %d, got %d", want, got)
	}
	if got, want := d.Grid.Height(), h+len(d.Plan.Rows); got != want {
		t.Errorf("expected height %d, got %d", want, got)
	}
	for y, row := range d.Grid {
		if len(row) != d.Grid.Width() {
			t.Errorf("row %d has %d cells, want %d", y, len(row), d.Grid.Width())
		}
	}
}

func TestExpand_DuplicatedRowsAreCopies(t *testing.T) {
	d := mustParse(t, "#..\n...\n..#\n")

	Expand(d)

	d.Grid[1][0] = "x"
	if d.Grid[2][0] == "x" {
		t.Error("inserted row shares cells with its source row")
	}
}

func TestExpand_RoundTrip(t *testing.T) {
	d := mustParse(t, sampleSpace)
	Expand(d)

	// Каждая пустая строка/столбец теперь встречается дважды: исходная и копия
	want := domain.ExpansionPlan{
		Rows:    []int{3, 4, 8, 9},
		Columns: []int{2, 3, 6, 7, 10, 11},
	}
	if diff := cmp.Diff(want, PlanFor(d.Grid)); diff != "" {
		t.Errorf("replanned expanded grid mismatch (-want +got):\n%s", diff)
	}
}

func TestExpand_NoEmptyLinesIsNoop(t *testing.T) {
	d := mustParse(t, "#.\n.#\n")
	before := d.Clone()

	if !PlanFor(d.Grid).IsEmpty() {
		t.Fatalf("expected empty plan, got %+v", PlanFor(d.Grid))
	}

	Expand(d)

	if diff := cmp.Diff(before, d); diff != "" {
		t.Errorf("expansion with empty plan changed dimension (-before +after):\n%s", diff)
	}
}

func TestExpand_NoGalaxies(t *testing.T) {
	d := mustParse(t, "..\n..\n")

	Expand(d)

	if d.Grid.Width() != 4 || d.Grid.Height() != 4 {
		t.Errorf("expected 4x4, got %dx%d", d.Grid.Width(), d.Grid.Height())
	}
}

func TestCountBelow(t *testing.T) {
	tests := []struct {
		indices []int
		v       int
		want    int
	}{
		{indices: nil, v: 5, want: 0},
		{indices: []int{2, 5, 8}, v: 0, want: 0},
		{indices: []int{2, 5, 8}, v: 2, want: 0},
		{indices: []int{2, 5, 8}, v: 3, want: 1},
		{indices: []int{2, 5, 8}, v: 8, want: 2},
		{indices: []int{2, 5, 8}, v: 9, want: 3},
	}

	for _, tt := range tests {
		if got := countBelow(tt.indices, tt.v); got != tt.want {
			t.Errorf("countBelow(%v, %d) = %d, want %d", tt.indices, tt.v, got, tt.want)
		}
	}
}
