package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestGrid_Dimensions(t *testing.T) {
	tests := []struct {
		name          string
		grid          Grid
		width, height int
	}{
		{name: "nil grid", grid: nil, width: 0, height: 0},
		{name: "single row", grid: Grid{{".", "1", "."}}, width: 3, height: 1},
		{name: "two rows", grid: Grid{{".", "."}, {".", "."}}, width: 2, height: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.grid.Width(); got != tt.width {
				t.Errorf("Width() = %d, want %d", got, tt.width)
			}
			if got := tt.grid.Height(); got != tt.height {
				t.Errorf("Height() = %d, want %d", got, tt.height)
			}
		})
	}
}

func TestGrid_String(t *testing.T) {
	g := Grid{
		{".", "1", "."},
		{".", ".", "2"},
	}

	want := ".1.\n..2"
	if got := g.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDimension_CloneIsIndependent(t *testing.T) {
	orig := &Dimension{
		Grid:     Grid{{"1", "."}, {".", "."}},
		Galaxies: []Galaxy{{Label: 1, Pos: Point{X: 0, Y: 0}}},
		Plan:     ExpansionPlan{Rows: []int{1}, Columns: []int{1}},
	}

	cp := orig.Clone()
	cp.Grid[0][1] = "x"
	cp.Grid = append(cp.Grid, []string{".", "."})
	cp.Galaxies[0].Pos.X = 5
	cp.Plan.Rows[0] = 9

	if orig.Grid[0][1] != "." {
		t.Error("clone shares grid cells with original")
	}
	if orig.Grid.Height() != 2 {
		t.Errorf("original height changed to %d", orig.Grid.Height())
	}
	if orig.Galaxies[0].Pos.X != 0 {
		t.Error("clone shares galaxies with original")
	}
	if orig.Plan.Rows[0] != 1 {
		t.Error("clone shares plan with original")
	}
}

func TestExpansionPlan_IsEmpty(t *testing.T) {
	if !(ExpansionPlan{}).IsEmpty() {
		t.Error("zero plan should be empty")
	}
	if (ExpansionPlan{Columns: []int{0}}).IsEmpty() {
		t.Error("plan with a column should not be empty")
	}
}

func TestAnalysis_Lifecycle(t *testing.T) {
	a := NewAnalysis("input.txt")
	if a.ID == uuid.Nil {
		t.Fatal("expected generated ID")
	}
	if a.Status != AnalysisStatusPending {
		t.Fatalf("expected PENDING, got %s", a.Status)
	}
	if a.Duration() != 0 {
		t.Errorf("expected zero duration before start, got %v", a.Duration())
	}

	a.MarkRunning()
	if a.Status != AnalysisStatusRunning || a.StartedAt == nil {
		t.Fatalf("expected RUNNING with StartedAt, got %s", a.Status)
	}
	if a.Status.IsTerminal() {
		t.Error("RUNNING should not be terminal")
	}

	initial := &Dimension{
		Grid:     Grid{{"1", "."}, {".", "."}},
		Galaxies: []Galaxy{{Label: 1}},
		Plan:     ExpansionPlan{Rows: []int{1}, Columns: []int{1}},
	}
	expanded := &Dimension{
		Grid:     Grid{{"1", ".", "."}, {".", ".", "."}, {".", ".", "."}},
		Galaxies: []Galaxy{{Label: 1}},
	}
	a.MarkSucceeded(initial, expanded, Result{})

	if a.Status != AnalysisStatusSucceeded || !a.Status.IsTerminal() {
		t.Fatalf("expected terminal SUCCEEDED, got %s", a.Status)
	}
	if a.Initial != (Size{Width: 2, Height: 2}) {
		t.Errorf("unexpected initial size %+v", a.Initial)
	}
	if a.Expanded != (Size{Width: 3, Height: 3}) {
		t.Errorf("unexpected expanded size %+v", a.Expanded)
	}
	if a.ExpandedRows != 1 || a.ExpandedColumns != 1 {
		t.Errorf("expected 1 row and 1 column expanded, got %d/%d", a.ExpandedRows, a.ExpandedColumns)
	}
}

func TestAnalysis_MarkFailed(t *testing.T) {
	a := NewAnalysis("missing.txt")
	a.MarkRunning()
	a.MarkFailed("open missing.txt: no such file")

	if a.Status != AnalysisStatusFailed {
		t.Fatalf("expected FAILED, got %s", a.Status)
	}
	if a.Error == "" {
		t.Error("expected error text")
	}
	if a.FinishedAt == nil {
		t.Error("expected FinishedAt")
	}
}
