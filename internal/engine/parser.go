package engine

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shaiso/Starfield/internal/domain"
)

// maxLineSize — максимальная длина строки входного файла.
const maxLineSize = 1 << 20

// ParseFile открывает файл и разбирает его через Parse.
// Файл закрывается до возврата.
func ParseFile(path string) (*domain.Dimension, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	d, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return d, nil
}

// Parse читает карту космоса построчно.
//
// Каждая строка становится строкой сетки, каждый символ — клеткой:
//   - '#' — галактика: получает следующий номер (с 1) в порядке
//     сканирования, в клетку записывается её номер;
//   - '.' — пустая клетка.
//
// Любой другой символ и строка с шириной, отличной от первой,
// отклоняются с *ParseError. Завершающий '\r' и пустые строки
// в конце файла отбрасываются.
//
// Строки без галактик попадают в Plan.Rows, столбцы без галактик
// (по ширине первой строки) — в Plan.Columns.
func Parse(r io.Reader) (*domain.Dimension, error) {
	d := &domain.Dimension{
		Grid: domain.Grid{},
	}

	// occupied[x] — в столбце x есть хотя бы одна галактика
	var occupied []bool
	label := 0

	// blankLine — номер первой пустой строки после сетки (с 1).
	// Пустые строки в конце файла отбрасываются, внутри сетки — ошибка.
	blankLine := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for y := 0; scanner.Scan(); y++ {
		line := strings.TrimSuffix(scanner.Text(), "\r")

		if line == "" && y > 0 {
			if blankLine == 0 {
				blankLine = y + 1
			}
			continue
		}
		if blankLine > 0 {
			return nil, NewParseError(blankLine, 0,
				fmt.Sprintf("row has 0 cells, first row has %d", len(occupied)), ErrRaggedRow)
		}

		row := make([]string, 0, len(line))
		var galaxyCols []int

		x := 0
		for _, c := range line {
			switch c {
			case domain.GalaxyMark:
				label++
				d.Galaxies = append(d.Galaxies, domain.Galaxy{
					Label: label,
					Pos:   domain.Point{X: x, Y: y},
				})
				row = append(row, strconv.Itoa(label))
				galaxyCols = append(galaxyCols, x)
			case '.':
				row = append(row, domain.EmptyCell)
			default:
				return nil, NewParseError(y+1, x+1,
					fmt.Sprintf("unexpected character %q", c), ErrUnexpectedCell)
			}
			x++
		}

		if y == 0 {
			occupied = make([]bool, len(row))
		} else if len(row) != len(occupied) {
			return nil, NewParseError(y+1, 0,
				fmt.Sprintf("row has %d cells, first row has %d", len(row), len(occupied)), ErrRaggedRow)
		}

		for _, x := range galaxyCols {
			occupied[x] = true
		}

		if len(galaxyCols) == 0 {
			d.Plan.Rows = append(d.Plan.Rows, y)
		}
		d.Grid = append(d.Grid, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	for x, ok := range occupied {
		if !ok {
			d.Plan.Columns = append(d.Plan.Columns, x)
		}
	}

	return d, nil
}

// countGalaxies возвращает количество непустых клеток в строке.
func countGalaxies(row []string) int {
	n := 0
	for _, cell := range row {
		if cell != domain.EmptyCell {
			n++
		}
	}
	return n
}

// PlanFor вычисляет план расширения по произвольной сетке:
// строки и столбцы, в которых все клетки пустые.
//
// Для сетки после Parse результат совпадает с Dimension.Plan.
func PlanFor(g domain.Grid) domain.ExpansionPlan {
	var plan domain.ExpansionPlan

	for y, row := range g {
		if countGalaxies(row) == 0 {
			plan.Rows = append(plan.Rows, y)
		}
	}

	for x := 0; x < g.Width(); x++ {
		empty := true
		for _, row := range g {
			if x < len(row) && row[x] != domain.EmptyCell {
				empty = false
				break
			}
		}
		if empty {
			plan.Columns = append(plan.Columns, x)
		}
	}

	return plan
}
