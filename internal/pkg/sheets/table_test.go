package sheets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleTable() *Table {
	return &Table{
		Columns: []string{"name", "city"},
		Rows: [][]string{
			{"Alice", "Paris"},
			{"Bob", "London"},
			{"Carol", "Madrid"},
		},
	}
}

func TestHead(t *testing.T) {
	table := sampleTable()

	head := table.Head(2)
	assert.Equal(t, 2, head.NumRows())
	assert.Equal(t, table.Columns, head.Columns)

	// n больше числа строк - возвращаются все
	assert.Equal(t, 3, table.Head(10).NumRows())
	assert.Equal(t, 0, table.Head(-1).NumRows())
}

func TestCell(t *testing.T) {
	table := sampleTable()

	assert.Equal(t, "Paris", table.Cell(0, "city"))
	assert.Equal(t, "Carol", table.Cell(2, "name"))
	assert.Equal(t, "", table.Cell(0, "unknown"))
	assert.Equal(t, "", table.Cell(99, "name"))

	// Строка короче заголовка
	short := &Table{
		Columns: []string{"a", "b"},
		Rows:    [][]string{{"only-a"}},
	}
	assert.Equal(t, "only-a", short.Cell(0, "a"))
	assert.Equal(t, "", short.Cell(0, "b"))
}

func TestString(t *testing.T) {
	table := sampleTable()

	out := table.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "name")
	assert.Contains(t, lines[0], "city")
	assert.Contains(t, lines[1], "Alice")

	// Колонки выровнены по самой длинной ячейке
	assert.True(t, strings.HasPrefix(lines[3], "Carol  "))
}
