package sheets

import (
	"fmt"
	"strings"
)

// Table табличная структура: именованные колонки и строки значений.
// Живёт только в памяти, инварианты колонок задаёт исходный файл
type Table struct {
	Columns []string
	Rows    [][]string
}

// Head возвращает таблицу с первыми n строками (n <= len(Rows))
func (t *Table) Head(n int) *Table {
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	if n < 0 {
		n = 0
	}
	return &Table{
		Columns: t.Columns,
		Rows:    t.Rows[:n],
	}
}

// NumRows количество строк данных (без заголовка)
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// Cell значение ячейки по имени колонки; пустая строка, если колонки нет
// или строка короче заголовка
func (t *Table) Cell(row int, column string) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	for i, name := range t.Columns {
		if name == column {
			if i >= len(t.Rows[row]) {
				return ""
			}
			return t.Rows[row][i]
		}
	}
	return ""
}

// String выравненное текстовое представление таблицы
func (t *Table) String() string {
	widths := make([]int, len(t.Columns))
	for i, name := range t.Columns {
		widths[i] = len(name)
	}
	for _, row := range t.Rows {
		for i, val := range row {
			if i < len(widths) && len(val) > widths[i] {
				widths[i] = len(val)
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		for i, w := range widths {
			val := ""
			if i < len(cells) {
				val = cells[i]
			}
			if i > 0 {
				b.WriteString("  ")
			}
			fmt.Fprintf(&b, "%-*s", w, val)
		}
		b.WriteString("\n")
	}

	writeRow(t.Columns)
	for _, row := range t.Rows {
		writeRow(row)
	}
	return b.String()
}
