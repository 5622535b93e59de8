// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package table renders bordered text tables for the terminal.
package table

import (
	"bytes"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

const (
	boldOn  = "\x1b[1m"
	boldOff = "\x1b[22m"
)

// Align is the horizontal alignment of a column.
type Align int

const (
	Left Align = iota
	Right
)

// Cell is a single table cell.
type Cell struct {
	Text string
	Bold bool
}

// Table is a grid of cells with an optional bold title row.
type Table struct {
	Title []Cell
	Rows  [][]Cell
	// Align holds the alignment of the data cells per column. Missing columns are left aligned,
	// the title row is always left aligned.
	Align []Align
	// Bold enables ANSI bold for the title row and for bold cells.
	Bold bool
}

// New returns a table with the given title cells rendered bold.
func New(title ...string) *Table {
	cells := make([]Cell, len(title))
	for i, text := range title {
		cells[i] = Cell{Text: text, Bold: true}
	}
	return &Table{Title: cells}
}

// Append adds a row to the table.
func (t *Table) Append(row ...Cell) {
	t.Rows = append(t.Rows, row)
}

// Render writes the table to w.
//
//	+------+-------+
//	| ID   | Water |
//	+------+-------+
//	| 2135 | Aare  |
//	+------+-------+
func (t *Table) Render(w io.Writer) error {
	columns := t.columns()
	if columns == 0 {
		return nil
	}

	// tablewriter drops write errors, so the table is rendered into a buffer first
	buf := bytes.NewBuffer(nil)
	writer := tablewriter.NewWriter(buf)
	writer.SetAutoWrapText(false)
	writer.SetAutoFormatHeaders(false)
	writer.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	writer.SetColumnAlignment(t.alignments(columns))
	if len(t.Title) > 0 {
		writer.SetHeader(t.texts(t.Title, columns))
	}
	for _, row := range t.Rows {
		writer.Append(t.texts(row, columns))
	}
	writer.Render()

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	return nil
}

func (t *Table) columns() int {
	columns := len(t.Title)
	for _, row := range t.Rows {
		columns = max(columns, len(row))
	}
	return columns
}

func (t *Table) alignments(columns int) []int {
	aligns := make([]int, columns)
	for i := range aligns {
		aligns[i] = tablewriter.ALIGN_LEFT
		if i < len(t.Align) && t.Align[i] == Right {
			aligns[i] = tablewriter.ALIGN_RIGHT
		}
	}
	return aligns
}

// texts returns the cell texts of row padded to columns. Bold cells carry ANSI escapes, which
// tablewriter leaves out of the column width.
func (t *Table) texts(row []Cell, columns int) []string {
	texts := make([]string, columns)
	for i, cell := range row {
		texts[i] = cell.Text
		if t.Bold && cell.Bold {
			texts[i] = boldOn + cell.Text + boldOff
		}
	}
	return texts
}
