package render

import (
	"image/color"
	"unicode/utf8"
)

type cell struct {
	r rune
	c color.RGBA
}

// Canvas is one frame of the terminal, drawn off screen.
type Canvas struct {
	Columns, Rows int
	cells         []cell
}

func NewCanvas(columns, rows int) *Canvas {
	c := &Canvas{Columns: columns, Rows: rows, cells: make([]cell, columns*rows)}
	c.Clear()
	return c
}

func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{r: ' '}
	}
}

// Set draws a rune, clipping anything outside the canvas. Rows and columns
// are zero based.
func (c *Canvas) Set(row, column int, r rune, col color.RGBA) {
	if row < 0 || row >= c.Rows || column < 0 || column >= c.Columns {
		return
	}
	c.cells[row*c.Columns+column] = cell{r: r, c: col}
}

func (c *Canvas) Text(row, column int, s string, col color.RGBA) {
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		c.Set(row, column, r, col)
		column++
		s = s[size:]
	}
}

func (c *Canvas) At(row, column int) (rune, color.RGBA) {
	if row < 0 || row >= c.Rows || column < 0 || column >= c.Columns {
		return 0, color.RGBA{}
	}
	x := c.cells[row*c.Columns+column]
	return x.r, x.c
}

// Line is the text of a row without colour.
func (c *Canvas) Line(row int) string {
	rs := make([]rune, c.Columns)
	for i := range rs {
		rs[i], _ = c.At(row, i)
	}
	return string(rs)
}
