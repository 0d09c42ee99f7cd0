// Package contact renders the contact sheet: every asset as a centered
// thumbnail on a fixed grid, labelled with its id and role, so a person can
// verify the role assignment and orientation at a glance.
package contact

import "image"

// Layout is the contact sheet grid: fixed-size tiles, Columns per row.
type Layout struct {
	TileW   int
	TileH   int
	Columns int
}

// Rows returns the number of rows needed for n tiles.
func (l Layout) Rows(n int) int {
	return (n + l.Columns - 1) / l.Columns
}

// Size returns the sheet dimensions for n tiles.
func (l Layout) Size(n int) (int, int) {
	return l.Columns * l.TileW, l.Rows(n) * l.TileH
}

// Origin returns the top-left corner of a thumbW×thumbH thumbnail centered
// in tile idx (row-major, 0-based).
func (l Layout) Origin(idx, thumbW, thumbH int) image.Point {
	col, row := idx%l.Columns, idx/l.Columns
	return image.Pt(
		col*l.TileW+floorDiv(l.TileW-thumbW, 2),
		row*l.TileH+floorDiv(l.TileH-thumbH, 2),
	)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
