package render

import "github.com/lixenwraith/sixer/core"

// HUDRows is the number of status rows above the playfield
const HUDRows = 2

// Viewport maps playfield units onto terminal cells
type Viewport struct {
	Field core.Area
	Cols  int
	Rows  int // rows available to the playfield, below the HUD
}

// NewViewport fits field into a screen of the given size
func NewViewport(field core.Area, screenW, screenH int) Viewport {
	rows := screenH - HUDRows
	if rows < 1 {
		rows = 1
	}
	if screenW < 1 {
		screenW = 1
	}
	return Viewport{Field: field, Cols: screenW, Rows: rows}
}

// Cell returns the screen cell for a playfield point, ok=false when off-screen
func (v Viewport) Cell(p core.Point) (x, y int, ok bool) {
	if v.Field.Width <= 0 || v.Field.Height <= 0 {
		return 0, 0, false
	}
	fx := (p.X - float64(v.Field.X)) / float64(v.Field.Width)
	fy := (p.Y - float64(v.Field.Y)) / float64(v.Field.Height)
	if fx < 0 || fx >= 1 || fy < 0 || fy >= 1 {
		return 0, 0, false
	}
	return int(fx * float64(v.Cols)), HUDRows + int(fy*float64(v.Rows)), true
}

// Row returns the screen row for a playfield y, clamped to the playfield rows
func (v Viewport) Row(y float64) int {
	fy := (y - float64(v.Field.Y)) / float64(v.Field.Height)
	row := int(fy * float64(v.Rows))
	if row < 0 {
		row = 0
	}
	if row >= v.Rows {
		row = v.Rows - 1
	}
	return HUDRows + row
}

// Col returns the screen column for a playfield x, clamped to the screen
func (v Viewport) Col(x float64) int {
	fx := (x - float64(v.Field.X)) / float64(v.Field.Width)
	col := int(fx * float64(v.Cols))
	if col < 0 {
		col = 0
	}
	if col >= v.Cols {
		col = v.Cols - 1
	}
	return col
}
