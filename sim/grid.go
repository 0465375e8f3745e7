package sim

import "math"

// Cell holds the indices of the circles whose centres fall inside it
type Cell struct {
	Items []int
}

// Grid is a uniform spatial partition over the play area plus a margin.
// Positions outside the covered area clamp to the border cells.
type Grid struct {
	Cells    []Cell
	CellSize float64
	Cols     int
	Rows     int
	originX  float64
	originY  float64
	width    float64
	height   float64
}

// NewGrid creates a grid covering width x height with margin on every side
func NewGrid(width, height, margin, cellSize float64) *Grid {
	g := &Grid{
		originX: -margin,
		originY: -margin,
		width:   width + 2*margin,
		height:  height + 2*margin,
	}
	g.Resize(cellSize)
	return g
}

// Resize changes the cell size, reallocating cells only when the shape changes
func (g *Grid) Resize(cellSize float64) {
	cols := max(1, int(math.Ceil(g.width/cellSize)))
	rows := max(1, int(math.Ceil(g.height/cellSize)))
	g.CellSize = cellSize
	if cols == g.Cols && rows == g.Rows {
		g.Clear()
		return
	}
	g.Cols, g.Rows = cols, rows
	g.Cells = make([]Cell, cols*rows)
}

// Clear empties every cell but keeps capacity
func (g *Grid) Clear() {
	for i := range g.Cells {
		g.Cells[i].Items = g.Cells[i].Items[:0]
	}
}

// CellOf converts a position to clamped cell coordinates
func (g *Grid) CellOf(p Vec2) (int, int) {
	cx := int(math.Floor((p.X - g.originX) / g.CellSize))
	cy := int(math.Floor((p.Y - g.originY) / g.CellSize))
	cx = max(0, min(cx, g.Cols-1))
	cy = max(0, min(cy, g.Rows-1))
	return cx, cy
}

// Insert registers index idx at position p
func (g *Grid) Insert(idx int, p Vec2) {
	cx, cy := g.CellOf(p)
	c := &g.Cells[cy*g.Cols+cx]
	c.Items = append(c.Items, idx)
}

// Neighbors calls fn for every index stored in the 3x3 block around p
func (g *Grid) Neighbors(p Vec2, fn func(idx int)) {
	cx, cy := g.CellOf(p)
	for y := max(0, cy-1); y <= min(g.Rows-1, cy+1); y++ {
		for x := max(0, cx-1); x <= min(g.Cols-1, cx+1); x++ {
			for _, idx := range g.Cells[y*g.Cols+x].Items {
				fn(idx)
			}
		}
	}
}

// CollidingCircles marks every circle touching at least one other. The
// grid is rebuilt from circles; each pair is tested once.
func CollidingCircles(circles []*Circle, g *Grid) []bool {
	marked := make([]bool, len(circles))
	if len(circles) < 2 {
		return marked
	}

	maxRadius := 0.0
	for _, c := range circles {
		maxRadius = math.Max(maxRadius, c.Radius)
	}
	g.Resize(math.Max(2*maxRadius, 1))
	for i, c := range circles {
		g.Insert(i, c.Pos)
	}

	for i, c := range circles {
		g.Neighbors(c.Pos, func(j int) {
			if j <= i {
				return
			}
			if c.Overlaps(circles[j]) {
				marked[i] = true
				marked[j] = true
			}
		})
	}
	return marked
}
