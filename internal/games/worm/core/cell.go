package core

import "fmt"

// Cell is a grid position bound to the direction that produced it.
// The direction decides where the cell goes on the next step, which is how
// corners travel down the worm.
type Cell struct {
	point Point
	dir   Direction
}

// NewCell creates a cell at p facing d.
func NewCell(p Point, d Direction) Cell {
	return Cell{point: p, dir: d}
}

// RandomCell draws a point, then a direction, from src.
func RandomCell(src Source) Cell {
	p := RandomPoint(src)
	d := RandomDirection(src)
	return Cell{point: p, dir: d}
}

// Point returns the cell position.
func (c Cell) Point() Point {
	return c.point
}

// Direction returns the cell heading.
func (c Cell) Direction() Direction {
	return c.dir
}

// Turn changes the heading without moving.
func (c *Cell) Turn(d Direction) {
	c.dir = d
}

// Step moves the cell one unit along its own heading.
func (c *Cell) Step() {
	c.point.StepTo(c.dir)
}

// IsNextTo reports whether the two cell positions are adjacent. Headings are ignored.
func (c Cell) IsNextTo(o Cell) bool {
	return c.point.IsNextTo(o.point)
}

// IsLinked reports whether the cells are adjacent and share a heading,
// i.e. they belong to the same straight run of the chain.
func (c Cell) IsLinked(o Cell) bool {
	return c.IsNextTo(o) && c.dir == o.dir
}

// IsNextPosition reports whether p lies directly ahead of the cell.
func (c Cell) IsNextPosition(p Point) bool {
	return c.point.Step(c.dir) == p
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("%s %s", c.point, c.dir)
}
