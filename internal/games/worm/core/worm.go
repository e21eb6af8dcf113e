package core

import (
	"errors"

	"github.com/gammazero/deque"
)

// ErrEmptyWorm is returned when a worm would be built without cells.
var ErrEmptyWorm = errors.New("core: worm needs at least one cell")

// Worm is the ordered chain of cells making up the snake body.
// Index 0 is the head, the last index is the tail. The chain is never empty.
type Worm struct {
	cells deque.Deque[Cell]
}

// NewWorm creates a one-cell worm at a random position and heading.
func NewWorm(src Source) *Worm {
	w := &Worm{}
	w.cells.PushBack(RandomCell(src))
	return w
}

// NewDefaultWorm creates a one-cell worm at (0,0) facing Up.
func NewDefaultWorm() *Worm {
	w := &Worm{}
	w.cells.PushBack(NewCell(Point{}, Up))
	return w
}

// NewWormFromCells builds a worm from cells given head first.
// Cells are taken as-is: overlapping positions produce a crashed worm.
func NewWormFromCells(cells ...Cell) (*Worm, error) {
	if len(cells) == 0 {
		return nil, ErrEmptyWorm
	}
	w := &Worm{}
	for _, c := range cells {
		w.cells.PushBack(c)
	}
	return w, nil
}

// Size returns the number of cells.
func (w *Worm) Size() int {
	return w.cells.Len()
}

// HeadCell returns the leading cell.
func (w *Worm) HeadCell() Cell {
	return w.cells.Front()
}

// Head returns the head position.
func (w *Worm) Head() Point {
	return w.cells.Front().Point()
}

// Direction returns the heading of the head cell.
func (w *Worm) Direction() Direction {
	return w.cells.Front().Direction()
}

// Eat grows the worm onto food when food lies directly ahead of the head.
// The new head takes the food position and the old head's heading.
// Food beside or behind the head is left alone and Eat returns false.
func (w *Worm) Eat(food Point) bool {
	head := w.cells.Front()
	if !head.IsNextPosition(food) {
		return false
	}
	w.cells.PushFront(NewCell(food, head.Direction()))
	return true
}

// Turn points the head at d. Body cells pick the turn up on later steps.
// Every direction is accepted; reversing into the body is fatal on the next step.
func (w *Worm) Turn(d Direction) {
	head := w.cells.Front()
	head.Turn(d)
	w.cells.Set(0, head)
}

// Step advances every cell one unit along its own heading, head to tail,
// then hands each cell the heading its predecessor had before the step.
// Order matters: a corrected heading is the reference for the next cell.
func (w *Worm) Step() {
	last := w.cells.Front().Direction()
	for i := range w.cells.Len() {
		c := w.cells.At(i)
		c.Step()
		if current := c.Direction(); current != last {
			c.Turn(last)
			last = current
		}
		w.cells.Set(i, c)
	}
}

// IsCrashed reports whether two cells share a position.
// A one-cell worm never crashes.
func (w *Worm) IsCrashed() bool {
	seen := make(map[Point]struct{}, w.cells.Len())
	for i := range w.cells.Len() {
		p := w.cells.At(i).Point()
		if _, dup := seen[p]; dup {
			return true
		}
		seen[p] = struct{}{}
	}
	return false
}

// Points returns the cell positions head to tail.
func (w *Worm) Points() []Point {
	points := make([]Point, w.cells.Len())
	for i := range points {
		points[i] = w.cells.At(i).Point()
	}
	return points
}

// Cells returns a copy of the chain head to tail.
func (w *Worm) Cells() []Cell {
	cells := make([]Cell, w.cells.Len())
	for i := range cells {
		cells[i] = w.cells.At(i)
	}
	return cells
}
