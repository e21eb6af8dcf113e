package core

import "fmt"

// Point is a position on the 256x256 torus.
// Both axes wrap: stepping past 255 yields 0 and stepping below 0 yields 255.
// Y grows upwards, so Up increments Y.
type Point struct {
	X uint8
	Y uint8
}

// P is a convenience constructor for Point.
func P(x, y uint8) Point {
	return Point{X: x, Y: y}
}

// RandomPoint draws X then Y, one byte each, from src.
func RandomPoint(src Source) Point {
	x := randomByte(src)
	y := randomByte(src)
	return Point{X: x, Y: y}
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// StepTo moves the point one unit along d, wrapping at the axis bounds.
func (p *Point) StepTo(d Direction) {
	switch d {
	case Up:
		p.Y++
	case Right:
		p.X++
	case Down:
		p.Y--
	case Left:
		p.X--
	}
}

// Step returns the point one unit along d without modifying p.
func (p Point) Step(d Direction) Point {
	p.StepTo(d)
	return p
}

// IsNextTo reports whether o is exactly one step away from p along a single axis.
// Pairs across the wrap seam (0 and 255) are adjacent; equal and diagonal points are not.
func (p Point) IsNextTo(o Point) bool {
	switch {
	case p.Y == o.Y:
		return o.X == p.X+1 || o.X == p.X-1
	case p.X == o.X:
		return o.Y == p.Y+1 || o.Y == p.Y-1
	default:
		return false
	}
}

// Compare orders points by X, then Y. It returns -1, 0 or +1.
func (p Point) Compare(o Point) int {
	switch {
	case p.X < o.X:
		return -1
	case p.X > o.X:
		return 1
	case p.Y < o.Y:
		return -1
	case p.Y > o.Y:
		return 1
	default:
		return 0
	}
}

// Less reports whether p sorts before o.
func (p Point) Less(o Point) bool {
	return p.Compare(o) < 0
}
