// Package core provides the worm simulation: wraparound points, directed
// cells, the worm chain and the session that ticks it.
// This package is UI-agnostic and deterministic for a given Source.
package core

// Direction is one of the four headings a cell can carry.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists every direction in declaration order.
var Directions = [...]Direction{Up, Right, Down, Left}

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return d
	}
}

// RandomDirection picks a direction from one byte of src, reduced modulo 4.
func RandomDirection(src Source) Direction {
	return Directions[randomByte(src)%4]
}
