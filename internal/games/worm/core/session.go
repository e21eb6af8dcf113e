package core

import "fmt"

// Start selects how a session places its first cell.
type Start string

const (
	// StartRandom places a single cell at a random point with a random heading.
	StartRandom Start = "random"
	// StartOrigin places a single cell at (0,0) facing Up.
	StartOrigin Start = "origin"
)

// ParseStart validates a start mode name.
func ParseStart(s string) (Start, error) {
	switch Start(s) {
	case StartRandom, StartOrigin:
		return Start(s), nil
	}
	return StartRandom, fmt.Errorf("core: unknown start mode %q", s)
}

// View is a read-only picture of a session for renderers.
// Ticks and Eaten are counters for logs and game snapshots, not a score.
type View struct {
	Head      Point
	Direction Direction
	Size      int
	Body      []Point // Head first
	Food      Point
	Ticks     uint64 // Ticks run so far
	Eaten     int    // Food eaten so far
}

// Session owns a worm, the food and the randomness source.
// It is not safe for concurrent use; frontends call it from their loop only.
type Session struct {
	src   Source
	worm  *Worm
	food  Point
	ticks uint64
	eaten int
}

// NewSession creates a worm according to start, then places food from src.
func NewSession(src Source, start Start) *Session {
	var w *Worm
	if start == StartOrigin {
		w = NewDefaultWorm()
	} else {
		w = NewWorm(src)
	}
	return &Session{
		src:  src,
		worm: w,
		food: RandomPoint(src),
	}
}

// NewSessionWith creates a session around an existing worm and food position.
// src is only used for later food placement.
func NewSessionWith(src Source, w *Worm, food Point) *Session {
	return &Session{
		src:  src,
		worm: w,
		food: food,
	}
}

// Tick runs one simulation step: eat if the food is directly ahead, respawn
// food after a successful eat, then advance the worm. One step per tick.
func (s *Session) Tick() {
	if s.worm.Eat(s.food) {
		s.eaten++
		s.food = RandomPoint(s.src)
	}
	s.worm.Step()
	s.ticks++
}

// Turn points the worm head at d. The last turn before a tick wins.
func (s *Session) Turn(d Direction) {
	s.worm.Turn(d)
}

// TurnUp points the worm head Up.
func (s *Session) TurnUp() { s.Turn(Up) }

// TurnDown points the worm head Down.
func (s *Session) TurnDown() { s.Turn(Down) }

// TurnLeft points the worm head Left.
func (s *Session) TurnLeft() { s.Turn(Left) }

// TurnRight points the worm head Right.
func (s *Session) TurnRight() { s.Turn(Right) }

// Alive reports whether the worm has not run into itself.
func (s *Session) Alive() bool {
	return !s.worm.IsCrashed()
}

// Worm returns the session worm.
func (s *Session) Worm() *Worm {
	return s.worm
}

// Food returns the current food position.
func (s *Session) Food() Point {
	return s.food
}

// Snapshot returns the state a renderer needs.
func (s *Session) Snapshot() View {
	return View{
		Head:      s.worm.Head(),
		Direction: s.worm.Direction(),
		Size:      s.worm.Size(),
		Body:      s.worm.Points(),
		Food:      s.food,
		Ticks:     s.ticks,
		Eaten:     s.eaten,
	}
}
