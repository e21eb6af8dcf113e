package worm

// GameStateType represents the current game state.
type GameStateType string

const (
	StateIdle     GameStateType = "idle"
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the game state for determinism testing and logging.
type Snapshot struct {
	Tick     uint64
	Length   int
	HeadX    int
	HeadY    int
	Dir      string
	FoodX    int
	FoodY    int
	Eaten    int
	Restarts int
	State    GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{State: StateIdle}
	}

	state := StatePlaying
	switch {
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	view := g.session.Snapshot()
	return Snapshot{
		Tick:     view.Ticks,
		Length:   view.Size,
		HeadX:    int(view.Head.X),
		HeadY:    int(view.Head.Y),
		Dir:      view.Direction.String(),
		FoodX:    int(view.Food.X),
		FoodY:    int(view.Food.Y),
		Eaten:    view.Eaten,
		Restarts: g.restarts,
		State:    state,
	}
}
