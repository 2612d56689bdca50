// session is the game's mode state machine: title screen, playing
// through the stage table, and game over.
package session

import (
	"github.com/silbinarywolf/cygnus-x1/internal/stage"
)

// Mode is the coarse state of the session
type Mode uint8

const (
	ModeTitle Mode = iota
	ModePlaying
	ModeGameOver
)

func (mode Mode) String() string {
	switch mode {
	case ModeTitle:
		return "title"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game over"
	}
	return "unknown"
}

// Exhausted decides what happens once the last stage is cleared
type Exhausted uint8

const (
	// ExhaustGameOver moves to ModeGameOver.
	ExhaustGameOver Exhausted = iota
	// ExhaustKeepPlaying stays in ModePlaying with the stage index past
	// the end of the table, the way the early builds behaved. Renderers
	// have to bounds-check the index.
	ExhaustKeepPlaying
)

type Options struct {
	// Table defaults to stage.Default when it has no stages.
	Table       stage.Table
	OnExhausted Exhausted
}

// State is owned by the game loop and is not safe for concurrent use.
type State struct {
	table       stage.Table
	onExhausted Exhausted

	mode         Mode
	stageIndex   int
	points       int
	pointsNeeded int
	shouldExit   bool
}

func New(options Options) *State {
	table := options.Table
	if table.Len() == 0 {
		table = stage.Default
	}
	return &State{
		table:        table,
		onExhausted:  options.OnExhausted,
		mode:         ModeTitle,
		stageIndex:   1,
		pointsNeeded: table.PointsToAdvance(1),
	}
}

func (state *State) Mode() Mode {
	return state.mode
}

// StageIndex is the 1-based stage currently being played.
func (state *State) StageIndex() int {
	return state.stageIndex
}

func (state *State) Points() int {
	return state.points
}

// PointsNeeded is the threshold of the current stage.
func (state *State) PointsNeeded() int {
	return state.pointsNeeded
}

// ShouldExit reports whether Quit has been called.
func (state *State) ShouldExit() bool {
	return state.shouldExit
}

func (state *State) Table() stage.Table {
	return state.table
}

// StartGame begins play at stage 1. It does nothing outside the title
// screen.
func (state *State) StartGame() bool {
	if state.mode != ModeTitle {
		return false
	}
	state.mode = ModePlaying
	state.stageIndex = 1
	state.points = 0
	state.pointsNeeded = state.table.PointsToAdvance(1)
	return true
}

// AddPoints adds n to the score while playing. Negative n is ignored.
func (state *State) AddPoints(n int) bool {
	if state.mode != ModePlaying || n < 0 {
		return false
	}
	state.points += n
	return true
}

// TickStageAdvance is called once per frame. It moves to the next stage
// when the score has reached the threshold and reports whether it did.
func (state *State) TickStageAdvance() bool {
	if state.mode != ModePlaying {
		return false
	}
	if state.points < state.pointsNeeded {
		return false
	}
	state.stageIndex++
	state.points = 0
	if def, ok := state.table.Lookup(state.stageIndex); ok {
		state.pointsNeeded = def.PointsToAdvance
		return true
	}
	if state.onExhausted == ExhaustGameOver {
		state.mode = ModeGameOver
	}
	// ExhaustKeepPlaying keeps the last threshold
	return true
}

// ReturnToTitle resets back to the title screen from play or game over.
func (state *State) ReturnToTitle() bool {
	if state.mode == ModeTitle {
		return false
	}
	state.mode = ModeTitle
	state.stageIndex = 1
	state.points = 0
	state.pointsNeeded = state.table.PointsToAdvance(1)
	return true
}

// Quit asks the game loop to exit. Valid from any mode.
func (state *State) Quit() {
	state.shouldExit = true
}
