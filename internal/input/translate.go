package input

import (
	"strings"

	"github.com/silbinarywolf/cygnus-x1/internal/session"
)

// EscapeAction is what escape does while playing or on game over
type EscapeAction string

const (
	// EscapeExit quits the game
	EscapeExit EscapeAction = "exit"
	// EscapeTitle goes back to the title screen
	EscapeTitle EscapeAction = "title"
)

func (action EscapeAction) Valid() bool {
	return action == EscapeExit || action == EscapeTitle
}

// UnmarshalText accepts any value; Valid is checked by the config layer.
func (action *EscapeAction) UnmarshalText(text []byte) error {
	*action = EscapeAction(strings.ToLower(strings.TrimSpace(string(text))))
	return nil
}

// Translator turns input events into session transitions.
type Translator struct {
	// ScoreIncrement is the points awarded per scoring key press
	ScoreIncrement int
	Escape         EscapeAction
}

func NewTranslator(scoreIncrement int, escape EscapeAction) Translator {
	if !escape.Valid() {
		escape = EscapeExit
	}
	return Translator{
		ScoreIncrement: scoreIncrement,
		Escape:         escape,
	}
}

// Apply consumes a single event. It reports whether the event changed
// the session; events that mean nothing in the current mode are
// ignored.
func (tr Translator) Apply(ev Event, state *session.State) bool {
	if ev.Kind == EventQuit {
		state.Quit()
		return true
	}
	if ev.Kind != EventKeyDown {
		return false
	}
	switch state.Mode() {
	case session.ModeTitle:
		switch ev.Key {
		case Key1:
			return state.StartGame()
		case Key2:
			state.Quit()
			return true
		}
	case session.ModePlaying:
		switch ev.Key {
		case Key1, KeySpace:
			return state.AddPoints(tr.ScoreIncrement)
		case KeyEscape:
			return tr.escape(state)
		}
	case session.ModeGameOver:
		switch ev.Key {
		case KeyEscape:
			return tr.escape(state)
		case Key2:
			state.Quit()
			return true
		}
	}
	return false
}

func (tr Translator) escape(state *session.State) bool {
	if tr.Escape == EscapeTitle {
		return state.ReturnToTitle()
	}
	state.Quit()
	return true
}

// Drain applies every pending event from src and returns how many were
// consumed. Once the session has been asked to exit, the rest of the
// queue is consumed without being applied.
func (tr Translator) Drain(src Source, state *session.State) int {
	n := 0
	for {
		ev, ok := src.Poll()
		if !ok {
			return n
		}
		n++
		if state.ShouldExit() {
			continue
		}
		tr.Apply(ev, state)
	}
}
