package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// State is the screen the game is on.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
	StateBoardFull // Snake covers the whole grid; counts as a win
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	case StateBoardFull:
		return "board_full"
	default:
		return "unknown"
	}
}

// Ended reports whether the state follows a finished game.
func (s State) Ended() bool {
	return s == StateGameOver || s == StateBoardFull
}

// Event drives the state machine. Input events come from the player;
// Tick from the clock; Crash and BoardFull from the simulation.
type Event int

const (
	EventNone Event = iota
	EventStart
	EventCancel
	EventQuit
	EventSteer
	EventTick
	EventCrash
	EventBoardFull
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventStart:
		return "start"
	case EventCancel:
		return "cancel"
	case EventQuit:
		return "quit"
	case EventSteer:
		return "steer"
	case EventTick:
		return "tick"
	case EventCrash:
		return "crash"
	case EventBoardFull:
		return "board_full"
	default:
		return "unknown"
	}
}

// EventFor maps a player action to a state machine event.
func EventFor(a core.Action) Event {
	if a.IsDirection() {
		return EventSteer
	}
	switch a {
	case core.ActionConfirm:
		return EventStart
	case core.ActionBack:
		return EventCancel
	case core.ActionQuit:
		return EventQuit
	}
	return EventNone
}

// Command is the side effect the game performs for a transition.
type Command int

const (
	CmdNone      Command = iota
	CmdNewGame           // Reset snake, relocate food, zero the score
	CmdTerminate         // Stop the program
	CmdSteer             // Forward the direction to the snake
	CmdSimulate          // Run one simulation tick
	CmdEndGame           // Record the high score
)

// Transition returns the next state and the command to run for an event.
// Pairs not listed keep the state and run nothing.
func Transition(s State, e Event) (State, Command) {
	if e == EventQuit {
		return s, CmdTerminate
	}

	switch s {
	case StateMenu:
		switch e {
		case EventStart:
			return StatePlaying, CmdNewGame
		case EventCancel:
			return s, CmdTerminate
		}

	case StatePlaying:
		switch e {
		case EventSteer:
			return s, CmdSteer
		case EventCancel:
			return StateMenu, CmdNone
		case EventTick:
			return s, CmdSimulate
		case EventCrash:
			return StateGameOver, CmdEndGame
		case EventBoardFull:
			return StateBoardFull, CmdEndGame
		}

	case StateGameOver, StateBoardFull:
		switch e {
		case EventStart:
			return StatePlaying, CmdNewGame
		case EventCancel:
			return StateMenu, CmdNone
		}
	}

	return s, CmdNone
}
