package game

import "errors"

// Move is one of Attack, Split or Pass. The set is closed: every consumer
// type-switches over the three kinds and panics on anything else.
type Move interface {
	// Apply validates the move against the state it is played from and
	// returns the resulting state with roles swapped. It returns an error
	// wrapping ErrIllegalMove when validation fails.
	Apply(s GameState) (GameState, error)
	String() string
}

// Side identifies one of the two players relative to a state: the player
// whose turn it is, or their opponent.
type Side int

const (
	SideToMove Side = iota
	SideOpponent
)

func (s Side) String() string {
	switch s {
	case SideToMove:
		return "to-move"
	case SideOpponent:
		return "opponent"
	default:
		panic("unknown side")
	}
}

// StateHash is a stable digest of a canonical position.
type StateHash uint64

var (
	// ErrBadConfig reports an invalid ruleset at configuration time,
	// before any traversal happens.
	ErrBadConfig = errors.New("bad ruleset")
	// ErrIllegalMove reports a move that fails validation. The move
	// generator treats it as a filtering signal, not a failure.
	ErrIllegalMove = errors.New("illegal move")
)
