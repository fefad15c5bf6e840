package engine

import (
	"github.com/rs/zerolog/log"

	"chopsticks/game"
	"chopsticks/meta"
	"chopsticks/solver"
)

// Engine steps two strategies through the built graph until one of them
// runs out of hands or the turn cap is hit. It only reads the graph and the
// verdicts; it never mutates them.
type Engine struct {
	Root       solver.Node
	Strategies [2]Strategy
	MaxTurns   int
}

func New(root solver.Node, first, second Strategy) *Engine {
	return &Engine{
		Root:       root,
		Strategies: [2]Strategy{first, second},
		MaxTurns:   meta.MAX_TURNS,
	}
}

// Result of one playout. Winner is the 0-based index of the strategy that
// won, or -1 when the turn cap ran out first.
type Result struct {
	Moves  []game.Move
	Winner int
}

// Run plays a single game from the root.
func (e *Engine) Run() Result {
	log.Info().Msgf("playout starting from %s", solver.StateOf(e.Root))

	node := solver.Resolve(e.Root)
	mover := 0
	var moves []game.Move

	for turn := 1; turn <= e.MaxTurns; turn++ {
		switch n := node.(type) {
		case *solver.Terminal:
			loser := mover
			if n.Loser == game.SideOpponent {
				loser = 1 - mover
			}
			log.Info().Msgf("game over after %d moves", len(moves))
			return Result{Moves: moves, Winner: 1 - loser}
		case *solver.Standard:
			tr, ok := e.Strategies[mover].Pick(n)
			if !ok {
				// Nothing to play: the mover is stuck and loses.
				return Result{Moves: moves, Winner: 1 - mover}
			}
			moves = append(moves, tr.Move)
			node = solver.Resolve(tr.Next)
			mover = 1 - mover
		default:
			panic("unexpected node type")
		}
	}

	log.Info().Msgf("turn cap %d reached without a result", e.MaxTurns)
	return Result{Moves: moves, Winner: -1}
}
