package engine

import (
	"golang.org/x/exp/rand"

	"chopsticks/solver"
)

// Strategy picks one of the transitions at a decision node.
type Strategy interface {
	Pick(n *solver.Standard) (solver.Transition, bool)
}

// Solved plays the first best reply from a completed solve.
type Solved struct {
	Statuses solver.StatusMap
}

func (s Solved) Pick(n *solver.Standard) (solver.Transition, bool) {
	best := solver.BestMoves(n, s.Statuses)
	if len(best) == 0 {
		return solver.Transition{}, false
	}
	return best[0], true
}

// Random plays uniformly over the legal transitions.
type Random struct {
	Rng *rand.Rand
}

func (r Random) Pick(n *solver.Standard) (solver.Transition, bool) {
	if len(n.Transitions) == 0 {
		return solver.Transition{}, false
	}
	return n.Transitions[r.Rng.Intn(len(n.Transitions))], true
}
