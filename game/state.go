package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// GameState is an ordered pair of players, the one to move first, plus the
// ruleset in effect. States are immutable; Apply always returns a new value.
type GameState struct {
	Curr  Player
	Next  Player
	Rules *Ruleset
}

// NewGameState builds a state with curr to move.
func NewGameState(curr, next Player, rules *Ruleset) GameState {
	return GameState{Curr: curr, Next: next, Rules: rules}
}

// StateKey is the identity of a state: the canonical pair only. The ruleset
// is shared context, never part of identity.
type StateKey struct {
	Curr Player
	Next Player
}

// Key returns the identity of the state for registry lookups.
func (gs GameState) Key() StateKey {
	return StateKey{Curr: gs.Curr, Next: gs.Next}
}

// Hash is a stable 64-bit digest of the canonical pair, used as node
// identity on the wire and in exported graphs.
func (gs GameState) Hash() StateHash {
	hasher := fnv.New64a()
	for _, p := range [...]Player{gs.Curr, gs.Next} {
		binary.Write(hasher, binary.LittleEndian, int64(p.Hand(0)))
		binary.Write(hasher, binary.LittleEndian, int64(p.Hand(1)))
	}
	return StateHash(hasher.Sum64())
}

// IsTerminal reports whether either player is out of the game.
func (gs GameState) IsTerminal() bool {
	return gs.Curr.IsDead() || gs.Next.IsDead()
}

// Loser returns the dead side of a terminal state. Only meaningful after
// IsTerminal.
func (gs GameState) Loser() Side {
	switch {
	case gs.Curr.IsDead():
		return SideToMove
	case gs.Next.IsDead():
		return SideOpponent
	default:
		panic("loser of a non-terminal state")
	}
}

// Winner returns the surviving side of a terminal state. Only meaningful
// after IsTerminal.
func (gs GameState) Winner() Side {
	if gs.Loser() == SideToMove {
		return SideOpponent
	}
	return SideToMove
}

func (gs GameState) String() string {
	return fmt.Sprintf("%s/%s", gs.Curr, gs.Next)
}

// LegalMoves enumerates every legal move for the player to act: all four
// attack index pairs plus the splits the active rule admits. Candidates are
// vetted by attempting Apply; the ones that fail are dropped, so the result
// never contains an illegal move.
func (gs GameState) LegalMoves() []Move {
	var moves []Move
	for src := 0; src < 2; src++ {
		for dst := 0; dst < 2; dst++ {
			m := Attack{Source: src, Target: dst}
			if _, err := m.Apply(gs); err == nil {
				moves = append(moves, m)
			}
		}
	}
	for _, m := range gs.splitCandidates() {
		if _, err := m.Apply(gs); err == nil {
			moves = append(moves, m)
		}
	}
	return moves
}

// splitCandidates proposes redistributions without judging legality.
func (gs GameState) splitCandidates() []Move {
	if gs.Rules.Split == SplitRestrictive {
		// At most one candidate: 4-0 halves to 2-2 and 2-0 to 1-1.
		if hi, lo := gs.Curr.Hands(); lo == 0 && (hi == 4 || hi == 2) {
			return []Move{Split{Result: [2]int{hi / 2, hi / 2}}}
		}
		return nil
	}

	// Every partition of the total into an ordered pair, low half first,
	// excluding the partition that changes nothing.
	total := gs.Curr.Total()
	var cands []Move
	for a := 0; a <= total/2; a++ {
		if NewPlayer(a, total-a) == gs.Curr {
			continue
		}
		cands = append(cands, Split{Result: [2]int{a, total - a}})
	}
	return cands
}
