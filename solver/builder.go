package solver

import (
	"fmt"

	"chopsticks/game"
)

// Graph is the result of one build: the root plus every node created,
// addressable for classification and export. Nodes are immutable once the
// build returns.
type Graph struct {
	Root      Node
	Standards []*Standard
	Terminals []*Terminal
}

// builder owns the state registry for the lifetime of one build. The
// registry is what turns re-entrant move sequences into finite Loop back
// edges: a node is registered under its state before its children are
// explored, so any revisit below it finds the entry and stops descending.
type builder struct {
	registry map[game.StateKey]*Standard
	graph    *Graph
	nextID   int64
}

// Build explores every position reachable from initial and returns the
// graph rooted there. The ruleset travels inside the state. Termination is
// guaranteed: the set of canonical states is finite, and every call either
// produces a leaf, hits the registry, or grows it.
func Build(initial game.GameState) *Graph {
	b := &builder{
		registry: make(map[game.StateKey]*Standard),
		graph:    &Graph{},
	}
	b.graph.Root = b.explore(initial)
	return b.graph
}

func (b *builder) explore(state game.GameState) Node {
	if state.IsTerminal() {
		t := &Terminal{ID: b.allocID(), State: state, Loser: state.Loser()}
		b.graph.Terminals = append(b.graph.Terminals, t)
		return t
	}
	if existing, ok := b.registry[state.Key()]; ok {
		// The node may still be mid-construction; referencing it through
		// a Loop instead of descending again keeps the DFS finite.
		return &Loop{Target: existing}
	}

	node := &Standard{ID: b.allocID(), State: state}
	// Register before recursing so the subtree can reach back here.
	b.registry[state.Key()] = node
	b.graph.Standards = append(b.graph.Standards, node)

	// Every generated move keeps its own transition, even when two moves
	// land on the same state; consumers that need unique targets dedup
	// themselves.
	for _, move := range state.LegalMoves() {
		next, err := move.Apply(state)
		if err != nil {
			panic(fmt.Sprintf("legal move %v failed to apply: %v", move, err))
		}
		node.Transitions = append(node.Transitions, Transition{Move: move, Next: b.explore(next)})
	}
	return node
}

func (b *builder) allocID() int64 {
	id := b.nextID
	b.nextID++
	return id
}
