package solver

import "chopsticks/game"

// Node is one unit of the built graph: a Standard decision position, a
// Terminal finished game, or a Loop back-reference. The set is closed; the
// builder, classifier and policy type-switch over it exhaustively and panic
// on anything else.
type Node interface {
	isNode()
}

// Transition is an outgoing edge of a Standard node, kept in
// move-generation order.
type Transition struct {
	Move game.Move
	Next Node
}

// Standard wraps a non-terminal position and its outgoing transitions. It
// is registered in the builder's registry before its children exist, so a
// descendant can refer back to it while it is still under construction.
type Standard struct {
	ID          int64
	State       game.GameState
	Transitions []Transition
}

// Terminal wraps a position that is already over. Loser is the side of the
// wrapped state that has no hands left.
type Terminal struct {
	ID    int64
	State game.GameState
	Loser game.Side
}

// Loop records that traversal reached a state whose Standard node already
// exists, possibly still mid-construction. It holds a reference to that
// node and never duplicates it.
type Loop struct {
	Target *Standard
}

func (*Standard) isNode() {}
func (*Terminal) isNode() {}
func (*Loop) isNode()     {}

// Resolve follows Loop indirection to the underlying Standard or Terminal.
func Resolve(n Node) Node {
	if l, ok := n.(*Loop); ok {
		return l.Target
	}
	return n
}

// ID returns the arena identifier of a node, resolving Loop indirection.
func ID(n Node) int64 {
	switch n := n.(type) {
	case *Standard:
		return n.ID
	case *Terminal:
		return n.ID
	case *Loop:
		return n.Target.ID
	default:
		panic("unexpected node type")
	}
}

// StateOf returns the position a node wraps, resolving Loop indirection.
func StateOf(n Node) game.GameState {
	switch n := Resolve(n).(type) {
	case *Standard:
		return n.State
	case *Terminal:
		return n.State
	default:
		panic("unexpected node type")
	}
}
