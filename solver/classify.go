package solver

import "golang.org/x/exp/maps"

// Status is the game-theoretic verdict for the player to act at a node.
type Status int

const (
	StatusUnknown Status = iota
	StatusWin
	StatusLose
	StatusDraw
)

func (s Status) String() string {
	switch s {
	case StatusUnknown:
		return "UNKNOWN"
	case StatusWin:
		return "WIN"
	case StatusLose:
		return "LOSE"
	case StatusDraw:
		return "DRAW"
	default:
		panic("unknown status")
	}
}

// StatusMap holds one verdict per Standard and Terminal node. Loop nodes
// take the verdict of their target; use Of to resolve.
type StatusMap map[Node]Status

// Of resolves Loop indirection before lookup.
func (m StatusMap) Of(n Node) Status {
	return m[Resolve(n)]
}

// Tally counts verdicts by status, for reporting.
func (m StatusMap) Tally() map[Status]int {
	counts := make(map[Status]int, 3)
	for _, s := range maps.Values(m) {
		counts[s]++
	}
	return counts
}

// Classify assigns WIN, LOSE or DRAW to every node of the graph by
// retrograde analysis: verdicts propagate backward from the positions that
// are already decided, and whatever the propagation never reaches (the
// cycles with no escape to a terminal) is a draw. The fixed point is
// correct on cyclic graphs, where plain minimax recursion would not
// terminate.
func Classify(g *Graph) StatusMap {
	// Parents index over resolved edges. A parent appears once per
	// distinct child, and remaining counts distinct children, so a double
	// edge to one child cannot strand the counter above zero.
	parents := make(map[Node][]*Standard)
	remaining := make(map[*Standard]int)
	for _, n := range g.Standards {
		seen := make(map[Node]struct{}, len(n.Transitions))
		for _, tr := range n.Transitions {
			child := Resolve(tr.Next)
			if _, dup := seen[child]; dup {
				continue
			}
			seen[child] = struct{}{}
			parents[child] = append(parents[child], n)
		}
		remaining[n] = len(seen)
	}

	statuses := make(StatusMap, len(g.Standards)+len(g.Terminals))
	queue := make([]Node, 0, len(g.Terminals))

	// Seed with the immediately lost positions. A terminal node is LOSE by
	// definition: the side to move there is the side that has already
	// lost. A standard node without moves is the same position one step
	// earlier.
	for _, t := range g.Terminals {
		statuses[t] = StatusLose
		queue = append(queue, t)
	}
	for _, n := range g.Standards {
		if len(n.Transitions) == 0 {
			statuses[n] = StatusLose
			queue = append(queue, n)
		}
	}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		verdict := statuses[node]

		for _, parent := range parents[node] {
			if _, done := statuses[parent]; done {
				continue
			}
			switch verdict {
			case StatusLose:
				// The parent can move into a position its opponent
				// loses.
				statuses[parent] = StatusWin
				queue = append(queue, parent)
			case StatusWin:
				remaining[parent]--
				if remaining[parent] == 0 {
					// Every option hands the opponent the win.
					statuses[parent] = StatusLose
					queue = append(queue, parent)
				}
			default:
				panic("propagating an undecided verdict")
			}
		}
	}

	// Never reached from any seed: optimal play circles forever.
	for _, n := range g.Standards {
		if _, ok := statuses[n]; !ok {
			statuses[n] = StatusDraw
		}
	}
	return statuses
}
