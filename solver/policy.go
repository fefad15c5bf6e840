package solver

import "chopsticks/game"

// BestMoves ranks a node's transitions by how good the reached position is
// for the mover: children the opponent loses come first, then draws, then
// everything else ("avoid if possible"). The first non-empty bucket is
// returned in generation order with duplicate target states dropped.
func BestMoves(n *Standard, statuses StatusMap) []Transition {
	var winning, drawing []Transition
	for _, tr := range n.Transitions {
		switch statuses.Of(tr.Next) {
		case StatusLose:
			winning = append(winning, tr)
		case StatusDraw:
			drawing = append(drawing, tr)
		}
	}

	switch {
	case len(winning) > 0:
		return dedupTargets(winning)
	case len(drawing) > 0:
		return dedupTargets(drawing)
	default:
		return dedupTargets(n.Transitions)
	}
}

// BestLine follows the first best reply from root until the game ends or a
// position repeats, yielding the optimal line of play.
func BestLine(root Node, statuses StatusMap) []Transition {
	var line []Transition
	visited := make(map[*Standard]struct{})

	node := Resolve(root)
	for {
		std, ok := node.(*Standard)
		if !ok {
			return line
		}
		if _, repeated := visited[std]; repeated {
			return line
		}
		visited[std] = struct{}{}

		best := BestMoves(std, statuses)
		if len(best) == 0 {
			return line
		}
		line = append(line, best[0])
		node = Resolve(best[0].Next)
	}
}

// dedupTargets keeps the first transition per resolved target state.
func dedupTargets(trs []Transition) []Transition {
	seen := make(map[game.StateKey]struct{}, len(trs))
	out := make([]Transition, 0, len(trs))
	for _, tr := range trs {
		key := StateOf(tr.Next).Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tr)
	}
	return out
}
