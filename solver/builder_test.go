package solver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"chopsticks/game"
)

// miniGame is small enough to verify by hand: threshold 2, restrictive
// splits, both players starting at 1-1. Every attack kills the struck hand,
// so the whole graph is
//
//	A = 1-1/1-1 -> B = 1-0/1-1 -> C = 1-0/1-0 -> terminal 0-0/1-0
//
// with converging attack moves showing up as Loop edges.
func miniGame(t *testing.T) *Graph {
	t.Helper()
	rules, err := game.NewRuleset(2, false, game.SplitRestrictive)
	require.NoError(t, err)
	return Build(game.NewGameState(game.NewPlayer(1, 1), game.NewPlayer(1, 1), rules))
}

func standardGame(t *testing.T) *Graph {
	t.Helper()
	rules := game.NewStandardRules()
	return Build(game.NewGameState(game.NewPlayer(1, 1), game.NewPlayer(1, 1), rules))
}

func TestBuildMiniGame(t *testing.T) {
	g := miniGame(t)

	require.Len(t, g.Standards, 3, "three decision positions")
	require.Len(t, g.Terminals, 1, "one finished game")

	root, ok := g.Root.(*Standard)
	require.True(t, ok, "root is a decision node")
	require.Equal(t, "1-1/1-1", root.State.String())
	require.Len(t, root.Transitions, 4, "all four attacks, each kept with its own move identity")

	// The first attack creates the child; the other three converge on the
	// same state and become Loop back-references, never duplicates.
	first, ok := root.Transitions[0].Next.(*Standard)
	require.True(t, ok)
	require.Equal(t, "1-0/1-1", first.State.String())
	for _, tr := range root.Transitions[1:] {
		loop, ok := tr.Next.(*Loop)
		require.True(t, ok, "converging edge should be a Loop")
		require.Same(t, first, loop.Target)
	}
}

func TestBuildOneStandardNodePerState(t *testing.T) {
	g := standardGame(t)

	seen := make(map[game.StateKey]*Standard)
	for _, n := range g.Standards {
		prev, dup := seen[n.State.Key()]
		require.False(t, dup, "states %s and %s share one canonical key", n.State, prev)
		seen[n.State.Key()] = n
	}
}

func TestBuildLoopsResolveToRegisteredNodes(t *testing.T) {
	g := standardGame(t)

	registered := make(map[*Standard]struct{}, len(g.Standards))
	for _, n := range g.Standards {
		registered[n] = struct{}{}
	}

	loops := 0
	for _, n := range g.Standards {
		for _, tr := range n.Transitions {
			switch next := tr.Next.(type) {
			case *Loop:
				loops++
				_, ok := registered[next.Target]
				require.True(t, ok, "loop target must be a registered node")
			case *Standard, *Terminal:
			default:
				t.Fatalf("unexpected node type %T", next)
			}
		}
	}
	require.Greater(t, loops, 0, "the standard game has re-entrant move sequences")
}

func TestBuildBoundedBySaturatedRegistry(t *testing.T) {
	g := standardGame(t)

	// Canonical alive hand pairs number 14 per player, so there can be at
	// most 196 decision positions. Reaching this line at all is the
	// termination argument in action.
	require.LessOrEqual(t, len(g.Standards), 196)
	require.Greater(t, len(g.Standards), 10)
}

func TestBuildNoStateMovesFromDeadHands(t *testing.T) {
	g := standardGame(t)

	for _, n := range g.Standards {
		require.False(t, n.State.IsTerminal(), "decision node wraps a live position")
		require.False(t, n.State.Curr.IsDead(), "nobody moves from 0-0")
	}
	for _, term := range g.Terminals {
		require.True(t, term.State.IsTerminal())
	}
}
