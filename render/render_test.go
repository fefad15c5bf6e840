package render

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"chopsticks/game"
	"chopsticks/solver"
)

func solvedStandardGame(t *testing.T) (*solver.Graph, solver.StatusMap) {
	t.Helper()
	rules := game.NewStandardRules()
	g := solver.Build(game.NewGameState(game.NewPlayer(1, 1), game.NewPlayer(1, 1), rules))
	return g, solver.Classify(g)
}

func TestExportCarriesEveryNode(t *testing.T) {
	g, statuses := solvedStandardGame(t)

	dg := Export(g, statuses)
	require.Equal(t, len(g.Standards)+len(g.Terminals), dg.Nodes().Len())

	// Every resolved transition that is not a self loop becomes an edge.
	for _, n := range g.Standards {
		for _, tr := range n.Transitions {
			to := solver.ID(tr.Next)
			if to == n.ID {
				continue
			}
			require.True(t, dg.HasEdgeFromTo(n.ID, to),
				"missing edge %d->%d", n.ID, to)
		}
	}
}

func TestMarshalDOT(t *testing.T) {
	g, statuses := solvedStandardGame(t)

	data, err := MarshalDOT(g, statuses)
	require.NoError(t, err)
	text := string(data)
	require.True(t, strings.HasPrefix(text, "strict digraph"))
	require.Contains(t, text, "digraph chopsticks")
	require.Contains(t, text, "fillcolor")
	require.Contains(t, text, "1-1/1-1", "the root position is labeled")
}

func TestCycleClusters(t *testing.T) {
	rules := game.NewStandardRules()
	n1 := &solver.Standard{ID: 0, State: game.NewGameState(game.NewPlayer(1, 1), game.NewPlayer(1, 1), rules)}
	n2 := &solver.Standard{ID: 1, State: game.NewGameState(game.NewPlayer(2, 1), game.NewPlayer(1, 1), rules)}
	n1.Transitions = []solver.Transition{{Move: game.Pass{}, Next: n2}}
	n2.Transitions = []solver.Transition{{Move: game.Pass{}, Next: &solver.Loop{Target: n1}}}
	g := &solver.Graph{Root: n1, Standards: []*solver.Standard{n1, n2}}
	statuses := solver.Classify(g)

	require.Equal(t, 1, CycleClusters(g, statuses), "the two positions form one cycle cluster")
}

func TestDrawPNG(t *testing.T) {
	g, statuses := solvedStandardGame(t)
	path := filepath.Join(t.TempDir(), "tree.png")

	opts := Options{DepthLimit: 6, StopAtDecided: true}
	require.NoError(t, DrawPNG(g.Root, statuses, opts, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err, "output must be a decodable PNG")
	require.Positive(t, img.Bounds().Dx())
	require.Positive(t, img.Bounds().Dy())
}
