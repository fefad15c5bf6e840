package render

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"chopsticks/solver"
)

// dotNode labels a graph node with its position and verdict for DOT output.
type dotNode struct {
	graph.Node
	label string
	color string
}

func (n dotNode) DOTID() string { return fmt.Sprintf("n%d", n.ID()) }

func (n dotNode) Attributes() []encoding.Attribute {
	return []encoding.Attribute{
		{Key: "label", Value: n.label},
		{Key: "style", Value: "filled"},
		{Key: "fillcolor", Value: n.color},
	}
}

// Export converts the classified graph into a gonum directed graph. Loop
// edges collapse onto their targets, so cycles appear as real back edges.
// Self loops are dropped; simple graphs cannot hold them.
func Export(g *solver.Graph, statuses solver.StatusMap) *simple.DirectedGraph {
	dg := simple.NewDirectedGraph()

	for _, n := range g.Standards {
		dg.AddNode(dotNode{
			Node:  simple.Node(n.ID),
			label: fmt.Sprintf("%s\n%s", n.State, statuses[n]),
			color: statusColor(statuses[n]),
		})
	}
	for _, term := range g.Terminals {
		dg.AddNode(dotNode{
			Node:  simple.Node(term.ID),
			label: fmt.Sprintf("%s\nover", term.State),
			color: "lightblue",
		})
	}

	for _, n := range g.Standards {
		for _, tr := range n.Transitions {
			to := solver.ID(tr.Next)
			if to == n.ID {
				continue
			}
			dg.SetEdge(dg.NewEdge(dg.Node(n.ID), dg.Node(to)))
		}
	}
	return dg
}

func statusColor(s solver.Status) string {
	switch s {
	case solver.StatusWin:
		return "green"
	case solver.StatusLose:
		return "red"
	case solver.StatusDraw:
		return "yellow"
	default:
		return "lightgray"
	}
}

// MarshalDOT renders the classified graph in Graphviz DOT form.
func MarshalDOT(g *solver.Graph, statuses solver.StatusMap) ([]byte, error) {
	return dot.Marshal(Export(g, statuses), "chopsticks", "", "  ")
}

// CycleClusters counts the strongly connected components holding more than
// one position: the regions a game can circle inside forever.
func CycleClusters(g *solver.Graph, statuses solver.StatusMap) int {
	clusters := 0
	for _, scc := range topo.TarjanSCC(Export(g, statuses)) {
		if len(scc) > 1 {
			clusters++
		}
	}
	return clusters
}
