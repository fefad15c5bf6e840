package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"chopsticks/solver"
)

// Server exposes a completed solve read-only: JSON summaries and node
// detail over HTTP, and the same answers over a websocket feed. It never
// mutates the graph or the verdicts it is handed.
type Server struct {
	graph    *solver.Graph
	statuses solver.StatusMap
	nodes    map[int64]solver.Node
	upgrader websocket.Upgrader
}

func NewServer(g *solver.Graph, statuses solver.StatusMap) *Server {
	nodes := make(map[int64]solver.Node, len(g.Standards)+len(g.Terminals))
	for _, n := range g.Standards {
		nodes[n.ID] = n
	}
	for _, term := range g.Terminals {
		nodes[term.ID] = term
	}
	return &Server{graph: g, statuses: statuses, nodes: nodes}
}

// Handler builds the route table on a local mux rather than the global
// DefaultServeMux.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/summary", s.handleSummary)
	mux.HandleFunc("/api/node", s.handleNode)
	mux.HandleFunc("/ws", s.handleWS)
	return mux
}

// ListenAndServe blocks serving the solve on addr.
func (s *Server) ListenAndServe(addr string) error {
	log.Info().Msgf("serving solve on %s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

type summary struct {
	Root            int64          `json:"root"`
	RootStatus      string         `json:"rootStatus"`
	ReachableStates int            `json:"reachableStates"`
	Tally           map[string]int `json:"tally"`
}

type transitionJSON struct {
	Move   string `json:"move"`
	Target int64  `json:"target"`
	Status string `json:"status"`
	Loop   bool   `json:"loop,omitempty"`
}

type nodeJSON struct {
	ID          int64            `json:"id"`
	State       string           `json:"state"`
	Hash        uint64           `json:"hash"`
	Kind        string           `json:"kind"`
	Status      string           `json:"status"`
	Transitions []transitionJSON `json:"transitions,omitempty"`
	BestMoves   []transitionJSON `json:"bestMoves,omitempty"`
}

func (s *Server) summary() summary {
	tally := make(map[string]int, 3)
	for status, count := range s.statuses.Tally() {
		tally[status.String()] = count
	}
	root := solver.Resolve(s.graph.Root)
	return summary{
		Root:            solver.ID(root),
		RootStatus:      s.statuses.Of(root).String(),
		ReachableStates: len(s.graph.Standards),
		Tally:           tally,
	}
}

func (s *Server) describe(node solver.Node) nodeJSON {
	switch n := node.(type) {
	case *solver.Terminal:
		return nodeJSON{
			ID:     n.ID,
			State:  n.State.String(),
			Hash:   uint64(n.State.Hash()),
			Kind:   "terminal",
			Status: s.statuses[n].String(),
		}
	case *solver.Standard:
		out := nodeJSON{
			ID:     n.ID,
			State:  n.State.String(),
			Hash:   uint64(n.State.Hash()),
			Kind:   "standard",
			Status: s.statuses[n].String(),
		}
		for _, tr := range n.Transitions {
			out.Transitions = append(out.Transitions, s.describeTransition(tr))
		}
		for _, tr := range solver.BestMoves(n, s.statuses) {
			out.BestMoves = append(out.BestMoves, s.describeTransition(tr))
		}
		return out
	default:
		panic("unexpected node type")
	}
}

func (s *Server) describeTransition(tr solver.Transition) transitionJSON {
	_, isLoop := tr.Next.(*solver.Loop)
	return transitionJSON{
		Move:   tr.Move.String(),
		Target: solver.ID(tr.Next),
		Status: s.statuses.Of(tr.Next).String(),
		Loop:   isLoop,
	}
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.summary())
}

func (s *Server) handleNode(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		http.Error(w, "bad node id: "+err.Error(), http.StatusBadRequest)
		return
	}
	node, ok := s.nodes[id]
	if !ok {
		http.Error(w, fmt.Sprintf("no node %d", id), http.StatusNotFound)
		return
	}
	writeJSON(w, s.describe(node))
}

// handleWS pushes the summary on connect, then answers node lookups: the
// client sends {"id": n}, the server replies with the node detail.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Msgf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	if err := conn.WriteJSON(s.summary()); err != nil {
		return
	}
	for {
		var req struct {
			ID int64 `json:"id"`
		}
		if err := conn.ReadJSON(&req); err != nil {
			return
		}
		node, ok := s.nodes[req.ID]
		if !ok {
			if err := conn.WriteJSON(map[string]string{"error": fmt.Sprintf("no node %d", req.ID)}); err != nil {
				return
			}
			continue
		}
		if err := conn.WriteJSON(s.describe(node)); err != nil {
			return
		}
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Msgf("failed to encode response: %v", err)
	}
}
