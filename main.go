package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"chopsticks/config"
	"chopsticks/engine"
	"chopsticks/render"
	"chopsticks/solver"
	"chopsticks/web"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML run configuration")
	draw := flag.Bool("draw", false, "write the decision-tree image (and DOT file if configured)")
	play := flag.Bool("play", false, "run a solved-vs-random playout after solving")
	serve := flag.Bool("serve", false, "serve the solve over HTTP after solving")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal().Msgf("failed to load config: %v", err)
		}
	}

	initial, err := cfg.InitialState()
	if err != nil {
		log.Fatal().Msgf("bad starting position: %v", err)
	}

	log.Info().Msgf("building graph from %s (threshold=%d modular=%t split=%s)",
		initial, cfg.Rules.Threshold, cfg.Rules.Modular, cfg.Rules.SplitRule)
	graph := solver.Build(initial)
	statuses := solver.Classify(graph)

	report(graph, statuses)

	if *draw {
		drawGraph(cfg, graph, statuses)
	}
	if *play {
		runPlayout(graph, statuses)
	}
	if *serve {
		server := web.NewServer(graph, statuses)
		if err := server.ListenAndServe(cfg.Serve.Addr); err != nil {
			log.Fatal().Msgf("server stopped: %v", err)
		}
	}
}

func report(graph *solver.Graph, statuses solver.StatusMap) {
	fmt.Printf("Reachable states: %d\n", len(graph.Standards))

	tally := statuses.Tally()
	fmt.Printf("Counts: WIN=%d LOSE=%d DRAW=%d\n",
		tally[solver.StatusWin], tally[solver.StatusLose], tally[solver.StatusDraw])

	root := solver.Resolve(graph.Root)
	fmt.Printf("\nStart state: %s => %s\n", solver.StateOf(root), statuses.Of(root))

	std, ok := root.(*solver.Standard)
	if !ok {
		return
	}

	fmt.Println("\nBest moves from the start:")
	for _, tr := range solver.BestMoves(std, statuses) {
		fmt.Printf("  %-4s -> %s which is %s\n",
			tr.Move, solver.StateOf(tr.Next), statuses.Of(tr.Next))
	}

	fmt.Println("\nBest line:")
	for i, tr := range solver.BestLine(std, statuses) {
		fmt.Printf("  %2d. %-4s -> %s (%s)\n",
			i+1, tr.Move, solver.StateOf(tr.Next), statuses.Of(tr.Next))
	}
}

func drawGraph(cfg config.Config, graph *solver.Graph, statuses solver.StatusMap) {
	opts := render.Options{
		DepthLimit:    cfg.Render.DepthLimit,
		StopAtDecided: cfg.Render.StopAtDecided,
	}
	if err := render.DrawPNG(graph.Root, statuses, opts, cfg.Render.Output); err != nil {
		log.Fatal().Msgf("failed to draw tree: %v", err)
	}
	log.Info().Msgf("wrote %s", cfg.Render.Output)

	if cfg.Render.DOTOutput != "" {
		data, err := render.MarshalDOT(graph, statuses)
		if err != nil {
			log.Fatal().Msgf("failed to export DOT: %v", err)
		}
		if err := os.WriteFile(cfg.Render.DOTOutput, data, 0644); err != nil {
			log.Fatal().Msgf("failed to write DOT file: %v", err)
		}
		log.Info().Msgf("wrote %s", cfg.Render.DOTOutput)
	}

	fmt.Printf("\nCycle clusters: %d\n", render.CycleClusters(graph, statuses))
}

func runPlayout(graph *solver.Graph, statuses solver.StatusMap) {
	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	e := engine.New(graph.Root,
		engine.Solved{Statuses: statuses},
		engine.Random{Rng: rng},
	)

	result := e.Run()
	switch result.Winner {
	case -1:
		fmt.Printf("\nPlayout: no result within %d moves\n", e.MaxTurns)
	case 0:
		fmt.Printf("\nPlayout: the solved player won in %d moves\n", len(result.Moves))
	default:
		fmt.Printf("\nPlayout: the random player won in %d moves\n", len(result.Moves))
	}
}
