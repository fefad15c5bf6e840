package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"chopsticks/game"
	"chopsticks/meta"
)

// Config is the YAML-described run configuration. Bad values fail at load
// time, before any traversal starts.
type Config struct {
	Rules  RulesConfig  `yaml:"rules"`
	Start  StartConfig  `yaml:"start"`
	Render RenderConfig `yaml:"render"`
	Serve  ServeConfig  `yaml:"serve"`
}

type RulesConfig struct {
	Threshold int    `yaml:"threshold"`
	Modular   bool   `yaml:"modular"`
	SplitRule string `yaml:"split_rule"`
}

type StartConfig struct {
	Player1 [2]int `yaml:"player1"`
	Player2 [2]int `yaml:"player2"`
}

type RenderConfig struct {
	DepthLimit    int    `yaml:"depth_limit"`
	StopAtDecided bool   `yaml:"stop_at_decided"`
	Output        string `yaml:"output"`
	DOTOutput     string `yaml:"dot_output"`
}

type ServeConfig struct {
	Addr string `yaml:"addr"`
}

// Default mirrors the schoolyard game.
func Default() Config {
	return Config{
		Rules: RulesConfig{
			Threshold: meta.THRESHOLD,
			SplitRule: string(game.SplitRestrictive),
		},
		Start: StartConfig{
			Player1: [2]int{meta.START_FINGERS, meta.START_FINGERS},
			Player2: [2]int{meta.START_FINGERS, meta.START_FINGERS},
		},
		Render: RenderConfig{
			DepthLimit:    meta.DEPTH_LIMIT,
			StopAtDecided: true,
			Output:        "decision_tree.png",
		},
		Serve: ServeConfig{Addr: ":8080"},
	}
}

// Load reads a YAML config file on top of the defaults and validates it.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if _, err := cfg.InitialState(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Ruleset builds the validated Ruleset the config describes.
func (c Config) Ruleset() (*game.Ruleset, error) {
	split, err := game.ParseSplitRule(c.Rules.SplitRule)
	if err != nil {
		return nil, err
	}
	return game.NewRuleset(c.Rules.Threshold, c.Rules.Modular, split)
}

// InitialState builds the root position with the configured rules.
func (c Config) InitialState() (game.GameState, error) {
	rules, err := c.Ruleset()
	if err != nil {
		return game.GameState{}, err
	}
	for _, hands := range [][2]int{c.Start.Player1, c.Start.Player2} {
		if hands[0] < 0 || hands[1] < 0 {
			return game.GameState{}, fmt.Errorf("negative start hands %v: %w", hands, game.ErrBadConfig)
		}
		// A hand at or above the threshold would already have died (or
		// wrapped, under the modular variant); no live play reaches it.
		if hands[0] >= rules.Threshold || hands[1] >= rules.Threshold {
			return game.GameState{}, fmt.Errorf("start hands %v exceed threshold %d: %w", hands, rules.Threshold, game.ErrBadConfig)
		}
	}
	return game.NewGameState(
		game.NewPlayer(c.Start.Player1[0], c.Start.Player1[1]),
		game.NewPlayer(c.Start.Player2[0], c.Start.Player2[1]),
		rules,
	), nil
}
