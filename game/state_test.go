package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRulesetValidation(t *testing.T) {
	_, err := NewRuleset(0, false, SplitRestrictive)
	require.ErrorIs(t, err, ErrBadConfig, "threshold below 1 must fail at construction")

	_, err = NewRuleset(5, false, SplitRule("bogus"))
	require.ErrorIs(t, err, ErrBadConfig, "unrecognized split tag must fail at construction")

	r, err := NewRuleset(4, true, SplitChange)
	require.NoError(t, err)
	require.Equal(t, 4, r.Threshold)
	require.True(t, r.Modular)
}

func TestTerminalDetection(t *testing.T) {
	rules := NewStandardRules()

	over := NewGameState(NewPlayer(1, 1), NewPlayer(0, 0), rules)
	require.True(t, over.IsTerminal())
	require.Equal(t, SideOpponent, over.Loser())
	require.Equal(t, SideToMove, over.Winner())

	lost := NewGameState(NewPlayer(0, 0), NewPlayer(2, 1), rules)
	require.True(t, lost.IsTerminal())
	require.Equal(t, SideToMove, lost.Loser())

	live := NewGameState(NewPlayer(1, 1), NewPlayer(1, 1), rules)
	require.False(t, live.IsTerminal())
}

func TestStateIdentity(t *testing.T) {
	a, _ := NewRuleset(5, false, SplitRestrictive)
	b, _ := NewRuleset(5, true, SplitFree)

	s1 := NewGameState(NewPlayer(1, 4), NewPlayer(2, 0), a)
	s2 := NewGameState(NewPlayer(4, 1), NewPlayer(0, 2), b)

	require.Equal(t, s1.Key(), s2.Key(), "identity covers the canonical pair only, not the ruleset")
	require.Equal(t, s1.Hash(), s2.Hash(), "hashing is consistent with identity")

	s3 := NewGameState(NewPlayer(2, 0), NewPlayer(1, 4), a)
	require.NotEqual(t, s1.Key(), s3.Key(), "the pair is ordered: mover first")
}

func TestLegalMovesStandardStart(t *testing.T) {
	rules := NewStandardRules()
	start := NewGameState(NewPlayer(1, 1), NewPlayer(1, 1), rules)

	moves := start.LegalMoves()
	require.Len(t, moves, 4, "all four attacks and no splits from 1-1/1-1")
	// Generation order is fixed: attacks by (source,target) index pairs.
	require.Equal(t, "a11", moves[0].String())
	require.Equal(t, "a12", moves[1].String())
	require.Equal(t, "a21", moves[2].String())
	require.Equal(t, "a22", moves[3].String())
}

func TestLegalMovesRestrictiveSplit(t *testing.T) {
	rules := NewStandardRules()
	state := NewGameState(NewPlayer(4, 0), NewPlayer(1, 1), rules)

	moves := state.LegalMoves()
	var splits []Move
	for _, m := range moves {
		if _, ok := m.(Split); ok {
			splits = append(splits, m)
		}
	}
	require.Len(t, splits, 1, "exactly one restrictive split candidate from 4-0")
	require.Equal(t, "s22", splits[0].String())
}

func TestLegalMovesFreeSplits(t *testing.T) {
	rules, _ := NewRuleset(5, false, SplitFree)
	state := NewGameState(NewPlayer(2, 2), NewPlayer(1, 1), rules)

	moves := state.LegalMoves()
	var splits []string
	for _, m := range moves {
		if _, ok := m.(Split); ok {
			splits = append(splits, m.String())
		}
	}
	// Partitions of 4 minus the no-op 2-2: 0-4 and 1-3.
	require.Equal(t, []string{"s04", "s13"}, splits)
}

func TestLegalMovesNeverIllegal(t *testing.T) {
	rules, _ := NewRuleset(5, false, SplitSuicide)
	states := []GameState{
		NewGameState(NewPlayer(1, 1), NewPlayer(1, 1), rules),
		NewGameState(NewPlayer(4, 0), NewPlayer(3, 0), rules),
		NewGameState(NewPlayer(3, 2), NewPlayer(4, 4), rules),
	}
	for _, state := range states {
		for _, m := range state.LegalMoves() {
			_, err := m.Apply(state)
			require.NoError(t, err, "generated move %s must apply cleanly from %s", m, state)
		}
	}
}
