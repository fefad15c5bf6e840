package game

import "fmt"

// SplitRule selects which redistributions of a player's own fingers are
// legal.
type SplitRule string

const (
	// SplitRestrictive allows a split only from a 4-0 or 2-0 hand pattern.
	SplitRestrictive SplitRule = "restrictive"
	// SplitChange allows any redistribution that changes the canonical
	// hands.
	SplitChange SplitRule = "change"
	// SplitFree allows any redistribution; like SplitChange the result
	// must differ from the current hands.
	SplitFree SplitRule = "free"
	// SplitSuicide allows any redistribution, including ones that zero a
	// hand or change nothing at all.
	SplitSuicide SplitRule = "suicide"
)

// ParseSplitRule maps a configuration tag to a SplitRule.
func ParseSplitRule(tag string) (SplitRule, error) {
	switch SplitRule(tag) {
	case SplitRestrictive, SplitChange, SplitFree, SplitSuicide:
		return SplitRule(tag), nil
	default:
		return "", fmt.Errorf("unknown split rule %q: %w", tag, ErrBadConfig)
	}
}

// Ruleset holds the parameters governing move legality and transition
// effects. It is constructed once and never mutated.
type Ruleset struct {
	// Threshold is the finger count at which a hand dies.
	Threshold int
	// Modular makes a hand die only at exactly Threshold; anything above
	// wraps via remainder instead.
	Modular bool
	// Split is the active splitting rule.
	Split SplitRule
}

// NewRuleset validates the parameters up front so traversal never sees a
// malformed configuration.
func NewRuleset(threshold int, modular bool, split SplitRule) (*Ruleset, error) {
	if threshold < 1 {
		return nil, fmt.Errorf("threshold %d < 1: %w", threshold, ErrBadConfig)
	}
	if _, err := ParseSplitRule(string(split)); err != nil {
		return nil, err
	}
	return &Ruleset{Threshold: threshold, Modular: modular, Split: split}, nil
}

// NewStandardRules is the schoolyard game: hands die at five fingers and
// splits are allowed only from 4-0 or 2-0.
func NewStandardRules() *Ruleset {
	return &Ruleset{Threshold: 5, Modular: false, Split: SplitRestrictive}
}
