package game

import "fmt"

// Attack adds the mover's source hand onto the opponent's target hand.
// Indices are canonical hand positions, 0 or 1.
type Attack struct {
	Source int
	Target int
}

func (a Attack) Apply(gs GameState) (GameState, error) {
	if a.Source < 0 || a.Source > 1 {
		return GameState{}, fmt.Errorf("attack source hand %d out of range: %w", a.Source, ErrIllegalMove)
	}
	if a.Target < 0 || a.Target > 1 {
		return GameState{}, fmt.Errorf("attack target hand %d out of range: %w", a.Target, ErrIllegalMove)
	}
	src := gs.Curr.Hand(a.Source)
	if src == 0 {
		return GameState{}, fmt.Errorf("attack with dead hand %d: %w", a.Source, ErrIllegalMove)
	}
	tgt := gs.Next.Hand(a.Target)
	if tgt == 0 {
		return GameState{}, fmt.Errorf("attack on dead hand %d: %w", a.Target, ErrIllegalMove)
	}

	hands := [2]int{gs.Next.Hand(0), gs.Next.Hand(1)}
	v := tgt + src
	threshold := gs.Rules.Threshold
	if gs.Rules.Modular {
		switch {
		case v == threshold:
			v = 0
		case v > threshold:
			v %= threshold
		}
	} else if v >= threshold {
		v = 0
	}
	hands[a.Target] = v

	// Roles swap on every move: the struck opponent acts next.
	return GameState{Curr: NewPlayer(hands[0], hands[1]), Next: gs.Curr, Rules: gs.Rules}, nil
}

// String prints the canonical a<source><target> notation, 1-indexed.
func (a Attack) String() string {
	return fmt.Sprintf("a%d%d", a.Source+1, a.Target+1)
}

// Split redistributes the mover's own fingers into Result.
type Split struct {
	Result [2]int
}

func (s Split) Apply(gs GameState) (GameState, error) {
	if s.Result[0] < 0 || s.Result[1] < 0 {
		return GameState{}, fmt.Errorf("split to negative hand %v: %w", s.Result, ErrIllegalMove)
	}
	if got, want := s.Result[0]+s.Result[1], gs.Curr.Total(); got != want {
		return GameState{}, fmt.Errorf("split %v does not conserve %d fingers: %w", s.Result, want, ErrIllegalMove)
	}

	result := NewPlayer(s.Result[0], s.Result[1])
	switch gs.Rules.Split {
	case SplitRestrictive:
		if hi, lo := gs.Curr.Hands(); !(lo == 0 && (hi == 4 || hi == 2)) {
			return GameState{}, fmt.Errorf("restrictive split only from 4-0 or 2-0, not %s: %w", gs.Curr, ErrIllegalMove)
		}
	case SplitChange, SplitFree:
		if result == gs.Curr {
			return GameState{}, fmt.Errorf("split %v does not change %s: %w", s.Result, gs.Curr, ErrIllegalMove)
		}
	case SplitSuicide:
		// Zeroing a hand, or changing nothing at all, is allowed.
	default:
		panic("unknown split rule")
	}

	return GameState{Curr: gs.Next, Next: result, Rules: gs.Rules}, nil
}

// String prints the canonical s<hand1><hand2> notation.
func (s Split) String() string {
	return fmt.Sprintf("s%d%d", s.Result[0], s.Result[1])
}

// Pass swaps roles without touching either player's hands. The generator
// never emits it for the standard game; it exists for rule variants.
type Pass struct{}

func (Pass) Apply(gs GameState) (GameState, error) {
	return GameState{Curr: gs.Next, Next: gs.Curr, Rules: gs.Rules}, nil
}

func (Pass) String() string { return "pass" }
