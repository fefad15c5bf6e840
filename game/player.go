package game

import "fmt"

// Player is one side's pair of hands, stored higher hand first so that
// (1,4) and (4,1) are the same value. Zero on both hands means the player
// is out of the game.
type Player struct {
	hands [2]int
}

// NewPlayer normalizes the hand order into canonical form.
func NewPlayer(a, b int) Player {
	if a < b {
		a, b = b, a
	}
	return Player{hands: [2]int{a, b}}
}

// Hand returns the finger count of canonical hand i (0 or 1).
func (p Player) Hand(i int) int { return p.hands[i] }

// Hands returns both finger counts, higher first.
func (p Player) Hands() (int, int) { return p.hands[0], p.hands[1] }

// Total is the sum of both hands. Splits conserve it.
func (p Player) Total() int { return p.hands[0] + p.hands[1] }

// IsDead reports whether both hands are at zero.
func (p Player) IsDead() bool { return p.hands[0] == 0 && p.hands[1] == 0 }

func (p Player) String() string {
	return fmt.Sprintf("%d-%d", p.hands[0], p.hands[1])
}
