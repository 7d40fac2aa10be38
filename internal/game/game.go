// Package game implements the two-player cooperative fireworks game: the
// deterministic state machine, move legality, scoring and termination.
// All randomness enters through the deck shuffle; applying a move is a
// pure state transition.
package game

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/rlauff/hanabi/internal/deck"
)

const (
	// HandSize is the number of cards dealt to each player
	HandSize = 5
	// MaxHints is the hint token ceiling
	MaxHints = 8
	// MaxMistakes ends the game when reached
	MaxMistakes = 3
	// PerfectScore is all five fireworks completed
	PerfectScore = deck.NumSuits * deck.MaxValue
)

// Game owns the physical state: both hands, the draw pile, the fireworks,
// and the shared counters. Strategies only ever see it through the update
// callbacks and, for instrumented agents, read-only snapshots.
type Game struct {
	hands      [2][]deck.Card
	deck       *deck.Deck
	fireworks  [deck.NumSuits]int
	hints      int
	mistakes   int
	turn       int
	finalTurns int // turns taken since the deck ran dry
	strategies [2]Strategy
}

// New deals a fresh game from a shuffled deck and initializes both
// strategies with their partner's visible hand. The generator is owned by
// this game; reuse across concurrent games is not supported.
func New(rng *rand.Rand, s0, s1 Strategy) *Game {
	g := &Game{
		deck:       deck.NewShuffled(rng),
		hints:      MaxHints,
		strategies: [2]Strategy{s0, s1},
	}
	for i := 0; i < HandSize; i++ {
		for p := 0; p < 2; p++ {
			c, ok := g.deck.Draw()
			if !ok {
				panic("deck exhausted during deal")
			}
			g.hands[p] = append(g.hands[p], c)
		}
	}
	s0.Initialize(g.Hand(1))
	s1.Initialize(g.Hand(0))
	return g
}

// LegalMoves enumerates the current player's legal moves in deterministic
// order: play and discard per occupied slot, then value hints 1..5, then
// suit hints in suit order. Hints require a token and a matching card in
// the partner's hand.
func (g *Game) LegalMoves() []Move {
	moves := make([]Move, 0, 2*HandSize+10)
	for i := range g.hands[g.turn] {
		moves = append(moves, Play(i), Discard(i))
	}
	if g.hints > 0 {
		other := g.hands[1-g.turn]
		for v := 1; v <= deck.MaxValue; v++ {
			if handHasValue(other, v) {
				moves = append(moves, HintValue(v))
			}
		}
		for _, s := range deck.Suits {
			if handHasSuit(other, s) {
				moves = append(moves, HintSuit(s))
			}
		}
	}
	return moves
}

// Advance asks the current player's strategy for a move and applies it
func (g *Game) Advance() (Move, MoveResult) {
	mv := g.strategies[g.turn].DecideMove()
	return mv, g.ApplyMove(mv)
}

// ApplyMove applies mv for the current player, delivers the outcome to
// both strategies, and passes the turn. Illegal moves are caller bugs and
// panic; a conforming strategy never produces them.
func (g *Game) ApplyMove(mv Move) MoveResult {
	wasEmpty := g.deck.IsEmpty()

	var res MoveResult
	switch mv.Kind {
	case MovePlay:
		res = g.applyPlay(mv.Slot)
	case MoveDiscard:
		res = g.applyDiscard(mv.Slot)
	case MoveHintSuit, MoveHintValue:
		res = g.applyHint(mv)
	default:
		panic(fmt.Sprintf("apply: invalid move %+v", mv))
	}

	mover := g.turn
	drew := res.Drawn != nil
	g.strategies[mover].UpdateAfterOwnMove(mv, res.forMover(), drew)
	g.strategies[1-mover].UpdateAfterPartnerMove(mv, res)

	// Once the draw pile is empty each player gets exactly one more turn.
	if wasEmpty {
		g.finalTurns++
	}
	g.turn = 1 - g.turn
	return res
}

func (g *Game) applyPlay(slot int) MoveResult {
	card := g.removeFromHand(slot)
	res := MoveResult{Card: card}
	if g.fireworks[card.Suit()]+1 == card.Value() {
		g.fireworks[card.Suit()]++
		res.Success = true
	} else {
		g.mistakes++
	}
	res.Drawn = g.drawReplacement()
	return res
}

func (g *Game) applyDiscard(slot int) MoveResult {
	card := g.removeFromHand(slot)
	if g.hints < MaxHints {
		g.hints++
	}
	return MoveResult{Card: card, Drawn: g.drawReplacement()}
}

func (g *Game) applyHint(mv Move) MoveResult {
	if g.hints <= 0 {
		panic("hint given with no hint tokens remaining")
	}
	other := g.hands[1-g.turn]
	var touched []int
	for i, c := range other {
		switch mv.Kind {
		case MoveHintSuit:
			if c.Suit() == mv.Suit {
				touched = append(touched, i)
			}
		case MoveHintValue:
			if c.Value() == mv.Value {
				touched = append(touched, i)
			}
		}
	}
	if len(touched) == 0 {
		panic(fmt.Sprintf("hint %v matches no card in partner's hand", mv))
	}
	g.hints--
	return MoveResult{Touched: touched, Mask: mv.HintMask()}
}

func (g *Game) removeFromHand(slot int) deck.Card {
	hand := g.hands[g.turn]
	if slot < 0 || slot >= len(hand) {
		panic(fmt.Sprintf("slot %d out of range for hand of %d", slot, len(hand)))
	}
	card := hand[slot]
	g.hands[g.turn] = append(hand[:slot], hand[slot+1:]...)
	return card
}

func (g *Game) drawReplacement() *deck.Card {
	c, ok := g.deck.Draw()
	if !ok {
		return nil
	}
	g.hands[g.turn] = append(g.hands[g.turn], c)
	return &c
}

// Over reports whether the game has ended and, if so, the final score.
// Termination: three mistakes, a perfect 25, or both players having taken
// their final turn after the deck ran dry. The score is the fireworks sum
// on every path; loss bookkeeping is the caller's concern.
func (g *Game) Over() (int, bool) {
	switch {
	case g.mistakes >= MaxMistakes:
		return g.Score(), true
	case g.Score() == PerfectScore:
		return g.Score(), true
	case g.deck.IsEmpty() && g.finalTurns >= 2:
		return g.Score(), true
	}
	return 0, false
}

// Score returns the current fireworks sum
func (g *Game) Score() int {
	total := 0
	for _, f := range g.fireworks {
		total += f
	}
	return total
}

// Hand returns a copy of player p's hand
func (g *Game) Hand(p int) []deck.Card {
	out := make([]deck.Card, len(g.hands[p]))
	copy(out, g.hands[p])
	return out
}

// Fireworks returns the per-suit progress counters
func (g *Game) Fireworks() [deck.NumSuits]int {
	return g.fireworks
}

// HintsRemaining returns the hint token count
func (g *Game) HintsRemaining() int {
	return g.hints
}

// MistakesMade returns the mistake counter
func (g *Game) MistakesMade() int {
	return g.mistakes
}

// CurrentPlayer returns whose turn it is (0 or 1)
func (g *Game) CurrentPlayer() int {
	return g.turn
}

// DeckRemaining returns the number of cards left in the draw pile
func (g *Game) DeckRemaining() int {
	return g.deck.Remaining()
}

// Snapshot returns a read-only copy of the full ground truth
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Hands:     [2][]deck.Card{g.Hand(0), g.Hand(1)},
		DeckCards: g.deck.Cards(),
		Fireworks: g.fireworks,
		Hints:     g.hints,
		Mistakes:  g.mistakes,
		Turn:      g.turn,
	}
}

func handHasSuit(hand []deck.Card, s deck.Suit) bool {
	for _, c := range hand {
		if c.Suit() == s {
			return true
		}
	}
	return false
}

func handHasValue(hand []deck.Card, v int) bool {
	for _, c := range hand {
		if c.Value() == v {
			return true
		}
	}
	return false
}
