package strategy

import (
	"github.com/rlauff/hanabi/internal/deck"
	"github.com/rlauff/hanabi/internal/game"
)

// Oracle plays with full sight of both hands and the draw pile, an upper
// bound for what hint-bound strategies might reach. It reads the engine
// through a snapshot provider and keeps no state of its own, so the game
// stays the single source of truth.
type Oracle struct {
	seat int
	snap func() game.Snapshot
}

func NewOracle() *Oracle {
	return &Oracle{seat: -1}
}

// AttachSnapshot wires the engine's read-only state provider. The driver
// calls this once after the game is constructed.
func (o *Oracle) AttachSnapshot(seat int, snap func() game.Snapshot) {
	o.seat = seat
	o.snap = snap
}

func (o *Oracle) Initialize([]deck.Card) {}

func (o *Oracle) DecideMove() game.Move {
	if o.snap == nil {
		panic("strategy: oracle has no snapshot provider attached")
	}
	state := o.snap()
	myHand := state.Hands[o.seat]
	partnerHand := state.Hands[1-o.seat]

	// a playable card in hand always goes down first
	for i, c := range myHand {
		if playable(c, state.Fireworks) {
			return game.Play(i)
		}
	}

	myIdx, myRisk := bestDiscard(myHand, partnerHand, state.DeckCards, state.Fireworks)
	deckEmpty := len(state.DeckCards) == 0

	// without tokens the only legal non-play is a discard
	if state.Hints == 0 {
		return game.Discard(myIdx)
	}

	// with the deck empty a discard wastes the turn, and at full tokens
	// it wastes the token refund; stall with a hint either way
	if deckEmpty || state.Hints == game.MaxHints {
		return stallHint(partnerHand)
	}

	// let a partner with a playable card take the scoring turn
	for _, c := range partnerHand {
		if playable(c, state.Fireworks) {
			return stallHint(partnerHand)
		}
	}

	// whoever holds the safer throwaway makes it; two all-critical hands
	// stall instead of bleeding a suit
	_, partnerRisk := bestDiscard(partnerHand, myHand, state.DeckCards, state.Fireworks)
	if myRisk <= partnerRisk {
		if myRisk == riskCritical {
			return stallHint(partnerHand)
		}
		return game.Discard(myIdx)
	}
	return stallHint(partnerHand)
}

func (o *Oracle) UpdateAfterOwnMove(game.Move, game.MoveResult, bool) {}

func (o *Oracle) UpdateAfterPartnerMove(game.Move, game.MoveResult) {}

// discard risk classes, lower is safer to throw away
const (
	riskDead      = 0 // already on the fireworks
	riskDuplicate = 1 // another copy in the same hand
	riskCovered   = 2 // copy survives in the deck or partner's hand
	riskCritical  = 3 // last copy in the game
)

func playable(c deck.Card, fireworks [deck.NumSuits]int) bool {
	return c.Value() == fireworks[c.Suit()]+1
}

func discardRisk(c deck.Card, hand, partnerHand, deckCards []deck.Card, fireworks [deck.NumSuits]int) int {
	if c.Value() <= fireworks[c.Suit()] {
		return riskDead
	}
	if countKind(hand, c) > 1 {
		return riskDuplicate
	}
	if countKind(partnerHand, c)+countKind(deckCards, c) > 0 {
		return riskCovered
	}
	return riskCritical
}

func countKind(cards []deck.Card, kind deck.Card) int {
	n := 0
	for _, c := range cards {
		if c.Suit() == kind.Suit() && c.Value() == kind.Value() {
			n++
		}
	}
	return n
}

func bestDiscard(hand, partnerHand, deckCards []deck.Card, fireworks [deck.NumSuits]int) (int, int) {
	bestIdx, bestRisk := 0, riskCritical+1
	for i, c := range hand {
		if risk := discardRisk(c, hand, partnerHand, deckCards, fireworks); risk < bestRisk {
			bestIdx, bestRisk = i, risk
		}
	}
	return bestIdx, bestRisk
}

// stallHint burns a token without giving the turn any other effect. The
// partner's first card guarantees its own suit hint is legal.
func stallHint(partnerHand []deck.Card) game.Move {
	if len(partnerHand) > 0 {
		return game.HintSuit(partnerHand[0].Suit())
	}
	return game.HintValue(1)
}
