package game

import (
	"fmt"

	"github.com/rlauff/hanabi/internal/deck"
)

// MoveKind discriminates the four move types
type MoveKind int

const (
	MovePlay MoveKind = iota
	MoveDiscard
	MoveHintSuit
	MoveHintValue
)

// Move is one player action. It is a comparable value type so strategies
// can build, compare and return moves freely.
type Move struct {
	Kind  MoveKind
	Slot  int       // MovePlay, MoveDiscard: hand slot index
	Suit  deck.Suit // MoveHintSuit
	Value int       // MoveHintValue
}

// Play returns a move playing the card at the given hand slot
func Play(slot int) Move {
	return Move{Kind: MovePlay, Slot: slot}
}

// Discard returns a move discarding the card at the given hand slot
func Discard(slot int) Move {
	return Move{Kind: MoveDiscard, Slot: slot}
}

// HintSuit returns a hint naming every partner card of the given suit
func HintSuit(s deck.Suit) Move {
	return Move{Kind: MoveHintSuit, Suit: s}
}

// HintValue returns a hint naming every partner card of the given value
func HintValue(v int) Move {
	return Move{Kind: MoveHintValue, Value: v}
}

// String returns a short human-readable description
func (m Move) String() string {
	switch m.Kind {
	case MovePlay:
		return fmt.Sprintf("play %d", m.Slot)
	case MoveDiscard:
		return fmt.Sprintf("discard %d", m.Slot)
	case MoveHintSuit:
		return fmt.Sprintf("hint %s", m.Suit)
	case MoveHintValue:
		return fmt.Sprintf("hint %d", m.Value)
	default:
		return "invalid move"
	}
}

// IsHint reports whether the move spends a hint token
func (m Move) IsHint() bool {
	return m.Kind == MoveHintSuit || m.Kind == MoveHintValue
}

// HintMask returns the narrowing card set a hint move conveys. Calling it
// on a non-hint move is a bug.
func (m Move) HintMask() deck.CardSet {
	switch m.Kind {
	case MoveHintSuit:
		return deck.SuitSet(m.Suit)
	case MoveHintValue:
		return deck.ValueSet(m.Value)
	default:
		panic(fmt.Sprintf("HintMask on %v", m))
	}
}

// MoveResult reports the outcome of an applied move. The populated fields
// depend on the move kind: Play fills Success, Card and Drawn; Discard
// fills Card and Drawn; hints fill Touched and Mask.
type MoveResult struct {
	Success bool       // Play: the card landed on the fireworks
	Card    deck.Card  // Play/Discard: the card that left the hand
	Drawn   *deck.Card // replacement card, nil if none was drawn

	Touched []int        // Hint: matched slot indices in the receiving hand
	Mask    deck.CardSet // Hint: the narrowing mask for matched slots
}

// forMover returns the result as delivered to the acting player, with the
// drawn replacement withheld: the mover does not see its own new card.
func (r MoveResult) forMover() MoveResult {
	r.Drawn = nil
	return r
}
