package game

import "github.com/rlauff/hanabi/internal/deck"

// Strategy is the capability every agent must provide. The engine calls
// Initialize once after dealing, asks the current player's strategy for a
// move each turn, and reports every applied move to both sides.
//
// DecideMove must return a move currently present in LegalMoves; anything
// else is a contract violation and aborts the game. The result passed to
// UpdateAfterOwnMove has the drawn replacement withheld (the mover does
// not see its own new card); drew reports whether a replacement arrived.
type Strategy interface {
	Initialize(partnerHand []deck.Card)
	DecideMove() Move
	UpdateAfterOwnMove(mv Move, res MoveResult, drew bool)
	UpdateAfterPartnerMove(mv Move, res MoveResult)
}

// Snapshot is a read-only copy of the full ground truth, exposed for
// display and for instrumented agents that are allowed to cheat. Mutating
// a snapshot has no effect on the game.
type Snapshot struct {
	Hands     [2][]deck.Card
	DeckCards []deck.Card // remaining draw pile, top of the pile last
	Fireworks [deck.NumSuits]int
	Hints     int
	Mistakes  int
	Turn      int
}

// SnapshotObserver is implemented by agents that consume ground truth.
// The driver attaches a snapshot provider after constructing the game;
// agents must treat the returned snapshots as read-only.
type SnapshotObserver interface {
	AttachSnapshot(seat int, snap func() Snapshot)
}
