package strategy

import (
	"github.com/rlauff/hanabi/internal/deck"
	"github.com/rlauff/hanabi/internal/game"
)

// Manual fills a seat whose moves come from outside, the human player in
// the interactive mode. It tracks a belief state like any other agent so
// the interface can show what the player actually knows, but it never
// decides anything itself.
type Manual struct {
	view *View
}

func NewManual() *Manual {
	return &Manual{view: NewView()}
}

// Knowledge exposes the belief state for rendering
func (s *Manual) Knowledge() *View {
	return s.view
}

func (s *Manual) Initialize(partnerHand []deck.Card) {
	s.view.Initialize(partnerHand)
}

func (s *Manual) DecideMove() game.Move {
	panic("strategy: manual seat is driven externally")
}

func (s *Manual) UpdateAfterOwnMove(mv game.Move, res game.MoveResult, drew bool) {
	s.view.ObserveOwn(mv, res, drew)
}

func (s *Manual) UpdateAfterPartnerMove(mv game.Move, res game.MoveResult) {
	s.view.ObservePartner(mv, res)
}
