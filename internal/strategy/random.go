package strategy

import (
	"math/rand/v2"

	"github.com/rlauff/hanabi/internal/deck"
	"github.com/rlauff/hanabi/internal/game"
)

// Random picks uniformly among its legal moves. A baseline for the
// benchmark tables, not a serious player.
type Random struct {
	view *View
	rng  *rand.Rand
}

func NewRandom(rng *rand.Rand) *Random {
	return &Random{view: NewView(), rng: rng}
}

func (s *Random) Initialize(partnerHand []deck.Card) {
	s.view.Initialize(partnerHand)
}

func (s *Random) DecideMove() game.Move {
	var moves []game.Move
	for i := range s.view.Own {
		moves = append(moves, game.Play(i), game.Discard(i))
	}
	if s.view.Hints > 0 {
		for value := 1; value <= deck.MaxValue; value++ {
			if mv := game.HintValue(value); len(s.view.HintTouched(mv)) > 0 {
				moves = append(moves, mv)
			}
		}
		for _, suit := range deck.Suits {
			if mv := game.HintSuit(suit); len(s.view.HintTouched(mv)) > 0 {
				moves = append(moves, mv)
			}
		}
	}
	return moves[s.rng.IntN(len(moves))]
}

func (s *Random) UpdateAfterOwnMove(mv game.Move, res game.MoveResult, drew bool) {
	s.view.ObserveOwn(mv, res, drew)
}

func (s *Random) UpdateAfterPartnerMove(mv game.Move, res game.MoveResult) {
	s.view.ObservePartner(mv, res)
}

// RandomPlay plays a random slot every turn. It exists to put a floor
// under the score table: any strategy worth keeping beats it.
type RandomPlay struct {
	handSize int
	rng      *rand.Rand
}

func NewRandomPlay(rng *rand.Rand) *RandomPlay {
	return &RandomPlay{handSize: game.HandSize, rng: rng}
}

func (s *RandomPlay) Initialize([]deck.Card) {}

func (s *RandomPlay) DecideMove() game.Move {
	return game.Play(s.rng.IntN(s.handSize))
}

func (s *RandomPlay) UpdateAfterOwnMove(mv game.Move, res game.MoveResult, drew bool) {
	if !drew {
		s.handSize--
	}
}

func (s *RandomPlay) UpdateAfterPartnerMove(game.Move, game.MoveResult) {}
