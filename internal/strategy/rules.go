package strategy

import (
	"github.com/rlauff/hanabi/internal/deck"
	"github.com/rlauff/hanabi/internal/game"
)

// Rules is a fixed priority ladder: play what is certainly playable,
// save the partner's endangered chop card, clue playable cards, clue
// soon-playable cards, discard the safest-looking slot, and stall with a
// hint when tokens are full. No tunable weights, no randomness.
type Rules struct {
	view *View
}

func NewRules() *Rules {
	return &Rules{view: NewView()}
}

func (s *Rules) Initialize(partnerHand []deck.Card) {
	s.view.Initialize(partnerHand)
}

func (s *Rules) DecideMove() game.Move {
	v := s.view

	// play a certain card, newest slot first
	for i := len(v.Own) - 1; i >= 0; i-- {
		if v.CertainlyPlayable(i) {
			return game.Play(i)
		}
	}

	// the chop is the oldest untouched slot, the card a conventional
	// partner discards next
	chop := 0
	for i := range v.PartnerKnow {
		if v.PartnerKnow[i] == deck.Full() {
			chop = i
			break
		}
	}

	// save the chop card if losing it would strand its suit
	if v.Hints > 0 && len(v.PartnerHand) > 0 {
		if atRisk := v.PartnerHand[chop]; v.IsCriticalCard(atRisk) {
			return game.HintValue(atRisk.Value())
		}
	}

	if v.Hints > 0 {
		if mv, ok := s.playClue(); ok {
			return mv
		}
		if v.Hints > 1 {
			if mv, ok := s.setupClue(); ok {
				return mv
			}
		}
	}

	if v.Hints < game.MaxHints {
		return game.Discard(s.bestDiscardSlot())
	}

	// full tokens force a stall
	if len(v.PartnerHand) > 0 {
		return game.HintValue(v.PartnerHand[len(v.PartnerHand)-1].Value())
	}
	return game.Discard(0)
}

// playClue looks for a hint that leaves the partner certain some card is
// playable, preferring low values so the cheap plays come first.
func (s *Rules) playClue() (game.Move, bool) {
	v := s.view
	for target := 1; target <= deck.MaxValue; target++ {
		for i, card := range v.PartnerHand {
			if card.Value() != target || !v.IsPlayableCard(card) {
				continue
			}
			if v.KnowledgeImpliesPlayable(v.PartnerKnow[i]) {
				continue // partner already knows
			}
			bySuit := v.PartnerKnow[i].Intersect(deck.SuitSet(card.Suit()))
			if bySuit != v.PartnerKnow[i] && v.KnowledgeImpliesPlayable(bySuit) {
				return game.HintSuit(card.Suit()), true
			}
			byValue := v.PartnerKnow[i].Intersect(deck.ValueSet(card.Value()))
			if byValue != v.PartnerKnow[i] && v.KnowledgeImpliesPlayable(byValue) {
				return game.HintValue(card.Value()), true
			}
		}
	}
	return game.Move{}, false
}

// setupClue marks an untouched partner card that is close to playable or
// a five, so it survives the partner's next discard.
func (s *Rules) setupClue() (game.Move, bool) {
	v := s.view
	for i, card := range v.PartnerHand {
		if v.PartnerKnow[i] != deck.Full() || v.IsUselessCard(card) {
			continue
		}
		if d := v.Distance(card); (d >= 0 && d <= 1) || card.Value() == deck.MaxValue {
			return game.HintValue(card.Value()), true
		}
	}
	return game.Move{}, false
}

// bestDiscardSlot rates each slot: certainly dead cards are prime
// discards, hinted slots are protected, and otherwise the slot is scored
// by how unlikely it is critical and how far from playable it sits.
func (s *Rules) bestDiscardSlot() int {
	v := s.view
	bestIdx := 0
	bestScore := -1.0e9
	for i := range v.Own {
		score := s.discardScore(i)
		if score > bestScore {
			bestIdx, bestScore = i, score
		}
	}
	return bestIdx
}

func (s *Rules) discardScore(i int) float64 {
	v := s.view
	if v.CertainlyUseless(i) {
		return 1000
	}

	possible := v.Own[i].Intersect(v.Unseen)
	total := possible.Count()
	if total == 0 {
		return 0
	}
	if v.Own[i] != deck.Full() {
		return -1000 // a hinted slot was marked for a reason
	}

	criticalCount := 0
	distanceSum := 0
	for _, c := range possible.Cards() {
		if v.IsCriticalCard(c) {
			criticalCount++
		}
		if d := v.Distance(c); d < 0 {
			distanceSum += 20
		} else {
			distanceSum += d
		}
	}

	score := 100.0
	score -= float64(criticalCount) / float64(total) * 5000
	score += float64(distanceSum) / float64(total)
	return score
}

func (s *Rules) UpdateAfterOwnMove(mv game.Move, res game.MoveResult, drew bool) {
	s.view.ObserveOwn(mv, res, drew)
}

func (s *Rules) UpdateAfterPartnerMove(mv game.Move, res game.MoveResult) {
	s.view.ObservePartner(mv, res)
}
