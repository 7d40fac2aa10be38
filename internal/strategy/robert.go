package strategy

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/rlauff/hanabi/internal/deck"
	"github.com/rlauff/hanabi/internal/game"
)

// Robert scores every candidate move with a weighted heuristic and takes
// the best one. Play moves are rated by the chance the card lands,
// discards by the chance the card is already dead plus how starved for
// hint tokens the pair is, hints by how much they shrink the partner's
// possibility masks. The only state beyond the belief masks is the slot
// of the last single-card hint received, which earns a bonus when played.
type Robert struct {
	view    *View
	params  Params
	logger  *log.Logger
	focused int // slot of the last single-card hint received, -1 if none
}

// NewRobert builds the heuristic agent with the given weights
func NewRobert(params Params, logger *log.Logger) *Robert {
	return &Robert{
		view:    NewView(),
		params:  params,
		logger:  logger,
		focused: -1,
	}
}

func (r *Robert) Initialize(partnerHand []deck.Card) {
	r.view.Initialize(partnerHand)
}

// DecideMove rates every candidate and returns the highest-scoring one.
// Ties and NaN scores resolve to the earliest candidate, so a decision is
// a pure function of the belief state.
func (r *Robert) DecideMove() game.Move {
	best := game.Move{}
	bestScore := math.Inf(-1)
	for _, mv := range r.candidates() {
		if score := r.scoreMove(mv); score > bestScore {
			best, bestScore = mv, score
		}
	}
	r.logger.Debug("move chosen", "move", best, "score", bestScore)
	return best
}

// candidates enumerates plays and discards per slot, then value hints,
// then suit hints. Hints that would match no partner card are skipped so
// every candidate is legal.
func (r *Robert) candidates() []game.Move {
	var moves []game.Move
	for i := range r.view.Own {
		moves = append(moves, game.Play(i), game.Discard(i))
	}
	if r.view.Hints > 0 {
		for value := 1; value <= deck.MaxValue; value++ {
			mv := game.HintValue(value)
			if len(r.view.HintTouched(mv)) > 0 {
				moves = append(moves, mv)
			}
		}
		for _, s := range deck.Suits {
			mv := game.HintSuit(s)
			if len(r.view.HintTouched(mv)) > 0 {
				moves = append(moves, mv)
			}
		}
	}
	return moves
}

func (r *Robert) scoreMove(mv game.Move) float64 {
	switch mv.Kind {
	case game.MovePlay:
		return r.scorePlay(mv.Slot) * r.params.PlayBase
	case game.MoveDiscard:
		return r.scoreDiscard(mv.Slot) * r.params.DiscardBase
	default:
		return r.scoreHint(mv) * r.params.HintBase
	}
}

const certain = 1.0 - 1e-14

func (r *Robert) scorePlay(idx int) float64 {
	v := r.view
	score := 0.0

	if r.focused == idx {
		score += r.params.PlayFocusedBonus
	}

	probability := v.ProbabilityPlayable(idx)
	// one more mistake loses everything, never gamble here
	if probability < certain && v.Mistakes == game.MaxMistakes-1 {
		return 0
	}
	score += math.Pow(probability, float64(r.params.PlayProbabilityExponent)) * r.params.PlayPlayabilityWeight
	if probability > certain {
		score += r.params.PlaySureBonus
	}

	// a miss costs more the closer we are to losing; the offset keeps
	// early misses from dominating the term
	score -= (1 - probability) * float64(v.Mistakes+5) * r.params.PlayMistakeWeight

	score -= (1 - probability) * v.ProbabilityOnlyCopyLeft(idx) * r.params.CriticalLossWeight

	// forward-looking bonuses need the exact identity of the card
	card, known := v.ExactCard(idx)
	if !known || !v.IsPlayableCard(card) {
		return score
	}
	if card.Value() == deck.MaxValue {
		// finishing a suit also refunds nothing for the partner to chain
		// on, so the bonus stands alone
		score += r.params.PlayFiveBonus
		return score
	}

	for j, partnerCard := range v.PartnerHand {
		if partnerCard.Suit() != card.Suit() {
			continue
		}
		if partnerCard.Value() == card.Value()+1 {
			// this play unlocks the partner's card
			score += r.params.PlayMakePlayable
			score += r.partnerProbabilityAfterPlay(card, j, v.PartnerProbabilityPlayable) * r.params.PlayMakePlayableKnown
		}
		if partnerCard.Value() == card.Value() {
			// the partner's copy turns dead
			score += r.params.PlayMakeDiscardable
			score += r.partnerProbabilityAfterPlay(card, j, v.PartnerProbabilityDiscardable) * r.params.PlayMakeDiscardableKnown
		}
	}
	return score
}

// partnerProbabilityAfterPlay evaluates a partner-perspective probability
// in the hypothetical state where card has already landed.
func (r *Robert) partnerProbabilityAfterPlay(card deck.Card, slot int, prob func(int, *game.Move) float64) float64 {
	r.view.Fireworks[card.Suit()]++
	p := prob(slot, nil)
	r.view.Fireworks[card.Suit()]--
	return p
}

func (r *Robert) scoreDiscard(idx int) float64 {
	v := r.view
	score := 0.0

	probability := v.ProbabilityDiscardable(idx)
	score += math.Pow(probability, float64(r.params.DiscardProbabilityExponent)) * r.params.DiscardProbabilityWeight
	score += float64(game.MaxHints-v.Hints) * r.params.DiscardNeedHintsWeight
	score -= (1 - probability) * r.params.DiscardMistakeWeight
	score -= (1 - probability) * v.ProbabilityOnlyCopyLeft(idx) * r.params.CriticalLossWeight

	return math.Max(score, 0)
}

func (r *Robert) scoreHint(mv game.Move) float64 {
	v := r.view
	score := 0.0

	// information gain: the exponent favors hints that pin a slot down
	// over hints that shave a little off many slots
	excluded := v.ExcludedByHint(mv)
	for i := range v.PartnerKnow {
		gain := float64(excluded[i]) / float64(v.PartnerKnow[i].Count())
		score += math.Pow(1+gain*r.params.HintInfoWeight, float64(r.params.HintInfoExponent)) - 1
	}

	touched := v.HintTouched(mv)
	if len(touched) == 1 {
		idx := touched[0]
		card := v.PartnerHand[idx]
		if v.IsPlayableCard(card) {
			// worthless if the partner already knows
			if v.PartnerProbabilityPlayable(idx, nil) < 0.99 {
				score += r.params.HintFocusedBonus
			}
		} else if card.Value() > v.Fireworks[card.Suit()]+1 {
			// a single-card hint reads as "play me", punish the bait
			score -= r.params.HintFocusedBonus
		}
	}

	for i := range v.PartnerKnow {
		if v.PartnerProbabilityPlayable(i, &mv) > 0.99 && v.PartnerProbabilityPlayable(i, nil) < 0.99 {
			score += r.params.HintMakePlayable
		}
		if v.PartnerProbabilityDiscardable(i, &mv) > 0.99 && v.PartnerProbabilityDiscardable(i, nil) < 0.99 {
			score += r.params.HintMakeDiscardable
		}
	}
	return score
}

func (r *Robert) UpdateAfterOwnMove(mv game.Move, res game.MoveResult, drew bool) {
	r.view.ObserveOwn(mv, res, drew)
	if mv.Kind == game.MovePlay || mv.Kind == game.MoveDiscard {
		switch {
		case r.focused == mv.Slot:
			r.focused = -1
		case r.focused > mv.Slot:
			r.focused--
		}
	}
}

func (r *Robert) UpdateAfterPartnerMove(mv game.Move, res game.MoveResult) {
	r.view.ObservePartner(mv, res)
	if mv.IsHint() && len(res.Touched) == 1 {
		r.focused = res.Touched[0]
	}
}
