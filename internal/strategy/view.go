// Package strategy contains the decision-making agents and the
// card-possibility tracking they share. Each agent instance owns its
// state outright; nothing here is safe for use by two games at once, and
// nothing needs to be.
package strategy

import (
	"github.com/rlauff/hanabi/internal/deck"
	"github.com/rlauff/hanabi/internal/game"
)

// View is one player's belief state: a possibility mask per own hand
// slot, the partner's actual hand as observed, a mask per partner slot
// modelling what the partner itself knows, and the set of cards this
// player has not yet seen anywhere. It mirrors the public counters so
// agents never need to ask the engine.
//
// Soundness invariant: the true card in any slot is always a member of
// that slot's mask. Hints only ever intersect with masks that contain
// the truth, so a correct update sequence cannot exclude it.
type View struct {
	Fireworks [deck.NumSuits]int
	Hints     int
	Mistakes  int

	Own         []deck.CardSet // what each of my slots could be
	PartnerHand []deck.Card
	PartnerKnow []deck.CardSet // what my partner knows about each of their slots

	// Unseen holds cards not yet visible to me: not in the partner's
	// hand, the discard pile, or the fireworks. My own hand stays in
	// Unseen; I cannot see it.
	Unseen deck.CardSet

	// PublicUnseen holds cards not on the board (played or discarded),
	// regardless of whose hand hides them. It is what a slot mask may be
	// bounded by from the partner's own perspective.
	PublicUnseen deck.CardSet

	Discards []deck.Card
}

// NewView returns the belief state of a player before the deal
func NewView() *View {
	v := &View{
		Hints:        game.MaxHints,
		Unseen:       deck.Full(),
		PublicUnseen: deck.Full(),
	}
	for i := 0; i < game.HandSize; i++ {
		v.Own = append(v.Own, deck.Full())
		v.PartnerKnow = append(v.PartnerKnow, deck.Full())
	}
	return v
}

// Initialize records the partner's dealt hand
func (v *View) Initialize(partnerHand []deck.Card) {
	v.PartnerHand = append(v.PartnerHand[:0], partnerHand...)
	for _, c := range partnerHand {
		v.Unseen.Remove(c)
	}
}

// ObserveOwn folds the outcome of my own move into the belief state.
// The result has the drawn card withheld; drew reports whether one came.
func (v *View) ObserveOwn(mv game.Move, res game.MoveResult, drew bool) {
	switch mv.Kind {
	case game.MovePlay:
		v.seeBoardCard(res.Card)
		if res.Success {
			v.Fireworks[res.Card.Suit()]++
		} else {
			v.Mistakes++
			v.Discards = append(v.Discards, res.Card)
		}
		v.removeOwnSlot(mv.Slot, drew)
	case game.MoveDiscard:
		v.seeBoardCard(res.Card)
		v.Discards = append(v.Discards, res.Card)
		if v.Hints < game.MaxHints {
			v.Hints++
		}
		v.removeOwnSlot(mv.Slot, drew)
	case game.MoveHintSuit, game.MoveHintValue:
		v.Hints--
		v.narrow(v.PartnerKnow, res.Touched, mv.HintMask())
	}
}

// ObservePartner folds the outcome of the partner's move into the belief
// state. Here the drawn card, if any, is visible.
func (v *View) ObservePartner(mv game.Move, res game.MoveResult) {
	switch mv.Kind {
	case game.MovePlay:
		v.seeBoardCard(res.Card)
		if res.Success {
			v.Fireworks[res.Card.Suit()]++
		} else {
			v.Mistakes++
			v.Discards = append(v.Discards, res.Card)
		}
		v.removePartnerSlot(mv.Slot, res.Drawn)
	case game.MoveDiscard:
		v.seeBoardCard(res.Card)
		v.Discards = append(v.Discards, res.Card)
		if v.Hints < game.MaxHints {
			v.Hints++
		}
		v.removePartnerSlot(mv.Slot, res.Drawn)
	case game.MoveHintSuit, game.MoveHintValue:
		v.Hints--
		v.narrow(v.Own, res.Touched, mv.HintMask())
	}
}

// narrow applies a hint to a mask array: touched slots intersect with the
// hint mask, all other slots with its complement.
func (v *View) narrow(know []deck.CardSet, touched []int, mask deck.CardSet) {
	hit := make(map[int]bool, len(touched))
	for _, i := range touched {
		hit[i] = true
	}
	for i := range know {
		if hit[i] {
			know[i] = know[i].Intersect(mask)
		} else {
			know[i] = know[i].Intersect(mask.Complement())
		}
	}
}

func (v *View) seeBoardCard(c deck.Card) {
	v.Unseen.Remove(c)
	v.PublicUnseen.Remove(c)
}

func (v *View) removeOwnSlot(slot int, drew bool) {
	v.Own = append(v.Own[:slot], v.Own[slot+1:]...)
	if drew {
		v.Own = append(v.Own, deck.Full())
	}
}

func (v *View) removePartnerSlot(slot int, drawn *deck.Card) {
	v.PartnerHand = append(v.PartnerHand[:slot], v.PartnerHand[slot+1:]...)
	v.PartnerKnow = append(v.PartnerKnow[:slot], v.PartnerKnow[slot+1:]...)
	if drawn != nil {
		v.PartnerHand = append(v.PartnerHand, *drawn)
		v.PartnerKnow = append(v.PartnerKnow, deck.Full())
		v.Unseen.Remove(*drawn)
	}
}

// PlayableSet returns every card id that would land on the fireworks now
func (v *View) PlayableSet() deck.CardSet {
	playable := deck.Empty()
	for _, s := range deck.Suits {
		if top := v.Fireworks[s]; top < deck.MaxValue {
			playable = playable.Union(deck.SuitSet(s).Intersect(deck.ValueSet(top + 1)))
		}
	}
	return playable
}

// DiscardableSet returns every card id already on the fireworks
func (v *View) DiscardableSet() deck.CardSet {
	discardable := deck.Empty()
	for _, s := range deck.Suits {
		for val := 1; val <= v.Fireworks[s]; val++ {
			discardable = discardable.Union(deck.SuitSet(s).Intersect(deck.ValueSet(val)))
		}
	}
	return discardable
}

// possible bounds a slot mask by the cards that could still be there
func (v *View) possible(i int) deck.CardSet {
	return v.Own[i].Intersect(v.Unseen)
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

// ProbabilityPlayable estimates how likely the card in my slot i is
// immediately playable, counting over still-unseen possibilities.
func (v *View) ProbabilityPlayable(i int) float64 {
	p := v.possible(i)
	return ratio(p.Intersect(v.PlayableSet()).Count(), p.Count())
}

// ProbabilityDiscardable estimates how likely my slot i is already dead
func (v *View) ProbabilityDiscardable(i int) float64 {
	p := v.possible(i)
	return ratio(p.Intersect(v.DiscardableSet()).Count(), p.Count())
}

// PartnerProbabilityPlayable estimates, from the partner's own knowledge,
// how likely their slot i looks playable to them. A non-nil hint is
// evaluated hypothetically, as if it had already narrowed the slot.
func (v *View) PartnerProbabilityPlayable(i int, hint *game.Move) float64 {
	p := v.partnerPossible(i, hint)
	return ratio(p.Intersect(v.PlayableSet()).Count(), p.Count())
}

// PartnerProbabilityDiscardable is the discard analogue of
// PartnerProbabilityPlayable.
func (v *View) PartnerProbabilityDiscardable(i int, hint *game.Move) float64 {
	p := v.partnerPossible(i, hint)
	return ratio(p.Intersect(v.DiscardableSet()).Count(), p.Count())
}

func (v *View) partnerPossible(i int, hint *game.Move) deck.CardSet {
	p := v.PartnerKnow[i].Intersect(v.Unseen)
	if hint != nil {
		p = p.Intersect(hint.HintMask())
	}
	return p
}

// ProbabilityOnlyCopyLeft estimates how likely my slot i holds the last
// remaining copy of its kind: the fraction of possible ids whose card
// type has exactly one unseen copy compatible with the slot.
func (v *View) ProbabilityOnlyCopyLeft(i int) float64 {
	p := v.possible(i)
	lastCopies := 0
	for _, s := range deck.Suits {
		for val := 1; val <= deck.MaxValue; val++ {
			kind := deck.SuitSet(s).Intersect(deck.ValueSet(val))
			if kind.Intersect(p).Count() == 1 {
				lastCopies++
			}
		}
	}
	return ratio(lastCopies, p.Count())
}

// ExcludedByHint returns, per partner slot, how many still-possible ids
// the hint would rule out of the partner's knowledge once applied.
func (v *View) ExcludedByHint(mv game.Move) []int {
	mask := mv.HintMask()
	excluded := make([]int, len(v.PartnerKnow))
	for i := range v.PartnerKnow {
		know := v.Unseen.Intersect(v.PartnerKnow[i])
		if v.hintTouches(mv, v.PartnerHand[i]) {
			excluded[i] = know.Intersect(mask.Complement()).Count()
		} else {
			excluded[i] = know.Intersect(mask).Count()
		}
	}
	return excluded
}

// HintTouched returns the partner slots a hint would match
func (v *View) HintTouched(mv game.Move) []int {
	var touched []int
	for i, c := range v.PartnerHand {
		if v.hintTouches(mv, c) {
			touched = append(touched, i)
		}
	}
	return touched
}

func (v *View) hintTouches(mv game.Move, c deck.Card) bool {
	switch mv.Kind {
	case game.MoveHintSuit:
		return c.Suit() == mv.Suit
	case game.MoveHintValue:
		return c.Value() == mv.Value
	default:
		return false
	}
}

// IsPlayableCard reports whether a card would land on the fireworks now
func (v *View) IsPlayableCard(c deck.Card) bool {
	return v.Fireworks[c.Suit()]+1 == c.Value()
}

// countDiscarded counts discarded copies of a (suit, value) pair
func (v *View) countDiscarded(s deck.Suit, value int) int {
	n := 0
	for _, c := range v.Discards {
		if c.Suit() == s && c.Value() == value {
			n++
		}
	}
	return n
}

// IsUselessCard reports whether a card can never score: its value is
// already on the fireworks, or some lower value of its suit has had every
// copy discarded, making the card unreachable.
func (v *View) IsUselessCard(c deck.Card) bool {
	top := v.Fireworks[c.Suit()]
	if c.Value() <= top {
		return true
	}
	for need := top + 1; need < c.Value(); need++ {
		if v.countDiscarded(c.Suit(), need) >= deck.Copies(need) {
			return true
		}
	}
	return false
}

// IsCriticalCard reports whether losing this card would strand its suit:
// it is still useful and no other copy survives outside the discard pile.
func (v *View) IsCriticalCard(c deck.Card) bool {
	if v.IsUselessCard(c) {
		return false
	}
	return v.countDiscarded(c.Suit(), c.Value())+1 >= deck.Copies(c.Value())
}

// Distance returns how many cards of the suit must land before c becomes
// playable, or -1 if c can never score.
func (v *View) Distance(c deck.Card) int {
	if v.IsUselessCard(c) {
		return -1
	}
	return c.Value() - v.Fireworks[c.Suit()] - 1
}

// CertainlyPlayable reports that every id still possible in my slot i is
// immediately playable. A property of every possibility, never of the
// most likely one.
func (v *View) CertainlyPlayable(i int) bool {
	return v.certainly(v.possible(i), v.IsPlayableCard)
}

// CertainlyUseless reports that every id still possible in my slot i can
// never score.
func (v *View) CertainlyUseless(i int) bool {
	return v.certainly(v.possible(i), v.IsUselessCard)
}

func (v *View) certainly(p deck.CardSet, pred func(deck.Card) bool) bool {
	if p.IsEmpty() {
		return false
	}
	for _, c := range p.Cards() {
		if !pred(c) {
			return false
		}
	}
	return true
}

// KnowledgeImpliesPlayable reports whether a partner-side mask, bounded
// by the publicly unseen cards, admits only playable ids.
func (v *View) KnowledgeImpliesPlayable(know deck.CardSet) bool {
	return v.certainly(know.Intersect(v.PublicUnseen), v.IsPlayableCard)
}

// ExactCard returns the identity of my slot i if the mask pins it to a
// single (suit, value) pair.
func (v *View) ExactCard(i int) (deck.Card, bool) {
	return v.Own[i].Exact()
}
