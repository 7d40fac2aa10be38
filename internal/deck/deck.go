package deck

import rand "math/rand/v2"

// Deck is the ordered draw pile. It is created full, permuted once, and
// drained from the end; it is never refilled.
type Deck struct {
	cards []Card
}

// NewShuffled builds the 50-card deck and permutes it with the provided
// generator. The caller owns the generator; sharing one across concurrent
// games is not supported.
func NewShuffled(rng *rand.Rand) *Deck {
	d := &Deck{cards: make([]Card, Size)}
	for i := range d.cards {
		d.cards[i] = Card(i)
	}
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
	return d
}

// Draw removes and returns the top card. Drawing from an empty deck is an
// ordinary late-game outcome, reported via the second return.
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return 0, false
	}
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c, true
}

// Remaining returns the number of cards left
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// IsEmpty reports whether the deck has been drained
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Cards returns a copy of the remaining draw pile, top of the pile last
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
