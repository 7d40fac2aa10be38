package deck

import (
	"math/bits"
	"strings"
)

// CardSet is a set of card identities packed into the low 50 bits of a
// word. Bit i is set when card id i is a member. All operations are
// non-mutating value operations except Add and Remove.
type CardSet uint64

const fullMask CardSet = (1 << Size) - 1

// Derived masks, computed once from the codec layout. They are built
// programmatically rather than written as literals so the id-to-card
// mapping has a single source of truth.
var (
	suitMasks  [NumSuits]CardSet
	valueMasks [MaxValue + 1]CardSet
)

func init() {
	for id := uint8(0); id < Size; id++ {
		c := Card(id)
		suitMasks[c.Suit()] |= 1 << id
		valueMasks[c.Value()] |= 1 << id
	}
}

// Full returns the set of all 50 card identities
func Full() CardSet {
	return fullMask
}

// Empty returns the empty set
func Empty() CardSet {
	return 0
}

// SuitSet returns the set of the 10 cards of a suit
func SuitSet(s Suit) CardSet {
	return suitMasks[s]
}

// ValueSet returns the set of all cards with the given face value
func ValueSet(v int) CardSet {
	return valueMasks[v]
}

// Of returns the set of all copies of the given card's (suit, value) pair
func Of(c Card) CardSet {
	return suitMasks[c.Suit()] & valueMasks[c.Value()]
}

// Contains reports whether the card is a member
func (s CardSet) Contains(c Card) bool {
	return s&(1<<c) != 0
}

// Add inserts the card
func (s *CardSet) Add(c Card) {
	*s |= 1 << c
}

// Remove deletes the card
func (s *CardSet) Remove(c Card) {
	*s &^= 1 << c
}

// Intersect returns the intersection of two sets
func (s CardSet) Intersect(o CardSet) CardSet {
	return s & o
}

// Union returns the union of two sets
func (s CardSet) Union(o CardSet) CardSet {
	return s | o
}

// Complement returns the members of the 50-card universe not in s
func (s CardSet) Complement() CardSet {
	return ^s & fullMask
}

// SubsetOf reports whether every member of s is also in o
func (s CardSet) SubsetOf(o CardSet) bool {
	return s&o == s
}

// Count returns the number of members
func (s CardSet) Count() int {
	return bits.OnesCount64(uint64(s))
}

// IsEmpty reports whether the set has no members
func (s CardSet) IsEmpty() bool {
	return s == 0
}

// First returns the member with the lowest id
func (s CardSet) First() (Card, bool) {
	if s == 0 {
		return 0, false
	}
	return Card(bits.TrailingZeros64(uint64(s))), true
}

// Exact returns the single (suit, value) pair every member shares, if the
// set is non-empty and all members are copies of the same card type.
func (s CardSet) Exact() (Card, bool) {
	first, ok := s.First()
	if !ok {
		return 0, false
	}
	if !s.SubsetOf(Of(first)) {
		return 0, false
	}
	return first, true
}

// Cards returns the members in ascending id order
func (s CardSet) Cards() []Card {
	out := make([]Card, 0, s.Count())
	for rest := s; rest != 0; {
		c, _ := rest.First()
		out = append(out, c)
		rest.Remove(c)
	}
	return out
}

// String renders the member card types for debugging, e.g. "{red 1, blue 4}"
func (s CardSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, c := range s.Cards() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.String())
	}
	b.WriteByte('}')
	return b.String()
}
