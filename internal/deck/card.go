package deck

import "fmt"

// Suit represents one of the five firework colors
type Suit int

const (
	Red Suit = iota
	Green
	Blue
	Yellow
	White
)

// NumSuits is the number of firework colors
const NumSuits = 5

// MaxValue is the highest card value in a suit
const MaxValue = 5

// Suits lists all suits in canonical order
var Suits = [NumSuits]Suit{Red, Green, Blue, Yellow, White}

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Yellow:
		return "yellow"
	case White:
		return "white"
	default:
		return "?"
	}
}

// bucketValue maps the units digit of a card id to its face value.
// The non-uniform layout bakes the physical multiplicities into the id
// space: three 1s, two each of 2-4, and a single 5 per suit.
var bucketValue = [10]int{1, 1, 1, 2, 2, 3, 3, 4, 4, 5}

// Copies returns how many physical copies of a value exist per suit
func Copies(value int) int {
	switch value {
	case 1:
		return 3
	case 2, 3, 4:
		return 2
	case 5:
		return 1
	default:
		return 0
	}
}

// Card identifies one of the 50 physical cards in the deck. The id encodes
// suit in the tens digit and a value bucket in the units digit, so two
// copies of the same (suit, value) pair still have distinct ids.
type Card uint8

// Size is the total number of physical cards
const Size = 50

// New decodes a card id. Ids outside 0..49 indicate a corrupted mask or
// codec bug upstream, reported as an error at this boundary.
func New(id uint8) (Card, error) {
	if id >= Size {
		return 0, fmt.Errorf("card id %d out of range [0,%d)", id, Size)
	}
	return Card(id), nil
}

// Must decodes a card id and panics if it is out of range. For use where
// the id is known valid by construction.
func Must(id uint8) Card {
	c, err := New(id)
	if err != nil {
		panic(err)
	}
	return c
}

// ID returns the card's encoded id
func (c Card) ID() uint8 {
	return uint8(c)
}

// Suit returns the card's color
func (c Card) Suit() Suit {
	return Suit(c / 10)
}

// Value returns the card's face value in 1..5
func (c Card) Value() int {
	return bucketValue[c%10]
}

// String returns a compact representation like "red 3"
func (c Card) String() string {
	return fmt.Sprintf("%s %d", c.Suit(), c.Value())
}
