package deck

import (
	"testing"

	"github.com/rlauff/hanabi/internal/randutil"
)

func TestDeck_DrawsAllFiftyCards(t *testing.T) {
	d := NewShuffled(randutil.New(1))

	seen := make(map[uint8]bool)
	for i := 0; i < Size; i++ {
		c, ok := d.Draw()
		if !ok {
			t.Fatalf("deck ran out after %d draws", i)
		}
		if seen[c.ID()] {
			t.Fatalf("card id %d drawn twice", c.ID())
		}
		seen[c.ID()] = true
	}

	if _, ok := d.Draw(); ok {
		t.Error("expected draw from exhausted deck to fail")
	}
	if !d.IsEmpty() {
		t.Error("expected deck to be empty after 50 draws")
	}
}

func TestDeck_RemainingTracksDraws(t *testing.T) {
	d := NewShuffled(randutil.New(7))
	if d.Remaining() != Size {
		t.Fatalf("expected fresh deck of %d, got %d", Size, d.Remaining())
	}
	for i := 0; i < 12; i++ {
		d.Draw()
	}
	if d.Remaining() != Size-12 {
		t.Errorf("expected %d remaining, got %d", Size-12, d.Remaining())
	}
}

func TestDeck_SameSeedSameOrder(t *testing.T) {
	a := NewShuffled(randutil.New(42))
	b := NewShuffled(randutil.New(42))

	for i := 0; i < Size; i++ {
		ca, _ := a.Draw()
		cb, _ := b.Draw()
		if ca != cb {
			t.Fatalf("draw %d differs between equal seeds: %v vs %v", i, ca, cb)
		}
	}
}

func TestDeck_DifferentSeedsDifferentOrder(t *testing.T) {
	a := NewShuffled(randutil.New(1))
	b := NewShuffled(randutil.New(2))

	same := true
	for i := 0; i < Size; i++ {
		ca, _ := a.Draw()
		cb, _ := b.Draw()
		if ca != cb {
			same = false
			break
		}
	}
	if same {
		t.Error("expected different seeds to shuffle differently")
	}
}
