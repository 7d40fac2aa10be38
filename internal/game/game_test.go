package game

import (
	"testing"

	"github.com/rlauff/hanabi/internal/deck"
	"github.com/rlauff/hanabi/internal/randutil"
)

// nullStrategy satisfies the interface and does nothing. Tests drive the
// engine through ApplyMove directly.
type nullStrategy struct{}

func (nullStrategy) Initialize([]deck.Card)                    {}
func (nullStrategy) DecideMove() Move                          { panic("not driven") }
func (nullStrategy) UpdateAfterOwnMove(Move, MoveResult, bool) {}
func (nullStrategy) UpdateAfterPartnerMove(Move, MoveResult)   {}

// recorder captures every callback for assertions
type recorder struct {
	partnerHand []deck.Card
	ownResults  []MoveResult
	ownDrew     []bool
	partnerRes  []MoveResult
}

func (r *recorder) Initialize(hand []deck.Card) { r.partnerHand = hand }
func (r *recorder) DecideMove() Move            { panic("not driven") }
func (r *recorder) UpdateAfterOwnMove(mv Move, res MoveResult, drew bool) {
	r.ownResults = append(r.ownResults, res)
	r.ownDrew = append(r.ownDrew, drew)
}
func (r *recorder) UpdateAfterPartnerMove(mv Move, res MoveResult) {
	r.partnerRes = append(r.partnerRes, res)
}

func newTestGame(seed int64) *Game {
	return New(randutil.New(seed), nullStrategy{}, nullStrategy{})
}

func TestNew_Deal(t *testing.T) {
	g := newTestGame(1)

	if len(g.Hand(0)) != HandSize || len(g.Hand(1)) != HandSize {
		t.Fatalf("expected both hands dealt %d cards, got %d and %d",
			HandSize, len(g.Hand(0)), len(g.Hand(1)))
	}
	if g.DeckRemaining() != deck.Size-2*HandSize {
		t.Errorf("expected %d cards left in deck, got %d", deck.Size-2*HandSize, g.DeckRemaining())
	}
	if g.HintsRemaining() != MaxHints {
		t.Errorf("expected %d hints, got %d", MaxHints, g.HintsRemaining())
	}
	if g.MistakesMade() != 0 || g.Score() != 0 {
		t.Errorf("expected clean counters, got %d mistakes, score %d", g.MistakesMade(), g.Score())
	}
	if g.CurrentPlayer() != 0 {
		t.Errorf("expected player 0 to start, got %d", g.CurrentPlayer())
	}

	// the deal alternates seats starting at seat 0
	d := deck.NewShuffled(randutil.New(1))
	for i := 0; i < HandSize; i++ {
		for p := 0; p < 2; p++ {
			want, _ := d.Draw()
			if got := g.Hand(p)[i]; got != want {
				t.Fatalf("hand %d slot %d: expected %v, got %v", p, i, want, got)
			}
		}
	}
}

func TestNew_InitializeSeesPartnerHand(t *testing.T) {
	r0, r1 := &recorder{}, &recorder{}
	g := New(randutil.New(3), r0, r1)

	if len(r0.partnerHand) != HandSize || len(r1.partnerHand) != HandSize {
		t.Fatal("expected both strategies initialized with a full partner hand")
	}
	for i, c := range g.Hand(1) {
		if r0.partnerHand[i] != c {
			t.Errorf("slot %d: strategy 0 saw %v, hand holds %v", i, r0.partnerHand[i], c)
		}
	}
	for i, c := range g.Hand(0) {
		if r1.partnerHand[i] != c {
			t.Errorf("slot %d: strategy 1 saw %v, hand holds %v", i, r1.partnerHand[i], c)
		}
	}
}

func TestLegalMoves_Enumeration(t *testing.T) {
	g := newTestGame(2)
	moves := g.LegalMoves()

	// plays and discards interleave per slot
	for i := 0; i < HandSize; i++ {
		if moves[2*i] != Play(i) || moves[2*i+1] != Discard(i) {
			t.Fatalf("slot %d: expected play/discard pair, got %v, %v", i, moves[2*i], moves[2*i+1])
		}
	}

	// every hint must match at least one partner card, and every partner
	// card must make its value and suit hints legal
	partner := g.Hand(1)
	legal := make(map[Move]bool, len(moves))
	for _, mv := range moves[2*HandSize:] {
		if !mv.IsHint() {
			t.Fatalf("expected only hints after slot moves, got %v", mv)
		}
		legal[mv] = true
		matched := false
		for _, c := range partner {
			if (mv.Kind == MoveHintSuit && c.Suit() == mv.Suit) ||
				(mv.Kind == MoveHintValue && c.Value() == mv.Value) {
				matched = true
			}
		}
		if !matched {
			t.Errorf("hint %v matches no partner card", mv)
		}
	}
	for _, c := range partner {
		if !legal[HintSuit(c.Suit())] {
			t.Errorf("expected suit hint for %v to be legal", c)
		}
		if !legal[HintValue(c.Value())] {
			t.Errorf("expected value hint for %v to be legal", c)
		}
	}
}

func TestLegalMoves_NoHintsWithoutTokens(t *testing.T) {
	g := newTestGame(4)

	// burn all eight tokens with alternating hints
	for i := 0; i < MaxHints; i++ {
		var hint Move
		for _, mv := range g.LegalMoves() {
			if mv.IsHint() {
				hint = mv
				break
			}
		}
		if !hint.IsHint() {
			t.Fatalf("no legal hint with %d tokens left", g.HintsRemaining())
		}
		g.ApplyMove(hint)
	}

	if g.HintsRemaining() != 0 {
		t.Fatalf("expected 0 hints, got %d", g.HintsRemaining())
	}
	for _, mv := range g.LegalMoves() {
		if mv.IsHint() {
			t.Fatalf("hint %v legal with no tokens", mv)
		}
	}
}

func TestApplyMove_PlayOutcomes(t *testing.T) {
	// find a deal whose opening hand holds both a playable 1 and a
	// non-playable card, then exercise both outcomes
	for seed := int64(0); seed < 100; seed++ {
		g := newTestGame(seed)
		oneSlot, otherSlot := -1, -1
		for i, c := range g.Hand(0) {
			if c.Value() == 1 && oneSlot == -1 {
				oneSlot = i
			}
			if c.Value() > 1 && otherSlot == -1 {
				otherSlot = i
			}
		}
		if oneSlot == -1 || otherSlot == -1 {
			continue
		}

		playedOne := g.Hand(0)[oneSlot]
		res := g.ApplyMove(Play(oneSlot))
		if !res.Success {
			t.Fatalf("seed %d: playing a 1 on empty fireworks failed", seed)
		}
		if res.Card != playedOne {
			t.Errorf("expected result card %v, got %v", playedOne, res.Card)
		}
		if g.Fireworks()[playedOne.Suit()] != 1 {
			t.Errorf("expected fireworks %v at 1, got %d", playedOne.Suit(), g.Fireworks()[playedOne.Suit()])
		}
		if g.Score() != 1 || g.MistakesMade() != 0 {
			t.Errorf("expected score 1 and no mistakes, got %d and %d", g.Score(), g.MistakesMade())
		}
		if len(g.Hand(0)) != HandSize {
			t.Errorf("expected hand refilled to %d, got %d", HandSize, len(g.Hand(0)))
		}
		if g.CurrentPlayer() != 1 {
			t.Error("expected turn to pass after a play")
		}

		// now a guaranteed misplay from the other seat
		badSlot := -1
		for i, c := range g.Hand(1) {
			if c.Value() != g.Fireworks()[c.Suit()]+1 {
				badSlot = i
				break
			}
		}
		if badSlot == -1 {
			continue
		}
		misplayed := g.Hand(1)[badSlot]
		res = g.ApplyMove(Play(badSlot))
		if res.Success {
			t.Fatalf("seed %d: expected misplay of %v", seed, misplayed)
		}
		if g.MistakesMade() != 1 {
			t.Errorf("expected 1 mistake, got %d", g.MistakesMade())
		}
		if g.Score() != 1 {
			t.Errorf("expected misplay to leave score at 1, got %d", g.Score())
		}
		return
	}
	t.Fatal("no suitable deal found in 100 seeds")
}

func TestApplyMove_DiscardTokenRefund(t *testing.T) {
	g := newTestGame(5)

	// discard at the cap is legal but refunds nothing
	g.ApplyMove(Discard(0))
	if g.HintsRemaining() != MaxHints {
		t.Errorf("expected hints to stay at %d, got %d", MaxHints, g.HintsRemaining())
	}

	// spend one, then a discard refunds it
	var hint Move
	for _, mv := range g.LegalMoves() {
		if mv.IsHint() {
			hint = mv
			break
		}
	}
	g.ApplyMove(hint)
	if g.HintsRemaining() != MaxHints-1 {
		t.Fatalf("expected %d hints after hinting, got %d", MaxHints-1, g.HintsRemaining())
	}
	g.ApplyMove(Discard(0))
	if g.HintsRemaining() != MaxHints {
		t.Errorf("expected discard to refund the token, got %d", g.HintsRemaining())
	}
}

func TestApplyMove_HintTouchesMatchingSlots(t *testing.T) {
	g := newTestGame(6)
	partner := g.Hand(1)
	value := partner[0].Value()

	res := g.ApplyMove(HintValue(value))

	if len(res.Touched) == 0 {
		t.Fatal("expected at least one touched slot")
	}
	touched := make(map[int]bool)
	for _, i := range res.Touched {
		touched[i] = true
		if partner[i].Value() != value {
			t.Errorf("touched slot %d holds %v, not a %d", i, partner[i], value)
		}
	}
	for i, c := range partner {
		if c.Value() == value && !touched[i] {
			t.Errorf("slot %d holds a %d but was not touched", i, value)
		}
	}
	if res.Mask != deck.ValueSet(value) {
		t.Error("expected the hint mask to be the value set")
	}
}

func TestApplyMove_MoverDoesNotSeeOwnDraw(t *testing.T) {
	r0, r1 := &recorder{}, &recorder{}
	g := New(randutil.New(7), r0, r1)

	res := g.ApplyMove(Discard(2))

	if res.Drawn == nil {
		t.Fatal("expected a replacement draw with a full deck")
	}
	if got := r0.ownResults[0]; got.Drawn != nil {
		t.Error("mover saw its own drawn card")
	}
	if !r0.ownDrew[0] {
		t.Error("mover was not told a replacement arrived")
	}
	if got := r1.partnerRes[0]; got.Drawn == nil || *got.Drawn != *res.Drawn {
		t.Error("partner did not see the drawn card")
	}

	// the replacement lands in the last slot
	hand := g.Hand(0)
	if hand[len(hand)-1] != *res.Drawn {
		t.Error("expected the drawn card appended to the mover's hand")
	}
}

func TestGame_ThreeMistakesEnds(t *testing.T) {
	g := newTestGame(8)

	for turns := 0; turns < 200; turns++ {
		if score, over := g.Over(); over {
			if g.MistakesMade() != MaxMistakes {
				t.Fatalf("expected %d mistakes at game end, got %d", MaxMistakes, g.MistakesMade())
			}
			if score != g.Score() {
				t.Errorf("expected reported score %d to match fireworks sum %d", score, g.Score())
			}
			return
		}
		// prefer a guaranteed misplay; fall back to a real play
		hand := g.Hand(g.CurrentPlayer())
		slot := 0
		for i, c := range hand {
			if c.Value() != g.Fireworks()[c.Suit()]+1 {
				slot = i
				break
			}
		}
		g.ApplyMove(Play(slot))
	}
	t.Fatal("game did not end within 200 turns")
}

func TestGame_EndsAfterDeckRunsDry(t *testing.T) {
	g := newTestGame(9)

	// all-discard policy: 40 draws empty the deck, then each player gets
	// exactly one more turn
	moves := 0
	for {
		if score, over := g.Over(); over {
			if score != 0 {
				t.Errorf("expected score 0 from pure discarding, got %d", score)
			}
			break
		}
		g.ApplyMove(Discard(0))
		moves++
		if moves > 100 {
			t.Fatal("game did not terminate")
		}
	}

	wantMoves := deck.Size - 2*HandSize + 2
	if moves != wantMoves {
		t.Errorf("expected the game to end after %d moves, got %d", wantMoves, moves)
	}
	if len(g.Hand(0)) != HandSize-1 || len(g.Hand(1)) != HandSize-1 {
		t.Errorf("expected both final hands at %d cards, got %d and %d",
			HandSize-1, len(g.Hand(0)), len(g.Hand(1)))
	}
}

func TestSnapshot_IsACopy(t *testing.T) {
	g := newTestGame(10)
	snap := g.Snapshot()

	original := snap.Hands[0][0]
	snap.Hands[0][0] = snap.Hands[0][1]
	snap.DeckCards[0] = snap.DeckCards[1]
	snap.Fireworks[0] = 5

	if g.Hand(0)[0] != original {
		t.Error("mutating the snapshot hand changed the game state")
	}
	fresh := g.Snapshot()
	if fresh.Hands[0][0] != original {
		t.Error("snapshot hand aliases earlier snapshot storage")
	}
	if fresh.Fireworks[0] != 0 {
		t.Error("snapshot fireworks alias the game state")
	}
	if fresh.Turn != 0 || fresh.Hints != MaxHints {
		t.Error("expected an untouched game in the fresh snapshot")
	}
}
