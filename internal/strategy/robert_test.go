package strategy

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlauff/hanabi/internal/deck"
	"github.com/rlauff/hanabi/internal/game"
	"github.com/rlauff/hanabi/internal/randutil"
)

func newTestRobert() *Robert {
	return NewRobert(DefaultParams(), log.New(io.Discard))
}

func TestRobert_DecisionIsDeterministic(t *testing.T) {
	hand := samplePartnerHand()

	a := newTestRobert()
	b := newTestRobert()
	a.Initialize(hand)
	b.Initialize(hand)

	hint := game.MoveResult{Touched: []int{0}, Mask: deck.ValueSet(1)}
	a.UpdateAfterPartnerMove(game.HintValue(1), hint)
	b.UpdateAfterPartnerMove(game.HintValue(1), hint)

	assert.Equal(t, a.DecideMove(), b.DecideMove(),
		"equal belief states must produce equal decisions")
}

func TestRobert_PlaysThePinnedPlayableCard(t *testing.T) {
	r := newTestRobert()
	r.Initialize(samplePartnerHand())

	// suit and value hints pin slot 1 to a playable red 1
	r.UpdateAfterPartnerMove(game.HintSuit(deck.Red), game.MoveResult{Touched: []int{1}, Mask: deck.SuitSet(deck.Red)})
	r.UpdateAfterPartnerMove(game.HintValue(1), game.MoveResult{Touched: []int{1}, Mask: deck.ValueSet(1)})

	require.True(t, r.view.CertainlyPlayable(1))
	assert.Equal(t, game.Play(1), r.DecideMove())
}

func TestRobert_SurePlayOutscoresUncertainPlay(t *testing.T) {
	r := newTestRobert()
	r.Initialize(samplePartnerHand())

	r.view.Own[0] = kind(deck.Red, 1) // pinned and playable
	sure := r.scorePlay(0)
	uncertain := r.scorePlay(1) // unconstrained slot

	assert.Greater(t, sure, uncertain)
	assert.Greater(t, sure, DefaultParams().PlaySureBonus,
		"a sure play earns at least the sureness bonus")
}

func TestRobert_NeverGamblesOnTheBrink(t *testing.T) {
	r := newTestRobert()
	r.Initialize(samplePartnerHand())
	r.view.Mistakes = game.MaxMistakes - 1

	// an uncertain play scores exactly zero, a discard always beats it
	assert.Zero(t, r.scorePlay(0))

	// but a certain play is still taken
	r.view.Own[0] = kind(deck.Red, 1)
	assert.Positive(t, r.scorePlay(0))
	assert.Equal(t, game.Play(0), r.DecideMove())
}

func TestRobert_DiscardScoreNeverNegative(t *testing.T) {
	r := newTestRobert()
	r.Initialize(samplePartnerHand())

	// pin a slot to the lone white 5: maximum penalty, still not negative
	r.view.Own[0] = kind(deck.White, 5)
	assert.GreaterOrEqual(t, r.scoreDiscard(0), 0.0)
}

func TestRobert_DiscardPressureGrowsAsTokensDrain(t *testing.T) {
	r := newTestRobert()
	r.Initialize(samplePartnerHand())

	full := r.scoreDiscard(0)
	r.view.Hints = 1
	starved := r.scoreDiscard(0)

	assert.Greater(t, starved, full,
		"discards must look better when hint tokens are scarce")
}

func TestRobert_FocusedHintBonusDecaysAfterShift(t *testing.T) {
	r := newTestRobert()
	r.Initialize(samplePartnerHand())

	r.UpdateAfterPartnerMove(game.HintValue(1), game.MoveResult{Touched: []int{3}, Mask: deck.ValueSet(1)})
	require.Equal(t, 3, r.focused)

	// discarding a lower slot shifts the focus down
	r.UpdateAfterOwnMove(game.Discard(0), game.MoveResult{Card: deck.Must(20)}, true)
	assert.Equal(t, 2, r.focused)

	// discarding the focused slot clears it
	r.UpdateAfterOwnMove(game.Discard(2), game.MoveResult{Card: deck.Must(21)}, true)
	assert.Equal(t, -1, r.focused)
}

func TestRobert_CandidatesAreAlwaysLegal(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		rng := randutil.New(seed)
		a := NewRobert(DefaultParams(), log.New(io.Discard))
		b := NewRobert(DefaultParams(), log.New(io.Discard))
		g := game.New(rng, a, b)

		robs := [2]*Robert{a, b}
		for turns := 0; turns < 500; turns++ {
			if _, over := g.Over(); over {
				break
			}
			legal := make(map[game.Move]bool)
			for _, mv := range g.LegalMoves() {
				legal[mv] = true
			}
			for _, mv := range robs[g.CurrentPlayer()].candidates() {
				if !legal[mv] {
					t.Fatalf("seed %d: candidate %v is not legal", seed, mv)
				}
			}
			g.Advance()
		}
	}
}

func TestRobert_FullGamesFinishWithoutLosingEarly(t *testing.T) {
	// the heuristic should comfortably beat pure chance: no crashes, and
	// scores meaningfully above zero on average
	total := 0
	games := 10
	for seed := int64(100); seed < int64(100+games); seed++ {
		rng := randutil.New(seed)
		a := NewRobert(DefaultParams(), log.New(io.Discard))
		b := NewRobert(DefaultParams(), log.New(io.Discard))
		g := game.New(rng, a, b)

		turns := 0
		for {
			if score, over := g.Over(); over {
				total += score
				break
			}
			turns++
			require.Less(t, turns, 500, "seed %d: game did not terminate", seed)
			g.Advance()
		}
	}
	assert.Greater(t, float64(total)/float64(games), 5.0,
		"average score over %d games suspiciously low", games)
}
